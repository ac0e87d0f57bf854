package handlers

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/ajensen/friendlink/internal/models"
	"github.com/ajensen/friendlink/internal/store"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type BookingHandler struct {
	Store store.Store
}

type CreateBookingRequest struct {
	CustomerID int    `json:"customerId"`
	FriendID   int    `json:"friendId"`
	Activity   string `json:"activity"`
	Duration   string `json:"duration"`
}

func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.CustomerID == 0 || req.FriendID == 0 || req.Activity == "" || req.Duration == "" {
		http.Error(w, "Missing required fields", http.StatusBadRequest)
		return
	}

	friend, err := h.Store.GetFriend(req.FriendID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			http.Error(w, "Friend not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	booking := &models.Booking{
		Reference:  uuid.NewString(),
		CustomerID: req.CustomerID,
		FriendID:   req.FriendID,
		Activity:   req.Activity,
		Duration:   req.Duration,
		Cost:       friend.HourlyRate * float64(parseHours(req.Duration)),
	}
	if err := h.Store.CreateBooking(booking); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(booking)
}

func (h *BookingHandler) GetBooking(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		http.Error(w, "Invalid booking id", http.StatusBadRequest)
		return
	}

	booking, err := h.Store.GetBooking(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			http.Error(w, "Booking not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode(booking)
}

func (h *BookingHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	customerID, err := strconv.Atoi(r.URL.Query().Get("customerId"))
	if err != nil {
		http.Error(w, "Missing or invalid customerId", http.StatusBadRequest)
		return
	}

	bookings, err := h.Store.ListBookingsForCustomer(customerID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	json.NewEncoder(w).Encode(bookings)
}

// parseHours pulls the hour count out of a duration label like "1 Hour" or
// "2 Hours". Anything unparsable counts as a single hour.
func parseHours(duration string) int {
	fields := strings.Fields(duration)
	if len(fields) == 0 {
		return 1
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil || n < 1 {
		return 1
	}
	return n
}
