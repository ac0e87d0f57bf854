package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/ajensen/friendlink/internal/models"
	"github.com/ajensen/friendlink/internal/store"
	"golang.org/x/crypto/bcrypt"
)

type SignupHandler struct {
	Store store.Store
}

type SignupRequest struct {
	Name       string   `json:"name"`
	Password   string   `json:"password"`
	Role       string   `json:"role"`
	City       string   `json:"city"`
	Age        int      `json:"age"`
	Languages  []string `json:"languages"`
	Interests  []string `json:"interests"`
	About      string   `json:"about"`
	HourlyRate float64  `json:"hourlyRate"`
}

// Signup creates a user profile. There is no login flow; the password is
// hashed and stored so the account can be claimed by a future auth system.
func (h *SignupHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Name == "" || req.Password == "" {
		http.Error(w, "Name and password are required", http.StatusBadRequest)
		return
	}
	if req.Role != "" && req.Role != models.RoleCustomer && req.Role != models.RoleFriend {
		http.Error(w, "Role must be customer or friend", http.StatusBadRequest)
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	user := &models.User{
		Name:       req.Name,
		Role:       req.Role,
		City:       req.City,
		Age:        req.Age,
		Languages:  req.Languages,
		Interests:  req.Interests,
		About:      req.About,
		HourlyRate: req.HourlyRate,
		Password:   string(hashedPassword),
	}

	if err := h.Store.CreateUser(user); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(user)
}
