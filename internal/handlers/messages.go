package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/ajensen/friendlink/internal/models"
	"github.com/ajensen/friendlink/internal/store"
	"github.com/gorilla/mux"
)

type MessageHandler struct {
	Store store.Store
}

// GetConversation returns the full history between two users, oldest first.
// The pair is unordered, so /messages/1/2 and /messages/2/1 are identical.
func (h *MessageHandler) GetConversation(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID, err := strconv.Atoi(vars["userId"])
	if err != nil {
		http.Error(w, "Invalid user id", http.StatusBadRequest)
		return
	}
	otherID, err := strconv.Atoi(vars["otherId"])
	if err != nil {
		http.Error(w, "Invalid user id", http.StatusBadRequest)
		return
	}

	messages, err := h.Store.GetConversation(userID, otherID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if messages == nil {
		messages = []models.Message{}
	}
	json.NewEncoder(w).Encode(messages)
}
