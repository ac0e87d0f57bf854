package sqlstore

import (
	"time"

	"github.com/ajensen/friendlink/internal/models"
)

// SaveMessage appends one message row. The id and timestamp are assigned
// here, never by the caller, so insertion order is the authoritative order.
func (s *SQLStore) SaveMessage(senderID, receiverID int, content string) (*models.Message, error) {
	msg := &models.Message{
		SenderID:   senderID,
		ReceiverID: receiverID,
		Content:    content,
		CreatedAt:  time.Now().UTC(),
	}
	query := s.rebind("INSERT INTO messages (sender_id, receiver_id, content, created_at) VALUES (?, ?, ?, ?) RETURNING id")
	err := s.db.QueryRow(query, msg.SenderID, msg.ReceiverID, msg.Content, msg.CreatedAt).Scan(&msg.ID)
	if err != nil {
		return nil, err
	}
	return msg, nil
}

// GetConversation returns every message exchanged between the two users,
// oldest first. The pair key is unordered: (A, B) and (B, A) are the same
// conversation.
func (s *SQLStore) GetConversation(userID, otherID int) ([]models.Message, error) {
	query := s.rebind(`
		SELECT id, sender_id, receiver_id, content, created_at
		FROM messages
		WHERE (sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)
		ORDER BY created_at ASC, id ASC
	`)
	rows, err := s.db.Query(query, userID, otherID, otherID, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []models.Message
	for rows.Next() {
		var m models.Message
		if err := rows.Scan(&m.ID, &m.SenderID, &m.ReceiverID, &m.Content, &m.CreatedAt); err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}
