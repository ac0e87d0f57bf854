package sqlstore

import (
	"time"

	"github.com/ajensen/friendlink/internal/models"
)

func (s *SQLStore) CreateBooking(booking *models.Booking) error {
	booking.CreatedAt = time.Now().UTC()
	query := s.rebind("INSERT INTO bookings (reference, customer_id, friend_id, activity, duration, cost, created_at) VALUES (?, ?, ?, ?, ?, ?, ?) RETURNING id")
	return s.db.QueryRow(query,
		booking.Reference, booking.CustomerID, booking.FriendID,
		booking.Activity, booking.Duration, booking.Cost, booking.CreatedAt,
	).Scan(&booking.ID)
}

func (s *SQLStore) GetBooking(id int) (*models.Booking, error) {
	var b models.Booking
	query := s.rebind("SELECT id, reference, customer_id, friend_id, activity, duration, cost, created_at FROM bookings WHERE id = ?")
	err := s.db.QueryRow(query, id).Scan(&b.ID, &b.Reference, &b.CustomerID, &b.FriendID, &b.Activity, &b.Duration, &b.Cost, &b.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (s *SQLStore) ListBookingsForCustomer(customerID int) ([]models.Booking, error) {
	query := s.rebind("SELECT id, reference, customer_id, friend_id, activity, duration, cost, created_at FROM bookings WHERE customer_id = ? ORDER BY created_at DESC, id DESC")
	rows, err := s.db.Query(query, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []models.Booking
	for rows.Next() {
		var b models.Booking
		if err := rows.Scan(&b.ID, &b.Reference, &b.CustomerID, &b.FriendID, &b.Activity, &b.Duration, &b.Cost, &b.CreatedAt); err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}
