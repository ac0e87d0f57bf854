package store

import "github.com/ajensen/friendlink/internal/models"

type Store interface {
	// User operations
	CreateUser(user *models.User) error
	GetUserByID(id int) (*models.User, error)
	ListFriends() ([]models.User, error)
	GetFriend(id int) (*models.User, error)

	// Booking operations
	CreateBooking(booking *models.Booking) error
	GetBooking(id int) (*models.Booking, error)
	ListBookingsForCustomer(customerID int) ([]models.Booking, error)

	// Message operations
	SaveMessage(senderID, receiverID int, content string) (*models.Message, error)
	GetConversation(userID, otherID int) ([]models.Message, error)
}
