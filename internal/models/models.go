package models

import "time"

const (
	RoleCustomer = "customer"
	RoleFriend   = "friend"
)

type User struct {
	ID         int      `json:"id"`
	Name       string   `json:"name"`
	Role       string   `json:"role"`
	City       string   `json:"city"`
	Age        int      `json:"age"`
	Languages  []string `json:"languages"`
	Interests  []string `json:"interests"`
	About      string   `json:"about"`
	HourlyRate float64  `json:"hourlyRate"`
	Verified   bool     `json:"verified"`
	Rating     float64  `json:"rating"`
	Password   string   `json:"-"`
}

type Booking struct {
	ID         int       `json:"id"`
	Reference  string    `json:"reference"`
	CustomerID int       `json:"customerId"`
	FriendID   int       `json:"friendId"`
	Activity   string    `json:"activity"`
	Duration   string    `json:"duration"`
	Cost       float64   `json:"cost"`
	CreatedAt  time.Time `json:"createdAt"`
}

type Message struct {
	ID         int       `json:"id"`
	SenderID   int       `json:"senderId"`
	ReceiverID int       `json:"receiverId"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"createdAt"`
}
