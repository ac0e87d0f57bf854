package sqlstore

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/ajensen/friendlink/internal/models"
)

func TestCreateUser(t *testing.T) {
	SetupTestDB(t)
	defer TeardownTestDB()

	user := &models.User{
		Name:       "Maya",
		Role:       models.RoleFriend,
		City:       "Portland",
		Age:        27,
		Languages:  []string{"English", "Swedish"},
		Interests:  []string{"Hiking"},
		About:      "Outdoorsy",
		HourlyRate: 25,
		Verified:   true,
		Rating:     4.8,
	}
	if err := testStore.CreateUser(user); err != nil {
		t.Fatalf("Failed to create user: %v", err)
	}
	if user.ID == 0 {
		t.Error("Expected non-zero user ID")
	}

	got, err := testStore.GetUserByID(user.ID)
	if err != nil {
		t.Fatalf("Failed to get user: %v", err)
	}
	if got.Name != "Maya" || got.City != "Portland" || got.HourlyRate != 25 {
		t.Errorf("Unexpected user: %+v", got)
	}
	if len(got.Languages) != 2 || got.Languages[0] != "English" {
		t.Errorf("Expected languages to round-trip, got %v", got.Languages)
	}
	if !got.Verified {
		t.Error("Expected verified flag to round-trip")
	}
}

func TestCreateUserDefaultsToCustomer(t *testing.T) {
	SetupTestDB(t)
	defer TeardownTestDB()

	user := &models.User{Name: "Alex"}
	if err := testStore.CreateUser(user); err != nil {
		t.Fatalf("Failed to create user: %v", err)
	}

	got, _ := testStore.GetUserByID(user.ID)
	if got.Role != models.RoleCustomer {
		t.Errorf("Expected role 'customer', got '%s'", got.Role)
	}
}

func TestGetFriend(t *testing.T) {
	SetupTestDB(t)
	defer TeardownTestDB()

	customer := &models.User{Name: "Alex", Role: models.RoleCustomer}
	friend := &models.User{Name: "Diego", Role: models.RoleFriend, HourlyRate: 20}
	testStore.CreateUser(customer)
	testStore.CreateUser(friend)

	got, err := testStore.GetFriend(friend.ID)
	if err != nil {
		t.Fatalf("Failed to get friend: %v", err)
	}
	if got.Name != "Diego" {
		t.Errorf("Expected name 'Diego', got '%s'", got.Name)
	}

	// A customer id must not resolve as a friend
	if _, err := testStore.GetFriend(customer.ID); !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("Expected sql.ErrNoRows for customer id, got %v", err)
	}

	if _, err := testStore.GetFriend(999); !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("Expected sql.ErrNoRows for missing id, got %v", err)
	}
}

func TestListFriends(t *testing.T) {
	SetupTestDB(t)
	defer TeardownTestDB()

	testStore.CreateUser(&models.User{Name: "Alex", Role: models.RoleCustomer})
	testStore.CreateUser(&models.User{Name: "Maya", Role: models.RoleFriend})
	testStore.CreateUser(&models.User{Name: "Diego", Role: models.RoleFriend})

	friends, err := testStore.ListFriends()
	if err != nil {
		t.Fatalf("ListFriends failed: %v", err)
	}
	if len(friends) != 2 {
		t.Fatalf("Expected 2 friends, got %d", len(friends))
	}
	for _, f := range friends {
		if f.Role != models.RoleFriend {
			t.Errorf("Expected only friend profiles, got role '%s'", f.Role)
		}
	}
}
