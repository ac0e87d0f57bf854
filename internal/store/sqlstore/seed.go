package sqlstore

import "github.com/ajensen/friendlink/internal/models"

// SeedDemo inserts a demo customer and a handful of friend profiles so the
// browser client has something to show. No-op once any user exists.
func (s *SQLStore) SeedDemo() error {
	var count int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM users").Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	users := []models.User{
		{Name: "Alex Carter", Role: models.RoleCustomer, City: "Portland"},
		{
			Name: "Maya Lindqvist", Role: models.RoleFriend, City: "Portland", Age: 27,
			Languages: []string{"English", "Swedish"}, Interests: []string{"Hiking", "Board games"},
			About: "Outdoorsy and always up for a trivia night.", HourlyRate: 25, Verified: true, Rating: 4.8,
		},
		{
			Name: "Diego Ramos", Role: models.RoleFriend, City: "Austin", Age: 31,
			Languages: []string{"English", "Spanish"}, Interests: []string{"Movies", "Live music"},
			About: "Concert buddy, movie partner, taco tour guide.", HourlyRate: 20, Verified: true, Rating: 4.6,
		},
		{
			Name: "Yuki Tanaka", Role: models.RoleFriend, City: "Seattle", Age: 24,
			Languages: []string{"English", "Japanese"}, Interests: []string{"Museums", "Photography"},
			About: "Gallery walks and coffee shop hopping.", HourlyRate: 30, Verified: false, Rating: 4.9,
		},
	}

	for i := range users {
		if err := s.CreateUser(&users[i]); err != nil {
			return err
		}
	}
	return nil
}
