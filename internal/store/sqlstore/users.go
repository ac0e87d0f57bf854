package sqlstore

import (
	"database/sql"

	"github.com/ajensen/friendlink/internal/models"
)

const userColumns = `id, name, role, COALESCE(city, ''), age, COALESCE(languages, ''), COALESCE(interests, ''), COALESCE(about, ''), hourly_rate, verified, rating`

func (s *SQLStore) CreateUser(user *models.User) error {
	if user.Role == "" {
		user.Role = models.RoleCustomer
	}
	query := s.rebind("INSERT INTO users (name, role, city, age, languages, interests, about, hourly_rate, verified, rating, password) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?) RETURNING id")
	return s.db.QueryRow(query,
		user.Name, user.Role, user.City, user.Age,
		encodeList(user.Languages), encodeList(user.Interests),
		user.About, user.HourlyRate, user.Verified, user.Rating, user.Password,
	).Scan(&user.ID)
}

func (s *SQLStore) GetUserByID(id int) (*models.User, error) {
	query := s.rebind("SELECT " + userColumns + " FROM users WHERE id = ?")
	return s.scanUser(s.db.QueryRow(query, id))
}

func (s *SQLStore) GetFriend(id int) (*models.User, error) {
	query := s.rebind("SELECT " + userColumns + " FROM users WHERE id = ? AND role = ?")
	return s.scanUser(s.db.QueryRow(query, id, models.RoleFriend))
}

func (s *SQLStore) ListFriends() ([]models.User, error) {
	query := s.rebind("SELECT " + userColumns + " FROM users WHERE role = ? ORDER BY id")
	rows, err := s.db.Query(query, models.RoleFriend)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var (
			user                 models.User
			languages, interests string
		)
		if err := rows.Scan(&user.ID, &user.Name, &user.Role, &user.City, &user.Age,
			&languages, &interests, &user.About, &user.HourlyRate, &user.Verified, &user.Rating); err != nil {
			return nil, err
		}
		user.Languages = decodeList(languages)
		user.Interests = decodeList(interests)
		users = append(users, user)
	}
	return users, rows.Err()
}

func (s *SQLStore) scanUser(row *sql.Row) (*models.User, error) {
	var (
		user                 models.User
		languages, interests string
	)
	err := row.Scan(&user.ID, &user.Name, &user.Role, &user.City, &user.Age,
		&languages, &interests, &user.About, &user.HourlyRate, &user.Verified, &user.Rating)
	if err != nil {
		return nil, err
	}
	user.Languages = decodeList(languages)
	user.Interests = decodeList(interests)
	return &user, nil
}
