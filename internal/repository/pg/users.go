package pg

import (
	"database/sql"

	"github.com/grocito/grocito/internal/model"
)

func (r *Repository) GetUserByLogin(login string) *model.User {
	var user model.User

	err := r.executeWithRetryConnection(func(db *sql.DB) error {
		row := db.QueryRow(`SELECT id, login, password, role, created_at FROM users WHERE login = $1`, login)
		return row.Scan(&user.ID, &user.Login, &user.Password, &user.Role, &user.CreatedAt)
	})
	if err != nil {
		return nil
	}

	return &user
}

func (r *Repository) CreateUser(user model.User) (int64, error) {
	var userID int64

	err := r.executeWithRetryConnection(func(db *sql.DB) error {
		row := db.QueryRow(`INSERT INTO users (login, password, role) VALUES ($1, $2, $3) RETURNING id`,
			user.Login,
			user.Password,
			user.Role,
		)
		return row.Scan(&userID)
	})
	if err != nil {
		return 0, err
	}

	return userID, nil
}
