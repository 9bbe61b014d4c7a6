package models

import "time"

// User defines an admin account, based on the 'users' table. Passwords are
// stored as bcrypt hashes.
type User struct {
	ID        int64     `json:"id" db:"id" example:"1"`
	Username  string    `json:"username" db:"username" example:"admin"`
	Password  string    `json:"-" db:"password"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
