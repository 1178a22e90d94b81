package models

import "time"

type User struct {
	ID       string    // Opaque unique identifier (UUID)
	Username string    // Login name (unique)
	Password []byte    // bcrypt hash
	Created  time.Time // Registration date
}
