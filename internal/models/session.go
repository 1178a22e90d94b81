package models

import "time"

type Session struct {
	Token   string    // Unique session token
	UserID  string    // Owning user ID
	Expires time.Time // Expiry time
	Created time.Time // Creation time
}
