package models

import "time"

// User is a registry entry keyed by phone number. Usernames are display
// names and are not required to be unique.
type User struct {
	Phone     string    `json:"phone" gorm:"primaryKey;size:32"`
	Username  string    `json:"username" gorm:"size:64;not null"`
	CreatedAt time.Time `json:"created_at"`
}
