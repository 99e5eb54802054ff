package models

import (
	"errors"
	"strings"
	"time"
)

// User is a shop owner. Every client and transaction belongs to exactly one user.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

func (u *User) Validate() error {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	at := strings.Index(u.Email, "@")
	if at < 1 || at == len(u.Email)-1 {
		return errors.New("invalid email")
	}
	return nil
}
