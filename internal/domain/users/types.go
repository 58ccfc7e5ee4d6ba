package users

import (
	"errors"
	"time"

	"github.com/Zorochan404/adv-backend-sub001/internal/domain/accesscontrol"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrNotFound          = errors.New("resource not found")
	QueryTimeoutDuration = time.Second * 5
)

type User struct {
	ID         int64              `json:"id"`
	Name       string             `json:"name"`
	Email      string             `json:"email"`
	Phone      string             `json:"phone"`
	Password   password           `json:"-"`
	Role       accesscontrol.Role `json:"role"`
	ParkingID  *int64             `json:"parking_id,omitempty"`
	IsVerified bool               `json:"is_verified"`
	IsActive   bool               `json:"is_active"`
	CreatedAt  time.Time          `json:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at"`
}

// Actor projects the user into the identity the access policy evaluates.
func (u *User) Actor() accesscontrol.Actor {
	return accesscontrol.Actor{ID: u.ID, Role: u.Role, ParkingID: u.ParkingID}
}

type password struct {
	text *string
	hash []byte
}

func (p *password) Set(text string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(text), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	p.text = &text
	p.hash = hash

	return nil
}

func (p *password) Compare(text string) error {
	return bcrypt.CompareHashAndPassword(p.hash, []byte(text))
}
