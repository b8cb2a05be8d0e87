package model

import (
	"time"
)

// NoNumberName is the placeholder a participant carries until they register
// a start number. The question flow refuses to serve questions to such users.
const NoNumberName = "no_number"

type User struct {
	ID          string    `gorm:"primarykey;type:text" json:"id"`
	Name        string    `json:"name" gorm:"not null"` // doubles as the start number shown on the bib
	PhoneNumber string    `json:"phone_number"`
	Role        string    `json:"role" gorm:"not null;default:'user'"` // "user" or "admin"
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (u *User) IsAdmin() bool {
	return u.Role == "admin"
}

func (u *User) HasStartNumber() bool {
	return u.Name != "" && u.Name != NoNumberName
}
