package user

import (
	"time"
)

// Rank orders roles by privilege. Lower rank means more privilege; Admin
// strictly dominates everything below it.
type Rank int

const (
	RankAdmin      Rank = 1
	RankJournalist Rank = 2
	RankUser       Rank = 3
)

// AtMost reports whether r holds at least the privilege of other
// (remember: lower rank = more privilege).
func (r Rank) AtMost(other Rank) bool {
	return r <= other
}

type Role struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"uniqueIndex;size:32;not null"`
	Rank      Rank      `json:"rank" gorm:"uniqueIndex;not null"`
	CreatedAt time.Time `json:"createdAt"`
}

type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	FirstName    string    `json:"firstName" gorm:"size:64"`
	LastName     string    `json:"lastName" gorm:"size:64"`
	Username     string    `json:"username" gorm:"uniqueIndex;size:32;not null"`
	PasswordHash string    `json:"-" gorm:"size:128;not null"`
	Image        string    `json:"image,omitempty"`
	RoleID       uint      `json:"roleId" gorm:"not null"`
	Role         Role      `json:"-" gorm:"foreignKey:RoleID"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (u *User) Rank() Rank {
	return u.Role.Rank
}

func (u *User) IsAdmin() bool {
	return u.Role.Rank == RankAdmin
}
