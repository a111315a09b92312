package models

import (
	"strings"
	"time"
)

const (
	RoleEmployee = "Employee"
	RoleManager  = "Manager"
	RoleAdmin    = "Admin"
)

type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	FirstName    string    `gorm:"not null" json:"firstName"`
	LastName     string    `gorm:"not null" json:"lastName"`
	Role         string    `gorm:"not null;default:Employee" json:"role"`
	ManagerID    *uint     `json:"managerId"`
	CreatedAt    time.Time `gorm:"not null" json:"createdAt"`
}

func (user User) DisplayName() string {
	return strings.TrimSpace(user.FirstName + " " + user.LastName)
}

func IsValidRole(role string) bool {
	switch role {
	case RoleEmployee, RoleManager, RoleAdmin:
		return true
	}
	return false
}

// RequiresManagerLink reports whether the role may carry a manager reference.
// Managers and admins never have one.
func RequiresManagerLink(role string) bool {
	return role == RoleEmployee
}
