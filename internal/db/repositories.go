package db

import "gorm.io/gorm"

type Repositories struct {
	Users          *UserRepository
	Leaves         *LeaveRepository
	PasswordResets *PasswordResetRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:          NewUserRepository(database),
		Leaves:         NewLeaveRepository(database),
		PasswordResets: NewPasswordResetRepository(database),
	}
}
