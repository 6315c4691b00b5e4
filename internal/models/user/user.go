package user

import (
	"context"
	"errors"
	"time"

	"github.com/avododokhov/numisvault/pkg/utils"
	"gorm.io/gorm"
)

// User is an account able to own collections and log in.
type User struct {
	ID           int       `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"size:50;not null;uniqueIndex" json:"username" validate:"required,min=3,max=50"`
	Email        string    `gorm:"size:100;not null;uniqueIndex" json:"email" validate:"required,email,max=100"`
	PasswordHash string    `gorm:"size:100;not null" json:"-"`
	FirstName    string    `gorm:"size:100" json:"first_name" validate:"omitempty,max=100"`
	LastName     string    `gorm:"size:100" json:"last_name" validate:"omitempty,max=100"`
	IsActive     bool      `gorm:"default:true" json:"is_active"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// ListUsers lists all users ordered by username. Password hashes never
// leave this package in JSON form.
func ListUsers(ctx context.Context, db *gorm.DB) ([]User, error) {
	var users []User
	if err := db.WithContext(ctx).Order("username").Find(&users).Error; err != nil {
		return nil, utils.StorageError(err)
	}
	return users, nil
}

// GetUserByID fetches one user by id.
func GetUserByID(ctx context.Context, db *gorm.DB, id int) (*User, error) {
	var u User
	if err := db.WithContext(ctx).First(&u, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NotFoundError("User")
		}
		return nil, utils.StorageError(err)
	}
	return &u, nil
}

// GetUserByEmail fetches one user by email, or nil when absent.
func GetUserByEmail(ctx context.Context, db *gorm.DB, email string) (*User, error) {
	var u User
	if err := db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, utils.StorageError(err)
	}
	return &u, nil
}

// CreateUser hashes the password and persists the account.
func CreateUser(ctx context.Context, db *gorm.DB, u *User, password string) error {
	hash, err := utils.HashPassword(password)
	if err != nil {
		return utils.StorageError(err)
	}
	u.PasswordHash = hash

	if err := db.WithContext(ctx).Create(u).Error; err != nil {
		return utils.StorageError(err)
	}
	return nil
}

// UpdateUser replaces the editable profile fields; a non-empty password
// is re-hashed and stored alongside.
func UpdateUser(ctx context.Context, db *gorm.DB, id int, u *User, password string) error {
	var existing User
	if err := db.WithContext(ctx).First(&existing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFoundError("User")
		}
		return utils.StorageError(err)
	}

	u.ID = id
	u.CreatedAt = existing.CreatedAt
	u.PasswordHash = existing.PasswordHash
	if password != "" {
		hash, err := utils.HashPassword(password)
		if err != nil {
			return utils.StorageError(err)
		}
		u.PasswordHash = hash
	}

	if err := db.WithContext(ctx).Save(u).Error; err != nil {
		return utils.StorageError(err)
	}
	return nil
}

// DeleteUser removes an account by id.
func DeleteUser(ctx context.Context, db *gorm.DB, id int) error {
	result := db.WithContext(ctx).Delete(&User{}, id)
	if result.Error != nil {
		return utils.StorageError(result.Error)
	}
	if result.RowsAffected == 0 {
		return utils.NotFoundError("User")
	}
	return nil
}
