package mysql

import (
	"contact_system/internal/domain" // Importing domain models

	"gorm.io/gorm" // GORM ORM library
)

// userRepository implements interfaces.UserRepository on GORM
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new userRepository instance
func NewUserRepository(db *gorm.DB) *userRepository {
	return &userRepository{db: db}
}

// Create inserts a new user row
func (r *userRepository) Create(user *domain.User) error {
	return r.db.Create(user).Error
}

// CountByUsername counts users with the given username
func (r *userRepository) CountByUsername(username string) (int64, error) {
	var count int64
	err := r.db.Model(&domain.User{}).Where("username = ?", username).Count(&count).Error
	return count, err
}

// FindByUsername fetches a user by username
func (r *userRepository) FindByUsername(username string) (*domain.User, error) {
	var user domain.User
	if err := r.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByToken fetches the user holding the given session token
func (r *userRepository) FindByToken(token string) (*domain.User, error) {
	var user domain.User
	if err := r.db.Where("token = ?", token).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Update saves all user fields, including a nil token on logout
func (r *userRepository) Update(user *domain.User) error {
	return r.db.Save(user).Error
}
