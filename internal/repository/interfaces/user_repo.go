package interfaces

import "contact_system/internal/domain"

// UserRepository defines the persistence operations for users
type UserRepository interface {
	Create(user *domain.User) error
	CountByUsername(username string) (int64, error)
	FindByUsername(username string) (*domain.User, error)
	FindByToken(token string) (*domain.User, error)
	Update(user *domain.User) error
}
