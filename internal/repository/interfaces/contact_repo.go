package interfaces

import (
	"contact_system/internal/domain"
	"contact_system/internal/model"
)

// ContactRepository defines the persistence operations for contacts.
// Lookups are always scoped to the owning username so a contact is never
// reachable through another user's identity.
type ContactRepository interface {
	Create(contact *domain.Contact) error
	FindByID(username string, id uint) (*domain.Contact, error)
	CountByID(username string, id uint) (int64, error)
	Update(contact *domain.Contact) error
	Delete(id uint) error
	Search(username string, req *model.SearchContactRequest) ([]domain.Contact, int64, error)
}
