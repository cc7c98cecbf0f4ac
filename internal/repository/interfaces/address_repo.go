package interfaces

import "contact_system/internal/domain"

// AddressRepository defines the persistence operations for addresses.
// Lookups are scoped to the owning contact id.
type AddressRepository interface {
	Create(address *domain.Address) error
	FindByID(contactID, id uint) (*domain.Address, error)
	CountByID(contactID, id uint) (int64, error)
	Update(address *domain.Address) error
	Delete(id uint) error
}
