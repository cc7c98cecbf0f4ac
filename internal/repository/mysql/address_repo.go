package mysql

import (
	"contact_system/internal/domain" // Importing domain models

	"gorm.io/gorm" // GORM ORM library
)

// addressRepository implements interfaces.AddressRepository on GORM
type addressRepository struct {
	db *gorm.DB
}

// NewAddressRepository creates a new addressRepository instance
func NewAddressRepository(db *gorm.DB) *addressRepository {
	return &addressRepository{db: db}
}

// Create inserts a new address row
func (r *addressRepository) Create(address *domain.Address) error {
	return r.db.Create(address).Error
}

// FindByID fetches the address with the given id under contactID
func (r *addressRepository) FindByID(contactID, id uint) (*domain.Address, error) {
	var address domain.Address
	err := r.db.Where("id = ? AND contact_id = ?", id, contactID).First(&address).Error
	if err != nil {
		return nil, err
	}
	return &address, nil
}

// CountByID counts addresses matching both id and owning contact
func (r *addressRepository) CountByID(contactID, id uint) (int64, error) {
	var count int64
	err := r.db.Model(&domain.Address{}).
		Where("id = ? AND contact_id = ?", id, contactID).
		Count(&count).Error
	return count, err
}

// Update saves all address fields, clearing optional columns left nil
func (r *addressRepository) Update(address *domain.Address) error {
	return r.db.Save(address).Error
}

// Delete removes the address row
func (r *addressRepository) Delete(id uint) error {
	return r.db.Delete(&domain.Address{}, id).Error
}
