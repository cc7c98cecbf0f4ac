package mysql

import (
	"strings"

	"contact_system/internal/domain" // Importing domain models
	"contact_system/internal/model"

	"gorm.io/gorm" // GORM ORM library
)

// contactRepository implements interfaces.ContactRepository on GORM
type contactRepository struct {
	db *gorm.DB
}

// NewContactRepository creates a new contactRepository instance
func NewContactRepository(db *gorm.DB) *contactRepository {
	return &contactRepository{db: db}
}

// Create inserts a new contact row
func (r *contactRepository) Create(contact *domain.Contact) error {
	return r.db.Create(contact).Error
}

// FindByID fetches the contact with the given id owned by username
func (r *contactRepository) FindByID(username string, id uint) (*domain.Contact, error) {
	var contact domain.Contact
	err := r.db.Where("id = ? AND username = ?", id, username).First(&contact).Error
	if err != nil {
		return nil, err
	}
	return &contact, nil
}

// CountByID counts contacts matching both id and owner
func (r *contactRepository) CountByID(username string, id uint) (int64, error) {
	var count int64
	err := r.db.Model(&domain.Contact{}).
		Where("id = ? AND username = ?", id, username).
		Count(&count).Error
	return count, err
}

// Update saves all contact fields, clearing optional columns left nil
func (r *contactRepository) Update(contact *domain.Contact) error {
	return r.db.Save(contact).Error
}

// Delete removes the contact row; addresses go with it via the FK cascade
func (r *contactRepository) Delete(id uint) error {
	return r.db.Delete(&domain.Contact{}, id).Error
}

// Search returns one page of the owner's contacts matching the filters,
// together with the total match count. Results are ordered by id so paging
// is stable across requests.
func (r *contactRepository) Search(username string, req *model.SearchContactRequest) ([]domain.Contact, int64, error) {
	filters := func(db *gorm.DB) *gorm.DB {
		db = db.Where("username = ?", username)
		if req.Name != "" {
			pattern := "%" + strings.ToLower(req.Name) + "%"
			db = db.Where(
				r.db.Where("LOWER(first_name) LIKE ?", pattern).
					Or("LOWER(last_name) LIKE ?", pattern),
			)
		}
		if req.Email != "" {
			db = db.Where("email LIKE ?", "%"+req.Email+"%")
		}
		if req.Phone != "" {
			db = db.Where("phone LIKE ?", "%"+req.Phone+"%")
		}
		return db
	}

	var total int64
	if err := r.db.Model(&domain.Contact{}).Scopes(filters).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (req.Page - 1) * req.Size // Calculate offset for pagination
	var contacts []domain.Contact
	err := r.db.Scopes(filters).Order("id").Offset(offset).Limit(req.Size).Find(&contacts).Error
	if err != nil {
		return nil, 0, err
	}
	return contacts, total, nil
}
