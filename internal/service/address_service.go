package service

import (
	"errors"

	"contact_system/internal/apperr"
	"contact_system/internal/domain"
	"contact_system/internal/model"
	"contact_system/internal/repository/interfaces"
	"contact_system/internal/validation"

	"gorm.io/gorm" // GORM ORM library
)

// AddressServiceInterface is the contract the address handlers depend on
type AddressServiceInterface interface {
	Create(user *domain.User, contactID uint, req *model.CreateAddressRequest) (*model.AddressResponse, error)
	Get(user *domain.User, contactID, addressID uint) (*model.AddressResponse, error)
	Update(user *domain.User, contactID uint, req *model.UpdateAddressRequest) (*model.AddressResponse, error)
	Remove(user *domain.User, contactID, addressID uint) error
}

// AddressService handles the address CRUD operations. Every operation first
// resolves the user→contact ownership link; address logic only runs after
// that succeeds.
type AddressService struct {
	contactRepo interfaces.ContactRepository
	addressRepo interfaces.AddressRepository
}

// NewAddressService creates a new AddressService instance
func NewAddressService(contactRepo interfaces.ContactRepository, addressRepo interfaces.AddressRepository) *AddressService {
	return &AddressService{contactRepo: contactRepo, addressRepo: addressRepo}
}

// resolveContact confirms the contact exists and belongs to user. A missing
// contact and someone else's contact are indistinguishable to the caller.
func (s *AddressService) resolveContact(user *domain.User, contactID uint) error {
	if err := validID(contactID, "contact_id"); err != nil {
		return err
	}
	count, err := s.contactRepo.CountByID(user.Username, contactID)
	if err != nil {
		return err
	}
	if count == 0 {
		return apperr.NotFound("contact is not found")
	}
	return nil
}

// Create stores a new address under an owned contact
func (s *AddressService) Create(user *domain.User, contactID uint, req *model.CreateAddressRequest) (*model.AddressResponse, error) {
	if err := s.resolveContact(user, contactID); err != nil {
		return nil, err
	}
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	address := domain.Address{
		Street:     nullable(req.Street),
		City:       nullable(req.City),
		Province:   nullable(req.Province),
		Country:    req.Country,
		PostalCode: nullable(req.PostalCode),
		ContactID:  contactID,
	}
	if err := s.addressRepo.Create(&address); err != nil {
		return nil, err
	}
	return addressResponse(&address), nil
}

// Get returns the projection of one address under an owned contact
func (s *AddressService) Get(user *domain.User, contactID, addressID uint) (*model.AddressResponse, error) {
	if err := s.resolveContact(user, contactID); err != nil {
		return nil, err
	}
	if err := validID(addressID, "address_id"); err != nil {
		return nil, err
	}
	address, err := s.addressRepo.FindByID(contactID, addressID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("address is not found")
		}
		return nil, err
	}
	return addressResponse(address), nil
}

// Update overwrites every address field after verifying the id sits under
// the resolved contact.
func (s *AddressService) Update(user *domain.User, contactID uint, req *model.UpdateAddressRequest) (*model.AddressResponse, error) {
	if err := s.resolveContact(user, contactID); err != nil {
		return nil, err
	}
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	count, err := s.addressRepo.CountByID(contactID, req.ID)
	if err != nil {
		return nil, err
	}
	if count != 1 {
		return nil, apperr.NotFound("address is not found")
	}
	address := domain.Address{
		ID:         req.ID,
		Street:     nullable(req.Street),
		City:       nullable(req.City),
		Province:   nullable(req.Province),
		Country:    req.Country,
		PostalCode: nullable(req.PostalCode),
		ContactID:  contactID,
	}
	if err := s.addressRepo.Update(&address); err != nil {
		return nil, err
	}
	return addressResponse(&address), nil
}

// Remove deletes one address under an owned contact
func (s *AddressService) Remove(user *domain.User, contactID, addressID uint) error {
	if err := s.resolveContact(user, contactID); err != nil {
		return err
	}
	if err := validID(addressID, "address_id"); err != nil {
		return err
	}
	count, err := s.addressRepo.CountByID(contactID, addressID)
	if err != nil {
		return err
	}
	if count != 1 {
		return apperr.NotFound("address is not found")
	}
	return s.addressRepo.Delete(addressID)
}

// addressResponse maps an address row to its client projection
func addressResponse(address *domain.Address) *model.AddressResponse {
	return &model.AddressResponse{
		ID:         address.ID,
		Street:     address.Street,
		City:       address.City,
		Province:   address.Province,
		Country:    address.Country,
		PostalCode: address.PostalCode,
	}
}
