package service

import (
	"context"
	"errors"

	"contact_system/internal/apperr"
	"contact_system/internal/domain"
	"contact_system/internal/model"
	"contact_system/internal/repository/interfaces"
	"contact_system/internal/utils"
	"contact_system/internal/validation"

	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logging library
	"gorm.io/gorm"                 // GORM ORM library
)

// ContactServiceInterface is the contract the contact handlers depend on
type ContactServiceInterface interface {
	Create(user *domain.User, req *model.CreateContactRequest) (*model.ContactResponse, error)
	Get(user *domain.User, contactID uint) (*model.ContactResponse, error)
	Update(user *domain.User, req *model.UpdateContactRequest) (*model.ContactResponse, error)
	Remove(user *domain.User, contactID uint) error
	Search(user *domain.User, req *model.SearchContactRequest) ([]model.ContactResponse, *model.Paging, error)
}

// ContactService handles the contact CRUD and search operations. rdb may be
// nil, in which case reads always go to the database.
type ContactService struct {
	contactRepo interfaces.ContactRepository
	rdb         *redis.Client
}

// NewContactService creates a new ContactService instance
func NewContactService(contactRepo interfaces.ContactRepository, rdb *redis.Client) *ContactService {
	return &ContactService{contactRepo: contactRepo, rdb: rdb}
}

// Create validates the payload and stores a contact owned by user
func (s *ContactService) Create(user *domain.User, req *model.CreateContactRequest) (*model.ContactResponse, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	contact := domain.Contact{
		FirstName: req.FirstName,
		LastName:  nullable(req.LastName),
		Email:     nullable(req.Email),
		Phone:     nullable(req.Phone),
		Username:  user.Username,
	}
	if err := s.contactRepo.Create(&contact); err != nil {
		return nil, err
	}
	return contactResponse(&contact), nil
}

// Get returns the projection of one owned contact, serving from the cache
// when a fresh copy is there.
func (s *ContactService) Get(user *domain.User, contactID uint) (*model.ContactResponse, error) {
	if err := validID(contactID, "contact_id"); err != nil {
		return nil, err
	}
	cacheKey := utils.ContactCacheKey(user.Username, contactID)
	if s.rdb != nil {
		var cached model.ContactResponse
		found, err := utils.GetCache(context.Background(), s.rdb, cacheKey, &cached)
		if err == nil && found {
			return &cached, nil
		}
	}
	contact, err := s.contactRepo.FindByID(user.Username, contactID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("contact is not found")
		}
		return nil, err
	}
	resp := contactResponse(contact)
	if s.rdb != nil {
		_ = utils.SetCache(context.Background(), s.rdb, cacheKey, resp, utils.ContactCacheTTL)
	}
	return resp, nil
}

// Update overwrites every contact field after verifying the id belongs to
// user. The existence check and the write are separate statements; a
// concurrent delete in between loses to the write.
func (s *ContactService) Update(user *domain.User, req *model.UpdateContactRequest) (*model.ContactResponse, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	count, err := s.contactRepo.CountByID(user.Username, req.ID)
	if err != nil {
		return nil, err
	}
	if count != 1 {
		return nil, apperr.NotFound("contact is not found")
	}
	contact := domain.Contact{
		ID:        req.ID,
		FirstName: req.FirstName,
		LastName:  nullable(req.LastName),
		Email:     nullable(req.Email),
		Phone:     nullable(req.Phone),
		Username:  user.Username,
	}
	if err := s.contactRepo.Update(&contact); err != nil {
		return nil, err
	}
	s.invalidate(user.Username, req.ID)
	return contactResponse(&contact), nil
}

// Remove deletes one owned contact; its addresses cascade away with it
func (s *ContactService) Remove(user *domain.User, contactID uint) error {
	if err := validID(contactID, "contact_id"); err != nil {
		return err
	}
	count, err := s.contactRepo.CountByID(user.Username, contactID)
	if err != nil {
		return err
	}
	if count != 1 {
		return apperr.NotFound("contact is not found")
	}
	if err := s.contactRepo.Delete(contactID); err != nil {
		return err
	}
	s.invalidate(user.Username, contactID)
	logrus.WithFields(logrus.Fields{
		"username":   user.Username,
		"contact_id": contactID,
	}).Info("Contact removed")
	return nil
}

// Search returns one page of the user's contacts plus paging metadata.
// Pages past the last one come back empty with the totals intact.
func (s *ContactService) Search(user *domain.User, req *model.SearchContactRequest) ([]model.ContactResponse, *model.Paging, error) {
	if req.Page < 1 {
		req.Page = 1 // Default page number
	}
	if req.Size < 1 {
		req.Size = 10 // Default page size
	}
	contacts, total, err := s.contactRepo.Search(user.Username, req)
	if err != nil {
		return nil, nil, err
	}
	responses := make([]model.ContactResponse, len(contacts))
	for i := range contacts {
		responses[i] = *contactResponse(&contacts[i])
	}
	paging := &model.Paging{
		Page:      req.Page,
		TotalPage: int((total + int64(req.Size) - 1) / int64(req.Size)),
		TotalItem: total,
	}
	return responses, paging, nil
}

// invalidate drops the cached projection after a mutation
func (s *ContactService) invalidate(username string, contactID uint) {
	if s.rdb == nil {
		return
	}
	_ = utils.DeleteCache(context.Background(), s.rdb, utils.ContactCacheKey(username, contactID))
}

// contactResponse maps a contact row to its client projection
func contactResponse(contact *domain.Contact) *model.ContactResponse {
	return &model.ContactResponse{
		ID:        contact.ID,
		FirstName: contact.FirstName,
		LastName:  contact.LastName,
		Email:     contact.Email,
		Phone:     contact.Phone,
	}
}
