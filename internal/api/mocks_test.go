package api

import (
	"contact_system/internal/domain"
	"contact_system/internal/model"
	"contact_system/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
)

// MockUserService is a mock implementation of service.UserServiceInterface
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Register(req *model.RegisterUserRequest) (*model.UserResponse, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.UserResponse), args.Error(1)
}

func (m *MockUserService) Login(req *model.LoginUserRequest) (*model.TokenResponse, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TokenResponse), args.Error(1)
}

func (m *MockUserService) Current(user *domain.User) *model.UserResponse {
	args := m.Called(user)
	return args.Get(0).(*model.UserResponse)
}

func (m *MockUserService) Update(user *domain.User, req *model.UpdateUserRequest) (*model.UserResponse, error) {
	args := m.Called(user, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.UserResponse), args.Error(1)
}

func (m *MockUserService) Logout(user *domain.User) error {
	args := m.Called(user)
	return args.Error(0)
}

var _ service.UserServiceInterface = (*MockUserService)(nil)

// MockContactService is a mock implementation of service.ContactServiceInterface
type MockContactService struct {
	mock.Mock
}

func (m *MockContactService) Create(user *domain.User, req *model.CreateContactRequest) (*model.ContactResponse, error) {
	args := m.Called(user, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ContactResponse), args.Error(1)
}

func (m *MockContactService) Get(user *domain.User, contactID uint) (*model.ContactResponse, error) {
	args := m.Called(user, contactID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ContactResponse), args.Error(1)
}

func (m *MockContactService) Update(user *domain.User, req *model.UpdateContactRequest) (*model.ContactResponse, error) {
	args := m.Called(user, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ContactResponse), args.Error(1)
}

func (m *MockContactService) Remove(user *domain.User, contactID uint) error {
	args := m.Called(user, contactID)
	return args.Error(0)
}

func (m *MockContactService) Search(user *domain.User, req *model.SearchContactRequest) ([]model.ContactResponse, *model.Paging, error) {
	args := m.Called(user, req)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).([]model.ContactResponse), args.Get(1).(*model.Paging), args.Error(2)
}

var _ service.ContactServiceInterface = (*MockContactService)(nil)

// MockAddressService is a mock implementation of service.AddressServiceInterface
type MockAddressService struct {
	mock.Mock
}

func (m *MockAddressService) Create(user *domain.User, contactID uint, req *model.CreateAddressRequest) (*model.AddressResponse, error) {
	args := m.Called(user, contactID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AddressResponse), args.Error(1)
}

func (m *MockAddressService) Get(user *domain.User, contactID, addressID uint) (*model.AddressResponse, error) {
	args := m.Called(user, contactID, addressID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AddressResponse), args.Error(1)
}

func (m *MockAddressService) Update(user *domain.User, contactID uint, req *model.UpdateAddressRequest) (*model.AddressResponse, error) {
	args := m.Called(user, contactID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AddressResponse), args.Error(1)
}

func (m *MockAddressService) Remove(user *domain.User, contactID, addressID uint) error {
	args := m.Called(user, contactID, addressID)
	return args.Error(0)
}

var _ service.AddressServiceInterface = (*MockAddressService)(nil)

// asUser stands in for the auth middleware and attaches a resolved user
func asUser(username string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user", &domain.User{Username: username, Name: username})
		c.Next()
	}
}
