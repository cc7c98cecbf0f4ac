package service

import (
	"sort"
	"strings"

	"contact_system/internal/domain"
	"contact_system/internal/model"

	"gorm.io/gorm"
)

// In-memory repository fakes. They store copies so mutations only become
// visible through Update, the way a real row store behaves.

type fakeUserRepo struct {
	users map[string]domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]domain.User)}
}

func (f *fakeUserRepo) Create(user *domain.User) error {
	if _, ok := f.users[user.Username]; ok {
		return gorm.ErrDuplicatedKey
	}
	f.users[user.Username] = *user
	return nil
}

func (f *fakeUserRepo) CountByUsername(username string) (int64, error) {
	if _, ok := f.users[username]; ok {
		return 1, nil
	}
	return 0, nil
}

func (f *fakeUserRepo) FindByUsername(username string) (*domain.User, error) {
	user, ok := f.users[username]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &user, nil
}

func (f *fakeUserRepo) FindByToken(token string) (*domain.User, error) {
	for _, user := range f.users {
		if user.Token != nil && *user.Token == token {
			u := user
			return &u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) Update(user *domain.User) error {
	f.users[user.Username] = *user
	return nil
}

type fakeContactRepo struct {
	seq      uint
	contacts map[uint]domain.Contact
}

func newFakeContactRepo() *fakeContactRepo {
	return &fakeContactRepo{contacts: make(map[uint]domain.Contact)}
}

func (f *fakeContactRepo) Create(contact *domain.Contact) error {
	f.seq++
	contact.ID = f.seq
	f.contacts[contact.ID] = *contact
	return nil
}

func (f *fakeContactRepo) FindByID(username string, id uint) (*domain.Contact, error) {
	contact, ok := f.contacts[id]
	if !ok || contact.Username != username {
		return nil, gorm.ErrRecordNotFound
	}
	return &contact, nil
}

func (f *fakeContactRepo) CountByID(username string, id uint) (int64, error) {
	if contact, ok := f.contacts[id]; ok && contact.Username == username {
		return 1, nil
	}
	return 0, nil
}

func (f *fakeContactRepo) Update(contact *domain.Contact) error {
	f.contacts[contact.ID] = *contact
	return nil
}

func (f *fakeContactRepo) Delete(id uint) error {
	delete(f.contacts, id)
	return nil
}

func (f *fakeContactRepo) Search(username string, req *model.SearchContactRequest) ([]domain.Contact, int64, error) {
	var matches []domain.Contact
	for _, contact := range f.contacts {
		if contact.Username != username {
			continue
		}
		if req.Name != "" && !matchesName(&contact, req.Name) {
			continue
		}
		if req.Email != "" && !containsPtr(contact.Email, req.Email) {
			continue
		}
		if req.Phone != "" && !containsPtr(contact.Phone, req.Phone) {
			continue
		}
		matches = append(matches, contact)
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].ID < matches[j].ID })

	total := int64(len(matches))
	start := (req.Page - 1) * req.Size
	if start > len(matches) {
		start = len(matches)
	}
	end := start + req.Size
	if end > len(matches) {
		end = len(matches)
	}
	return matches[start:end], total, nil
}

func matchesName(contact *domain.Contact, name string) bool {
	needle := strings.ToLower(name)
	if strings.Contains(strings.ToLower(contact.FirstName), needle) {
		return true
	}
	return contact.LastName != nil && strings.Contains(strings.ToLower(*contact.LastName), needle)
}

func containsPtr(value *string, needle string) bool {
	return value != nil && strings.Contains(*value, needle)
}

type fakeAddressRepo struct {
	seq       uint
	addresses map[uint]domain.Address
}

func newFakeAddressRepo() *fakeAddressRepo {
	return &fakeAddressRepo{addresses: make(map[uint]domain.Address)}
}

func (f *fakeAddressRepo) Create(address *domain.Address) error {
	f.seq++
	address.ID = f.seq
	f.addresses[address.ID] = *address
	return nil
}

func (f *fakeAddressRepo) FindByID(contactID, id uint) (*domain.Address, error) {
	address, ok := f.addresses[id]
	if !ok || address.ContactID != contactID {
		return nil, gorm.ErrRecordNotFound
	}
	return &address, nil
}

func (f *fakeAddressRepo) CountByID(contactID, id uint) (int64, error) {
	if address, ok := f.addresses[id]; ok && address.ContactID == contactID {
		return 1, nil
	}
	return 0, nil
}

func (f *fakeAddressRepo) Update(address *domain.Address) error {
	f.addresses[address.ID] = *address
	return nil
}

func (f *fakeAddressRepo) Delete(id uint) error {
	delete(f.addresses, id)
	return nil
}
