package model

// CreateContactRequest is the payload for POST /api/contacts
type CreateContactRequest struct {
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name" validate:"omitempty,max=100"`
	Email     string `json:"email" validate:"omitempty,email,max=200"`
	Phone     string `json:"phone" validate:"omitempty,max=20"`
}

// UpdateContactRequest is the payload for PUT /api/contacts/:contactId;
// the id is taken from the path, not the body
type UpdateContactRequest struct {
	ID        uint   `json:"id" validate:"required,gt=0"`
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name" validate:"omitempty,max=100"`
	Email     string `json:"email" validate:"omitempty,email,max=200"`
	Phone     string `json:"phone" validate:"omitempty,max=20"`
}

// SearchContactRequest carries the query parameters of GET /api/contacts
type SearchContactRequest struct {
	Name  string // Substring match on first or last name, case-insensitive
	Email string // Substring match on email
	Phone string // Substring match on phone
	Page  int    // 1-based, defaults to 1
	Size  int    // Defaults to 10
}

// ContactResponse is the contact projection returned to clients
type ContactResponse struct {
	ID        uint    `json:"id"`
	FirstName string  `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
}
