package model

// CreateAddressRequest is the payload for POST /api/contacts/:contactId/addresses
type CreateAddressRequest struct {
	Street     string `json:"street" validate:"omitempty,max=255"`
	City       string `json:"city" validate:"omitempty,max=100"`
	Province   string `json:"province" validate:"omitempty,max=100"`
	Country    string `json:"country" validate:"required,max=100"`
	PostalCode string `json:"postal_code" validate:"omitempty,max=100"`
}

// UpdateAddressRequest is the payload for PUT .../addresses/:addressId;
// the id is taken from the path, not the body
type UpdateAddressRequest struct {
	ID         uint   `json:"id" validate:"required,gt=0"`
	Street     string `json:"street" validate:"omitempty,max=255"`
	City       string `json:"city" validate:"omitempty,max=100"`
	Province   string `json:"province" validate:"omitempty,max=100"`
	Country    string `json:"country" validate:"required,max=100"`
	PostalCode string `json:"postal_code" validate:"omitempty,max=100"`
}

// AddressResponse is the address projection returned to clients
type AddressResponse struct {
	ID         uint    `json:"id"`
	Street     *string `json:"street"`
	City       *string `json:"city"`
	Province   *string `json:"province"`
	Country    string  `json:"country"`
	PostalCode *string `json:"postal_code"`
}
