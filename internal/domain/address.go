package domain

// Address Model
type Address struct {
	ID         uint    `gorm:"primaryKey"` // Primary key
	Street     *string `gorm:"size:255"`
	City       *string `gorm:"size:100"`
	Province   *string `gorm:"size:100"`
	Country    string  `gorm:"size:100;not null"`
	PostalCode *string `gorm:"size:100"`
	ContactID  uint    `gorm:"index;not null"` // Foreign key to the owning Contact
}
