package domain

// Contact Model
type Contact struct {
	ID        uint      `gorm:"primaryKey"` // Primary key
	FirstName string    `gorm:"size:100;not null"`
	LastName  *string   `gorm:"size:100"`
	Email     *string   `gorm:"size:200"`
	Phone     *string   `gorm:"size:20"`
	Username  string    `gorm:"size:100;index;not null"` // Foreign key to the owning User
	Addresses []Address `gorm:"foreignKey:ContactID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"` // One-to-many relationship with Address
}
