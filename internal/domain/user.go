package domain

// User Model
type User struct {
	Username string    `gorm:"primaryKey;size:100"` // Unique username, primary key
	Password string    `gorm:"size:100;not null"`   // Hashed password
	Name     string    `gorm:"size:100;not null"`   // Display name
	Token    *string   `gorm:"size:100"`            // Session token, nil when logged out
	Contacts []Contact `gorm:"foreignKey:Username;references:Username;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"` // One-to-many relationship with Contact
}
