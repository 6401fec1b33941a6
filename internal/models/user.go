package models

// User represents a registered account. The Password field always holds the
// bcrypt hash, never the plaintext, and is excluded from JSON output.
type User struct {
	ID       string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name     string `json:"name" gorm:"type:varchar(100)" validate:"required,min=1,max=100"`
	Email    string `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	Password string `json:"-" gorm:"type:varchar(255)" validate:"required,min=6"`
}
