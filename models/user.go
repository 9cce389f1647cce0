package models

// User is created on signup and read on login; rows are never updated or deleted.
// Email uniqueness is checked in the signup path, not by the schema.
type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"not null" json:"name"`
	Email    string `gorm:"not null" json:"email"`
	Password string `gorm:"not null" json:"-"`
}
