package models

type Product struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Name  string `gorm:"not null" json:"name"`
	Price int    `gorm:"not null" json:"price"`
	Image string `gorm:"not null" json:"image"`
}
