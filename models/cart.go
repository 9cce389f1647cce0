package models

// Cart is one line of a user's cart. At most one row per (UserID, ProductID)
// pair; the pairing is maintained by the lookup-then-write in the cart service,
// not by a unique constraint.
type Cart struct {
	ID        uint     `gorm:"primaryKey" json:"id"`
	UserID    uint     `gorm:"not null;index" json:"user_id"`
	ProductID uint     `gorm:"not null;index" json:"product_id"`
	Quantity  int      `gorm:"not null;default:1" json:"quantity"`
	User      *User    `gorm:"foreignKey:UserID" json:"-"`
	Product   *Product `gorm:"foreignKey:ProductID" json:"-"`
}
