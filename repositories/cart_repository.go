package repositories

import (
	"gin-swiftmart/models"

	"gorm.io/gorm"
)

type ICartRepository interface {
	FindLine(userID uint, productID uint) (*models.Cart, error)
	FindByUser(userID uint) (*[]models.Cart, error)
	Create(line models.Cart) error
	Save(line models.Cart) error
	Delete(lineID uint) error
}

type CartRepository struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) ICartRepository {
	return &CartRepository{db: db}
}

// FindLine returns gorm.ErrRecordNotFound when the user has no line for the
// product; callers decide what that means.
func (r *CartRepository) FindLine(userID uint, productID uint) (*models.Cart, error) {
	var line models.Cart
	result := r.db.First(&line, "user_id = ? AND product_id = ?", userID, productID)
	if result.Error != nil {
		return nil, result.Error
	}
	return &line, nil
}

func (r *CartRepository) FindByUser(userID uint) (*[]models.Cart, error) {
	var lines []models.Cart
	result := r.db.Find(&lines, "user_id = ?", userID)
	if result.Error != nil {
		return nil, result.Error
	}
	return &lines, nil
}

func (r *CartRepository) Create(line models.Cart) error {
	result := r.db.Create(&line)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

func (r *CartRepository) Save(line models.Cart) error {
	result := r.db.Save(&line)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

func (r *CartRepository) Delete(lineID uint) error {
	result := r.db.Delete(&models.Cart{}, "id = ?", lineID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
