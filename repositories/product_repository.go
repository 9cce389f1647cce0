package repositories

import (
	"gin-swiftmart/models"

	"gorm.io/gorm"
)

type IProductRepository interface {
	FindAll() (*[]models.Product, error)
	FindByID(productID uint) (*models.Product, error)
	Count() (int64, error)
	CreateAll(products []models.Product) error
}

type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) IProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) FindAll() (*[]models.Product, error) {
	var products []models.Product
	result := r.db.Find(&products)
	if result.Error != nil {
		return nil, result.Error
	}
	return &products, nil
}

func (r *ProductRepository) FindByID(productID uint) (*models.Product, error) {
	var product models.Product
	result := r.db.First(&product, "id = ?", productID)
	if result.Error != nil {
		return nil, result.Error
	}
	return &product, nil
}

func (r *ProductRepository) Count() (int64, error) {
	var count int64
	result := r.db.Model(&models.Product{}).Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

func (r *ProductRepository) CreateAll(products []models.Product) error {
	result := r.db.Create(&products)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
