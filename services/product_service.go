package services

import (
	"gin-swiftmart/models"
	"gin-swiftmart/repositories"
)

// defaultCatalog is the fixed seed data inserted by POST /add-products.
var defaultCatalog = []models.Product{
	{Name: "Lays", Price: 55, Image: "img1.avif"},
	{Name: "Milk", Price: 40, Image: "img9.avif"},
	{Name: "Bread", Price: 45, Image: "img8.avif"},
	{Name: "penuts", Price: 220, Image: "img5.avif"},
}

type IProductService interface {
	FindAll() (*[]models.Product, error)
	Seed() (bool, error)
}

type ProductService struct {
	repository repositories.IProductRepository
}

func NewProductService(repository repositories.IProductRepository) IProductService {
	return &ProductService{repository: repository}
}

func (s *ProductService) FindAll() (*[]models.Product, error) {
	return s.repository.FindAll()
}

// Seed inserts the default catalog once. It reports false without touching
// the store when any product rows already exist.
func (s *ProductService) Seed() (bool, error) {
	count, err := s.repository.Count()
	if err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	products := make([]models.Product, len(defaultCatalog))
	copy(products, defaultCatalog)
	if err := s.repository.CreateAll(products); err != nil {
		return false, err
	}
	return true, nil
}
