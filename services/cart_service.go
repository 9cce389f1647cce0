package services

import (
	"errors"

	"gin-swiftmart/constants"
	"gin-swiftmart/dto"
	"gin-swiftmart/models"
	"gin-swiftmart/repositories"

	"gorm.io/gorm"
)

type ICartService interface {
	AddItem(userID uint, productID uint) error
	GetCart(userID uint) ([]dto.CartLine, error)
	RemoveItem(userID uint, productID uint) error
}

type CartService struct {
	repository        repositories.ICartRepository
	productRepository repositories.IProductRepository
}

func NewCartService(repository repositories.ICartRepository, productRepository repositories.IProductRepository) ICartService {
	return &CartService{
		repository:        repository,
		productRepository: productRepository,
	}
}

// AddItem increments the user's line for the product, creating it with
// quantity 1 on first add. The lookup and the write are separate statements;
// there is no referential check on userID or productID here.
func (s *CartService) AddItem(userID uint, productID uint) error {
	line, err := s.repository.FindLine(userID, productID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return s.repository.Create(models.Cart{
				UserID:    userID,
				ProductID: productID,
				Quantity:  1,
			})
		}
		return err
	}

	line.Quantity += 1
	return s.repository.Save(*line)
}

// GetCart joins each cart line with its product. Lines whose product no
// longer exists are skipped.
func (s *CartService) GetCart(userID uint) ([]dto.CartLine, error) {
	lines, err := s.repository.FindByUser(userID)
	if err != nil {
		return nil, err
	}

	cart := []dto.CartLine{}
	for _, line := range *lines {
		product, err := s.productRepository.FindByID(line.ProductID)
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				continue
			}
			return nil, err
		}
		cart = append(cart, dto.CartLine{
			Name:      product.Name,
			Price:     product.Price,
			Image:     product.Image,
			Quantity:  line.Quantity,
			ProductID: product.ID,
		})
	}
	return cart, nil
}

// RemoveItem decrements the line's quantity, deleting the row when it
// would reach zero.
func (s *CartService) RemoveItem(userID uint, productID uint) error {
	line, err := s.repository.FindLine(userID, productID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.New(constants.ErrCartItemNotFound)
		}
		return err
	}

	if line.Quantity > 1 {
		line.Quantity -= 1
		return s.repository.Save(*line)
	}
	return s.repository.Delete(line.ID)
}
