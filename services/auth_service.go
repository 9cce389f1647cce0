package services

import (
	"errors"
	"time"

	"gin-swiftmart/constants"
	"gin-swiftmart/models"
	"gin-swiftmart/repositories"

	"github.com/golang-jwt/jwt/v5"
)

type IAuthService interface {
	Signup(name string, email string, password string) error
	Login(email string, password string) (string, uint, error)
	CreateToken(email string) (string, error)
}

type AuthService struct {
	repository repositories.IAuthRepository
	secretKey  string
}

func NewAuthService(repository repositories.IAuthRepository, secretKey string) IAuthService {
	return &AuthService{
		repository: repository,
		secretKey:  secretKey,
	}
}

func (s *AuthService) Signup(name string, email string, password string) error {
	_, err := s.repository.FindUserByEmail(email)
	if err == nil {
		return errors.New(constants.ErrUserExists)
	}
	if err.Error() != constants.ErrUserNotFound {
		return err
	}

	// Passwords are stored as given. See DESIGN.md for the parity decision.
	user := models.User{
		Name:     name,
		Email:    email,
		Password: password,
	}
	_, err = s.repository.CreateUser(user)
	return err
}

func (s *AuthService) Login(email string, password string) (string, uint, error) {
	foundUser, err := s.repository.FindUserByEmail(email)
	if err != nil {
		return "", 0, err
	}

	if foundUser.Password != password {
		return "", 0, errors.New(constants.ErrIncorrectPassword)
	}

	token, err := s.CreateToken(foundUser.Email)
	if err != nil {
		return "", 0, err
	}
	return token, foundUser.ID, nil
}

// CreateToken issues an HS256 token with the email as subject, valid for
// two hours. Nothing in the API consumes it; clients hold it.
func (s *AuthService) CreateToken(email string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": email,
		"exp": time.Now().Add(2 * time.Hour).Unix(),
	})

	tokenString, err := token.SignedString([]byte(s.secretKey))
	if err != nil {
		return "", err
	}
	return tokenString, nil
}
