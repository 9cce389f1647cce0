package controllers

import (
	"log"
	"net/http"

	"gin-swiftmart/constants"
	"gin-swiftmart/dto"
	"gin-swiftmart/services"

	"github.com/gin-gonic/gin"
)

type IAuthController interface {
	Signup(ctx *gin.Context)
	Login(ctx *gin.Context)
}

type AuthController struct {
	service services.IAuthService
}

func NewAuthController(service services.IAuthService) IAuthController {
	return &AuthController{service: service}
}

func (c *AuthController) Signup(ctx *gin.Context) {
	var input dto.SignupInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := c.service.Signup(input.Name, input.Email, input.Password)
	if err != nil {
		if err.Error() == constants.ErrUserExists {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrUserExists})
			return
		}
		log.Printf("Signup error: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Signup successful!"})
}

func (c *AuthController) Login(ctx *gin.Context) {
	var input dto.LoginInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, userID, err := c.service.Login(input.Email, input.Password)
	if err != nil {
		switch err.Error() {
		case constants.ErrUserNotFound:
			ctx.JSON(http.StatusNotFound, gin.H{"error": constants.ErrUserNotFound})
		case constants.ErrIncorrectPassword:
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": constants.ErrIncorrectPassword})
		default:
			log.Printf("Login error: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		}
		return
	}

	ctx.JSON(http.StatusOK, dto.LoginResponse{
		Message: "Login successful!",
		Token:   token,
		UserID:  userID,
	})
}
