package controllers

import (
	"log"
	"net/http"

	"gin-swiftmart/constants"
	"gin-swiftmart/services"

	"github.com/gin-gonic/gin"
)

type IProductController interface {
	FindAll(ctx *gin.Context)
	Seed(ctx *gin.Context)
}

type ProductController struct {
	service services.IProductService
}

func NewProductController(service services.IProductService) IProductController {
	return &ProductController{service: service}
}

func (c *ProductController) FindAll(ctx *gin.Context) {
	products, err := c.service.FindAll()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"products": products})
}

func (c *ProductController) Seed(ctx *gin.Context) {
	seeded, err := c.service.Seed()
	if err != nil {
		log.Printf("Seed products error: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}

	if !seeded {
		ctx.JSON(http.StatusOK, gin.H{"message": "Products already added"})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Products added"})
}
