package controllers

import (
	"log"
	"net/http"
	"strconv"

	"gin-swiftmart/constants"
	"gin-swiftmart/services"

	"github.com/gin-gonic/gin"
)

type ICartController interface {
	AddItem(ctx *gin.Context)
	GetCart(ctx *gin.Context)
	RemoveItem(ctx *gin.Context)
}

type CartController struct {
	service services.ICartService
}

func NewCartController(service services.ICartService) ICartController {
	return &CartController{service: service}
}

func pathID(ctx *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidID})
		return 0, false
	}
	return uint(id), true
}

func (c *CartController) AddItem(ctx *gin.Context) {
	userID, ok := pathID(ctx, "user_id")
	if !ok {
		return
	}
	productID, ok := pathID(ctx, "product_id")
	if !ok {
		return
	}

	if err := c.service.AddItem(userID, productID); err != nil {
		log.Printf("Add to cart error: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Item added"})
}

func (c *CartController) GetCart(ctx *gin.Context) {
	userID, ok := pathID(ctx, "user_id")
	if !ok {
		return
	}

	cart, err := c.service.GetCart(userID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"cart": cart})
}

func (c *CartController) RemoveItem(ctx *gin.Context) {
	userID, ok := pathID(ctx, "user_id")
	if !ok {
		return
	}
	productID, ok := pathID(ctx, "product_id")
	if !ok {
		return
	}

	err := c.service.RemoveItem(userID, productID)
	if err != nil {
		if err.Error() == constants.ErrCartItemNotFound {
			ctx.JSON(http.StatusNotFound, gin.H{"error": constants.ErrCartItemNotFound})
			return
		}
		log.Printf("Remove from cart error: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Item removed"})
}
