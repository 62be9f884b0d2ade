package controllers

import (
	"errors"
	"net/http"

	"solestyle/models"
	"solestyle/services"

	"github.com/gin-gonic/gin"
)

type CartController struct {
	carts *services.CartService
}

func NewCartController(carts *services.CartService) *CartController {
	return &CartController{carts: carts}
}

// GetCart godoc
// @Summary Get cart
// @Description Get the authenticated user's cart, creating an empty one on first use
// @Tags Cart
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Cart
// @Failure 401 {object} models.MessageResponse
// @Router /api/cart [get]
func (ctrl *CartController) GetCart(c *gin.Context) {
	userID := c.GetString("user_id")

	cart, err := ctrl.carts.GetCart(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.MessageResponse{Message: "Something went wrong"})
		return
	}

	c.JSON(http.StatusOK, cart)
}

// AddToCart godoc
// @Summary Add item to cart
// @Description Add a product to the cart; an already-present product has its quantity incremented
// @Tags Cart
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.AddCartItemRequest true "Item"
// @Success 200 {object} models.Cart
// @Failure 400 {object} models.MessageResponse
// @Failure 401 {object} models.MessageResponse
// @Router /api/cart [post]
func (ctrl *CartController) AddToCart(c *gin.Context) {
	userID := c.GetString("user_id")

	var req models.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.MessageResponse{Message: "Invalid request"})
		return
	}

	cart, err := ctrl.carts.AddItem(c.Request.Context(), userID, req.ProductID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.MessageResponse{Message: "Something went wrong"})
		return
	}

	c.JSON(http.StatusOK, cart)
}

// RemoveFromCart godoc
// @Summary Remove item from cart
// @Description Remove a product from the cart; removing an absent product is a no-op
// @Tags Cart
// @Security BearerAuth
// @Produce json
// @Param productId path string true "Product ID"
// @Success 200 {object} models.Cart
// @Failure 400 {object} models.MessageResponse
// @Failure 401 {object} models.MessageResponse
// @Router /api/cart/{productId} [delete]
func (ctrl *CartController) RemoveFromCart(c *gin.Context) {
	userID := c.GetString("user_id")
	productID := c.Param("productId")

	cart, err := ctrl.carts.RemoveItem(c.Request.Context(), userID, productID)
	if err != nil {
		if errors.Is(err, services.ErrCartNotFound) {
			c.JSON(http.StatusBadRequest, models.MessageResponse{Message: "Cart not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.MessageResponse{Message: "Something went wrong"})
		return
	}

	c.JSON(http.StatusOK, cart)
}
