package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"solestyle/config"
	"solestyle/models"
	"solestyle/services"

	"github.com/gin-gonic/gin"
)

const productListCacheKey = "products_list"

type ProductController struct {
	products *services.ProductService
}

func NewProductController(products *services.ProductService) *ProductController {
	return &ProductController{products: products}
}

func invalidateProductCache() {
	if config.RedisClient == nil {
		return
	}
	config.RedisClient.Del(context.Background(), productListCacheKey)
}

// CreateProduct godoc
// @Summary Add product
// @Description Create a new product
// @Tags Products
// @Accept json
// @Produce json
// @Param request body models.CreateProductRequest true "Product"
// @Success 200 {object} models.Product
// @Failure 400 {object} models.MessageResponse
// @Router /api/products [post]
func (ctrl *ProductController) CreateProduct(c *gin.Context) {
	var req models.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.MessageResponse{Message: "Invalid request"})
		return
	}

	product, err := ctrl.products.CreateProduct(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.MessageResponse{Message: "Something went wrong"})
		return
	}

	invalidateProductCache()

	c.JSON(http.StatusOK, product)
}

// GetAllProducts godoc
// @Summary Get products
// @Description Get the full product list
// @Tags Products
// @Produce json
// @Success 200 {array} models.Product
// @Router /api/products [get]
func (ctrl *ProductController) GetAllProducts(c *gin.Context) {
	ctx := c.Request.Context()

	if config.RedisClient != nil {
		cached, err := config.RedisClient.Get(ctx, productListCacheKey).Result()
		if err == nil {
			c.Data(http.StatusOK, "application/json", []byte(cached))
			return
		}
	}

	products, err := ctrl.products.ListProducts(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.MessageResponse{Message: "Something went wrong"})
		return
	}

	if config.RedisClient != nil {
		if jsonData, err := json.Marshal(products); err == nil {
			config.RedisClient.Set(ctx, productListCacheKey, string(jsonData), 5*time.Minute)
		}
	}

	c.JSON(http.StatusOK, products)
}
