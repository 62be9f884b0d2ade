package models

type RegisterRequest struct {
	Name     string `json:"name" binding:"required,min=2"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type CreateProductRequest struct {
	Name     string  `json:"name" binding:"required"`
	Brand    string  `json:"brand" binding:"required"`
	Price    float64 `json:"price" binding:"required,gt=0"`
	Image    string  `json:"image" binding:"omitempty,url"`
	Category string  `json:"category" binding:"omitempty"`
}

type AddCartItemRequest struct {
	ProductID string `json:"productId" binding:"required"`
}
