package handlers

import (
	"time"

	"github.com/mworx/stockroom/internal/models"
)

type ItemRequest struct {
	ProductID    string  `json:"product_id" validate:"required"`
	Name         string  `json:"name" validate:"required"`
	Category     string  `json:"category" validate:"required"`
	Quantity     int     `json:"quantity" validate:"gte=0"`
	UnitPrice    float64 `json:"unit_price" validate:"gte=0"`
	ReorderPoint int     `json:"reorder_point" validate:"gte=0"`
	Supplier     string  `json:"supplier" validate:"required"`
	Description  string  `json:"description,omitempty"`
	Location     string  `json:"location,omitempty"`
	Barcode      string  `json:"barcode,omitempty"`
}

type ItemResponse struct {
	ID           string    `json:"id"`
	ProductID    string    `json:"product_id"`
	Name         string    `json:"name"`
	Category     string    `json:"category"`
	Quantity     int       `json:"quantity"`
	UnitPrice    float64   `json:"unit_price"`
	ReorderPoint int       `json:"reorder_point"`
	Supplier     string    `json:"supplier"`
	Description  string    `json:"description,omitempty"`
	Location     string    `json:"location,omitempty"`
	Barcode      string    `json:"barcode,omitempty"`
	LastUpdated  time.Time `json:"last_updated"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedBy    string    `json:"updated_by"`
	LowStock     bool      `json:"low_stock,omitempty"`
}

func toItemResponse(it models.InventoryItem) ItemResponse {
	return ItemResponse{
		ID:           it.ID,
		ProductID:    it.ProductID,
		Name:         it.Name,
		Category:     it.Category,
		Quantity:     it.Quantity,
		UnitPrice:    it.UnitPrice,
		ReorderPoint: it.ReorderPoint,
		Supplier:     it.Supplier,
		Description:  it.Description,
		Location:     it.Location,
		Barcode:      it.Barcode,
		LastUpdated:  it.LastUpdated,
		CreatedAt:    it.CreatedAt,
		UpdatedBy:    it.UpdatedBy,
		LowStock:     it.Quantity <= it.ReorderPoint,
	}
}

type Meta struct {
	TotalCount int `json:"total_count"`
}

type ItemsSearchResult struct {
	Data []ItemResponse `json:"data"`
	Meta Meta           `json:"meta"`
}

type CredentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResult struct {
	Token        string      `json:"token"`
	RefreshToken string      `json:"refresh_token"`
	User         models.User `json:"user"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type RefreshResult struct {
	Token string `json:"token"`
}
