package product

import "github.com/aydinsoft/backoffice-backend/pkg/db/models"

// ProductDTO is the catalog payload returned to clients.
type ProductDTO struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	Category    *string `json:"category"`
	Size        *string `json:"size,omitempty"`
	Barcode     *string `json:"barcode,omitempty"`
	CreatedAt   string  `json:"createdAt"`
}

// NewProductDTO maps the persisted row to its client shape.
func NewProductDTO(product *models.Product) *ProductDTO {
	return &ProductDTO{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		Stock:       product.Stock,
		Category:    product.Category,
		Size:        product.Size,
		Barcode:     product.Barcode,
		CreatedAt:   product.CreatedAt,
	}
}
