package model

import (
	"strings"
	"unicode/utf8"

	apperrors "github.com/ovenside/storefront-api/internal/errors"
)

const maxItemNameLen = 255

// CatalogItem represents one product in the remote catalog.
// IDs are assigned by the catalog backend on create.
type CatalogItem struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"image_url"`
	// Quantity is the default quantity embedded in catalog payloads; the cart
	// tracks its own per-line quantity.
	Quantity int `json:"quantity"`
}

// CreateCatalogItemRequest represents parameters to create a CatalogItem.
// The backend assigns the ID.
type CreateCatalogItemRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"image_url"`
	Quantity    int     `json:"quantity"`
}

// UpdateCatalogItemRequest represents a full replacement of a CatalogItem.
type UpdateCatalogItemRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"image_url"`
	Quantity    int     `json:"quantity"`
}

// Validate validates CreateCatalogItemRequest. Validation runs before any
// network call; violations block the call entirely.
func (r *CreateCatalogItemRequest) Validate() error {
	return validateItemFields(r.Name, r.Description, r.ImageURL, r.Price)
}

// Validate validates UpdateCatalogItemRequest.
func (r *UpdateCatalogItemRequest) Validate() error {
	return validateItemFields(r.Name, r.Description, r.ImageURL, r.Price)
}

func validateItemFields(name, description, imageURL string, price float64) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return apperrors.ValidationField("name", "name is required and cannot be empty")
	}
	if utf8.RuneCountInString(name) > maxItemNameLen {
		return apperrors.ValidationField("name", "name cannot exceed 255 characters")
	}
	if strings.TrimSpace(description) == "" {
		return apperrors.ValidationField("description", "description is required and cannot be empty")
	}
	if strings.TrimSpace(imageURL) == "" {
		return apperrors.ValidationField("image_url", "image_url is required and cannot be empty")
	}
	if price <= 0 {
		return apperrors.ValidationField("price", "price must be greater than zero")
	}
	return nil
}

// Item builds the CatalogItem payload sent to the backend on create.
func (r *CreateCatalogItemRequest) Item() CatalogItem {
	return CatalogItem{
		Name:        strings.TrimSpace(r.Name),
		Description: strings.TrimSpace(r.Description),
		Price:       r.Price,
		ImageURL:    strings.TrimSpace(r.ImageURL),
		Quantity:    defaultQuantity(r.Quantity),
	}
}

// Item builds the full CatalogItem payload sent to the backend on update.
func (r *UpdateCatalogItemRequest) Item(id int) CatalogItem {
	return CatalogItem{
		ID:          id,
		Name:        strings.TrimSpace(r.Name),
		Description: strings.TrimSpace(r.Description),
		Price:       r.Price,
		ImageURL:    strings.TrimSpace(r.ImageURL),
		Quantity:    defaultQuantity(r.Quantity),
	}
}

func defaultQuantity(q int) int {
	if q < 1 {
		return 1
	}
	return q
}
