package domain

import "github.com/google/uuid"

// FavouriteProduct marks that a user has favourited a product. At most one
// marker exists per (productId, userId) pair.
type FavouriteProduct struct {
	ID        uuid.UUID `json:"id"`
	ProductID int       `json:"productId"`
	UserID    string    `json:"userId"`
}

// NewFavouriteProduct validates the payload and mints a marker with a
// fresh ID.
func NewFavouriteProduct(productID int, userID string) (*FavouriteProduct, error) {
	if productID < 1 {
		return nil, &ValidationError{Messages: []string{"productId must be a positive integer"}}
	}

	return &FavouriteProduct{
		ID:        uuid.New(),
		ProductID: productID,
		UserID:    userID,
	}, nil
}
