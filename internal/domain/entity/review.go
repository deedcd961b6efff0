package entity

import "time"

// Review is a customer rating of a product.
type Review struct {
	ID           string    `json:"id"`
	ProductID    string    `json:"productId"`
	ProductTitle string    `json:"productTitle,omitempty"`
	UserID       string    `json:"userId"`
	UserName     string    `json:"userName,omitempty"`
	Rating       int       `json:"rating"`
	Comment      string    `json:"comment"`
	CreatedAt    time.Time `json:"createdAt,omitzero"`
}

// ReviewInput is what a customer submits for a product.
type ReviewInput struct {
	ProductID string `json:"productId"`
	Rating    int    `json:"rating" validate:"required,min=1,max=5"`
	Comment   string `json:"comment" validate:"required,max=1000"`
}
