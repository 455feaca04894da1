package entity

import (
	"time"
)

// Order is a buyer's request to purchase against a listing. ItemID is an
// opaque reference; no existence check is made against the items collection.
type Order struct {
	ID        string    `json:"id" firestore:"id"`
	Buyer     string    `json:"buyer" firestore:"buyer"`
	ItemID    string    `json:"itemId" firestore:"itemId"`
	Quantity  int       `json:"quantity" firestore:"quantity"`
	Address   string    `json:"address" firestore:"address"`
	CreatedAt time.Time `json:"createdAt" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" firestore:"updatedAt"`
}
