package entity

import (
	"time"
)

// Item is a seller's marketplace listing. Fields holds free-form
// category-specific attributes (size, weight, ...); it is never nil.
type Item struct {
	ID          string                 `json:"id" firestore:"id"`
	Seller      string                 `json:"seller" firestore:"seller"`
	Address     string                 `json:"address" firestore:"address"`
	Contact     string                 `json:"contact" firestore:"contact"`
	Category    string                 `json:"category" firestore:"category"`
	Description string                 `json:"description" firestore:"description"`
	Fields      map[string]interface{} `json:"fields" firestore:"fields"`
	ImageURL    string                 `json:"imageUrl" firestore:"imageUrl"`
	CreatedAt   time.Time              `json:"createdAt" firestore:"createdAt"`
	UpdatedAt   time.Time              `json:"updatedAt" firestore:"updatedAt"`
}
