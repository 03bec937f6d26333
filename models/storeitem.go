package models

import "time"

type StoreItem struct {
	ID          string    `bson:"_id" json:"id"`
	Title       string    `bson:"title" json:"title"`
	Description string    `bson:"description" json:"description"`
	Price       int       `bson:"price" json:"price"` // minor currency units
	Image       string    `bson:"image" json:"image"`
	Category    string    `bson:"category" json:"category"`
	DownloadURL string    `bson:"downloadUrl" json:"downloadUrl,omitempty"`
	Featured    bool      `bson:"featured" json:"featured"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
}

// InsertStoreItem is the validated create payload for a store item.
type InsertStoreItem struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Price       int    `json:"price" binding:"required,gt=0"`
	Image       string `json:"image" binding:"required"`
	Category    string `json:"category" binding:"required"`
	DownloadURL string `json:"downloadUrl"`
	Featured    bool   `json:"featured"`
}
