package models

import "time"

type Post struct {
	ID            string    `bson:"_id" json:"id"`
	Title         string    `bson:"title" json:"title"`
	Content       string    `bson:"content" json:"content"` // Markdown
	Excerpt       string    `bson:"excerpt" json:"excerpt"`
	Category      string    `bson:"category" json:"category"`
	Tags          []string  `bson:"tags" json:"tags"`
	FeaturedImage string    `bson:"featuredImage" json:"featuredImage"`
	Published     bool      `bson:"published" json:"published"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time `bson:"updatedAt" json:"updatedAt"`
}

// InsertPost is the validated create payload for a post.
type InsertPost struct {
	Title         string   `json:"title" binding:"required"`
	Content       string   `json:"content" binding:"required"`
	Excerpt       string   `json:"excerpt" binding:"required"`
	Category      string   `json:"category" binding:"required"`
	Tags          []string `json:"tags"`
	FeaturedImage string   `json:"featuredImage"`
	Published     bool     `json:"published"`
}

// SetDefaults applies schema defaults after binding.
func (p *InsertPost) SetDefaults() {
	if p.Tags == nil {
		p.Tags = []string{}
	}
}

// UpdatePost is a partial update; nil fields are left untouched.
type UpdatePost struct {
	Title         *string   `json:"title"`
	Content       *string   `json:"content"`
	Excerpt       *string   `json:"excerpt"`
	Category      *string   `json:"category"`
	Tags          *[]string `json:"tags"`
	FeaturedImage *string   `json:"featuredImage"`
	Published     *bool     `json:"published"`
}
