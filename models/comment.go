package models

import "time"

type Comment struct {
	ID        string    `bson:"_id" json:"id"`
	PostID    string    `bson:"postId" json:"postId"`
	Author    string    `bson:"author" json:"author"`
	Email     string    `bson:"email" json:"email"`
	Content   string    `bson:"content" json:"content"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// InsertComment is the validated create payload for a comment.
// PostID is filled in from the URL path, never from the request body.
type InsertComment struct {
	PostID  string `json:"postId"`
	Author  string `json:"author" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Content string `json:"content" binding:"required"`
}
