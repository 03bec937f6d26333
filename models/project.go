package models

import "time"

type Project struct {
	ID           string    `bson:"_id" json:"id"`
	Title        string    `bson:"title" json:"title"`
	Description  string    `bson:"description" json:"description"`
	Image        string    `bson:"image" json:"image"`
	Category     string    `bson:"category" json:"category"`
	Technologies []string  `bson:"technologies" json:"technologies"`
	LiveURL      string    `bson:"liveUrl" json:"liveUrl,omitempty"`
	GithubURL    string    `bson:"githubUrl" json:"githubUrl,omitempty"`
	Featured     bool      `bson:"featured" json:"featured"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
}

// InsertProject is the validated create payload for a project.
type InsertProject struct {
	Title        string   `json:"title" binding:"required"`
	Description  string   `json:"description" binding:"required"`
	Image        string   `json:"image" binding:"required"`
	Category     string   `json:"category" binding:"required"`
	Technologies []string `json:"technologies"`
	LiveURL      string   `json:"liveUrl"`
	GithubURL    string   `json:"githubUrl"`
	Featured     bool     `json:"featured"`
}

func (p *InsertProject) SetDefaults() {
	if p.Technologies == nil {
		p.Technologies = []string{}
	}
}

// UpdateProject is a partial update; nil fields are left untouched.
type UpdateProject struct {
	Title        *string   `json:"title"`
	Description  *string   `json:"description"`
	Image        *string   `json:"image"`
	Category     *string   `json:"category"`
	Technologies *[]string `json:"technologies"`
	LiveURL      *string   `json:"liveUrl"`
	GithubURL    *string   `json:"githubUrl"`
	Featured     *bool     `json:"featured"`
}
