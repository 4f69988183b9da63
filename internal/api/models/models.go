package models

import "time"

// Recipe is the view representation of a database.Recipe.
type Recipe struct {
	ID           string
	Username     string
	Title        string
	Ingredients  string
	Instructions string
	CreatedAt    time.Time
}

// Review is the view representation of a database.Review.
type Review struct {
	ID         string
	Username   string
	RecipeName string
	Text       string
	CreatedAt  time.Time
}

// Dashboard holds everything owned by one username.
type Dashboard struct {
	Username  string
	AvatarURL string
	Reviews   []Review
	Recipes   []Recipe
}
