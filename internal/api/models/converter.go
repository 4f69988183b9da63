package models

import (
	"github.com/jon4hz/cookbook/internal/database"
	"github.com/samber/lo"
)

// ToRecipe converts a database.Recipe to its view model.
func ToRecipe(r database.Recipe) Recipe {
	return Recipe{
		ID:           r.ID.Hex(),
		Username:     r.Username,
		Title:        r.Title,
		Ingredients:  r.Ingredients,
		Instructions: r.Instructions,
		CreatedAt:    r.CreatedAt,
	}
}

// ToRecipes converts a slice of database.Recipe, keeping the order.
func ToRecipes(recipes []database.Recipe) []Recipe {
	return lo.Map(recipes, func(r database.Recipe, _ int) Recipe { return ToRecipe(r) })
}

// ToReview converts a database.Review to its view model.
func ToReview(r database.Review) Review {
	return Review{
		ID:         r.ID.Hex(),
		Username:   r.Username,
		RecipeName: r.RecipeName,
		Text:       r.Text,
		CreatedAt:  r.CreatedAt,
	}
}

// ToReviews converts a slice of database.Review, keeping the order.
func ToReviews(reviews []database.Review) []Review {
	return lo.Map(reviews, func(r database.Review, _ int) Review { return ToReview(r) })
}
