package database

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned when no document matches the given id or key.
	ErrNotFound = errors.New("document not found")
	// ErrInvalidID is returned when an id is not a valid ObjectID hex string.
	ErrInvalidID = errors.New("invalid document id")
)

// DB defines the persistence operations used by the HTTP handlers.
//
// Every method maps to a single call against the document store. Lookups by
// id return ErrNotFound for a well formed id without a document.
type DB interface {
	// Users
	CreateUser(ctx context.Context, user *User) error
	GetUserByUsername(ctx context.Context, username string) (*User, error)

	// Recipes
	CreateRecipe(ctx context.Context, recipe *Recipe) error
	GetRecipes(ctx context.Context) ([]Recipe, error)
	GetRecipeByID(ctx context.Context, id string) (*Recipe, error)
	GetRecipesByUsername(ctx context.Context, username string) ([]Recipe, error)
	UpdateRecipe(ctx context.Context, id string, fields RecipeFields) error
	DeleteRecipe(ctx context.Context, id string) error

	// Reviews
	CreateReview(ctx context.Context, review *Review) error
	GetReviews(ctx context.Context) ([]Review, error)
	GetReviewByID(ctx context.Context, id string) (*Review, error)
	GetReviewsByUsername(ctx context.Context, username string) ([]Review, error)
	UpdateReviewText(ctx context.Context, id string, text string) error
	DeleteReview(ctx context.Context, id string) error

	// Search
	EnsureRecipeTextIndex(ctx context.Context) error
	SearchRecipes(ctx context.Context, query string) ([]Recipe, error)

	// Utility
	EnsureIndexes(ctx context.Context) error
	GetStats(ctx context.Context) (*Stats, error)
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}
