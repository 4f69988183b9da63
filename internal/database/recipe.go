package database

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// CreateRecipe stamps created_at with the current UTC time and inserts the recipe.
func (c *Client) CreateRecipe(ctx context.Context, recipe *Recipe) error {
	recipe.ID = bson.NilObjectID
	recipe.CreatedAt = time.Now().UTC()
	res, err := c.recipes().InsertOne(ctx, recipe)
	if err != nil {
		log.Error("failed to create recipe", "error", err)
		return err
	}
	if oid, ok := res.InsertedID.(bson.ObjectID); ok {
		recipe.ID = oid
	}
	return nil
}

// GetRecipes returns all recipes, newest first.
func (c *Client) GetRecipes(ctx context.Context) ([]Recipe, error) {
	recipes := []Recipe{}
	if err := findAll(ctx, c.recipes(), bson.D{}, &recipes, newestFirst()); err != nil {
		return nil, err
	}
	return recipes, nil
}

func (c *Client) GetRecipeByID(ctx context.Context, id string) (*Recipe, error) {
	var recipe Recipe
	if err := findOne(ctx, c.recipes(), id, &recipe); err != nil {
		return nil, err
	}
	return &recipe, nil
}

// GetRecipesByUsername returns the recipes owned by username in store order.
func (c *Client) GetRecipesByUsername(ctx context.Context, username string) ([]Recipe, error) {
	recipes := []Recipe{}
	if err := findAll(ctx, c.recipes(), bson.D{{Key: "username", Value: username}}, &recipes); err != nil {
		return nil, err
	}
	return recipes, nil
}

// UpdateRecipe replaces the title, ingredients and instructions of a recipe.
func (c *Client) UpdateRecipe(ctx context.Context, id string, fields RecipeFields) error {
	return updateFields(ctx, c.recipes(), id, fields.toSet())
}

func (c *Client) DeleteRecipe(ctx context.Context, id string) error {
	return deleteByID(ctx, c.recipes(), id)
}
