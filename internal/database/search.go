package database

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// RecipeTextIndex is the name of the combined text index on recipes.
const RecipeTextIndex = "recipe_text_ingredients_text_instructions_text"

// EnsureRecipeTextIndex creates the text index over recipe, ingredients and
// instructions. Creating an index that already exists is a no-op on the server.
func (c *Client) EnsureRecipeTextIndex(ctx context.Context) error {
	model := mongo.IndexModel{
		Keys: bson.D{
			{Key: "recipe", Value: "text"},
			{Key: "ingredients", Value: "text"},
			{Key: "instructions", Value: "text"},
		},
		Options: options.Index().SetName(RecipeTextIndex),
	}
	if _, err := c.recipes().Indexes().CreateOne(ctx, model); err != nil {
		log.Error("failed to create recipe text index", "error", err)
		return fmt.Errorf("failed to create recipe text index: %w", err)
	}
	return nil
}

// SearchRecipes runs a $text query and returns the matches ordered by text score.
// The text index must exist.
func (c *Client) SearchRecipes(ctx context.Context, query string) ([]Recipe, error) {
	recipes := []Recipe{}
	if query == "" {
		return recipes, nil
	}
	filter := bson.D{{Key: "$text", Value: bson.D{{Key: "$search", Value: query}}}}
	opts := options.Find().SetSort(bson.D{{Key: "score", Value: bson.D{{Key: "$meta", Value: "textScore"}}}})
	if err := findAll(ctx, c.recipes(), filter, &recipes, opts); err != nil {
		return nil, err
	}
	return recipes, nil
}
