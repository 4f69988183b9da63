package database

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

const (
	UsersCollection   = "users"
	RecipesCollection = "recipes"
	ReviewsCollection = "reviews"
)

// User is a registered account.
// The password is stored and compared as plaintext.
type User struct {
	ID       bson.ObjectID `bson:"_id,omitempty"`
	Username string        `bson:"username"`
	Password string        `bson:"password"`
}

// Recipe is a recipe posted by a user.
// Username is a copy of the owner's username, not a reference.
type Recipe struct {
	ID           bson.ObjectID `bson:"_id,omitempty"`
	Username     string        `bson:"username"`
	Title        string        `bson:"recipe"`
	Ingredients  string        `bson:"ingredients"`
	Instructions string        `bson:"instructions"`
	CreatedAt    time.Time     `bson:"created_at"`
}

// Review is a review of a recipe, referenced by free-text name.
type Review struct {
	ID         bson.ObjectID `bson:"_id,omitempty"`
	Username   string        `bson:"username"`
	RecipeName string        `bson:"recipe_name"`
	Text       string        `bson:"review"`
	CreatedAt  time.Time     `bson:"created_at"`
}

// RecipeFields are the editable fields of a recipe.
type RecipeFields struct {
	Title        string
	Ingredients  string
	Instructions string
}

func (f RecipeFields) toSet() bson.M {
	return bson.M{
		"recipe":       f.Title,
		"ingredients":  f.Ingredients,
		"instructions": f.Instructions,
	}
}

// Stats holds per-collection document counts.
type Stats struct {
	Users        int64
	Recipes      int64
	Reviews      int64
	LatestRecipe *Recipe
	LatestReview *Review
}

// ParseID converts a hex string into an ObjectID.
func ParseID(id string) (bson.ObjectID, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return bson.NilObjectID, ErrInvalidID
	}
	return oid, nil
}
