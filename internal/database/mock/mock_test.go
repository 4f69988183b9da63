package mock

import (
	"context"
	"testing"
	"time"

	"github.com/jon4hz/cookbook/internal/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestCreateRecipe_StampsCreatedAt(t *testing.T) {
	db := NewMockDB()
	before := time.Now().UTC()

	r := &database.Recipe{Username: "alice", Title: "Soup"}
	require.NoError(t, db.CreateRecipe(context.Background(), r))

	assert.False(t, r.ID.IsZero())
	assert.False(t, r.CreatedAt.Before(before))
	assert.Equal(t, time.UTC, r.CreatedAt.Location())
}

func TestGetRecipes_NewestFirst(t *testing.T) {
	db := NewMockDB()
	ctx := context.Background()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, title := range []string{"first", "second", "third"} {
		at := base.Add(time.Duration(i) * time.Hour)
		db.Now = func() time.Time { return at }
		require.NoError(t, db.CreateRecipe(ctx, &database.Recipe{Title: title}))
	}

	recipes, err := db.GetRecipes(ctx)
	require.NoError(t, err)
	require.Len(t, recipes, 3)
	assert.Equal(t, "third", recipes[0].Title)
	assert.Equal(t, "first", recipes[2].Title)
}

func TestUpdateReviewText_KeepsOtherFields(t *testing.T) {
	db := NewMockDB()
	ctx := context.Background()
	review := &database.Review{Username: "alice", RecipeName: "Soup", Text: "tasty"}
	require.NoError(t, db.CreateReview(ctx, review))

	require.NoError(t, db.UpdateReviewText(ctx, review.ID.Hex(), "tasty"))

	got, err := db.GetReviewByID(ctx, review.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, *review, *got)
}

func TestUpdate_Missing(t *testing.T) {
	db := NewMockDB()
	ctx := context.Background()

	assert.ErrorIs(t, db.UpdateReviewText(ctx, bson.NewObjectID().Hex(), "x"), database.ErrNotFound)
	assert.ErrorIs(t, db.UpdateRecipe(ctx, bson.NewObjectID().Hex(), database.RecipeFields{}), database.ErrNotFound)
	assert.ErrorIs(t, db.UpdateRecipe(ctx, "nope", database.RecipeFields{}), database.ErrInvalidID)
}

func TestDelete_MissingIsNoop(t *testing.T) {
	db := NewMockDB()
	ctx := context.Background()

	assert.NoError(t, db.DeleteRecipe(ctx, bson.NewObjectID().Hex()))
	assert.NoError(t, db.DeleteReview(ctx, bson.NewObjectID().Hex()))
	assert.ErrorIs(t, db.DeleteReview(ctx, "bad"), database.ErrInvalidID)
}

func TestGetByUsername(t *testing.T) {
	db := NewMockDB()
	ctx := context.Background()
	require.NoError(t, db.CreateRecipe(ctx, &database.Recipe{Username: "alice", Title: "a"}))
	require.NoError(t, db.CreateRecipe(ctx, &database.Recipe{Username: "bob", Title: "b"}))
	require.NoError(t, db.CreateRecipe(ctx, &database.Recipe{Username: "Alice", Title: "c"}))

	recipes, err := db.GetRecipesByUsername(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, recipes, 1)
	assert.Equal(t, "a", recipes[0].Title)
}

func TestSearchRecipes(t *testing.T) {
	db := NewMockDB()
	ctx := context.Background()
	lemon := &database.Recipe{Title: "Tart", Ingredients: "Lemon, sugar, butter", Instructions: "bake"}
	soup := &database.Recipe{Title: "Soup", Ingredients: "water,salt", Instructions: "boil"}
	require.NoError(t, db.CreateRecipe(ctx, lemon))
	require.NoError(t, db.CreateRecipe(ctx, soup))

	_, err := db.SearchRecipes(ctx, "lemon")
	require.ErrorIs(t, err, ErrTextIndexRequired)

	results, err := db.SearchRecipes(ctx, "")
	require.NoError(t, err)
	assert.NotNil(t, results)
	assert.Empty(t, results)

	require.NoError(t, db.EnsureRecipeTextIndex(ctx))
	require.NoError(t, db.EnsureRecipeTextIndex(ctx))
	assert.Equal(t, 2, db.EnsureTextIndexCalls)

	results, err = db.SearchRecipes(ctx, "lemon")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, lemon.ID, results[0].ID)

	results, err = db.SearchRecipes(ctx, "salt bake")
	require.NoError(t, err)
	assert.Len(t, results, 2)

	results, err = db.SearchRecipes(ctx, "zzzznotfound")
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestGetStats(t *testing.T) {
	db := NewMockDB()
	ctx := context.Background()
	require.NoError(t, db.CreateUser(ctx, &database.User{Username: "alice"}))
	require.NoError(t, db.CreateReview(ctx, &database.Review{Text: "ok"}))

	stats, err := db.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.Users)
	assert.Equal(t, int64(0), stats.Recipes)
	assert.Equal(t, int64(1), stats.Reviews)
	assert.Nil(t, stats.LatestRecipe)
	require.NotNil(t, stats.LatestReview)
	assert.Equal(t, "ok", stats.LatestReview.Text)
}
