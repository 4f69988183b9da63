package templates

import (
	"bytes"
	"testing"
	"time"

	"github.com/jon4hz/cookbook/internal/api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPagesRender(t *testing.T) {
	tmpl, err := New()
	require.NoError(t, err)

	recipe := models.Recipe{ID: "65f0c0ffee0000000000beef", Username: "alice", Title: "Soup", Ingredients: "water,salt", Instructions: "boil", CreatedAt: time.Now()}
	review := models.Review{ID: "65f0c0ffee0000000000cafe", Username: "bob", RecipeName: "Soup", Text: "<b>salty</b>", CreatedAt: time.Now()}
	base := func(extra map[string]any) map[string]any {
		data := map[string]any{"Title": "", "Query": "", "SessionUser": ""}
		for k, v := range extra {
			data[k] = v
		}
		return data
	}

	tests := []struct {
		page     string
		data     map[string]any
		contains []string
	}{
		{page: "index.html", data: base(nil), contains: []string{"Cookbook"}},
		{page: "read.html", data: base(map[string]any{"Docs": []models.Review{review}}), contains: []string{"&lt;b&gt;salty&lt;/b&gt;", "/dashboard/bob"}},
		{page: "read.html", data: base(map[string]any{"Docs": []models.Review{}}), contains: []string{"No reviews yet."}},
		{page: "read_recipes.html", data: base(map[string]any{"Docs": []models.Recipe{recipe}}), contains: []string{"Soup", "water,salt", "1 recipes"}},
		{page: "read_recipes.html", data: base(map[string]any{"Message": "No recipes found"}), contains: []string{"No recipes found"}},
		{page: "create.html", data: base(nil), contains: []string{`name="recipe_name"`}},
		{page: "post_recipe.html", data: base(nil), contains: []string{`name="instructions"`}},
		{page: "edit_review.html", data: base(map[string]any{"Doc": review, "Username": "bob"}), contains: []string{"/edit_review/" + review.ID}},
		{page: "edit_recipe.html", data: base(map[string]any{"Doc": recipe, "Username": "alice"}), contains: []string{"/edit_recipe/" + recipe.ID, `value="Soup"`}},
		{page: "login.html", data: base(map[string]any{"Error": "Incorrect password. Please try again."}), contains: []string{"Incorrect password. Please try again."}},
		{page: "signup.html", data: base(nil), contains: []string{`action="/signup"`}},
		{page: "logout.html", data: base(map[string]any{"SessionUser": "alice"}), contains: []string{`href="/dashboard/alice"`}},
		{page: "dashboard.html", data: base(map[string]any{"Dashboard": models.Dashboard{Username: "alice", Recipes: []models.Recipe{recipe}}}), contains: []string{"/delete_recipe/" + recipe.ID, "No reviews yet."}},
		{page: "error.html", data: base(map[string]any{"Status": 404, "Error": "document not found"}), contains: []string{"404", "document not found"}},
	}

	for _, tt := range tests {
		t.Run(tt.page, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, tmpl.ExecuteTemplate(&buf, tt.page, tt.data))
			for _, s := range tt.contains {
				assert.Contains(t, buf.String(), s)
			}
		})
	}
}
