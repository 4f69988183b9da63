package mock

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"
	"unicode"

	"github.com/jon4hz/cookbook/internal/database"
	"github.com/samber/lo"
	"go.mongodb.org/mongo-driver/v2/bson"
)

var _ database.DB = (*MockDB)(nil)

// ErrTextIndexRequired mirrors the server error for $text queries without a text index.
var ErrTextIndexRequired = errors.New("text index required for $text query")

// MockDB is an in-memory implementation of database.DB for testing.
type MockDB struct {
	mu sync.RWMutex

	users   map[bson.ObjectID]*database.User
	recipes map[bson.ObjectID]*database.Recipe
	reviews map[bson.ObjectID]*database.Review

	textIndex bool

	// EnsureTextIndexCalls counts calls to EnsureRecipeTextIndex.
	EnsureTextIndexCalls int

	// Now returns the timestamp used for created_at. Defaults to time.Now.
	Now func() time.Time

	// Error simulation
	CreateUserError        error
	GetUserByUsernameError error
	CreateRecipeError      error
	GetRecipesError        error
	GetRecipeByIDError     error
	UpdateRecipeError      error
	DeleteRecipeError      error
	CreateReviewError      error
	GetReviewsError        error
	GetReviewByIDError     error
	UpdateReviewError      error
	DeleteReviewError      error
	SearchRecipesError     error
	PingError              error
}

// NewMockDB creates a new MockDB instance.
func NewMockDB() *MockDB {
	return &MockDB{
		users:   make(map[bson.ObjectID]*database.User),
		recipes: make(map[bson.ObjectID]*database.Recipe),
		reviews: make(map[bson.ObjectID]*database.Review),
		Now:     time.Now,
	}
}

func (m *MockDB) now() time.Time {
	if m.Now == nil {
		return time.Now().UTC()
	}
	return m.Now().UTC()
}

// Users

func (m *MockDB) CreateUser(_ context.Context, user *database.User) error {
	if m.CreateUserError != nil {
		return m.CreateUserError
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	user.ID = bson.NewObjectID()
	u := *user
	m.users[u.ID] = &u
	return nil
}

func (m *MockDB) GetUserByUsername(_ context.Context, username string) (*database.User, error) {
	if m.GetUserByUsernameError != nil {
		return nil, m.GetUserByUsernameError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, u := range m.users {
		if u.Username == username {
			found := *u
			return &found, nil
		}
	}
	return nil, database.ErrNotFound
}

// UserCount returns how many users carry the given username.
func (m *MockDB) UserCount(username string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return lo.CountBy(lo.Values(m.users), func(u *database.User) bool { return u.Username == username })
}

// Recipes

func (m *MockDB) CreateRecipe(_ context.Context, recipe *database.Recipe) error {
	if m.CreateRecipeError != nil {
		return m.CreateRecipeError
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	recipe.ID = bson.NewObjectID()
	recipe.CreatedAt = m.now()
	r := *recipe
	m.recipes[r.ID] = &r
	return nil
}

func (m *MockDB) GetRecipes(_ context.Context) ([]database.Recipe, error) {
	if m.GetRecipesError != nil {
		return nil, m.GetRecipesError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	recipes := copyRecipes(lo.Values(m.recipes))
	sort.SliceStable(recipes, func(i, j int) bool { return recipes[i].CreatedAt.After(recipes[j].CreatedAt) })
	return recipes, nil
}

func (m *MockDB) GetRecipeByID(_ context.Context, id string) (*database.Recipe, error) {
	if m.GetRecipeByIDError != nil {
		return nil, m.GetRecipeByIDError
	}
	oid, err := database.ParseID(id)
	if err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	r, ok := m.recipes[oid]
	if !ok {
		return nil, database.ErrNotFound
	}
	found := *r
	return &found, nil
}

func (m *MockDB) GetRecipesByUsername(_ context.Context, username string) ([]database.Recipe, error) {
	if m.GetRecipesError != nil {
		return nil, m.GetRecipesError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	owned := lo.Filter(lo.Values(m.recipes), func(r *database.Recipe, _ int) bool { return r.Username == username })
	return copyRecipes(owned), nil
}

func (m *MockDB) UpdateRecipe(_ context.Context, id string, fields database.RecipeFields) error {
	if m.UpdateRecipeError != nil {
		return m.UpdateRecipeError
	}
	oid, err := database.ParseID(id)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	r, ok := m.recipes[oid]
	if !ok {
		return database.ErrNotFound
	}
	r.Title = fields.Title
	r.Ingredients = fields.Ingredients
	r.Instructions = fields.Instructions
	return nil
}

func (m *MockDB) DeleteRecipe(_ context.Context, id string) error {
	if m.DeleteRecipeError != nil {
		return m.DeleteRecipeError
	}
	oid, err := database.ParseID(id)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.recipes, oid)
	return nil
}

// Reviews

func (m *MockDB) CreateReview(_ context.Context, review *database.Review) error {
	if m.CreateReviewError != nil {
		return m.CreateReviewError
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	review.ID = bson.NewObjectID()
	review.CreatedAt = m.now()
	r := *review
	m.reviews[r.ID] = &r
	return nil
}

func (m *MockDB) GetReviews(_ context.Context) ([]database.Review, error) {
	if m.GetReviewsError != nil {
		return nil, m.GetReviewsError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	reviews := copyReviews(lo.Values(m.reviews))
	sort.SliceStable(reviews, func(i, j int) bool { return reviews[i].CreatedAt.After(reviews[j].CreatedAt) })
	return reviews, nil
}

func (m *MockDB) GetReviewByID(_ context.Context, id string) (*database.Review, error) {
	if m.GetReviewByIDError != nil {
		return nil, m.GetReviewByIDError
	}
	oid, err := database.ParseID(id)
	if err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	r, ok := m.reviews[oid]
	if !ok {
		return nil, database.ErrNotFound
	}
	found := *r
	return &found, nil
}

func (m *MockDB) GetReviewsByUsername(_ context.Context, username string) ([]database.Review, error) {
	if m.GetReviewsError != nil {
		return nil, m.GetReviewsError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	owned := lo.Filter(lo.Values(m.reviews), func(r *database.Review, _ int) bool { return r.Username == username })
	return copyReviews(owned), nil
}

func (m *MockDB) UpdateReviewText(_ context.Context, id string, text string) error {
	if m.UpdateReviewError != nil {
		return m.UpdateReviewError
	}
	oid, err := database.ParseID(id)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	r, ok := m.reviews[oid]
	if !ok {
		return database.ErrNotFound
	}
	r.Text = text
	return nil
}

func (m *MockDB) DeleteReview(_ context.Context, id string) error {
	if m.DeleteReviewError != nil {
		return m.DeleteReviewError
	}
	oid, err := database.ParseID(id)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.reviews, oid)
	return nil
}

// Search

func (m *MockDB) EnsureRecipeTextIndex(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.textIndex = true
	m.EnsureTextIndexCalls++
	return nil
}

// SearchRecipes matches a recipe when any query term equals a word of its
// title, ingredients or instructions, case-insensitively. Results are ordered
// by the number of matching terms.
func (m *MockDB) SearchRecipes(_ context.Context, query string) ([]database.Recipe, error) {
	if m.SearchRecipesError != nil {
		return nil, m.SearchRecipesError
	}
	if query == "" {
		return []database.Recipe{}, nil
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	if !m.textIndex {
		return nil, ErrTextIndexRequired
	}

	terms := lo.Uniq(tokenize(query))
	type scored struct {
		recipe database.Recipe
		score  int
	}
	var matches []scored
	for _, r := range m.recipes {
		words := lo.Uniq(tokenize(r.Title + " " + r.Ingredients + " " + r.Instructions))
		score := len(lo.Intersect(terms, words))
		if score > 0 {
			matches = append(matches, scored{recipe: *r, score: score})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].score != matches[j].score {
			return matches[i].score > matches[j].score
		}
		return matches[i].recipe.CreatedAt.After(matches[j].recipe.CreatedAt)
	})
	return lo.Map(matches, func(s scored, _ int) database.Recipe { return s.recipe }), nil
}

func tokenize(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
}

// Utility

func (m *MockDB) EnsureIndexes(ctx context.Context) error {
	return m.EnsureRecipeTextIndex(ctx)
}

func (m *MockDB) GetStats(_ context.Context) (*database.Stats, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	stats := &database.Stats{
		Users:   int64(len(m.users)),
		Recipes: int64(len(m.recipes)),
		Reviews: int64(len(m.reviews)),
	}
	if len(m.recipes) > 0 {
		latest := lo.MaxBy(lo.Values(m.recipes), func(a, b *database.Recipe) bool { return a.CreatedAt.After(b.CreatedAt) })
		r := *latest
		stats.LatestRecipe = &r
	}
	if len(m.reviews) > 0 {
		latest := lo.MaxBy(lo.Values(m.reviews), func(a, b *database.Review) bool { return a.CreatedAt.After(b.CreatedAt) })
		r := *latest
		stats.LatestReview = &r
	}
	return stats, nil
}

func (m *MockDB) Ping(_ context.Context) error {
	return m.PingError
}

func (m *MockDB) Close(_ context.Context) error {
	return nil
}

func copyRecipes(in []*database.Recipe) []database.Recipe {
	out := make([]database.Recipe, 0, len(in))
	for _, r := range in {
		out = append(out, *r)
	}
	return out
}

func copyReviews(in []*database.Review) []database.Review {
	out := make([]database.Review, 0, len(in))
	for _, r := range in {
		out = append(out, *r)
	}
	return out
}
