package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

var _ DB = (*Client)(nil) // Ensure Client implements DB

// Client wraps the mongo client and the selected database.
type Client struct {
	client *mongo.Client
	db     *mongo.Database
}

// New connects to MongoDB and verifies the connection with a ping.
// An unreachable store is reported as an error, callers treat it as fatal.
func New(ctx context.Context, uri, dbname string, timeout time.Duration) (*Client, error) {
	opts := options.Client().
		ApplyURI(uri).
		SetConnectTimeout(timeout).
		SetServerSelectionTimeout(timeout)

	client, err := mongo.Connect(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	c := &Client{
		client: client,
		db:     client.Database(dbname),
	}

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := c.Ping(pingCtx); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Info("connected to MongoDB", "database", dbname)
	return c, nil
}

// Ping checks that the primary is reachable.
func (c *Client) Ping(ctx context.Context) error {
	return c.client.Ping(ctx, readpref.Primary())
}

// Close disconnects from the store.
func (c *Client) Close(ctx context.Context) error {
	return c.client.Disconnect(ctx)
}

func (c *Client) users() *mongo.Collection   { return c.db.Collection(UsersCollection) }
func (c *Client) recipes() *mongo.Collection { return c.db.Collection(RecipesCollection) }
func (c *Client) reviews() *mongo.Collection { return c.db.Collection(ReviewsCollection) }

// EnsureIndexes creates the text index on recipes and the username lookup indexes.
// The username index on users is not unique, the signup check is a plain lookup.
func (c *Client) EnsureIndexes(ctx context.Context) error {
	if err := c.EnsureRecipeTextIndex(ctx); err != nil {
		return err
	}
	for _, coll := range []*mongo.Collection{c.users(), c.recipes(), c.reviews()} {
		model := mongo.IndexModel{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetName("username_1"),
		}
		if _, err := coll.Indexes().CreateOne(ctx, model); err != nil {
			log.Error("failed to create username index", "collection", coll.Name(), "error", err)
			return fmt.Errorf("failed to create username index on %s: %w", coll.Name(), err)
		}
	}
	return nil
}

// GetStats counts the documents of every collection.
func (c *Client) GetStats(ctx context.Context) (*Stats, error) {
	var stats Stats
	var err error
	if stats.Users, err = c.users().CountDocuments(ctx, bson.D{}); err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}
	if stats.Recipes, err = c.recipes().CountDocuments(ctx, bson.D{}); err != nil {
		return nil, fmt.Errorf("failed to count recipes: %w", err)
	}
	if stats.Reviews, err = c.reviews().CountDocuments(ctx, bson.D{}); err != nil {
		return nil, fmt.Errorf("failed to count reviews: %w", err)
	}

	newest := options.FindOne().SetSort(bson.D{{Key: "created_at", Value: -1}})

	var recipe Recipe
	if err := c.recipes().FindOne(ctx, bson.D{}, newest).Decode(&recipe); err == nil {
		stats.LatestRecipe = &recipe
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("failed to get latest recipe: %w", err)
	}

	var review Review
	if err := c.reviews().FindOne(ctx, bson.D{}, newest).Decode(&review); err == nil {
		stats.LatestReview = &review
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("failed to get latest review: %w", err)
	}

	return &stats, nil
}

// findOne decodes the document with the given id into out.
func findOne(ctx context.Context, coll *mongo.Collection, id string, out any) error {
	oid, err := ParseID(id)
	if err != nil {
		return err
	}
	if err := coll.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(out); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrNotFound
		}
		log.Error("failed to find document", "collection", coll.Name(), "id", id, "error", err)
		return err
	}
	return nil
}

// findAll runs the query and decodes the whole result set into out.
func findAll(ctx context.Context, coll *mongo.Collection, filter any, out any, opts ...options.Lister[options.FindOptions]) error {
	cursor, err := coll.Find(ctx, filter, opts...)
	if err != nil {
		log.Error("failed to query collection", "collection", coll.Name(), "error", err)
		return err
	}
	if err := cursor.All(ctx, out); err != nil {
		log.Error("failed to decode documents", "collection", coll.Name(), "error", err)
		return err
	}
	return nil
}

// updateFields replaces only the named fields of the document with the given id.
func updateFields(ctx context.Context, coll *mongo.Collection, id string, fields bson.M) error {
	oid, err := ParseID(id)
	if err != nil {
		return err
	}
	res, err := coll.UpdateOne(ctx, bson.D{{Key: "_id", Value: oid}}, bson.D{{Key: "$set", Value: fields}})
	if err != nil {
		log.Error("failed to update document", "collection", coll.Name(), "id", id, "error", err)
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// deleteByID removes the document with the given id. A missing document is not an error.
func deleteByID(ctx context.Context, coll *mongo.Collection, id string) error {
	oid, err := ParseID(id)
	if err != nil {
		return err
	}
	if _, err := coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}}); err != nil {
		log.Error("failed to delete document", "collection", coll.Name(), "id", id, "error", err)
		return err
	}
	return nil
}

func newestFirst() *options.FindOptionsBuilder {
	return options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
}
