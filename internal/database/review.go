package database

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// CreateReview stamps created_at with the current UTC time and inserts the review.
func (c *Client) CreateReview(ctx context.Context, review *Review) error {
	review.ID = bson.NilObjectID
	review.CreatedAt = time.Now().UTC()
	res, err := c.reviews().InsertOne(ctx, review)
	if err != nil {
		log.Error("failed to create review", "error", err)
		return err
	}
	if oid, ok := res.InsertedID.(bson.ObjectID); ok {
		review.ID = oid
	}
	return nil
}

// GetReviews returns all reviews, newest first.
func (c *Client) GetReviews(ctx context.Context) ([]Review, error) {
	reviews := []Review{}
	if err := findAll(ctx, c.reviews(), bson.D{}, &reviews, newestFirst()); err != nil {
		return nil, err
	}
	return reviews, nil
}

func (c *Client) GetReviewByID(ctx context.Context, id string) (*Review, error) {
	var review Review
	if err := findOne(ctx, c.reviews(), id, &review); err != nil {
		return nil, err
	}
	return &review, nil
}

func (c *Client) GetReviewsByUsername(ctx context.Context, username string) ([]Review, error) {
	reviews := []Review{}
	if err := findAll(ctx, c.reviews(), bson.D{{Key: "username", Value: username}}, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

// UpdateReviewText replaces only the review text.
func (c *Client) UpdateReviewText(ctx context.Context, id string, text string) error {
	return updateFields(ctx, c.reviews(), id, bson.M{"review": text})
}

func (c *Client) DeleteReview(ctx context.Context, id string) error {
	return deleteByID(ctx, c.reviews(), id)
}
