package database

import (
	"context"
	"errors"

	"github.com/charmbracelet/log"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// CreateUser inserts a new user. It does not check for an existing username,
// callers look the name up first. The two steps are not atomic, so concurrent
// signups with the same name can both succeed.
func (c *Client) CreateUser(ctx context.Context, user *User) error {
	res, err := c.users().InsertOne(ctx, user)
	if err != nil {
		log.Error("failed to create user", "error", err)
		return err
	}
	if oid, ok := res.InsertedID.(bson.ObjectID); ok {
		user.ID = oid
	}
	return nil
}

// GetUserByUsername returns the user with exactly this username.
func (c *Client) GetUserByUsername(ctx context.Context, username string) (*User, error) {
	var user User
	if err := c.users().FindOne(ctx, bson.D{{Key: "username", Value: username}}).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		log.Error("failed to get user by username", "error", err)
		return nil, err
	}
	return &user, nil
}
