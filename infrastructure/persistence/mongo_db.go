package persistence

import (
	"fmt"
	"net/url"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// NewMongoDb builds a MongoDB client. The connection is established lazily;
// callers should Ping before use.
func NewMongoDb(host, port, user, password, dbName string) (*mongo.Client, error) {
	if host == "" {
		return nil, fmt.Errorf("mongo host is not configured")
	}
	if port == "" {
		port = "27017"
	}
	u := url.URL{Scheme: "mongodb", Host: fmt.Sprintf("%s:%s", host, port), Path: "/" + dbName}
	if user != "" {
		u.User = url.UserPassword(user, password)
	}
	opts := options.Client().
		ApplyURI(u.String()).
		SetConnectTimeout(10 * time.Second).
		SetServerSelectionTimeout(10 * time.Second)
	client, err := mongo.Connect(opts)
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	return client, nil
}
