package db

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Collection names on the warehouse database. transactions, user_logs
// and notifications are reserved for the ledger and audit flows and are
// not served by this API yet.
const (
	CollectionOrders        = "orders"
	CollectionProducts      = "products"
	CollectionUsers         = "users"
	CollectionTransactions  = "transactions"
	CollectionUserLogs      = "user_logs"
	CollectionNotifications = "notifications"
)

// Connect establishes the process-wide client and verifies connectivity
// before any request is served. The returned handle is safe for
// concurrent use by all in-flight requests.
func Connect(uri, name string) (*mongo.Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)

	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))

	if err != nil {
		return nil, err
	}

	err = client.Ping(ctx, readpref.Primary())

	if err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}

	return client.Database(name), nil
}
