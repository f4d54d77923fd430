package server

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/resumeforge/resumeforge/pkg/cache"
)

// Receipt records one completed render: what was rendered, how big the
// artifact was, and when. The document itself is never stored.
type Receipt struct {
	ID        string    `bson:"_id" json:"id"`
	DocHash   string    `bson:"doc_hash" json:"doc_hash"`
	Name      string    `bson:"name" json:"name"`
	Size      int       `bson:"size" json:"size"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// NewReceipt builds a receipt with a fresh random ID and the current time.
func NewReceipt(docHash, name string, size int) Receipt {
	return Receipt{
		ID:        uuid.NewString(),
		DocHash:   docHash,
		Name:      name,
		Size:      size,
		CreatedAt: time.Now().UTC(),
	}
}

// Archive persists render receipts.
type Archive interface {
	// Save stores one receipt.
	Save(ctx context.Context, r Receipt) error

	// Close releases any underlying connections.
	Close(ctx context.Context) error
}

// NullArchive discards receipts. It is the default when no archive backend
// is configured.
type NullArchive struct{}

func (NullArchive) Save(context.Context, Receipt) error { return nil }
func (NullArchive) Close(context.Context) error         { return nil }

// =============================================================================
// MongoDB Archive
// =============================================================================

const (
	archiveDatabase   = "resumeforge"
	archiveCollection = "receipts"
)

// MongoArchive persists receipts to a MongoDB collection. Transient write
// failures are retried with backoff.
type MongoArchive struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// NewMongoArchive connects to MongoDB at uri and verifies the connection.
func NewMongoArchive(ctx context.Context, uri string) (*MongoArchive, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}

	return &MongoArchive{
		client: client,
		coll:   client.Database(archiveDatabase).Collection(archiveCollection),
	}, nil
}

// Save inserts the receipt, retrying network and timeout failures.
func (a *MongoArchive) Save(ctx context.Context, r Receipt) error {
	return cache.RetryWithBackoff(ctx, func() error {
		_, err := a.coll.InsertOne(ctx, r)
		if err != nil && isTransient(err) {
			return &cache.RetryableError{Err: err}
		}
		return err
	})
}

// Close disconnects from MongoDB.
func (a *MongoArchive) Close(ctx context.Context) error {
	return a.client.Disconnect(ctx)
}

// isTransient reports whether a mongo error is worth retrying. Command
// errors (bad document, duplicate key) are permanent and fail immediately.
func isTransient(err error) bool {
	return mongo.IsNetworkError(err) || mongo.IsTimeout(err)
}

// Ensure both implementations satisfy Archive.
var (
	_ Archive = NullArchive{}
	_ Archive = (*MongoArchive)(nil)
)
