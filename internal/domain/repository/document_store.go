package repository

import "context"

// Record is one document read back from a collection.
type Record interface {
	ID() string
	// Decode copies the document fields into v, a pointer to a struct
	// tagged for the backing store.
	Decode(v interface{}) error
}

// DocumentStore is the narrow surface the service needs from a document
// database: insert one document, read a whole collection.
type DocumentStore interface {
	Insert(ctx context.Context, collection string, document interface{}) (string, error)
	FindAll(ctx context.Context, collection string) ([]Record, error)
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}
