package docstore

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"gamevault/internal/domain/repository"
)

type mongoConnector struct {
	uri      string
	database string
	timeout  time.Duration
}

func (c *mongoConnector) backend() string {
	return "mongodb"
}

func (c *mongoConnector) connect(ctx context.Context) (session, error) {
	clientOpts := options.Client().
		ApplyURI(c.uri).
		SetConnectTimeout(c.timeout).
		SetServerSelectionTimeout(c.timeout)

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, err
	}

	return &mongoSession{client: client, db: client.Database(c.database)}, nil
}

type mongoSession struct {
	client *mongo.Client
	db     *mongo.Database
}

func (s *mongoSession) insert(ctx context.Context, collection string, document interface{}) (string, error) {
	result, err := s.db.Collection(collection).InsertOne(ctx, document)
	if err != nil {
		return "", err
	}

	switch id := result.InsertedID.(type) {
	case primitive.ObjectID:
		return id.Hex(), nil
	case string:
		return id, nil
	default:
		return fmt.Sprint(id), nil
	}
}

func (s *mongoSession) findAll(ctx context.Context, collection string) ([]repository.Record, error) {
	cursor, err := s.db.Collection(collection).Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	records := []repository.Record{}
	for cursor.Next(ctx) {
		// cursor.Current is reused by the next call to Next.
		raw := make(bson.Raw, len(cursor.Current))
		copy(raw, cursor.Current)
		records = append(records, mongoRecord{raw: raw})
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

func (s *mongoSession) ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

func (s *mongoSession) close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

type mongoRecord struct {
	raw bson.Raw
}

func (r mongoRecord) ID() string {
	value, err := r.raw.LookupErr("_id")
	if err != nil {
		return ""
	}
	if oid, ok := value.ObjectIDOK(); ok {
		return oid.Hex()
	}
	if str, ok := value.StringValueOK(); ok {
		return str
	}
	return value.String()
}

func (r mongoRecord) Decode(v interface{}) error {
	return bson.Unmarshal(r.raw, v)
}
