package docstore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"gamevault/internal/domain/repository"
	"gamevault/pkg/logger"
)

const defaultFirestoreDatabase = "(default)"

type firestoreConnector struct {
	projectID  string
	databaseID string
	timeout    time.Duration
	options    []option.ClientOption
}

func (c *firestoreConnector) backend() string {
	return "firestore"
}

func (c *firestoreConnector) connect(ctx context.Context) (session, error) {
	dialCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	client, err := firestore.NewClientWithDatabase(dialCtx, c.projectID, c.databaseID, c.options...)
	if err != nil {
		return nil, err
	}

	return &firestoreSession{client: client}, nil
}

type firestoreSession struct {
	client *firestore.Client
}

func (s *firestoreSession) insert(ctx context.Context, collection string, document interface{}) (string, error) {
	ref, _, err := s.client.Collection(collection).Add(ctx, document)
	if err != nil {
		logFirestoreError("insert", collection, err)
		return "", err
	}
	return ref.ID, nil
}

func (s *firestoreSession) findAll(ctx context.Context, collection string) ([]repository.Record, error) {
	iter := s.client.Collection(collection).Documents(ctx)
	defer iter.Stop()

	records := []repository.Record{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			logFirestoreError("find", collection, err)
			return nil, err
		}
		records = append(records, firestoreRecord{snapshot: doc})
	}

	return records, nil
}

// ping lists at most one collection; an empty database still counts as reachable.
func (s *firestoreSession) ping(ctx context.Context) error {
	iter := s.client.Collections(ctx)
	_, err := iter.Next()
	if err == iterator.Done {
		return nil
	}
	return err
}

func (s *firestoreSession) close(context.Context) error {
	return s.client.Close()
}

type firestoreRecord struct {
	snapshot *firestore.DocumentSnapshot
}

func (r firestoreRecord) ID() string {
	return r.snapshot.Ref.ID
}

func (r firestoreRecord) Decode(v interface{}) error {
	return r.snapshot.DataTo(v)
}

func logFirestoreError(operation, collection string, err error) {
	switch status.Code(err) {
	case codes.Unavailable, codes.DeadlineExceeded:
		logger.Warn("Firestore %s on %s is unreachable: %v", operation, collection, err)
	case codes.PermissionDenied, codes.Unauthenticated:
		logger.Error("Firestore %s on %s was refused, check credentials: %v", operation, collection, err)
	}
}
