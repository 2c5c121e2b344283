package docstore

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"google.golang.org/api/option"

	"gamevault/pkg/config"
)

type Options struct {
	// URL selects the backend: mongodb://, mongodb+srv://, firestore:// or memory://.
	URL string
	// Database is used when the URL does not name one.
	Database       string
	Mode           string
	ConnectTimeout time.Duration
}

// Open builds a Store for opts.URL. In pooled mode the client is created
// immediately; in per_request mode nothing is dialled until the first call.
func Open(ctx context.Context, opts Options) (*Store, error) {
	if opts.Mode == "" {
		opts.Mode = config.ConnectionModePooled
	}
	if opts.ConnectTimeout <= 0 {
		opts.ConnectTimeout = 10 * time.Second
	}

	c, err := newConnector(opts)
	if err != nil {
		return nil, err
	}

	return newStore(ctx, c, opts.Mode)
}

func newConnector(opts Options) (connector, error) {
	raw := strings.TrimSpace(opts.URL)
	scheme, _, found := strings.Cut(raw, "://")
	if !found {
		return nil, fmt.Errorf("document store URL must include a scheme")
	}

	switch strings.ToLower(scheme) {
	case "mongodb", "mongodb+srv":
		database := databaseFromMongoURI(raw)
		if database == "" {
			database = opts.Database
		}
		if database == "" {
			return nil, fmt.Errorf("mongodb URL names no database and no default is configured")
		}
		return &mongoConnector{uri: raw, database: database, timeout: opts.ConnectTimeout}, nil
	case "firestore":
		return parseFirestoreURL(raw, opts.ConnectTimeout)
	case "memory":
		return newMemoryConnector(), nil
	}

	return nil, fmt.Errorf("unsupported document store scheme %q", scheme)
}

// databaseFromMongoURI returns the path segment of a mongodb URI, which may
// list several comma separated hosts and so cannot go through url.Parse.
func databaseFromMongoURI(uri string) string {
	_, rest, _ := strings.Cut(uri, "://")
	slash := strings.Index(rest, "/")
	if slash < 0 {
		return ""
	}
	database := rest[slash+1:]
	if q := strings.Index(database, "?"); q >= 0 {
		database = database[:q]
	}
	if unescaped, err := url.PathUnescape(database); err == nil {
		database = unescaped
	}
	return database
}

// parseFirestoreURL reads firestore://<project>[/<database>][?credentials=<file>].
func parseFirestoreURL(raw string, timeout time.Duration) (connector, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid firestore URL: %w", err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("firestore URL must name a project, e.g. firestore://my-project")
	}

	databaseID := strings.Trim(u.Path, "/")
	if databaseID == "" {
		databaseID = defaultFirestoreDatabase
	}

	var clientOpts []option.ClientOption
	if credentials := u.Query().Get("credentials"); credentials != "" {
		clientOpts = append(clientOpts, option.WithCredentialsFile(credentials))
	}

	return &firestoreConnector{
		projectID:  u.Host,
		databaseID: databaseID,
		timeout:    timeout,
		options:    clientOpts,
	}, nil
}
