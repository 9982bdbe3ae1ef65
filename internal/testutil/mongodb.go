//go:build integration

// Package testutil starts the MongoDB container shared by integration tests.
package testutil

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
)

// mongoImage is the server version the catalog and logs indexes are tested against.
const mongoImage = "mongo:7.0"

// maxDBNameLen leaves room for the uniqueness suffix under MongoDB's 64 byte limit.
const maxDBNameLen = 48

// MongoDBContainer is a running MongoDB testcontainer and its connection string.
type MongoDBContainer struct {
	Container testcontainers.Container
	URI       string
}

// SetupMongoDB starts a dedicated MongoDB container.
// Prefer SetupTestMainWithMongoDB unless a test needs to stop the server.
func SetupMongoDB(ctx context.Context) (*MongoDBContainer, error) {
	container, err := mongodb.Run(ctx, mongoImage)
	if err != nil {
		return nil, fmt.Errorf("start mongodb container: %w", err)
	}

	uri, err := container.ConnectionString(ctx)
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, fmt.Errorf("mongodb connection string: %w", err)
	}
	return &MongoDBContainer{Container: container, URI: uri}, nil
}

// Cleanup terminates the container.
func (m *MongoDBContainer) Cleanup(ctx context.Context) error {
	if m == nil || m.Container == nil {
		return nil
	}
	if err := m.Container.Terminate(ctx); err != nil {
		return fmt.Errorf("terminate mongodb container: %w", err)
	}
	return nil
}

var shared struct {
	once      sync.Once
	mu        sync.RWMutex
	container *MongoDBContainer
	err       error
}

// SetupTestMainWithMongoDB starts one container for the whole package, runs the tests
// and terminates the container. Use it from TestMain:
//
//	func TestMain(m *testing.M) {
//		os.Exit(testutil.SetupTestMainWithMongoDB(context.Background(), m))
//	}
func SetupTestMainWithMongoDB(ctx context.Context, m *testing.M) int {
	shared.once.Do(func() {
		c, err := SetupMongoDB(ctx)
		shared.mu.Lock()
		shared.container, shared.err = c, err
		shared.mu.Unlock()
	})
	if shared.err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "mongodb container unavailable: %v\n", shared.err)
		return 1
	}

	code := m.Run()

	shared.mu.Lock()
	defer shared.mu.Unlock()
	if err := shared.container.Cleanup(ctx); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}
	shared.container = nil
	return code
}

// GetSharedContainerURI returns the URI of the package container.
// It panics outside SetupTestMainWithMongoDB.
func GetSharedContainerURI() string {
	shared.mu.RLock()
	defer shared.mu.RUnlock()

	if shared.container == nil {
		panic("testutil: shared MongoDB container not started, call SetupTestMainWithMongoDB from TestMain")
	}
	return shared.container.URI
}

// SanitizeDBName turns a test name into a unique MongoDB database name.
// Characters MongoDB rejects in database names become underscores.
func SanitizeDBName(testName string) string {
	name := strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', '.', ' ', '"', '$', '*', '<', '>', ':', '|', '?':
			return '_'
		}
		return r
	}, testName)
	if len(name) > maxDBNameLen {
		name = name[:maxDBNameLen]
	}
	return fmt.Sprintf("%s_%d", name, time.Now().UnixNano()%1_000_000)
}
