//go:build integration

package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/apickard/discbin/pkg/lostfound/models"
)

// createPostgresStore spins up a throwaway PostgreSQL container and
// returns a store backed by it. The container is torn down with the test.
func createPostgresStore(t *testing.T) *GORMStore {
	t.Helper()
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("discbin_test"),
		tcpostgres.WithUsername("discbin_test"),
		tcpostgres.WithPassword("discbin_test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("failed to get container host: %v", err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		t.Fatalf("failed to get container port: %v", err)
	}

	store, err := New(&Config{
		Type: DatabaseTypePostgres,
		Postgres: PostgresConfig{
			Host:     host,
			Port:     port.Int(),
			Database: "discbin_test",
			User:     "discbin_test",
			Password: "discbin_test",
			SSLMode:  "disable",
		},
	})
	if err != nil {
		t.Fatalf("failed to create postgres store: %v", err)
	}
	return store
}

func TestPostgresDiscLifecycle(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}

	store := createPostgresStore(t)
	defer store.Close()
	ctx := context.Background()

	disc := testDisc()
	if err := store.CreateDisc(ctx, disc); err != nil {
		t.Fatalf("failed to create disc: %v", err)
	}
	if disc.ID == 0 {
		t.Fatal("expected non-zero disc ID")
	}

	listed, err := store.ListUnclaimed(ctx)
	if err != nil {
		t.Fatalf("failed to list unclaimed: %v", err)
	}
	if len(listed) != 1 {
		t.Fatalf("expected 1 unclaimed disc, got %d", len(listed))
	}
	if listed[0].DateFound.String() != disc.DateFound.String() {
		t.Errorf("dateFound round-trip mismatch: %s vs %s",
			listed[0].DateFound, disc.DateFound)
	}

	claimed, err := store.MarkClaimed(ctx, disc.ID)
	if err != nil {
		t.Fatalf("failed to mark claimed: %v", err)
	}
	if claimed.Status != models.StatusClaimed {
		t.Errorf("expected status %q, got %q", models.StatusClaimed, claimed.Status)
	}

	listed, err = store.ListUnclaimed(ctx)
	if err != nil {
		t.Fatalf("failed to list unclaimed after claim: %v", err)
	}
	if len(listed) != 0 {
		t.Errorf("expected empty unclaimed list, got %d rows", len(listed))
	}

	if _, err := store.MarkClaimed(ctx, disc.ID+1000); !errors.Is(err, models.ErrDiscNotFound) {
		t.Errorf("expected ErrDiscNotFound, got %v", err)
	}
}
