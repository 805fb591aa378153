//go:build integration

package store

import (
	"context"
	"errors"
	"testing"

	"github.com/apickard/discbin/pkg/lostfound/models"
)

// createTestStore creates an in-memory SQLite store for testing.
func createTestStore(t *testing.T) *GORMStore {
	t.Helper()
	store, err := New(&Config{
		Type: DatabaseTypeSQLite,
		SQLite: SQLiteConfig{
			Path: ":memory:",
		},
	})
	if err != nil {
		t.Fatalf("failed to create test store: %v", err)
	}
	return store
}

func testDisc() *models.FoundDisc {
	return &models.FoundDisc{
		Course:      "Maple Hill",
		Name:        "Jo Barnes",
		Disc:        "Blue Innova Destroyer",
		PhoneNumber: "555-0142",
		Bin:         "A3",
		DateFound:   models.Today(),
		Status:      models.StatusPendingText,
	}
}

func TestNew(t *testing.T) {
	t.Run("default config uses sqlite", func(t *testing.T) {
		config := &Config{}
		config.ApplyDefaults()

		if config.Type != DatabaseTypeSQLite {
			t.Errorf("expected SQLite, got %s", config.Type)
		}
	})

	t.Run("invalid config returns error", func(t *testing.T) {
		config := &Config{
			Type: "invalid",
		}
		_, err := New(config)
		if err == nil {
			t.Error("expected error for invalid config")
		}
	})

	t.Run("postgres config requires host", func(t *testing.T) {
		config := &Config{
			Type: DatabaseTypePostgres,
			Postgres: PostgresConfig{
				Database: "discbin",
				User:     "discbin",
			},
		}
		config.ApplyDefaults()
		if err := config.Validate(); err == nil {
			t.Error("expected error for missing postgres host")
		}
	})

	t.Run("creates in-memory store", func(t *testing.T) {
		store := createTestStore(t)
		defer store.Close()

		if err := store.Ping(context.Background()); err != nil {
			t.Errorf("ping failed: %v", err)
		}
	})
}

func TestDiscOperations(t *testing.T) {
	store := createTestStore(t)
	defer store.Close()
	ctx := context.Background()

	t.Run("create disc", func(t *testing.T) {
		disc := testDisc()

		if err := store.CreateDisc(ctx, disc); err != nil {
			t.Fatalf("failed to create disc: %v", err)
		}
		if disc.ID == 0 {
			t.Error("expected non-zero disc ID")
		}
	})

	t.Run("create rejects invalid record", func(t *testing.T) {
		disc := testDisc()
		disc.PhoneNumber = ""

		err := store.CreateDisc(ctx, disc)
		if !errors.Is(err, models.ErrInvalidDisc) {
			t.Errorf("expected ErrInvalidDisc, got %v", err)
		}
	})

	t.Run("get disc", func(t *testing.T) {
		disc := testDisc()
		if err := store.CreateDisc(ctx, disc); err != nil {
			t.Fatalf("failed to create disc: %v", err)
		}

		got, err := store.GetDisc(ctx, disc.ID)
		if err != nil {
			t.Fatalf("failed to get disc: %v", err)
		}
		if got.Name != disc.Name {
			t.Errorf("expected name %q, got %q", disc.Name, got.Name)
		}
		if got.Status != models.StatusPendingText {
			t.Errorf("expected status %q, got %q", models.StatusPendingText, got.Status)
		}
	})

	t.Run("get missing disc", func(t *testing.T) {
		_, err := store.GetDisc(ctx, 99999)
		if !errors.Is(err, models.ErrDiscNotFound) {
			t.Errorf("expected ErrDiscNotFound, got %v", err)
		}
	})

	t.Run("mark claimed", func(t *testing.T) {
		disc := testDisc()
		if err := store.CreateDisc(ctx, disc); err != nil {
			t.Fatalf("failed to create disc: %v", err)
		}

		claimed, err := store.MarkClaimed(ctx, disc.ID)
		if err != nil {
			t.Fatalf("failed to mark claimed: %v", err)
		}
		if claimed.Status != models.StatusClaimed {
			t.Errorf("expected status %q, got %q", models.StatusClaimed, claimed.Status)
		}
		if claimed.DateClaimed == nil || claimed.DateClaimed.IsZero() {
			t.Error("expected dateClaimed to be set")
		}
	})

	t.Run("mark claimed is idempotent", func(t *testing.T) {
		disc := testDisc()
		if err := store.CreateDisc(ctx, disc); err != nil {
			t.Fatalf("failed to create disc: %v", err)
		}

		first, err := store.MarkClaimed(ctx, disc.ID)
		if err != nil {
			t.Fatalf("first claim failed: %v", err)
		}
		second, err := store.MarkClaimed(ctx, disc.ID)
		if err != nil {
			t.Fatalf("second claim failed: %v", err)
		}
		if second.Status != models.StatusClaimed {
			t.Errorf("expected status %q, got %q", models.StatusClaimed, second.Status)
		}
		if first.DateClaimed == nil || second.DateClaimed == nil {
			t.Fatal("expected dateClaimed on both claims")
		}
	})

	t.Run("mark claimed missing disc", func(t *testing.T) {
		_, err := store.MarkClaimed(ctx, 99999)
		if !errors.Is(err, models.ErrDiscNotFound) {
			t.Errorf("expected ErrDiscNotFound, got %v", err)
		}
	})

	t.Run("mark texted", func(t *testing.T) {
		disc := testDisc()
		if err := store.CreateDisc(ctx, disc); err != nil {
			t.Fatalf("failed to create disc: %v", err)
		}

		texted, err := store.MarkTexted(ctx, disc.ID)
		if err != nil {
			t.Fatalf("failed to mark texted: %v", err)
		}
		if texted.Status != models.StatusTexted {
			t.Errorf("expected status %q, got %q", models.StatusTexted, texted.Status)
		}
		if texted.DateTexted == nil || texted.DateTexted.IsZero() {
			t.Error("expected dateTexted to be set")
		}
	})

	t.Run("mark texted leaves claimed disc alone", func(t *testing.T) {
		disc := testDisc()
		if err := store.CreateDisc(ctx, disc); err != nil {
			t.Fatalf("failed to create disc: %v", err)
		}
		if _, err := store.MarkClaimed(ctx, disc.ID); err != nil {
			t.Fatalf("failed to mark claimed: %v", err)
		}

		got, err := store.MarkTexted(ctx, disc.ID)
		if err != nil {
			t.Fatalf("mark texted failed: %v", err)
		}
		if got.Status != models.StatusClaimed {
			t.Errorf("expected claimed disc to stay %q, got %q", models.StatusClaimed, got.Status)
		}
		if got.DateTexted != nil {
			t.Errorf("expected dateTexted to stay unset, got %v", got.DateTexted)
		}
	})

	t.Run("mark texted missing disc", func(t *testing.T) {
		_, err := store.MarkTexted(ctx, 99999)
		if !errors.Is(err, models.ErrDiscNotFound) {
			t.Errorf("expected ErrDiscNotFound, got %v", err)
		}
	})
}

func TestCreateDiscPreservesComments(t *testing.T) {
	store := createTestStore(t)
	defer store.Close()
	ctx := context.Background()

	comments := "left at hole 7"
	disc := testDisc()
	disc.Comments = &comments

	if err := store.CreateDisc(ctx, disc); err != nil {
		t.Fatalf("failed to create disc: %v", err)
	}

	discs, err := store.ListUnclaimed(ctx)
	if err != nil {
		t.Fatalf("failed to list unclaimed: %v", err)
	}
	if len(discs) != 1 {
		t.Fatalf("expected 1 disc, got %d", len(discs))
	}
	if discs[0].Comments == nil || *discs[0].Comments != comments {
		t.Errorf("expected comments %q, got %v", comments, discs[0].Comments)
	}
}

func TestDiscIDsIncrease(t *testing.T) {
	store := createTestStore(t)
	defer store.Close()
	ctx := context.Background()

	var lastID uint
	for i := 0; i < 3; i++ {
		disc := testDisc()
		if err := store.CreateDisc(ctx, disc); err != nil {
			t.Fatalf("failed to create disc %d: %v", i, err)
		}
		if disc.ID <= lastID {
			t.Fatalf("expected id above %d, got %d", lastID, disc.ID)
		}
		lastID = disc.ID
	}
}

func TestListUnclaimed(t *testing.T) {
	store := createTestStore(t)
	defer store.Close()
	ctx := context.Background()

	seed := func(t *testing.T, name string) *models.FoundDisc {
		t.Helper()
		disc := testDisc()
		disc.Name = name
		if err := store.CreateDisc(ctx, disc); err != nil {
			t.Fatalf("failed to seed disc: %v", err)
		}
		return disc
	}

	pending := seed(t, "pending owner")
	texted := seed(t, "texted owner")
	claimed := seed(t, "claimed owner")

	if _, err := store.MarkTexted(ctx, texted.ID); err != nil {
		t.Fatalf("failed to mark texted: %v", err)
	}
	if _, err := store.MarkClaimed(ctx, claimed.ID); err != nil {
		t.Fatalf("failed to mark claimed: %v", err)
	}

	discs, err := store.ListUnclaimed(ctx)
	if err != nil {
		t.Fatalf("failed to list unclaimed: %v", err)
	}

	if len(discs) != 2 {
		t.Fatalf("expected 2 unclaimed discs, got %d", len(discs))
	}
	if discs[0].ID != pending.ID || discs[1].ID != texted.ID {
		t.Errorf("expected ids [%d %d] in order, got [%d %d]",
			pending.ID, texted.ID, discs[0].ID, discs[1].ID)
	}
	for _, d := range discs {
		if d.Claimed() {
			t.Errorf("claimed disc %d leaked into unclaimed list", d.ID)
		}
	}

	all, err := store.ListAll(ctx)
	if err != nil {
		t.Fatalf("failed to list all: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("expected 3 discs total, got %d", len(all))
	}
}
