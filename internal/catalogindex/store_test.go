// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalogindex

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/pdiddy/catalog-server/internal/snapshot"
	"github.com/pdiddy/catalog-server/pkg/types"
)

// --- test helpers ---

func testSetup(t *testing.T) (*Store, snapshot.Manifest) {
	t.Helper()
	tmpDir := t.TempDir()

	dataDir := filepath.Join(tmpDir, "data")
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		t.Fatal(err)
	}

	store, err := NewStore(types.IndexConfig{
		IndexDir:   filepath.Join(tmpDir, "index"),
		MaxResults: 20,
	})
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { store.Close() })

	return store, snapshot.DefaultManifest(dataDir)
}

func writeSnapshots(t *testing.T, m snapshot.Manifest, byOrigin map[string]string) {
	t.Helper()
	for origin, content := range byOrigin {
		path, err := m.ProgrammePath(origin)
		if err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

// --- Build ---

func TestBuildAndSearch(t *testing.T) {
	store, m := testSetup(t)
	writeSnapshots(t, m, map[string]string{
		snapshot.OriginUK:      `{"programme_title":"Quantum Computing MSc"}`,
		snapshot.OriginUSA:     `{"name":"Quantum Physics BSc"}`,
		snapshot.OriginGermany: `{"title":"Medieval History"}`,
		snapshot.OriginFinland: `{"name":{"en":"Arctic Studies"}}`,
	})

	summary, err := store.Build(context.Background(), m, io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	if summary.Indexed != 4 {
		t.Errorf("Indexed = %d, want 4", summary.Indexed)
	}

	hits, err := store.Search(context.Background(), "quantum", "", 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(hits) != 2 {
		t.Fatalf("len(hits) = %d, want 2", len(hits))
	}

	hits, err = store.Search(context.Background(), "quantum", snapshot.OriginUK, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(hits) != 1 {
		t.Fatalf("len(hits) = %d, want 1", len(hits))
	}
	if hits[0].Title != "Quantum Computing MSc" {
		t.Errorf("Title = %q, want the UK programme", hits[0].Title)
	}
}

func TestBuildSkipsUnchangedSnapshots(t *testing.T) {
	store, m := testSetup(t)
	writeSnapshots(t, m, map[string]string{
		snapshot.OriginUK:      `{"programme_title":"Law"}`,
		snapshot.OriginUSA:     `{"name":"Law"}`,
		snapshot.OriginGermany: `{"title":"Jura"}`,
		snapshot.OriginFinland: `{"title":"Oikeustiede"}`,
	})

	if _, err := store.Build(context.Background(), m, io.Discard); err != nil {
		t.Fatal(err)
	}
	summary, err := store.Build(context.Background(), m, io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	if summary.Skipped != 4 {
		t.Errorf("Skipped = %d, want 4", summary.Skipped)
	}
	if summary.Indexed != 0 {
		t.Errorf("Indexed = %d, want 0", summary.Indexed)
	}
}

func TestBuildMissingSnapshotCountsAsFailed(t *testing.T) {
	store, m := testSetup(t)
	writeSnapshots(t, m, map[string]string{
		snapshot.OriginUK: `{"programme_title":"Law"}`,
	})

	summary, err := store.Build(context.Background(), m, io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	if summary.Indexed != 1 {
		t.Errorf("Indexed = %d, want 1", summary.Indexed)
	}
	if summary.Failed != 3 {
		t.Errorf("Failed = %d, want 3", summary.Failed)
	}
}
