package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/julianstephens/groove/internal/dateutil"
	"github.com/julianstephens/groove/internal/engine"
	"github.com/julianstephens/groove/internal/storage"
)

func TestNewModelSurfacesStoreErrors(t *testing.T) {
	clock := dateutil.Fixed(time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC))

	t.Run("unloaded store reports instead of rendering empty", func(t *testing.T) {
		store := storage.NewJSONStore(filepath.Join(t.TempDir(), "groove.json"))
		m := NewModel(store, engine.New(store, clock))

		if m.errMsg == "" {
			t.Fatal("errMsg empty for a store that cannot be read")
		}
		if !strings.Contains(m.errMsg, "store unavailable") {
			t.Errorf("errMsg = %q, want it to mention store unavailable", m.errMsg)
		}
	})

	t.Run("healthy store starts clean", func(t *testing.T) {
		store := storage.NewJSONStore(filepath.Join(t.TempDir(), "groove.json"))
		if err := store.Init(); err != nil {
			t.Fatalf("failed to init store: %v", err)
		}

		m := NewModel(store, engine.New(store, clock))
		if m.errMsg != "" {
			t.Errorf("errMsg = %q, want empty", m.errMsg)
		}
	})
}
