package tui

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tileshift/internal/core"
	"github.com/vovakirdan/tileshift/internal/games/tileshift"
)

// useSettings swaps the game settings for the duration of a test.
func useSettings(t *testing.T, s tileshift.Settings) {
	t.Helper()
	prev := tileshift.CurrentSettings()
	tileshift.Configure(s)
	t.Cleanup(func() { tileshift.Configure(prev) })
}

func TestProgressKey(t *testing.T) {
	tests := []struct {
		game, player, want string
	}{
		{"tileshift", "", "tileshift"},
		{"tileshift", "alice", "tileshift@alice"},
		{"tileshift_random", "bob", "tileshift_random@bob"},
	}

	for _, tc := range tests {
		if got := progressKey(tc.game, tc.player); got != tc.want {
			t.Errorf("progressKey(%q, %q) = %q, want %q", tc.game, tc.player, got, tc.want)
		}
	}
}

func TestResolveHostKeyPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := resolveHostKeyPath("")
	if err != nil {
		t.Fatalf("resolveHostKeyPath() error: %v", err)
	}
	if want := filepath.Join(home, ".tileshift", "host_key"); got != want {
		t.Errorf("default path = %q, want %q", got, want)
	}
	if _, err := os.Stat(filepath.Dir(got)); err != nil {
		t.Errorf("key directory not created: %v", err)
	}

	explicit := filepath.Join(t.TempDir(), "keys", "server_key")
	got, err = resolveHostKeyPath(explicit)
	if err != nil {
		t.Fatalf("resolveHostKeyPath() error: %v", err)
	}
	if got != explicit {
		t.Errorf("explicit path = %q, want %q", got, explicit)
	}
}

func TestNewSSHServerRejectsBrokenCampaign(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	useSettings(t, tileshift.Settings{LevelsDir: t.TempDir()})

	cfg := DefaultSSHServerConfig()
	cfg.DBPath = filepath.Join(t.TempDir(), "scores.db")
	cfg.Address = "127.0.0.1:0"

	if srv, err := NewSSHServer(cfg); err == nil {
		srv.Shutdown()
		t.Fatal("server started with an empty level directory")
	}
}

func TestNewPlayerGameContinuesCampaign(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	useSettings(t, tileshift.Settings{})
	store := openTestStore(t)

	if err := store.SaveProgress(progressKey(tileshift.IDCampaign, "alice"), 2); err != nil {
		t.Fatalf("SaveProgress: %v", err)
	}

	rc := core.RuntimeConfig{ScreenW: 100, ScreenH: 30, TickRate: 30, Seed: 1}
	tests := []struct {
		player string
		want   int
	}{
		{"alice", 3},
		{"bob", 1},
	}

	for _, tc := range tests {
		t.Run(tc.player, func(t *testing.T) {
			game, err := newPlayerGame(tileshift.IDCampaign, store, tc.player)
			if err != nil {
				t.Fatalf("newPlayerGame() error: %v", err)
			}
			game.Reset(rc)

			ts, ok := game.(*tileshift.Game)
			if !ok {
				t.Fatalf("game is %T", game)
			}
			if err := ts.Err(); err != nil {
				t.Fatalf("Reset: %v", err)
			}
			if got := ts.Level().Number; got != tc.want {
				t.Errorf("start level = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestNewPlayerGameRandomMode(t *testing.T) {
	game, err := newPlayerGame(tileshift.IDRandom, openTestStore(t), "alice")
	if err != nil {
		t.Fatalf("newPlayerGame() error: %v", err)
	}
	if game.ID() != tileshift.IDRandom {
		t.Errorf("ID() = %q, want %q", game.ID(), tileshift.IDRandom)
	}
}
