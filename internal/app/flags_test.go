package app

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"conway/pkg/core"
)

func TestBindParsesFlags(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("life", flag.ContinueOnError)
	cfg.Bind(fs)
	err := fs.Parse([]string{"-pattern", "glider", "-w", "30", "-h", "15", "-seed", "5", "-max-generations", "0"})
	if err != nil {
		t.Fatal(err)
	}
	rc, err := cfg.RunnerConfig()
	if err != nil {
		t.Fatal(err)
	}
	if rc.Pattern != "glider" || rc.Width != 30 || rc.Height != 15 || rc.Seed != 5 || rc.MaxGenerations != 0 {
		t.Fatalf("unexpected runner config %+v", rc)
	}
	if rc.Density != 0.2 || rc.History != 10 {
		t.Fatalf("defaults lost: density=%v history=%d", rc.Density, rc.History)
	}
}

func TestSaveLoadGrid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grid.txt")
	g, _ := core.NewGrid(7, 3)
	g.Set(6, 2, true)
	g.Set(0, 1, true)
	if err := SaveGrid(path, g); err != nil {
		t.Fatal(err)
	}

	cfg := NewConfig()
	cfg.Load = path
	rc, err := cfg.RunnerConfig()
	if err != nil {
		t.Fatal(err)
	}
	if !rc.Initial.Equal(g) {
		t.Fatal("loaded grid differs from saved grid")
	}
}

func TestLoadGridMissingFile(t *testing.T) {
	cfg := NewConfig()
	cfg.Load = filepath.Join(t.TempDir(), "missing.txt")
	if _, err := cfg.RunnerConfig(); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadGridMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.txt")
	if err := os.WriteFile(path, []byte("2 2\n0x\n00\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadGrid(path); !errors.Is(err, core.ErrMalformedGrid) {
		t.Fatalf("err=%v, want ErrMalformedGrid", err)
	}
}
