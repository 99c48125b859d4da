package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Missing(t *testing.T) {
	t.Parallel()

	config, err := Load(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if config != Default() {
		t.Errorf("Load() = %+v, want defaults %+v", config, Default())
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := "roster: names.txt\nshuffle: true\nseed: 143\ncolor: false\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	config, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	want := Config{
		Roster:  filepath.Join(dir, "names.txt"),
		Shuffle: true,
		Seed:    143,
		Color:   false,
	}
	if config != want {
		t.Errorf("Load() = %+v, want %+v", config, want)
	}
}

func TestLoad_Partial(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("roster: /srv/names.txt\n"), 0644); err != nil {
		t.Fatal(err)
	}

	config, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if config.Roster != "/srv/names.txt" {
		t.Errorf("Roster = %q, want /srv/names.txt", config.Roster)
	}
	if !config.Color {
		t.Error("unset color field did not keep its default")
	}
}

func TestLoad_Malformed(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("seed: [not a number\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load of malformed YAML succeeded")
	}
}

func TestSave(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	want := Config{Roster: "/srv/names.txt", Shuffle: true, Seed: 7, Color: true}

	if err := Save(path, want); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != want {
		t.Errorf("Load(Save(%+v)) = %+v", want, got)
	}
}
