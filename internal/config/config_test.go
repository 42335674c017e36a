package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_DefaultsWhenNoFile(t *testing.T) {
	v := NewViper("")
	v.AddConfigPath(t.TempDir())
	cfg, err := Load(v)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	def := Defaults()
	if cfg.Theme != def.Theme || cfg.Store.Driver != def.Store.Driver || cfg.Server.Addr != def.Server.Addr {
		t.Fatalf("cfg = %+v, want defaults %+v", cfg, def)
	}
}

func TestLoad_FileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "daylist.yaml")
	body := []byte(`theme: neon
store:
  driver: sqlite
  path: /tmp/daylist.db
greeting:
  timezone: Europe/Paris
`)
	if err := os.WriteFile(path, body, 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("DAYLIST_SERVER_ADDR", ":9999")

	cfg, err := Load(NewViper(path))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Theme != "neon" {
		t.Errorf("Theme = %q, want neon", cfg.Theme)
	}
	if cfg.Store.Driver != "sqlite" || cfg.Store.Path != "/tmp/daylist.db" {
		t.Errorf("Store = %+v", cfg.Store)
	}
	if cfg.Greeting.Timezone != "Europe/Paris" {
		t.Errorf("Timezone = %q", cfg.Greeting.Timezone)
	}
	if cfg.Server.Addr != ":9999" {
		t.Errorf("Server.Addr = %q, want env override", cfg.Server.Addr)
	}
	if cfg.File != path {
		t.Errorf("File = %q, want %q", cfg.File, path)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"bad driver", func(c *Config) { c.Store.Driver = "neo4j" }, true},
		{"bad theme", func(c *Config) { c.Theme = "pastel" }, true},
		{"empty addr", func(c *Config) { c.Server.Addr = " " }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(&cfg)
			if err := cfg.Validate(); (err != nil) != tt.wantErr {
				t.Fatalf("Validate() err = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
