package config

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleYAML = `
telegram:
  token: "123:abc"
  admin_id: 99
  run_mode: polling
database:
  host: db
  port: "5432"
  user: dongi
  name: dongi
bot:
  default_people:
    - "Ali"
    - "Reza"
`

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(sampleYAML), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Telegram.Token != "123:abc" {
		t.Fatalf("token = %q", cfg.Telegram.Token)
	}
	if cfg.Telegram.AdminID != 99 {
		t.Fatalf("admin id = %d", cfg.Telegram.AdminID)
	}
	// "polling" is accepted as an alias and normalized
	if cfg.Telegram.RunMode != "longpoll" {
		t.Fatalf("run mode = %q, want longpoll", cfg.Telegram.RunMode)
	}
	if cfg.Database.Host != "db" {
		t.Fatalf("db host = %q", cfg.Database.Host)
	}
	if len(cfg.Bot.DefaultPeople) != 2 || cfg.Bot.DefaultPeople[0] != "Ali" {
		t.Fatalf("default people = %v", cfg.Bot.DefaultPeople)
	}
	if cc := cfg.CoreConfig(); cc == nil || cc.Telegram.Token != "123:abc" {
		t.Fatal("CoreConfig must expose the embedded core settings")
	}
}

func TestLoadRejectsMissingToken(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("telegram:\n  run_mode: longpoll\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for missing token")
	}
}
