package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Addr != ":8080" {
		t.Fatalf("addr = %q, want default", cfg.Server.Addr)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
server:
  addr: ":9090"
  mode: release
mysql:
  dsn: "u:p@tcp(db:3306)/hive"
kafka:
  enabled: true
  brokers: ["k1:9092"]
  topic: events
`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Addr != ":9090" || cfg.Server.Mode != "release" {
		t.Fatalf("server = %+v", cfg.Server)
	}
	if cfg.MySQL.DSN != "u:p@tcp(db:3306)/hive" {
		t.Fatalf("dsn = %q", cfg.MySQL.DSN)
	}
	if !cfg.Kafka.Enabled || len(cfg.Kafka.Brokers) != 1 || cfg.Kafka.Topic != "events" {
		t.Fatalf("kafka = %+v", cfg.Kafka)
	}
}
