package database

import (
	"path/filepath"
	"testing"
)

func TestConfig_NewSQLite(t *testing.T) {
	cfg := &Config{
		URL:    filepath.Join(t.TempDir(), "test.db"),
		Driver: DriverSQLite,
	}
	db, err := cfg.New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer Close(db)

	var one int
	if err := db.Raw("SELECT 1").Scan(&one).Error; err != nil || one != 1 {
		t.Fatalf("SELECT 1 = %d, %v", one, err)
	}
}

func TestConfig_NewErrors(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{name: "empty url", cfg: Config{Driver: DriverSQLite}},
		{name: "unknown driver", cfg: Config{URL: "x", Driver: "oracle"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.cfg.New(); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}
