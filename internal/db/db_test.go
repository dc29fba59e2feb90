package db

import (
	"os"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"newsroom/internal/config"
	"newsroom/internal/user"
)

// Dummy DSN for test (won't actually connect, just checks error path)
func TestInit_InvalidDSN(t *testing.T) {
	cfg := &config.Config{}
	cfg.Postgres.DSN = "invalid-dsn-for-testing"
	err := Init(cfg)
	if err == nil {
		t.Errorf("expected error for invalid DSN, got nil")
	}
}

func TestSeedReferenceData_Idempotent(t *testing.T) {
	dbConn, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	if err := Migrate(dbConn); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	if err := SeedReferenceData(dbConn); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	// Seeding twice must not duplicate reference rows
	if err := SeedReferenceData(dbConn); err != nil {
		t.Fatalf("second seed failed: %v", err)
	}

	var roleCount int64
	dbConn.Model(&user.Role{}).Count(&roleCount)
	if roleCount != 3 {
		t.Errorf("expected 3 roles, got %d", roleCount)
	}

	admin, err := RoleByRank(dbConn, user.RankAdmin)
	if err != nil {
		t.Fatalf("role lookup failed: %v", err)
	}
	if admin.Name != "Admin" {
		t.Errorf("expected Admin at rank 1, got %s", admin.Name)
	}
}

// You can only run actual DB tests if you have a valid Postgres test instance
// This test is optional and skipped unless TEST_DB_DSN is set
func TestInit_ValidDSN_AndMigrates(t *testing.T) {
	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		t.Skip("set TEST_DB_DSN to run real DB test")
	}
	cfg := &config.Config{}
	cfg.Postgres.DSN = dsn
	err := Init(cfg)
	if err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if DB == nil {
		t.Fatalf("DB not set")
	}
}
