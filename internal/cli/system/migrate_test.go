package system

import (
	"strings"
	"testing"
)

func TestMigrateCmd_UpToDate(t *testing.T) {
	ctx, _, out := setupTestDoctorDB(t)

	if err := (&MigrateCmd{}).Run(ctx); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	if !strings.Contains(out.String(), "Database is up to date") {
		t.Errorf("unexpected output: %s", out.String())
	}
}

func TestMigrateCmd_AppliesPending(t *testing.T) {
	ctx, store, out := setupTestDoctorDB(t)

	db := store.GetDB()
	if _, err := db.Exec("DROP TABLE tasks"); err != nil {
		t.Fatal(err)
	}
	if _, err := db.Exec("UPDATE schema_version SET version = 1"); err != nil {
		t.Fatal(err)
	}

	if err := (&MigrateCmd{Status: true}).Run(ctx); err != nil {
		t.Fatalf("migrate --status failed: %v", err)
	}
	if !strings.Contains(out.String(), "pending: 002") {
		t.Errorf("pending migration not listed: %s", out.String())
	}

	out.Reset()
	if err := (&MigrateCmd{}).Run(ctx); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	if !strings.Contains(out.String(), "Successfully applied 1 migration(s)") {
		t.Errorf("unexpected output: %s", out.String())
	}
	if _, err := store.GetAllTasks(); err != nil {
		t.Errorf("tasks table missing after migrate: %v", err)
	}
}
