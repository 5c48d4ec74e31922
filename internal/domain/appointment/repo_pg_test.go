package appointment

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func migrationColumns(t *testing.T, table string) map[string]bool {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("..", "..", "..", "migrations", "001_core.sql"))
	if err != nil {
		t.Fatalf("read migration: %v", err)
	}

	marker := "CREATE TABLE IF NOT EXISTS " + table + " ("
	start := strings.Index(string(data), marker)
	if start < 0 {
		t.Fatalf("migration does not create table %q", table)
	}
	body := string(data)[start+len(marker):]
	end := strings.Index(body, ");")
	if end < 0 {
		t.Fatalf("unterminated CREATE TABLE block for %q", table)
	}

	cols := make(map[string]bool)
	for _, line := range strings.Split(body[:end], "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 || strings.EqualFold(fields[0], "CHECK") {
			continue
		}
		cols[fields[0]] = true
	}
	return cols
}

func TestRepoColumnsMatchMigration(t *testing.T) {
	cols := migrationColumns(t, appointmentTable)
	for _, c := range strings.Split(appointmentCols, ", ") {
		if !cols[c] {
			t.Errorf("repo column %q not in %s schema", c, appointmentTable)
		}
	}
}
