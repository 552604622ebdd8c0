package migrate

import (
	"strings"
	"testing"
)

func TestLoad(t *testing.T) {
	all, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if len(all) == 0 {
		t.Fatal("no migrations loaded")
	}

	for i := 1; i < len(all); i++ {
		if all[i].Version <= all[i-1].Version {
			t.Errorf("migrations not sorted: %d after %d", all[i].Version, all[i-1].Version)
		}
	}

	first := all[0]
	if first.Version != 1 || first.Name != "init" {
		t.Errorf("first migration = %d %q", first.Version, first.Name)
	}
	if !strings.Contains(first.UpSQL, "CREATE TABLE") {
		t.Error("init up migration has no CREATE TABLE")
	}
	if !strings.Contains(first.DownSQL, "DROP TABLE") {
		t.Error("init down migration has no DROP TABLE")
	}
}
