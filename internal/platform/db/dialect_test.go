package db

import "testing"

func TestPlaceholders(t *testing.T) {
	if got := SQLite.Placeholders(1, 3); got != "?,?,?" {
		t.Fatalf("sqlite placeholders = %q", got)
	}
	if got := Postgres.Placeholders(2, 3); got != "$2,$3,$4" {
		t.Fatalf("postgres placeholders = %q", got)
	}
	if got := Postgres.Placeholders(1, 0); got != "" {
		t.Fatalf("empty placeholders = %q", got)
	}
}

func TestParseDialect(t *testing.T) {
	for in, want := range map[string]Dialect{"sqlite": SQLite, " Postgres ": Postgres, "pgx": Postgres} {
		got, err := ParseDialect(in)
		if err != nil || got != want {
			t.Errorf("ParseDialect(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseDialect("mysql"); err == nil {
		t.Error("mysql accepted")
	}
}
