package main

import "testing"

func TestParseSteps(t *testing.T) {
	if got, err := parseSteps(nil); err != nil || got != 1 {
		t.Fatalf("parseSteps(nil)=%d,%v want 1", got, err)
	}
	if got, err := parseSteps([]string{" 3 "}); err != nil || got != 3 {
		t.Fatalf("parseSteps(3)=%d,%v want 3", got, err)
	}
	for _, bad := range []string{"0", "-2", "x"} {
		if _, err := parseSteps([]string{bad}); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}

func TestParseVersion(t *testing.T) {
	if got, err := parseVersion("1760000001"); err != nil || got != 1760000001 {
		t.Fatalf("parseVersion=%d,%v", got, err)
	}
	if _, err := parseVersion("-1"); err == nil {
		t.Fatalf("expected error for negative version")
	}
}

func TestNormalizeDBURL(t *testing.T) {
	t.Setenv("DB_APPLICATION_NAME", "")
	got := normalizeDBURL("postgres://u:p@localhost:5432/league_ledger?sslmode=disable")
	want := "postgres://u:p@localhost:5432/league_ledger?application_name=league-ledger-migration&sslmode=disable"
	if got != want {
		t.Fatalf("unexpected url %q", got)
	}

	in := "postgres://u:p@localhost:5432/league_ledger?application_name=ops"
	if got := normalizeDBURL(in); got != in {
		t.Fatalf("expected url unchanged, got %q", got)
	}

	dsn := "host=localhost dbname=league_ledger"
	if got := normalizeDBURL(dsn); got != dsn {
		t.Fatalf("expected dsn unchanged, got %q", got)
	}
}

func TestEnvOr(t *testing.T) {
	t.Setenv("LEAGUE_LEDGER_TEST_KEY", "  ")
	if got := envOr("LEAGUE_LEDGER_TEST_KEY", "fallback"); got != "fallback" {
		t.Fatalf("unexpected value %q", got)
	}
	t.Setenv("LEAGUE_LEDGER_TEST_KEY", "sqlite")
	if got := envOr("LEAGUE_LEDGER_TEST_KEY", "fallback"); got != "sqlite" {
		t.Fatalf("unexpected value %q", got)
	}
}
