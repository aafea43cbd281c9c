package config

import (
	"testing"
	"time"
)

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}
}

func TestLoad_UptraceDSNFromOTLPHeaders(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", `uptrace-dsn="https://token@api.uptrace.dev?grpc=4317"`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.UptraceDSN != "https://token@api.uptrace.dev?grpc=4317" {
		t.Fatalf("unexpected uptrace dsn: %q", cfg.UptraceDSN)
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("STORE_DRIVER", "")
	t.Setenv("LEAGUE_TEAMS", "")
	t.Setenv("APP_WRITE_TIMEOUT", "")
	t.Setenv("FEED_WORKERS", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.StoreDriver != StoreMemory {
		t.Fatalf("expected memory store by default, got %q", cfg.StoreDriver)
	}
	want := []string{"MANCHESTER CITY", "REAL MADRID", "BAYER MUNICH"}
	if len(cfg.LeagueTeams) != len(want) {
		t.Fatalf("unexpected default teams: %+v", cfg.LeagueTeams)
	}
	for i := range want {
		if cfg.LeagueTeams[i] != want[i] {
			t.Fatalf("unexpected team at %d: %q", i, cfg.LeagueTeams[i])
		}
	}
	if cfg.WriteTimeout != 0 {
		t.Fatalf("expected write timeout disabled by default, got %s", cfg.WriteTimeout)
	}
	if cfg.FeedWorkers != 8 {
		t.Fatalf("unexpected feed workers: %d", cfg.FeedWorkers)
	}
	if !cfg.StoreCircuit.Enabled || cfg.StoreCircuit.FailureThreshold != 3 || cfg.StoreCircuit.HalfOpenMaxReq != 1 {
		t.Fatalf("unexpected store circuit defaults: %+v", cfg.StoreCircuit)
	}
}

func TestLoad_StoreDriverValidation(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")

	t.Run("unknown driver", func(t *testing.T) {
		t.Setenv("STORE_DRIVER", "mongo")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for unknown STORE_DRIVER")
		}
	})

	t.Run("case insensitive", func(t *testing.T) {
		t.Setenv("STORE_DRIVER", " SQLite ")
		t.Setenv("SQLITE_PATH", "/tmp/league.db")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.StoreDriver != StoreSQLite {
			t.Fatalf("unexpected driver: %q", cfg.StoreDriver)
		}
		if cfg.SQLitePath != "/tmp/league.db" {
			t.Fatalf("unexpected sqlite path: %q", cfg.SQLitePath)
		}
	})
}

func TestLoad_LeagueTeams(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")

	t.Run("needs two teams", func(t *testing.T) {
		t.Setenv("LEAGUE_TEAMS", "ONLY ONE")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for a single team")
		}
	})

	t.Run("comma separated parsing", func(t *testing.T) {
		t.Setenv("LEAGUE_TEAMS", " ARSENAL , CHELSEA,,LIVERPOOL ")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if len(cfg.LeagueTeams) != 3 || cfg.LeagueTeams[1] != "CHELSEA" {
			t.Fatalf("unexpected teams: %+v", cfg.LeagueTeams)
		}
	})
}

func TestLoad_ProdRequiresAdminHash(t *testing.T) {
	t.Setenv("APP_ENV", EnvProd)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("ADMIN_PASSWORD_HASH", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error in prod without ADMIN_PASSWORD_HASH")
	}

	t.Setenv("ADMIN_PASSWORD_HASH", "$2a$10$abcdefghijklmnopqrstuu")
	if _, err := Load(); err != nil {
		t.Fatalf("load config: %v", err)
	}
}

func TestLoad_StoreCircuitParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")

	t.Run("valid values", func(t *testing.T) {
		t.Setenv("STORE_CIRCUIT_ENABLED", "false")
		t.Setenv("STORE_CIRCUIT_FAILURE_COUNT", "6")
		t.Setenv("STORE_CIRCUIT_OPEN_TIMEOUT", "30s")
		t.Setenv("STORE_CIRCUIT_HALF_OPEN_MAX_REQ", "2")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.StoreCircuit.Enabled {
			t.Fatalf("expected store circuit disabled")
		}
		if cfg.StoreCircuit.FailureThreshold != 6 || cfg.StoreCircuit.OpenTimeout != 30*time.Second || cfg.StoreCircuit.HalfOpenMaxReq != 2 {
			t.Fatalf("unexpected store circuit: %+v", cfg.StoreCircuit)
		}
	})

	t.Run("failure count must be positive", func(t *testing.T) {
		t.Setenv("STORE_CIRCUIT_FAILURE_COUNT", "0")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for STORE_CIRCUIT_FAILURE_COUNT=0")
		}
	})
}

func TestLoad_PprofDefaultsAddrWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("PPROF_ENABLED", "true")
	t.Setenv("PPROF_ADDR", "  ")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.PprofAddr != ":6060" {
		t.Fatalf("expected default pprof addr :6060, got %q", cfg.PprofAddr)
	}
}

func TestLoad_PyroscopeRequiresServerAddressWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("PYROSCOPE_ENABLED", "true")
	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when PYROSCOPE_ENABLED=true without PYROSCOPE_SERVER_ADDRESS")
	}
}

func TestLoad_PyroscopeAppNameDefaultsToServiceName(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("APP_SERVICE_NAME", "league-ledger-api-test")
	t.Setenv("PYROSCOPE_ENABLED", "true")
	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "http://localhost:4040")
	t.Setenv("PYROSCOPE_APP_NAME", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.PyroscopeAppName != "league-ledger-api-test" {
		t.Fatalf("unexpected pyroscope app name: %q", cfg.PyroscopeAppName)
	}
}

func TestLoad_CacheConfigParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")

	t.Run("defaults", func(t *testing.T) {
		t.Setenv("CACHE_ENABLED", "")
		t.Setenv("CACHE_TTL", "")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if !cfg.CacheEnabled {
			t.Fatalf("expected cache enabled by default")
		}
		if cfg.CacheTTL != 60*time.Second {
			t.Fatalf("unexpected default cache ttl: %s", cfg.CacheTTL)
		}
	})

	t.Run("invalid ttl", func(t *testing.T) {
		t.Setenv("CACHE_TTL", "bad")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for invalid CACHE_TTL")
		}
	})
}

func TestLoad_DBFlags(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")

	t.Run("invalid auto migrate flag", func(t *testing.T) {
		t.Setenv("DB_AUTO_MIGRATE", "not-bool")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for invalid DB_AUTO_MIGRATE")
		}
	})

	t.Run("application name defaults to the service", func(t *testing.T) {
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.DBApplicationName != "league-ledger" {
			t.Fatalf("unexpected application name %q", cfg.DBApplicationName)
		}
	})

	t.Run("listen can be disabled", func(t *testing.T) {
		t.Setenv("DB_LISTEN_ENABLED", "false")
		t.Setenv("DB_AUTO_MIGRATE", "false")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.DBListenEnabled || cfg.DBAutoMigrate {
			t.Fatalf("expected listen and auto migrate disabled")
		}
	})
}
