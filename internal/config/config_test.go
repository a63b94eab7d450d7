package config

import (
	"os"
	"strings"
	"testing"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		config      Config
		wantErr     bool
		errorString string
	}{
		{
			name: "valid sqlite backend config",
			config: Config{
				DataBackend:   "sqlite",
				SQLiteDBPath:  "./test.db",
				LogLevel:      "info",
				MonthlyIncome: 5000,
			},
			wantErr: false,
		},
		{
			name: "valid memory backend config",
			config: Config{
				DataBackend:   "memory",
				LogLevel:      "debug",
				MonthlyIncome: 5000,
			},
			wantErr: false,
		},
		{
			name: "invalid data backend",
			config: Config{
				DataBackend: "sheets",
				LogLevel:    "info",
			},
			wantErr:     true,
			errorString: "invalid data backend 'sheets': must be one of [memory sqlite]",
		},
		{
			name: "sqlite backend missing database path",
			config: Config{
				DataBackend: "sqlite",
				LogLevel:    "info",
			},
			wantErr:     true,
			errorString: "SQLite database path cannot be empty",
		},
		{
			name: "invalid log level",
			config: Config{
				DataBackend: "memory",
				LogLevel:    "verbose",
			},
			wantErr:     true,
			errorString: "invalid log level 'verbose'",
		},
		{
			name: "negative income",
			config: Config{
				DataBackend:   "memory",
				LogLevel:      "info",
				MonthlyIncome: -1,
			},
			wantErr:     true,
			errorString: "invalid monthly income",
		},
		{
			name: "negative debt",
			config: Config{
				DataBackend: "memory",
				LogLevel:    "info",
				TotalDebt:   -50,
			},
			wantErr:     true,
			errorString: "invalid total debt",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				if err == nil {
					t.Fatal("Validate() expected error, got nil")
				}
				if !strings.Contains(err.Error(), tt.errorString) {
					t.Errorf("Validate() error = %v, want substring %q", err, tt.errorString)
				}
				return
			}
			if err != nil {
				t.Errorf("Validate() unexpected error: %v", err)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	originalVars := map[string]string{
		"DATA_BACKEND":   os.Getenv("DATA_BACKEND"),
		"SQLITE_DB_PATH": os.Getenv("SQLITE_DB_PATH"),
		"LOG_LEVEL":      os.Getenv("LOG_LEVEL"),
		"MONTHLY_INCOME": os.Getenv("MONTHLY_INCOME"),
		"TOTAL_DEBT":     os.Getenv("TOTAL_DEBT"),
	}
	for key := range originalVars {
		os.Unsetenv(key)
	}
	defer func() {
		for key, value := range originalVars {
			if value != "" {
				os.Setenv(key, value)
			} else {
				os.Unsetenv(key)
			}
		}
	}()

	t.Run("default values", func(t *testing.T) {
		cfg := Load()

		if cfg.DataBackend != "sqlite" {
			t.Errorf("Load() DataBackend = %v, want sqlite", cfg.DataBackend)
		}
		if cfg.SQLiteDBPath != "./data/fintrack.db" {
			t.Errorf("Load() SQLiteDBPath = %v, want ./data/fintrack.db", cfg.SQLiteDBPath)
		}
		if cfg.LogLevel != "info" {
			t.Errorf("Load() LogLevel = %v, want info", cfg.LogLevel)
		}
		if cfg.MonthlyIncome != 5000 {
			t.Errorf("Load() MonthlyIncome = %v, want 5000", cfg.MonthlyIncome)
		}
		if cfg.TotalDebt != 0 {
			t.Errorf("Load() TotalDebt = %v, want 0", cfg.TotalDebt)
		}
	})

	t.Run("environment variables", func(t *testing.T) {
		os.Setenv("DATA_BACKEND", "memory")
		os.Setenv("SQLITE_DB_PATH", "/tmp/fintrack-test.db")
		os.Setenv("LOG_LEVEL", "debug")
		os.Setenv("MONTHLY_INCOME", "6200.50")
		os.Setenv("TOTAL_DEBT", "1200")

		cfg := Load()

		if cfg.DataBackend != "memory" {
			t.Errorf("Load() DataBackend = %v, want memory", cfg.DataBackend)
		}
		if cfg.SQLiteDBPath != "/tmp/fintrack-test.db" {
			t.Errorf("Load() SQLiteDBPath = %v, want /tmp/fintrack-test.db", cfg.SQLiteDBPath)
		}
		if cfg.LogLevel != "debug" {
			t.Errorf("Load() LogLevel = %v, want debug", cfg.LogLevel)
		}
		if cfg.MonthlyIncome != 6200.50 {
			t.Errorf("Load() MonthlyIncome = %v, want 6200.50", cfg.MonthlyIncome)
		}
		if cfg.TotalDebt != 1200 {
			t.Errorf("Load() TotalDebt = %v, want 1200", cfg.TotalDebt)
		}
	})

	t.Run("invalid numeric values use defaults", func(t *testing.T) {
		os.Setenv("MONTHLY_INCOME", "not-a-number")
		os.Setenv("TOTAL_DEBT", "also-bad")

		cfg := Load()

		if cfg.MonthlyIncome != 5000 {
			t.Errorf("Load() MonthlyIncome = %v, want 5000 (default for invalid input)", cfg.MonthlyIncome)
		}
		if cfg.TotalDebt != 0 {
			t.Errorf("Load() TotalDebt = %v, want 0 (default for invalid input)", cfg.TotalDebt)
		}
	})
}
