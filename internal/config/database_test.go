package config

import (
	"strings"
	"testing"
)

func TestPostgresDSN(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		want    string
		wantSub string
	}{
		{
			name:    "adds prepared binary flag",
			cfg:     Config{DBURL: "postgres://u:p@localhost:5432/fantasy_stats?sslmode=disable", DBDisablePreparedBinary: true},
			wantSub: "disable_prepared_binary_result=yes",
		},
		{
			name: "keeps explicit flag",
			cfg:  Config{DBURL: "postgres://u:p@localhost:5432/fantasy_stats?disable_prepared_binary_result=no", DBDisablePreparedBinary: true},
			want: "postgres://u:p@localhost:5432/fantasy_stats?disable_prepared_binary_result=no",
		},
		{
			name: "flag disabled",
			cfg:  Config{DBURL: " postgres://u:p@localhost:5432/fantasy_stats "},
			want: "postgres://u:p@localhost:5432/fantasy_stats",
		},
		{
			name: "key value dsn untouched",
			cfg:  Config{DBURL: "host=localhost dbname=fantasy_stats", DBDisablePreparedBinary: true},
			want: "host=localhost dbname=fantasy_stats",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.cfg.PostgresDSN()
			if tt.wantSub != "" {
				if !strings.Contains(got, tt.wantSub) {
					t.Fatalf("PostgresDSN()=%q, want it to contain %q", got, tt.wantSub)
				}
				return
			}
			if got != tt.want {
				t.Fatalf("PostgresDSN()=%q want=%q", got, tt.want)
			}
		})
	}
}

func TestDatabaseName(t *testing.T) {
	for _, dsn := range []string{
		"postgres://u:p@localhost:5432/fantasy_stats?sslmode=disable",
		"host=localhost user=postgres dbname='fantasy_stats' sslmode=disable",
	} {
		if got := (Config{DBURL: dsn}).DatabaseName(); got != "fantasy_stats" {
			t.Fatalf("DatabaseName(%q)=%q", dsn, got)
		}
	}
	if got := (Config{DBURL: "postgres://localhost:5432"}).DatabaseName(); got != "" {
		t.Fatalf("expected empty name, got %q", got)
	}
}
