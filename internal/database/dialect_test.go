package database

import (
	"strings"
	"testing"
)

func TestDialectSQLite(t *testing.T) {
	dialect := NewSQLiteDialect()

	t.Run("DriverName", func(t *testing.T) {
		if got := dialect.DriverName(); got != "sqlite3" {
			t.Errorf("DriverName() = %v, want sqlite3", got)
		}
	})

	t.Run("RewriteQuery leaves placeholders alone", func(t *testing.T) {
		query := "SELECT payload FROM state_records WHERE name = ?"
		if got := dialect.RewriteQuery(query); got != query {
			t.Errorf("RewriteQuery() = %v, want unchanged", got)
		}
	})

	t.Run("MigrationsSubdir", func(t *testing.T) {
		if got := dialect.MigrationsSubdir(); got != "sqlite" {
			t.Errorf("MigrationsSubdir() = %v, want sqlite", got)
		}
	})

	t.Run("UpsertStateRecord uses ON CONFLICT", func(t *testing.T) {
		if !strings.Contains(dialect.UpsertStateRecord(), "ON CONFLICT(name)") {
			t.Error("sqlite upsert should use ON CONFLICT(name)")
		}
	})
}

func TestDialectPostgres(t *testing.T) {
	dialect := NewPostgresDialect()

	t.Run("DriverName", func(t *testing.T) {
		if got := dialect.DriverName(); got != "postgres" {
			t.Errorf("DriverName() = %v, want postgres", got)
		}
	})

	t.Run("RewriteQuery numbers placeholders", func(t *testing.T) {
		query := "INSERT INTO state_records (name, payload) VALUES (?, ?)"
		want := "INSERT INTO state_records (name, payload) VALUES ($1, $2)"
		if got := dialect.RewriteQuery(query); got != want {
			t.Errorf("RewriteQuery() = %v, want %v", got, want)
		}
	})

	t.Run("MigrationsSubdir", func(t *testing.T) {
		if got := dialect.MigrationsSubdir(); got != "postgres" {
			t.Errorf("MigrationsSubdir() = %v, want postgres", got)
		}
	})
}

func TestDialectMySQL(t *testing.T) {
	dialect := NewMySQLDialect()

	t.Run("DriverName", func(t *testing.T) {
		if got := dialect.DriverName(); got != "mysql" {
			t.Errorf("DriverName() = %v, want mysql", got)
		}
	})

	t.Run("RewriteQuery leaves placeholders alone", func(t *testing.T) {
		query := "SELECT payload FROM state_records WHERE name = ?"
		if got := dialect.RewriteQuery(query); got != query {
			t.Errorf("RewriteQuery() = %v, want unchanged", got)
		}
	})

	t.Run("UpsertStateRecord uses ON DUPLICATE KEY", func(t *testing.T) {
		if !strings.Contains(dialect.UpsertStateRecord(), "ON DUPLICATE KEY UPDATE") {
			t.Error("mysql upsert should use ON DUPLICATE KEY UPDATE")
		}
	})
}

func TestRewritePlaceholdersToNumbered(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  string
	}{
		{
			name:  "no placeholders",
			query: "SELECT 1",
			want:  "SELECT 1",
		},
		{
			name:  "single placeholder",
			query: "WHERE name = ?",
			want:  "WHERE name = $1",
		},
		{
			name:  "multiple placeholders",
			query: "VALUES (?, ?, ?, ?)",
			want:  "VALUES ($1, $2, $3, $4)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := rewritePlaceholdersToNumbered(tt.query); got != tt.want {
				t.Errorf("rewritePlaceholdersToNumbered() = %v, want %v", got, tt.want)
			}
		})
	}
}
