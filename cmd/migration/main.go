package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/riskibarqy/fantasy-stats/internal/config"
	"github.com/riskibarqy/fantasy-stats/internal/platform/logging"
)

const usage = `usage: migration <command> [arg]

commands:
  up               apply every pending migration
  down [steps]     roll back steps migrations (default 1)
  version          print the current schema version
  force <version>  mark the schema as version without running it
  goto <version>   migrate up or down to version
`

var errUsage = errors.New("usage")

type command func(m *migrate.Migrate, arg string, out io.Writer, logger *logging.Logger) error

var commands = map[string]command{
	"up":      migrateUp,
	"down":    migrateDown,
	"version": printVersion,
	"force":   forceVersion,
	"goto":    gotoVersion,
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger := logging.NewJSON(cfg.LogLevel).Named("migration")
	defer func() { _ = logger.Sync() }()

	if err := run(os.Args[1:], cfg, os.Stdout, logger); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprint(os.Stderr, usage)
			os.Exit(2)
		}
		logger.Error("migration failed", "args", os.Args[1:], "error", err)
		os.Exit(1)
	}
}

func run(args []string, cfg config.Config, out io.Writer, logger *logging.Logger) error {
	if len(args) == 0 {
		return errUsage
	}
	cmd, ok := commands[strings.ToLower(strings.TrimSpace(args[0]))]
	if !ok {
		return fmt.Errorf("%w: unknown command %q", errUsage, args[0])
	}
	arg := ""
	if len(args) > 1 {
		arg = strings.TrimSpace(args[1])
	}

	dsn := cfg.PostgresDSN()
	if dsn == "" {
		return errors.New("DB_URL is required")
	}
	dir, err := migrationsDir(os.Getenv("MIGRATIONS_DIR"))
	if err != nil {
		return err
	}

	m, err := migrate.New("file://"+filepath.ToSlash(dir), dsn)
	if err != nil {
		return fmt.Errorf("open migrator: %w", err)
	}
	defer func() {
		srcErr, dbErr := m.Close()
		if err := errors.Join(srcErr, dbErr); err != nil {
			logger.Warn("close migrator failed", "error", err)
		}
	}()

	logger.Info("running migration command", "command", args[0], "dir", dir, "db_name", cfg.DatabaseName())
	return cmd(m, arg, out, logger)
}

func migrateUp(m *migrate.Migrate, _ string, _ io.Writer, logger *logging.Logger) error {
	return settle(m.Up(), logger, "schema is up to date")
}

func migrateDown(m *migrate.Migrate, arg string, _ io.Writer, logger *logging.Logger) error {
	steps := 1
	if arg != "" {
		n, err := strconv.Atoi(arg)
		if err != nil || n < 1 {
			return fmt.Errorf("%w: down steps must be a positive integer, got %q", errUsage, arg)
		}
		steps = n
	}
	return settle(m.Steps(-steps), logger, "rolled back", "steps", steps)
}

func printVersion(m *migrate.Migrate, _ string, out io.Writer, _ *logging.Logger) error {
	version, dirty, err := m.Version()
	switch {
	case errors.Is(err, migrate.ErrNilVersion):
		_, err = fmt.Fprintln(out, "version: none")
		return err
	case err != nil:
		return fmt.Errorf("read version: %w", err)
	}
	_, err = fmt.Fprintf(out, "version: %d dirty: %t\n", version, dirty)
	return err
}

func forceVersion(m *migrate.Migrate, arg string, _ io.Writer, logger *logging.Logger) error {
	version, err := parseVersion(arg)
	if err != nil {
		return err
	}
	if err := m.Force(int(version)); err != nil {
		return fmt.Errorf("force version %d: %w", version, err)
	}
	logger.Info("schema version forced", "version", version)
	return nil
}

func gotoVersion(m *migrate.Migrate, arg string, _ io.Writer, logger *logging.Logger) error {
	version, err := parseVersion(arg)
	if err != nil {
		return err
	}
	return settle(m.Migrate(version), logger, "migrated", "version", version)
}

// parseVersion accepts versions that fit both uint (migrate) and int (Force).
func parseVersion(raw string) (uint, error) {
	if raw == "" {
		return 0, fmt.Errorf("%w: version argument is required", errUsage)
	}
	value, err := strconv.ParseUint(raw, 10, strconv.IntSize-1)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid version %q", errUsage, raw)
	}
	return uint(value), nil
}

// settle treats ErrNoChange as success and logs the outcome.
func settle(err error, logger *logging.Logger, msg string, kv ...any) error {
	if errors.Is(err, migrate.ErrNoChange) {
		logger.Info("no migration changes")
		return nil
	}
	if err != nil {
		return err
	}
	logger.Info(msg, kv...)
	return nil
}

func migrationsDir(override string) (string, error) {
	candidates := []string{"db/migrations", "/app/db/migrations"}
	if override = strings.TrimSpace(override); override != "" {
		candidates = []string{override}
	}

	for _, candidate := range candidates {
		abs, err := filepath.Abs(candidate)
		if err != nil {
			continue
		}
		if info, err := os.Stat(abs); err == nil && info.IsDir() {
			return abs, nil
		}
	}
	return "", fmt.Errorf("migrations directory not found in %s", strings.Join(candidates, ", "))
}
