package ui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/pagetable/internal/db"
	"github.com/javiermolinar/pagetable/internal/store"
)

func (a *App) importCmd() *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:   "import [users.json]",
		Short: "Import users into the SQLite source",
		Long: `Replace the users stored in the SQLite source with the records of a
JSON array file. Records are stored verbatim, in file order.

Example:
  pagetable import ./users.json
  pagetable serve --source=sqlite`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sourcePath, err := resolvePath(args[0])
			if err != nil {
				return err
			}
			if dbPath == "" {
				dbPath = a.config.Server.DBPath
			}
			destPath, err := resolvePath(dbPath)
			if err != nil {
				return err
			}

			info, err := os.Stat(sourcePath)
			if err != nil {
				if os.IsNotExist(err) {
					return fmt.Errorf("users file does not exist: %s", sourcePath)
				}
				return fmt.Errorf("checking users file: %w", err)
			}
			if info.IsDir() {
				return fmt.Errorf("users file path is a directory: %s", sourcePath)
			}

			count, err := importRecords(context.Background(), sourcePath, destPath)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Imported %d users from %s into %s\n", count, sourcePath, destPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "Database path (defaults to server.db_path)")

	return cmd
}

func importRecords(ctx context.Context, sourcePath, destPath string) (int, error) {
	records, err := store.ReadFile(sourcePath)
	if err != nil {
		return 0, err
	}

	if err := os.MkdirAll(filepath.Dir(destPath), 0o755); err != nil {
		return 0, fmt.Errorf("creating database directory: %w", err)
	}
	dest, err := db.New(destPath)
	if err != nil {
		return 0, fmt.Errorf("opening database: %w", err)
	}
	defer func() { _ = dest.Close() }()

	n, err := dest.Import(ctx, records)
	if err != nil {
		return 0, fmt.Errorf("importing users: %w", err)
	}
	return n, nil
}

func resolvePath(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", fmt.Errorf("empty path")
	}

	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolving home directory: %w", err)
		}
		path = filepath.Join(home, path[2:])
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving path: %w", err)
	}

	return absPath, nil
}
