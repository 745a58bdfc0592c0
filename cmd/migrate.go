package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/voxnote/memo-api/internal/database"
	"github.com/voxnote/memo-api/internal/models"
	"github.com/voxnote/memo-api/pkg/config"
)

// migrateCmd represents the migrate command
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations",
	Long: `Manage the database schema for the Voice Memo API.

Available subcommands:
  up      - Apply the schema (create or update tables)
  status  - Show which tables exist`,
}

// migrateUpCmd applies the schema
var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply the schema",
	Long: `Create or update the database tables.

The schema is applied with GORM auto-migration: missing tables and
columns are created, existing data is left in place.`,
	RunE: runMigrateUp,
}

// migrateStatusCmd shows migration status
var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show schema status",
	RunE:  runMigrateStatus,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.AddCommand(migrateUpCmd)
	migrateCmd.AddCommand(migrateStatusCmd)
}

func openDatabase() (*database.DB, error) {
	if err := config.Init(); err != nil {
		return nil, err
	}
	cfg, err := config.GetConfig()
	if err != nil {
		return nil, err
	}
	return database.Initialize(cfg.Database.Path, cfg.Database.Verbose)
}

func runMigrateUp(cmd *cobra.Command, args []string) error {
	db, err := openDatabase()
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	if err := db.AutoMigrate(&models.AudioBlob{}, &models.Waveform{}); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Schema is up to date")
	return nil
}

func runMigrateStatus(cmd *cobra.Command, args []string) error {
	db, err := openDatabase()
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Database schema status")

	tables := map[string]interface{}{
		"audio_blobs": &models.AudioBlob{},
		"waveforms":   &models.Waveform{},
	}
	for name, model := range tables {
		state := "missing"
		if db.Migrator().HasTable(model) {
			state = "present"
		}
		fmt.Fprintf(out, "  %-16s %s\n", name, state)
	}

	return nil
}
