package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"tutorbuddy/internal/config"
	"tutorbuddy/internal/database"
	"tutorbuddy/internal/repository"
	"tutorbuddy/internal/service"
)

func main() {
	// Define subcommands
	exportCmd := flag.NewFlagSet("export", flag.ExitOnError)
	importCmd := flag.NewFlagSet("import", flag.ExitOnError)

	// Export flags
	exportOutput := exportCmd.String("output", "", "Output file path (default: state_YYYYMMDD_HHMMSS.json)")
	exportStdout := exportCmd.Bool("stdout", false, "Write the backup to stdout instead of a file")

	// Import flags
	importInput := importCmd.String("input", "", "Input file path (required)")
	importYes := importCmd.Bool("yes", false, "Replace the current state record without asking")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	// Run migrations to ensure schema is up to date
	if err := db.RunMigrations(cfg.MigrationsPath); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	stateRepo := repository.NewStateRepository(db, cfg.StateRecordName)
	backupService := service.NewBackupService(stateRepo)

	switch os.Args[1] {
	case "export":
		exportCmd.Parse(os.Args[2:])
		handleExport(backupService, *exportOutput, *exportStdout)

	case "import":
		importCmd.Parse(os.Args[2:])
		if *importInput == "" {
			fmt.Println("Error: -input flag is required")
			importCmd.PrintDefaults()
			os.Exit(1)
		}
		handleImport(backupService, *importInput, *importYes)

	default:
		printUsage()
		os.Exit(1)
	}
}

func handleExport(backupService *service.BackupService, outputPath string, toStdout bool) {
	if toStdout {
		if err := backupService.ExportToWriter(os.Stdout); err != nil {
			log.Fatalf("Export failed: %v", err)
		}
		return
	}

	// Generate default filename if not provided
	if outputPath == "" {
		timestamp := time.Now().Format("20060102_150405")
		outputPath = fmt.Sprintf("state_%s.json", timestamp)
	}

	// Ensure directory exists
	dir := filepath.Dir(outputPath)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Fatalf("Failed to create output directory: %v", err)
		}
	}

	log.Printf("Exporting state record to: %s", outputPath)
	if err := backupService.Export(outputPath); err != nil {
		log.Fatalf("Export failed: %v", err)
	}
	log.Println("Export complete!")
}

func handleImport(backupService *service.BackupService, inputPath string, skipConfirm bool) {
	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		log.Fatalf("Input file does not exist: %s", inputPath)
	}

	if !skipConfirm {
		fmt.Print("This will replace the current state record. Type 'yes' to confirm: ")
		var confirmation string
		fmt.Scanln(&confirmation)
		if confirmation != "yes" {
			log.Println("Import cancelled")
			return
		}
	}

	log.Printf("Importing state record from: %s", inputPath)
	if err := backupService.Import(inputPath); err != nil {
		log.Fatalf("Import failed: %v", err)
	}
	log.Println("Import complete! Restart the server to pick up the restored state.")
}

func printUsage() {
	fmt.Println("TutorBuddy State Backup Tool")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  backup export [options]    Export the state record to a JSON file")
	fmt.Println("  backup import [options]    Import a state record from a JSON file")
	fmt.Println()
	fmt.Println("Export Options:")
	fmt.Println("  -output <file>    Output file path (default: state_YYYYMMDD_HHMMSS.json)")
	fmt.Println("  -stdout           Write the backup to stdout instead of a file")
	fmt.Println()
	fmt.Println("Import Options:")
	fmt.Println("  -input <file>     Input file path (required)")
	fmt.Println("  -yes              Replace the current state record without asking")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  backup export")
	fmt.Println("  backup export -output mybackup.json")
	fmt.Println("  backup export -stdout > mybackup.json")
	fmt.Println("  backup import -input mybackup.json")
	fmt.Println()
	fmt.Println("Environment Variables:")
	fmt.Println("  DB_TYPE              Database type: sqlite, postgres, or mysql (default: sqlite)")
	fmt.Println("  DB_PATH              SQLite database path (default: ./tutorbuddy.db)")
	fmt.Println("  DATABASE_URL         PostgreSQL or MySQL connection URL")
	fmt.Println("  STATE_RECORD_NAME    Record to export or replace (default: ai-tutor-state)")
}
