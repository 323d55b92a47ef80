package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gashumba/momo-ledger/internal/logging"
	"github.com/gashumba/momo-ledger/internal/report"
	"github.com/gashumba/momo-ledger/internal/repository"
	"github.com/gashumba/momo-ledger/internal/service"
	"github.com/gashumba/momo-ledger/internal/storage"
)

func main() {
	// Command-line flags
	var (
		xmlFile     string
		dbPath      string
		rejectsFile string
		logLevel    string
		devMode     bool
		prettyPrint bool
	)

	flag.StringVar(&xmlFile, "xml", "", "Path to SMS backup XML export")
	flag.StringVar(&dbPath, "db", "momo.db", "Path to SQLite database")
	flag.StringVar(&rejectsFile, "rejects", "", "Path to rejected-messages CSV output (optional)")
	flag.StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	flag.BoolVar(&devMode, "dev", false, "Human-readable console logging")
	flag.BoolVar(&prettyPrint, "pretty", true, "Pretty print JSON summary")

	flag.Parse()

	if xmlFile == "" {
		exitWithError("SMS export file path is required")
	}

	logger, err := logging.New(logging.Config{Level: logLevel, DevMode: devMode})
	if err != nil {
		exitWithError(fmt.Sprintf("Invalid logging configuration: %v", err))
	}
	defer logger.Sync()

	store, err := storage.Open(dbPath)
	if err != nil {
		exitWithError(fmt.Sprintf("Failed to open database: %v", err))
	}
	defer store.Close()

	smsRepo := repository.NewXMLSMSRepository(xmlFile)
	importService := service.NewImportService(smsRepo, store, store, logger)

	result, err := importService.Run()
	if err != nil {
		exitWithError(fmt.Sprintf("Import failed: %v", err))
	}

	if rejectsFile != "" {
		if err := report.WriteRejectsCSV(rejectsFile, result.Rejected); err != nil {
			exitWithError(fmt.Sprintf("Failed to write rejects file: %v", err))
		}
	}

	formatter := report.NewJSONFormatter(prettyPrint)
	output, err := formatter.Format(result)
	if err != nil {
		exitWithError(fmt.Sprintf("Failed to format summary: %v", err))
	}

	fmt.Println(string(output))
}

func exitWithError(message string) {
	fmt.Fprintf(os.Stderr, "Error: %s\n", message)
	fmt.Fprintf(os.Stderr, "Run with -h flag for usage information.\n")
	os.Exit(1)
}
