package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/Ezark213/document-classifier-renamer/internal/classify"
	"github.com/Ezark213/document-classifier-renamer/internal/config"
	"github.com/Ezark213/document-classifier-renamer/internal/extract"
	"github.com/Ezark213/document-classifier-renamer/internal/mcp"
	"github.com/Ezark213/document-classifier-renamer/internal/rename"
	"github.com/Ezark213/document-classifier-renamer/internal/rules"
	"github.com/Ezark213/document-classifier-renamer/internal/sorter"
)

var (
	version   = "dev"     // This will be set by build flags
	buildTime = "unknown" // This will be set by build flags
	gitCommit = "unknown" // This will be set by build flags
)

// setupLogging configures logging based on the execution mode
func setupLogging(cfg *config.Config) {
	if cfg.IsStdioMode() {
		// In stdio mode, redirect log output to stderr to avoid interfering with MCP protocol
		log.SetOutput(os.Stderr)
		if !cfg.IsDebug() {
			log.SetOutput(io.Discard)
		}
	} else {
		log.SetFlags(log.LstdFlags)
	}
}

// buildClassifier resolves the rule table for the configured locale,
// merges any custom rule file, and returns the classifier. Rule table
// problems are fatal here, before any document is touched.
func buildClassifier(cfg *config.Config) (*classify.Classifier, error) {
	table, err := rules.NewTable(cfg.Locale)
	if err != nil {
		return nil, fmt.Errorf("failed to load rule table: %w", err)
	}

	if cfg.CustomRulesPath != "" {
		table, err = table.WithCustomRules(cfg.CustomRulesPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load custom rules: %w", err)
		}
	}

	return classify.NewClassifier(table), nil
}

// runCLIMode sorts the configured input directory once, with signal
// handling so an interrupted batch stops between files.
func runCLIMode(cfg *config.Config, service *sorter.Service) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	signalCh := make(chan os.Signal, 1)
	signal.Notify(signalCh, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	go func() {
		sig := <-signalCh
		log.Printf("Received signal: %s, stopping after current file", sig)
		cancel()
	}()

	result, err := service.SortDirectory(ctx, cfg.InputDirectory, cfg.OutputDirectory)
	if err != nil {
		log.Printf("Batch stopped: %v", err)
	}

	if result != nil {
		fmt.Printf("Processed %d file(s), %d failed\n", result.Processed, result.Failed)
		if result.Failed > 0 {
			os.Exit(1)
		}
	}
}

// runStdioMode serves the classifier as MCP tools over standard I/O.
func runStdioMode(ctx context.Context, server *mcp.Server) {
	if err := server.Run(ctx); err != nil {
		if os.Getenv("DEBUG") != "" {
			log.Printf("Server error: %v", err)
		}
		os.Exit(1)
	}
}

func main() {
	// Check for version flag before parsing other flags
	for _, arg := range os.Args[1:] {
		if arg == "-version" || arg == "--version" || arg == "-v" {
			printVersion()
			return
		}
	}

	cfg, err := config.LoadFromFlags()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	setupLogging(cfg)

	if version != "dev" {
		cfg.Version = version
	}

	if cfg.IsDebug() && cfg.IsCLIMode() {
		log.Printf("Starting with configuration: %s", cfg.String())
	}

	classifier, err := buildClassifier(cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	namer := rename.Namer{DateFormat: cfg.DateFormat, CustomDate: cfg.CustomDate}
	service := sorter.NewService(
		classifier,
		extract.NewTextExtractor(cfg.MaxFileSize),
		extract.NewCSVAnalyzer(),
		namer,
	)

	if cfg.IsCLIMode() {
		runCLIMode(cfg, service)
		return
	}

	server, err := mcp.NewServer(cfg, classifier, service)
	if err != nil {
		log.Fatalf("Failed to create MCP server: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	runStdioMode(ctx, server)
}

// printVersion prints version information
func printVersion() {
	fmt.Printf("Document Classifier & Renamer\n")
	fmt.Printf("Version: %s\n", version)
	fmt.Printf("Build Time: %s\n", buildTime)
	fmt.Printf("Git Commit: %s\n", gitCommit)
	fmt.Printf("Built with: %s\n", runtime.Version())
}
