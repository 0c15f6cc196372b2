// Package main provides the order pipeline command-line tool.
package main

import (
	"flag"
	"fmt"
	"os"

	"shoplink/internal/config"
	"shoplink/internal/exporter"
	"shoplink/internal/logger"
	"shoplink/internal/pipeline"
	"shoplink/internal/reader"
	"shoplink/internal/report"
)

func main() {
	configPath := flag.String("config", "", "Path to YAML config file (optional)")
	inputPath := flag.String("input", "", "Path to input JSON file (overrides config)")
	outputPath := flag.String("output", "", "Path to output JSON file (overrides config)")
	logLevel := flag.String("log-level", "", "Log level: debug, info, warn, error (overrides config)")
	flag.Parse()

	cfg := config.DefaultConfig()

	if *configPath != "" {
		loaded, err := config.LoadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}

		cfg = loaded
	}

	// Flags win over the config file.
	if *inputPath != "" {
		cfg.Pipeline.Input = *inputPath
	}

	if *outputPath != "" {
		cfg.Pipeline.Output = *outputPath
	}

	if *logLevel != "" {
		cfg.Logging.Level = *logLevel
	}

	log := logger.NewLogger(cfg.Logging.Level, cfg.Logging.Format)

	log.Info("🚀 Starting ShopLink order pipeline")
	log.Info(fmt.Sprintf("📍 Source: %s", cfg.Pipeline.Input))
	log.Info(fmt.Sprintf("🎯 Target: %s", cfg.Pipeline.Output))

	p := pipeline.New(
		reader.NewReader(cfg.Pipeline.Input),
		exporter.NewExporter(cfg.Pipeline.Output, cfg.Pipeline.PrettyPrint),
		log,
	)

	result, err := p.Run()
	if err != nil {
		log.Error(fmt.Sprintf("❌ Pipeline failed: %v", err))
		os.Exit(1)
	}

	fmt.Print(report.Render(result))

	log.Info(fmt.Sprintf("✅ Processed %d orders", result.TotalProcessed))
}
