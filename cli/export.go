package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/byte-coder-pir/Leucine-Narration-Maker/engine/archive"
	"github.com/byte-coder-pir/Leucine-Narration-Maker/engine/export"
	"github.com/byte-coder-pir/Leucine-Narration-Maker/engine/record"
	"github.com/byte-coder-pir/Leucine-Narration-Maker/pkg/config"
	"github.com/byte-coder-pir/Leucine-Narration-Maker/pkg/logger"
)

func ExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <input.(json|zip)>",
		Short: "Flatten workflow definitions into narration records and write them out",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			logger.SetupLogger(cfg.LogLevel, cfg.LogJSON)
			return runExport(cmd, args[0], cfg)
		},
	}
	cmd.Flags().StringP("output", "o", "", "output directory (defaults to the configured one)")
	cmd.Flags().String("format", "", "output format: csv, xlsx or both")
	return cmd
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.NewService().Load()
	if err != nil {
		return nil, err
	}
	if out, _ := cmd.Flags().GetString("output"); out != "" {
		cfg.OutputDir = out
	}
	if format, _ := cmd.Flags().GetString("format"); format != "" {
		cfg.Format = format
	}
	if level, jsonOut, err := logger.GetLoggerConfig(cmd); err == nil {
		if level != "" {
			cfg.LogLevel = level
		}
		if jsonOut {
			cfg.LogJSON = true
		}
	}
	// Flag overrides bypass the loader, so re-check the result.
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runExport(cmd *cobra.Command, input string, cfg *config.Config) error {
	ctx := cmd.Context()
	log := logger.FromContext(ctx)

	result, err := archive.Load(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to load definitions: %w", err)
	}
	log.Info("loaded definitions",
		"entries", result.Entries,
		"definitions", len(result.Definitions),
		"failed", result.Failed,
	)
	if len(result.Definitions) == 0 {
		return fmt.Errorf("no definition in %s could be processed", input)
	}

	records := record.Assemble(result.Definitions)
	log.Info("assembled narration records", "records", len(records))

	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if cfg.Format == "csv" || cfg.Format == "both" {
		path := filepath.Join(cfg.OutputDir, base+".csv")
		if err := writeFile(path, func(f *os.File) error {
			return export.WriteDelimited(f, records, []rune(cfg.Separator)[0])
		}); err != nil {
			return err
		}
		log.Info("wrote delimited output", "path", path)
	}
	if cfg.Format == "xlsx" || cfg.Format == "both" {
		path := filepath.Join(cfg.OutputDir, base+".xlsx")
		if err := writeFile(path, func(f *os.File) error {
			return export.WriteXLSX(f, records)
		}); err != nil {
			return err
		}
		log.Info("wrote workbook output", "path", path)
	}
	return nil
}

func writeFile(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	return nil
}
