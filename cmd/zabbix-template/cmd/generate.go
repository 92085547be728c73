// Package cmd provides CLI commands for the Zabbix template generator.
package cmd

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"zabbix-template/internal/config"
	"zabbix-template/internal/model"
	"zabbix-template/internal/report"
	"zabbix-template/internal/service"
)

// validateOutput rejects unknown output modes before anything is read.
func validateOutput(cmd *cobra.Command, args []string) error {
	mode, err := model.ParseOutputMode(output)
	if err != nil {
		return usageError(err)
	}
	if !report.NewRegistry().Has(mode.Format()) {
		return usageError(fmt.Errorf("no writer for output type %q", mode))
	}
	return nil
}

// runGenerate executes the conversion and writes the result to stdout.
// Nothing is written unless the whole result was built successfully.
func runGenerate(cmd *cobra.Command, args []string) error {
	// Past flag validation every failure is about the input data.
	cmd.SilenceUsage = true

	mode, err := model.ParseOutputMode(output)
	if err != nil {
		return usageError(err)
	}

	// Step 1: Load configuration
	cfg, err := config.Load(GetConfigFile())
	if err != nil {
		return fatal(fmt.Errorf("failed to load config: %w", err))
	}

	// Step 2: Initialize logger; --log-level overrides the config file
	level := cfg.Logging.Level
	if cmd.Flags().Changed("log-level") {
		level = GetLogLevel()
	}
	logger := setupLogger(level, cfg.Logging.Format, cmd.ErrOrStderr())
	logger.Debug().
		Str("config_path", GetConfigFile()).
		Str("output", string(mode)).
		Str("definition", cfg.Inputs.Definition).
		Msg("configuration loaded")

	// Step 3: Convert
	result, err := generate(cfg, mode, logger)
	if err != nil {
		logger.Error().Err(err).Str("output", string(mode)).Msg("conversion failed")
		return fatal(err)
	}

	// Step 4: Render into a buffer, then write everything at once
	writer, err := report.NewRegistry().Get(mode.Format())
	if err != nil {
		return fatal(err)
	}

	var buf bytes.Buffer
	if err := writer.Write(&buf, result); err != nil {
		return fatal(err)
	}
	if _, err := cmd.OutOrStdout().Write(buf.Bytes()); err != nil {
		return fatal(fmt.Errorf("failed to write output: %w", err))
	}

	logger.Info().Str("output", string(mode)).Int("bytes", buf.Len()).Msg("output written")
	return nil
}

// generate loads the inputs the mode needs and builds the result.
func generate(cfg *config.Config, mode model.OutputMode, logger zerolog.Logger) (*model.Result, error) {
	def, err := config.LoadDefinition(cfg.Inputs.Definition)
	if err != nil {
		return nil, err
	}
	logger.Debug().Str("name", def.Name).Int("graphs", len(def.Graphs)).Msg("definition loaded")

	converter, err := service.NewConverter(cfg, def, logger)
	if err != nil {
		return nil, err
	}

	switch mode {
	case model.OutputModeXML:
		triggers, err := config.LoadTriggers(cfg.Inputs.Triggers, cfg.Inputs.RequireTriggers)
		if err != nil {
			return nil, err
		}
		logger.Debug().Int("triggers", len(triggers)).Str("path", cfg.Inputs.Triggers).Msg("triggers loaded")
		return converter.BuildTemplate(triggers)

	case model.OutputModeXMLLLD:
		extra, err := config.LoadExtraItems(cfg.Inputs.ExtraItems)
		if err != nil {
			return nil, err
		}
		logger.Debug().Int("extra_items", len(extra)).Str("path", cfg.Inputs.ExtraItems).Msg("extra items loaded")
		return converter.BuildDiscoveryTemplate(extra)

	case model.OutputModeConfig:
		table, err := config.LoadKeyTable(cfg.Inputs.KeyTable)
		if err != nil {
			return nil, err
		}
		logger.Debug().Int("keys", len(table)).Str("path", cfg.Inputs.KeyTable).Msg("key table loaded")
		return converter.BuildAgentConfig(table)

	default:
		return nil, fmt.Errorf("unhandled output mode %q", mode)
	}
}

// setupLogger creates a zerolog logger with the specified level and format.
// Logs always go to stderr (or w) so they never mix with the generated output.
func setupLogger(level string, format string, w io.Writer) zerolog.Logger {
	logLevel, err := zerolog.ParseLevel(level)
	if err != nil {
		logLevel = zerolog.WarnLevel
	}
	zerolog.SetGlobalLevel(logLevel)

	if w == nil {
		w = os.Stderr
	}

	// Select output format based on configuration
	var out io.Writer
	if format == "json" {
		// JSON format - structured logging for log aggregation systems
		out = w
	} else {
		// Console format - human-readable output
		out = zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: "15:04:05",
			NoColor:    true,
		}
	}

	return zerolog.New(out).With().Timestamp().Logger()
}
