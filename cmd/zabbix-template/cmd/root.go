// Package cmd provides CLI commands for the Zabbix template generator.
package cmd

import (
	"errors"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"zabbix-template/internal/model"
)

// Version information, injected at build time via -ldflags.
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// Exit codes.
const (
	exitOK      = 0
	exitFailure = 1 // unsupported input, missing file
	exitUsage   = 2 // bad flags or arguments
)

// Global flags
var (
	cfgFile  string // Config file path
	logLevel string // Log level
	output   string // Output mode
)

// rootCmd generates the template when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "zabbix-template",
	Short: "Generate a Zabbix template from Cacti graph definitions",
	Long: `Converts the Cacti graph template definition into a Zabbix template
and agent configuration.

Inputs (relative to the working directory, see --config to change them):
  cacti/definitions/mysql.def            graph definitions
  zabbix/triggers/mysql.yml              triggers (optional, set
                                         inputs.require_triggers: true
                                         to fail when it is missing)
  zabbix/items/mysql.yml                 extra discovery items (optional)
  cacti/scripts/ss_get_mysql_stats.php   item key table (config output only)

Output modes:
  xml       full template with items, graphs, screen and triggers (default)
  xml-lld   template with low-level discovery rules and item prototypes
  config    Zabbix agent UserParameter lines

Examples:
  zabbix-template > template.xml
  zabbix-template -o xml-lld > template_lld.xml
  zabbix-template -o config > userparameter_percona_mysql.conf`,
	Version: Version,
	Args:    cobra.NoArgs,
	PreRunE: validateOutput,
	RunE:    runGenerate,
}

// Execute runs the root command and returns the process exit code.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() int {
	return exitCode(rootCmd.Execute())
}

// init initializes the root command and its flags.
func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path (optional)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	rootCmd.Flags().StringVarP(&output, "output", "o", string(model.OutputModeXML), "type of the output: "+outputModeNames())

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return usageError(err)
	})

	// Customize version template
	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)
}

// GetConfigFile returns the config file path from command line flag.
func GetConfigFile() string {
	return cfgFile
}

// GetLogLevel returns the log level from command line flag.
func GetLogLevel() string {
	return logLevel
}

// GetVersionInfo returns formatted version information.
func GetVersionInfo() string {
	return Version + "\n" +
		"Build Time: " + BuildTime + "\n" +
		"Git Commit: " + GitCommit + "\n" +
		"Go Version: " + runtime.Version() + "\n" +
		"OS/Arch: " + runtime.GOOS + "/" + runtime.GOARCH
}

func outputModeNames() string {
	names := make([]string, 0, len(model.OutputModes()))
	for _, m := range model.OutputModes() {
		names = append(names, string(m))
	}
	return strings.Join(names, "|")
}

// exitError carries the exit code an error should terminate the process with.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

// fatal marks err as a conversion failure (exit 1).
func fatal(err error) error {
	return &exitError{code: exitFailure, err: err}
}

// usageError marks err as a command line mistake (exit 2).
func usageError(err error) error {
	return &exitError{code: exitUsage, err: err}
}

// exitCode maps an Execute error to an exit code. Errors cobra raises
// itself (unknown command, stray arguments) are usage errors.
func exitCode(err error) int {
	if err == nil {
		return exitOK
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return exitUsage
}
