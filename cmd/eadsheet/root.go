package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/ukaji3/eadsheet-go/pkg/eadsheet"
	"github.com/ukaji3/eadsheet-go/pkg/eadsheet/config"
	"github.com/ukaji3/eadsheet-go/pkg/eadsheet/logging"
	"github.com/ukaji3/eadsheet-go/pkg/eadsheet/mets"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	configPath  string
	template    string
	rulesetPath string
	collections []string
	storePath   string
	workers     int
	logLevel    string
	logFormat   string
	logFile     string
}

func newRootCommand() *cobra.Command {
	flags := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:   "eadsheet",
		Short: "Import finding-aid spreadsheets into an archive tree",
		Long: `eadsheet-go reads an indentation-encoded finding aid from an Excel
workbook, rebuilds the archive description tree and generates one
descriptive document and image folder per process row.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flags.configPath, "config", "c", "", "Import descriptor (.yaml or .toml)")
	pf.StringVarP(&flags.template, "template", "t", config.Wildcard, "Workflow name used to select the template")
	pf.StringVar(&flags.rulesetPath, "ruleset", "", "Ruleset declaring structure and metadata types (.yaml)")
	pf.StringSliceVar(&flags.collections, "collection", nil, "Collection attached to every document (repeatable)")
	pf.StringVar(&flags.storePath, "database", "", "SQLite file the archive tree is saved to")
	pf.IntVar(&flags.workers, "workers", 0, "Records processed in parallel (default: number of CPUs)")
	pf.StringVar(&flags.logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&flags.logFormat, "log-format", "", "Log format: console, json (default: console on terminals)")
	pf.StringVar(&flags.logFile, "log-file", "", "Also append logs to this file")
	_ = rootCmd.MarkPersistentFlagRequired("config")

	rootCmd.AddCommand(newImportCommand(flags))
	rootCmd.AddCommand(newRecordsCommand(flags))
	rootCmd.AddCommand(newFilesCommand(flags))

	return rootCmd
}

// importer builds the importer described by the flags. The returned function
// closes the log file and must be called when the command is done.
func (f *globalFlags) importer(stderr io.Writer, importFolder string) (*eadsheet.Importer, func() error, error) {
	logger, closeLog, err := logging.New(logging.Options{
		Level:  f.logLevel,
		Format: logFormat(f.logFormat, stderr),
		Output: stderr,
		File:   f.logFile,
	})
	if err != nil {
		return nil, nil, err
	}
	im, err := f.newImporter(logger, importFolder)
	if err != nil {
		closeLog()
		return nil, nil, err
	}
	return im, closeLog, nil
}

func (f *globalFlags) newImporter(logger *slog.Logger, importFolder string) (*eadsheet.Importer, error) {
	desc, err := config.Load(f.configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	var prefs *mets.Prefs
	if f.rulesetPath != "" {
		prefs, err = mets.LoadPrefs(f.rulesetPath)
		if err != nil {
			return nil, fmt.Errorf("load ruleset: %w", err)
		}
	}

	im, err := eadsheet.New(desc, eadsheet.Options{
		Template:     f.template,
		ImportFolder: importFolder,
		Collections:  f.collections,
		Prefs:        prefs,
		Workers:      f.workers,
		StorePath:    f.storePath,
		Logger:       logger,
	})
	if err != nil {
		return nil, err
	}
	if im.Template().RunAsScript {
		logger.Info("template is marked to run as a background script", "template", im.Template().Name)
	}
	return im, nil
}

func logFormat(flag string, w io.Writer) string {
	if flag != "" {
		return flag
	}
	if isTerminal(w) {
		return "console"
	}
	return "json"
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
