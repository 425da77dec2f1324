package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/ukaji3/eadsheet-go/pkg/eadsheet"
	"github.com/ukaji3/eadsheet-go/pkg/eadsheet/models"
)

func newImportCommand(flags *globalFlags) *cobra.Command {
	var (
		outputDir  string
		recordsOut string
	)
	cmd := &cobra.Command{
		Use:   "import [input.xlsx]",
		Short: "Rebuild the tree and generate documents and images",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			im, closeLog, err := flags.importer(cmd.ErrOrStderr(), outputDir)
			if err != nil {
				return err
			}
			defer closeLog()
			set, err := im.GenerateRecords(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if recordsOut != "" {
				if err := eadsheet.SaveRecords(recordsOut, set); err != nil {
					return fmt.Errorf("write records: %w", err)
				}
			}
			results, err := im.GenerateFiles(cmd.Context(), set.Records)
			if err != nil {
				return err
			}
			return report(cmd, results)
		},
	}
	cmd.Flags().StringVarP(&outputDir, "output", "o", ".", "Import folder for documents and images")
	cmd.Flags().StringVar(&recordsOut, "records-out", "", "Also save the records to this JSON file")
	return cmd
}

func newRecordsCommand(flags *globalFlags) *cobra.Command {
	var (
		outputPath string
		asTable    bool
	)
	cmd := &cobra.Command{
		Use:   "records [input.xlsx]",
		Short: "Rebuild the tree and list the process records",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			im, closeLog, err := flags.importer(cmd.ErrOrStderr(), ".")
			if err != nil {
				return err
			}
			defer closeLog()
			set, err := im.GenerateRecords(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if outputPath != "" {
				if err := eadsheet.SaveRecords(outputPath, set); err != nil {
					return fmt.Errorf("write records: %w", err)
				}
			}
			out := cmd.OutOrStdout()
			if asTable {
				fmt.Fprintln(out, renderRecords(set))
				return nil
			}
			if outputPath == "" {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(set)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Records JSON file (default: stdout)")
	cmd.Flags().BoolVar(&asTable, "table", false, "Print a summary table instead of JSON")
	return cmd
}

func newFilesCommand(flags *globalFlags) *cobra.Command {
	var outputDir string
	cmd := &cobra.Command{
		Use:   "files [records.json]",
		Short: "Generate documents and images from saved records",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := eadsheet.LoadRecords(args[0])
			if err != nil {
				return err
			}
			if flags.template == "" || flags.template == "*" {
				flags.template = set.Template
			}
			im, closeLog, err := flags.importer(cmd.ErrOrStderr(), outputDir)
			if err != nil {
				return err
			}
			defer closeLog()
			results, err := im.GenerateFiles(cmd.Context(), set.Records)
			if err != nil {
				return err
			}
			return report(cmd, results)
		},
	}
	cmd.Flags().StringVarP(&outputDir, "output", "o", ".", "Import folder for documents and images")
	return cmd
}

// report prints the result table and fails when any record failed.
func report(cmd *cobra.Command, results []models.ImportResult) error {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, renderResults(results))

	failed := 0
	for _, r := range results {
		if !r.Failed() {
			continue
		}
		failed++
		for _, err := range r.Errors {
			fmt.Fprintf(cmd.ErrOrStderr(), "%v\n", err)
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d records had problems", failed, len(results))
	}
	return nil
}
