package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"fundboard/internal/report"
)

var (
	exportFilter filterFlags
	exportOutput string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the filtered campaigns as CSV",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

func init() {
	exportFilter.register(exportCmd)
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file path (default: stdout)")
}

func runExport(cmd *cobra.Command, _ []string) error {
	spec, err := exportFilter.spec(cmd)
	if err != nil {
		return err
	}
	svc, err := exportFilter.offlineUseCase(cmd.Context(), cmd)
	if err != nil {
		return err
	}
	rows, err := svc.Campaigns(cmd.Context(), "", spec)
	if err != nil {
		return err
	}

	var w io.Writer = cmd.OutOrStdout()
	if exportOutput != "" {
		f, err := os.Create(exportOutput)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()
		w = f
	}
	return report.WriteCSV(w, rows)
}
