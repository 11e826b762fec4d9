package main

import (
	"fmt"
	"io"
	"os"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"workforce-engine/internal/model"
	"workforce-engine/internal/report"
)

var (
	runInput  string
	runSeed   uint64
	runXLSX   string
	runPretty bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Read one input DTO as JSON and print the summary",
	Long: `Reads {"count": N, "age": {"min": a, "max": b}} from --input or stdin,
generates the population and prints the summary JSON to stdout.

Example:
  echo '{"count": 5, "age": {"min": 18, "max": 60}}' | workforce-engine run --pretty`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := readInput(cmd.InOrStdin(), runInput)
		if err != nil {
			return err
		}

		req, err := model.DecodeRunRequest(data)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("seed") {
			req.Seed = &runSeed
		}

		res, err := newEngine().Run(cmd.Context(), req)
		if err != nil {
			return fmt.Errorf("run %s: %w", res.RunID, err)
		}

		if runXLSX != "" {
			book, err := report.WriteWorkbook(&res.Summary)
			if err != nil {
				return err
			}
			if err := os.WriteFile(runXLSX, book, 0o644); err != nil {
				return fmt.Errorf("save %s: %w", runXLSX, err)
			}
			logger.Info("Workbook written", zap.String("path", runXLSX))
		}

		return writeSummary(cmd.OutOrStdout(), &res.Summary, runPretty)
	},
}

func init() {
	runCmd.Flags().StringVarP(&runInput, "input", "i", "", "input JSON file (default stdin)")
	runCmd.Flags().Uint64Var(&runSeed, "seed", 0, "seed for reproducible generation")
	runCmd.Flags().StringVar(&runXLSX, "xlsx", "", "also write the summary to this .xlsx file")
	runCmd.Flags().BoolVar(&runPretty, "pretty", false, "indent the JSON output")
}

func readInput(stdin io.Reader, path string) ([]byte, error) {
	if path == "" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}

func writeSummary(w io.Writer, s *model.Summary, pretty bool) error {
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("encode summary: %w", err)
	}
	return nil
}
