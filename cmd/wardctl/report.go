package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"wardregistry/internal/registry/report"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print the category summary report",
	Long: `Print the category summary report for the seeded registry.

Dates are YYYY-MM-DD in the configured timezone. The date range applies to
each record's last activity time.

Example:
  wardctl report --seed seed.yml
  wardctl report --seed seed.yml --status all --from 2026-01-01 --output json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		loc, err := cfg.Location()
		if err != nil {
			return err
		}
		c, err := criteriaFlags(cmd, loc)
		if err != nil {
			return err
		}
		a, err := openRegistry(cmd.Context(), cfg, cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		defer a.Close()

		summary, err := a.Module.Reports.Summarize(cmd.Context(), c)
		if err != nil {
			return err
		}
		output, _ := cmd.Flags().GetString("output")
		return printSummary(cmd.OutOrStdout(), summary, output)
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
	addCriteriaFlags(reportCmd)
	reportCmd.Flags().StringP("output", "o", "text", "Output format (text or json)")
}

func printSummary(w io.Writer, s *report.Summary, output string) error {
	if output == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(s)
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CATEGORY\tCOUNT\tHIGHLIGHT\tSUBSIDY")
	for _, row := range s.Categories {
		fmt.Fprintf(tw, "%s\t%d\t%s: %g\t%d\n", row.Label, row.Count, row.Highlight.Label, row.Highlight.Value, row.SubsidySum)
	}
	fmt.Fprintf(tw, "TOTAL\t\t\t%d\n", s.TotalBudget)
	return tw.Flush()
}
