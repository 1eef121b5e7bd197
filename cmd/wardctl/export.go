package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"wardregistry/internal/registry/export"
	"wardregistry/internal/registry/models"
)

var exportCmd = &cobra.Command{
	Use:   "export <category>",
	Short: "Export a category listing as CSV or XLSX",
	Long: `Export one category of the seeded registry as CSV or XLSX.

The file is written to --out, or to <category>_<date>.<format> in --dir when
--out is empty. With --upload it is also sent to the configured export bucket.

Example:
  wardctl export merit --seed seed.yml
  wardctl export dwelling --seed seed.yml --format xlsx --upload`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		category, err := models.ParseCategory(args[0])
		if err != nil {
			return err
		}
		formatName, _ := cmd.Flags().GetString("format")
		format, err := export.ParseFormat(formatName)
		if err != nil {
			return err
		}
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

		f, err := a.Module.Exports.Export(cmd.Context(), category, format, c)
		if err != nil {
			return err
		}

		out, _ := cmd.Flags().GetString("out")
		if out == "" {
			dir, _ := cmd.Flags().GetString("dir")
			out = filepath.Join(dir, f.Name)
		}
		if err := os.WriteFile(out, f.Data, 0o644); err != nil {
			return fmt.Errorf("write export: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %d rows to %s\n", f.Rows, out)

		if upload, _ := cmd.Flags().GetBool("upload"); upload {
			key, err := a.Module.Exports.Upload(cmd.Context(), f)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "uploaded s3://%s/%s\n", cfg.Export.Bucket, key)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	addCriteriaFlags(exportCmd)
	exportCmd.Flags().StringP("format", "f", "csv", "File format (csv or xlsx)")
	exportCmd.Flags().StringP("out", "o", "", "Output path")
	exportCmd.Flags().String("dir", ".", "Output directory when --out is empty")
	exportCmd.Flags().Bool("upload", false, "Upload the file to the export bucket")
}
