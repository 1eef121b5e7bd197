package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"wardregistry/internal/registry/models"
)

var polygonCmd = &cobra.Command{
	Use:   "polygon",
	Short: "Work with dwelling boundary polygons",
}

var polygonCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Parse pasted coordinates from stdin and print the polygon",
	Long: `Parse pasted coordinates from stdin, one "lat,lng" pair per line.

Unparseable lines are skipped. The command fails when fewer than three pairs
remain, and otherwise prints the points and the enclosed area.

Example:
  pbpaste | wardctl polygon check`,
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("read coordinates: %w", err)
		}
		poly, err := models.ParsePolygon(string(raw))
		if err != nil {
			return err
		}
		output, _ := cmd.Flags().GetString("output")
		if output == "json" {
			return json.NewEncoder(cmd.OutOrStdout()).Encode(map[string]any{
				"points":             poly,
				"area_square_meters": poly.AreaSquareMeters(),
			})
		}
		for _, p := range poly {
			fmt.Fprintf(cmd.OutOrStdout(), "%.6f,%.6f\n", p.Lat, p.Lng)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d points, area %.1f m²\n", len(poly), poly.AreaSquareMeters())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(polygonCmd)
	polygonCmd.AddCommand(polygonCheckCmd)
	polygonCheckCmd.Flags().StringP("output", "o", "text", "Output format (text or json)")
}
