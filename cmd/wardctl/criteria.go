package main

import (
	"time"

	"github.com/spf13/cobra"

	"wardregistry/internal/registry/query"
)

func addCriteriaFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("query", "q", "", "Search term")
	cmd.Flags().String("status", "", "Status filter (active, inactive or all; default active)")
	cmd.Flags().String("from", "", "Earliest activity date, YYYY-MM-DD")
	cmd.Flags().String("to", "", "Latest activity date, YYYY-MM-DD")
}

func criteriaFlags(cmd *cobra.Command, loc *time.Location) (query.Criteria, error) {
	term, _ := cmd.Flags().GetString("query")
	status, _ := cmd.Flags().GetString("status")
	from, _ := cmd.Flags().GetString("from")
	to, _ := cmd.Flags().GetString("to")
	return query.ParseCriteria(term, status, from, to, loc)
}
