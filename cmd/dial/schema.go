package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/gogpu/dial"
)

func (a *app) newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the chart control panel as JSON",
		RunE: func(cmd *cobra.Command, _ []string) error {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(dial.ControlPanel())
		},
	}
}
