package cli

import (
	"encoding/json"

	"github.com/ppiankov/toneguard/internal/model"
	"github.com/spf13/cobra"
)

// schemaCmd prints the JSON schema of analysis reports
var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of analysis reports",
	Long: `Print the JSON schema that every report written by 'analyze --json',
'analyze --print-json' and 'batch' conforms to.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(model.ReportSchema())
	},
}

func init() {
	rootCmd.AddCommand(schemaCmd)
}
