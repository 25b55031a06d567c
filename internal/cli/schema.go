package cli

import (
	"encoding/json"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vivahlabs/biodatakit/pkg/biodata"
)

// NewSchemaCmd creates the "schema" subcommand.
func NewSchemaCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Print the composed field schema for a region",
		Args:  cobra.NoArgs,
		RunE:  runSchema,
	}

	cmd.Flags().StringP("region", "r", "", "Region key (default: BIODATACHECK_DEFAULT_REGION)")
	cmd.Flags().Bool("strict-region", false, "Reject unknown region keys instead of falling back to default rules")
	cmd.Flags().StringP("format", "f", "yaml", "Output format: yaml or json")

	return cmd
}

func runSchema(cmd *cobra.Command, _ []string) error {
	cfg, err := LoadConfig()
	if err != nil {
		return exitError(exitUsage, "%v", err)
	}

	rawRegion, _ := cmd.Flags().GetString("region")
	if rawRegion == "" {
		rawRegion = cfg.DefaultRegion
	}
	strict, _ := cmd.Flags().GetBool("strict-region")
	key, err := resolveRegion(rawRegion, strict)
	if err != nil {
		return err
	}

	composed := biodata.New().ComposeSchema(key)

	format, _ := cmd.Flags().GetString("format")
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent(2)
		if err := enc.Encode(composed); err != nil {
			return exitError(exitUsage, "encoding schema: %v", err)
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if err := enc.Encode(composed); err != nil {
			return exitError(exitUsage, "encoding schema: %v", err)
		}
		return nil
	default:
		return exitError(exitUsage, "unknown format %q: want yaml or json", format)
	}
}
