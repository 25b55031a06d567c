package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vivahlabs/biodatakit/pkg/biodata"
	"github.com/vivahlabs/biodatakit/pkg/compat"
)

// NewCompatCmd creates the "compat" subcommand.
func NewCompatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compat <profile-a.yaml> <profile-b.yaml>",
		Short: "Assess pairwise compatibility of two profiles",
		Args:  cobra.ExactArgs(2),
		RunE:  runCompat,
	}

	cmd.Flags().Bool("json", false, "Emit the verdict as JSON")

	return cmd
}

func runCompat(cmd *cobra.Command, args []string) error {
	cfg, err := LoadConfig()
	if err != nil {
		return exitError(exitUsage, "%v", err)
	}
	logger := newLogger(cmd.ErrOrStderr(), cfg)

	a, err := loadProfile(args[0])
	if err != nil {
		return err
	}
	b, err := loadProfile(args[1])
	if err != nil {
		return err
	}

	logger.Debug("assessing compatibility", "a", args[0], "b", args[1])

	verdict, err := biodata.New().AssessCompatibility(a, b)
	if err != nil {
		return exitError(exitUsage, "%v", err)
	}

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if err := enc.Encode(verdict); err != nil {
			return exitError(exitUsage, "encoding verdict: %v", err)
		}
	} else {
		printVerdict(cmd, verdict)
	}

	if !verdict.IsCompatible {
		return exitError(exitInvalid, "profiles are incompatible (%d hard conflicts)", len(verdict.Incompatibilities))
	}
	return nil
}

func printVerdict(cmd *cobra.Command, verdict compat.Verdict) {
	out := cmd.OutOrStdout()
	if verdict.IsCompatible {
		fmt.Fprintln(out, "profiles are compatible")
	} else {
		fmt.Fprintln(out, "profiles are incompatible")
	}
	for _, msg := range verdict.Incompatibilities {
		fmt.Fprintf(out, "  conflict  %s\n", msg)
	}
	for _, msg := range verdict.Warnings {
		fmt.Fprintf(out, "  warn      %s\n", msg)
	}
}
