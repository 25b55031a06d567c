package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vivahlabs/biodatakit/pkg/biodata"
	"github.com/vivahlabs/biodatakit/pkg/i18n"
	"github.com/vivahlabs/biodatakit/pkg/validator"
)

// NewValidateCmd creates the "validate" subcommand.
func NewValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <profile.yaml>",
		Short: "Validate a profile under a regional rule set",
		Args:  cobra.ExactArgs(1),
		RunE:  runValidate,
	}

	cmd.Flags().StringP("region", "r", "", "Region key (default: BIODATACHECK_DEFAULT_REGION)")
	cmd.Flags().Bool("strict-region", false, "Reject unknown region keys instead of falling back to default rules")
	cmd.Flags().StringP("lang", "l", "", "Message language (default: BIODATACHECK_LANG)")
	cmd.Flags().Bool("json", false, "Emit the result as JSON")

	return cmd
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := LoadConfig()
	if err != nil {
		return exitError(exitUsage, "%v", err)
	}
	logger := newLogger(cmd.ErrOrStderr(), cfg)

	rawRegion, _ := cmd.Flags().GetString("region")
	if rawRegion == "" {
		rawRegion = cfg.DefaultRegion
	}
	strict, _ := cmd.Flags().GetBool("strict-region")
	key, err := resolveRegion(rawRegion, strict)
	if err != nil {
		return err
	}

	lang, _ := cmd.Flags().GetString("lang")
	if lang == "" {
		lang = cfg.Language
	}
	translator, err := i18n.New()
	if err != nil {
		return exitError(exitUsage, "loading translations: %v", err)
	}
	lang = translator.Match(lang)

	p, err := loadProfile(args[0])
	if err != nil {
		return err
	}

	logger.Debug("validating profile", "file", args[0], "region", key, "lang", lang)

	result, err := biodata.New().Validate(p, key)
	if err != nil {
		return exitError(exitUsage, "%v", err)
	}
	localize(&result, translator, lang)

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			return exitError(exitUsage, "encoding result: %v", err)
		}
	} else {
		printResult(cmd, result)
	}

	if !result.IsValid {
		return exitError(exitInvalid, "profile is invalid (%d errors)", len(result.Errors))
	}
	return nil
}

// localize rewrites error messages in place. Errors without a translation
// key keep their original text.
func localize(result *biodata.Result, tr *i18n.Translator, lang string) {
	if lang == i18n.DefaultLanguage {
		return
	}
	for i, e := range result.Errors {
		result.Errors[i].Message = tr.TranslateError(lang, validator.ValidationError{
			Field:             e.Field,
			Message:           e.Message,
			TranslationKey:    e.TranslationKey,
			TranslationValues: e.TranslationValues,
		})
	}
}

func printResult(cmd *cobra.Command, result biodata.Result) {
	out := cmd.OutOrStdout()
	if result.IsValid {
		fmt.Fprintln(out, "profile is valid")
	} else {
		fmt.Fprintf(out, "profile is invalid (%d errors)\n", len(result.Errors))
	}
	for _, e := range result.Errors {
		fmt.Fprintf(out, "  error  %s: %s\n", e.Field, e.Message)
	}
	for _, w := range result.Warnings {
		fmt.Fprintf(out, "  warn   %s\n", w)
	}
}
