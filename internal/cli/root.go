// Package cli implements the biodatacheck command tree: profile validation,
// pairwise compatibility assessment, and composed-schema inspection on top
// of the biodata engine. It contains no domain logic of its own.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vivahlabs/biodatakit/pkg/profile"
	"github.com/vivahlabs/biodatakit/pkg/region"
)

// ExitError carries a specific process exit code back to main.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string {
	return e.Message
}

func exitError(code int, format string, args ...any) *ExitError {
	return &ExitError{Code: code, Message: fmt.Sprintf(format, args...)}
}

const (
	exitSuccess    = 0
	exitInvalid    = 1
	exitUsage      = 2
	exitFileAccess = 3
)

// NewRootCmd wires the full command tree. Each call builds a fresh tree so
// tests stay isolated.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "biodatacheck",
		Short:         "Validate biodata profiles and assess pairwise compatibility",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(NewValidateCmd())
	root.AddCommand(NewCompatCmd())
	root.AddCommand(NewSchemaCmd())
	return root
}

// loadProfile reads one profile from a YAML (or JSON, a YAML subset) file.
func loadProfile(path string) (*profile.Profile, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, exitError(exitFileAccess, "reading %s: %v", path, err)
	}
	var p profile.Profile
	if err := yaml.Unmarshal(content, &p); err != nil {
		return nil, exitError(exitUsage, "parsing %s: %v", path, err)
	}
	return &p, nil
}

// resolveRegion turns the --region flag into a key. Strict mode rejects
// unknown keys; otherwise the engine's fail-open default applies.
func resolveRegion(raw string, strict bool) (region.Key, error) {
	if strict {
		key, err := region.ParseKey(raw)
		if err != nil {
			return "", exitError(exitUsage, "%v", err)
		}
		return key, nil
	}
	return region.Key(raw), nil
}
