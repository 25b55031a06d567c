package cli_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vivahlabs/biodatakit/internal/cli"
)

// executeCommand runs a fresh command tree so flag state never leaks
// between tests.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	root := cli.NewRootCmd()
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)

	err := root.Execute()
	return buf.String(), err
}

const validProfileYAML = `personal:
  name: Asha Verma
  age: 28
  gender: female
  date_of_birth: "1998-03-14"
  religion: hindu
  mother_tongue: hindi
contact:
  email: asha@example.com
  phone: "9876543210"
  city: Pune
  country: India
lifestyle:
  diet: vegetarian
  smoking: never
  drinking: never
education:
  - level: bachelors
    percentage: 72
`

const underageProfileYAML = `personal:
  name: Ravi Kumar
  age: 17
  gender: male
  date_of_birth: "2009-01-02"
  religion: hindu
  mother_tongue: hindi
contact:
  email: ravi@example.com
  phone: "9876500000"
  city: Delhi
  country: India
lifestyle:
  diet: non_vegetarian
  smoking: never
  drinking: never
education:
  - level: secondary
    grade: B
`

func writeProfile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestValidateCmd(t *testing.T) {
	t.Run("valid profile", func(t *testing.T) {
		path := writeProfile(t, "asha.yaml", validProfileYAML)

		out, err := executeCommand(t, "validate", path)
		require.NoError(t, err)
		assert.Contains(t, out, "profile is valid")
	})

	t.Run("invalid profile exits with code 1", func(t *testing.T) {
		path := writeProfile(t, "ravi.yaml", underageProfileYAML)

		out, err := executeCommand(t, "validate", path)
		require.Error(t, err)

		var exitErr *cli.ExitError
		require.ErrorAs(t, err, &exitErr)
		assert.Equal(t, 1, exitErr.Code)
		assert.Contains(t, out, "personal.age")
	})

	t.Run("json output", func(t *testing.T) {
		path := writeProfile(t, "ravi.yaml", underageProfileYAML)

		out, err := executeCommand(t, "validate", "--json", path)
		require.Error(t, err)

		var result struct {
			IsValid bool `json:"is_valid"`
			Errors  []struct {
				Field   string `json:"field"`
				Message string `json:"message"`
			} `json:"errors"`
		}
		require.NoError(t, json.Unmarshal([]byte(out), &result))
		assert.False(t, result.IsValid)
		require.NotEmpty(t, result.Errors)
		assert.Equal(t, "personal.age", result.Errors[0].Field)
	})

	t.Run("hindi messages", func(t *testing.T) {
		path := writeProfile(t, "ravi.yaml", underageProfileYAML)

		out, err := executeCommand(t, "validate", "--lang", "hi", path)
		require.Error(t, err)
		assert.Contains(t, out, "personal.age")
		assert.Contains(t, out, "कम से कम", "messages should come from the hindi catalog")
	})

	t.Run("missing file exits with code 3", func(t *testing.T) {
		_, err := executeCommand(t, "validate", filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)

		var exitErr *cli.ExitError
		require.ErrorAs(t, err, &exitErr)
		assert.Equal(t, 3, exitErr.Code)
	})

	t.Run("strict region rejects unknown keys", func(t *testing.T) {
		path := writeProfile(t, "asha.yaml", validProfileYAML)

		_, err := executeCommand(t, "validate", "--region", "atlantis", "--strict-region", path)
		require.Error(t, err)

		var exitErr *cli.ExitError
		require.ErrorAs(t, err, &exitErr)
		assert.Equal(t, 2, exitErr.Code)
	})

	t.Run("unknown region falls back to defaults", func(t *testing.T) {
		path := writeProfile(t, "asha.yaml", validProfileYAML)

		out, err := executeCommand(t, "validate", "--region", "atlantis", path)
		require.NoError(t, err)
		assert.Contains(t, out, "profile is valid")
	})
}

func TestCompatCmd(t *testing.T) {
	t.Run("compatible pair", func(t *testing.T) {
		a := writeProfile(t, "a.yaml", validProfileYAML)
		b := writeProfile(t, "b.yaml", validProfileYAML)

		out, err := executeCommand(t, "compat", a, b)
		require.NoError(t, err)
		assert.Contains(t, out, "profiles are compatible")
	})

	t.Run("diet mismatch exits with code 1", func(t *testing.T) {
		a := writeProfile(t, "a.yaml", validProfileYAML)
		b := writeProfile(t, "b.yaml", underageProfileYAML)

		out, err := executeCommand(t, "compat", a, b)
		require.Error(t, err)

		var exitErr *cli.ExitError
		require.ErrorAs(t, err, &exitErr)
		assert.Equal(t, 1, exitErr.Code)
		assert.Contains(t, out, "dietary preferences differ")
	})

	t.Run("json output", func(t *testing.T) {
		a := writeProfile(t, "a.yaml", validProfileYAML)
		b := writeProfile(t, "b.yaml", validProfileYAML)

		out, err := executeCommand(t, "compat", "--json", a, b)
		require.NoError(t, err)

		var verdict struct {
			IsCompatible bool `json:"is_compatible"`
		}
		require.NoError(t, json.Unmarshal([]byte(out), &verdict))
		assert.True(t, verdict.IsCompatible)
	})
}

func TestSchemaCmd(t *testing.T) {
	t.Run("default region yaml", func(t *testing.T) {
		out, err := executeCommand(t, "schema")
		require.NoError(t, err)
		assert.Contains(t, out, "personal.name")
		assert.NotContains(t, out, "personal.caste")
	})

	t.Run("regional fragment appears", func(t *testing.T) {
		out, err := executeCommand(t, "schema", "--region", "north_indian")
		require.NoError(t, err)
		assert.Contains(t, out, "personal.caste")
		assert.Contains(t, out, "personal.gotra")
	})

	t.Run("json format", func(t *testing.T) {
		out, err := executeCommand(t, "schema", "--region", "muslim", "--format", "json")
		require.NoError(t, err)

		var fields []struct {
			Name string `json:"name"`
		}
		require.NoError(t, json.Unmarshal([]byte(out), &fields))

		names := make([]string, len(fields))
		for i, f := range fields {
			names[i] = f.Name
		}
		assert.Contains(t, names, "personal.sect")
	})

	t.Run("unknown format exits with code 2", func(t *testing.T) {
		_, err := executeCommand(t, "schema", "--format", "toml")
		require.Error(t, err)

		var exitErr *cli.ExitError
		require.ErrorAs(t, err, &exitErr)
		assert.Equal(t, 2, exitErr.Code)
	})
}
