package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danieljhkim/regreset/internal/config"
	"github.com/danieljhkim/regreset/internal/regkey"
)

const testKeyPath = `Software\Sybase\PowerBuilder\2019\Workspace`

// setupTestEnv points settings at a temp dir and swaps the registry for an
// in-memory one shared across commands of the test.
func setupTestEnv(t *testing.T) *regkey.MemRegistry {
	t.Helper()

	t.Setenv(config.EnvRoot, t.TempDir())
	t.Setenv(config.EnvVersion, "")

	reg := regkey.NewMemRegistry()
	oldRegistry := newRegistry
	newRegistry = func() regkey.Registry { return reg }

	oldConfirm := confirm
	confirm = func(string) (bool, error) {
		t.Fatal("unexpected confirmation prompt")
		return false, nil
	}

	t.Cleanup(func() {
		newRegistry = oldRegistry
		confirm = oldConfirm
	})
	return reg
}

// answerConfirm makes the confirmation prompt return answer and records the labels.
func answerConfirm(t *testing.T, answer bool) *[]string {
	t.Helper()
	var labels []string
	confirm = func(label string) (bool, error) {
		labels = append(labels, label)
		return answer, nil
	}
	return &labels
}

func seed(reg *regkey.MemRegistry, keyPath string, names ...string) {
	reg.CreateKey(keyPath)
	for _, n := range names {
		reg.CreateKey(regkey.JoinPath(keyPath, n))
	}
}

// execute runs the root command with args and captures both streams.
func execute(args ...string) (string, string, error) {
	resetFlags(rootCmd)

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), errOut.String(), err
}

// resetFlags restores every flag to its default so package-level flag
// variables do not leak between executions.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func TestFormatJSON(t *testing.T) {
	tests := []struct {
		name  string
		input interface{}
	}{
		{"simple map", map[string]string{"key": "value"}},
		{"empty map", map[string]string{}},
		{"array", []string{"a", "b", "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := formatJSON(tt.input)
			require.NoError(t, err)
			assert.True(t, json.Valid([]byte(got)))
		})
	}
}

func TestFormatError(t *testing.T) {
	got := FormatError(os.ErrNotExist)
	assert.Contains(t, got, "Error:")
	assert.Contains(t, got, os.ErrNotExist.Error())
}

func TestOutputJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, outputJSON(&buf, map[string]string{"test": "value"}))

	var result map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
	assert.Equal(t, "value", result["test"])
}

func TestPluralize(t *testing.T) {
	assert.Equal(t, "1 entry", pluralize(1, "entry", "entries"))
	assert.Equal(t, "0 entries", pluralize(0, "entry", "entries"))
	assert.Equal(t, "3 entries", pluralize(3, "entry", "entries"))
}

func TestRegistryDisplayPath(t *testing.T) {
	assert.Equal(t, `HKEY_CURRENT_USER\`+testKeyPath, registryDisplayPath(testKeyPath))
}

func TestPrinter_TableSkipsEmptyRows(t *testing.T) {
	var buf bytes.Buffer
	p := &printer{out: &buf, err: &buf}

	p.Table([]string{"A"}, nil)
	assert.Empty(t, buf.String())

	p.Table([]string{"Key Name", "Workspace Path"}, [][]string{{"C:$a.pbw", `C:\a.pbw`}})
	assert.Contains(t, buf.String(), "Key Name")
	assert.Contains(t, buf.String(), `C:\a.pbw`)
}

func TestNewLogger(t *testing.T) {
	assert.NotNil(t, newLogger(false))
	assert.NotNil(t, newLogger(true))
}
