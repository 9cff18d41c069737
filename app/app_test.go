package app_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoNanoID/GoNanoID/app"
	"github.com/GoNanoID/GoNanoID/internal/config"
	"github.com/GoNanoID/GoNanoID/nanoid"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out, errOut bytes.Buffer

	cmd := app.NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return out.String(), err
}

func TestGenerate(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "universal with fixed sequence",
			args: []string{"generate", "-a", "abc", "-s", "4", "--sequence", "2,255,0,1"},
			want: "cabc\n",
		},
		{
			name: "fast with fixed sequence",
			args: []string{"generate", "-a", "abcd", "-s", "4", "--sequence", "0,1,2,3"},
			want: "abcd\n",
		},
		{
			name: "sequence continues across ids",
			args: []string{"gen", "-a", "abcd", "-s", "2", "-c", "3", "--sequence", "0, 1, 2, 3"},
			want: "ab\ncd\nab\n",
		},
		{
			name: "zero size",
			args: []string{"generate", "-s", "0", "-c", "2"},
			want: "\n\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestGenerateDefaults(t *testing.T) {
	out, err := run(t, "generate", "-c", "5")
	require.NoError(t, err)

	ids := strings.Fields(out)
	require.Len(t, ids, 5)

	for _, id := range ids {
		assert.Len(t, id, nanoid.DefaultSize)

		for _, r := range id {
			assert.Contains(t, nanoid.SafeSymbols, string(r))
		}
	}
}

func TestGenerateNonSecure(t *testing.T) {
	out, err := run(t, "generate", "--non-secure", "-s", "12", "-a", "01")
	require.NoError(t, err)

	id := strings.TrimSpace(out)
	assert.Len(t, id, 12)
	assert.Empty(t, strings.Trim(id, "01"))
}

func TestGenerateFromEnv(t *testing.T) {
	t.Setenv("NANOID_SIZE", "8")
	t.Setenv("NANOID_ALPHABET", "xy")

	out, err := run(t, "generate")
	require.NoError(t, err)

	id := strings.TrimSpace(out)
	assert.Len(t, id, 8)
	assert.Empty(t, strings.Trim(id, "xy"))
}

func TestGenerateFlagBeatsEnv(t *testing.T) {
	t.Setenv("NANOID_SIZE", "8")

	out, err := run(t, "generate", "-s", "3")
	require.NoError(t, err)
	assert.Len(t, strings.TrimSpace(out), 3)
}

func TestGenerateFromConfigFile(t *testing.T) {
	t.Setenv(config.EnvConfigJSON, `{"Generator":{"Size":7,"Alphabet":"ab"}}`)

	out, err := run(t, "--config", "../etc", "generate")
	require.NoError(t, err)

	id := strings.TrimSpace(out)
	assert.Len(t, id, 7)
	assert.Empty(t, strings.Trim(id, "ab"))
}

func TestGenerateErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "alphabet too long", args: []string{"generate", "-a", strings.Repeat("x", 257)}},
		{name: "negative size", args: []string{"generate", "-s=-1"}},
		{name: "size over limit", args: []string{"generate", "-s", "1025"}},
		{name: "zero count", args: []string{"generate", "-c", "0"}},
		{name: "bad sequence", args: []string{"generate", "--sequence", "1,300"}},
		{name: "missing config", args: []string{"--config", "./does-not-exist", "generate"}},
		{name: "bad log level", args: []string{"--log-level", "loud", "generate"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, tt.args...)
			require.Error(t, err)
			assert.Empty(t, out)
		})
	}
}

func TestConfigDump(t *testing.T) {
	out, err := run(t, "config", "dump")
	require.NoError(t, err)
	assert.Contains(t, out, `Title = "GoNanoID"`)
	assert.Contains(t, out, "[Generator]")

	out, err = run(t, "config", "dump", "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"Title": "GoNanoID"`)
	assert.Contains(t, out, `"MaxCount": 1000`)
}

func TestConfigDumpFromFile(t *testing.T) {
	out, err := run(t, "--config", "../etc/", "config", "dump", "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"AppName": "go-nanoid"`)
}
