package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoNanoID/GoNanoID/nanoid"
)

func testConfigPath(t *testing.T) string {
	t.Helper()

	// Get the project root by going up from internal/config
	projectRoot, err := filepath.Abs("../../")
	if err != nil {
		t.Fatalf("failed to get project root: %v", err)
	}

	return filepath.Join(projectRoot, "etc") + string(filepath.Separator)
}

func TestReadConfig(t *testing.T) {
	cfg, err := ReadConfig(testConfigPath(t))
	if err != nil {
		t.Fatalf("ReadConfig() error = %v", err)
	}

	// Test basic config fields
	if cfg.Title == "" {
		t.Error("Config.Title should not be empty")
	}

	if cfg.Webserver.Port == 0 {
		t.Error("Webserver.Port should not be 0")
	}

	if cfg.Webserver.URL == "" {
		t.Error("Webserver.URL should not be empty")
	}

	assert.Equal(t, nanoid.SafeSymbols, cfg.Generator.Alphabet)
	assert.Equal(t, 0, cfg.Generator.Size)
	assert.Equal(t, 1024, cfg.Generator.MaxSize)
	assert.Equal(t, 1000, cfg.Generator.MaxCount)
	assert.True(t, cfg.Log.Console.Enabled)
	assert.Equal(t, "go-nanoid", cfg.Log.ServiceName)
}

func TestReadConfigMissingFile(t *testing.T) {
	_, err := ReadConfig(t.TempDir() + string(filepath.Separator))
	require.Error(t, err)
}

func TestConfigValidation(t *testing.T) {
	webserver := Webserver{
		Port: 8080,
		URL:  "http://localhost:8080",
	}

	tests := []struct {
		name    string
		config  Config
		wantErr error
	}{
		{
			name:   "valid config",
			config: Config{Webserver: webserver},
		},
		{
			name: "missing port",
			config: Config{
				Webserver: Webserver{
					Port: 0,
					URL:  "http://localhost:8080",
				},
			},
			wantErr: ErrWebServerPortCanNotBeZero,
		},
		{
			name: "missing URL",
			config: Config{
				Webserver: Webserver{
					Port: 8080,
					URL:  "",
				},
			},
			wantErr: ErrEmptyURL,
		},
		{
			name: "alphabet too large",
			config: Config{
				Webserver: webserver,
				Generator: Generator{Alphabet: strings.Repeat("a", 257)},
			},
			wantErr: ErrInvalidGeneratorAlphabet,
		},
		{
			name: "negative size",
			config: Config{
				Webserver: webserver,
				Generator: Generator{Size: -1},
			},
			wantErr: ErrInvalidGeneratorSize,
		},
		{
			name: "size above max",
			config: Config{
				Webserver: webserver,
				Generator: Generator{Size: 64, MaxSize: 32},
			},
			wantErr: ErrInvalidGeneratorSize,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate(&tt.config)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidateAppliesDefaults(t *testing.T) {
	cfg := Config{
		Webserver: Webserver{
			Port: 8080,
			URL:  "http://localhost:8080",
		},
	}

	require.NoError(t, validate(&cfg))
	assert.Equal(t, 5, cfg.Webserver.ShutDownTime)
	assert.Equal(t, nanoid.SafeSymbols, cfg.Generator.Alphabet)
	assert.Equal(t, 0, cfg.Generator.Size)
	assert.Equal(t, 1024, cfg.Generator.MaxSize)
	assert.Equal(t, 1000, cfg.Generator.MaxCount)
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, validate(&cfg))

	gen := cfg.Generator.NanoIDGenerator()
	assert.Equal(t, nanoid.StrategyFast, gen.Strategy())

	id, err := gen.Generate()
	require.NoError(t, err)
	assert.Len(t, id, nanoid.DefaultSize)

	assert.Equal(t, "go-nanoid", cfg.Log.AppName)
	assert.Equal(t, "go-nanoid", cfg.Log.ServiceName)
	assert.True(t, cfg.Log.Console.Enabled)
}

func TestReadConfigWithoutTrailingSeparator(t *testing.T) {
	cfg, err := ReadConfig(strings.TrimSuffix(testConfigPath(t), string(filepath.Separator)))
	require.NoError(t, err)
	assert.Equal(t, "GoNanoID", cfg.Title)
}

func TestReadConfigWithJSONOverride(t *testing.T) {
	// Set JSON override environment variable
	jsonOverride := `{"Title":"Test Override","Webserver":{"Port":9090},"Generator":{"Alphabet":"0123456789","Size":8}}`
	t.Setenv(EnvConfigJSON, jsonOverride)

	cfg, err := ReadConfig(testConfigPath(t))
	if err != nil {
		t.Fatalf("ReadConfig() error = %v", err)
	}

	if cfg.Title != "Test Override" {
		t.Errorf("Title = %v, want %v", cfg.Title, "Test Override")
	}

	if cfg.Webserver.Port != 9090 {
		t.Errorf("Webserver.Port = %v, want %v", cfg.Webserver.Port, 9090)
	}

	assert.Equal(t, "0123456789", cfg.Generator.Alphabet)
	assert.Equal(t, 8, cfg.Generator.Size)
	assert.Equal(t, nanoid.StrategyUniversal, cfg.Generator.NanoIDGenerator().Strategy())
}

func TestReadConfigKeepsZeroSize(t *testing.T) {
	t.Setenv(EnvConfigJSON, `{"Generator":{"Size":0}}`)

	cfg, err := ReadConfig(testConfigPath(t))
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.Generator.Size)

	id, err := cfg.Generator.NanoIDGenerator().Generate()
	require.NoError(t, err)
	assert.Empty(t, id)
}

func TestReadConfigSizeMissingInFile(t *testing.T) {
	dir := t.TempDir()
	content := "Title = \"t\"\n[Webserver]\nPort = 1\nURL = \"http://localhost:1\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "main.toml"), []byte(content), 0o600))

	cfg, err := ReadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, nanoid.DefaultSize, cfg.Generator.Size)
}

func TestReadConfigWithBrokenJSONOverride(t *testing.T) {
	t.Setenv(EnvConfigJSON, `{"Title":`)

	_, err := ReadConfig(testConfigPath(t))
	require.Error(t, err)
}

func TestDumpConfig(t *testing.T) {
	cfg := Default()
	cfg.Title = "Test"

	tomlStr, err := DumpConfig(&cfg)
	if err != nil {
		t.Fatalf("DumpConfig() error = %v", err)
	}

	if tomlStr == "" {
		t.Error("DumpConfig() returned empty string")
	}

	// Check if output contains expected values
	if !strings.Contains(tomlStr, "Test") {
		t.Error("DumpConfig() output should contain Title")
	}

	assert.Contains(t, tomlStr, nanoid.SafeSymbols)
}

func TestDumpConfigJSON(t *testing.T) {
	cfg := Default()
	cfg.Title = "Test"

	jsonStr, err := DumpConfigJSON(&cfg)
	if err != nil {
		t.Fatalf("DumpConfigJSON() error = %v", err)
	}

	if jsonStr == "" {
		t.Error("DumpConfigJSON() returned empty string")
	}

	// Check if output is valid JSON by checking for expected fields
	if !strings.Contains(jsonStr, "Test") {
		t.Error("DumpConfigJSON() output should contain Title")
	}
}
