package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"adaptctl/pkg/adaptation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// Helper function to create a temporary config file
func createTempConfigFile(t *testing.T, dir string, content AdaptctlConfig) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0755))
	tempFilePath := filepath.Join(dir, configFileName)
	data, err := yaml.Marshal(&content)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(tempFilePath, data, 0644))
	return tempFilePath
}

// mockConfigPaths points the user and project layers at userDir and
// projectDir for the duration of the test.
func mockConfigPaths(t *testing.T, userDir, projectDir string) {
	t.Helper()
	originalGetUserConfigPath := getUserConfigPath
	originalGetProjectConfigPath := getProjectConfigPath
	t.Cleanup(func() {
		getUserConfigPath = originalGetUserConfigPath
		getProjectConfigPath = originalGetProjectConfigPath
	})

	getUserConfigPath = func() (string, error) {
		return filepath.Join(userDir, configFileName), nil
	}
	getProjectConfigPath = func() (string, error) {
		return filepath.Join(projectDir, configFileName), nil
	}
}

func TestLoadConfig_DefaultOnly(t *testing.T) {
	tempDir := t.TempDir()
	mockConfigPaths(t, filepath.Join(tempDir, "user"), filepath.Join(tempDir, "project"))

	loadedConfig, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, GetDefaultConfig(), loadedConfig)
}

func TestLoadConfig_UserOverride(t *testing.T) {
	tempDir := t.TempDir()
	userDir := filepath.Join(tempDir, "user")
	mockConfigPaths(t, userDir, filepath.Join(tempDir, "project"))

	createTempConfigFile(t, userDir, AdaptctlConfig{
		Catalogs: []string{"plugs.yaml"},
		LogLevel: "debug",
	})

	loadedConfig, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "debug", loadedConfig.LogLevel)
	assert.Equal(t, OutputTable, loadedConfig.Output)
	assert.Equal(t, []string{filepath.Join(userDir, "plugs.yaml")}, loadedConfig.Catalogs)
}

func TestLoadConfig_ProjectOverridesUser(t *testing.T) {
	tempDir := t.TempDir()
	userDir := filepath.Join(tempDir, "user")
	projectDir := filepath.Join(tempDir, "project")
	mockConfigPaths(t, userDir, projectDir)

	createTempConfigFile(t, userDir, AdaptctlConfig{
		Catalogs:   []string{"/shared/catalogs"},
		Output:     OutputJSON,
		RouteDepth: 3,
	})
	createTempConfigFile(t, projectDir, AdaptctlConfig{
		Catalogs: []string{"local", "/shared/catalogs"},
		Output:   OutputYAML,
	})

	loadedConfig, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, OutputYAML, loadedConfig.Output)
	assert.Equal(t, 3, loadedConfig.RouteDepth)
	assert.Equal(t, []string{"/shared/catalogs", filepath.Join(projectDir, "local")}, loadedConfig.Catalogs)
}

func TestLoadConfig_MalformedYAML(t *testing.T) {
	tempDir := t.TempDir()
	projectDir := filepath.Join(tempDir, "project")
	mockConfigPaths(t, filepath.Join(tempDir, "user"), projectDir)

	require.NoError(t, os.MkdirAll(projectDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(projectDir, configFileName), []byte("catalogs: [unterminated"), 0644))

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error loading project config")
}

func TestLoadConfig_InvalidValues(t *testing.T) {
	tempDir := t.TempDir()
	userDir := filepath.Join(tempDir, "user")
	mockConfigPaths(t, userDir, filepath.Join(tempDir, "project"))

	createTempConfigFile(t, userDir, AdaptctlConfig{LogLevel: "chatty", Output: "xml"})

	_, err := LoadConfig()
	require.Error(t, err)

	var verrs adaptation.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	require.Len(t, verrs, 2)
	assert.Equal(t, "logLevel", verrs[0].Field)
	assert.Equal(t, "output", verrs[1].Field)
}

func TestLoadConfig_UnknownHomeDir(t *testing.T) {
	tempDir := t.TempDir()

	originalOsUserHomeDir := osUserHomeDir
	originalGetProjectConfigPath := getProjectConfigPath
	t.Cleanup(func() {
		osUserHomeDir = originalOsUserHomeDir
		getProjectConfigPath = originalGetProjectConfigPath
	})
	osUserHomeDir = func() (string, error) { return "", errors.New("no home") }
	getProjectConfigPath = func() (string, error) {
		return filepath.Join(tempDir, configFileName), nil
	}

	loadedConfig, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, GetDefaultConfig(), loadedConfig)

	_, err = GetUserConfigDir()
	assert.Error(t, err)
}

func TestLoadConfigFromPath(t *testing.T) {
	dir := t.TempDir()
	createTempConfigFile(t, dir, AdaptctlConfig{Catalogs: []string{"catalogs"}, LogLevel: "warn"})

	loadedConfig, err := LoadConfigFromPath(dir)
	require.NoError(t, err)
	assert.Equal(t, "warn", loadedConfig.LogLevel)
	assert.Equal(t, []string{filepath.Join(dir, "catalogs")}, loadedConfig.Catalogs)

	_, err = LoadConfigFromPath(filepath.Join(dir, "missing"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestGetUserConfigDir(t *testing.T) {
	originalOsUserHomeDir := osUserHomeDir
	t.Cleanup(func() { osUserHomeDir = originalOsUserHomeDir })
	osUserHomeDir = func() (string, error) { return "/home/tester", nil }

	dir, err := GetUserConfigDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/home/tester", ".config", "adaptctl"), dir)
}
