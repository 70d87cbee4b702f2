//go:build e2e

package test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kgossett/asset-sweeper/pkg/config"
	"github.com/kgossett/asset-sweeper/pkg/dependencies"
	"github.com/kgossett/asset-sweeper/pkg/sweeper"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// TestSetup holds the test environment setup
type TestSetup struct {
	TempDir     string
	ConfigPath  string
	ProjectPath string
	StagingDir  string
}

// setupTestEnvironment creates a temporary test environment with a small
// but complete project tree and a config file pointing at it.
func setupTestEnvironment(t *testing.T) *TestSetup {
	t.Helper()

	tempDir, err := os.MkdirTemp("", "asw-e2e-test-*")
	require.NoError(t, err)

	projectPath := filepath.Join(tempDir, "MyProject")
	stagingDir := filepath.Join(tempDir, "staging")
	require.NoError(t, os.MkdirAll(projectPath, 0o755))

	testConfig := config.DefaultConfig()
	testConfig.StagingDir = stagingDir

	configPath := filepath.Join(tempDir, "config.yaml")
	configData, err := yaml.Marshal(testConfig)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(configPath, configData, 0o644))

	setup := &TestSetup{
		TempDir:     tempDir,
		ConfigPath:  configPath,
		ProjectPath: projectPath,
		StagingDir:  stagingDir,
	}
	writeFixtureProject(t, setup)
	return setup
}

// cleanupTestEnvironment removes the temporary test environment
func cleanupTestEnvironment(t *testing.T, setup *TestSetup) {
	t.Helper()
	if setup != nil && setup.TempDir != "" {
		require.NoError(t, os.RemoveAll(setup.TempDir))
	}
}

// writeFixtureProject lays out a project where Hero.png is referenced from
// map data and Orphan.png is referenced by nothing.
func writeFixtureProject(t *testing.T, setup *TestSetup) {
	t.Helper()

	writeProjectFile(t, setup.ProjectPath, "index.html", []byte("<html></html>"))
	writeProjectFile(t, setup.ProjectPath, "data/Map001.json",
		[]byte(`{"events":[{"pages":[{"image":{"characterName":"Hero"}}]}]}`))
	writeProjectFile(t, setup.ProjectPath, "js/main.js", []byte("// boot"))
	writeProjectFile(t, setup.ProjectPath, "js/plugins.js",
		[]byte("var $plugins = [];"))
	writeProjectFile(t, setup.ProjectPath, "img/characters/Hero.png", []byte("png"))
	writeProjectFile(t, setup.ProjectPath, "img/pictures/Orphan.png", []byte("png"))
	writeProjectFile(t, setup.ProjectPath, ".git/config", []byte("[core]"))
}

func writeProjectFile(t *testing.T, root, relPath string, content []byte) {
	t.Helper()
	fullPath := filepath.Join(root, filepath.FromSlash(relPath))
	require.NoError(t, os.MkdirAll(filepath.Dir(fullPath), 0o755))
	require.NoError(t, os.WriteFile(fullPath, content, 0o644))
}

// newE2ESweeper creates an AssetSweeper wired against the test config.
func newE2ESweeper(t *testing.T, setup *TestSetup) sweeper.AssetSweeper {
	t.Helper()

	instance, err := sweeper.NewAssetSweeper(sweeper.NewAssetSweeperParams{
		Dependencies: dependencies.New().
			WithConfig(config.NewManager(setup.ConfigPath)),
	})
	require.NoError(t, err)
	return instance
}

func fileExists(t *testing.T, path string) bool {
	t.Helper()
	_, err := os.Stat(path)
	if err == nil {
		return true
	}
	require.True(t, os.IsNotExist(err))
	return false
}
