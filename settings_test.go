package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T) *ConfigManager {
	t.Helper()
	cm := NewConfigManager(filepath.Join(t.TempDir(), "config.json"), nil)
	t.Cleanup(cm.Cleanup)
	return cm
}

func TestDefaultConfigIsValid(t *testing.T) {
	assert.NoError(t, validateConfig(DefaultConfig()))
}

func TestLoadConfigCreatesDefault(t *testing.T) {
	cm := newTestManager(t)

	config, err := cm.LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "dark", config.App.Theme)

	// Файл должен появиться на диске
	_, err = os.Stat(config.ConfigPath)
	assert.NoError(t, err)
}

func TestSaveAndReloadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	cm := NewConfigManager(path, nil)
	_, err := cm.LoadConfig()
	require.NoError(t, err)

	require.NoError(t, cm.UpdateConfig(func(c *Config) {
		c.Browser.ShowHiddenFiles = true
		c.Browser.SortBy = "size"
	}))
	cm.Cleanup()

	fresh := NewConfigManager(path, nil)
	defer fresh.Cleanup()
	reloaded, err := fresh.LoadConfig()
	require.NoError(t, err)

	assert.True(t, reloaded.Browser.ShowHiddenFiles)
	assert.Equal(t, "size", reloaded.Browser.SortBy)
}

func TestLoadConfigRejectsInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"app":{"theme":"neon","window_width":1200,"window_height":700,"log_level":"info"}}`), 0644))

	cm := NewConfigManager(path, nil)
	defer cm.Cleanup()

	_, err := cm.LoadConfig()
	assert.Error(t, err)
}

// Components hold the *Config pointer from construction time, so a hot
// reload must update the struct in place rather than swap the pointer.
func TestReloadFromDiskUpdatesConfigInPlace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	cm := NewConfigManager(path, nil)
	defer cm.Cleanup()

	config, err := cm.LoadConfig()
	require.NoError(t, err)
	require.False(t, config.Browser.ShowHiddenFiles)

	changed := DefaultConfig()
	changed.Browser.ShowHiddenFiles = true
	changed.App.Theme = "light"
	data, err := json.Marshal(changed)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0644))

	cm.reloadFromDisk()

	// The pointer obtained at load time must see the new values
	assert.True(t, config.Browser.ShowHiddenFiles)
	assert.Equal(t, "light", config.App.Theme)
	assert.Same(t, config, cm.GetConfig())
}

// An invalid external edit is ignored and current settings stay in force.
func TestReloadFromDiskIgnoresInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	cm := NewConfigManager(path, nil)
	defer cm.Cleanup()

	config, err := cm.LoadConfig()
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte(`{"app":{"theme":"neon"}}`), 0644))
	cm.reloadFromDisk()

	assert.Equal(t, "dark", config.App.Theme)
}

// Hot reload must be armed on the very first run too, when LoadConfig
// takes the create-default branch.
func TestLoadConfigWatchesOnFirstRun(t *testing.T) {
	cm := newTestManager(t)

	_, err := cm.LoadConfig()
	require.NoError(t, err)

	assert.NotNil(t, cm.watcher)
}

func TestAddRecentLocationDeduplicatesAndCaps(t *testing.T) {
	cm := newTestManager(t)
	_, err := cm.LoadConfig()
	require.NoError(t, err)

	cm.AddRecentLocation("/tmp/a")
	cm.AddRecentLocation("/tmp/b")
	cm.AddRecentLocation("/tmp/a")

	recent := cm.GetConfig().App.RecentLocations
	assert.Equal(t, []string{"/tmp/a", "/tmp/b"}, recent)

	for i := 0; i < 15; i++ {
		cm.AddRecentLocation(filepath.Join("/tmp", string(rune('c'+i))))
	}
	assert.Len(t, cm.GetConfig().App.RecentLocations, 10)
}
