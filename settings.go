package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"nimbusExplorer/explorer"
)

// Config - главная структура настроек приложения
type Config struct {
	// Метаданные конфигурации
	Version      string    `json:"version"`
	LastModified time.Time `json:"last_modified"`
	ConfigPath   string    `json:"-"` // Не сохраняется в JSON

	// Основные настройки приложения
	App AppConfig `json:"app"`

	// Настройки списка файлов
	Browser BrowserConfig `json:"browser"`

	// Настройки панели предпросмотра
	Preview PreviewConfig `json:"preview"`
}

// AppConfig - основные настройки приложения
type AppConfig struct {
	Theme           string   `json:"theme"` // "dark", "light"
	WindowWidth     int      `json:"window_width"`
	WindowHeight    int      `json:"window_height"`
	WindowMaximized bool     `json:"window_maximized"`
	StartPath       string   `json:"start_path"` // пусто = домашняя директория
	RecentLocations []string `json:"recent_locations"`
	LogLevel        string   `json:"log_level"` // "debug", "info", "warn", "error"
}

// BrowserConfig - настройки списка файлов
type BrowserConfig struct {
	ShowHiddenFiles bool   `json:"show_hidden_files"`
	SortBy          string `json:"sort_by"` // "name", "type", "size", "date"
	SortAscending   bool   `json:"sort_ascending"`
	FuzzySearch     bool   `json:"fuzzy_search"`
	ShowFileSize    bool   `json:"show_file_size"`
	ConfirmDelete   bool   `json:"confirm_delete"`
	WatcherDelay    int    `json:"watcher_delay"` // в миллисекундах
}

// PreviewConfig - настройки панели предпросмотра
type PreviewConfig struct {
	IsVisible          bool  `json:"is_visible"`
	MaxTextBytes       int64 `json:"max_text_bytes"`
	MaxImageEdge       int   `json:"max_image_edge"`
	SyntaxHighlighting bool  `json:"syntax_highlighting"`
}

// Валидация настроек
var (
	validThemes    = []string{"dark", "light"}
	validSortBy    = []string{"name", "type", "size", "date"}
	validLogLevels = []string{"debug", "info", "warn", "error"}
)

// DefaultConfig возвращает конфигурацию по умолчанию
func DefaultConfig() *Config {
	return &Config{
		Version:      "1.0.0",
		LastModified: time.Now(),

		App: AppConfig{
			Theme:           "dark",
			WindowWidth:     1200,
			WindowHeight:    700,
			WindowMaximized: false,
			StartPath:       "",
			RecentLocations: []string{},
			LogLevel:        "info",
		},

		Browser: BrowserConfig{
			ShowHiddenFiles: false,
			SortBy:          explorer.SortByName.String(),
			SortAscending:   true,
			FuzzySearch:     false,
			ShowFileSize:    true,
			ConfirmDelete:   true,
			WatcherDelay:    500,
		},

		Preview: PreviewConfig{
			IsVisible:          true,
			MaxTextBytes:       64 * 1024,
			MaxImageEdge:       1024,
			SyntaxHighlighting: true,
		},
	}
}

// PreviewOptions переводит настройки предпросмотра в опции рендера
func (c *Config) PreviewOptions() explorer.PreviewOptions {
	return explorer.PreviewOptions{
		MaxTextBytes: c.Preview.MaxTextBytes,
		MaxImageEdge: c.Preview.MaxImageEdge,
	}
}

// ConfigManager - менеджер настроек
type ConfigManager struct {
	config          *Config
	configPath      string
	mutex           sync.RWMutex
	watcher         *fsnotify.Watcher
	watcherCancel   context.CancelFunc
	changeCallbacks []func(*Config)
	logger          *zap.Logger

	saveCh chan saveRequest
	saveWg sync.WaitGroup
}

type saveRequest struct {
	errCh chan error
}

// NewConfigManager создает новый менеджер настроек
func NewConfigManager(configPath string, logger *zap.Logger) *ConfigManager {
	if configPath == "" {
		configPath = filepath.Join(getConfigDirectory(), "config.json")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	manager := &ConfigManager{
		configPath:      configPath,
		changeCallbacks: []func(*Config){},
		logger:          logger,
	}
	manager.startSaveWorker()

	return manager
}

// SetLogger заменяет логгер менеджера. Нужен, когда настоящий логгер
// строится уже после загрузки конфигурации (уровень берется из нее).
func (cm *ConfigManager) SetLogger(logger *zap.Logger) {
	if logger == nil {
		return
	}
	cm.mutex.Lock()
	cm.logger = logger
	cm.mutex.Unlock()
}

// getConfigDirectory возвращает директорию конфигурации приложения
func getConfigDirectory() string {
	base, err := os.UserConfigDir()
	if err != nil {
		home, _ := os.UserHomeDir()
		base = home
	}
	return filepath.Join(base, "nimbus-explorer")
}

func (cm *ConfigManager) startSaveWorker() {
	cm.saveCh = make(chan saveRequest, 1)
	cm.saveWg.Add(1)
	go func() {
		defer cm.saveWg.Done()
		for req := range cm.saveCh {
			cm.mutex.Lock()
			err := cm.saveConfigUnsafe()
			logger := cm.logger
			cm.mutex.Unlock()
			if req.errCh != nil {
				req.errCh <- err
				close(req.errCh)
			} else if err != nil {
				logger.Warn("cannot save config", zap.Error(err))
			}
		}
	}()
}

// LoadConfig загружает настройки из файла. Если файла нет, создает
// конфигурацию по умолчанию и сразу сохраняет ее.
func (cm *ConfigManager) LoadConfig() (*Config, error) {
	cm.mutex.Lock()
	defer cm.mutex.Unlock()

	if _, err := os.Stat(cm.configPath); os.IsNotExist(err) {
		cm.config = DefaultConfig()
		cm.config.ConfigPath = cm.configPath

		if err := os.MkdirAll(filepath.Dir(cm.configPath), 0755); err != nil {
			return nil, fmt.Errorf("cannot create config directory: %w", err)
		}

		if err := cm.saveConfigUnsafe(); err != nil {
			return nil, fmt.Errorf("cannot save default config: %w", err)
		}

		cm.startWatching()

		return cm.config, nil
	}

	data, err := os.ReadFile(cm.configPath)
	if err != nil {
		return nil, fmt.Errorf("cannot read config file: %w", err)
	}

	// Начинаем с default значений, чтобы отсутствующие поля получили их
	config := DefaultConfig()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("cannot parse config file: %w", err)
	}

	config.ConfigPath = cm.configPath

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	cm.config = config

	cm.startWatching()

	return cm.config, nil
}

// SaveConfig сохраняет настройки синхронно через воркер
func (cm *ConfigManager) SaveConfig() error {
	if cm.saveCh == nil {
		return fmt.Errorf("save worker not started")
	}
	errCh := make(chan error, 1)
	cm.saveCh <- saveRequest{errCh: errCh}
	return <-errCh
}

// SaveConfigAsync ставит запрос на сохранение в очередь
func (cm *ConfigManager) SaveConfigAsync() {
	if cm.saveCh == nil {
		return
	}
	select {
	case cm.saveCh <- saveRequest{}:
	default:
		// запрос уже в очереди, не блокируемся
	}
}

// saveConfigUnsafe внутренний метод сохранения (без блокировки)
func (cm *ConfigManager) saveConfigUnsafe() error {
	if cm.config == nil {
		return fmt.Errorf("config is not loaded")
	}

	cm.config.LastModified = time.Now()

	if err := validateConfig(cm.config); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	data, err := json.MarshalIndent(cm.config, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot serialize config: %w", err)
	}

	if err := os.WriteFile(cm.configPath, data, 0644); err != nil {
		return fmt.Errorf("cannot write config file: %w", err)
	}

	return nil
}

// GetConfig возвращает текущую конфигурацию
func (cm *ConfigManager) GetConfig() *Config {
	cm.mutex.RLock()
	defer cm.mutex.RUnlock()

	if cm.config == nil {
		return DefaultConfig()
	}
	return cm.config
}

// UpdateConfig применяет изменение и сохраняет конфигурацию
func (cm *ConfigManager) UpdateConfig(updater func(*Config)) error {
	cm.mutex.Lock()

	if cm.config == nil {
		cm.config = DefaultConfig()
	}
	updater(cm.config)

	err := cm.saveConfigUnsafe()
	cm.mutex.Unlock()
	if err != nil {
		return err
	}

	cm.notifyCallbacks()
	return nil
}

// OnChange регистрирует callback на изменение конфигурации
// (как из UpdateConfig, так и при внешнем изменении файла)
func (cm *ConfigManager) OnChange(callback func(*Config)) {
	cm.mutex.Lock()
	defer cm.mutex.Unlock()
	cm.changeCallbacks = append(cm.changeCallbacks, callback)
}

func (cm *ConfigManager) notifyCallbacks() {
	cm.mutex.RLock()
	config := cm.config
	callbacks := append([]func(*Config){}, cm.changeCallbacks...)
	cm.mutex.RUnlock()

	for _, cb := range callbacks {
		cb(config)
	}
}

// startWatching следит за внешним изменением файла конфигурации
func (cm *ConfigManager) startWatching() {
	if cm.watcher != nil {
		return
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		cm.logger.Warn("cannot watch config file", zap.Error(err))
		return
	}

	if err := watcher.Add(filepath.Dir(cm.configPath)); err != nil {
		cm.logger.Warn("cannot watch config directory", zap.Error(err))
		watcher.Close()
		return
	}

	cm.watcher = watcher
	ctx, cancel := context.WithCancel(context.Background())
	cm.watcherCancel = cancel

	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Name != cm.configPath || !event.Has(fsnotify.Write) {
					continue
				}
				cm.reloadFromDisk()

			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				cm.logger.Warn("config watcher error", zap.Error(err))

			case <-ctx.Done():
				return
			}
		}
	}()
}

// reloadFromDisk перечитывает конфигурацию после внешнего изменения.
// Невалидный файл игнорируется, текущие настройки остаются в силе.
func (cm *ConfigManager) reloadFromDisk() {
	data, err := os.ReadFile(cm.configPath)
	if err != nil {
		return
	}

	config := DefaultConfig()
	if err := json.Unmarshal(data, config); err != nil {
		cm.logger.Warn("ignoring malformed config reload", zap.Error(err))
		return
	}
	if err := validateConfig(config); err != nil {
		cm.logger.Warn("ignoring invalid config reload", zap.Error(err))
		return
	}

	config.ConfigPath = cm.configPath

	cm.mutex.Lock()
	if cm.config == nil {
		cm.config = config
	} else {
		// Виджеты держат указатель на Config с момента создания,
		// поэтому обновляем структуру на месте, не подменяя указатель
		*cm.config = *config
	}
	cm.mutex.Unlock()

	cm.logger.Info("config reloaded from disk")
	cm.notifyCallbacks()
}

// validateConfig проверяет значения настроек
func validateConfig(config *Config) error {
	if !contains(validThemes, config.App.Theme) {
		return fmt.Errorf("unknown theme: %s", config.App.Theme)
	}
	if !contains(validLogLevels, config.App.LogLevel) {
		return fmt.Errorf("unknown log level: %s", config.App.LogLevel)
	}
	if !contains(validSortBy, config.Browser.SortBy) {
		return fmt.Errorf("unknown sort key: %s", config.Browser.SortBy)
	}
	if config.App.WindowWidth < 400 || config.App.WindowHeight < 300 {
		return fmt.Errorf("window size too small: %dx%d",
			config.App.WindowWidth, config.App.WindowHeight)
	}
	if config.Browser.WatcherDelay < 0 {
		return fmt.Errorf("negative watcher delay")
	}
	if config.Preview.MaxTextBytes <= 0 || config.Preview.MaxImageEdge <= 0 {
		return fmt.Errorf("preview limits must be positive")
	}
	return nil
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}

// Cleanup останавливает воркеры менеджера
func (cm *ConfigManager) Cleanup() {
	if cm.watcherCancel != nil {
		cm.watcherCancel()
	}
	if cm.watcher != nil {
		cm.watcher.Close()
		cm.watcher = nil
	}
	if cm.saveCh != nil {
		close(cm.saveCh)
		cm.saveWg.Wait()
		cm.saveCh = nil
	}
}

// AddRecentLocation добавляет директорию в список недавних мест
func (cm *ConfigManager) AddRecentLocation(path string) {
	cm.mutex.Lock()
	if cm.config == nil {
		cm.config = DefaultConfig()
	}

	recent := cm.config.App.RecentLocations
	for i, loc := range recent {
		if loc == path {
			recent = append(recent[:i], recent[i+1:]...)
			break
		}
	}
	recent = append([]string{path}, recent...)
	if len(recent) > 10 {
		recent = recent[:10]
	}
	cm.config.App.RecentLocations = recent
	cm.mutex.Unlock()

	cm.SaveConfigAsync()
}
