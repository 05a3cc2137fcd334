package main

import (
	"context"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DirWatcher наблюдает за текущей директорией и дергает callback после
// затишья в потоке событий. Внешние изменения (другой процесс создал или
// удалил файл) попадают в список без ручного обновления.
type DirWatcher struct {
	watcher  *fsnotify.Watcher
	cancel   context.CancelFunc
	logger   *zap.Logger
	debounce time.Duration

	mutex   sync.Mutex
	path    string
	pending chan struct{}

	onRefresh func()
}

// NewDirWatcher создает наблюдатель с заданной задержкой debounce
func NewDirWatcher(debounce time.Duration, onRefresh func(), logger *zap.Logger) (*DirWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	ctx, cancel := context.WithCancel(context.Background())
	dw := &DirWatcher{
		watcher:   watcher,
		cancel:    cancel,
		logger:    logger,
		debounce:  debounce,
		pending:   make(chan struct{}, 1),
		onRefresh: onRefresh,
	}

	go dw.eventLoop(ctx)
	go dw.refreshLoop(ctx)

	return dw, nil
}

// SetPath переключает наблюдение на новую директорию
func (dw *DirWatcher) SetPath(path string) {
	dw.mutex.Lock()
	defer dw.mutex.Unlock()

	if dw.path == path {
		return
	}

	if dw.path != "" {
		// Директория могла уже исчезнуть, ошибка снятия не важна
		_ = dw.watcher.Remove(dw.path)
	}

	dw.path = path
	if err := dw.watcher.Add(path); err != nil {
		dw.logger.Warn("cannot watch directory", zap.String("path", path), zap.Error(err))
	}
}

// eventLoop собирает события файловой системы и помечает, что нужен refresh
func (dw *DirWatcher) eventLoop(ctx context.Context) {
	for {
		select {
		case _, ok := <-dw.watcher.Events:
			if !ok {
				return
			}
			select {
			case dw.pending <- struct{}{}:
			default:
				// refresh уже запланирован
			}

		case err, ok := <-dw.watcher.Errors:
			if !ok {
				return
			}
			dw.logger.Warn("directory watcher error", zap.Error(err))

		case <-ctx.Done():
			return
		}
	}
}

// refreshLoop ждет затишья после всплеска событий и вызывает callback
func (dw *DirWatcher) refreshLoop(ctx context.Context) {
	for {
		select {
		case <-dw.pending:
			timer := time.NewTimer(dw.debounce)
		drain:
			for {
				select {
				case <-dw.pending:
					// Новые события сдвигают таймер
					if !timer.Stop() {
						<-timer.C
					}
					timer.Reset(dw.debounce)
				case <-timer.C:
					break drain
				case <-ctx.Done():
					timer.Stop()
					return
				}
			}
			if dw.onRefresh != nil {
				dw.onRefresh()
			}

		case <-ctx.Done():
			return
		}
	}
}

// Cleanup останавливает наблюдение
func (dw *DirWatcher) Cleanup() {
	dw.cancel()
	dw.watcher.Close()
}
