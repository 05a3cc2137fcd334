package main

import (
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"nimbusExplorer/explorer"
)

// FileListWidget - центральный список файлов текущей директории.
// Виджет только отображает уже отсортированные и отфильтрованные
// элементы; листингом и порядком владеет App.
type FileListWidget struct {
	widget.BaseWidget

	list    *widget.List
	entries []explorer.Entry

	selectedIndex int
	lastTap       int
	lastTapTime   time.Time

	config *Config

	// Callbacks
	onSelected func(explorer.Entry)
	onOpened   func(explorer.Entry)
}

// NewFileList создает список файлов
func NewFileList(config *Config) *FileListWidget {
	fl := &FileListWidget{
		config:        config,
		selectedIndex: -1,
		lastTap:       -1,
	}

	fl.list = widget.NewList(
		func() int { return len(fl.entries) },
		fl.createItem,
		fl.updateItem,
	)
	fl.list.OnSelected = fl.handleSelected

	fl.ExtendBaseWidget(fl)
	return fl
}

// createItem создает шаблон строки списка
func (fl *FileListWidget) createItem() fyne.CanvasObject {
	icon := widget.NewIcon(theme.DocumentIcon())
	name := widget.NewLabel("Template")
	name.Truncation = fyne.TextTruncateEllipsis
	size := widget.NewLabel("")
	size.Alignment = fyne.TextAlignTrailing

	return container.NewBorder(nil, nil, icon, size, name)
}

// updateItem заполняет строку данными элемента
func (fl *FileListWidget) updateItem(id widget.ListItemID, item fyne.CanvasObject) {
	if id < 0 || id >= len(fl.entries) {
		return
	}
	entry := fl.entries[id]

	row := item.(*fyne.Container)
	icon := row.Objects[1].(*widget.Icon)
	size := row.Objects[2].(*widget.Label)
	name := row.Objects[0].(*widget.Label)

	icon.SetResource(entryIcon(entry))
	name.SetText(entry.Name)

	if !entry.IsDir && fl.config.Browser.ShowFileSize {
		size.SetText(formatFileSize(entry.Size))
	} else {
		size.SetText("")
	}
}

// handleSelected различает одиночный клик (выбор + предпросмотр) и
// двойной клик (открытие) по интервалу между нажатиями
func (fl *FileListWidget) handleSelected(id widget.ListItemID) {
	now := time.Now()
	entry := fl.entries[id]

	if fl.lastTap == id && now.Sub(fl.lastTapTime) < 400*time.Millisecond {
		if fl.onOpened != nil {
			fl.onOpened(entry)
		}
	} else {
		fl.selectedIndex = id
		if fl.onSelected != nil {
			fl.onSelected(entry)
		}
	}

	fl.lastTap = id
	fl.lastTapTime = now
}

// SetEntries заменяет отображаемый список
func (fl *FileListWidget) SetEntries(entries []explorer.Entry) {
	fl.entries = entries
	fl.ClearSelection()
	fl.list.Refresh()
}

// SelectedEntry возвращает выбранный элемент или nil
func (fl *FileListWidget) SelectedEntry() *explorer.Entry {
	if fl.selectedIndex < 0 || fl.selectedIndex >= len(fl.entries) {
		return nil
	}
	entry := fl.entries[fl.selectedIndex]
	return &entry
}

// ClearSelection сбрасывает выделение (после смены директории элемент
// с тем же индексом - уже другой файл)
func (fl *FileListWidget) ClearSelection() {
	fl.selectedIndex = -1
	fl.lastTap = -1
	fl.list.UnselectAll()
}

// SetCallbacks устанавливает callback функции
func (fl *FileListWidget) SetCallbacks(onSelected, onOpened func(explorer.Entry)) {
	fl.onSelected = onSelected
	fl.onOpened = onOpened
}

// CreateRenderer реализует интерфейс fyne.Widget
func (fl *FileListWidget) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(fl.list)
}

// entryIcon возвращает иконку для элемента
func entryIcon(e explorer.Entry) fyne.Resource {
	if e.IsDir {
		return theme.FolderIcon()
	}

	switch e.Extension {
	case ".jpg", ".jpeg", ".png", ".gif", ".bmp", ".webp":
		return theme.MediaPhotoIcon()
	case ".mp3", ".wav", ".ogg", ".flac":
		return theme.MediaMusicIcon()
	case ".mp4", ".avi", ".mkv", ".mov":
		return theme.MediaVideoIcon()
	case ".zip", ".tar", ".gz", ".rar", ".7z":
		return theme.StorageIcon()
	default:
		return theme.DocumentIcon()
	}
}

// formatFileSize форматирует размер файла
func formatFileSize(size int64) string {
	if size == 0 {
		return "0 B"
	}

	const unit = 1024
	if size < unit {
		return fmt.Sprintf("%d B", size)
	}

	div, exp := int64(unit), 0
	for n := size / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}

	units := []string{"KB", "MB", "GB", "TB"}
	return fmt.Sprintf("%.1f %s", float64(size)/float64(div), units[exp])
}

// entryTypeName возвращает человекочитаемый тип элемента
func entryTypeName(e explorer.Entry) string {
	if e.IsDir {
		return "Folder"
	}
	if e.Extension == "" {
		return "File"
	}
	return fmt.Sprintf("%s file", e.Extension[1:])
}
