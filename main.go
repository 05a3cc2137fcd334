package main

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"nimbusExplorer/explorer"
)

// App представляет основное приложение
type App struct {
	fyneApp       fyne.App
	mainWin       fyne.Window
	config        *Config
	configManager *ConfigManager
	logger        *zap.Logger

	dialogManager *DialogManager
	hotkeyManager *HotkeyManager

	dirTree  *DirTreeWidget
	fileList *FileListWidget
	preview  *PreviewWidget
	watcher  *DirWatcher
	history  *explorer.History

	addressBar  *widget.Entry
	searchEntry *widget.Entry
	sortSelect  *widget.Select
	orderButton *widget.Button
	backButton  *ToolbarButton
	fwdButton   *ToolbarButton
	statusLabel *widget.Label

	// Сырой листинг текущей директории, до сортировки и фильтра
	currentDir  string
	rawEntries  []explorer.Entry
	searchQuery string
}

// NewApp создает новое приложение
func NewApp() *App {
	myApp := app.NewWithID("dev.nimbus.explorer")
	myApp.SetIcon(theme.FolderIcon())

	// Загружаем конфигурацию
	configMgr := NewConfigManager("", nil)
	config, err := configMgr.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error loading config: %v\n", err)
		config = DefaultConfig()
	}

	logger := newLogger(config.App.LogLevel)
	configMgr.SetLogger(logger)

	// Устанавливаем тему
	myApp.Settings().SetTheme(themeByName(config.App.Theme))

	mainWin := myApp.NewWindow("Nimbus Explorer")
	mainWin.Resize(fyne.NewSize(float32(config.App.WindowWidth), float32(config.App.WindowHeight)))
	if config.App.WindowMaximized {
		mainWin.SetFullScreen(true)
	}

	return &App{
		fyneApp:       myApp,
		mainWin:       mainWin,
		config:        config,
		configManager: configMgr,
		logger:        logger,
	}
}

// setupUI создает и настраивает пользовательский интерфейс
func (a *App) setupUI() {
	// Создаем основные компоненты
	a.dirTree = NewDirTree(a.config)
	a.fileList = NewFileList(a.config)
	a.preview = NewPreview(a.config)

	// Создаем менеджеры
	a.dialogManager = NewDialogManager(a.mainWin, a.config)
	a.hotkeyManager = NewHotkeyManager(a.mainWin, a)

	watcher, err := NewDirWatcher(
		time.Duration(a.config.Browser.WatcherDelay)*time.Millisecond,
		func() { fyne.Do(a.refresh) },
		a.logger,
	)
	if err != nil {
		a.logger.Warn("directory watcher unavailable", zap.Error(err))
	}
	a.watcher = watcher

	a.setupCallbacks()
	a.createMainMenu()
	a.createMainLayout()
	a.hotkeyManager.RegisterAll()

	// Начальная директория: сохраненная или домашняя
	start := a.config.App.StartPath
	if start == "" {
		start, _ = os.UserHomeDir()
	}
	if _, err := os.Stat(start); err != nil {
		start, _ = os.UserHomeDir()
	}

	a.history = explorer.NewHistory(start)
	a.dirTree.SetRootPath(treeRoot(start))
	a.loadDirectory(start)
}

// treeRoot выбирает корень дерева для стартовой директории
func treeRoot(start string) string {
	if home, err := os.UserHomeDir(); err == nil {
		// Внутри домашней директории дерево начинается с нее
		rel, err := filepath.Rel(home, start)
		if err == nil && rel != ".." && !strings.HasPrefix(rel, ".."+string(os.PathSeparator)) {
			return home
		}
	}
	return filepath.VolumeName(start) + string(os.PathSeparator)
}

// setupCallbacks настраивает обратные вызовы между компонентами
func (a *App) setupCallbacks() {
	a.fileList.SetCallbacks(
		func(entry explorer.Entry) { // одиночный клик: предпросмотр
			a.preview.ShowEntry(entry)
			a.updateStatus()
		},
		func(entry explorer.Entry) { // двойной клик: открытие
			a.openEntry(entry)
		},
	)

	a.dirTree.OnDirSelected(func(path string) {
		if path != a.currentDir {
			a.openDirectory(path)
		}
	})

	// Внешнее изменение файла конфигурации применяется на лету
	a.configManager.OnChange(func(config *Config) {
		fyne.Do(func() {
			a.config = config
			a.fyneApp.Settings().SetTheme(themeByName(config.App.Theme))
			a.applyListing()
		})
	})
}

// createMainMenu создает главное меню
func (a *App) createMainMenu() {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("New File...", a.newFile),
		fyne.NewMenuItem("New Folder...", a.newFolder),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Copy To...", a.copySelected),
		fyne.NewMenuItem("Move To...", a.moveSelected),
		fyne.NewMenuItem("Rename...", a.renameSelected),
		fyne.NewMenuItem("Delete", a.deleteSelected),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Properties", a.showProperties),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Exit", a.checkAndExit),
	)

	goMenu := fyne.NewMenu("Go",
		fyne.NewMenuItem("Back", a.navigateBack),
		fyne.NewMenuItem("Forward", a.navigateForward),
		fyne.NewMenuItem("Up", a.navigateUp),
		fyne.NewMenuItem("Home", a.navigateHome),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Recent Locations", a.showRecentLocations),
	)

	viewMenu := fyne.NewMenu("View",
		fyne.NewMenuItem("Refresh", a.refresh),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Show Hidden Files", a.toggleHidden),
		fyne.NewMenuItem("Toggle Preview", a.togglePreview),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Dark Theme", func() { a.setTheme("dark") }),
		fyne.NewMenuItem("Light Theme", func() { a.setTheme("light") }),
	)

	toolsMenu := fyne.NewMenu("Tools",
		fyne.NewMenuItem("Compare With...", a.compareSelected),
		fyne.NewMenuItem("Open Terminal Here", a.openTerminal),
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", a.dialogManager.ShowAboutDialog),
	)

	a.mainWin.SetMainMenu(fyne.NewMainMenu(fileMenu, goMenu, viewMenu, toolsMenu, helpMenu))
}

// createMainLayout создает основной layout: дерево | список | предпросмотр
func (a *App) createMainLayout() {
	toolbar := a.createToolbar()
	statusBar := a.createStatusBar()

	listWithPreview := container.NewHSplit(a.fileList, a.preview)
	listWithPreview.SetOffset(0.65)

	content := container.NewHSplit(a.dirTree, listWithPreview)
	content.SetOffset(0.2)

	a.mainWin.SetContent(container.NewBorder(toolbar, statusBar, nil, nil, content))

	if !a.config.Preview.IsVisible {
		a.preview.SetVisible(false)
	}
}

// createToolbar создает панель инструментов
func (a *App) createToolbar() fyne.CanvasObject {
	a.backButton = NewToolbarButton(theme.NavigateBackIcon(), a.navigateBack)
	a.fwdButton = NewToolbarButton(theme.NavigateNextIcon(), a.navigateForward)
	upButton := widget.NewButtonWithIcon("", theme.MoveUpIcon(), a.navigateUp)
	homeButton := widget.NewButtonWithIcon("", theme.HomeIcon(), a.navigateHome)
	refreshButton := widget.NewButtonWithIcon("", theme.ViewRefreshIcon(), a.refresh)

	a.addressBar = widget.NewEntry()
	a.addressBar.OnSubmitted = func(path string) {
		info, err := os.Stat(path)
		if err != nil {
			a.dialogManager.ShowOperationError(explorer.Classify(err))
			a.addressBar.SetText(a.currentDir)
			return
		}
		if !info.IsDir() {
			// Путь к файлу: открываем его, оставаясь в текущей директории
			a.openWithOS(path)
			a.addressBar.SetText(a.currentDir)
			return
		}
		a.openDirectory(path)
	}

	a.searchEntry = widget.NewEntry()
	a.searchEntry.SetPlaceHolder("Search...")
	a.searchEntry.OnChanged = func(query string) {
		a.searchQuery = query
		a.applyListing()
	}

	a.sortSelect = widget.NewSelect([]string{"Name", "Type", "Size", "Date"}, func(selected string) {
		a.configManager.UpdateConfig(func(c *Config) {
			c.Browser.SortBy = explorer.ParseSortKey(selected).String()
		})
	})
	a.sortSelect.SetSelected(sortLabel(a.config.Browser.SortBy))

	a.orderButton = widget.NewButtonWithIcon("", orderIcon(a.config.Browser.SortAscending), func() {
		a.configManager.UpdateConfig(func(c *Config) {
			c.Browser.SortAscending = !c.Browser.SortAscending
		})
		a.orderButton.SetIcon(orderIcon(a.config.Browser.SortAscending))
	})

	left := container.NewHBox(a.backButton, a.fwdButton, upButton, homeButton, refreshButton)

	// Поисковое поле без фиксированной ширины сжимается до минимума Entry
	search := container.NewGridWrap(
		fyne.NewSize(180, a.searchEntry.MinSize().Height),
		a.searchEntry,
	)
	right := container.NewHBox(search, a.sortSelect, a.orderButton)

	return container.NewBorder(nil, nil, left, right, a.addressBar)
}

// createStatusBar создает статусную строку
func (a *App) createStatusBar() fyne.CanvasObject {
	a.statusLabel = widget.NewLabel("Ready")
	a.statusLabel.TextStyle.Italic = true
	return container.NewHBox(a.statusLabel)
}

func sortLabel(key string) string {
	switch explorer.ParseSortKey(key) {
	case explorer.SortByType:
		return "Type"
	case explorer.SortBySize:
		return "Size"
	case explorer.SortByDate:
		return "Date"
	default:
		return "Name"
	}
}

func orderIcon(ascending bool) fyne.Resource {
	if ascending {
		return theme.MenuDropUpIcon()
	}
	return theme.MenuDropDownIcon()
}

// Навигация

// openDirectory переходит в директорию с записью в историю
func (a *App) openDirectory(path string) {
	a.history.Open(path)
	a.loadDirectory(path)
}

func (a *App) navigateBack() {
	if path, ok := a.history.Back(); ok {
		a.loadDirectory(path)
	}
}

func (a *App) navigateForward() {
	if path, ok := a.history.Forward(); ok {
		a.loadDirectory(path)
	}
}

func (a *App) navigateUp() {
	parent := filepath.Dir(a.currentDir)
	if parent != a.currentDir {
		a.openDirectory(parent)
	}
}

func (a *App) navigateHome() {
	if home, err := os.UserHomeDir(); err == nil {
		a.openDirectory(home)
	}
}

// loadDirectory читает листинг и обновляет все панели. Каждый переход
// перечитывает директорию заново, кэша листингов нет.
func (a *App) loadDirectory(path string) {
	entries, err := explorer.List(path)
	if err != nil {
		a.logger.Warn("cannot list directory", zap.String("path", path), zap.Error(err))
		a.dialogManager.ShowOperationError(err)
		// Директория могла исчезнуть под нами, отступаем наверх
		if errors.Is(err, explorer.ErrNotFound) && path != filepath.Dir(path) {
			a.openDirectory(filepath.Dir(path))
		}
		return
	}

	a.currentDir = path
	a.rawEntries = entries

	a.addressBar.SetText(path)
	a.applyListing()
	a.preview.Clear()
	a.dirTree.Select(path)
	if a.watcher != nil {
		a.watcher.SetPath(path)
	}
	a.configManager.AddRecentLocation(path)
	a.updateNavButtons()
	a.mainWin.SetTitle(fmt.Sprintf("%s - Nimbus Explorer", filepath.Base(path)))

	a.logger.Debug("directory opened",
		zap.String("path", path),
		zap.Int("entries", len(entries)))
}

// refresh перечитывает текущую директорию без изменения истории
func (a *App) refresh() {
	if a.currentDir == "" {
		return
	}

	entries, err := explorer.List(a.currentDir)
	if err != nil {
		if errors.Is(err, explorer.ErrNotFound) {
			a.navigateUp()
			return
		}
		a.dialogManager.ShowOperationError(err)
		return
	}

	a.rawEntries = entries
	a.applyListing()
	a.dirTree.Invalidate()
}

// applyListing применяет скрытие, сортировку и фильтр к сырому листингу
func (a *App) applyListing() {
	visible := make([]explorer.Entry, 0, len(a.rawEntries))
	for _, e := range a.rawEntries {
		if e.Hidden && !a.config.Browser.ShowHiddenFiles {
			continue
		}
		visible = append(visible, e)
	}

	explorer.Sort(visible,
		explorer.ParseSortKey(a.config.Browser.SortBy),
		a.config.Browser.SortAscending)

	mode := explorer.DetectMode(a.searchQuery, a.config.Browser.FuzzySearch)
	visible = explorer.Filter(visible, a.searchQuery, mode)

	a.fileList.SetEntries(visible)
	a.updateStatus()
}

// updateNavButtons показывает кнопки истории по ее состоянию
func (a *App) updateNavButtons() {
	if a.history.CanBack() {
		a.backButton.Show()
	} else {
		a.backButton.Hide()
	}
	if a.history.CanForward() {
		a.fwdButton.Show()
	} else {
		a.fwdButton.Hide()
	}
}

func (a *App) updateStatus() {
	count := len(a.fileList.entries)
	status := fmt.Sprintf("%d items", count)
	if count == 1 {
		status = "1 item"
	}
	if selected := a.fileList.SelectedEntry(); selected != nil && !selected.IsDir {
		status += fmt.Sprintf("  |  %s, %s", selected.Name, formatFileSize(selected.Size))
	}
	a.statusLabel.SetText(status)
}

// Открытие элементов

func (a *App) openEntry(entry explorer.Entry) {
	if entry.IsDir {
		a.openDirectory(entry.Path)
		return
	}
	a.openWithOS(entry.Path)
}

func (a *App) openSelected() {
	if entry := a.fileList.SelectedEntry(); entry != nil {
		a.openEntry(*entry)
	}
}

// openWithOS открывает файл приложением по умолчанию
func (a *App) openWithOS(path string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("cmd", "/C", "start", "", path)
	case "darwin":
		cmd = exec.Command("open", path)
	default:
		cmd = exec.Command("xdg-open", path)
	}

	if err := cmd.Start(); err != nil {
		a.logger.Warn("cannot open file", zap.String("path", path), zap.Error(err))
		a.dialogManager.ShowOperationError(err)
	}
}

// openTerminal открывает системный терминал в текущей директории
func (a *App) openTerminal() {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("cmd", "/C", "start", "cmd")
	case "darwin":
		cmd = exec.Command("open", "-a", "Terminal", a.currentDir)
	default:
		cmd = exec.Command("x-terminal-emulator")
	}
	cmd.Dir = a.currentDir

	if err := cmd.Start(); err != nil {
		a.logger.Warn("cannot open terminal", zap.Error(err))
	}
}

// Файловые операции

func (a *App) newFile() {
	a.dialogManager.ShowNewFileDialog(func(name string) {
		if _, err := explorer.CreateFile(a.currentDir, name); err != nil {
			a.dialogManager.ShowOperationError(err)
			return
		}
		a.refresh()
	})
}

func (a *App) newFolder() {
	a.dialogManager.ShowNewFolderDialog(func(name string) {
		if _, err := explorer.Mkdir(a.currentDir, name); err != nil {
			a.dialogManager.ShowOperationError(err)
			return
		}
		a.refresh()
	})
}

func (a *App) renameSelected() {
	entry := a.fileList.SelectedEntry()
	if entry == nil {
		return
	}

	a.dialogManager.ShowRenameDialog(*entry, func(newName string) {
		if _, err := explorer.Rename(entry.Path, newName); err != nil {
			a.dialogManager.ShowOperationError(err)
			return
		}
		a.logger.Info("renamed",
			zap.String("path", entry.Path),
			zap.String("new_name", newName))
		a.refresh()
	})
}

func (a *App) deleteSelected() {
	entry := a.fileList.SelectedEntry()
	if entry == nil {
		return
	}

	a.dialogManager.ShowDeleteDialog(*entry, func() {
		err := explorer.Delete(entry.Path, false)
		if errors.Is(err, explorer.ErrNotEmpty) {
			a.dialogManager.ShowRecursiveDeleteDialog(*entry, func() {
				if err := explorer.Delete(entry.Path, true); err != nil {
					a.dialogManager.ShowOperationError(err)
					return
				}
				a.refresh()
			})
			return
		}
		if err != nil {
			a.dialogManager.ShowOperationError(err)
			if errors.Is(err, explorer.ErrNotFound) {
				a.refresh()
			}
			return
		}
		a.logger.Info("deleted", zap.String("path", entry.Path))
		a.refresh()
	})
}

func (a *App) copySelected() {
	a.transferSelected("Copy", explorer.Copy)
}

func (a *App) moveSelected() {
	a.transferSelected("Move", explorer.Move)
}

// transferSelected выполняет копирование или перемещение с выбором
// директории-приемника. Коллизия имен разрешается только через явное
// подтверждение перезаписи.
func (a *App) transferSelected(title string, op func(src, dst string, overwrite bool) error) {
	entry := a.fileList.SelectedEntry()
	if entry == nil {
		return
	}

	a.dialogManager.ShowDestinationDialog(title, func(dir string) {
		dst := filepath.Join(dir, entry.Name)

		err := op(entry.Path, dst, false)
		if errors.Is(err, explorer.ErrAlreadyExists) {
			a.dialogManager.ShowOverwriteDialog(dst, func() {
				if err := op(entry.Path, dst, true); err != nil {
					a.dialogManager.ShowOperationError(err)
					return
				}
				a.refresh()
			})
			return
		}
		if err != nil {
			a.dialogManager.ShowOperationError(err)
			return
		}
		a.logger.Info("transferred",
			zap.String("op", title),
			zap.String("src", entry.Path),
			zap.String("dst", dst))
		a.refresh()
	})
}

func (a *App) showProperties() {
	if entry := a.fileList.SelectedEntry(); entry != nil {
		a.dialogManager.ShowPropertiesDialog(*entry)
	}
}

func (a *App) compareSelected() {
	if entry := a.fileList.SelectedEntry(); entry != nil {
		a.compareEntryWithFile(*entry)
	}
}

// Переключатели вида

func (a *App) toggleHidden() {
	a.configManager.UpdateConfig(func(c *Config) {
		c.Browser.ShowHiddenFiles = !c.Browser.ShowHiddenFiles
	})
	a.dirTree.Invalidate()
}

func (a *App) togglePreview() {
	visible := !a.preview.IsVisible()
	a.preview.SetVisible(visible)
	a.configManager.UpdateConfig(func(c *Config) {
		c.Preview.IsVisible = visible
	})
}

func (a *App) setTheme(name string) {
	a.fyneApp.Settings().SetTheme(themeByName(name))
	a.configManager.UpdateConfig(func(c *Config) {
		c.App.Theme = name
	})
}

func (a *App) focusAddressBar() {
	a.mainWin.Canvas().Focus(a.addressBar)
}

func (a *App) focusSearch() {
	a.mainWin.Canvas().Focus(a.searchEntry)
}

func (a *App) showRecentLocations() {
	recent := a.config.App.RecentLocations
	if len(recent) == 0 {
		return
	}

	items := make([]*fyne.MenuItem, 0, len(recent))
	for _, loc := range recent {
		path := loc
		items = append(items, fyne.NewMenuItem(path, func() {
			a.openDirectory(path)
		}))
	}

	menu := fyne.NewMenu("Recent Locations", items...)
	widget.ShowPopUpMenuAtPosition(menu, a.mainWin.Canvas(), fyne.NewPos(0, 0))
}

// Завершение

func (a *App) checkAndExit() {
	a.cleanup()
	a.fyneApp.Quit()
}

func (a *App) cleanup() {
	// Сохраняем размер окна и стартовую директорию
	size := a.mainWin.Canvas().Size()
	a.configManager.UpdateConfig(func(c *Config) {
		c.App.WindowWidth = int(size.Width)
		c.App.WindowHeight = int(size.Height)
		c.App.StartPath = a.currentDir
	})

	if a.watcher != nil {
		a.watcher.Cleanup()
	}
	a.configManager.Cleanup()
	a.logger.Sync()
}

// Run запускает приложение
func (a *App) Run() {
	a.setupUI()

	a.mainWin.SetCloseIntercept(func() {
		a.checkAndExit()
	})

	a.mainWin.ShowAndRun()
}

func main() {
	app := NewApp()
	app.Run()
}
