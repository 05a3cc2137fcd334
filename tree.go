package main

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// DirTreeWidget - дерево директорий в левой панели. Показывает только
// директории; файлы живут в центральном списке. Ветки читаются лениво
// при раскрытии, Refresh сбрасывает прочитанное.
type DirTreeWidget struct {
	widget.BaseWidget

	tree     *widget.Tree
	rootPath string
	config   *Config

	// Кэш дочерних веток на время жизни одного отображения
	children map[string][]string

	onDirSelected func(string)
}

// NewDirTree создает дерево директорий
func NewDirTree(config *Config) *DirTreeWidget {
	dt := &DirTreeWidget{
		config:   config,
		children: make(map[string][]string),
	}

	dt.tree = widget.NewTree(
		dt.childUIDs,
		dt.isBranch,
		dt.createNode,
		dt.updateNode,
	)

	dt.tree.OnSelected = func(uid string) {
		if dt.onDirSelected != nil {
			dt.onDirSelected(uid)
		}
	}

	dt.ExtendBaseWidget(dt)
	return dt
}

// SetRootPath устанавливает корень дерева
func (dt *DirTreeWidget) SetRootPath(path string) {
	dt.rootPath = path
	dt.Invalidate()
}

// Invalidate сбрасывает кэш веток и перерисовывает дерево
func (dt *DirTreeWidget) Invalidate() {
	dt.children = make(map[string][]string)
	dt.tree.Refresh()
}

// OnDirSelected устанавливает callback выбора директории
func (dt *DirTreeWidget) OnDirSelected(callback func(string)) {
	dt.onDirSelected = callback
}

// childUIDs возвращает дочерние директории узла
func (dt *DirTreeWidget) childUIDs(uid string) []string {
	if uid == "" {
		if dt.rootPath == "" {
			return nil
		}
		return []string{dt.rootPath}
	}

	if cached, ok := dt.children[uid]; ok {
		return cached
	}

	dirents, err := os.ReadDir(uid)
	if err != nil {
		dt.children[uid] = nil
		return nil
	}

	var dirs []string
	for _, de := range dirents {
		if !de.IsDir() {
			continue
		}
		if !dt.config.Browser.ShowHiddenFiles && strings.HasPrefix(de.Name(), ".") {
			continue
		}
		dirs = append(dirs, filepath.Join(uid, de.Name()))
	}
	sort.Slice(dirs, func(i, j int) bool {
		return strings.ToLower(filepath.Base(dirs[i])) < strings.ToLower(filepath.Base(dirs[j]))
	})

	dt.children[uid] = dirs
	return dirs
}

// isBranch: каждая директория потенциально ветка
func (dt *DirTreeWidget) isBranch(uid string) bool {
	return uid != ""
}

// createNode создает виджет узла
func (dt *DirTreeWidget) createNode(branch bool) fyne.CanvasObject {
	return widget.NewLabel("Template")
}

// updateNode обновляет подпись узла
func (dt *DirTreeWidget) updateNode(uid string, branch bool, node fyne.CanvasObject) {
	label := node.(*widget.Label)
	label.SetText(filepath.Base(uid))
}

// Select подсвечивает и раскрывает путь в дереве
func (dt *DirTreeWidget) Select(path string) {
	// Раскрываем всех предков, чтобы узел был видим
	for p := path; strings.HasPrefix(p, dt.rootPath) && p != dt.rootPath; p = filepath.Dir(p) {
		dt.tree.OpenBranch(filepath.Dir(p))
	}
	dt.tree.Select(path)
}

// CreateRenderer реализует интерфейс fyne.Widget
func (dt *DirTreeWidget) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(dt.tree)
}
