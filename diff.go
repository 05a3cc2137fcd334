package main

import (
	"image/color"
	"os"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/sergi/go-diff/diffmatchpatch"

	"nimbusExplorer/explorer"
)

// compareEntryWithFile сравнивает выбранный файл с другим, выбранным в
// диалоге, и показывает различия в отдельном окне
func (a *App) compareEntryWithFile(entry explorer.Entry) {
	if entry.IsDir {
		return
	}

	a.dialogManager.ShowOpenFileDialog(func(other string) {
		if other == "" {
			return
		}
		a.showDiffWindow(entry.Path, other)
	})
}

// showDiffWindow отображает окно с подсветкой различий
func (a *App) showDiffWindow(file1, file2 string) {
	content1, err1 := os.ReadFile(file1)
	content2, err2 := os.ReadFile(file2)
	if err1 != nil {
		a.dialogManager.ShowOperationError(explorer.Classify(err1))
		return
	}
	if err2 != nil {
		a.dialogManager.ShowOperationError(explorer.Classify(err2))
		return
	}

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(string(content1), string(content2), false)

	grid := widget.NewTextGrid()
	row := 0
	for _, d := range diffs {
		lines := strings.Split(d.Text, "\n")
		for i, line := range lines {
			if i == len(lines)-1 && line == "" {
				continue
			}
			cells := make([]widget.TextGridCell, len([]rune(line)))
			for j, r := range line {
				cells[j] = widget.TextGridCell{Rune: r}
			}
			grid.SetRow(row, widget.TextGridRow{Cells: cells})
			style := &widget.CustomTextGridStyle{}
			switch d.Type {
			case diffmatchpatch.DiffInsert:
				style.BGColor = color.NRGBA{R: 0, G: 255, B: 0, A: 100}
			case diffmatchpatch.DiffDelete:
				style.BGColor = color.NRGBA{R: 255, G: 0, B: 0, A: 100}
			}
			if style.BGColor != nil {
				grid.SetRowStyle(row, style)
			}
			row++
		}
	}

	win := a.fyneApp.NewWindow("Compare Files")
	win.SetContent(container.NewScroll(grid))
	win.Resize(fyne.NewSize(800, 600))
	win.Show()
}
