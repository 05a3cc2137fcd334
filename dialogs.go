package main

import (
	"errors"
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"nimbusExplorer/explorer"
)

// DialogManager управляет всеми диалогами приложения
type DialogManager struct {
	mainWindow fyne.Window
	config     *Config
}

// NewDialogManager создает новый менеджер диалогов
func NewDialogManager(window fyne.Window, config *Config) *DialogManager {
	return &DialogManager{
		mainWindow: window,
		config:     config,
	}
}

// ShowRenameDialog показывает диалог переименования
func (dm *DialogManager) ShowRenameDialog(entry explorer.Entry, onConfirm func(newName string)) {
	entryField := widget.NewEntry()
	entryField.SetText(entry.Name)

	dialog.ShowForm("Rename", "Rename", "Cancel", []*widget.FormItem{
		{Text: "New name:", Widget: entryField},
	}, func(confirmed bool) {
		if !confirmed || entryField.Text == "" || entryField.Text == entry.Name {
			return
		}
		onConfirm(entryField.Text)
	}, dm.mainWindow)
}

// ShowDeleteDialog показывает подтверждение удаления
func (dm *DialogManager) ShowDeleteDialog(entry explorer.Entry, onConfirm func()) {
	if !dm.config.Browser.ConfirmDelete {
		onConfirm()
		return
	}

	kind := "file"
	if entry.IsDir {
		kind = "folder"
	}
	message := fmt.Sprintf("Are you sure you want to delete the %s '%s'?", kind, entry.Name)

	dialog.ShowConfirm("Delete", message, func(confirmed bool) {
		if confirmed {
			onConfirm()
		}
	}, dm.mainWindow)
}

// ShowRecursiveDeleteDialog предлагает рекурсивное удаление после отказа
// удалить непустую директорию
func (dm *DialogManager) ShowRecursiveDeleteDialog(entry explorer.Entry, onConfirm func()) {
	message := fmt.Sprintf("The folder '%s' is not empty.\nDelete it together with all its contents?", entry.Name)

	dialog.ShowConfirm("Folder Not Empty", message, func(confirmed bool) {
		if confirmed {
			onConfirm()
		}
	}, dm.mainWindow)
}

// ShowNewFileDialog показывает диалог создания файла
func (dm *DialogManager) ShowNewFileDialog(onConfirm func(name string)) {
	entryField := widget.NewEntry()
	entryField.SetPlaceHolder("filename.ext")

	dialog.ShowForm("New File", "Create", "Cancel", []*widget.FormItem{
		{Text: "File name:", Widget: entryField},
	}, func(confirmed bool) {
		if !confirmed || entryField.Text == "" {
			return
		}
		onConfirm(entryField.Text)
	}, dm.mainWindow)
}

// ShowNewFolderDialog показывает диалог создания папки
func (dm *DialogManager) ShowNewFolderDialog(onConfirm func(name string)) {
	entryField := widget.NewEntry()
	entryField.SetPlaceHolder("New Folder")

	dialog.ShowForm("New Folder", "Create", "Cancel", []*widget.FormItem{
		{Text: "Folder name:", Widget: entryField},
	}, func(confirmed bool) {
		if !confirmed || entryField.Text == "" {
			return
		}
		onConfirm(entryField.Text)
	}, dm.mainWindow)
}

// ShowDestinationDialog показывает выбор директории-приемника для
// копирования или перемещения
func (dm *DialogManager) ShowDestinationDialog(title string, onConfirm func(dir string)) {
	folderDialog := dialog.NewFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil {
			dm.ShowOperationError(err)
			return
		}
		if uri == nil {
			return
		}
		onConfirm(uri.Path())
	}, dm.mainWindow)

	folderDialog.SetConfirmText(title)
	folderDialog.Show()
}

// ShowOpenFileDialog показывает выбор файла
func (dm *DialogManager) ShowOpenFileDialog(onConfirm func(path string)) {
	fileDialog := dialog.NewFileOpen(func(uri fyne.URIReadCloser, err error) {
		if err != nil {
			dm.ShowOperationError(err)
			return
		}
		if uri == nil {
			onConfirm("")
			return
		}
		path := uri.URI().Path()
		uri.Close()
		onConfirm(path)
	}, dm.mainWindow)

	fileDialog.Show()
}

// ShowOverwriteDialog спрашивает подтверждение перезаписи приемника.
// Политика: молча не перезаписываем никогда, только после подтверждения.
func (dm *DialogManager) ShowOverwriteDialog(dst string, onConfirm func()) {
	message := fmt.Sprintf("'%s' already exists.\nOverwrite it?", dst)

	dialog.ShowConfirm("Already Exists", message, func(confirmed bool) {
		if confirmed {
			onConfirm()
		}
	}, dm.mainWindow)
}

// ShowPropertiesDialog показывает свойства элемента
func (dm *DialogManager) ShowPropertiesDialog(entry explorer.Entry) {
	info := []string{
		fmt.Sprintf("Name: %s", entry.Name),
		fmt.Sprintf("Path: %s", entry.Path),
		fmt.Sprintf("Type: %s", entryTypeName(entry)),
		fmt.Sprintf("Modified: %s", entry.Modified.Format("2006-01-02 15:04:05")),
		fmt.Sprintf("Permissions: %s", entry.Mode.String()),
	}
	if !entry.IsDir {
		info = append(info, fmt.Sprintf("Size: %s (%d bytes)", formatFileSize(entry.Size), entry.Size))
	}

	content := widget.NewLabel(strings.Join(info, "\n"))
	content.Wrapping = fyne.TextWrapWord

	dialog.ShowCustom("Properties", "Close", content, dm.mainWindow)
}

// ShowAboutDialog показывает информацию о приложении
func (dm *DialogManager) ShowAboutDialog() {
	content := widget.NewLabel("Nimbus Explorer\n\nA lightweight desktop file manager.\nTree, list, search and preview in one window.")
	content.Alignment = fyne.TextAlignCenter

	dialog.ShowCustom("About", "Close", content, dm.mainWindow)
}

// ShowOperationError показывает ошибку файловой операции с
// человекочитаемым описанием по таксономии
func (dm *DialogManager) ShowOperationError(err error) {
	dialog.ShowError(fmt.Errorf("%s", operationErrorMessage(err)), dm.mainWindow)
}

// operationErrorMessage переводит ошибку таксономии в сообщение для
// пользователя
func operationErrorMessage(err error) string {
	switch {
	case err == nil:
		return "The operation could not be completed."
	case errors.Is(err, explorer.ErrAccess):
		return "Access denied. Check the permissions and try again."
	case errors.Is(err, explorer.ErrNotFound):
		return "The file or folder no longer exists. The view will be refreshed."
	case errors.Is(err, explorer.ErrAlreadyExists):
		return "An item with this name already exists."
	case errors.Is(err, explorer.ErrNotEmpty):
		return "The folder is not empty."
	default:
		return err.Error()
	}
}
