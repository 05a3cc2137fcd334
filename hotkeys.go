package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

// HotkeyManager регистрирует горячие клавиши главного окна
type HotkeyManager struct {
	window fyne.Window
	app    *App
}

// NewHotkeyManager создает менеджер горячих клавиш
func NewHotkeyManager(window fyne.Window, app *App) *HotkeyManager {
	return &HotkeyManager{
		window: window,
		app:    app,
	}
}

// RegisterAll регистрирует все горячие клавиши приложения
func (hm *HotkeyManager) RegisterAll() {
	canvas := hm.window.Canvas()

	shortcuts := []struct {
		key      fyne.KeyName
		modifier fyne.KeyModifier
		action   func()
	}{
		{fyne.KeyLeft, fyne.KeyModifierAlt, hm.app.navigateBack},
		{fyne.KeyRight, fyne.KeyModifierAlt, hm.app.navigateForward},
		{fyne.KeyUp, fyne.KeyModifierAlt, hm.app.navigateUp},
		{fyne.KeyL, fyne.KeyModifierControl, hm.app.focusAddressBar},
		{fyne.KeyF, fyne.KeyModifierControl, hm.app.focusSearch},
		{fyne.KeyH, fyne.KeyModifierControl, hm.app.toggleHidden},
		{fyne.KeyN, fyne.KeyModifierControl | fyne.KeyModifierShift, hm.app.newFolder},
		{fyne.KeyN, fyne.KeyModifierControl, hm.app.newFile},
		{fyne.KeyP, fyne.KeyModifierControl, hm.app.togglePreview},
	}

	for _, sc := range shortcuts {
		action := sc.action
		canvas.AddShortcut(&desktop.CustomShortcut{KeyName: sc.key, Modifier: sc.modifier}, func(fyne.Shortcut) {
			action()
		})
	}

	// Клавиши без модификаторов не проходят через AddShortcut
	canvas.SetOnTypedKey(func(ev *fyne.KeyEvent) {
		// Когда фокус в поле ввода, клавиши принадлежат ему
		if canvas.Focused() != nil {
			return
		}

		switch ev.Name {
		case fyne.KeyDelete:
			hm.app.deleteSelected()
		case fyne.KeyF2:
			hm.app.renameSelected()
		case fyne.KeyF5:
			hm.app.refresh()
		case fyne.KeyBackspace:
			hm.app.navigateUp()
		case fyne.KeyReturn, fyne.KeyEnter:
			hm.app.openSelected()
		}
	})
}
