package main

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// DarkTheme реализует темную тему в стиле Windows 11
type DarkTheme struct{}

// Windows 11 цветовая палитра (темная)
var (
	// Основные цвета фона
	darkBackground = color.NRGBA{0x20, 0x20, 0x20, 0xFF} // #202020 - основной фон
	darkSurface    = color.NRGBA{0x2D, 0x2D, 0x30, 0xFF} // #2D2D30 - поверхности
	darkCard       = color.NRGBA{0x3C, 0x3C, 0x3C, 0xFF} // #3C3C3C - карточки/панели

	// Акцентные цвета
	accentBlue        = color.NRGBA{0x00, 0x78, 0xD4, 0xFF} // #0078D4 - Windows 11 accent
	accentBlueHover   = color.NRGBA{0x10, 0x88, 0xE4, 0xFF} // #1088E4 - hover состояние
	accentBluePressed = color.NRGBA{0x00, 0x68, 0xC4, 0xFF} // #0068C4 - pressed состояние

	// Текст
	textPrimary     = color.NRGBA{0xFF, 0xFF, 0xFF, 0xFF} // #FFFFFF - основной текст
	textSecondary   = color.NRGBA{0xB0, 0xB0, 0xB0, 0xFF} // #B0B0B0 - вторичный текст
	textDisabled    = color.NRGBA{0x6D, 0x6D, 0x6D, 0xFF} // #6D6D6D - отключенный текст
	textPlaceholder = color.NRGBA{0x86, 0x86, 0x86, 0xFF} // #868686 - placeholder

	// Границы и разделители
	borderDefault = color.NRGBA{0x5A, 0x5A, 0x5A, 0xFF} // #5A5A5A - обычные границы
	borderFocus   = color.NRGBA{0x00, 0x78, 0xD4, 0xFF} // #0078D4 - фокус

	// Состояния
	errorColor   = color.NRGBA{0xD1, 0x3B, 0x38, 0xFF} // #D13B38 - ошибки
	warningColor = color.NRGBA{0xFF, 0xB9, 0x00, 0xFF} // #FFB900 - предупреждения
	successColor = color.NRGBA{0x00, 0xAD, 0x56, 0xFF} // #00AD56 - успех

	// Выделение в списке файлов
	darkSelection = color.NRGBA{0x26, 0x4F, 0x78, 0x80} // #264F78 с прозрачностью
)

// Color возвращает цвет темной темы
func (t *DarkTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground:
		return darkBackground
	case theme.ColorNameButton:
		return darkCard
	case theme.ColorNameDisabledButton:
		return darkSurface
	case theme.ColorNameDisabled:
		return textDisabled
	case theme.ColorNameError:
		return errorColor
	case theme.ColorNameFocus:
		return borderFocus
	case theme.ColorNameForeground:
		return textPrimary
	case theme.ColorNameHover:
		return accentBlueHover
	case theme.ColorNameInputBackground:
		return darkSurface
	case theme.ColorNameInputBorder:
		return borderDefault
	case theme.ColorNameMenuBackground:
		return darkSurface
	case theme.ColorNameOverlayBackground:
		return darkSurface
	case theme.ColorNamePlaceHolder:
		return textPlaceholder
	case theme.ColorNamePressed:
		return accentBluePressed
	case theme.ColorNamePrimary:
		return accentBlue
	case theme.ColorNameScrollBar:
		return borderDefault
	case theme.ColorNameSelection:
		return darkSelection
	case theme.ColorNameSeparator:
		return borderDefault
	case theme.ColorNameSuccess:
		return successColor
	case theme.ColorNameWarning:
		return warningColor
	default:
		return theme.DefaultTheme().Color(name, theme.VariantDark)
	}
}

// Font возвращает шрифт по умолчанию
func (t *DarkTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon возвращает иконку по умолчанию
func (t *DarkTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size возвращает размеры по умолчанию
func (t *DarkTheme) Size(name fyne.ThemeSizeName) float32 {
	return theme.DefaultTheme().Size(name)
}

// LightTheme реализует светлую тему в стиле Windows 11
type LightTheme struct{}

// Windows 11 цветовая палитра (светлая)
var (
	lightBackground  = color.NRGBA{0xF3, 0xF3, 0xF3, 0xFF} // #F3F3F3
	lightSurface     = color.NRGBA{0xFB, 0xFB, 0xFB, 0xFF} // #FBFBFB
	lightCard        = color.NRGBA{0xFF, 0xFF, 0xFF, 0xFF} // #FFFFFF
	lightText        = color.NRGBA{0x1A, 0x1A, 0x1A, 0xFF} // #1A1A1A
	lightTextMuted   = color.NRGBA{0x61, 0x61, 0x61, 0xFF} // #616161
	lightBorder      = color.NRGBA{0xD0, 0xD0, 0xD0, 0xFF} // #D0D0D0
	lightSelection   = color.NRGBA{0xCC, 0xE4, 0xF7, 0xFF} // #CCE4F7
	lightPlaceholder = color.NRGBA{0x9A, 0x9A, 0x9A, 0xFF} // #9A9A9A
)

// Color возвращает цвет светлой темы
func (t *LightTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground:
		return lightBackground
	case theme.ColorNameButton:
		return lightCard
	case theme.ColorNameDisabledButton:
		return lightSurface
	case theme.ColorNameDisabled:
		return lightTextMuted
	case theme.ColorNameError:
		return errorColor
	case theme.ColorNameFocus:
		return borderFocus
	case theme.ColorNameForeground:
		return lightText
	case theme.ColorNameHover:
		return accentBlueHover
	case theme.ColorNameInputBackground:
		return lightCard
	case theme.ColorNameInputBorder:
		return lightBorder
	case theme.ColorNameMenuBackground:
		return lightSurface
	case theme.ColorNameOverlayBackground:
		return lightSurface
	case theme.ColorNamePlaceHolder:
		return lightPlaceholder
	case theme.ColorNamePressed:
		return accentBluePressed
	case theme.ColorNamePrimary:
		return accentBlue
	case theme.ColorNameScrollBar:
		return lightBorder
	case theme.ColorNameSelection:
		return lightSelection
	case theme.ColorNameSeparator:
		return lightBorder
	case theme.ColorNameSuccess:
		return successColor
	case theme.ColorNameWarning:
		return warningColor
	default:
		return theme.DefaultTheme().Color(name, theme.VariantLight)
	}
}

// Font возвращает шрифт по умолчанию
func (t *LightTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon возвращает иконку по умолчанию
func (t *LightTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size возвращает размеры по умолчанию
func (t *LightTheme) Size(name fyne.ThemeSizeName) float32 {
	return theme.DefaultTheme().Size(name)
}

// themeByName возвращает тему по имени из конфигурации
func themeByName(name string) fyne.Theme {
	if name == "light" {
		return &LightTheme{}
	}
	return &DarkTheme{}
}
