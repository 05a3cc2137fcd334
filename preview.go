package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"

	"nimbusExplorer/explorer"
)

// PreviewWidget - правая панель предпросмотра. Содержимое строит
// explorer.RenderPreview; виджет только решает, как его показать:
// изображение, подсвеченный текст или заглушка.
type PreviewWidget struct {
	widget.BaseWidget

	content   *fyne.Container
	config    *Config
	isVisible bool
}

// NewPreview создает панель предпросмотра
func NewPreview(config *Config) *PreviewWidget {
	pw := &PreviewWidget{
		config:    config,
		isVisible: config.Preview.IsVisible,
	}
	pw.content = container.NewStack(placeholderLabel("Select a file to preview"))

	pw.ExtendBaseWidget(pw)
	return pw
}

// ShowEntry отображает предпросмотр выбранного элемента
func (pw *PreviewWidget) ShowEntry(entry explorer.Entry) {
	p := explorer.RenderPreview(entry, pw.config.PreviewOptions())
	pw.setContent(pw.render(entry, p))
}

// Clear возвращает панель в исходное состояние
func (pw *PreviewWidget) Clear() {
	pw.setContent(placeholderLabel("Select a file to preview"))
}

func (pw *PreviewWidget) setContent(obj fyne.CanvasObject) {
	pw.content.Objects = []fyne.CanvasObject{obj}
	pw.content.Refresh()
}

// render выбирает представление по типу предпросмотра
func (pw *PreviewWidget) render(entry explorer.Entry, p explorer.Preview) fyne.CanvasObject {
	switch p.Kind {
	case explorer.PreviewImage:
		img := canvas.NewImageFromImage(p.Image)
		img.FillMode = canvas.ImageFillContain
		img.SetMinSize(fyne.NewSize(200, 200))
		return img

	case explorer.PreviewText:
		return container.NewScroll(pw.renderText(entry, p))

	case explorer.PreviewDirectory:
		label := widget.NewLabel(p.Note)
		label.Wrapping = fyne.TextWrapWord
		return label

	default:
		note := p.Note
		if note == "" {
			note = "no preview available"
		}
		return placeholderLabel(note)
	}
}

// renderText строит текстовое представление. Для известных языков
// содержимое прогоняется через chroma и раскрашивается по токенам.
func (pw *PreviewWidget) renderText(entry explorer.Entry, p explorer.Preview) fyne.CanvasObject {
	text := p.Text
	if p.Truncated {
		text += "\n\n[truncated]"
	}

	if pw.config.Preview.SyntaxHighlighting {
		if lexer := lexers.Match(entry.Name); lexer != nil {
			if rich := highlightedText(text, lexer); rich != nil {
				return rich
			}
		}
	}

	plain := widget.NewRichTextWithText(text)
	plain.Wrapping = fyne.TextWrapOff
	return plain
}

// highlightedText раскрашивает текст по токенам chroma. При ошибке
// токенизации возвращает nil, вызывающий падает обратно на плоский текст.
func highlightedText(text string, lexer chroma.Lexer) *widget.RichText {
	iterator, err := lexer.Tokenise(nil, text)
	if err != nil {
		return nil
	}

	segments := []widget.RichTextSegment{}
	for _, token := range iterator.Tokens() {
		if token.Value == "" {
			continue
		}
		segments = append(segments, &widget.TextSegment{
			Text: token.Value,
			Style: widget.RichTextStyle{
				ColorName: tokenColor(token.Type),
				TextStyle: fyne.TextStyle{Monospace: true},
				Inline:    true,
			},
		})
	}

	rich := widget.NewRichText(segments...)
	rich.Wrapping = fyne.TextWrapOff
	return rich
}

// tokenColor возвращает цвет темы для типа токена
func tokenColor(tokenType chroma.TokenType) fyne.ThemeColorName {
	switch {
	case tokenType.InCategory(chroma.Keyword):
		return theme.ColorNamePrimary
	case tokenType.InCategory(chroma.String):
		return theme.ColorNameSuccess
	case tokenType.InCategory(chroma.Comment):
		return theme.ColorNameDisabled
	case tokenType.InCategory(chroma.Number):
		return theme.ColorNameWarning
	default:
		return theme.ColorNameForeground
	}
}

func placeholderLabel(text string) *widget.Label {
	label := widget.NewLabel(text)
	label.Alignment = fyne.TextAlignCenter
	label.TextStyle.Italic = true
	return label
}

// SetVisible управляет видимостью панели
func (pw *PreviewWidget) SetVisible(visible bool) {
	pw.isVisible = visible
	if visible {
		AnimatePaneShow(pw.content)
	} else {
		AnimatePaneHide(pw.content)
	}
}

// IsVisible возвращает состояние видимости
func (pw *PreviewWidget) IsVisible() bool {
	return pw.isVisible
}

// CreateRenderer реализует интерфейс fyne.Widget
func (pw *PreviewWidget) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(pw.content)
}
