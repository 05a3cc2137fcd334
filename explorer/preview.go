package explorer

import (
	"fmt"
	"image"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/gabriel-vasile/mimetype"
	"golang.org/x/image/draw"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// PreviewKind определяет, что именно удалось построить для предпросмотра
type PreviewKind int

const (
	// PreviewNone - заглушка "предпросмотр недоступен"
	PreviewNone PreviewKind = iota
	// PreviewImage - декодированное и уменьшенное изображение
	PreviewImage
	// PreviewText - текстовое содержимое (возможно усеченное)
	PreviewText
	// PreviewDirectory - сводка по директории
	PreviewDirectory
)

// Preview - отображаемое представление выбранного элемента
type Preview struct {
	Kind      PreviewKind
	Image     image.Image
	Text      string
	Truncated bool
	MIME      string
	Note      string
}

// PreviewOptions ограничивают размер предпросмотра
type PreviewOptions struct {
	// MaxTextBytes - сколько байт текста читать (остальное усекается)
	MaxTextBytes int64
	// MaxImageEdge - максимальная сторона декодированного изображения
	MaxImageEdge int
}

// DefaultPreviewOptions возвращает ограничения по умолчанию
func DefaultPreviewOptions() PreviewOptions {
	return PreviewOptions{
		MaxTextBytes: 64 * 1024,
		MaxImageEdge: 1024,
	}
}

// Расширения, которые пробуем декодировать как изображение
var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".bmp":  true,
	".webp": true,
}

// RenderPreview строит предпросмотр для одного элемента. Ошибки
// декодирования и чтения никогда не поднимаются наверх: любой сбой
// превращается в заглушку.
func RenderPreview(e Entry, opts PreviewOptions) Preview {
	if opts.MaxTextBytes <= 0 {
		opts.MaxTextBytes = DefaultPreviewOptions().MaxTextBytes
	}
	if opts.MaxImageEdge <= 0 {
		opts.MaxImageEdge = DefaultPreviewOptions().MaxImageEdge
	}

	if e.IsDir {
		return previewDirectory(e)
	}

	if imageExtensions[e.Extension] {
		if p, ok := previewImage(e, opts.MaxImageEdge); ok {
			return p
		}
		return placeholder("cannot decode image")
	}

	if p, ok := previewText(e, opts.MaxTextBytes); ok {
		return p
	}

	return placeholder("no preview available")
}

func placeholder(note string) Preview {
	return Preview{Kind: PreviewNone, Note: note}
}

func previewDirectory(e Entry) Preview {
	dirents, err := os.ReadDir(e.Path)
	if err != nil {
		return placeholder("directory is not readable")
	}
	return Preview{
		Kind: PreviewDirectory,
		Note: fmt.Sprintf("Directory: %s\nItems: %d", e.Path, len(dirents)),
	}
}

func previewImage(e Entry, maxEdge int) (Preview, bool) {
	f, err := os.Open(e.Path)
	if err != nil {
		return Preview{}, false
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return Preview{}, false
	}

	return Preview{
		Kind:  PreviewImage,
		Image: boundImage(img, maxEdge),
		MIME:  "image/" + format,
	}, true
}

// boundImage уменьшает изображение так, чтобы обе стороны не превышали
// maxEdge, сохраняя пропорции. Маленькие изображения не трогаем.
func boundImage(img image.Image, maxEdge int) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= maxEdge && h <= maxEdge {
		return img
	}

	scale := float64(maxEdge) / float64(w)
	if h > w {
		scale = float64(maxEdge) / float64(h)
	}
	dw := int(float64(w) * scale)
	dh := int(float64(h) * scale)
	if dw < 1 {
		dw = 1
	}
	if dh < 1 {
		dh = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, dw, dh))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)
	return dst
}

func previewText(e Entry, maxBytes int64) (Preview, bool) {
	mime := detectMIME(e.Path)
	if mime != "" && !isTextualMIME(mime) {
		return Preview{}, false
	}

	f, err := os.Open(e.Path)
	if err != nil {
		return Preview{}, false
	}
	defer f.Close()

	buf := make([]byte, maxBytes+1)
	n, err := io.ReadFull(f, buf)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return Preview{}, false
	}

	truncated := int64(n) > maxBytes
	if truncated {
		n = int(maxBytes)
	}
	data := buf[:n]

	// Детекция по содержимому могла не сработать (пустой или нетипичный
	// файл) - дополнительно отсекаем бинарники по NUL-байтам
	if mime == "" && !looksLikeText(data) {
		return Preview{}, false
	}

	return Preview{
		Kind:      PreviewText,
		Text:      string(data),
		Truncated: truncated,
		MIME:      mime,
	}, true
}

func detectMIME(path string) string {
	m, err := mimetype.DetectFile(path)
	if err != nil {
		return ""
	}
	return m.String()
}

// isTextualMIME проверяет MIME-тип вверх по иерархии: все текстовые
// форматы (json, xml, скрипты) наследуются от text/plain
func isTextualMIME(mime string) bool {
	if strings.HasPrefix(mime, "text/") {
		return true
	}
	m := mimetype.Lookup(mime)
	for ; m != nil; m = m.Parent() {
		if m.Is("text/plain") {
			return true
		}
	}
	return false
}

// looksLikeText - эвристика для файлов без распознанного типа:
// отсутствие NUL-байтов и валидный UTF-8 в начале файла
func looksLikeText(data []byte) bool {
	probe := data
	if len(probe) > 512 {
		probe = probe[:512]
	}
	for _, b := range probe {
		if b == 0 {
			return false
		}
	}
	return utf8.Valid(trimIncompleteRune(probe))
}

// trimIncompleteRune отбрасывает возможный обрезанный UTF-8 хвост пробы
func trimIncompleteRune(p []byte) []byte {
	for i := 0; i < 4 && len(p) > 0; i++ {
		r, size := utf8.DecodeLastRune(p)
		if r != utf8.RuneError || size != 1 {
			return p
		}
		p = p[:len(p)-1]
	}
	return p
}
