package explorer

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"
)

// Entry представляет один элемент файловой системы (файл или директорию)
// на момент листинга. Снимок не обновляется — при каждом обновлении
// директории создается заново.
type Entry struct {
	Name      string
	Path      string
	IsDir     bool
	Size      int64
	Modified  time.Time
	Mode      os.FileMode
	Extension string
	Hidden    bool
}

// List возвращает содержимое директории в порядке, который вернула ОС.
// Порядок не специфицирован до применения сортировки. Никакого кэширования:
// каждый вызов читает файловую систему заново.
func List(dir string) ([]Entry, error) {
	dirents, err := os.ReadDir(dir)
	if err != nil {
		return nil, Classify(err)
	}

	entries := make([]Entry, 0, len(dirents))
	for _, de := range dirents {
		info, err := de.Info()
		if err != nil {
			// Файл исчез между ReadDir и Stat — пропускаем
			continue
		}

		name := norm.NFC.String(de.Name())
		entries = append(entries, Entry{
			Name:      name,
			Path:      filepath.Join(dir, de.Name()),
			IsDir:     de.IsDir(),
			Size:      info.Size(),
			Modified:  info.ModTime(),
			Mode:      info.Mode(),
			Extension: strings.ToLower(filepath.Ext(de.Name())),
			Hidden:    strings.HasPrefix(de.Name(), "."),
		})
	}

	return entries, nil
}

// Stat возвращает Entry для одиночного пути
func Stat(path string) (Entry, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Entry{}, Classify(err)
	}

	name := norm.NFC.String(info.Name())
	return Entry{
		Name:      name,
		Path:      path,
		IsDir:     info.IsDir(),
		Size:      info.Size(),
		Modified:  info.ModTime(),
		Mode:      info.Mode(),
		Extension: strings.ToLower(filepath.Ext(info.Name())),
		Hidden:    strings.HasPrefix(info.Name(), "."),
	}, nil
}
