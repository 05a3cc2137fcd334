package explorer

import (
	"sort"
	"strings"
)

// SortKey определяет ключ сортировки списка файлов
type SortKey int

const (
	SortByName SortKey = iota
	SortByType
	SortBySize
	SortByDate
)

// ParseSortKey переводит строковое значение из конфигурации в SortKey
func ParseSortKey(s string) SortKey {
	switch strings.ToLower(s) {
	case "type":
		return SortByType
	case "size":
		return SortBySize
	case "date":
		return SortByDate
	default:
		return SortByName
	}
}

// String возвращает имя ключа для конфигурации
func (k SortKey) String() string {
	switch k {
	case SortByType:
		return "type"
	case SortBySize:
		return "size"
	case SortByDate:
		return "date"
	default:
		return "name"
	}
}

// Sort сортирует список на месте. Сортировка стабильная: элементы с
// равным ключом сохраняют порядок исходного перечисления. Директории
// всегда группируются перед файлами, независимо от направления.
func Sort(entries []Entry, key SortKey, ascending bool) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]

		if a.IsDir != b.IsDir {
			return a.IsDir
		}

		var less, equal bool

		switch key {
		case SortByType:
			less = a.Extension < b.Extension
			equal = a.Extension == b.Extension
		case SortBySize:
			less = a.Size < b.Size
			equal = a.Size == b.Size
		case SortByDate:
			less = a.Modified.Before(b.Modified)
			equal = a.Modified.Equal(b.Modified)
		default:
			an, bn := strings.ToLower(a.Name), strings.ToLower(b.Name)
			less = an < bn
			equal = an == bn
		}

		if equal {
			return false
		}

		if !ascending {
			return !less
		}
		return less
	})
}
