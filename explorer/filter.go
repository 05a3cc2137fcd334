package explorer

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// MatchMode определяет способ сопоставления запроса с именем файла
type MatchMode int

const (
	// MatchSubstring - вхождение подстроки без учета регистра
	MatchSubstring MatchMode = iota
	// MatchGlob - шаблон в стиле оболочки (*.txt, data_*.csv)
	MatchGlob
	// MatchFuzzy - нечеткое совпадение по подпоследовательности символов
	MatchFuzzy
)

// DetectMode выбирает режим для запроса: наличие метасимволов шаблона
// переключает подстрочный поиск на glob, как в строке поиска проводника.
func DetectMode(query string, preferFuzzy bool) MatchMode {
	if strings.ContainsAny(query, "*?[") {
		return MatchGlob
	}
	if preferFuzzy {
		return MatchFuzzy
	}
	return MatchSubstring
}

// Filter возвращает подпоследовательность элементов, чьи имена
// соответствуют запросу. Относительный порядок сохраняется. Пустой
// запрос возвращает исходный список без изменений.
func Filter(entries []Entry, query string, mode MatchMode) []Entry {
	if query == "" {
		return entries
	}

	matched := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if Matches(e.Name, query, mode) {
			matched = append(matched, e)
		}
	}
	return matched
}

// Matches проверяет одно имя против запроса в заданном режиме
func Matches(name, query string, mode MatchMode) bool {
	switch mode {
	case MatchGlob:
		ok, err := doublestar.Match(strings.ToLower(query), strings.ToLower(name))
		if err != nil {
			// Некорректный шаблон трактуем как подстроку
			return containsFold(name, query)
		}
		return ok
	case MatchFuzzy:
		return fuzzy.MatchNormalizedFold(query, name)
	default:
		return containsFold(name, query)
	}
}

func containsFold(name, query string) bool {
	return strings.Contains(strings.ToLower(name), strings.ToLower(query))
}
