package explorer

// History хранит посещенные директории и позицию в них. Владелец -
// навигационный контроллер; виджеты изменяют историю только через
// Open/Back/Forward.
type History struct {
	paths []string
	index int
}

// NewHistory создает историю с начальной директорией
func NewHistory(start string) *History {
	return &History{paths: []string{start}}
}

// Current возвращает текущую директорию
func (h *History) Current() string {
	return h.paths[h.index]
}

// Open переходит в новую директорию: хвост "вперед" обрезается,
// путь добавляется в конец. Повторное открытие текущей директории
// историю не изменяет.
func (h *History) Open(path string) {
	if path == h.Current() {
		return
	}
	h.paths = append(h.paths[:h.index+1], path)
	h.index = len(h.paths) - 1
}

// Back переходит назад по истории. Возвращает false, если идти некуда.
func (h *History) Back() (string, bool) {
	if h.index == 0 {
		return h.Current(), false
	}
	h.index--
	return h.Current(), true
}

// Forward переходит вперед по истории
func (h *History) Forward() (string, bool) {
	if h.index >= len(h.paths)-1 {
		return h.Current(), false
	}
	h.index++
	return h.Current(), true
}

// CanBack сообщает, возможен ли переход назад
func (h *History) CanBack() bool {
	return h.index > 0
}

// CanForward сообщает, возможен ли переход вперед
func (h *History) CanForward() bool {
	return h.index < len(h.paths)-1
}
