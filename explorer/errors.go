package explorer

import (
	"errors"
	"fmt"
	"io/fs"
	"syscall"
)

// Таксономия ошибок файловых операций. Все операции пакета возвращают
// ошибки, которые можно проверить через errors.Is с одним из этих значений.
var (
	// ErrAccess - отказано в доступе
	ErrAccess = errors.New("access denied")

	// ErrNotFound - путь не существует (или исчез между листингом и операцией)
	ErrNotFound = errors.New("path not found")

	// ErrAlreadyExists - целевой путь уже занят
	ErrAlreadyExists = errors.New("destination already exists")

	// ErrNotEmpty - директория не пуста (удаление без рекурсивного флага)
	ErrNotEmpty = errors.New("directory not empty")
)

// Classify переводит ошибку ОС в ошибку таксономии, сохраняя исходный
// текст через %w-обертку. Неизвестные ошибки возвращаются как есть.
func Classify(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, fs.ErrPermission):
		return fmt.Errorf("%w: %v", ErrAccess, err)
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	case errors.Is(err, fs.ErrExist):
		return fmt.Errorf("%w: %v", ErrAlreadyExists, err)
	case errors.Is(err, syscall.ENOTEMPTY):
		return fmt.Errorf("%w: %v", ErrNotEmpty, err)
	default:
		return err
	}
}
