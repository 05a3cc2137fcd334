package explorer

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Операции делегируются файловым примитивам ОС напрямую. Транзакционного
// отката нет: прерванное копирование оставляет приемник в том состоянии,
// в котором его оставил системный вызов. Каждая операция выполняется
// ровно один раз, без повторов.

// Copy копирует файл или директорию (рекурсивно) в dst. Если dst уже
// существует и overwrite не установлен, возвращает ErrAlreadyExists.
func Copy(src, dst string, overwrite bool) error {
	info, err := os.Stat(src)
	if err != nil {
		return Classify(err)
	}

	if err := checkDestination(dst, overwrite); err != nil {
		return err
	}

	if info.IsDir() {
		return copyDir(src, dst)
	}
	return copyFile(src, dst, info.Mode())
}

// Move перемещает файл или директорию. Сначала пробуем дешевый rename,
// при переносе между файловыми системами падаем обратно на copy+delete.
func Move(src, dst string, overwrite bool) error {
	if _, err := os.Stat(src); err != nil {
		return Classify(err)
	}

	if err := checkDestination(dst, overwrite); err != nil {
		return err
	}

	if err := os.Rename(src, dst); err == nil {
		return nil
	}

	if err := Copy(src, dst, overwrite); err != nil {
		return err
	}
	return Classify(os.RemoveAll(src))
}

// Rename переименовывает элемент внутри его директории и возвращает
// новый путь. Занятое имя - ErrAlreadyExists.
func Rename(path, newName string) (string, error) {
	if _, err := os.Stat(path); err != nil {
		return "", Classify(err)
	}

	newPath := filepath.Join(filepath.Dir(path), newName)
	if _, err := os.Lstat(newPath); err == nil {
		return "", fmt.Errorf("%w: %s", ErrAlreadyExists, newPath)
	}

	if err := os.Rename(path, newPath); err != nil {
		return "", Classify(err)
	}
	return newPath, nil
}

// Delete удаляет файл или директорию. Непустая директория без
// recursive-флага не трогается и возвращает ErrNotEmpty.
func Delete(path string, recursive bool) error {
	info, err := os.Stat(path)
	if err != nil {
		return Classify(err)
	}

	if recursive {
		return Classify(os.RemoveAll(path))
	}

	if info.IsDir() {
		dirents, err := os.ReadDir(path)
		if err != nil {
			return Classify(err)
		}
		if len(dirents) > 0 {
			return fmt.Errorf("%w: %s", ErrNotEmpty, path)
		}
	}

	return Classify(os.Remove(path))
}

// Mkdir создает директорию name внутри parent и возвращает ее путь
func Mkdir(parent, name string) (string, error) {
	path := filepath.Join(parent, name)
	if err := os.Mkdir(path, 0755); err != nil {
		return "", Classify(err)
	}
	return path, nil
}

// CreateFile создает пустой файл name внутри parent и возвращает его путь
func CreateFile(parent, name string) (string, error) {
	path := filepath.Join(parent, name)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
	if err != nil {
		return "", Classify(err)
	}
	f.Close()
	return path, nil
}

// checkDestination реализует политику перезаписи: коллизия приемника -
// это ошибка, пока вызывающий явно не подтвердил перезапись
func checkDestination(dst string, overwrite bool) error {
	if _, err := os.Lstat(dst); err == nil {
		if !overwrite {
			return fmt.Errorf("%w: %s", ErrAlreadyExists, dst)
		}
		return nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return Classify(err)
	}
	return nil
}

func copyFile(src, dst string, mode os.FileMode) error {
	in, err := os.Open(src)
	if err != nil {
		return Classify(err)
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, mode.Perm())
	if err != nil {
		return Classify(err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return Classify(err)
	}
	return Classify(out.Close())
}

func copyDir(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return Classify(err)
	}

	if err := os.MkdirAll(dst, info.Mode().Perm()); err != nil {
		return Classify(err)
	}

	dirents, err := os.ReadDir(src)
	if err != nil {
		return Classify(err)
	}

	for _, de := range dirents {
		srcChild := filepath.Join(src, de.Name())
		dstChild := filepath.Join(dst, de.Name())

		if de.IsDir() {
			if err := copyDir(srcChild, dstChild); err != nil {
				return err
			}
			continue
		}

		childInfo, err := de.Info()
		if err != nil {
			return Classify(err)
		}
		if err := copyFile(srcChild, dstChild, childInfo.Mode()); err != nil {
			return err
		}
	}

	return nil
}
