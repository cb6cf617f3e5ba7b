package assetstore

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/rs/xid"

	"gift_registry/internal/domain"
	"gift_registry/pkg/errcodes"
)

// расширение только из букв и цифр, не длиннее ".jpeg"
var extPattern = regexp.MustCompile(`^\.[a-z0-9]{1,5}$`)

// FileStore хранит блобы изображений на файловой системе и выдаёт
// стабильные ссылки вида "static/images/<xid><ext>". Ссылка попадает в
// запись каталога только после подтверждённой записи файла.
type FileStore struct {
	root   string // каталог, содержащий static/
	prefix string // префикс ссылок, он же относительный путь
}

func NewFileStore(root string) (*FileStore, error) {
	store := &FileStore{
		root:   root,
		prefix: path.Join("static", "images"),
	}

	if err := os.MkdirAll(filepath.Join(root, "static", "images"), 0o755); err != nil {
		return nil, fmt.Errorf("os.MkdirAll: %w", err)
	}

	return store, nil
}

// Store записывает блоб и возвращает ссылку на него.
func (s *FileStore) Store(data []byte, ext string) (string, error) {
	ext = normalizeExt(ext)
	if !extPattern.MatchString(ext) {
		ext = ""
	}

	ref := path.Join(s.prefix, xid.New().String()+ext)

	if err := os.WriteFile(s.refPath(ref), data, 0o644); err != nil {
		return "", domain.WrapError(err, errcodes.AssetError, "failed to store asset")
	}

	return ref, nil
}

// Replace сохраняет новый блоб и удаляет старый. Старый файл трогаем
// только после подтверждённой записи нового.
func (s *FileStore) Replace(oldRef string, data []byte, ext string) (string, error) {
	newRef, err := s.Store(data, ext)
	if err != nil {
		return "", err
	}

	if err := s.Delete(oldRef); err != nil {
		// Осиротевший файл — не причина ронять замену.
		return newRef, err
	}

	return newRef, nil
}

// Delete удаляет блоб по ссылке. Идемпотентно: отсутствие файла не ошибка.
func (s *FileStore) Delete(ref string) error {
	if ref == "" {
		return nil
	}

	if !strings.HasPrefix(ref, s.prefix) {
		return domain.NewError(errcodes.AssetError, "asset reference outside the store")
	}

	if err := os.Remove(s.refPath(ref)); err != nil && !os.IsNotExist(err) {
		return domain.WrapError(err, errcodes.AssetError, "failed to delete asset")
	}

	return nil
}

// Dir — корень раздачи статики для HTTP-сервера.
func (s *FileStore) Dir() string {
	return filepath.Join(s.root, "static")
}

func (s *FileStore) refPath(ref string) string {
	return filepath.Join(s.root, filepath.FromSlash(ref))
}

func normalizeExt(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}
