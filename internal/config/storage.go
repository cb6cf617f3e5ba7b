package config

// Storage — корень файлового хранилища ассетов.
// Изображения лежат в <Root>/static/images.
type Storage struct {
	Root string `env:"STORAGE_ROOT" envDefault:"."`
}
