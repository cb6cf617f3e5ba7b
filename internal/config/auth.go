package config

// Auth — два фиксированных токена. Гостевой обязателен, админский
// опционален: без него административные операции недоступны вовсе.
type Auth struct {
	GuestToken string `env:"ACCESS_TOKEN,notEmpty" json:"-"`
	AdminToken string `env:"ADMIN_TOKEN" json:"-"`
}
