package value

// Tier — уровень доступа вызывающего, определяется по предъявленному токену.
// Вычисляется один раз на запрос и передаётся явным аргументом во все
// доменные операции.
type Tier int

const (
	TierUnauthorized Tier = iota
	TierGuest
	TierAdmin
)

func (t Tier) String() string {
	switch t {
	case TierGuest:
		return "guest"
	case TierAdmin:
		return "admin"
	default:
		return "unauthorized"
	}
}

// Valid — предъявлен ли хоть какой-то действительный токен.
func (t Tier) Valid() bool {
	return t == TierGuest || t == TierAdmin
}

func (t Tier) IsAdmin() bool {
	return t == TierAdmin
}
