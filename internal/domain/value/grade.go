package value

import (
	"gift_registry/internal/domain"
	"gift_registry/pkg/errcodes"
)

// Grade — редкость подарка в каталоге.
type Grade string

const (
	GradeCommon    Grade = "common"
	GradeRare      Grade = "rare"
	GradeEpic      Grade = "epic"
	GradeLegendary Grade = "legendary"
)

func (g Grade) String() string {
	return string(g)
}

// ParseGrade проверяет, что строка — одно из четырёх допустимых значений.
// Пустая строка означает значение по умолчанию (common).
func ParseGrade(s string) (Grade, error) {
	switch Grade(s) {
	case "":
		return GradeCommon, nil
	case GradeCommon, GradeRare, GradeEpic, GradeLegendary:
		return Grade(s), nil
	default:
		return "", domain.NewError(errcodes.InvalidGrade, "unknown grade: "+s)
	}
}
