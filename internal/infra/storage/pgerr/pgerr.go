package pgerr

import (
	"errors"

	"github.com/lib/pq"
)

// PostgreSQL error codes the service maps to domain errors
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
	codeExclusionViolation  = "23P01"
)

// matches проверяет класс ошибки и, если указаны, имена constraint'ов
func matches(err error, code string, constraints ...string) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	if string(pqErr.Code) != code {
		return false
	}
	if len(constraints) == 0 {
		return true
	}
	for _, name := range constraints {
		if pqErr.Constraint == name {
			return true
		}
	}
	return false
}

// IsUniqueViolation сообщает, является ли ошибка нарушением unique constraint
// Если указаны имена, проверяет совпадение constraint'а с одним из них
func IsUniqueViolation(err error, constraints ...string) bool {
	return matches(err, codeUniqueViolation, constraints...)
}

// IsForeignKeyViolation сообщает, является ли ошибка нарушением foreign key
func IsForeignKeyViolation(err error, constraints ...string) bool {
	return matches(err, codeForeignKeyViolation, constraints...)
}

// IsCheckViolation сообщает, является ли ошибка нарушением check constraint
func IsCheckViolation(err error, constraints ...string) bool {
	return matches(err, codeCheckViolation, constraints...)
}

// IsExclusionViolation сообщает, является ли ошибка нарушением exclusion constraint
// Именно так БД сигнализирует о пересечении интервалов бронирования
func IsExclusionViolation(err error, constraints ...string) bool {
	return matches(err, codeExclusionViolation, constraints...)
}
