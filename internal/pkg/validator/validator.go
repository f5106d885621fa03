package validator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var (
	validate    *validator.Validate
	objectIDHex = regexp.MustCompile(`^[0-9a-f]{24}$`)
)

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("objectid", func(fl validator.FieldLevel) bool {
		return IsObjectIDHex(fl.Field().String())
	})
}

// Validate - валидация структуры
func Validate(s interface{}) error {
	return validate.Struct(s)
}

// Var - валидация одного значения по тегу
func Var(field interface{}, tag string) error {
	return validate.Var(field, tag)
}

// IsObjectIDHex - 24 символа в нижнем регистре hex, как у идентификаторов документного хранилища
func IsObjectIDHex(s string) bool {
	return objectIDHex.MatchString(s)
}

// GetValidator - получить валидатор для кастомной конфигурации
func GetValidator() *validator.Validate {
	return validate
}
