package api

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var playerNamePattern = regexp.MustCompile(`^[A-Za-z0-9_ ]+$`)

type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator returns an echo.Validator that reports fields by their JSON
// names and knows the "playername" rule.
func NewValidator() *CustomValidator {
	v := validator.New()

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Registration only fails for an empty tag or nil func.
	_ = v.RegisterValidation("playername", validatePlayerName)

	return &CustomValidator{validator: v}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// validatePlayerName accepts letters, digits, underscores and spaces, and
// rejects names that are only spaces.
func validatePlayerName(fl validator.FieldLevel) bool {
	name := fl.Field().String()
	return playerNamePattern.MatchString(name) && strings.TrimSpace(name) != ""
}
