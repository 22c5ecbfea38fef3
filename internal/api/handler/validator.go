package handler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var fieldMessages = map[string]string{
	"required": "%s is required",
	"email":    "%s must be a valid email",
	"min":      "%s must be at least %s characters",
	"max":      "%s must be at most %s characters",
}

// echoValidator adapts go-playground/validator to echo's Validator
// interface. Every failing field contributes to the message so a client
// sees all problems with a payload at once.
type echoValidator struct {
	v *validator.Validate
}

func NewValidator() *echoValidator {
	return &echoValidator{v: validator.New()}
}

func (ev *echoValidator) Validate(i any) error {
	err := ev.v.Struct(i)
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err
	}

	var b strings.Builder
	for i, fe := range ve {
		if i > 0 {
			b.WriteString("; ")
		}
		field := strings.ToLower(fe.Field())
		if tmpl, ok := fieldMessages[fe.Tag()]; ok {
			if strings.Count(tmpl, "%s") == 2 {
				fmt.Fprintf(&b, tmpl, field, fe.Param())
			} else {
				fmt.Fprintf(&b, tmpl, field)
			}
			continue
		}
		fmt.Fprintf(&b, "%s failed on %s", field, fe.Tag())
	}
	return errors.New(b.String())
}
