package dto

import (
	"fmt"
	"regexp"

	"github.com/SscSPs/books_core/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var currencyCodeRE = regexp.MustCompile(`^[A-Z]{3}$`)

// RegisterValidators adds the custom binding tags used by the request DTOs:
// currency_code (ISO 4217, upper case) and schema_name (a registered schema).
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected binding validator engine %T", binding.Validator.Engine())
	}
	if err := v.RegisterValidation("currency_code", validateCurrencyCode); err != nil {
		return fmt.Errorf("failed to register currency_code: %w", err)
	}
	if err := v.RegisterValidation("schema_name", validateSchemaName); err != nil {
		return fmt.Errorf("failed to register schema_name: %w", err)
	}
	return nil
}

func validateCurrencyCode(fl validator.FieldLevel) bool {
	return currencyCodeRE.MatchString(fl.Field().String())
}

func validateSchemaName(fl validator.FieldLevel) bool {
	_, ok := domain.LookupSchema(domain.SchemaName(fl.Field().String()))
	return ok
}
