package handlers

import (
	"errors"
	"fmt"

	"github.com/SscSPs/money_fx_service/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators adds the "currencycode" binding tag, which accepts codes
// supported by registry in any letter case.
func RegisterValidators(registry *domain.CurrencyRegistry) error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("unexpected binding validator engine")
	}
	if err := v.RegisterValidation("currencycode", currencyCodeValidator(registry)); err != nil {
		return fmt.Errorf("failed to register currencycode validator: %w", err)
	}
	return nil
}

func currencyCodeValidator(registry *domain.CurrencyRegistry) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return registry.IsSupported(fl.Field().String())
	}
}
