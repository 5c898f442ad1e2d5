package dto

import (
	"strings"

	"github.com/cardledger/cardledger_backend/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterCustomValidations installs the binding validations that reference
// in-process domain tables. Called once at startup.
func RegisterCustomValidations() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("supported_currency", func(fl validator.FieldLevel) bool {
		return domain.IsSupportedCurrency(strings.ToUpper(fl.Field().String()))
	})
}
