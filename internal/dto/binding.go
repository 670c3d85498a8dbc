package dto

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/bazarkas/cashflow_app/internal/core/domain"
)

// RegisterCustomValidations attaches the domain enum checks to gin's
// binding validator so request tags stay in sync with the domain
// definitions. Call once at startup, before any request is served.
func RegisterCustomValidations() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("businesscategory", func(fl validator.FieldLevel) bool {
		return domain.BusinessCategory(fl.Field().String()).IsValid()
	})
}
