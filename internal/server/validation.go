package server

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var paymentMethods = map[string]bool{
	"card":          true,
	"cash":          true,
	"bank_transfer": true,
}

// SetupValidation registers custom request validators on gin's binding
// engine. Request structs reference them through `binding` tags.
func SetupValidation() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	v.RegisterValidation("payment_method", func(fl validator.FieldLevel) bool {
		return paymentMethods[fl.Field().String()]
	})
}
