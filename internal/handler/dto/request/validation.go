package request

import (
	"parkeaze/internal/domain/lot"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidations installs custom binding rules on gin's validator.
func RegisterValidations() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("vehicletype", func(fl validator.FieldLevel) bool {
			return lot.VehicleType(fl.Field().String()).IsValid()
		})
	}
}
