package utils

import (
	"carehome-service/internal/pkg/constvars"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("iso_date", validateISODate)
	validate.RegisterValidation("stock_source", validateStockSource)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateISODate(fl validator.FieldLevel) bool {
	_, err := time.Parse(time.DateOnly, fl.Field().String())
	return err == nil
}

func validateStockSource(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == constvars.StockSourceHome || value == constvars.StockSourceFamily
}
