package utils

import (
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Layouts produced by the datetime-local input, with and without seconds.
var eventTimeLayouts = []string{"2006-01-02T15:04", "2006-01-02T15:04:05"}

func InitValidator() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("eventtime", ValidateEventTimeRule)
	}
}

func ValidateEventTimeRule(fl validator.FieldLevel) bool {
	return ValidateEventTime(fl.Field().String())
}

func ValidateEventTime(value string) bool {
	for _, layout := range eventTimeLayouts {
		if _, err := time.Parse(layout, value); err == nil {
			return true
		}
	}
	return false
}
