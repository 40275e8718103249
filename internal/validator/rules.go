package validator

import (
	"github.com/go-playground/validator/v10"
)

// Роли и статусы, принимаемые на входе API
var (
	allowedRoles             = map[string]bool{"band": true, "venue": true}
	allowedContactMethods    = map[string]bool{"whatsapp": true, "instagram": true, "email": true}
	allowedApplicationStatus = map[string]bool{"accepted": true, "declined": true}
)

// registerCustomRules регистрирует доменные правила валидации
func registerCustomRules(v *validator.Validate) {
	_ = v.RegisterValidation("user_role", func(fl validator.FieldLevel) bool {
		return allowedRoles[fl.Field().String()]
	})

	_ = v.RegisterValidation("contact_method", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return s == "" || allowedContactMethods[s]
	})

	// Переходы статуса отклика: только accepted или declined,
	// возврат в pending не поддерживается
	_ = v.RegisterValidation("application_status", func(fl validator.FieldLevel) bool {
		return allowedApplicationStatus[fl.Field().String()]
	})
}
