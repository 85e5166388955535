package utils

import (
	"regexp"

	"dentaldesk-service/internal/pkg/constvars"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("password", validatePassword)
	validate.RegisterValidation("role", validateRole)
	validate.RegisterValidation("planner_status", validatePlannerStatus)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validatePassword(fl validator.FieldLevel) bool {
	return len(fl.Field().String()) >= 8
}

func validateRole(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case constvars.RoleUser, constvars.RoleAdmin, constvars.RoleDentist, constvars.RoleReceptionist:
		return true
	}
	return false
}

func validatePlannerStatus(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case constvars.PlannerStatusPlanned, constvars.PlannerStatusInProgress,
		constvars.PlannerStatusCompleted, constvars.PlannerStatusCancelled:
		return true
	}
	return false
}

func IsValidEmail(email string) bool {
	re := regexp.MustCompile(constvars.RegexEmail)
	return re.MatchString(email)
}
