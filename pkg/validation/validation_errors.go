package validation

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// fieldLabels maps request struct field names to the names clients know them by.
var fieldLabels = map[string]string{
	"Username":    "username",
	"Email":       "email",
	"Password":    "password",
	"Role":        "role",
	"FullName":    "full_name",
	"Phone":       "phone",
	"Location":    "location",
	"Title":       "title",
	"Description": "description",
	"SalaryRange": "salary_range",
	"JobType":     "job_type",
	"JobID":       "job_id",
	"Message":     "message",
}

// Format turns a binding error into the API's human-readable message.
// Required-field violations come out as "<field> is required", matching what
// clients of this API have always been shown.
func Format(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "Invalid request body"
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := fieldLabels[fe.Field()]
		if field == "" {
			field = strings.ToLower(fe.Field())
		}
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, field+" is required")
		case "email":
			msgs = append(msgs, field+" must be a valid email address")
		case "oneof":
			msgs = append(msgs, "Invalid "+field)
		case "min":
			msgs = append(msgs, field+" is too short")
		default:
			msgs = append(msgs, field+" is invalid")
		}
	}
	return strings.Join(msgs, "; ")
}
