package validation

import (
	"fmt"

	"careertrack-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

// FieldNames maps struct field names to the JSON names clients submit,
// so error payloads talk about the wire field, not the Go field.
var FieldNames = map[string]string{
	// Application fields
	"CompanyName": "company_name",
	"JobTitle":    "job_title",
	"JobURL":      "job_url",
	"Status":      "status",
	"AppliedDate": "applied_date",
	"Notes":       "notes",

	// Client / onboarding fields
	"TargetJobTitle":  "targetJobTitle",
	"ExperienceLevel": "experienceLevel",
	"JobDescription":  "jobDescription",

	// Resume fields
	"VersionName": "version_name",
	"ContentType": "content_type",

	// Session fields
	"InterviewTypeID": "interview_type_id",
	"ApplicationID":   "application_id",
	"StartTime":       "start_time",
	"EndTime":         "end_time",
}

// FormatValidationErrors converts validator.ValidationErrors into itemized
// field errors. All failing rules are reported together so the caller can
// correct the whole payload in one resubmission.
func FormatValidationErrors(err error) []apperror.FieldError {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		// Not a validation error, return generic message
		return []apperror.FieldError{{Field: "body", Message: err.Error()}}
	}

	fields := make([]apperror.FieldError, 0, len(validationErrors))
	for _, e := range validationErrors {
		fields = append(fields, apperror.FieldError{
			Field:   fieldName(e.Field()),
			Message: formatSingleError(e),
		})
	}

	return fields
}

// formatSingleError formats a single validation error to a user-friendly message
func formatSingleError(e validator.FieldError) string {
	name := fieldName(e.Field())
	tag := e.Tag()
	param := e.Param()

	switch tag {
	case "required":
		return fmt.Sprintf("%s is required", name)

	case "min":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at least %s character(s)", name, param)
		}
		return fmt.Sprintf("%s must be at least %s", name, param)

	case "max":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at most %s character(s)", name, param)
		}
		return fmt.Sprintf("%s must be at most %s", name, param)

	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", name, param)

	case "email":
		return fmt.Sprintf("%s must be a valid email address", name)

	case "url":
		return fmt.Sprintf("%s must be a valid URL", name)

	case "uuid":
		return fmt.Sprintf("%s must be a valid UUID", name)

	case "gtfield":
		return fmt.Sprintf("%s must be after %s", name, fieldName(param))

	default:
		// Fallback for unknown tags
		return fmt.Sprintf("%s failed validation (%s)", name, tag)
	}
}

func fieldName(structField string) string {
	if name, ok := FieldNames[structField]; ok {
		return name
	}
	return structField
}
