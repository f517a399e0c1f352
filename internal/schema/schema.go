// Package schema validates untyped request payloads into model inputs.
package schema

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/gerogew22122/BuiltBetterHomes/internal/model"
)

// ValidationError reports field-level problems keyed by JSON field name.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// labels are the human readable field names used in messages.
var labels = map[string]string{
	"name":              "Name",
	"email":             "Email",
	"phone":             "Phone number",
	"budget":            "Budget",
	"area":              "Area",
	"message":           "Message",
	"resendApiKey":      "Resend API key",
	"notificationEmail": "Notification email",
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ParseContactSubmission converts a decoded JSON object into a contact submission input.
// All six fields are required strings and email must be a valid address.
func ParseContactSubmission(payload map[string]any) (model.ContactSubmissionInput, error) {
	fields := map[string]string{}
	in := model.ContactSubmissionInput{
		Name:    stringField(payload, "name", fields),
		Email:   stringField(payload, "email", fields),
		Phone:   stringField(payload, "phone", fields),
		Budget:  stringField(payload, "budget", fields),
		Area:    stringField(payload, "area", fields),
		Message: stringField(payload, "message", fields),
	}
	if err := check(in, fields); err != nil {
		return model.ContactSubmissionInput{}, err
	}
	return in, nil
}

// ParseSettings converts a decoded JSON object into a settings input. Both
// fields are optional; notificationEmail must be a valid address when set.
func ParseSettings(payload map[string]any) (model.SettingsInput, error) {
	fields := map[string]string{}
	in := model.SettingsInput{
		ResendAPIKey:      stringField(payload, "resendApiKey", fields),
		NotificationEmail: stringField(payload, "notificationEmail", fields),
	}
	if err := check(in, fields); err != nil {
		return model.SettingsInput{}, err
	}
	return in, nil
}

// stringField reads key as a string. Missing and null values read as "".
// Values of any other type are recorded in fields.
func stringField(payload map[string]any, key string, fields map[string]string) string {
	raw, ok := payload[key]
	if !ok || raw == nil {
		return ""
	}
	s, ok := raw.(string)
	if !ok {
		fields[key] = labels[key] + " must be a string"
		return ""
	}
	return s
}

func check(in any, fields map[string]string) error {
	if err := validate.Struct(in); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return fmt.Errorf("validate: %w", err)
		}
		for _, fe := range verrs {
			if _, seen := fields[fe.Field()]; seen {
				continue
			}
			fields[fe.Field()] = message(fe)
		}
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

func message(fe validator.FieldError) string {
	label := labels[fe.Field()]
	switch fe.Tag() {
	case "required":
		return label + " is required"
	case "email":
		return "Please enter a valid email address"
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", label, fe.Param())
	default:
		return label + " is invalid"
	}
}
