package contact

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FormData is one contact form submission. It is validated, delivered and discarded.
type FormData struct {
	FirstName string `form:"firstName" json:"firstName" binding:"required,min=2" validate:"required,min=2"`
	LastName  string `form:"lastName" json:"lastName" binding:"required,min=2" validate:"required,min=2"`
	Email     string `form:"email" json:"email" binding:"required,email" validate:"required,email"`
	Subject   string `form:"subject" json:"subject" binding:"required,oneof=project collaboration job consultation other" validate:"required,oneof=project collaboration job consultation other"`
	Message   string `form:"message" json:"message" binding:"required,min=10" validate:"required,min=10"`
	Privacy   bool   `form:"privacy" json:"privacy" binding:"required" validate:"required"`
}

// FullName joins first and last name
func (f FormData) FullName() string {
	return strings.TrimSpace(f.FirstName + " " + f.LastName)
}

type Subject struct {
	Value string
	Label string
}

// Subjects lists the options of the subject selector
var Subjects = []Subject{
	{"project", "Project Inquiry"},
	{"collaboration", "Collaboration"},
	{"job", "Job Opportunity"},
	{"consultation", "Consultation"},
	{"other", "Other"},
}

// SubjectLabel returns the display label for a subject value
func SubjectLabel(value string) string {
	for _, s := range Subjects {
		if s.Value == value {
			return s.Label
		}
	}
	return value
}

// FieldErrors maps form field names to the message shown under the field
type FieldErrors map[string]string

var messages = map[string]string{
	"FirstName": "First name must be at least 2 characters",
	"LastName":  "Last name must be at least 2 characters",
	"Email":     "Please enter a valid email address",
	"Subject":   "Please select a subject",
	"Message":   "Message must be at least 10 characters",
	"Privacy":   "You must agree to the privacy policy",
}

var formNames = func() map[string]string {
	names := make(map[string]string)
	t := reflect.TypeOf(FormData{})
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		names[f.Name] = f.Tag.Get("form")
	}
	return names
}()

var validate = validator.New()

// Validate checks the submission and returns nil when it is acceptable
func Validate(f FormData) FieldErrors {
	errs, _ := FromError(validate.Struct(f))
	return errs
}

// FromError converts validator errors, including those returned by gin binding,
// into field messages. ok is false for errors that are not validation failures.
func FromError(err error) (errs FieldErrors, ok bool) {
	if err == nil {
		return nil, true
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil, false
	}

	errs = make(FieldErrors, len(verrs))
	for _, fe := range verrs {
		field := fe.StructField()
		name, known := formNames[field]
		if !known {
			name = fe.Field()
		}
		if _, seen := errs[name]; seen {
			continue
		}
		msg, known := messages[field]
		if !known {
			msg = "Invalid value"
		}
		errs[name] = msg
	}
	return errs, true
}
