package validators

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"runji/models"

	"github.com/go-playground/validator/v10"
)

// ValidationErrors maps a field path (json names) to a human readable message.
type ValidationErrors map[string]string

func (e ValidationErrors) Error() string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field+": "+e[field])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// SubmitMessages are shown for the exam submission payloads.
var SubmitMessages = map[string]string{
	"studentId":     "학생 ID가 필요합니다",
	"studentName":   "이름이 필요합니다",
	"unitName":      "단원명이 필요합니다",
	"unitName.unit": "존재하지 않는 단원입니다",
	"examId":        "시험 ID가 필요합니다",
	"answers":       "답안이 필요합니다",
}

// LoginMessages are shown for the login payload.
var LoginMessages = map[string]string{
	"studentId":   "학생 ID를 입력해주세요",
	"studentName": "이름을 입력해주세요",
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})
	_ = v.RegisterValidation("unit", func(fl validator.FieldLevel) bool {
		return models.IsUnit(fl.Field().String())
	})
	return v
}

// Struct validates v and converts failures into ValidationErrors. messages is
// consulted first by "field.tag", then by "field"; other failures get a generic message.
func Struct(v any, messages map[string]string) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	errs := make(ValidationErrors, len(fieldErrs))
	for _, fe := range fieldErrs {
		field := fieldPath(fe)
		if _, seen := errs[field]; seen {
			continue
		}
		errs[field] = message(field, fe, messages)
	}
	return errs
}

// SubmitTest validates a whole-exam submission payload.
func SubmitTest(req *models.SubmitTest) error {
	return Struct(req, SubmitMessages)
}

// SubmitUnitTest validates a single-unit submission payload.
func SubmitUnitTest(req *models.SubmitUnitTest) error {
	return Struct(req, SubmitMessages)
}

// Login validates a login payload.
func Login(req *models.Login) error {
	return Struct(req, LoginMessages)
}

// Insert validates a row before it is written. Server-assigned fields
// (id, submittedAt, updatedAt) carry no rules and are ignored.
func Insert(row any) error {
	return Struct(row, nil)
}

// fieldPath drops the struct name from the namespace: "SubmitTest.answers[0].answer" -> "answers[0].answer".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func message(field string, fe validator.FieldError, messages map[string]string) string {
	if msg, ok := messages[field+"."+fe.Tag()]; ok {
		return msg
	}
	if msg, ok := messages[field]; ok {
		return msg
	}

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required!", field)
	case "gte", "min":
		return fmt.Sprintf("%s must be at least %s!", field, fe.Param())
	case "lte", "max":
		return fmt.Sprintf("%s must be at most %s!", field, fe.Param())
	case "ltefield":
		return fmt.Sprintf("%s must not exceed %s!", field, lowerFirst(fe.Param()))
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]!", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid!", field)
	}
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
