package submission

import (
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"math"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// Accepted shapes for email and phone input.
const (
	EmailPattern = `^[^\s@]+@[^\s@]+\.[^\s@]+$`
	PhonePattern = `^[\d\s\-+()]{10,15}$`
)

var (
	emailPattern = regexp.MustCompile(EmailPattern)
	phonePattern = regexp.MustCompile(PhonePattern)

	angleBrackets = strings.NewReplacer("<", "", ">", "")

	rules = newValidator()
)

// Validator tags for the site's email and phone shapes. Both are looser than
// the validator's built-in email rule.
const (
	tagEmail = "form_email"
	tagPhone = "form_phone"
)

func newValidator() *validator.Validate {
	v := validator.New()
	mustRegisterPattern(v, tagEmail, emailPattern)
	mustRegisterPattern(v, tagPhone, phonePattern)
	return v
}

func mustRegisterPattern(v *validator.Validate, tag string, re *regexp.Regexp) {
	err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
		return re.MatchString(fl.Field().String())
	})
	if err != nil {
		panic(fmt.Sprintf("register %s: %v", tag, err))
	}
}

// Sanitization caps, in runes.
const (
	capEmail    = 100
	capShort    = 100
	capText     = 500
	capLongText = 1000
)

// shape is the JSON type a field must have before its rules run.
type shape int

const (
	shapeText         shape = iota // string
	shapeNumber                    // number without a fractional part
	shapeOptionalText              // string, null or absent
)

// Field describes how one input key is validated and sanitized.
type Field struct {
	Key   string
	shape shape
	// tag holds the validator rules for the value, trimmed first when trim
	// is set. rawTag rules always see the untrimmed string.
	tag    string
	rawTag string
	trim   bool
	// messages maps a failed validator tag to its client message. mistyped
	// is reported when the value has the wrong JSON type.
	messages map[string]string
	mistyped string
	cap      int
}

func minText(key string, min, cap int, message string) Field {
	return Field{
		Key:      key,
		shape:    shapeText,
		tag:      fmt.Sprintf("min=%d", min),
		trim:     true,
		messages: map[string]string{"min": message},
		mistyped: message,
		cap:      cap,
	}
}

func personName(key, label string, cap int) Field {
	return minText(key, 2, cap, label+" must be at least 2 characters long")
}

// rejectLonger makes untrimmed input longer than n runes a violation.
func (f Field) rejectLonger(n int, message string) Field {
	f.rawTag = fmt.Sprintf("max=%d", n)
	f.messages = maps.Clone(f.messages)
	f.messages["max"] = message
	return f
}

func email() Field {
	return Field{
		Key:   "email",
		shape: shapeText,
		tag:   "required," + tagEmail,
		messages: map[string]string{
			"required": "Email is required",
			tagEmail:   "Invalid email format",
		},
		mistyped: "Email is required",
		cap:      capEmail,
	}
}

func phone(cap int) Field {
	return Field{
		Key:   "phone",
		shape: shapeText,
		tag:   "required," + tagPhone,
		messages: map[string]string{
			"required": "Phone number is required",
			tagPhone:   "Invalid phone number format",
		},
		mistyped: "Phone number is required",
		cap:      cap,
	}
}

func required(key string, cap int, message string) Field {
	return Field{
		Key:      key,
		shape:    shapeText,
		tag:      "required",
		messages: map[string]string{"required": message},
		mistyped: message,
		cap:      cap,
	}
}

func optional(key, label string, cap int) Field {
	return Field{Key: key, shape: shapeOptionalText, mistyped: label + " must be text", cap: cap}
}

func count(key string, min int, message string) Field {
	return Field{
		Key:      key,
		shape:    shapeNumber,
		tag:      fmt.Sprintf("gte=%d", min),
		messages: map[string]string{"gte": message},
		mistyped: message,
	}
}

func between(key string, min, max int, message string) Field {
	return Field{
		Key:      key,
		shape:    shapeNumber,
		tag:      fmt.Sprintf("gte=%d,lte=%d", min, max),
		messages: map[string]string{"gte": message, "lte": message},
		mistyped: message,
	}
}

// check returns the messages for every rule the raw value violates. The JSON
// type is checked first; the validator only sees values of the right shape.
func (f Field) check(raw any, present bool) []string {
	switch f.shape {
	case shapeOptionalText:
		if !present || raw == nil {
			return nil
		}
		if _, ok := raw.(string); !ok {
			return []string{f.mistyped}
		}
		return nil
	case shapeNumber:
		n, ok := wholeNumber(raw)
		if !ok {
			return []string{f.mistyped}
		}
		return f.run(n, f.tag)
	default:
		s, ok := raw.(string)
		if !ok {
			return []string{f.mistyped}
		}
		value := s
		if f.trim {
			value = strings.TrimSpace(s)
		}
		problems := f.run(value, f.tag)
		if f.rawTag != "" {
			problems = append(problems, f.run(s, f.rawTag)...)
		}
		return problems
	}
}

func (f Field) run(value any, tag string) []string {
	err := rules.Var(value, tag)
	if err == nil {
		return nil
	}
	var failed validator.ValidationErrors
	if !errors.As(err, &failed) {
		return []string{f.mistyped}
	}
	problems := make([]string, 0, len(failed))
	for _, fe := range failed {
		msg, ok := f.messages[fe.Tag()]
		if !ok {
			msg = f.mistyped
		}
		problems = append(problems, msg)
	}
	return problems
}

// validate checks every field and reports all violations in field order.
func validate(fields []Field, raw map[string]any) []string {
	var problems []string
	for _, f := range fields {
		v, present := raw[f.Key]
		problems = append(problems, f.check(v, present)...)
	}
	return problems
}

// Values holds sanitized input, keyed like the raw request.
type Values struct {
	text    map[string]string
	numbers map[string]int
}

// String returns the sanitized string for key, or "" if it was absent.
func (v Values) String(key string) string {
	return v.text[key]
}

// Int returns the whole number for key.
func (v Values) Int(key string) int {
	return v.numbers[key]
}

// sanitize assumes raw already passed validate.
func sanitize(fields []Field, raw map[string]any) Values {
	v := Values{text: map[string]string{}, numbers: map[string]int{}}
	for _, f := range fields {
		switch f.shape {
		case shapeNumber:
			n, _ := wholeNumber(raw[f.Key])
			v.numbers[f.Key] = n
		default:
			if s, ok := raw[f.Key].(string); ok {
				v.text[f.Key] = Sanitize(s, f.cap)
			}
		}
	}
	return v
}

// Sanitize strips angle brackets, trims surrounding whitespace and truncates
// the result to limit runes.
func Sanitize(s string, limit int) string {
	s = strings.TrimSpace(angleBrackets.Replace(s))
	if limit > 0 && utf8.RuneCountInString(s) > limit {
		s = string([]rune(s)[:limit])
	}
	return s
}

// wholeNumber accepts JSON numbers without a fractional part. Strings are
// rejected even if they look numeric.
func wholeNumber(raw any) (int, bool) {
	var f float64
	switch n := raw.(type) {
	case float64:
		f = n
	case int:
		return n, true
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
		return 0, false
	}
	return int(f), true
}
