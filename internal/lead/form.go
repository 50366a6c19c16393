// Package lead validates and delivers consultation requests made from the
// report screen.
package lead

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"
)

// Field names a form field. The values double as payload keys.
type Field string

const (
	FieldName     Field = "name"
	FieldWhatsApp Field = "whatsapp"
	FieldWebsite  Field = "website"
	FieldProblems Field = "problems"
)

// Fields lists the form fields in display order.
var Fields = []Field{FieldName, FieldWhatsApp, FieldWebsite, FieldProblems}

const (
	minNameLen     = 3
	minPhoneDigits = 5
	minProblemsLen = 10
)

// Validation messages, one per field.
const (
	MsgName     = "Please enter your full name (at least 3 characters)."
	MsgWhatsApp = "Please enter a valid phone number."
	MsgWebsite  = "Please enter a valid link, e.g. www.example.com or your Instagram/Facebook page."
	MsgProblems = "Please describe the problem or goal clearly (at least 10 characters)."
)

var websitePattern = regexp.MustCompile(`^(https?://)?(www\.)?[-a-zA-Z0-9@:%._+~#=]{1,256}\.[a-zA-Z0-9()]{1,6}\b([-a-zA-Z0-9()@:%_+.~#?&/=]*)$`)

// Form is the consultation request as typed by the user.
type Form struct {
	Name        string
	CountryCode string
	LocalPhone  string
	Website     string
	Problems    string
}

// NewForm returns an empty form with the default country code.
func NewForm() Form {
	return Form{CountryCode: DefaultCountryCode}
}

// WhatsApp is the full international number: country code followed by the
// local part exactly as typed.
func (f Form) WhatsApp() string {
	return f.CountryCode + f.LocalPhone
}

// FieldErrors maps each failing field to its message. It is empty when the
// form is valid.
type FieldErrors map[Field]string

// Error joins the messages in field order.
func (e FieldErrors) Error() string {
	var msgs []string
	for _, f := range Fields {
		if m, ok := e[f]; ok {
			msgs = append(msgs, string(f)+": "+m)
		}
	}
	// Unknown keys are not expected, but keep them visible.
	var extra []string
	for f, m := range e {
		if !isKnown(f) {
			extra = append(extra, string(f)+": "+m)
		}
	}
	sort.Strings(extra)
	return "invalid lead form: " + strings.Join(append(msgs, extra...), "; ")
}

func isKnown(f Field) bool {
	for _, k := range Fields {
		if k == f {
			return true
		}
	}
	return false
}

// Validate checks every field and returns all failures at once.
func (f Form) Validate() FieldErrors {
	errs := FieldErrors{}

	if utf8.RuneCountInString(strings.TrimSpace(f.Name)) < minNameLen {
		errs[FieldName] = MsgName
	}
	if strings.TrimSpace(f.LocalPhone) == "" || countDigits(f.LocalPhone) < minPhoneDigits {
		errs[FieldWhatsApp] = MsgWhatsApp
	}
	if strings.TrimSpace(f.Website) == "" || !websitePattern.MatchString(f.Website) {
		errs[FieldWebsite] = MsgWebsite
	}
	if utf8.RuneCountInString(strings.TrimSpace(f.Problems)) < minProblemsLen {
		errs[FieldProblems] = MsgProblems
	}

	return errs
}

func countDigits(s string) int {
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}

// Payload is the flat object sent to the lead endpoint.
type Payload struct {
	Name     string `json:"name"`
	WhatsApp string `json:"whatsapp"`
	Website  string `json:"website"`
	Problems string `json:"problems"`
}

// Payload builds the submission body. Values are sent as typed.
func (f Form) Payload() Payload {
	return Payload{
		Name:     f.Name,
		WhatsApp: f.WhatsApp(),
		Website:  f.Website,
		Problems: f.Problems,
	}
}
