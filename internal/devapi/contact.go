package devapi

import (
	"net/mail"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/mhasan05/teamerror-portfolio/client"
)

const (
	msgRequired     = "This field is required."
	msgInvalidEmail = "Enter a valid email address."
)

var inquiryTypes = []string{"consultation", "quote", "support", "general"}

// maxLengths mirrors the column sizes of the stored contact record.
var maxLengths = map[string]int{
	"name":     200,
	"phone":    20,
	"company":  200,
	"subject":  200,
	"budget":   100,
	"timeline": 100,
}

// ValidateContact returns per-field messages, or nil when sub is acceptable.
func ValidateContact(sub client.ContactSubmission) map[string][]string {
	errs := map[string][]string{}
	add := func(field, msg string) { errs[field] = append(errs[field], msg) }

	if strings.TrimSpace(sub.Name) == "" {
		add("name", msgRequired)
	}
	switch email := strings.TrimSpace(sub.Email); {
	case email == "":
		add("email", msgRequired)
	case !validEmail(email):
		add("email", msgInvalidEmail)
	}
	if strings.TrimSpace(sub.Message) == "" {
		add("message", msgRequired)
	}
	if sub.InquiryType != "" && !slices.Contains(inquiryTypes, sub.InquiryType) {
		add("inquiry_type", `"`+sub.InquiryType+`" is not a valid choice.`)
	}

	values := map[string]string{
		"name": sub.Name, "phone": sub.Phone, "company": sub.Company,
		"subject": sub.Subject, "budget": sub.Budget, "timeline": sub.Timeline,
	}
	for field, limit := range maxLengths {
		if utf8.RuneCountInString(values[field]) > limit {
			add(field, "Ensure this field has no more than "+strconv.Itoa(limit)+" characters.")
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// validEmail accepts a bare address with a dotted domain.
func validEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s {
		return false
	}
	_, domain, ok := strings.Cut(s, "@")
	return ok && strings.Contains(domain, ".") && !strings.HasSuffix(domain, ".")
}
