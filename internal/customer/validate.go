package customer

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"customers-be/internal/apperror"
)

var (
	phonePattern   = regexp.MustCompile(`^\d{6,15}$`)
	phoneSeparator = strings.NewReplacer("+", "", "-", "", " ", "", "(", "", ")", "")
)

// NormalizePhone strips the separator characters + - ( ) and spaces.
func NormalizePhone(phone string) string {
	return phoneSeparator.Replace(strings.TrimSpace(phone))
}

// Validate checks presence first (first name, last name, phone), then the
// phone format. The first violated rule wins.
func Validate(in CustomerInput) error {
	if strings.TrimSpace(in.FirstName) == "" {
		return apperror.NewValidation("firstName is required")
	}
	if strings.TrimSpace(in.LastName) == "" {
		return apperror.NewValidation("lastName is required")
	}
	if strings.TrimSpace(in.PhoneNumber) == "" {
		return apperror.NewValidation("phoneNumber is required")
	}
	if !phonePattern.MatchString(NormalizePhone(in.PhoneNumber)) {
		return apperror.NewValidation("phoneNumber must contain 6 to 15 digits")
	}
	return nil
}

// Normalize returns the form that is persisted: trimmed names and a
// separator-free phone number.
func Normalize(in CustomerInput) CustomerInput {
	return CustomerInput{
		FirstName:   strings.TrimSpace(in.FirstName),
		LastName:    strings.TrimSpace(in.LastName),
		PhoneNumber: NormalizePhone(in.PhoneNumber),
	}
}

// ValidateListParams rejects listing input storage could not evaluate
// faithfully: a search term that is not valid UTF-8 or carries a NUL byte,
// and a page whose offset does not fit in an int.
func ValidateListParams(p ListParams) error {
	if !utf8.ValidString(p.Search) || strings.ContainsRune(p.Search, 0) {
		return apperror.NewValidation("search must be valid UTF-8 text")
	}
	if !PageInRange(p.Page, p.Limit) {
		return apperror.NewValidation("page is out of range")
	}
	return nil
}
