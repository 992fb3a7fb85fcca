package address

import (
	"regexp"
	"strings"

	"customers-be/internal/apperror"
)

var pinCodePattern = regexp.MustCompile(`^\d{3,10}$`)

// Validate reports the first violated rule: presence of addressDetails,
// city, state and pinCode in that order, then the pinCode format.
func Validate(in AddressInput) error {
	required := []struct {
		name  string
		value string
	}{
		{"addressDetails", in.AddressDetails},
		{"city", in.City},
		{"state", in.State},
		{"pinCode", in.PinCode},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return apperror.NewValidation("%s is required", f.name)
		}
	}

	if !pinCodePattern.MatchString(strings.TrimSpace(in.PinCode)) {
		return apperror.NewValidation("pinCode must contain 3 to 10 digits")
	}
	return nil
}

func Normalize(in AddressInput) AddressInput {
	return AddressInput{
		AddressDetails: strings.TrimSpace(in.AddressDetails),
		City:           strings.TrimSpace(in.City),
		State:          strings.TrimSpace(in.State),
		PinCode:        strings.TrimSpace(in.PinCode),
	}
}
