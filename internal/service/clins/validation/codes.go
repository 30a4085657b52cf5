// Package validation holds the Japan-specific coded-value format checks used
// during document transformation. Every check is a pure predicate returning
// a verdict and, on failure, a human-readable reason so callers can collect
// multiple problems instead of stopping at the first.
package validation

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	drugPriceRe    = regexp.MustCompile(`^[0-9]{4}[A-Z]{2}[0-9]{3}[A-Z][0-9]$`)
	drugHotRe      = regexp.MustCompile(`^[0-9]{9}$`)
	labTestRe      = regexp.MustCompile(`^[0-9A-Z]{17}$`)
	physicianRe    = regexp.MustCompile(`^[0-9]{6}$`)
	nurseRe        = regexp.MustCompile(`^[0-9]{8}$`)
	pharmacistRe   = regexp.MustCompile(`^[A-Z][0-9]{6}$`)
	postalRe       = regexp.MustCompile(`^[0-9]{7}$`)
	digitsRe       = regexp.MustCompile(`^[0-9]+$`)
	mobilePhoneRe  = regexp.MustCompile(`^(090|080|070)[0-9]{8}$`)
	landlineRe     = regexp.MustCompile(`^0[0-9]{8,9}$`)
	mobilePrefixes = []string{"090", "080", "070"}
)

// DrugPriceCode checks a YJ drug price code: 4 digits, 2 letters, 3 digits,
// 1 letter, 1 digit.
func DrugPriceCode(code string) (bool, string) {
	if !drugPriceRe.MatchString(code) {
		return false, fmt.Sprintf("drug price code %q must be 4 digits, 2 uppercase letters, 3 digits, 1 uppercase letter and 1 digit", code)
	}
	return true, ""
}

// DrugHotCode checks a HOT drug code: exactly 9 digits.
func DrugHotCode(code string) (bool, string) {
	if !drugHotRe.MatchString(code) {
		return false, fmt.Sprintf("drug HOT code %q must be exactly 9 digits", code)
	}
	return true, ""
}

// LabTestCode checks a JLAC10 laboratory test code: exactly 17 characters
// from the uppercase alphanumeric charset.
func LabTestCode(code string) (bool, string) {
	if !labTestRe.MatchString(code) {
		return false, fmt.Sprintf("lab test code %q must be exactly 17 uppercase alphanumeric characters", code)
	}
	return true, ""
}

// PhysicianLicense checks a physician license number: exactly 6 digits.
func PhysicianLicense(number string) (bool, string) {
	if !physicianRe.MatchString(number) {
		return false, fmt.Sprintf("physician license %q must be exactly 6 digits", number)
	}
	return true, ""
}

// NurseLicense checks a nurse license number: exactly 8 digits.
func NurseLicense(number string) (bool, string) {
	if !nurseRe.MatchString(number) {
		return false, fmt.Sprintf("nurse license %q must be exactly 8 digits", number)
	}
	return true, ""
}

// PharmacistLicense checks a pharmacist license number: 1 letter followed by
// 6 digits.
func PharmacistLicense(number string) (bool, string) {
	if !pharmacistRe.MatchString(number) {
		return false, fmt.Sprintf("pharmacist license %q must be 1 uppercase letter followed by 6 digits", number)
	}
	return true, ""
}

// PostalCode checks a Japanese postal code: exactly 7 digits.
func PostalCode(code string) (bool, string) {
	if !postalRe.MatchString(code) {
		return false, fmt.Sprintf("postal code %q must be exactly 7 digits", code)
	}
	return true, ""
}

// PhoneNumber checks a Japanese phone number. Hyphens are stripped before
// matching. Mobile numbers are 090/080/070 followed by 8 digits; landline
// numbers start with 0 and carry 9 or 10 digits in total.
func PhoneNumber(number string) (bool, string) {
	digits := strings.ReplaceAll(number, "-", "")
	if !digitsRe.MatchString(digits) {
		return false, fmt.Sprintf("phone number %q may only contain digits and hyphens", number)
	}
	for _, prefix := range mobilePrefixes {
		if strings.HasPrefix(digits, prefix) {
			if !mobilePhoneRe.MatchString(digits) {
				return false, fmt.Sprintf("mobile phone number %q must be %s followed by 8 digits", number, prefix)
			}
			return true, ""
		}
	}
	if !landlineRe.MatchString(digits) {
		return false, fmt.Sprintf("landline phone number %q must start with 0 and carry 9 or 10 digits", number)
	}
	return true, ""
}
