package kernel

import (
	"math"
	"regexp"
	"strconv"
	"time"
)

// MinimumCustomerAge is the lowest accepted age, in whole years.
const MinimumCustomerAge = 18

var (
	reCapacity = regexp.MustCompile(`^[0-9]+$`)

	// DD/MM/YYYY, day 01-31, month 01-12, year 19xx or 20xx. Day and month are
	// not cross-checked, so 31/02/1990 is accepted.
	reDateOfBirth = regexp.MustCompile(`^(0[1-9]|[12][0-9]|3[01])/(0[1-9]|1[0-2])/(19|20)[0-9]{2}$`)

	// <street part> <street>, <suburb>[,] <STATE> <postcode>, Australia
	reAddress = regexp.MustCompile(
		`^([\d/\w\s]+)\s([a-zA-Z\s]+),\s([a-zA-Z\s]+),?\s(ACT|NSW|VIC|SA|WA|NT|TAS)\s([0-9]{4}),\sAustralia$`)

	// 04xxxxxxxx or 04xx xxx xxx
	rePhone = regexp.MustCompile(`^04\d{2}\s?\d{3}\s?\d{3}$`)

	// local part must not end with a dot; up to two labels after the domain.
	reEmail = regexp.MustCompile(`^([\w\-.]*[^.])(@\w+)(\.\w+(\.\w+)?)?$`)
)

// IsNonEmpty reports whether s has at least one character.
func IsNonEmpty(s string) bool {
	return s != ""
}

// IsValidCapacity reports whether s is a whole number greater than zero.
func IsValidCapacity(s string) bool {
	_, ok := ParseCapacity(s)
	return ok
}

// ParseCapacity returns the capacity held by s when IsValidCapacity(s).
func ParseCapacity(s string) (int, bool) {
	if !reCapacity.MatchString(s) {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// IsValidWeight reports whether s parses as a finite number strictly greater than zero.
func IsValidWeight(s string) bool {
	_, ok := ParseWeight(s)
	return ok
}

// ParseWeight returns the weight held by s when IsValidWeight(s).
func ParseWeight(s string) (float64, bool) {
	w, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(w) || math.IsInf(w, 0) || w <= 0 {
		return 0, false
	}
	return w, true
}

// IsValidDateOfBirth reports whether s has the DD/MM/YYYY shape.
func IsValidDateOfBirth(s string) bool {
	return reDateOfBirth.MatchString(s)
}

// IsAdult reports whether the person born on dob is at least MinimumCustomerAge
// at now. Age is the difference between calendar years; day and month are ignored.
func IsAdult(dob string, now time.Time) bool {
	if !IsValidDateOfBirth(dob) {
		return false
	}
	year, err := strconv.Atoi(dob[len(dob)-4:])
	if err != nil {
		return false
	}
	return now.Year()-year >= MinimumCustomerAge
}

// IsValidAddress reports whether s is an Australian postal address such as
// "123 Main St, Sydney, NSW 2000, Australia".
func IsValidAddress(s string) bool {
	return reAddress.MatchString(s)
}

// IsValidPhone reports whether s is an Australian mobile number.
func IsValidPhone(s string) bool {
	return rePhone.MatchString(s)
}

// IsValidEmail reports whether s is local@domain, local@domain.tld or
// local@domain.tld.tld.
func IsValidEmail(s string) bool {
	return reEmail.MatchString(s)
}
