package utils

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// World Bank country and aggregate codes are three letters
var validCountryCodePattern = regexp.MustCompile(`^[A-Z]{3}$`)

// ValidateCountryCode validates that a country code is a three-letter World Bank code
func ValidateCountryCode(code string) error {
	if code == "" {
		return errors.New("country code cannot be empty")
	}

	if !validCountryCodePattern.MatchString(code) {
		return errors.New("country code must be a three-letter code")
	}

	return nil
}

// ParseCountriesParam splits a comma-separated countries query parameter into
// normalized (upper-case, trimmed) codes. An empty parameter yields nil,
// which downstream filtering treats as an empty selection, not an error.
func ParseCountriesParam(raw string) ([]string, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	codes := make([]string, 0, len(parts))
	for _, part := range parts {
		code := strings.ToUpper(strings.TrimSpace(part))
		if err := ValidateCountryCode(code); err != nil {
			return nil, fmt.Errorf("invalid country code %q: %w", part, err)
		}
		codes = append(codes, code)
	}

	return codes, nil
}

// ParseYearParam parses a year query parameter, returning the fallback when
// the parameter is absent.
func ParseYearParam(raw string, fallback int) (int, error) {
	if strings.TrimSpace(raw) == "" {
		return fallback, nil
	}

	year, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, errors.New("year must be an integer")
	}

	return year, nil
}

// ValidateYearRange validates that a year range is ordered and within the
// dataset bounds.
func ValidateYearRange(yearFrom, yearTo, minYear, maxYear int) error {
	if yearFrom > yearTo {
		return errors.New("fromYear must not be greater than toYear")
	}

	if yearFrom < minYear || yearTo > maxYear {
		return fmt.Errorf("years must be within the dataset coverage %d-%d", minYear, maxYear)
	}

	return nil
}
