// Package validation provides input validation utilities.
package validation

import (
	"fmt"
	"regexp"
	"time"
)

const (
	MaxEmailLen     = 80
	MaxNameLen      = 55
	MaxArtistLen    = 60
	MaxTitleLen     = 90
	MinRegisterAge  = 12
	MinArtistAge    = 16
	MinReleaseYear  = 1900
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	phoneRegex = regexp.MustCompile(`^\d{10}$`)
	// Titles and names allow letters, digits, spaces and a small set of
	// punctuation common in track and artist naming.
	titleRegex = regexp.MustCompile(`^[\p{L}\p{N} '&.,!?()\-]+$`)
)

// ValidateEmail checks basic email format and length.
func ValidateEmail(email string) error {
	if len(email) > MaxEmailLen {
		return fmt.Errorf("email must not exceed %d characters", MaxEmailLen)
	}
	if !emailRegex.MatchString(email) {
		return fmt.Errorf("invalid email format")
	}
	return nil
}

// ValidatePhone requires exactly 10 digits.
func ValidatePhone(phone string) error {
	if !phoneRegex.MatchString(phone) {
		return fmt.Errorf("phone number must be exactly 10 digits")
	}
	return nil
}

// ValidatePersonName checks first/last name length bounds.
func ValidatePersonName(field, name string) error {
	if name == "" {
		return fmt.Errorf("%s is required", field)
	}
	if len(name) > MaxNameLen {
		return fmt.Errorf("%s must not exceed %d characters", field, MaxNameLen)
	}
	return nil
}

// ValidateArtistName checks artist display name bounds and character set.
func ValidateArtistName(name string) error {
	if name == "" {
		return fmt.Errorf("artist name is required")
	}
	if len(name) > MaxArtistLen {
		return fmt.Errorf("artist name must not exceed %d characters", MaxArtistLen)
	}
	if !titleRegex.MatchString(name) {
		return fmt.Errorf("artist name contains invalid characters")
	}
	return nil
}

// ValidateTitle checks album/song/playlist title bounds and character set.
func ValidateTitle(title string) error {
	if title == "" {
		return fmt.Errorf("title is required")
	}
	if len(title) > MaxTitleLen {
		return fmt.Errorf("title must not exceed %d characters", MaxTitleLen)
	}
	if !titleRegex.MatchString(title) {
		return fmt.Errorf("title contains invalid characters")
	}
	return nil
}

// ValidateCategory accepts only the closed category set.
func ValidateCategory(category string) error {
	switch category {
	case "rock", "pop", "jazz", "blues":
		return nil
	default:
		return fmt.Errorf("category must be one of: rock, pop, jazz, blues")
	}
}

// ValidateSex accepts 0 or 1.
func ValidateSex(sex int) error {
	if sex != 0 && sex != 1 {
		return fmt.Errorf("sex must be 0 or 1")
	}
	return nil
}

// ValidateYear checks the release year range.
func ValidateYear(year int, now time.Time) error {
	if year < MinReleaseYear || year > now.Year()+1 {
		return fmt.Errorf("year must be between %d and %d", MinReleaseYear, now.Year()+1)
	}
	return nil
}

// ValidateBirthDate parses a YYYY-MM-DD birth date and enforces the minimum
// age using anniversary arithmetic.
func ValidateBirthDate(birth string, minAge int, now time.Time) (time.Time, error) {
	date, err := time.Parse("2006-01-02", birth)
	if err != nil {
		return time.Time{}, fmt.Errorf("birth date must be in YYYY-MM-DD format")
	}
	if AgeAt(date, now) < minAge {
		return time.Time{}, fmt.Errorf("age requirement not met (%d years minimum)", minAge)
	}
	return date, nil
}

// AgeAt returns the age in full years at the given instant.
func AgeAt(birth, now time.Time) int {
	years := now.Year() - birth.Year()
	anniversary := time.Date(now.Year(), birth.Month(), birth.Day(), 0, 0, 0, 0, time.UTC)
	if now.Before(anniversary) {
		years--
	}
	return years
}
