package domain

import (
	"fmt"
	"math"
	"net/url"
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxSpecialtyRunes bounds specialty labels, both on records and in query filters.
const MaxSpecialtyRunes = 64

type Rating float64

func NewRating(value float64) (Rating, error) {
	if math.IsNaN(value) || value < 0 || value > 5 {
		return 0, fmt.Errorf("%w: rating must be between 0 and 5, got %v", ErrInvalidRecord, value)
	}
	return Rating(value), nil
}

func (r Rating) Float64() float64 {
	return float64(r)
}

type ReviewRating int

func NewReviewRating(value int) (ReviewRating, error) {
	if value < 1 || value > 5 {
		return 0, fmt.Errorf("%w: review rating must be between 1 and 5, got %d", ErrInvalidRecord, value)
	}
	return ReviewRating(value), nil
}

func (r ReviewRating) Int() int {
	return int(r)
}

type CompletionRate float64

func NewCompletionRate(value float64) (CompletionRate, error) {
	if math.IsNaN(value) || value < 0 || value > 100 {
		return 0, fmt.Errorf("%w: completion rate must be between 0 and 100, got %v", ErrInvalidRecord, value)
	}
	return CompletionRate(value), nil
}

func (c CompletionRate) Float64() float64 {
	return float64(c)
}

// Money is an amount in minor units (cents) plus an ISO 4217 currency code.
type Money struct {
	Amount   int64
	Currency string
}

func NewMoney(amount int64, currency string) (Money, error) {
	if amount < 0 {
		return Money{}, fmt.Errorf("%w: rate must be >= 0", ErrInvalidRecord)
	}
	code := strings.ToUpper(strings.TrimSpace(currency))
	if len(code) != 3 {
		return Money{}, fmt.Errorf("%w: invalid currency %q", ErrInvalidRecord, currency)
	}
	for _, r := range code {
		if r < 'A' || r > 'Z' {
			return Money{}, fmt.Errorf("%w: invalid currency %q", ErrInvalidRecord, currency)
		}
	}
	return Money{Amount: amount, Currency: code}, nil
}

// Label renders the rate the way the session cards show it, e.g. "$15/session".
func (m Money) Label() string {
	symbol := m.Currency + " "
	switch m.Currency {
	case "USD":
		symbol = "$"
	case "EUR":
		symbol = "€"
	case "BRL":
		symbol = "R$"
	}
	whole := m.Amount / 100
	cents := m.Amount % 100
	if cents == 0 {
		return fmt.Sprintf("%s%d/session", symbol, whole)
	}
	return fmt.Sprintf("%s%d.%02d/session", symbol, whole, cents)
}

type Specialty string

// NewSpecialty trims the label; the category set is open so any non-blank label is accepted.
func NewSpecialty(value string) (Specialty, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", fmt.Errorf("%w: specialty is required", ErrInvalidRecord)
	}
	if utf8.RuneCountInString(trimmed) > MaxSpecialtyRunes {
		return "", fmt.Errorf("%w: specialty must be <= %d characters", ErrInvalidRecord, MaxSpecialtyRunes)
	}
	return Specialty(trimmed), nil
}

func (s Specialty) String() string {
	return string(s)
}

// ValidSpecialtyFilter reports whether a specialty filter value is well formed.
func ValidSpecialtyFilter(value string) error {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return fmt.Errorf("%w: specialty filter must not be blank", ErrInvalidFilter)
	}
	if utf8.RuneCountInString(trimmed) > MaxSpecialtyRunes {
		return fmt.Errorf("%w: specialty filter must be <= %d characters", ErrInvalidFilter, MaxSpecialtyRunes)
	}
	for _, r := range trimmed {
		if unicode.IsControl(r) {
			return fmt.Errorf("%w: specialty filter contains control characters", ErrInvalidFilter)
		}
	}
	return nil
}

type URL string

func NewURL(value string) (URL, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", nil
	}
	if _, err := url.ParseRequestURI(trimmed); err != nil {
		return "", fmt.Errorf("%w: invalid URL: %v", ErrInvalidRecord, err)
	}
	return URL(trimmed), nil
}

func (u URL) String() string {
	return string(u)
}

// TagList keeps insertion order and drops blanks and duplicates.
type TagList []string

func NewTagList(values []string) TagList {
	if len(values) == 0 {
		return nil
	}
	result := make([]string, 0, len(values))
	seen := make(map[string]struct{})
	for _, raw := range values {
		tag := strings.TrimSpace(raw)
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		result = append(result, tag)
	}
	return TagList(result)
}

func (l TagList) Strings() []string {
	return append([]string(nil), l...)
}
