package domain

import (
	"fmt"
	"unicode/utf8"
)

// RecipientGender is the gender filter supplied by the caller. Unlike the
// catalog Gender it allows "any", which disables gender filtering.
type RecipientGender string

const (
	// RecipientGender_Male filters to male or unisex products.
	RecipientGender_Male RecipientGender = "male"
	// RecipientGender_Female filters to female or unisex products.
	RecipientGender_Female RecipientGender = "female"
	// RecipientGender_Any disables gender filtering.
	RecipientGender_Any RecipientGender = "any"
)

const (
	// MaxBlurbLength is the maximum length of one recipient blurb.
	MaxBlurbLength = 2000
	// MaxBlurbHistory is the maximum number of accumulated refinement blurbs.
	MaxBlurbHistory = 10
	// DefaultResultLimit is the result page size when the caller does not set one.
	DefaultResultLimit = 10
	// MaxResultLimit caps the result page size.
	MaxResultLimit = 50
)

// RecipientProfile describes the gift recipient and the result constraints of
// one recommendation request. It is immutable per request and owned by the
// caller; the engine consumes it read-only.
type RecipientProfile struct {
	Age         int
	Gender      RecipientGender
	MinPrice    *float64
	MaxPrice    *float64
	PrimeOnly   bool
	ResultLimit int
}

// Validate checks the profile fields against the request constraints.
func (rp RecipientProfile) Validate() error {
	if rp.Age < MinAge || rp.Age > MaxAge {
		return NewValidationErr(fmt.Sprintf("age must be between %d and %d", MinAge, MaxAge))
	}
	if rp.Gender != RecipientGender_Male && rp.Gender != RecipientGender_Female && rp.Gender != RecipientGender_Any {
		return NewValidationErr("gender must be one of male, female or any")
	}
	if rp.MinPrice != nil && *rp.MinPrice < 0 {
		return NewValidationErr("min_price cannot be negative")
	}
	if rp.MaxPrice != nil && *rp.MaxPrice < 0 {
		return NewValidationErr("max_price cannot be negative")
	}
	if rp.MinPrice != nil && rp.MaxPrice != nil && *rp.MinPrice > *rp.MaxPrice {
		return NewValidationErr("min_price cannot be greater than max_price")
	}
	if rp.ResultLimit <= 0 || rp.ResultLimit > MaxResultLimit {
		return NewValidationErr(fmt.Sprintf("result_limit must be between 1 and %d", MaxResultLimit))
	}
	return nil
}

// CatalogGender maps the recipient gender to the catalog gender filter.
// It returns nil for "any", which matches every catalog gender.
func (rp RecipientProfile) CatalogGender() *Gender {
	switch rp.Gender {
	case RecipientGender_Male:
		g := Gender_Male
		return &g
	case RecipientGender_Female:
		g := Gender_Female
		return &g
	default:
		return nil
	}
}

// ValidateBlurb checks one free-text recipient description.
func ValidateBlurb(blurb string) error {
	if blurb == "" {
		return NewValidationErr("blurb cannot be empty")
	}
	if utf8.RuneCountInString(blurb) > MaxBlurbLength {
		return NewValidationErr(fmt.Sprintf("blurb cannot exceed %d characters", MaxBlurbLength))
	}
	return nil
}

// ValidateBlurbHistory checks an accumulated sequence of refinement blurbs.
func ValidateBlurbHistory(blurbs []string) error {
	if len(blurbs) == 0 {
		return NewValidationErr("at least one blurb is required")
	}
	if len(blurbs) > MaxBlurbHistory {
		return NewValidationErr(fmt.Sprintf("blurb history cannot exceed %d entries", MaxBlurbHistory))
	}
	for i, blurb := range blurbs {
		if err := ValidateBlurb(blurb); err != nil {
			return NewValidationErr(fmt.Sprintf("blurb %d: %s", i+1, err.Error()))
		}
	}
	return nil
}
