// Package carrier implements MC number normalization and validation
// against the FMCSA registry.
package carrier

import (
	"context"
	"errors"
	"strings"

	"github.com/freightline/backend/internal/fmcsa"
	"github.com/freightline/backend/internal/models"
)

var (
	// ErrInvalidFormat means the input is not a valid MC number after
	// normalization.
	ErrInvalidFormat = errors.New("invalid MC number format")

	// ErrWebKeyMissing means no FMCSA credential is configured. It is
	// always reported before any outbound call is made.
	ErrWebKeyMissing = errors.New("FMCSA API key not configured")
)

// Registry is the subset of the FMCSA client used by the validator.
type Registry interface {
	Carrier(ctx context.Context, mcNumber, webKey string) (*fmcsa.Carrier, error)
}

// Validator normalizes MC numbers and maps registry records into
// CarrierValidation results. Results are built fresh per call; nothing is
// cached.
type Validator struct {
	registry Registry
	webKey   string
}

// NewValidator creates a validator. The webKey may be empty; validation
// then fails with ErrWebKeyMissing without touching the registry.
func NewValidator(registry Registry, webKey string) *Validator {
	return &Validator{
		registry: registry,
		webKey:   webKey,
	}
}

// Normalize cleans a raw MC number: upper-case, strip every "MC"
// occurrence (not just a leading prefix), trim surrounding whitespace.
// "mc123mc" normalizes to "123".
func Normalize(raw string) string {
	s := strings.ToUpper(raw)
	s = strings.ReplaceAll(s, "MC", "")
	return strings.TrimSpace(s)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Validate checks an MC number against the FMCSA registry.
//
// An upstream "carrier not found" is a successful negative result, not an
// error. Errors are ErrWebKeyMissing, ErrInvalidFormat, a
// *fmcsa.StatusError for unexpected registry statuses, or the underlying
// transport error.
func (v *Validator) Validate(ctx context.Context, rawMCNumber string) (*models.CarrierValidation, error) {
	// Credential check comes first so that a misconfigured deployment
	// never issues outbound calls.
	if v.webKey == "" {
		return nil, ErrWebKeyMissing
	}

	mcNumber := Normalize(rawMCNumber)
	if !isDigits(mcNumber) {
		return nil, ErrInvalidFormat
	}

	record, err := v.registry.Carrier(ctx, mcNumber, v.webKey)
	if errors.Is(err, fmcsa.ErrCarrierNotFound) {
		return &models.CarrierValidation{
			MCNumber: "MC" + mcNumber,
			IsValid:  false,
			Message:  "Carrier not found",
		}, nil
	}
	if err != nil {
		return nil, err
	}

	isValid := strings.EqualFold(record.AllowedToOperate, "Y")

	message := "Carrier is not authorized to operate"
	if isValid {
		message = "Carrier is authorized to operate"
	}

	return &models.CarrierValidation{
		MCNumber:     "MC" + mcNumber,
		LegalName:    record.LegalName,
		DBAName:      record.DBAName,
		DOTNumber:    record.DOTNumber.String(),
		IsValid:      isValid,
		SafetyRating: record.SafetyRating,
		Location: &models.CarrierLocation{
			State: record.PhyState,
		},
		Status: &models.CarrierStatus{
			Code:             record.StatusCode,
			SafetyRatingDate: record.SafetyRatingDate,
		},
		Message: message,
	}, nil
}
