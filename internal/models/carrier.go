package models

// CarrierLocation holds the physical-location fields surfaced for a carrier.
type CarrierLocation struct {
	State string `json:"state,omitempty"`
}

// CarrierStatus holds the authority-status fields surfaced for a carrier.
type CarrierStatus struct {
	Code             string `json:"code,omitempty"`
	SafetyRatingDate string `json:"safety_rating_date,omitempty"`
}

// CarrierValidation is the result of validating an MC number against the
// FMCSA registry. A "carrier not found" outcome is a CarrierValidation with
// IsValid=false, not an error.
type CarrierValidation struct {
	MCNumber     string           `json:"mc_number"`
	LegalName    string           `json:"legal_name,omitempty"`
	DBAName      string           `json:"dba_name,omitempty"`
	DOTNumber    string           `json:"dot_number,omitempty"`
	IsValid      bool             `json:"is_valid"`
	SafetyRating string           `json:"safety_rating,omitempty"`
	Location     *CarrierLocation `json:"location,omitempty"`
	Status       *CarrierStatus   `json:"status,omitempty"`
	Message      string           `json:"message"`
}
