package models

// LoadRecord represents one row of the load reference table. Rate is kept as
// the raw text from the source file and never parsed numerically.
type LoadRecord struct {
	ReferenceNumber string `json:"reference_number" msgpack:"reference_number"`
	Origin          string `json:"origin" msgpack:"origin"`
	Destination     string `json:"destination" msgpack:"destination"`
	EquipmentType   string `json:"equipment_type" msgpack:"equipment_type"`
	Rate            string `json:"rate" msgpack:"rate"`
	Commodity       string `json:"commodity" msgpack:"commodity"`
}
