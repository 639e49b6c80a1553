package domain

// Country is a reference-data row used to populate checkout address forms.
type Country struct {
	ID   int64  `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}

// State belongs to exactly one Country. The back-reference from Country to
// its states is intentionally absent: states are fetched on demand by
// country code, which keeps payloads flat and cycle-free.
type State struct {
	ID        int64  `json:"id"`
	Code      string `json:"code,omitempty"`
	Name      string `json:"name"`
	CountryID int64  `json:"countryId"`
}
