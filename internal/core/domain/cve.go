package domain

import "time"

// CVERecord is a Common Vulnerabilities and Exposures entry carrying a
// CVSS v2 vector, as distributed in our seed datasets.
type CVERecord struct {
	ID          string `json:"cve_id"` // e.g., "CVE-2002-0392"
	Description string `json:"description"`

	// Scoring
	Vector         string        `json:"cvss2_vector"`             // e.g., "AV:N/AC:L/Au:N/C:N/I:N/A:C"
	PublishedScore float64       `json:"published_score"`          // score as shipped in the dataset
	ComputedScore  *float64      `json:"computed_score,omitempty"` // score recomputed by the engine
	Severity       SeverityLevel `json:"severity,omitempty"`

	// Metadata
	PublishedDate time.Time `json:"published_date"`
	LastModified  time.Time `json:"last_modified,omitempty"`
	References    []string  `json:"references,omitempty"`
}

// DatasetStatus tracks the last load of a CVE seed dataset.
type DatasetStatus struct {
	LastLoadTime time.Time `json:"last_load_time"`
	RecordCount  int       `json:"record_count"`
	ErrorMessage string    `json:"error_message,omitempty"`
}
