package probe

import "time"

// Result captures one probe round trip against a target page.
type Result struct {
	TargetURL          string    `json:"target_url"`
	Marker             string    `json:"marker"`
	Payload            string    `json:"payload"`
	EmptyOutputOnGet   bool      `json:"empty_output_on_get"`
	Reflected          bool      `json:"reflected"`
	ReflectionFormat   string    `json:"reflection_format,omitempty"`
	Occurrences        int       `json:"occurrences"`
	ExecutionConfirmed bool      `json:"execution_confirmed"`
	StartedAt          time.Time `json:"started_at"`
	Duration           string    `json:"duration"`
}

// Vulnerable reports whether the round trip demonstrated the insecure
// behavior: the payload came back raw.
func (r *Result) Vulnerable() bool {
	return r.Reflected && r.ReflectionFormat == "raw"
}
