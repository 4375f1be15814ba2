package probe

import (
	"testing"
)

func TestReflectionDetector_Detect(t *testing.T) {
	detector := NewReflectionDetector()

	tests := []struct {
		name           string
		body           string
		probe          string
		wantFound      bool
		wantFormatType string
	}{
		{
			name:           "Raw reflection",
			body:           "Hello xss_probe_123 World",
			probe:          "xss_probe_123",
			wantFound:      true,
			wantFormatType: "raw",
		},
		{
			name:           "HTML encoded reflection",
			body:           "Hello &lt;script&gt; World",
			probe:          "<script>",
			wantFound:      true,
			wantFormatType: "html-encoded",
		},
		{
			name:           "URL encoded reflection",
			body:           "Hello %3Cscript%3E World",
			probe:          "<script>",
			wantFound:      true,
			wantFormatType: "url-encoded",
		},
		{
			name:           "Double encoded reflection",
			body:           "Hello %253Cscript%253E World",
			probe:          "<script>",
			wantFound:      true,
			wantFormatType: "double-encoded",
		},
		{
			name:           "Not found",
			body:           "Hello World",
			probe:          "xss_probe",
			wantFound:      false,
			wantFormatType: "",
		},
		{
			name:           "Empty probe",
			body:           "Hello World",
			probe:          "",
			wantFound:      false,
			wantFormatType: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			found, format := detector.Detect(tt.body, tt.probe)
			if found != tt.wantFound {
				t.Errorf("Detect() found = %v, want %v", found, tt.wantFound)
			}
			if format != tt.wantFormatType {
				t.Errorf("Detect() format = %q, want %q", format, tt.wantFormatType)
			}
		})
	}
}
