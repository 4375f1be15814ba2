// Package probe exercises a running demo server from the outside and reports
// whether its output handling is still insecure.
package probe

import (
	"html"
	"net/url"
	"strings"
)

// ReflectionDetector checks whether a probe string is reflected in a
// response body, and in which encoding.
type ReflectionDetector struct{}

// NewReflectionDetector creates a new ReflectionDetector.
func NewReflectionDetector() *ReflectionDetector {
	return &ReflectionDetector{}
}

// Detect checks if probe is reflected in body.
func (d *ReflectionDetector) Detect(body, probe string) (bool, string) {
	if probe == "" {
		return false, ""
	}

	// Check raw reflection
	if strings.Contains(body, probe) {
		return true, "raw"
	}

	// Check HTML encoded
	htmlEncodedProbe := html.EscapeString(probe)
	if htmlEncodedProbe != probe && strings.Contains(body, htmlEncodedProbe) {
		return true, "html-encoded"
	}

	// Check URL encoded
	encodedProbe := url.QueryEscape(probe)
	if encodedProbe != probe && strings.Contains(body, encodedProbe) {
		return true, "url-encoded"
	}

	// Check double URL encoding
	doubleEncodedProbe := url.QueryEscape(encodedProbe)
	if doubleEncodedProbe != probe && strings.Contains(body, doubleEncodedProbe) {
		return true, "double-encoded"
	}

	return false, ""
}
