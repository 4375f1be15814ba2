package probe

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
)

// PrintReport writes a human-readable summary of the probe result to stdout.
func PrintReport(result *Result) {
	red := color.New(color.FgRed, color.Bold)
	green := color.New(color.FgGreen, color.Bold)
	yellow := color.New(color.FgYellow)

	fmt.Printf("Target:   %s\n", result.TargetURL)
	fmt.Printf("Payload:  %s\n", result.Payload)
	fmt.Printf("Duration: %s\n\n", result.Duration)

	if !result.EmptyOutputOnGet {
		yellow.Println("[?] Baseline GET already contained the marker; results may be unreliable")
	}

	switch {
	case result.Vulnerable():
		red.Printf("[!] VULNERABLE: payload reflected raw, %d occurrence(s)\n", result.Occurrences)
	case result.Reflected:
		green.Printf("[-] Payload reflected but %s; markup was neutralized\n", result.ReflectionFormat)
	default:
		green.Println("[-] Payload not reflected")
	}

	if result.ExecutionConfirmed {
		red.Println("[!] Execution confirmed: the injected script opened a dialog in the browser")
	}
}

// SaveResult writes the result to path as indented JSON.
func SaveResult(result *Result, path string) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}
