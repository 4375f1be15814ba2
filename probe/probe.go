package probe

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// FieldName must match the form field the demo page submits.
const FieldName = "user_input"

// Options configures a Prober.
type Options struct {
	// Timeout bounds each HTTP round trip.
	Timeout time.Duration
	// Browser enables headless-browser verification of script execution.
	Browser bool
	// BrowserWait is how long to wait for the injected script to fire.
	BrowserWait time.Duration
}

// Prober submits a marked payload to a demo server and checks how the
// response reflects it.
type Prober struct {
	client   *http.Client
	detector *ReflectionDetector
	opts     Options
}

// New creates a Prober with the given options.
func New(opts Options) *Prober {
	if opts.Timeout == 0 {
		opts.Timeout = 30 * time.Second
	}
	if opts.BrowserWait == 0 {
		opts.BrowserWait = 3 * time.Second
	}
	return &Prober{
		client: &http.Client{
			Timeout: opts.Timeout,
		},
		detector: NewReflectionDetector(),
		opts:     opts,
	}
}

// Run performs the GET-then-POST round trip against targetURL and reports
// whether the marked payload was reflected, in which encoding, and (when
// browser verification is on) whether it actually executed.
func (p *Prober) Run(ctx context.Context, targetURL string) (*Result, error) {
	started := time.Now()
	marker := newMarker()
	payload := fmt.Sprintf("<script>alert('%s')</script>", marker)

	result := &Result{
		TargetURL: targetURL,
		Marker:    marker,
		Payload:   payload,
		StartedAt: started,
	}

	// Baseline GET: a fresh page must not contain the marker anywhere.
	body, err := p.fetch(ctx, http.MethodGet, targetURL, nil)
	if err != nil {
		return nil, fmt.Errorf("baseline GET failed: %w", err)
	}
	result.EmptyOutputOnGet = !strings.Contains(body, marker)

	form := url.Values{FieldName: {payload}}
	body, err = p.fetch(ctx, http.MethodPost, targetURL, form)
	if err != nil {
		return nil, fmt.Errorf("probe POST failed: %w", err)
	}

	found, format := p.detector.Detect(body, payload)
	result.Reflected = found
	result.ReflectionFormat = format
	result.Occurrences = strings.Count(body, payload)

	if p.opts.Browser && result.Vulnerable() {
		confirmed, err := p.verifyInBrowser(ctx, targetURL, marker)
		if err != nil {
			return nil, fmt.Errorf("browser verification failed: %w", err)
		}
		result.ExecutionConfirmed = confirmed
	}

	result.Duration = time.Since(started).String()
	return result, nil
}

func (p *Prober) fetch(ctx context.Context, method, targetURL string, form url.Values) (string, error) {
	var bodyReader io.Reader
	if form != nil {
		bodyReader = strings.NewReader(form.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, method, targetURL, bodyReader)
	if err != nil {
		return "", err
	}
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	return string(body), nil
}

func newMarker() string {
	return fmt.Sprintf("probe%d", time.Now().UnixNano())
}
