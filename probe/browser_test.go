package probe

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"
)

// fakePage implements dialogPage with the same delivery contract as a rod
// page: dialog messages queue up when the form is submitted and reach the
// handler only while the returned wait function is running.
type fakePage struct {
	mu          sync.Mutex
	filled      string
	opensDialog bool // submitting runs the payload's alert call
	setsMarker  bool // submitting runs the payload's window marker write
	markerSet   bool

	dialogs chan string
}

func newFakePage(opensDialog, setsMarker bool) *fakePage {
	return &fakePage{
		opensDialog: opensDialog,
		setsMarker:  setsMarker,
		dialogs:     make(chan string, 1),
	}
}

func (f *fakePage) Fill(selector, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.filled = value
	return nil
}

func (f *fakePage) Submit(selector string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.opensDialog {
		f.dialogs <- f.filled
	}
	if f.setsMarker {
		f.markerSet = true
	}
	return nil
}

func (f *fakePage) ListenDialogs(ctx context.Context, handle func(message string)) func() {
	return func() {
		for {
			select {
			case <-ctx.Done():
				return
			case msg := <-f.dialogs:
				handle(msg)
			}
		}
	}
}

func (f *fakePage) Eval(js string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.markerSet, nil
}

func TestConfirmExecutionViaDialog(t *testing.T) {
	// Dialog fires, but the window marker write does not run; only the
	// dialog listener can confirm execution here.
	page := newFakePage(true, false)

	confirmed, err := confirmExecution(context.Background(), page, "probe123", 100*time.Millisecond)
	if err != nil {
		t.Fatalf("confirmExecution() error = %v", err)
	}
	if !confirmed {
		t.Fatalf("dialog carrying the marker must confirm execution")
	}

	page.mu.Lock()
	defer page.mu.Unlock()
	if !strings.Contains(page.filled, "alert('probe123')") {
		t.Errorf("payload should open a marked dialog, got %q", page.filled)
	}
	if !strings.Contains(page.filled, "window['probe123']=true") {
		t.Errorf("payload should set the window marker, got %q", page.filled)
	}
}

func TestConfirmExecutionViaWindowMarker(t *testing.T) {
	// No dialog event is ever delivered; the window marker fallback must
	// still confirm execution.
	page := newFakePage(false, true)

	confirmed, err := confirmExecution(context.Background(), page, "probe123", 100*time.Millisecond)
	if err != nil {
		t.Fatalf("confirmExecution() error = %v", err)
	}
	if !confirmed {
		t.Fatalf("window marker must confirm execution when no dialog is seen")
	}
}

func TestConfirmExecutionNotExecuted(t *testing.T) {
	// The page neutralizes the payload: no dialog, no marker.
	page := newFakePage(false, false)

	confirmed, err := confirmExecution(context.Background(), page, "probe123", 100*time.Millisecond)
	if err != nil {
		t.Fatalf("confirmExecution() error = %v", err)
	}
	if confirmed {
		t.Fatalf("nothing executed, confirmation must be false")
	}
}
