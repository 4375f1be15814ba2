package probe

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"
)

const (
	promptSelector = "#user_input"
	submitSelector = `input[type="submit"]`
)

// dialogPage is the slice of browser page behavior confirmExecution needs.
// rodPage adapts a live rod page onto it.
type dialogPage interface {
	// Fill types value into the element at selector.
	Fill(selector, value string) error
	// Submit clicks the element at selector.
	Submit(selector string) error
	// ListenDialogs subscribes to JavaScript dialog openings. Events reach
	// handle only while the returned wait function is running, and wait
	// returns once ctx is done. This mirrors rod's EachEvent contract.
	ListenDialogs(ctx context.Context, handle func(message string)) (wait func())
	// Eval runs js in the page and reports whether it evaluated to true.
	Eval(js string) (bool, error)
}

// verifyInBrowser loads the page in a headless browser, submits the marked
// payload through the form, and confirms the injected script ran.
func (p *Prober) verifyInBrowser(ctx context.Context, targetURL, marker string) (bool, error) {
	browser := rod.New().Context(ctx)
	if err := browser.Connect(); err != nil {
		return false, fmt.Errorf("failed to connect to browser: %w", err)
	}
	defer browser.Close()

	page, err := browser.Page(proto.TargetCreateTarget{URL: targetURL})
	if err != nil {
		return false, fmt.Errorf("failed to open page: %w", err)
	}
	if err := page.WaitLoad(); err != nil {
		return false, fmt.Errorf("failed to load page: %w", err)
	}

	// Enable Page events to ensure dialogs are reported
	if err := (proto.PageEnable{}).Call(page); err != nil {
		return false, fmt.Errorf("failed to enable page events: %w", err)
	}

	return confirmExecution(ctx, rodPage{page: page}, marker, p.opts.BrowserWait)
}

// confirmExecution fills the form with a marked payload, submits it, and
// reports whether the payload executed. The payload both opens a dialog and
// sets a marker on window, so execution is still detectable when the dialog
// listener misses the event.
func confirmExecution(ctx context.Context, page dialogPage, marker string, browserWait time.Duration) (bool, error) {
	payload := fmt.Sprintf("<script>window['%s']=true;alert('%s')</script>", marker, marker)

	if err := page.Fill(promptSelector, payload); err != nil {
		return false, fmt.Errorf("failed to type payload: %w", err)
	}

	var (
		confirmed bool
		mu        sync.Mutex
		wg        sync.WaitGroup
	)

	listenerCtx, cancelListener := context.WithTimeout(ctx, browserWait+2*time.Second)
	defer cancelListener()

	wait := page.ListenDialogs(listenerCtx, func(message string) {
		mu.Lock()
		if strings.Contains(message, marker) {
			confirmed = true
		}
		mu.Unlock()
	})

	// Dialog events are only delivered while wait runs, so it gets its own
	// goroutine and must be started before the form is submitted.
	wg.Add(1)
	go func() {
		defer wg.Done()
		wait()
	}()

	// Give the listener a moment to attach.
	time.Sleep(200 * time.Millisecond)

	if err := page.Submit(submitSelector); err != nil {
		cancelListener()
		wg.Wait()
		return false, fmt.Errorf("failed to submit form: %w", err)
	}

	// Wait for the reflected script to fire its dialog.
	time.Sleep(browserWait)
	cancelListener()
	wg.Wait()

	mu.Lock()
	dialogSeen := confirmed
	mu.Unlock()
	if dialogSeen {
		return true, nil
	}

	// Fall back to the window marker the payload leaves behind.
	ok, err := page.Eval(fmt.Sprintf("window['%s'] === true", marker))
	if err != nil {
		return false, fmt.Errorf("failed to check window marker: %w", err)
	}
	return ok, nil
}

// rodPage adapts a rod page to the dialogPage interface.
type rodPage struct {
	page *rod.Page
}

func (rp rodPage) Fill(selector, value string) error {
	el, err := rp.page.Element(selector)
	if err != nil {
		return err
	}
	return el.Input(value)
}

func (rp rodPage) Submit(selector string) error {
	el, err := rp.page.Element(selector)
	if err != nil {
		return err
	}
	return el.Click(proto.InputMouseButtonLeft, 1)
}

func (rp rodPage) ListenDialogs(ctx context.Context, handle func(message string)) func() {
	return rp.page.Context(ctx).EachEvent(func(e *proto.PageJavascriptDialogOpening) bool {
		handle(e.Message)

		// Accept the dialog so the page is not left blocked.
		_ = (proto.PageHandleJavaScriptDialog{Accept: true}).Call(rp.page)
		return false
	})
}

func (rp rodPage) Eval(js string) (bool, error) {
	res, err := rp.page.Eval(js)
	if err != nil {
		return false, err
	}
	return res.Value.Bool(), nil
}
