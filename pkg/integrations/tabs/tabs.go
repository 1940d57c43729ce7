package tabs

import (
	"context"
	"fmt"
	"time"

	"webland/pkg/types/tabs"
	"webland/pkg/utils"

	"github.com/chromedp/chromedp"
)

var (
	_ tabs.Accessor = (*ChromeAccessor)(nil)
	_ tabs.Accessor = (*Static)(nil)
)

// ChromeAccessor reads the active tab out of a running browser through
// the remote debugging port (start the browser with
// --remote-debugging-port=9222). Used to prefill bookmark and link
// forms with the page the user is looking at.
type ChromeAccessor struct {
	DebugURL string
	Timeout  time.Duration
}

func NewChromeAccessor(debugURL string) *ChromeAccessor {
	if debugURL == "" {
		debugURL = "ws://localhost:9222"
	}
	return &ChromeAccessor{
		DebugURL: debugURL,
		Timeout:  5 * time.Second,
	}
}

func (a *ChromeAccessor) ActiveTab(ctx context.Context) (tabs.Tab, error) {
	ctx, cancel := context.WithTimeout(ctx, a.Timeout)
	defer cancel()

	allocCtx, allocCancel := chromedp.NewRemoteAllocator(ctx, a.DebugURL)
	defer allocCancel()

	browserCtx, browserCancel := chromedp.NewContext(allocCtx)
	defer browserCancel()

	targets, err := chromedp.Targets(browserCtx)
	if err != nil {
		return tabs.Tab{}, fmt.Errorf("failed to list browser targets: %w", err)
	}

	for _, target := range targets {
		if target.Type != "page" || target.URL == "" {
			continue
		}
		return tabs.Tab{
			Title:      target.Title,
			URL:        target.URL,
			FaviconURL: utils.FaviconURL(target.URL),
		}, nil
	}

	return tabs.Tab{}, fmt.Errorf("no open page found")
}

// Static always reports the same tab. It serves tests and headless
// deployments where no browser is reachable.
type Static struct {
	Tab tabs.Tab
}

func NewStatic(title, url string) *Static {
	return &Static{Tab: tabs.Tab{
		Title:      title,
		URL:        url,
		FaviconURL: utils.FaviconURL(url),
	}}
}

func (s *Static) ActiveTab(_ context.Context) (tabs.Tab, error) {
	if s.Tab.URL == "" {
		return tabs.Tab{}, fmt.Errorf("no open page found")
	}
	return s.Tab, nil
}
