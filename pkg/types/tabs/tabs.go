package tabs

import "context"

// Tab describes the page currently focused in the host browser.
type Tab struct {
	Title      string `json:"title"`
	URL        string `json:"url"`
	FaviconURL string `json:"favicon_url,omitempty"`
}

type Accessor interface {
	ActiveTab(ctx context.Context) (Tab, error)
}
