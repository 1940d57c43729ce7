package utils

import (
	"fmt"
	"net/url"

	"golang.org/x/net/publicsuffix"
)

// FaviconURL derives a favicon endpoint for a page URL. The registrable
// domain is used so links on subdomains share one icon.
func FaviconURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Hostname() == "" {
		return ""
	}
	domain, err := publicsuffix.EffectiveTLDPlusOne(u.Hostname())
	if err != nil {
		domain = u.Hostname()
	}
	return fmt.Sprintf("https://www.google.com/s2/favicons?domain=%s", domain)
}
