package domain

import (
	"net/url"
	"strings"
)

type SameSite string

const (
	SameSiteNone          SameSite = "None"
	SameSiteLax           SameSite = "Lax"
	SameSiteStrict        SameSite = "Strict"
	SameSiteNoRestriction SameSite = "no_restriction"
	SameSiteUnspecified   SameSite = "unspecified"
)

// Canonical folds the extension API spellings into the HTTP attribute values.
// Unknown or unspecified values come back empty.
func (s SameSite) Canonical() SameSite {
	switch strings.ToLower(strings.TrimSpace(string(s))) {
	case "none", "no_restriction":
		return SameSiteNone
	case "lax":
		return SameSiteLax
	case "strict":
		return SameSiteStrict
	default:
		return ""
	}
}

const (
	defaultCookiePath = "/"
	cookieURLScheme   = "https://"
)

// Cookie mirrors the cookie shape exported by browser extension cookie APIs.
// ExpirationDate is seconds since the Unix epoch; nil marks a session cookie.
type Cookie struct {
	Domain         string   `json:"domain"`
	Name           string   `json:"name"`
	Value          string   `json:"value"`
	Path           string   `json:"path,omitempty"`
	Secure         bool     `json:"secure,omitempty"`
	HTTPOnly       bool     `json:"httpOnly,omitempty"`
	ExpirationDate *float64 `json:"expirationDate,omitempty"`
	SameSite       SameSite `json:"sameSite,omitempty"`
	Session        bool     `json:"session,omitempty"`
	HostOnly       bool     `json:"hostOnly,omitempty"`
	StoreID        string   `json:"storeId,omitempty"`
}

type SessionBundle struct {
	URL     string   `json:"url"`
	Cookies []Cookie `json:"cookies"`
}

// Domain returns the hostname of the bundle URL, or "" when it does not parse.
func (b SessionBundle) Domain() string {
	parsed, err := url.Parse(strings.TrimSpace(b.URL))
	if err != nil {
		return ""
	}

	return parsed.Hostname()
}

// FirstExpiry returns the expiration date of the first cookie, if any.
func (b SessionBundle) FirstExpiry() *float64 {
	if len(b.Cookies) == 0 || b.Cookies[0].ExpirationDate == nil {
		return nil
	}

	expiry := *b.Cookies[0].ExpirationDate
	return &expiry
}

// CookieSetRequest is a normalized cookie ready to be installed in a browser.
type CookieSetRequest struct {
	URL    string
	Cookie Cookie
}

// NormalizeCookie fills install defaults and qualifies the domain with a leading dot.
func NormalizeCookie(c Cookie) CookieSetRequest {
	bare := StripLeadingDot(c.Domain)

	normalized := c
	normalized.Domain = DotDomain(c.Domain)
	if normalized.Path == "" {
		normalized.Path = defaultCookiePath
	}
	if normalized.SameSite == "" {
		normalized.SameSite = SameSiteNone
	}
	if c.Session {
		normalized.ExpirationDate = nil
	}

	return CookieSetRequest{
		URL:    cookieURLScheme + bare,
		Cookie: normalized,
	}
}

// RemovalURL rebuilds the URL a stored cookie is scoped to.
func RemovalURL(c Cookie) string {
	path := c.Path
	if path == "" {
		path = defaultCookiePath
	}

	return cookieURLScheme + StripLeadingDot(c.Domain) + path
}

func StripLeadingDot(domain string) string {
	return strings.TrimPrefix(strings.TrimSpace(domain), ".")
}

func DotDomain(domain string) string {
	return "." + StripLeadingDot(domain)
}

// MatchesDomain reports whether a cookie belongs to domain or one of its
// subdomains, the same filter browsers apply to getAll({domain}).
func MatchesDomain(cookieDomain, domain string) bool {
	bare := strings.ToLower(StripLeadingDot(cookieDomain))
	domain = strings.ToLower(StripLeadingDot(domain))
	if bare == "" || domain == "" {
		return false
	}

	return bare == domain || strings.HasSuffix(bare, "."+domain)
}
