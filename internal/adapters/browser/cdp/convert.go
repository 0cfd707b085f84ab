package cdp

import (
	"strings"

	"github.com/bnema/session-vault-cli/internal/domain"
	"github.com/go-rod/rod/lib/proto"
)

func toCookieParam(req domain.CookieSetRequest) *proto.NetworkCookieParam {
	c := req.Cookie
	param := &proto.NetworkCookieParam{
		Name:     c.Name,
		Value:    c.Value,
		URL:      req.URL,
		Domain:   c.Domain,
		Path:     c.Path,
		Secure:   c.Secure,
		HTTPOnly: c.HTTPOnly,
		SameSite: toProtoSameSite(c.SameSite),
	}
	if c.ExpirationDate != nil {
		param.Expires = proto.TimeSinceEpoch(*c.ExpirationDate)
	}

	return param
}

func fromNetworkCookie(c *proto.NetworkCookie) domain.Cookie {
	cookie := domain.Cookie{
		Domain:   c.Domain,
		Name:     c.Name,
		Value:    c.Value,
		Path:     c.Path,
		Secure:   c.Secure,
		HTTPOnly: c.HTTPOnly,
		SameSite: fromProtoSameSite(c.SameSite),
		Session:  c.Session,
		HostOnly: !strings.HasPrefix(c.Domain, "."),
	}
	if !c.Session {
		expires := float64(c.Expires)
		cookie.ExpirationDate = &expires
	}

	return cookie
}

func filterCookies(cookies []*proto.NetworkCookie, host string) []domain.Cookie {
	out := make([]domain.Cookie, 0, len(cookies))
	for _, c := range cookies {
		if c == nil || !domain.MatchesDomain(c.Domain, host) {
			continue
		}
		out = append(out, fromNetworkCookie(c))
	}

	return out
}

// toProtoSameSite maps an extension sameSite value onto the DevTools enum.
// Unknown values are left for the browser to default.
func toProtoSameSite(s domain.SameSite) proto.NetworkCookieSameSite {
	switch s.Canonical() {
	case domain.SameSiteStrict:
		return proto.NetworkCookieSameSiteStrict
	case domain.SameSiteLax:
		return proto.NetworkCookieSameSiteLax
	case domain.SameSiteNone:
		return proto.NetworkCookieSameSiteNone
	default:
		return ""
	}
}

func fromProtoSameSite(s proto.NetworkCookieSameSite) domain.SameSite {
	switch s {
	case proto.NetworkCookieSameSiteStrict:
		return domain.SameSiteStrict
	case proto.NetworkCookieSameSiteLax:
		return domain.SameSiteLax
	case proto.NetworkCookieSameSiteNone:
		return domain.SameSiteNone
	default:
		return ""
	}
}
