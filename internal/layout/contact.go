package layout

import (
	"strings"

	"golang.org/x/net/publicsuffix"

	"resume-builder/internal/model"
)

// ContactLines returns the non-empty contact fields in display order. Links
// are shown without their scheme.
func ContactLines(p model.Personal) []string {
	var out []string
	for _, v := range []string{p.Email, p.Phone, p.Location} {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	for _, v := range []string{p.LinkedIn, p.Website} {
		if label := LinkLabel(v); label != "" {
			out = append(out, label)
		}
	}
	return out
}

// LinkLabel shortens a link for display: the scheme, a leading "www." and a
// trailing slash are dropped. The host is kept whole. Scheme-less values
// that do not end in a public suffix are not links and come back unchanged.
func LinkLabel(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	rest, hadScheme := stripScheme(raw)
	if !hadScheme && !isDomain(rest) {
		return raw
	}
	rest = strings.TrimPrefix(rest, "www.")
	return strings.TrimSuffix(rest, "/")
}

func stripScheme(s string) (string, bool) {
	lower := strings.ToLower(s)
	for _, scheme := range []string{"https://", "http://"} {
		if strings.HasPrefix(lower, scheme) {
			return s[len(scheme):], true
		}
	}
	return s, false
}

// isDomain reports whether the host part of s sits under a listed public
// suffix and is not the suffix itself.
func isDomain(s string) bool {
	host := s
	if i := strings.IndexAny(host, "/?#"); i >= 0 {
		host = host[:i]
	}
	host = strings.ToLower(host)
	if host == "" || strings.ContainsAny(host, " @") {
		return false
	}
	suffix, icann := publicsuffix.PublicSuffix(host)
	if !icann && !strings.Contains(suffix, ".") {
		return false
	}
	_, err := publicsuffix.EffectiveTLDPlusOne(host)
	return err == nil
}
