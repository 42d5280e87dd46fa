package jobscrape

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"
)

// NormalizeText collapses every run of whitespace into a single space and
// trims the result.
func NormalizeText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// ResolveURL resolves ref against base and returns the absolute URL.
// Returns an empty string when ref is empty, either value cannot be parsed,
// or the result is not an absolute http(s) URL.
func ResolveURL(ref, base string) string {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return ""
	}
	b, err := url.Parse(strings.TrimSpace(base))
	if err != nil {
		return ""
	}
	r, err := url.Parse(ref)
	if err != nil {
		return ""
	}
	resolved := b.ResolveReference(r)
	if resolved.Scheme != "http" && resolved.Scheme != "https" {
		return ""
	}
	if resolved.Host == "" {
		return ""
	}
	return resolved.String()
}

// Origin returns the scheme and host of rawURL, e.g. "https://example.com".
func Origin(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", Errorf(EINVALID, "invalid URL %q: %v", rawURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", Errorf(EINVALID, "URL %q must be absolute", rawURL)
	}
	return u.Scheme + "://" + u.Host, nil
}

// ListingURL returns the URL of the given listing page. The first page is
// the base URL itself; later pages add a page query parameter.
func ListingURL(base string, page int) (string, error) {
	if page < 1 {
		return "", Errorf(EINVALID, "page must be >= 1, got %d", page)
	}
	u, err := url.Parse(base)
	if err != nil {
		return "", Errorf(EINVALID, "invalid listing URL %q: %v", base, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", Errorf(EINVALID, "listing URL %q must be absolute", base)
	}
	if page == 1 {
		return u.String(), nil
	}
	u.RawQuery = setQueryParam(u.RawQuery, "page", strconv.Itoa(page))
	return u.String(), nil
}

// setQueryParam replaces the first occurrence of key in rawQuery, dropping
// any later ones, or appends it. Other parameters keep their order and
// encoding.
func setQueryParam(rawQuery, key, value string) string {
	param := url.QueryEscape(key) + "=" + url.QueryEscape(value)
	var parts []string
	set := false
	for _, part := range strings.Split(rawQuery, "&") {
		if part == "" {
			continue
		}
		name, _, _ := strings.Cut(part, "=")
		if k, err := url.QueryUnescape(name); err == nil && k == key {
			if !set {
				parts = append(parts, param)
				set = true
			}
			continue
		}
		parts = append(parts, part)
	}
	if !set {
		parts = append(parts, param)
	}
	return strings.Join(parts, "&")
}

var modalityRe = regexp.MustCompile(`\(([^)]+)\)`)

// SplitModality separates the first parenthesized group of a location text,
// e.g. "Santiago (Hybrid)" becomes "Santiago" and "Hybrid".
func SplitModality(locationText string) (location, modality string) {
	if locationText == "" {
		return "", ""
	}
	m := modalityRe.FindStringSubmatchIndex(locationText)
	if m == nil {
		return NormalizeText(locationText), ""
	}
	location = NormalizeText(locationText[:m[0]] + locationText[m[1]:])
	modality = NormalizeText(locationText[m[2]:m[3]])
	return location, modality
}

var remoteRe = regexp.MustCompile(`(?i)remot`)

// IsRemote reports whether a posting is remote, either because its location
// text mentions it or because the board marked it with a remote icon.
func IsRemote(locationText string, hasRemoteIcon bool) bool {
	return hasRemoteIcon || remoteRe.MatchString(locationText)
}

// LastPathSegment returns the last non-empty "/"-separated segment of link.
func LastPathSegment(link string) string {
	parts := strings.Split(link, "/")
	for i := len(parts) - 1; i >= 0; i-- {
		if parts[i] != "" {
			return parts[i]
		}
	}
	return ""
}

// Unique returns the non-nil slice of values with duplicates removed,
// keeping first occurrences in order.
func Unique(values []string) []string {
	out := make([]string, 0, len(values))
	seen := make(map[string]bool, len(values))
	for _, v := range values {
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}
