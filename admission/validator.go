// Package admission provides pre-fetch gating of URLs based on validity and
// policy rules: structural checks, a social-media domain blocklist, and
// suspicious-path detection.
package admission

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/fwojciec/webcat"
)

// MaxURLLength is the maximum accepted URL length.
const MaxURLLength = 2048

// urlPattern accepts scheme://host[:port][/path][?query] where the host is
// a domain name, localhost, or a dotted-quad IPv4 address. A fragment
// immediately after the host does not match.
var urlPattern = regexp.MustCompile(
	`(?i)^https?://` +
		`(?:(?:[a-z0-9](?:[a-z0-9-]{0,61}[a-z0-9])?\.)+[a-z]{2,6}\.?|` +
		`localhost|` +
		`\d{1,3}\.\d{1,3}\.\d{1,3}\.\d{1,3})` +
		`(?::\d+)?` +
		`(?:/?|[/?]\S+)$`,
)

// suspiciousPatterns reject URLs that point at auth surfaces or binary
// downloads.
var suspiciousPatterns = []*regexp.Regexp{
	regexp.MustCompile(`login`),
	regexp.MustCompile(`auth`),
	regexp.MustCompile(`admin`),
	regexp.MustCompile(`private`),
	regexp.MustCompile(`\.exe$`),
	regexp.MustCompile(`\.zip$`),
	regexp.MustCompile(`\.pdf$`),
}

// Ensure Validator implements webcat.Validator at compile time.
var _ webcat.Validator = (*Validator)(nil)

// Validator decides whether a URL is eligible to be fetched. The zero
// value is not usable; construct with NewValidator.
type Validator struct {
	blockedDomains map[string]struct{}
}

// NewValidator creates a Validator with the fixed blocklist of major
// social-media domains.
func NewValidator() *Validator {
	blocked := []string{
		"facebook.com",
		"instagram.com",
		"twitter.com",
		"linkedin.com",
		"youtube.com",
		"tiktok.com",
		"pinterest.com",
		"snapchat.com",
	}
	m := make(map[string]struct{}, len(blocked))
	for _, d := range blocked {
		m[d] = struct{}{}
	}
	return &Validator{blockedDomains: m}
}

// Validate checks a URL against every admission rule in order; the first
// failure wins. It never panics and always returns a reason.
func (v *Validator) Validate(rawURL string) webcat.ValidationResult {
	if rawURL == "" {
		return reject("URL must be a non-empty string")
	}

	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return reject("URL must be a non-empty string")
	}

	if len(rawURL) > MaxURLLength {
		return reject("URL exceeds maximum allowed length")
	}

	if !urlPattern.MatchString(rawURL) {
		return reject("Invalid URL format")
	}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return reject(fmt.Sprintf("URL parsing error: %v", err))
	}

	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return reject("Only HTTP and HTTPS URLs are supported")
	}

	domain := strings.ToLower(parsed.Host)
	domain = strings.TrimPrefix(domain, "www.")
	if v.isBlocked(domain) {
		return reject(fmt.Sprintf("Domain %s is blocked for scraping", parsed.Host))
	}

	if hasSuspiciousPatterns(rawURL) {
		return reject("URL contains suspicious patterns")
	}

	return webcat.ValidationResult{Valid: true, Reason: "URL is valid for scraping"}
}

// isBlocked reports whether the normalized domain equals, or is a
// subdomain of, a blocklist entry.
func (v *Validator) isBlocked(domain string) bool {
	for blocked := range v.blockedDomains {
		if domain == blocked || strings.HasSuffix(domain, "."+blocked) {
			return true
		}
	}
	return false
}

func hasSuspiciousPatterns(rawURL string) bool {
	lower := strings.ToLower(rawURL)
	for _, p := range suspiciousPatterns {
		if p.MatchString(lower) {
			return true
		}
	}
	return false
}

func reject(reason string) webcat.ValidationResult {
	return webcat.ValidationResult{Valid: false, Reason: reason}
}
