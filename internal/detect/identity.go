// Package detect computes stable product identities and diffs them against
// the persisted seen-set. The identity is the unit of dedup: the same product
// URL must map to the same identity on every run, on every machine, or
// products get re-reported forever.
package detect

import (
	"crypto/sha256"
	"encoding/hex"
	"net/url"
	"strings"
)

// CanonicalURL normalizes a product URL before hashing. Query parameters,
// fragments and trailing slashes vary between visits without changing the
// referenced product, so they are stripped. Scheme and host are lowercased.
func CanonicalURL(raw string) string {
	raw = strings.TrimSpace(raw)

	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		// Not an absolute URL; normalize what we can.
		return strings.TrimRight(raw, "/")
	}

	u.Scheme = strings.ToLower(u.Scheme)
	u.Host = strings.ToLower(u.Host)
	u.RawQuery = ""
	u.Fragment = ""
	u.Path = strings.TrimRight(u.Path, "/")

	return u.String()
}

// Identity returns the hex SHA-256 of the canonicalized URL's UTF-8 bytes.
// SHA-256 keeps the persisted seen-set compatible across reimplementations.
func Identity(rawURL string) string {
	sum := sha256.Sum256([]byte(CanonicalURL(rawURL)))
	return hex.EncodeToString(sum[:])
}
