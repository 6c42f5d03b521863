package license

import "strings"

const (
	urlTrailingSlashConstant = "/"
)

// Validator is the predicate deciding whether a (name, url) license pair is
// accepted. It performs no I/O and holds no state so checks can receive it as
// an explicit capability.
type Validator func(licenseName string, licenseURL string) bool

// acceptedLicenses maps normalized license names to the canonical urls under
// which the license may be referenced.
var acceptedLicenses = map[string][]string{
	"cc0 1.0": {
		"http://creativecommons.org/publicdomain/zero/1.0/",
		"https://creativecommons.org/publicdomain/zero/1.0/",
	},
	"mit": {
		"http://opensource.org/licenses/MIT",
		"https://opensource.org/licenses/MIT",
	},
	"bsd 3-clause": {
		"http://opensource.org/licenses/BSD-3-Clause",
		"https://opensource.org/licenses/BSD-3-Clause",
	},
	"apache 2.0": {
		"http://www.apache.org/licenses/LICENSE-2.0",
		"https://www.apache.org/licenses/LICENSE-2.0",
	},
	"lgpl 2.1": {
		"http://www.gnu.org/licenses/old-licenses/lgpl-2.1",
		"https://www.gnu.org/licenses/old-licenses/lgpl-2.1",
	},
	"lgpl 2.1+": {
		"http://www.gnu.org/licenses/old-licenses/lgpl-2.1",
		"https://www.gnu.org/licenses/old-licenses/lgpl-2.1",
	},
	"lgpl 3.0": {
		"http://www.gnu.org/licenses/lgpl-3.0",
		"https://www.gnu.org/licenses/lgpl-3.0",
	},
	"gpl 3.0": {
		"http://www.gnu.org/licenses/gpl-3.0",
		"https://www.gnu.org/licenses/gpl-3.0",
	},
}

// Check reports whether the provided license name and url identify an
// accepted license. Names match case-insensitively; urls match after
// whitespace and trailing-slash normalization.
func Check(licenseName string, licenseURL string) bool {
	normalizedName := strings.ToLower(strings.TrimSpace(licenseName))
	if len(normalizedName) == 0 {
		return false
	}

	canonicalURLs, nameAccepted := acceptedLicenses[normalizedName]
	if !nameAccepted {
		return false
	}

	normalizedURL := normalizeURL(licenseURL)
	if len(normalizedURL) == 0 {
		return false
	}

	for _, canonicalURL := range canonicalURLs {
		if strings.EqualFold(normalizeURL(canonicalURL), normalizedURL) {
			return true
		}
	}
	return false
}

func normalizeURL(rawURL string) string {
	return strings.TrimSuffix(strings.TrimSpace(rawURL), urlTrailingSlashConstant)
}
