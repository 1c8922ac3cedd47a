package solana

import (
	"regexp"
	"strings"
)

// Program log lines carry contract errors in a handful of formats, depending
// on the anchor version and how the program reports them.
var (
	errMessagePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)Error Message:\s*(.+)`),
		regexp.MustCompile(`(?i)Program log:\s*Error:\s*(.+)`),
		regexp.MustCompile(`(?i)Contract reported:\s*(.+)`),
	}

	errCodePattern   = regexp.MustCompile(`(?i)Error Code:\s*([A-Za-z0-9_]+)`)
	errNumberPattern = regexp.MustCompile(`(?i)Error Number:\s*(\d+)`)
)

// ExtractErrorMessage scans simulation or execution logs for a
// human-readable contract error message. It returns the first match in log
// order.
func ExtractErrorMessage(logs []string) (string, bool) {
	for _, log := range logs {
		for _, pattern := range errMessagePatterns {
			if m := pattern.FindStringSubmatch(log); m != nil {
				return strings.TrimSpace(m[1]), true
			}
		}
	}

	return "", false
}

// ExtractErrorCode scans logs for a contract error code or number. Named
// codes take precedence over numbers within a single log line.
func ExtractErrorCode(logs []string) (string, bool) {
	for _, log := range logs {
		if m := errCodePattern.FindStringSubmatch(log); m != nil {
			return m[1], true
		}
		if m := errNumberPattern.FindStringSubmatch(log); m != nil {
			return m[1], true
		}
	}

	return "", false
}
