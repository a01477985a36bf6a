package infer

import (
	"net"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/dev-jwshin/testswag/spec"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	datePattern  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	uuidPattern  = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)
)

// DetectFormat classifies a string into a schema format hint. Candidates
// are tried in a fixed priority order and the first match wins; an empty
// result means plain string.
func DetectFormat(s string) string {
	switch {
	case emailPattern.MatchString(s):
		return spec.FormatEmail
	case uuidPattern.MatchString(s):
		return spec.FormatUUID
	case datePattern.MatchString(s):
		return spec.FormatDate
	case isDateTime(s):
		return spec.FormatDateTime
	case isAbsoluteURI(s):
		return spec.FormatURI
	case isIPv4(s):
		return spec.FormatIPv4
	case isIPv6(s):
		return spec.FormatIPv6
	default:
		return ""
	}
}

func isDateTime(s string) bool {
	_, err := time.Parse(time.RFC3339, s)
	return err == nil
}

func isAbsoluteURI(s string) bool {
	u, err := url.Parse(s)
	return err == nil && u.IsAbs() && u.Scheme != "" && (u.Host != "" || u.Opaque != "")
}

func isIPv4(s string) bool {
	ip := net.ParseIP(s)
	return ip != nil && strings.Count(s, ".") == 3 && ip.To4() != nil
}

func isIPv6(s string) bool {
	ip := net.ParseIP(s)
	return ip != nil && strings.Contains(s, ":")
}
