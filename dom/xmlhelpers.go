package dom

import (
	"strconv"
	"strings"

	"github.com/cartomix/musxdom/xmlapi"
)

// textInt parses an element's trimmed text as a signed integer. Per
// spec §4.1, typed extraction trims whitespace and a failed conversion
// is the caller's concern; these helpers report ok=false rather than
// panicking so populators can decide whether a malformed value is fatal.
func textInt(el xmlapi.Element) (int64, bool) {
	v, err := strconv.ParseInt(strings.TrimSpace(el.Text()), 10, 64)
	return v, err == nil
}

func textFloat(el xmlapi.Element) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(el.Text()), 64)
	return v, err == nil
}

func textBool(el xmlapi.Element) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(el.Text())) {
	case "true":
		return true, true
	case "false":
		return false, true
	default:
		return false, false
	}
}

// present reports whether a self-closing marker element exists (e.g.
// <flat/>, <avoidStaff/>): its mere presence as a child is the boolean
// value, per spec §4.1's handling of empty-element flags.
func present(xmlapi.Element) bool { return true }
