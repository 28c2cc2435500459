package dom

import "github.com/google/uuid"

// normalizeInstUUID canonicalizes a Staff's instUuid field to lowercase,
// hyphenated form so two staves written by different Finale versions
// (some uppercase, some without braces) that share the same instrument
// still compare equal in instruments.Build's bracketing pass. A value
// that does not parse as a UUID at all (rare, but legacy files have been
// seen with truncated ones) is kept as-is rather than discarded.
func normalizeInstUUID(raw string) string {
	if raw == "" {
		return ""
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return raw
	}
	return id.String()
}
