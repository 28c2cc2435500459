// Package staffcomposite builds the effective Staff seen at a given
// (measure, edu) position by overlaying zero or more time-scoped
// StaffStyleAssigns onto a raw Staff record (spec C7). The overlay is a
// template-and-mask copy: each StaffStyle's Mask bit decides which
// field group it overrides; anything outside the mask passes the raw
// Staff's value through unchanged.
package staffcomposite

import (
	"github.com/cartomix/musxdom/dom"
	"github.com/cartomix/musxdom/ids"
)

// Build returns the effective staff for raw at (measure, edu), after
// applying every assign in assigns whose range contains that position,
// in the order given (callers pass them pre-sorted by Inci, i.e.
// document appearance order — later assigns win ties on the same
// field). styles maps a StaffStyleAssign's StyleID to its StaffStyle.
//
// A StyleID absent from styles is not an error: it means the style was
// part-specific and not visible to the requesting part, so the assign
// is skipped (spec §6's part-scoped pool fallback already handles the
// common case; this guards the remainder).
func Build(raw *dom.Staff, assigns []*dom.StaffStyleAssign, styles map[ids.Cmper]*dom.StaffStyle, measure ids.Cmper, edu ids.Edu) *dom.Staff {
	out := clone(raw)
	for _, a := range assigns {
		if !a.Range.Contains(measure, edu) {
			continue
		}
		style, ok := styles[a.StyleID]
		if !ok {
			continue
		}
		apply(out, style)
	}
	return out
}

func clone(raw *dom.Staff) *dom.Staff {
	cp := *raw
	if raw.Transpose != nil {
		t := *raw.Transpose
		cp.Transpose = &t
	}
	return &cp
}

func apply(out *dom.Staff, style *dom.StaffStyle) {
	if style.Mask&dom.MaskNotationStyle != 0 {
		out.NotationStyle = style.NotationStyle
	}
	if style.Mask&dom.MaskTransposition != 0 && style.Transpose != nil {
		t := *style.Transpose
		out.Transpose = &t
	}
	if style.Mask&dom.MaskHideStems != 0 {
		out.HideStems = style.HideStems
	}
	if style.Mask&dom.MaskInstUUID != 0 && style.InstUUID != "" {
		out.InstUUID = style.InstUUID
	}
	// MaskStaffType carries ledger-line overrides that live outside the
	// dom.Staff shape itself (custom staff line positions rather than a
	// Staff field); callers needing that override read it directly off
	// the winning StaffStyle's StaffType via Winner.
}

// Winner reports the last applicable style in assigns at (measure, edu)
// that sets MaskStaffType, so a caller can read its StaffTypeOverride
// without staffcomposite needing to thread ledger-line geometry through
// dom.Staff itself.
func Winner(assigns []*dom.StaffStyleAssign, styles map[ids.Cmper]*dom.StaffStyle, measure ids.Cmper, edu ids.Edu) *dom.StaffStyle {
	var winner *dom.StaffStyle
	for _, a := range assigns {
		if !a.Range.Contains(measure, edu) {
			continue
		}
		style, ok := styles[a.StyleID]
		if !ok || style.Mask&dom.MaskStaffType == 0 {
			continue
		}
		winner = style
	}
	return winner
}
