// Package ids defines the primitive identifier and duration types shared
// across every pool, record, and compositor in the document model.
package ids

// Cmper is a component identifier: a 16-bit key naming a record within a
// pool.
type Cmper uint16

// Inci is an incidence index: it disambiguates multiple records that share
// a Cmper. A negative value means "no incidence" (the record is not part
// of an indexed collection).
type Inci int16

// NoInci marks a record that carries no incidence index.
const NoInci Inci = -1

// EntryNumber keys a note/chord entry. Entries form a doubly-linked chain
// via Entry.Prev/Entry.Next.
type EntryNumber uint32

// Edu is an elementary duration unit: 1024 Edu equals one quarter note,
// 4096 Edu equals one whole note.
type Edu int32

// Evpu is an elementary vertical page unit: 288 Evpu equals one inch.
type Evpu int32

// PartID names a linked part, or the score when equal to SCOREPARTID.
type PartID Cmper

// SCOREPARTID is the reserved part id denoting the score rather than a
// linked part.
const SCOREPARTID PartID = 0

// BASESYSTEMID is the reserved cmper for the default scroll-view system.
const BASESYSTEMID Cmper = 0

// EduPerWhole is the number of Edu in one whole note.
const EduPerWhole = 4096

// EduPerQuarter is the number of Edu in one quarter note.
const EduPerQuarter = 1024
