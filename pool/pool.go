// Package pool holds the generic, part-scoped record stores populated
// during load and queried by every downstream component (spec C4). Each
// pool category gets its own key shape because the original format keys
// them differently: Options by part alone, Others/Details additionally
// by cmper (and inci for array-like repeats), Details alternatively by
// entry number, Entries by entry number in a doubly-linked chain, Texts
// by cmper within a subtype, and Header as a single unkeyed record.
package pool

import (
	"sort"
	"sync"

	"github.com/cartomix/musxdom/ids"
)

// OthersKey identifies one Others or array-style Details record.
type OthersKey struct {
	Part  ids.PartID
	Cmper ids.Cmper
	Inci  ids.Inci
}

// DetailsKey identifies a Details record keyed by a pair of cmpers
// (e.g. staff+measure for GFrameHold, or group id alone with Cmper2
// left zero for StaffGroup).
type DetailsKey struct {
	Part   ids.PartID
	Cmper1 ids.Cmper
	Cmper2 ids.Cmper
	Inci   ids.Inci
}

// EntryDetailsKey identifies a Details record attached directly to an
// entry (TupletDef, SecondaryBeamBreak, LyricAssign, ...).
type EntryDetailsKey struct {
	Part        ids.PartID
	EntryNumber ids.EntryNumber
	Inci        ids.Inci
}

// OptionsPool holds the document-wide singleton of T, with an optional
// per-part override. Lookup falls back to the score (SCOREPARTID) copy
// when no part-specific override exists, per spec §6.
type OptionsPool[T any] struct {
	mu      sync.RWMutex
	byPart  map[ids.PartID]*T
}

// NewOptionsPool constructs an empty OptionsPool.
func NewOptionsPool[T any]() *OptionsPool[T] {
	return &OptionsPool[T]{byPart: make(map[ids.PartID]*T)}
}

// Add stores v under the given part.
func (p *OptionsPool[T]) Add(part ids.PartID, v *T) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.byPart[part] = v
}

// Get returns the part's override if present, else the score copy, else
// nil, false.
func (p *OptionsPool[T]) Get(part ids.PartID) (*T, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if v, ok := p.byPart[part]; ok {
		return v, true
	}
	if part != ids.SCOREPARTID {
		if v, ok := p.byPart[ids.SCOREPARTID]; ok {
			return v, true
		}
	}
	return nil, false
}

// OthersPool holds Others records (and array-style Details that follow
// the same key shape), scoped by part+cmper+inci.
type OthersPool[T any] struct {
	mu    sync.RWMutex
	byKey map[OthersKey]*T
}

// NewOthersPool constructs an empty OthersPool.
func NewOthersPool[T any]() *OthersPool[T] {
	return &OthersPool[T]{byKey: make(map[OthersKey]*T)}
}

// Add stores v under key, overwriting any prior record at the same key
// (later loads of the same document should not happen, but re-running a
// load must not leak state from a previous one).
func (p *OthersPool[T]) Add(key OthersKey, v *T) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.byKey[key] = v
}

// Get returns the single record at (part, cmper, NoInci), falling back
// to the score's copy when the part has none of its own.
func (p *OthersPool[T]) Get(part ids.PartID, cmper ids.Cmper) (*T, bool) {
	return p.GetInci(part, cmper, ids.NoInci)
}

// GetInci returns the record at the fully-qualified key, with score
// fallback on Part only (Cmper/Inci must match exactly).
func (p *OthersPool[T]) GetInci(part ids.PartID, cmper ids.Cmper, inci ids.Inci) (*T, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	key := OthersKey{Part: part, Cmper: cmper, Inci: inci}
	if v, ok := p.byKey[key]; ok {
		return v, true
	}
	if part != ids.SCOREPARTID {
		key.Part = ids.SCOREPARTID
		if v, ok := p.byKey[key]; ok {
			return v, true
		}
	}
	return nil, false
}

// GetArray returns every inci for (part, cmper), in ascending Inci
// order, for the requested part; when that part has none, the score's
// array for cmper is returned instead (the two are never merged: a part
// that defines its own array-style Others owns the whole array).
func (p *OthersPool[T]) GetArray(part ids.PartID, cmper ids.Cmper) []*T {
	p.mu.RLock()
	defer p.mu.RUnlock()
	var keys []OthersKey
	for k := range p.byKey {
		if k.Part == part && k.Cmper == cmper {
			keys = append(keys, k)
		}
	}
	if len(keys) == 0 && part != ids.SCOREPARTID {
		for k := range p.byKey {
			if k.Part == ids.SCOREPARTID && k.Cmper == cmper {
				keys = append(keys, k)
			}
		}
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Inci < keys[j].Inci })
	out := make([]*T, 0, len(keys))
	for _, k := range keys {
		out = append(out, p.byKey[k])
	}
	return out
}

// All returns every record in the pool in deterministic (part, cmper,
// inci) key order, regardless of part (spec §6's "enumerate in
// lexicographic key order").
func (p *OthersPool[T]) All() []*T {
	p.mu.RLock()
	defer p.mu.RUnlock()
	keys := make([]OthersKey, 0, len(p.byKey))
	for k := range p.byKey {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, b := keys[i], keys[j]
		if a.Part != b.Part {
			return a.Part < b.Part
		}
		if a.Cmper != b.Cmper {
			return a.Cmper < b.Cmper
		}
		return a.Inci < b.Inci
	})
	out := make([]*T, 0, len(keys))
	for _, k := range keys {
		out = append(out, p.byKey[k])
	}
	return out
}

// DetailsPool holds Details records keyed by a pair of cmpers, scoped by
// part+inci.
type DetailsPool[T any] struct {
	mu    sync.RWMutex
	byKey map[DetailsKey]*T
}

// NewDetailsPool constructs an empty DetailsPool.
func NewDetailsPool[T any]() *DetailsPool[T] {
	return &DetailsPool[T]{byKey: make(map[DetailsKey]*T)}
}

// Add stores v under key.
func (p *DetailsPool[T]) Add(key DetailsKey, v *T) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.byKey[key] = v
}

// Get returns the record at (part, cmper1, cmper2, NoInci), with score
// fallback on Part.
func (p *DetailsPool[T]) Get(part ids.PartID, cmper1, cmper2 ids.Cmper) (*T, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	key := DetailsKey{Part: part, Cmper1: cmper1, Cmper2: cmper2, Inci: ids.NoInci}
	if v, ok := p.byKey[key]; ok {
		return v, true
	}
	if part != ids.SCOREPARTID {
		key.Part = ids.SCOREPARTID
		if v, ok := p.byKey[key]; ok {
			return v, true
		}
	}
	return nil, false
}

// All returns every record in deterministic key order.
func (p *DetailsPool[T]) All() []*T {
	p.mu.RLock()
	defer p.mu.RUnlock()
	keys := make([]DetailsKey, 0, len(p.byKey))
	for k := range p.byKey {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, b := keys[i], keys[j]
		if a.Part != b.Part {
			return a.Part < b.Part
		}
		if a.Cmper1 != b.Cmper1 {
			return a.Cmper1 < b.Cmper1
		}
		if a.Cmper2 != b.Cmper2 {
			return a.Cmper2 < b.Cmper2
		}
		return a.Inci < b.Inci
	})
	out := make([]*T, 0, len(keys))
	for _, k := range keys {
		out = append(out, p.byKey[k])
	}
	return out
}

// EntryDetailsPool holds Details records attached directly to an entry
// number (TupletDef, SecondaryBeamBreak, LyricAssign, AlternateNotation,
// PercussionNoteInfo, BeamStubDirection).
type EntryDetailsPool[T any] struct {
	mu    sync.RWMutex
	byKey map[EntryDetailsKey]*T
}

// NewEntryDetailsPool constructs an empty EntryDetailsPool.
func NewEntryDetailsPool[T any]() *EntryDetailsPool[T] {
	return &EntryDetailsPool[T]{byKey: make(map[EntryDetailsKey]*T)}
}

// Add stores v under key.
func (p *EntryDetailsPool[T]) Add(key EntryDetailsKey, v *T) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.byKey[key] = v
}

// Get returns the record at (part, entnum, NoInci), with score
// fallback on Part.
func (p *EntryDetailsPool[T]) Get(part ids.PartID, entnum ids.EntryNumber) (*T, bool) {
	return p.GetInci(part, entnum, ids.NoInci)
}

// GetInci returns the record at the fully-qualified key.
func (p *EntryDetailsPool[T]) GetInci(part ids.PartID, entnum ids.EntryNumber, inci ids.Inci) (*T, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	key := EntryDetailsKey{Part: part, EntryNumber: entnum, Inci: inci}
	if v, ok := p.byKey[key]; ok {
		return v, true
	}
	if part != ids.SCOREPARTID {
		key.Part = ids.SCOREPARTID
		if v, ok := p.byKey[key]; ok {
			return v, true
		}
	}
	return nil, false
}

// GetArray returns every inci for (part, entnum), in ascending order.
func (p *EntryDetailsPool[T]) GetArray(part ids.PartID, entnum ids.EntryNumber) []*T {
	p.mu.RLock()
	defer p.mu.RUnlock()
	var keys []EntryDetailsKey
	for k := range p.byKey {
		if k.Part == part && k.EntryNumber == entnum {
			keys = append(keys, k)
		}
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Inci < keys[j].Inci })
	out := make([]*T, 0, len(keys))
	for _, k := range keys {
		out = append(out, p.byKey[k])
	}
	return out
}

// EntryPool holds the doubly-linked entry chain, keyed by EntryNumber
// alone: entries are never part-scoped (spec §6, "entries are shared
// across all parts and the score").
type EntryPool[T any] struct {
	mu    sync.RWMutex
	byNum map[ids.EntryNumber]*T
}

// NewEntryPool constructs an empty EntryPool.
func NewEntryPool[T any]() *EntryPool[T] {
	return &EntryPool[T]{byNum: make(map[ids.EntryNumber]*T)}
}

// Add stores v under num.
func (p *EntryPool[T]) Add(num ids.EntryNumber, v *T) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.byNum[num] = v
}

// Get returns the entry with the given number.
func (p *EntryPool[T]) Get(num ids.EntryNumber) (*T, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	v, ok := p.byNum[num]
	return v, ok
}

// Len reports how many entries are in the pool.
func (p *EntryPool[T]) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.byNum)
}

// TextsPool holds one Texts subtype, keyed by cmper (not part-scoped:
// spec §6 treats text payloads as shared content referenced by cmper
// from Others/Details records).
type TextsPool[T any] struct {
	mu    sync.RWMutex
	byCmper map[ids.Cmper]*T
}

// NewTextsPool constructs an empty TextsPool.
func NewTextsPool[T any]() *TextsPool[T] {
	return &TextsPool[T]{byCmper: make(map[ids.Cmper]*T)}
}

// Add stores v under cmper.
func (p *TextsPool[T]) Add(cmper ids.Cmper, v *T) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.byCmper[cmper] = v
}

// Get returns the text record at cmper.
func (p *TextsPool[T]) Get(cmper ids.Cmper) (*T, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	v, ok := p.byCmper[cmper]
	return v, ok
}

// All returns every record in ascending cmper order.
func (p *TextsPool[T]) All() []*T {
	p.mu.RLock()
	defer p.mu.RUnlock()
	keys := make([]ids.Cmper, 0, len(p.byCmper))
	for k := range p.byCmper {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	out := make([]*T, 0, len(keys))
	for _, k := range keys {
		out = append(out, p.byCmper[k])
	}
	return out
}
