package partid

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/tidwall/pretty"
)

// Dictionary is the vocabulary used by the dictionary segmenter and as an
// override source for the statistical analyzer. It layers a user-editable
// overlay on top of the built-in vocabulary; overlay entries win.
type Dictionary struct {
	mu      sync.RWMutex
	builtin map[string]Entry
	overlay map[string]Entry
	merged  map[string]Entry
	store   Store
	version uint64
}

// ImportReport summarizes a successful bulk import.
type ImportReport struct {
	Added       int
	Overwritten int // overlay keys replaced by the import
}

// Stats counts dictionary entries.
type Stats struct {
	Builtin int
	Custom  int
	Total   int
}

// ListedEntry is an entry of the merged view annotated with its origin.
type ListedEntry struct {
	Entry
	IsCustom bool
}

// NewDictionary builds a dictionary over the built-in vocabulary and loads
// the overlay from store. A nil store keeps the overlay in memory only.
// A corrupt persisted overlay is logged and replaced by an empty one.
func NewDictionary(store Store) *Dictionary {
	if store == nil {
		store = NewMemoryStore()
	}
	d := &Dictionary{
		builtin: BuiltinEntries(),
		overlay: map[string]Entry{},
		store:   store,
	}
	overlay, err := store.Load()
	if err != nil {
		Logger.Error().Err(err).Str("component", "dictionary").Msg("failed to load user dictionary, starting empty")
	} else if err := validateEntries(overlay); err != nil {
		Logger.Error().Err(err).Str("component", "dictionary").Msg("persisted user dictionary is invalid, starting empty")
	} else {
		for surface, e := range overlay {
			e.Surface = surface
			d.overlay[surface] = e
		}
	}
	d.merged = merge(d.builtin, d.overlay)
	Logger.Debug().
		Str("component", "dictionary").
		Int("builtin", len(d.builtin)).
		Int("custom", len(d.overlay)).
		Msg("dictionary ready")
	return d
}

// merge lays overlay over builtin. Neither input is modified.
func merge(builtin, overlay map[string]Entry) map[string]Entry {
	out := make(map[string]Entry, len(builtin)+len(overlay))
	for k, v := range builtin {
		out[k] = v
	}
	for k, v := range overlay {
		out[k] = v
	}
	return out
}

// Lookup returns the merged entry for surface.
func (d *Dictionary) Lookup(surface string) (Entry, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	e, ok := d.merged[surface]
	return e, ok
}

// lookupOverlay returns a user-added entry only.
func (d *Dictionary) lookupOverlay(surface string) (Entry, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	e, ok := d.overlay[surface]
	return e, ok
}

// Version increases on every successful mutation.
func (d *Dictionary) Version() uint64 {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.version
}

// Add inserts or replaces a user entry.
func (d *Dictionary) Add(e Entry) error {
	e = normalizeEntry(e)
	if err := validateEntry(e.Surface, e); err != nil {
		return err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	prev := copyEntries(d.overlay)
	d.overlay[e.Surface] = e
	return d.commit("add", prev)
}

// Remove deletes a user entry. Built-in entries cannot be removed.
func (d *Dictionary) Remove(surface string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.overlay[surface]; !ok {
		return fmt.Errorf("remove %q: %w", surface, ErrNotInOverlay)
	}
	prev := copyEntries(d.overlay)
	delete(d.overlay, surface)
	return d.commit("remove", prev)
}

// Import merges entries into the overlay. Every entry is validated first;
// a single invalid entry rejects the whole import and leaves the dictionary
// untouched. Surfaces are trimmed like those given to Add.
func (d *Dictionary) Import(entries map[string]Entry) (ImportReport, error) {
	var report ImportReport
	entries = normalizeEntries(entries)
	if err := validateEntries(entries); err != nil {
		return report, err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	prev := copyEntries(d.overlay)
	for surface, e := range entries {
		if _, exists := d.overlay[surface]; exists {
			report.Overwritten++
		} else {
			report.Added++
		}
		d.overlay[surface] = e
	}
	if err := d.commit("import", prev); err != nil {
		return ImportReport{}, err
	}
	if report.Overwritten > 0 {
		Logger.Info().Str("component", "dictionary").Int("overwritten", report.Overwritten).Msg("import replaced existing entries")
	}
	return report, nil
}

// rawEntry mirrors the persisted JSON shape with the category kept as text
// so that a missing "type" can be told apart from an unknown one.
type rawEntry struct {
	Reading string `json:"reading"`
	Romaji  string `json:"romaji"`
	Type    string `json:"type"`
	Short   string `json:"short,omitempty"`
}

// ImportJSON parses a flat surface → {reading, romaji, type, short?} object
// and imports it with the same all-or-nothing semantics as Import.
func (d *Dictionary) ImportJSON(data []byte) (ImportReport, error) {
	entries, err := decodeEntries(data)
	if err != nil {
		return ImportReport{}, err
	}
	return d.Import(entries)
}

func decodeEntries(data []byte) (map[string]Entry, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &FormatError{Reason: err.Error()}
	}
	if raw == nil {
		return nil, &FormatError{Reason: "expected a JSON object"}
	}
	entries := make(map[string]Entry, len(raw))
	for key, msg := range raw {
		surface := strings.TrimSpace(key)
		var r rawEntry
		if err := json.Unmarshal(msg, &r); err != nil {
			return nil, &FormatError{Surface: surface, Reason: "entry is not an object"}
		}
		if strings.TrimSpace(r.Type) == "" {
			return nil, &FormatError{Surface: surface, Field: "type", Reason: "is missing"}
		}
		cat, err := ParseCategory(r.Type)
		if err != nil {
			return nil, &FormatError{Surface: surface, Field: "type", Reason: err.Error()}
		}
		entries[surface] = Entry{Surface: surface, Reading: r.Reading, Romaji: r.Romaji, Category: cat, Short: r.Short}
	}
	return entries, nil
}

// Reset drops every user entry and erases the persisted overlay.
func (d *Dictionary) Reset() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.store.Clear(); err != nil {
		return fmt.Errorf("erase user dictionary: %w", err)
	}
	d.overlay = map[string]Entry{}
	d.merged = merge(d.builtin, d.overlay)
	d.version++
	Logger.Info().Str("component", "dictionary").Msg("user dictionary reset to built-in vocabulary")
	return nil
}

// Export returns the overlay as indented JSON accepted by ImportJSON.
func (d *Dictionary) Export() ([]byte, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return encodeEntries(d.overlay)
}

func encodeEntries(entries map[string]Entry) ([]byte, error) {
	b, err := json.Marshal(entries)
	if err != nil {
		return nil, fmt.Errorf("encode dictionary: %w", err)
	}
	return pretty.Pretty(b), nil
}

// Stats returns entry counts of each layer.
func (d *Dictionary) Stats() Stats {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return Stats{Builtin: len(d.builtin), Custom: len(d.overlay), Total: len(d.merged)}
}

// Entries lists the merged view sorted by surface. An empty query matches
// everything; otherwise the query is matched against surface, reading and
// romaji. A nil category matches every category.
func (d *Dictionary) Entries(query string, category *Category) []ListedEntry {
	d.mu.RLock()
	defer d.mu.RUnlock()
	query = strings.ToLower(strings.TrimSpace(query))
	var out []ListedEntry
	for surface, e := range d.merged {
		if category != nil && e.Category != *category {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(surface), query) &&
			!strings.Contains(e.Reading, query) &&
			!strings.Contains(strings.ToLower(e.Romaji), query) {
			continue
		}
		e.Surface = surface
		_, custom := d.overlay[surface]
		out = append(out, ListedEntry{Entry: e, IsCustom: custom})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Surface < out[j].Surface })
	return out
}

// commit persists the overlay and then re-derives the merged view. When the
// store fails the overlay is rolled back to prev. Callers hold the write lock.
func (d *Dictionary) commit(op string, prev map[string]Entry) error {
	if err := d.store.Save(d.overlay); err != nil {
		d.overlay = prev
		Logger.Error().Err(err).Str("component", "dictionary").Str("op", op).Msg("failed to persist user dictionary")
		return fmt.Errorf("persist user dictionary: %w", err)
	}
	d.merged = merge(d.builtin, d.overlay)
	d.version++
	Logger.Debug().Str("component", "dictionary").Str("op", op).Int("custom", len(d.overlay)).Msg("user dictionary saved")
	return nil
}

func normalizeEntry(e Entry) Entry {
	e.Surface = strings.TrimSpace(e.Surface)
	e.Reading = strings.TrimSpace(e.Reading)
	e.Romaji = strings.TrimSpace(e.Romaji)
	e.Short = strings.TrimSpace(e.Short)
	return e
}

// normalizeEntries trims every entry and re-keys it by its trimmed surface.
func normalizeEntries(entries map[string]Entry) map[string]Entry {
	out := make(map[string]Entry, len(entries))
	for surface, e := range entries {
		e.Surface = surface
		e = normalizeEntry(e)
		out[e.Surface] = e
	}
	return out
}

func validateEntry(surface string, e Entry) error {
	if strings.TrimSpace(surface) == "" {
		return &FormatError{Reason: ErrEmptySurface.Error()}
	}
	if strings.TrimSpace(e.Reading) == "" {
		return &FormatError{Surface: surface, Field: "reading", Reason: "is missing"}
	}
	if strings.TrimSpace(e.Romaji) == "" {
		return &FormatError{Surface: surface, Field: "romaji", Reason: "is missing"}
	}
	return nil
}

func validateEntries(entries map[string]Entry) error {
	surfaces := make([]string, 0, len(entries))
	for surface := range entries {
		surfaces = append(surfaces, surface)
	}
	sort.Strings(surfaces)
	for _, surface := range surfaces {
		if err := validateEntry(surface, entries[surface]); err != nil {
			return err
		}
	}
	return nil
}
