// Package tribunal maps the (J, TR) segments of a case number to a known court.
package tribunal

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/nexconsult/juris-api/internal/cnj"
)

var (
	// ErrNotFound is returned when no court is registered for a key
	ErrNotFound = errors.New("tribunal not found")
	// ErrDuplicateKey is returned by Register when the key is taken and overwrite is false
	ErrDuplicateKey = errors.New("tribunal key already registered")
	// ErrInvalidKey is returned by ParseKey for malformed keys
	ErrInvalidKey = errors.New("invalid tribunal key")
)

// Key is the (judicial branch, tribunal) pair of a case number, e.g. {8, 26} for TJSP
type Key struct {
	Branch   int `json:"segmento"`
	Tribunal int `json:"tribunal"`
}

// String renders the key as "J.TR", e.g. "8.26"
func (k Key) String() string {
	return fmt.Sprintf("%d.%02d", k.Branch, k.Tribunal)
}

// ParseKey reads a key in "J.TR" form
func ParseKey(s string) (Key, error) {
	parts := strings.Split(strings.TrimSpace(s), ".")
	if len(parts) != 2 {
		return Key{}, fmt.Errorf("%q: %w", s, ErrInvalidKey)
	}

	branch, err := strconv.Atoi(parts[0])
	if err != nil || branch < 0 || branch > 9 {
		return Key{}, fmt.Errorf("%q: %w", s, ErrInvalidKey)
	}
	tribunal, err := strconv.Atoi(parts[1])
	if err != nil || tribunal < 0 || tribunal > 99 {
		return Key{}, fmt.Errorf("%q: %w", s, ErrInvalidKey)
	}

	return Key{Branch: branch, Tribunal: tribunal}, nil
}

// KeyOf extracts the key from a parsed case number
func KeyOf(c cnj.CaseNumber) Key {
	return Key{Branch: c.BranchCode(), Tribunal: c.TribunalCode()}
}

// Entry is a registered court
type Entry struct {
	Key        Key    `json:"chave"`
	Identifier string `json:"sigla"`
	Endpoint   string `json:"endpoint,omitempty"`
}

// Router is a static lookup table. Register every entry during startup;
// once the router is shared, Lookup and Resolve are safe for concurrent use
// because nothing writes to the table anymore.
type Router struct {
	entries map[Key]Entry
}

// New returns an empty router
func New() *Router {
	return &Router{entries: make(map[Key]Entry)}
}

// NewDefault returns a router populated with the built-in court table
func NewDefault() *Router {
	r := New()
	for _, entry := range DefaultEntries() {
		// The built-in table has unique keys
		_ = r.Register(entry, false)
	}
	return r
}

// Register adds an entry. An existing key is only replaced when overwrite is true.
func (r *Router) Register(entry Entry, overwrite bool) error {
	if entry.Identifier == "" {
		return fmt.Errorf("tribunal %s: empty identifier", entry.Key)
	}
	if _, exists := r.entries[entry.Key]; exists && !overwrite {
		return fmt.Errorf("%s: %w", entry.Key, ErrDuplicateKey)
	}

	r.entries[entry.Key] = entry
	return nil
}

// Lookup returns the entry for an exact key
func (r *Router) Lookup(key Key) (Entry, error) {
	entry, ok := r.entries[key]
	if !ok {
		return Entry{}, fmt.Errorf("%s: %w", key, ErrNotFound)
	}
	return entry, nil
}

// Resolve looks up the court of a parsed case number
func (r *Router) Resolve(c cnj.CaseNumber) (Entry, error) {
	return r.Lookup(KeyOf(c))
}

// Len returns the number of registered courts
func (r *Router) Len() int {
	return len(r.entries)
}

// Entries returns a copy of the table ordered by branch then tribunal
func (r *Router) Entries() []Entry {
	entries := make([]Entry, 0, len(r.entries))
	for _, entry := range r.entries {
		entries = append(entries, entry)
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Key.Branch != entries[j].Key.Branch {
			return entries[i].Key.Branch < entries[j].Key.Branch
		}
		return entries[i].Key.Tribunal < entries[j].Key.Tribunal
	})
	return entries
}

// LoadFile registers the entries of a JSON file holding an array of Entry.
// It stops at the first entry that cannot be registered.
func (r *Router) LoadFile(path string, overwrite bool) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to read tribunal table: %w", err)
	}

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return 0, fmt.Errorf("failed to parse tribunal table: %w", err)
	}

	for i, entry := range entries {
		if err := r.Register(entry, overwrite); err != nil {
			return i, err
		}
	}
	return len(entries), nil
}
