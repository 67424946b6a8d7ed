package teams

import (
	"embed"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed data/mlb.toml
var embedded embed.FS

const defaultDirectoryFile = "data/mlb.toml"

// Directory is a read-only lookup table of team display records keyed by id.
// It is safe for concurrent use because nothing mutates it after construction.
type Directory struct {
	teams map[string]Team
	ids   []string
}

type directoryFile struct {
	Teams map[string]Team `toml:"teams"`
}

// NewDirectory builds a directory from records. Later records with a duplicate id are rejected.
func NewDirectory(records []Team) (*Directory, error) {
	d := &Directory{teams: make(map[string]Team, len(records))}
	for _, rec := range records {
		if rec.ID == "" {
			return nil, fmt.Errorf("team record missing id (name %q)", rec.Name)
		}
		if _, dup := d.teams[rec.ID]; dup {
			return nil, fmt.Errorf("duplicate team id %q", rec.ID)
		}
		d.teams[rec.ID] = normalize(rec)
		d.ids = append(d.ids, rec.ID)
	}
	sort.Strings(d.ids)
	return d, nil
}

// Load decodes a TOML team directory of the form [teams.<ID>].
func Load(r io.Reader) (*Directory, error) {
	var file directoryFile
	if err := toml.NewDecoder(r).Decode(&file); err != nil {
		return nil, fmt.Errorf("decode team directory: %w", err)
	}
	records := make([]Team, 0, len(file.Teams))
	for key, rec := range file.Teams {
		if rec.ID == "" {
			rec.ID = key
		}
		if rec.ID != key {
			return nil, fmt.Errorf("team %q declares mismatched id %q", key, rec.ID)
		}
		records = append(records, rec)
	}
	return NewDirectory(records)
}

// LoadFile reads a TOML team directory from disk.
func LoadFile(path string) (*Directory, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}

// Default returns the embedded MLB directory.
func Default() (*Directory, error) {
	f, err := embedded.Open(defaultDirectoryFile)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}

// MustDefault is Default for package-level wiring and tests; the embedded file is known-good.
func MustDefault() *Directory {
	d, err := Default()
	if err != nil {
		panic(err)
	}
	return d
}

// Lookup returns the record for id or the fallback record. It never fails.
func (d *Directory) Lookup(id string) Team {
	if d != nil {
		if t, ok := d.teams[id]; ok {
			return t
		}
	}
	return Fallback(id)
}

// Has reports whether id is a known team.
func (d *Directory) Has(id string) bool {
	if d == nil {
		return false
	}
	_, ok := d.teams[id]
	return ok
}

// Name returns the display name for id.
func (d *Directory) Name(id string) string {
	return d.Lookup(id).Name
}

// Colors returns the palette for id.
func (d *Directory) Colors(id string) Colors {
	return d.Lookup(id).Colors
}

// Logo returns the logo URL for id when one is on record.
func (d *Directory) Logo(id string) (string, bool) {
	t := d.Lookup(id)
	return t.Logo, t.HasLogo()
}

// ByAbbreviation resolves an alternate short code to a team. An exact id match wins.
func (d *Directory) ByAbbreviation(code string) (Team, bool) {
	if d == nil {
		return Team{}, false
	}
	code = strings.ToUpper(strings.TrimSpace(code))
	if t, ok := d.teams[code]; ok {
		return t, true
	}
	for _, id := range d.ids {
		for _, abbr := range d.teams[id].Abbreviations {
			if strings.EqualFold(abbr, code) {
				return d.teams[id], true
			}
		}
	}
	return Team{}, false
}

// All returns every record sorted by id.
func (d *Directory) All() []Team {
	if d == nil {
		return nil
	}
	out := make([]Team, 0, len(d.ids))
	for _, id := range d.ids {
		out = append(out, d.teams[id])
	}
	return out
}

// Len returns the number of known teams.
func (d *Directory) Len() int {
	if d == nil {
		return 0
	}
	return len(d.ids)
}

func normalize(t Team) Team {
	if t.Name == "" {
		t.Name = t.ID
	}
	if t.Colors.Primary == "" {
		t.Colors.Primary = FallbackPrimary
	}
	if t.Colors.Secondary == "" {
		t.Colors.Secondary = FallbackSecondary
	}
	abbrs := make([]string, len(t.Abbreviations))
	copy(abbrs, t.Abbreviations)
	t.Abbreviations = abbrs
	return t
}
