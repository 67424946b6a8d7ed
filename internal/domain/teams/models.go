package teams

// Fallback colours for team ids the directory does not know.
const (
	FallbackPrimary   = "#64748b"
	FallbackSecondary = "#94a3b8"
)

// Colors holds a team's display palette.
type Colors struct {
	Primary   string `json:"primary" toml:"primary"`
	Secondary string `json:"secondary" toml:"secondary"`
}

// Team is the display record for one club. Records are immutable once the directory is loaded.
type Team struct {
	ID            string   `json:"id" toml:"id"`
	Name          string   `json:"name" toml:"name"`
	City          string   `json:"city" toml:"city"`
	Division      string   `json:"division" toml:"division"`
	Colors        Colors   `json:"colors" toml:"colors"`
	Logo          string   `json:"logo,omitempty" toml:"logo"`
	Abbreviations []string `json:"abbreviations" toml:"abbreviations"`
}

// HasLogo reports whether the record carries a logo URL.
func (t Team) HasLogo() bool {
	return t.Logo != ""
}

// FallbackColors returns the neutral palette used for unknown teams.
func FallbackColors() Colors {
	return Colors{Primary: FallbackPrimary, Secondary: FallbackSecondary}
}

// Fallback builds the record returned for an unresolved id: the id doubles as the name.
func Fallback(id string) Team {
	return Team{
		ID:     id,
		Name:   id,
		Colors: FallbackColors(),
	}
}
