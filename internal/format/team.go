package format

import "github.com/preston-bernstein/dailypicks-service/internal/domain/teams"

// DisplayName is a team label optionally paired with its logo.
type DisplayName struct {
	ID    string
	Name  string
	Color string
	Logo  string
}

// HasLogo reports whether a logo should be rendered next to the name.
func (d DisplayName) HasLogo() bool {
	return d.Logo != ""
}

// TeamDisplayName resolves id through dir. The logo is attached only when requested and on record.
func TeamDisplayName(dir *teams.Directory, id string, withLogo bool) DisplayName {
	team := dir.Lookup(id)
	out := DisplayName{
		ID:    id,
		Name:  team.Name,
		Color: team.Colors.Primary,
	}
	if withLogo && team.HasLogo() {
		out.Logo = team.Logo
	}
	return out
}

// PickColor is the colour of the predicted side: the home primary when the pick is home,
// otherwise the away primary.
func PickColor(dir *teams.Directory, pick, home, away string) string {
	if pick == home {
		return dir.Colors(home).Primary
	}
	return dir.Colors(away).Primary
}
