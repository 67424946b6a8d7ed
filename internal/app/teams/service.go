package teams

import "github.com/preston-bernstein/dailypicks-service/internal/domain/teams"

const defaultSearchLimit = 10

// Service exposes read-only team operations backed by a Directory.
type Service struct {
	dir *teams.Directory
}

// NewService constructs a Service over dir.
func NewService(dir *teams.Directory) *Service {
	return &Service{dir: dir}
}

// Teams returns every known team sorted by id.
func (s *Service) Teams() []teams.Team {
	return s.dir.All()
}

// TeamByID returns a single team if present. Lookup is case-insensitive and alternate
// abbreviations resolve to their team.
func (s *Service) TeamByID(id string) (teams.Team, bool) {
	return s.dir.ByAbbreviation(id)
}

// Search ranks teams against query. A non-positive limit uses the default.
func (s *Service) Search(query string, limit int) []teams.Match {
	if limit <= 0 {
		limit = defaultSearchLimit
	}
	return s.dir.Search(query, limit)
}
