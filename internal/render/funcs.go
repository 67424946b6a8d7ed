package render

import (
	"html/template"
	"sort"
	"strings"

	"github.com/preston-bernstein/dailypicks-service/internal/domain/picks"
	"github.com/preston-bernstein/dailypicks-service/internal/domain/teams"
	"github.com/preston-bernstein/dailypicks-service/internal/format"
)

type matchupView struct {
	Away format.DisplayName
	Home format.DisplayName
}

type factorList struct {
	Title string
	Shown []string
	More  int
}

type statCard struct {
	Value    string
	Label    string
	Sublabel string
	Accent   string
}

type bracketRow struct {
	Name        string
	Accuracy    float64
	Predictions int
}

// bracketOrder ranks well-known bracket names from most to least confident.
var bracketOrder = map[string]int{
	format.LabelVeryHigh: 0,
	format.LabelHigh:     1,
	format.LabelModerate: 2,
	"Medium":             2,
	format.LabelLow:      3,
	format.LabelVeryLow:  4,
}

func templateFuncs(dir *teams.Directory) template.FuncMap {
	return template.FuncMap{
		"teamName": dir.Name,
		"teamNames": func(ids []string) string {
			names := make([]string, len(ids))
			for i, id := range ids {
				names[i] = dir.Name(id)
			}
			return strings.Join(names, ", ")
		},
		"matchup": func(away, home string, withLogo bool) matchupView {
			return matchupView{
				Away: format.TeamDisplayName(dir, away, withLogo),
				Home: format.TeamDisplayName(dir, home, withLogo),
			}
		},
		"pickColor": func(pick, home, away string) string {
			return format.PickColor(dir, pick, home, away)
		},
		"confidence":    format.ConfidenceLevel,
		"badge":         format.RecommendationBadge,
		"score":         format.FormatScore,
		"num":           format.Number,
		"pct":           format.Percent,
		"bar":           format.BarWidth,
		"accuracyColor": format.AccuracyColor,
		"resultColor":   format.ResultColor,
		"resultLabel":   format.ResultLabel,
		"pointsLabel":   format.PointsLabel,
		"winPct": func(p *float64) string {
			if p == nil {
				return ""
			}
			return format.WinProbabilityPercent(*p)
		},
		"deref": func(p *float64) float64 {
			if p == nil {
				return 0
			}
			return *p
		},
		"factors":  capFactors,
		"stat":     newStat,
		"brackets": sortedBrackets,
	}
}

// capFactors keeps the first limit items; limit <= 0 keeps everything.
func capFactors(title string, items []string, limit int) factorList {
	out := factorList{Title: title, Shown: items}
	if limit > 0 && len(items) > limit {
		out.Shown = items[:limit]
		out.More = len(items) - limit
	}
	return out
}

func newStat(value, label, sublabel, accent string) statCard {
	return statCard{Value: value, Label: label, Sublabel: sublabel, Accent: accent}
}

func sortedBrackets(in map[string]picks.BracketStats) []bracketRow {
	rows := make([]bracketRow, 0, len(in))
	for name, stats := range in {
		rows = append(rows, bracketRow{Name: name, Accuracy: stats.Accuracy, Predictions: stats.Predictions})
	}
	sort.Slice(rows, func(i, j int) bool {
		ri, iKnown := bracketOrder[rows[i].Name]
		rj, jKnown := bracketOrder[rows[j].Name]
		if iKnown != jKnown {
			return iKnown
		}
		if iKnown && ri != rj {
			return ri < rj
		}
		return rows[i].Name < rows[j].Name
	})
	return rows
}
