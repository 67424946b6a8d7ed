package picks

import "fmt"

// View names one of the four dashboard sections.
type View string

const (
	ViewYesterday   View = "yesterday"
	ViewToday       View = "today"
	ViewTomorrow    View = "tomorrow"
	ViewPerformance View = "performance"
)

// AllViews returns the views in page order.
func AllViews() []View {
	return []View{ViewYesterday, ViewToday, ViewTomorrow, ViewPerformance}
}

// ParseView validates a view name.
func ParseView(raw string) (View, error) {
	for _, v := range AllViews() {
		if string(v) == raw {
			return v, nil
		}
	}
	return "", fmt.Errorf("unknown view %q", raw)
}

// Valid reports whether v is one of the known views.
func (v View) Valid() bool {
	_, err := ParseView(string(v))
	return err == nil
}

// Title is the section heading shown for the view.
func (v View) Title() string {
	switch v {
	case ViewYesterday:
		return "Yesterday's Results"
	case ViewToday:
		return "Today's Games"
	case ViewTomorrow:
		return "Tomorrow's Preview"
	case ViewPerformance:
		return "Model Performance"
	default:
		return string(v)
	}
}
