package picks

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Decode parses the raw document for view into the matching slot of b.
func (b *Bundle) Decode(view View, raw []byte) error {
	var target any
	switch view {
	case ViewYesterday:
		target = &b.Yesterday
	case ViewToday:
		target = &b.Today
	case ViewTomorrow:
		target = &b.Tomorrow
	case ViewPerformance:
		target = &b.Performance
	default:
		return fmt.Errorf("unknown view %q", view)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return fmt.Errorf("%s: empty document", view)
	}
	if err := json.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("%s: decode document: %w", view, err)
	}
	return nil
}
