// Package setting converts grid view setting requests into validated
// parameters and builds the settings read model returned to the UI.
package setting

import (
	"fmt"
	"strings"

	"github.com/cristianoliveira/gridsettings/internal/revision"
	"github.com/samber/lo"
)

// GridLayout is the presentation mode of a grid view as seen by the UI.
// The zero value is GridLayoutTable.
type GridLayout int32

const (
	GridLayoutTable GridLayout = 0
	GridLayoutBoard GridLayout = 1
)

// String returns the wire name of the layout.
func (l GridLayout) String() string {
	switch l {
	case GridLayoutTable:
		return "table"
	case GridLayoutBoard:
		return "board"
	default:
		return fmt.Sprintf("layout(%d)", int32(l))
	}
}

// IsValid reports whether l is a declared layout.
func (l GridLayout) IsValid() bool {
	switch l {
	case GridLayoutTable, GridLayoutBoard:
		return true
	default:
		return false
	}
}

// ParseGridLayout converts a wire name to a GridLayout.
func ParseGridLayout(raw string) (GridLayout, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "table":
		return GridLayoutTable, nil
	case "board":
		return GridLayoutBoard, nil
	default:
		return GridLayoutTable, fmt.Errorf("invalid layout: %s", raw)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (l GridLayout) MarshalText() ([]byte, error) {
	if !l.IsValid() {
		return nil, fmt.Errorf("invalid layout: %d", int32(l))
	}
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *GridLayout) UnmarshalText(text []byte) error {
	layout, err := ParseGridLayout(string(text))
	if err != nil {
		return err
	}
	*l = layout
	return nil
}

// ToRevision maps the layout to its stored form.
func (l GridLayout) ToRevision() revision.Layout {
	switch l {
	case GridLayoutTable:
		return revision.LayoutTable
	case GridLayoutBoard:
		return revision.LayoutBoard
	default:
		panic(fmt.Sprintf("unmapped layout: %d", int32(l)))
	}
}

// GridLayoutFromRevision maps a stored layout back to its presentation form.
func GridLayoutFromRevision(rev revision.Layout) GridLayout {
	switch rev {
	case revision.LayoutTable:
		return GridLayoutTable
	case revision.LayoutBoard:
		return GridLayoutBoard
	default:
		panic(fmt.Sprintf("unmapped layout revision: %d", uint8(rev)))
	}
}

// GridLayoutEntity advertises one available layout.
type GridLayoutEntity struct {
	Ty GridLayout `json:"ty" toml:"ty"`
}

// AllGridLayouts returns every layout in declaration order.
// The slice is newly allocated on each call.
func AllGridLayouts() []GridLayoutEntity {
	return lo.Map([]GridLayout{GridLayoutTable, GridLayoutBoard}, func(l GridLayout, _ int) GridLayoutEntity {
		return GridLayoutEntity{Ty: l}
	})
}
