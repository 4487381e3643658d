package layout

import (
	"fmt"
	"strconv"
	"strings"
)

// MaxColumns is the number of columns in the Bootstrap grid.
const MaxColumns = 12

const presetPrefix = "blb_col_"

// Presets returns one definition per column count, blb_col_1 through
// blb_col_12, whose regions are blb_region_col_1..N labelled "Col N".
func Presets() []Definition {
	out := make([]Definition, 0, MaxColumns)
	for columns := 1; columns <= MaxColumns; columns++ {
		out = append(out, columnDefinition(columns))
	}
	return out
}

// Preset returns the preset with the given id.
func Preset(id string) (Definition, error) {
	raw, ok := strings.CutPrefix(strings.TrimSpace(id), presetPrefix)
	if !ok {
		return Definition{}, fmt.Errorf("layout: unknown preset %q", id)
	}
	columns, err := strconv.Atoi(raw)
	if err != nil || columns < 1 || columns > MaxColumns {
		return Definition{}, fmt.Errorf("layout: unknown preset %q", id)
	}
	return columnDefinition(columns), nil
}

func columnDefinition(columns int) Definition {
	label := "1 Col"
	if columns > 1 {
		label = fmt.Sprintf("%d Cols", columns)
	}
	def := Definition{
		ID:      presetPrefix + strconv.Itoa(columns),
		Label:   label,
		Regions: make([]Region, 0, columns),
	}
	for i := 1; i <= columns; i++ {
		def.Regions = append(def.Regions, Region{
			Name:  fmt.Sprintf("blb_region_col_%d", i),
			Label: fmt.Sprintf("Col %d", i),
		})
	}
	return def
}
