// Package devtools renders hazard-field overlays and end-of-run
// reports for debugging and headless watching. Nothing here feeds
// back into the simulation.
package devtools

import (
	"fmt"
	"strings"

	"github.com/gookit/color"

	"derelict/pkg/engine/world"
	"derelict/pkg/game/field"
	"derelict/pkg/game/hazard"
	"derelict/pkg/game/state"
)

// Layer selects which hazard scalar an overlay shows.
type Layer uint8

const (
	LayerHeat Layer = iota
	LayerSmoke
	LayerPressure
	LayerRadiation
	LayerStress
)

var layerNames = map[Layer]string{
	LayerHeat:      "heat",
	LayerSmoke:     "smoke",
	LayerPressure:  "pressure",
	LayerRadiation: "radiation",
	LayerStress:    "stress",
}

// String returns the flag-friendly name of the layer.
func (l Layer) String() string {
	if name, ok := layerNames[l]; ok {
		return name
	}
	return "unknown"
}

// AllLayers returns every layer in display order.
func AllLayers() []Layer {
	return []Layer{LayerHeat, LayerSmoke, LayerPressure, LayerRadiation, LayerStress}
}

// ParseLayer maps a flag value to a layer.
func ParseLayer(s string) (Layer, error) {
	for l, name := range layerNames {
		if s == name {
			return l, nil
		}
	}
	return LayerHeat, fmt.Errorf("unknown layer %q (want heat, smoke, pressure, radiation or stress)", s)
}

// level extracts the layer's scalar from a cell.
func (l Layer) level(c field.Cell) int {
	switch l {
	case LayerSmoke:
		return c.Smoke
	case LayerPressure:
		return c.Pressure
	case LayerRadiation:
		return c.Radiation
	case LayerStress:
		return c.Stress
	default:
		return c.Heat
	}
}

// danger grades a reading 0..3 for colouring. Pressure is inverted:
// a low reading is the dangerous one.
func (l Layer) danger(v int) int {
	if l == LayerPressure {
		v = 100 - v
	}
	switch {
	case v >= 80:
		return 3
	case v >= 50:
		return 2
	case v >= 25:
		return 1
	default:
		return 0
	}
}

// OverlayLegend is the glyph key printed above overlays and in
// report files.
const OverlayLegend = "# wall  D door  + locked  A airlock  . clear  1-9 level/10  @ player  R relay  B breach  X radiation source  S shield  P panel  % rubble"

// cellGlyph returns the single-character symbol for p on the given
// layer. Entities outrank the hazard reading; the player outranks
// everything.
func cellGlyph(g *state.Game, l Layer, p world.Point, c field.Cell) rune {
	switch {
	case p == g.Player.Pos:
		return '@'
	case g.Entities.RelayAt(p) != nil:
		return 'R'
	case g.Entities.BreachAt(p) != nil:
		return 'B'
	case g.Entities.RadiationSourceAt(p) != nil:
		return 'X'
	case g.Entities.ShieldAt(p) != nil:
		return 'S'
	case g.Entities.PanelAt(p) != nil:
		return 'P'
	case g.Entities.RubbleAt(p) != nil:
		return '%'
	}
	switch c.Terrain {
	case field.Wall:
		return '#'
	case field.Door:
		return 'D'
	case field.LockedDoor:
		return '+'
	case field.Airlock:
		return 'A'
	}
	v := l.level(c)
	if v <= 0 {
		return '.'
	}
	d := v / 10
	if d < 1 {
		d = 1
	}
	if d > 9 {
		d = 9
	}
	return rune('0' + d)
}

var dangerStyles = map[int]color.Color{
	1: color.Yellow,
	2: color.LightRed,
	3: color.Magenta,
}

// RenderOverlay returns the layer as one string, one row per line.
// With colored set, readings are tinted by how dangerous they are.
func RenderOverlay(g *state.Game, l Layer, colored bool) string {
	var sb strings.Builder
	for y := 0; y < g.Field.Height(); y++ {
		for x := 0; x < g.Field.Width(); x++ {
			p := world.Point{X: x, Y: y}
			c := g.Field.At(p)
			glyph := string(cellGlyph(g, l, p, c))
			if colored && c.Walkable {
				if style, ok := dangerStyles[l.danger(l.level(c))]; ok {
					glyph = style.Sprint(glyph)
				}
			}
			sb.WriteString(glyph)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// ClipOverlay trims every overlay row to fit a window of the given
// width. Rows are clipped by byte, so pass an uncoloured render.
func ClipOverlay(overlay string, width int) string {
	if width < 1 {
		width = 1
	}
	var sb strings.Builder
	for _, row := range strings.Split(strings.TrimRight(overlay, "\n"), "\n") {
		if len(row) > width {
			row = row[:width]
		}
		sb.WriteString(row)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// SeverityStyle returns the colour used when printing an outcome of
// the given severity.
func SeverityStyle(s hazard.Severity) color.Color {
	switch s {
	case hazard.SeverityCritical:
		return color.LightRed
	case hazard.SeverityWarning:
		return color.Red
	case hazard.SeverityCaution:
		return color.Yellow
	default:
		return color.Green
	}
}
