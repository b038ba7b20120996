// Package levelgen places the hazard-source fixtures on a freshly
// carved deck. Every choice is ranked by the pure placement hash,
// so one seed always dresses the station the same way.
package levelgen

import (
	"sort"

	"github.com/zyedidia/generic/mapset"

	"derelict/pkg/engine/world"
	"derelict/pkg/game/field"
	"derelict/pkg/game/hazard"
)

// roomFloor returns the walkable interior cells of bounds that are
// not in the avoid set, in row-major order.
func roomFloor(f *field.Field, bounds world.Rect, avoid *mapset.Set[world.Point]) []world.Point {
	var cells []world.Point
	bounds.Each(func(p world.Point) {
		if f.At(p).Walkable && !avoid.Has(p) {
			cells = append(cells, p)
		}
	})
	return cells
}

// pickCell ranks the candidates by the placement hash and returns
// the winner. The ordinal keeps successive picks from one seed from
// landing on the same ranking.
func pickCell(seed uint64, ordinal int, cells []world.Point) (world.Point, bool) {
	if len(cells) == 0 {
		return world.Point{}, false
	}
	sort.SliceStable(cells, func(i, j int) bool {
		return hazard.MixPoint(seed, ordinal, hazard.SaltPlacement, cells[i]) <
			hazard.MixPoint(seed, ordinal, hazard.SaltPlacement, cells[j])
	})
	return cells[0], true
}
