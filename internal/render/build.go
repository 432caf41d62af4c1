package render

import (
	"github.com/shenikar/site_grid_system/internal/grid"
	"github.com/shenikar/site_grid_system/internal/scale"
	"github.com/shenikar/site_grid_system/internal/status"
	"github.com/shenikar/site_grid_system/internal/zone"
)

// Build - чистая функция входов. Ошибки grid.ErrInvalidConfig и grid.ErrMissingAnchor
// возвращаются как есть, частичная модель не строится.
func Build(in Input) (*Model, error) {
	layout, err := grid.NewLayout(in.Anchor, in.Grid)
	if err != nil {
		return nil, err
	}

	idx := zone.NewIndex(in.Zones, in.Level)
	statuses := status.Aggregate(status.Input{
		Zones:       idx.Zones(),
		MyZoneNames: in.MyZoneNames,
		Plans:       in.Plans,
		Dangers:     in.Dangers,
	})
	style := scale.For(in.Zoom)

	m := &Model{
		Level:          in.Level,
		Rows:           layout.Rows,
		Cols:           layout.Cols,
		Scale:          style,
		Cells:          make([]Cell, 0, layout.Rows*layout.Cols),
		Statuses:       statuses,
		DuplicateNames: idx.Duplicates(),
	}

	placed := make(map[string]bool)
	for r := 0; r < layout.Rows; r++ {
		for c := 0; c < layout.Cols; c++ {
			name := zone.Name(in.Level, r, c)
			cell := Cell{
				Row:            r,
				Col:            c,
				Name:           name,
				Center:         layout.Center(r, c),
				Bounds:         layout.Bound(r, c),
				Classification: status.Empty,
			}
			if z, ok := idx.Lookup(name); ok {
				zs := statuses[name]
				ref := refOf(z)
				cell.Zone = &ref
				cell.Classification = zs.Classification
				cell.Roster = status.Roster(zs.Allocations, style.Compact)
				placed[name] = true
			}
			cell.Style = status.StyleFor(cell.Classification)
			if style.LabelsVisible {
				cell.Label = &Label{
					Text:         name,
					FontSize:     style.FontSize,
					Padding:      style.Padding,
					BorderRadius: style.BorderRadius,
					IconSize:     style.IconSize,
				}
			}
			m.Cells = append(m.Cells, cell)
		}
	}

	for _, z := range idx.Zones() {
		if placed[z.Name] {
			continue
		}
		zs := statuses[z.Name]
		m.ListOnly = append(m.ListOnly, ListEntry{
			Zone:   refOf(z),
			Status: zs,
			Roster: status.Roster(zs.Allocations, style.Compact),
		})
	}

	return m, nil
}
