package render

import "github.com/paulmach/orb/geojson"

// FeatureCollection выгружает ячейки модели как полигоны GeoJSON
func FeatureCollection(m *Model) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, cell := range m.Cells {
		f := geojson.NewFeature(cell.Bounds.ToPolygon())
		f.Properties["name"] = cell.Name
		f.Properties["row"] = cell.Row
		f.Properties["col"] = cell.Col
		f.Properties["classification"] = string(cell.Classification)
		f.Properties["fill_color"] = cell.Style.FillColor
		f.Properties["fill_opacity"] = cell.Style.FillOpacity
		f.Properties["stroke_color"] = cell.Style.StrokeColor
		f.Properties["stroke_weight"] = cell.Style.StrokeWeight
		if cell.Style.DashArray != "" {
			f.Properties["dash_array"] = cell.Style.DashArray
		}
		if cell.Zone != nil {
			f.Properties["zone_id"] = cell.Zone.ID
		}
		fc.Append(f)
	}
	return fc
}
