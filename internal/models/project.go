package models

import "time"

// AnchorPoint - опорная GPS-точка проекта, вокруг которой строится сетка
type AnchorPoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// GridConfig описывает сетку rows x cols из квадратных ячеек со стороной SpacingMeters.
// AngleDegrees хранится, но при построении сетки не применяется.
type GridConfig struct {
	Rows          int     `json:"rows"`
	Cols          int     `json:"cols"`
	SpacingMeters float64 `json:"spacing_meters"`
	AngleDegrees  float64 `json:"angle_degrees"`
}

// LatLng - координата центра ячейки
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Project - проект стройплощадки в том виде, в котором его отдает бэкенд
type Project struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	LocationLat *float64  `json:"location_lat"`
	LocationLng *float64  `json:"location_lng"`
	GridRows    int       `json:"grid_rows"`
	GridCols    int       `json:"grid_cols"`
	GridSpacing float64   `json:"grid_spacing"`
	GridAngle   float64   `json:"grid_angle"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Anchor возвращает опорную точку или nil, если у проекта нет координат
func (p *Project) Anchor() *AnchorPoint {
	if p.LocationLat == nil || p.LocationLng == nil {
		return nil
	}
	return &AnchorPoint{Lat: *p.LocationLat, Lng: *p.LocationLng}
}

func (p *Project) GridConfig() GridConfig {
	return GridConfig{
		Rows:          p.GridRows,
		Cols:          p.GridCols,
		SpacingMeters: p.GridSpacing,
		AngleDegrees:  p.GridAngle,
	}
}
