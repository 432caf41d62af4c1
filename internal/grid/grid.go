// Package grid переводит опорную точку и конфигурацию сетки в координаты центров ячеек.
package grid

import (
	"errors"
	"fmt"
	"math"

	"github.com/paulmach/orb"
	"github.com/shenikar/site_grid_system/internal/models"
)

// MetersPerDegree - длина одного градуса широты в метрах
const MetersPerDegree = 111320.0

var (
	ErrInvalidConfig = errors.New("invalid grid config")
	ErrMissingAnchor = errors.New("project has no anchor point")
)

// Matrix - центры ячеек, Matrix[row][col]
type Matrix [][]models.LatLng

// Layout - вычисленные параметры сетки. Ячейка (0, 0) находится в северо-западном углу.
type Layout struct {
	Rows    int
	Cols    int
	LatStep float64
	LngStep float64
	TopLat  float64
	LeftLng float64
}

// Steps переводит шаг сетки из метров в градусы широты и долготы на широте anchorLat
func Steps(anchorLat, spacingMeters float64) (latStep, lngStep float64) {
	latStep = spacingMeters / MetersPerDegree
	lngStep = spacingMeters / (MetersPerDegree * math.Cos(anchorLat*math.Pi/180))
	return latStep, lngStep
}

// NewLayout проверяет конфигурацию и вычисляет параметры сетки
func NewLayout(anchor *models.AnchorPoint, cfg models.GridConfig) (Layout, error) {
	if anchor == nil {
		return Layout{}, ErrMissingAnchor
	}
	if cfg.Rows <= 0 || cfg.Cols <= 0 {
		return Layout{}, fmt.Errorf("%w: rows=%d cols=%d", ErrInvalidConfig, cfg.Rows, cfg.Cols)
	}
	if cfg.SpacingMeters <= 0 || math.IsNaN(cfg.SpacingMeters) {
		return Layout{}, fmt.Errorf("%w: spacing=%v", ErrInvalidConfig, cfg.SpacingMeters)
	}

	latStep, lngStep := Steps(anchor.Lat, cfg.SpacingMeters)
	return Layout{
		Rows:    cfg.Rows,
		Cols:    cfg.Cols,
		LatStep: latStep,
		LngStep: lngStep,
		TopLat:  anchor.Lat + float64(cfg.Rows)/2*latStep,
		LeftLng: anchor.Lng - float64(cfg.Cols)/2*lngStep,
	}, nil
}

// Compute возвращает матрицу rows x cols центров ячеек
func Compute(anchor *models.AnchorPoint, cfg models.GridConfig) (Matrix, error) {
	layout, err := NewLayout(anchor, cfg)
	if err != nil {
		return nil, err
	}
	return layout.Matrix(), nil
}

func (l Layout) Matrix() Matrix {
	m := make(Matrix, l.Rows)
	for r := 0; r < l.Rows; r++ {
		m[r] = make([]models.LatLng, l.Cols)
		for c := 0; c < l.Cols; c++ {
			m[r][c] = l.Center(r, c)
		}
	}
	return m
}

// Contains сообщает, лежит ли (row, col) внутри сетки
func (l Layout) Contains(row, col int) bool {
	return row >= 0 && row < l.Rows && col >= 0 && col < l.Cols
}

func (l Layout) Center(row, col int) models.LatLng {
	return models.LatLng{
		Lat: l.TopLat - float64(row)*l.LatStep,
		Lng: l.LeftLng + float64(col)*l.LngStep,
	}
}

// Bound возвращает квадрат ячейки (row, col)
func (l Layout) Bound(row, col int) orb.Bound {
	return CellBound(l.Center(row, col), l.LatStep, l.LngStep)
}

// Locate находит ячейку, в которую попадает точка
func (l Layout) Locate(lat, lng float64) (row, col int, ok bool) {
	row = int(math.Round((l.TopLat - lat) / l.LatStep))
	col = int(math.Round((lng - l.LeftLng) / l.LngStep))
	if !l.Contains(row, col) {
		return 0, 0, false
	}
	return row, col, true
}

// Locate - то же, что Layout.Locate, для пары (anchor, cfg)
func Locate(anchor *models.AnchorPoint, cfg models.GridConfig, lat, lng float64) (row, col int, ok bool) {
	layout, err := NewLayout(anchor, cfg)
	if err != nil {
		return 0, 0, false
	}
	return layout.Locate(lat, lng)
}

// CellBound строит прямоугольник ячейки вокруг центра. orb хранит точки как (lng, lat).
func CellBound(center models.LatLng, latStep, lngStep float64) orb.Bound {
	return orb.Bound{
		Min: orb.Point{center.Lng - lngStep/2, center.Lat - latStep/2},
		Max: orb.Point{center.Lng + lngStep/2, center.Lat + latStep/2},
	}
}
