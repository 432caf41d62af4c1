// Package scale пересчитывает размеры подписей и иконок под текущий зум карты.
package scale

import "math"

const (
	// BaseZoom - зум, на котором размеры совпадают с макетом
	BaseZoom = 19.0
	// LabelCutoffZoom - на этом зуме и ниже подписи не рисуются
	LabelCutoffZoom = 15.0
	MinIconSize     = 10.0
)

// Sizes - размеры элементов подписи в пикселях
type Sizes struct {
	FontSize     float64 `json:"font_size"`
	Padding      float64 `json:"padding"`
	BorderRadius float64 `json:"border_radius"`
	StrokeWidth  float64 `json:"stroke_width"`
	IconSize     float64 `json:"icon_size"`
}

// Base - размеры на BaseZoom
var Base = Sizes{
	FontSize:     12,
	Padding:      4,
	BorderRadius: 4,
	StrokeWidth:  2,
	IconSize:     24,
}

// Style - коэффициенты отрисовки для конкретного зума
type Style struct {
	Zoom          float64 `json:"zoom"`
	Ratio         float64 `json:"ratio"`
	LabelsVisible bool    `json:"labels_visible"`
	Compact       bool    `json:"compact"`
	Sizes
}

// Ratio = 2^(z-19). Целая часть степени применяется через Ldexp, поэтому
// Ratio(z+1) ровно вдвое больше Ratio(z).
func Ratio(zoom float64) float64 {
	d := zoom - BaseZoom
	whole := math.Floor(d)
	return math.Ldexp(math.Exp2(d-whole), int(whole))
}

// LabelsVisible - жесткий порог без плавного затухания
func LabelsVisible(zoom float64) bool {
	return zoom > LabelCutoffZoom
}

// For вычисляет стиль для зума
func For(zoom float64) Style {
	ratio := Ratio(zoom)
	return Style{
		Zoom:          zoom,
		Ratio:         ratio,
		LabelsVisible: LabelsVisible(zoom),
		Compact:       ratio < 1,
		Sizes: Sizes{
			FontSize:     Base.FontSize * ratio,
			Padding:      Base.Padding * ratio,
			BorderRadius: Base.BorderRadius * ratio,
			StrokeWidth:  Base.StrokeWidth * ratio,
			IconSize:     math.Max(Base.IconSize*ratio, MinIconSize),
		},
	}
}
