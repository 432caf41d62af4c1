package status

// Style - визуальный контракт классификации для слоя отрисовки
type Style struct {
	FillColor    string  `json:"fill_color"`
	FillOpacity  float64 `json:"fill_opacity"`
	StrokeColor  string  `json:"stroke_color"`
	StrokeWeight float64 `json:"stroke_weight"`
	DashArray    string  `json:"dash_array,omitempty"`
}

var styles = map[Classification]Style{
	Empty:         {FillColor: "#9ca3af", FillOpacity: 0.05, StrokeColor: "#9ca3af", StrokeWeight: 1, DashArray: "4 4"},
	Work:          {FillColor: "#3b82f6", FillOpacity: 0.35, StrokeColor: "#2563eb", StrokeWeight: 2},
	Danger:        {FillColor: "#ef4444", FillOpacity: 0.4, StrokeColor: "#dc2626", StrokeWeight: 2},
	WorkAndDanger: {FillColor: "#f97316", FillOpacity: 0.45, StrokeColor: "#dc2626", StrokeWeight: 3, DashArray: "6 3"},
	MyZone:        {FillColor: "#22c55e", FillOpacity: 0.4, StrokeColor: "#16a34a", StrokeWeight: 3},
	MyZoneDanger:  {FillColor: "#ef4444", FillOpacity: 0.5, StrokeColor: "#16a34a", StrokeWeight: 4, DashArray: "6 3"},
}

// StyleFor возвращает стиль классификации; неизвестное значение рисуется как EMPTY
func StyleFor(c Classification) Style {
	if s, ok := styles[c]; ok {
		return s
	}
	return styles[Empty]
}
