package models

import "time"

// MapQuery - параметры одного прохода построения карты
type MapQuery struct {
	ProjectID int64
	Level     string
	Zoom      float64
	Date      time.Time
	WorkerID  int64
}

// CellQuery - клик по ячейке сетки
type CellQuery struct {
	ProjectID int64
	Level     string
	Row       int
	Col       int
	Date      time.Time
}

// PointQuery - клик по карте в координатах, ячейка определяется по точке
type PointQuery struct {
	ProjectID int64
	Level     string
	Lat       float64
	Lng       float64
	Date      time.Time
}
