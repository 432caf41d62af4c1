package models

import "time"

type TrackingMode string

const (
	TrackingModeGPS TrackingMode = "GPS"
	TrackingModeBLE TrackingMode = "BLE"
)

// LocationReport - тело запроса, которым трекер сообщает позицию работника
type LocationReport struct {
	WorkerID     int64        `json:"worker_id"`
	Lat          float64      `json:"lat"`
	Lng          float64      `json:"lng"`
	TrackingMode TrackingMode `json:"tracking_mode"`
}

// WorkerLocation - сохраненная запись о позиции работника
type WorkerLocation struct {
	ID           int64        `json:"id"`
	WorkerID     int64        `json:"worker_id"`
	Lat          float64      `json:"lat"`
	Lng          float64      `json:"lng"`
	TrackingMode TrackingMode `json:"tracking_mode"`
	ReportedAt   time.Time    `json:"reported_at"`
}
