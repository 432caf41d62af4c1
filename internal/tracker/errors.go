package tracker

import (
	"errors"
	"fmt"
)

// ErrPermissionDenied - источник позиции отказал в доступе
var ErrPermissionDenied = errors.New("location permission denied")

type ErrorKind int

const (
	LocationUnavailable ErrorKind = iota + 1
	ReportTransportFailure
)

func (k ErrorKind) String() string {
	switch k {
	case LocationUnavailable:
		return "location_unavailable"
	case ReportTransportFailure:
		return "report_transport_failure"
	default:
		return "unknown"
	}
}

// TelemetryError - явный результат неудачного шага телеметрии.
// Циклы трекера логируют его и продолжают работу; пользователю ошибка не показывается.
type TelemetryError struct {
	Kind     ErrorKind
	Stream   string
	WorkerID int64
	Err      error
}

func (e *TelemetryError) Error() string {
	return fmt.Sprintf("%s (%s stream, worker %d): %v", e.Kind, e.Stream, e.WorkerID, e.Err)
}

func (e *TelemetryError) Unwrap() error {
	return e.Err
}
