package v1

import (
	"fmt"
	"time"

	"github.com/shenikar/site_grid_system/internal/models"
)

func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	d, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return d, nil
}

// DTOToMapQuery собирает запрос построения карты
func DTOToMapQuery(projectID int64, dto MapRequest) (models.MapQuery, error) {
	date, err := parseDate(dto.Date)
	if err != nil {
		return models.MapQuery{}, err
	}
	return models.MapQuery{
		ProjectID: projectID,
		Level:     dto.Level,
		Zoom:      dto.Zoom,
		Date:      date,
		WorkerID:  dto.WorkerID,
	}, nil
}

func DTOToCellQuery(projectID int64, dto SelectCellRequest) (models.CellQuery, error) {
	date, err := parseDate(dto.Date)
	if err != nil {
		return models.CellQuery{}, err
	}
	return models.CellQuery{
		ProjectID: projectID,
		Level:     dto.Level,
		Row:       dto.Row,
		Col:       dto.Col,
		Date:      date,
	}, nil
}

func DTOToPointQuery(projectID int64, dto LocateCellRequest) (models.PointQuery, error) {
	date, err := parseDate(dto.Date)
	if err != nil {
		return models.PointQuery{}, err
	}
	return models.PointQuery{
		ProjectID: projectID,
		Level:     dto.Level,
		Lat:       *dto.Lat,
		Lng:       *dto.Lng,
		Date:      date,
	}, nil
}

func DTOToLocationReport(dto LocationReportRequest) models.LocationReport {
	return models.LocationReport{
		WorkerID:     dto.WorkerID,
		Lat:          *dto.Lat,
		Lng:          *dto.Lng,
		TrackingMode: models.TrackingMode(dto.TrackingMode),
	}
}

// ModelToZoneClickResponse преобразует событие в DTO; пустые списки отдаются как []
func ModelToZoneClickResponse(event *models.ZoneClickEvent) *ZoneClickResponse {
	resp := &ZoneClickResponse{
		EventID:    event.EventID,
		Row:        event.Row,
		Col:        event.Col,
		Lat:        event.Lat,
		Lng:        event.Lng,
		Name:       event.Name,
		Level:      event.Level,
		ID:         event.ID,
		Tasks:      event.Tasks,
		Dangers:    event.Dangers,
		OccurredAt: event.OccurredAt,
	}
	if resp.Tasks == nil {
		resp.Tasks = []models.WorkPlan{}
	}
	if resp.Dangers == nil {
		resp.Dangers = []models.DangerZone{}
	}
	return resp
}
