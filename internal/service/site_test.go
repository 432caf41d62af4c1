package service

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shenikar/site_grid_system/internal/config"
	"github.com/shenikar/site_grid_system/internal/grid"
	"github.com/shenikar/site_grid_system/internal/models"
	"github.com/shenikar/site_grid_system/internal/service/mocks"
	"github.com/shenikar/site_grid_system/internal/status"
	webhook_mocks "github.com/shenikar/site_grid_system/internal/webhook/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

func ptr(v float64) *float64 { return &v }

// newTestSiteMapService - вспомогательная функция для создания инстанса сервиса с моками.
func newTestSiteMapService(t *testing.T) (*siteMapService, *mocks.MockSiteRepository, *webhook_mocks.MockEventPublisher) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockSiteRepository(ctrl)
	publisherMock := webhook_mocks.NewMockEventPublisher(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		RenderCacheSize: 8,
		RenderCacheTTL:  time.Minute,
	}

	svc := NewSiteMapService(repoMock, logger, cfg, publisherMock).(*siteMapService)
	svc.now = func() time.Time { return testNow }
	return svc, repoMock, publisherMock
}

func testProject() *models.Project {
	return &models.Project{
		ID:          1,
		Name:        "Тестовая площадка",
		LocationLat: ptr(37.5665),
		LocationLng: ptr(126.9780),
		GridRows:    2,
		GridCols:    2,
		GridSpacing: 10,
	}
}

func testSnapshot() ([]models.Zone, []models.WorkPlan, []models.DangerZone) {
	zones := []models.Zone{
		{ID: 10, Name: "1F-A1", Level: "1F", Lat: ptr(37.5666), Lng: ptr(126.9779)},
		{ID: 11, Name: "1F-B2", Level: "1F", Lat: ptr(37.5665), Lng: ptr(126.9780)},
	}
	plans := []models.WorkPlan{
		{ID: 100, ZoneID: 10, WorkType: "rebar", Allocations: []models.Allocation{
			{WorkerID: 7, WorkerName: "Kim", CompanyName: "Alpha"},
		}},
		{ID: 101, ZoneID: 11, WorkType: "formwork"},
	}
	dangers := []models.DangerZone{
		{ID: 200, ZoneID: 11, RiskType: "FALL"},
	}
	return zones, plans, dangers
}

func expectSnapshot(repoMock *mocks.MockSiteRepository, ctx context.Context, day time.Time) {
	zones, plans, dangers := testSnapshot()
	repoMock.EXPECT().ListZones(ctx, int64(1), "1F").Return(zones, nil).Times(1)
	repoMock.EXPECT().ListWorkPlans(ctx, int64(1), day).Return(plans, nil).Times(1)
	repoMock.EXPECT().ListDangerZones(ctx, int64(1), day).Return(dangers, nil).Times(1)
}

func TestBuildMap_Success_FromDB(t *testing.T) {
	// Подготовка
	svc, repoMock, _ := newTestSiteMapService(t)
	ctx := context.Background()
	project := testProject()
	day := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

	// Ожидания
	// 1. Промах кеша
	repoMock.EXPECT().GetProjectFromCache(ctx, int64(1)).Return(nil, nil).Times(1)
	// 2. Попадание в БД
	repoMock.EXPECT().GetProject(ctx, int64(1)).Return(project, nil).Times(1)
	// 3. Запись в кеш
	repoMock.EXPECT().SetProjectCache(ctx, project).Return(nil).Times(1)
	expectSnapshot(repoMock, ctx, day)

	// Действие
	model, err := svc.BuildMap(ctx, models.MapQuery{ProjectID: 1, Level: "1F", Zoom: 19, WorkerID: 7})

	// Проверки
	require.NoError(t, err)
	assert.Len(t, model.Cells, 4)
	assert.Equal(t, status.MyZone, model.Statuses["1F-A1"].Classification)
	assert.Equal(t, status.WorkAndDanger, model.Statuses["1F-B2"].Classification)
	assert.NotEmpty(t, model.Fingerprint)
}

func TestBuildMap_Success_FromCache(t *testing.T) {
	svc, repoMock, _ := newTestSiteMapService(t)
	ctx := context.Background()
	date := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	repoMock.EXPECT().GetProjectFromCache(ctx, int64(1)).Return(testProject(), nil).Times(1)
	repoMock.EXPECT().GetProject(gomock.Any(), gomock.Any()).Times(0)
	expectSnapshot(repoMock, ctx, day)

	model, err := svc.BuildMap(ctx, models.MapQuery{ProjectID: 1, Level: "1F", Zoom: 17, Date: date})

	require.NoError(t, err)
	assert.Equal(t, status.Work, model.Statuses["1F-A1"].Classification)
	assert.True(t, model.Scale.Compact)
}

func TestBuildMap_CacheErrorFallsBackToDB(t *testing.T) {
	svc, repoMock, _ := newTestSiteMapService(t)
	ctx := context.Background()
	project := testProject()

	repoMock.EXPECT().GetProjectFromCache(ctx, int64(1)).Return(nil, errors.New("redis down")).Times(1)
	repoMock.EXPECT().GetProject(ctx, int64(1)).Return(project, nil).Times(1)
	repoMock.EXPECT().SetProjectCache(ctx, project).Return(errors.New("redis down")).Times(1)
	expectSnapshot(repoMock, ctx, time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC))

	_, err := svc.BuildMap(ctx, models.MapQuery{ProjectID: 1, Level: "1F", Zoom: 19})
	require.NoError(t, err)
}

func TestBuildMap_ReusesMemoizedModel(t *testing.T) {
	svc, repoMock, _ := newTestSiteMapService(t)
	ctx := context.Background()
	day := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	zones, plans, dangers := testSnapshot()

	repoMock.EXPECT().GetProjectFromCache(ctx, int64(1)).Return(testProject(), nil).Times(2)
	repoMock.EXPECT().ListZones(ctx, int64(1), "1F").Return(zones, nil).Times(2)
	repoMock.EXPECT().ListWorkPlans(ctx, int64(1), day).Return(plans, nil).Times(2)
	repoMock.EXPECT().ListDangerZones(ctx, int64(1), day).Return(dangers, nil).Times(2)

	q := models.MapQuery{ProjectID: 1, Level: "1F", Zoom: 19}
	first, err := svc.BuildMap(ctx, q)
	require.NoError(t, err)
	second, err := svc.BuildMap(ctx, q)
	require.NoError(t, err)

	assert.Same(t, first, second)
}

func TestBuildMap_ProjectNotFound(t *testing.T) {
	svc, repoMock, _ := newTestSiteMapService(t)
	ctx := context.Background()

	repoMock.EXPECT().GetProjectFromCache(ctx, int64(5)).Return(nil, nil).Times(1)
	repoMock.EXPECT().GetProject(ctx, int64(5)).Return(nil, ErrNotFound).Times(1)

	model, err := svc.BuildMap(ctx, models.MapQuery{ProjectID: 5, Level: "1F", Zoom: 19})

	require.Error(t, err)
	assert.Nil(t, model)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestBuildMap_MissingAnchor(t *testing.T) {
	svc, repoMock, _ := newTestSiteMapService(t)
	ctx := context.Background()
	project := testProject()
	project.LocationLat = nil

	repoMock.EXPECT().GetProjectFromCache(ctx, int64(1)).Return(project, nil).Times(1)
	expectSnapshot(repoMock, ctx, time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC))

	_, err := svc.BuildMap(ctx, models.MapQuery{ProjectID: 1, Level: "1F", Zoom: 19})

	assert.ErrorIs(t, err, grid.ErrMissingAnchor)
}

func TestBuildMap_RepositoryError(t *testing.T) {
	svc, repoMock, _ := newTestSiteMapService(t)
	ctx := context.Background()

	repoMock.EXPECT().GetProjectFromCache(ctx, int64(1)).Return(testProject(), nil).Times(1)
	repoMock.EXPECT().ListZones(ctx, int64(1), "1F").Return(nil, errors.New("db error")).Times(1)

	_, err := svc.BuildMap(ctx, models.MapQuery{ProjectID: 1, Level: "1F", Zoom: 19})

	assert.ErrorContains(t, err, "could not list zones")
}

func TestSelectCell_MatchedZone(t *testing.T) {
	// Подготовка
	svc, repoMock, publisherMock := newTestSiteMapService(t)
	ctx := context.Background()

	// Ожидания
	repoMock.EXPECT().GetProjectFromCache(ctx, int64(1)).Return(testProject(), nil).Times(1)
	expectSnapshot(repoMock, ctx, time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC))
	publisherMock.EXPECT().
		Publish(ctx, gomock.Any()).
		// Проверяем, что событие содержит данные зоны
		Do(func(ctx context.Context, event models.ZoneClickEvent) {
			assert.Equal(t, "1F-B2", event.Name)
			assert.Len(t, event.Dangers, 1)
		}).Return(nil).Times(1)

	// Действие
	event, err := svc.SelectCell(ctx, models.CellQuery{ProjectID: 1, Level: "1F", Row: 1, Col: 1})

	// Проверки
	require.NoError(t, err)
	require.NotNil(t, event.ID)
	assert.Equal(t, int64(11), *event.ID)
	assert.Equal(t, "1F", event.Level)
	require.Len(t, event.Tasks, 1)
	assert.Equal(t, "formwork", event.Tasks[0].WorkType)
	assert.Equal(t, "FALL", event.Dangers[0].RiskType)
	assert.Equal(t, testNow, event.OccurredAt)
}

func TestSelectCell_MergesZoneRefs(t *testing.T) {
	// Подготовка
	svc, repoMock, publisherMock := newTestSiteMapService(t)
	ctx := context.Background()
	day := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	zones := []models.Zone{
		{ID: 10, Name: "1F-A1", Level: "1F",
			Tasks:   []models.WorkTaskRef{{ZoneID: 10, WorkType: "scaffold", Allocations: []models.Allocation{{WorkerID: 3}}}},
			Dangers: []models.DangerRef{{ZoneID: 10, RiskType: "FIRE", Description: "welding"}}},
	}
	plans := []models.WorkPlan{{ID: 100, ZoneID: 10, WorkType: "rebar"}}

	// Ожидания
	repoMock.EXPECT().GetProjectFromCache(ctx, int64(1)).Return(testProject(), nil).Times(1)
	repoMock.EXPECT().ListZones(ctx, int64(1), "1F").Return(zones, nil).Times(1)
	repoMock.EXPECT().ListWorkPlans(ctx, int64(1), day).Return(plans, nil).Times(1)
	repoMock.EXPECT().ListDangerZones(ctx, int64(1), day).Return(nil, nil).Times(1)
	publisherMock.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(1)

	// Действие
	event, err := svc.SelectCell(ctx, models.CellQuery{ProjectID: 1, Level: "1F", Row: 0, Col: 0})

	// Проверки
	require.NoError(t, err)
	require.Len(t, event.Tasks, 2)
	assert.Equal(t, "scaffold", event.Tasks[0].WorkType)
	assert.Equal(t, int64(3), event.Tasks[0].Allocations[0].WorkerID)
	assert.Equal(t, "rebar", event.Tasks[1].WorkType)
	require.Len(t, event.Dangers, 1)
	assert.Equal(t, models.DangerZone{ZoneID: 10, RiskType: "FIRE", Description: "welding"}, event.Dangers[0])
}

func TestSelectCell_EmptyCellCarriesOnlyCoordinates(t *testing.T) {
	svc, repoMock, publisherMock := newTestSiteMapService(t)
	ctx := context.Background()

	repoMock.EXPECT().GetProjectFromCache(ctx, int64(1)).Return(testProject(), nil).Times(1)
	expectSnapshot(repoMock, ctx, time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC))
	publisherMock.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(1)

	event, err := svc.SelectCell(ctx, models.CellQuery{ProjectID: 1, Level: "1F", Row: 1, Col: 0})

	require.NoError(t, err)
	assert.Empty(t, event.Name)
	assert.Nil(t, event.ID)
	assert.Empty(t, event.Tasks)
	assert.NotZero(t, event.Lat)
	assert.NotZero(t, event.Lng)
}

func TestSelectCell_PublishFailureIsNotFatal(t *testing.T) {
	svc, repoMock, publisherMock := newTestSiteMapService(t)
	ctx := context.Background()

	repoMock.EXPECT().GetProjectFromCache(ctx, int64(1)).Return(testProject(), nil).Times(1)
	expectSnapshot(repoMock, ctx, time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC))
	publisherMock.EXPECT().Publish(ctx, gomock.Any()).Return(errors.New("redis down")).Times(1)

	event, err := svc.SelectCell(ctx, models.CellQuery{ProjectID: 1, Level: "1F", Row: 0, Col: 0})

	require.NoError(t, err)
	assert.Equal(t, "1F-A1", event.Name)
}

func TestSelectCell_OutOfRange(t *testing.T) {
	svc, repoMock, publisherMock := newTestSiteMapService(t)
	ctx := context.Background()

	repoMock.EXPECT().GetProjectFromCache(ctx, int64(1)).Return(testProject(), nil).Times(1)
	repoMock.EXPECT().ListZones(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	publisherMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.SelectCell(ctx, models.CellQuery{ProjectID: 1, Level: "1F", Row: 2, Col: 0})

	assert.ErrorIs(t, err, ErrCellOutOfRange)
}

func TestSelectCell_InvalidGrid(t *testing.T) {
	svc, repoMock, _ := newTestSiteMapService(t)
	ctx := context.Background()
	project := testProject()
	project.GridSpacing = 0

	repoMock.EXPECT().GetProjectFromCache(ctx, int64(1)).Return(project, nil).Times(1)

	_, err := svc.SelectCell(ctx, models.CellQuery{ProjectID: 1, Level: "1F"})

	assert.ErrorIs(t, err, grid.ErrInvalidConfig)
}

func TestLocateCell_ResolvesPoint(t *testing.T) {
	svc, repoMock, publisherMock := newTestSiteMapService(t)
	ctx := context.Background()
	project := testProject()
	layout, err := grid.NewLayout(project.Anchor(), project.GridConfig())
	require.NoError(t, err)
	center := layout.Center(0, 0)

	repoMock.EXPECT().GetProjectFromCache(ctx, int64(1)).Return(project, nil).Times(1)
	expectSnapshot(repoMock, ctx, time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC))
	publisherMock.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(1)

	event, err := svc.LocateCell(ctx, models.PointQuery{ProjectID: 1, Level: "1F", Lat: center.Lat, Lng: center.Lng})

	require.NoError(t, err)
	assert.Equal(t, 0, event.Row)
	assert.Equal(t, 0, event.Col)
	assert.Equal(t, "1F-A1", event.Name)
}

func TestLocateCell_OutsideGrid(t *testing.T) {
	svc, repoMock, _ := newTestSiteMapService(t)
	ctx := context.Background()

	repoMock.EXPECT().GetProjectFromCache(ctx, int64(1)).Return(testProject(), nil).Times(1)

	_, err := svc.LocateCell(ctx, models.PointQuery{ProjectID: 1, Level: "1F", Lat: 10, Lng: 10})

	assert.ErrorIs(t, err, ErrCellOutOfRange)
}

func TestRefreshProject(t *testing.T) {
	svc, repoMock, _ := newTestSiteMapService(t)
	ctx := context.Background()

	repoMock.EXPECT().InvalidateProjectCache(ctx, int64(1)).Return(nil).Times(1)
	require.NoError(t, svc.RefreshProject(ctx, 1))

	repoMock.EXPECT().InvalidateProjectCache(ctx, int64(2)).Return(errors.New("redis down")).Times(1)
	assert.ErrorContains(t, svc.RefreshProject(ctx, 2), "could not refresh project")
}

func TestPlanDay(t *testing.T) {
	now := func() time.Time { return testNow }

	assert.Equal(t, time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC), planDay(time.Time{}, now))
	assert.Equal(t, time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC),
		planDay(time.Date(2026, 1, 2, 23, 59, 0, 0, time.UTC), now))
}
