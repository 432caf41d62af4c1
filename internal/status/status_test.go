package status

import (
	"testing"

	"github.com/shenikar/site_grid_system/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify_Precedence(t *testing.T) {
	cases := []struct {
		flags Flags
		want  Classification
	}{
		{Flags{Mine: true, HasWork: true, HasDanger: true}, MyZoneDanger},
		{Flags{Mine: true, HasDanger: true}, MyZoneDanger},
		{Flags{Mine: true, HasWork: true}, MyZone},
		{Flags{Mine: true}, MyZone},
		{Flags{HasWork: true, HasDanger: true}, WorkAndDanger},
		{Flags{HasDanger: true}, Danger},
		{Flags{HasWork: true}, Work},
		{Flags{}, Empty},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Classify(tc.flags), "flags %+v", tc.flags)
	}
}

func TestAggregate_WorkTaskOnly(t *testing.T) {
	zones := []models.Zone{{
		ID:    1,
		Name:  "1F-A1",
		Level: "1F",
		Tasks: []models.WorkTaskRef{{ZoneID: 1, WorkType: "rebar"}},
	}}

	res := Aggregate(Input{Zones: zones})

	require.Contains(t, res, "1F-A1")
	assert.Equal(t, Work, res["1F-A1"].Classification)
	assert.Equal(t, []string{"rebar"}, res["1F-A1"].WorkTypes)
}

func TestAggregate_MergesPlansAndDangers(t *testing.T) {
	zones := []models.Zone{
		{ID: 1, Name: "1F-A1", Level: "1F"},
		{ID: 2, Name: "1F-A2", Level: "1F"},
		{ID: 3, Name: "1F-B1", Level: "1F", Dangers: []models.DangerRef{{ZoneID: 3, RiskType: "FALL"}}},
		{ID: 4, Name: "1F-B2", Level: "1F"},
	}
	plans := []models.WorkPlan{
		{ID: 10, ZoneID: 1, WorkType: "formwork", Allocations: []models.Allocation{{WorkerID: 7, WorkerName: "Kim"}}},
		{ID: 11, ZoneID: 2, WorkType: "welding"},
	}
	dangers := []models.DangerZone{
		{ID: 20, ZoneID: 2, RiskType: "FIRE"},
		{ID: 21, ZoneID: 1, RiskType: "FALL"},
	}

	res := Aggregate(Input{Zones: zones, Plans: plans, Dangers: dangers, MyZoneNames: []string{"1F-A1"}})

	assert.Equal(t, MyZoneDanger, res["1F-A1"].Classification)
	assert.Equal(t, WorkAndDanger, res["1F-A2"].Classification)
	assert.Equal(t, Danger, res["1F-B1"].Classification)
	assert.Equal(t, Empty, res["1F-B2"].Classification)
	assert.Len(t, res["1F-A1"].Allocations, 1)
}

func TestAggregate_Idempotent(t *testing.T) {
	in := Input{
		Zones: []models.Zone{
			{ID: 1, Name: "1F-A1"},
			{ID: 2, Name: "1F-A2"},
		},
		Plans:       []models.WorkPlan{{ZoneID: 1, WorkType: "paint"}},
		Dangers:     []models.DangerZone{{ZoneID: 2, RiskType: "DUST"}},
		MyZoneNames: []string{"1F-A2"},
	}
	assert.Equal(t, Aggregate(in), Aggregate(in))
}

func TestMyZoneNames(t *testing.T) {
	zones := []models.Zone{{ID: 1, Name: "1F-A1"}, {ID: 2, Name: "1F-A2"}}
	plans := []models.WorkPlan{
		{ZoneID: 1, Allocations: []models.Allocation{{WorkerID: 5}, {WorkerID: 6}}},
		{ZoneID: 2, Allocations: []models.Allocation{{WorkerID: 6}}},
		{ZoneID: 1, Allocations: []models.Allocation{{WorkerID: 5}}},
		{ZoneID: 99, Allocations: []models.Allocation{{WorkerID: 5}}},
	}

	assert.Equal(t, []string{"1F-A1"}, MyZoneNames(5, zones, plans))
	assert.Equal(t, []string{"1F-A1", "1F-A2"}, MyZoneNames(6, zones, plans))
	assert.Nil(t, MyZoneNames(0, zones, plans))
}

func TestRoster_CompactDeduplicates(t *testing.T) {
	allocs := []models.Allocation{
		{WorkerID: 1, WorkerName: "Lee", CompanyName: "Alpha"},
		{WorkerID: 1, WorkerName: "Lee", CompanyName: "Alpha"},
		{WorkerID: 2, WorkerName: "Lee", CompanyName: "Beta"},
	}

	assert.Len(t, Roster(allocs, false), 3)

	compact := Roster(allocs, true)
	require.Len(t, compact, 2)
	assert.Equal(t, "Alpha", compact[0].CompanyName)
	assert.Equal(t, "Beta", compact[1].CompanyName)

	assert.Nil(t, Roster(nil, true))
}

func TestStyleFor(t *testing.T) {
	for _, c := range []Classification{Empty, Work, Danger, WorkAndDanger, MyZone, MyZoneDanger} {
		s := StyleFor(c)
		assert.NotEmpty(t, s.FillColor, "classification %s", c)
		assert.Greater(t, s.StrokeWeight, 0.0)
	}
	assert.Equal(t, StyleFor(Empty), StyleFor("UNKNOWN"))
}
