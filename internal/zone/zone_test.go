package zone

import (
	"regexp"
	"testing"

	"github.com/shenikar/site_grid_system/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(v float64) *float64 { return &v }

func TestRowLetter(t *testing.T) {
	cases := map[int]string{0: "A", 1: "B", 25: "Z", 26: "AA", 27: "AB", 51: "AZ", 52: "BA", 701: "ZZ", 702: "AAA"}
	for row, want := range cases {
		assert.Equal(t, want, RowLetter(row), "row %d", row)
	}
}

func TestName_TwoByTwo(t *testing.T) {
	var names []string
	for r := 0; r < 2; r++ {
		for c := 0; c < 2; c++ {
			names = append(names, Name("1F", r, c))
		}
	}
	assert.Equal(t, []string{"1F-A1", "1F-A2", "1F-B1", "1F-B2"}, names)
}

func TestName_UniqueAndWellFormed(t *testing.T) {
	pattern := regexp.MustCompile(`^B2-[A-Z]+\d+$`)
	seen := make(map[string]bool)
	for r := 0; r < 60; r++ {
		for c := 0; c < 30; c++ {
			name := Name("B2", r, c)
			require.Regexp(t, pattern, name)
			require.False(t, seen[name], "duplicate %s", name)
			seen[name] = true
		}
	}
}

func TestIndex_FiltersByLevel(t *testing.T) {
	zones := []models.Zone{
		{ID: 1, Name: "1F-A1", Level: "1F", Lat: ptr(1), Lng: ptr(2)},
		{ID: 2, Name: "2F-A1", Level: "2F", Lat: ptr(1), Lng: ptr(2)},
	}
	idx := NewIndex(zones, "1F")

	z, ok := idx.Lookup("1F-A1")
	require.True(t, ok)
	assert.Equal(t, int64(1), z.ID)

	_, ok = idx.Lookup("2F-A1")
	assert.False(t, ok)
	assert.Equal(t, 1, idx.Len())
}

func TestIndex_DuplicateLastWins(t *testing.T) {
	zones := []models.Zone{
		{ID: 1, Name: "1F-A1", Level: "1F", Lat: ptr(1), Lng: ptr(2)},
		{ID: 2, Name: "1F-A2", Level: "1F", Lat: ptr(1), Lng: ptr(2)},
		{ID: 3, Name: "1F-A1", Level: "1F", Lat: ptr(1), Lng: ptr(2)},
		{ID: 4, Name: "1F-A1", Level: "1F", Lat: ptr(1), Lng: ptr(2)},
	}
	idx := NewIndex(zones, "1F")

	z, ok := idx.Lookup("1F-A1")
	require.True(t, ok)
	assert.Equal(t, int64(4), z.ID)
	assert.Equal(t, []string{"1F-A1"}, idx.Duplicates())

	all := idx.Zones()
	require.Len(t, all, 2)
	assert.Equal(t, int64(4), all[0].ID)
	assert.Equal(t, int64(2), all[1].ID)
}

func TestIndex_ZoneWithoutLocationIsListOnly(t *testing.T) {
	zones := []models.Zone{
		{ID: 1, Name: "1F-A1", Level: "1F"},
		{ID: 2, Name: "1F-A2", Level: "1F", Lat: ptr(1), Lng: ptr(2)},
	}
	idx := NewIndex(zones, "1F")

	_, ok := idx.Lookup("1F-A1")
	assert.False(t, ok)

	z, ok := idx.Get("1F-A1")
	require.True(t, ok)
	assert.Equal(t, int64(1), z.ID)

	listOnly := idx.ListOnly()
	require.Len(t, listOnly, 1)
	assert.Equal(t, "1F-A1", listOnly[0].Name)
}
