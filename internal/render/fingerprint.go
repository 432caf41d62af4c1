package render

import (
	"encoding/json"
	"sort"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"github.com/shenikar/site_grid_system/internal/models"
)

type fingerprintKey struct {
	Rows        int                 `json:"rows"`
	Cols        int                 `json:"cols"`
	Zoom        float64             `json:"zoom"`
	Level       string              `json:"level"`
	Zones       []models.Zone       `json:"zones"`
	Plans       []models.WorkPlan   `json:"plans"`
	Risks       []models.DangerZone `json:"risks"`
	MyZoneNames []string            `json:"my_zone_names"`
	Grid        models.GridConfig   `json:"grid"`
	Anchor      *models.AnchorPoint `json:"anchor"`
}

// Fingerprint - ключ мемоизации по набору входов. Порядок myZoneNames не влияет на ключ.
// Пустая строка означает, что входы не сериализуются (например, NaN) и кэшировать нельзя.
func Fingerprint(in Input) string {
	names := append([]string(nil), in.MyZoneNames...)
	sort.Strings(names)

	payload, err := json.Marshal(fingerprintKey{
		Rows:        in.Grid.Rows,
		Cols:        in.Grid.Cols,
		Zoom:        in.Zoom,
		Level:       in.Level,
		Zones:       in.Zones,
		Plans:       in.Plans,
		Risks:       in.Dangers,
		MyZoneNames: names,
		Grid:        in.Grid,
		Anchor:      in.Anchor,
	})
	if err != nil {
		return ""
	}
	return strconv.FormatUint(xxhash.Sum64(payload), 16)
}
