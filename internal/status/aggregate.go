package status

import "github.com/shenikar/site_grid_system/internal/models"

// Input - снимок данных для одного прохода агрегации
type Input struct {
	Zones       []models.Zone
	MyZoneNames []string
	Plans       []models.WorkPlan
	Dangers     []models.DangerZone
}

// ZoneStatus - итог агрегации по одной зоне
type ZoneStatus struct {
	ZoneID         int64               `json:"zone_id"`
	Classification Classification      `json:"classification"`
	HasWork        bool                `json:"has_work"`
	HasDanger      bool                `json:"has_danger"`
	Mine           bool                `json:"mine"`
	WorkTypes      []string            `json:"work_types,omitempty"`
	RiskTypes      []string            `json:"risk_types,omitempty"`
	Allocations    []models.Allocation `json:"allocations,omitempty"`
}

// Result - статусы по имени зоны
type Result map[string]ZoneStatus

// Aggregate - чистая функция от текущих входов, состояния между вызовами не хранит.
// Работы берутся из Zone.Tasks и из планов по zone_id, опасности - из Zone.Dangers и записей на дату.
func Aggregate(in Input) Result {
	plansByZone := make(map[int64][]models.WorkPlan)
	for _, p := range in.Plans {
		plansByZone[p.ZoneID] = append(plansByZone[p.ZoneID], p)
	}
	dangersByZone := make(map[int64][]models.DangerZone)
	for _, d := range in.Dangers {
		dangersByZone[d.ZoneID] = append(dangersByZone[d.ZoneID], d)
	}
	mine := make(map[string]bool, len(in.MyZoneNames))
	for _, name := range in.MyZoneNames {
		mine[name] = true
	}

	result := make(Result, len(in.Zones))
	for _, z := range in.Zones {
		st := ZoneStatus{ZoneID: z.ID, Mine: mine[z.Name]}

		for _, task := range z.Tasks {
			st.WorkTypes = appendUnique(st.WorkTypes, task.WorkType)
			st.Allocations = append(st.Allocations, task.Allocations...)
		}
		for _, p := range plansByZone[z.ID] {
			st.WorkTypes = appendUnique(st.WorkTypes, p.WorkType)
			st.Allocations = append(st.Allocations, p.Allocations...)
		}
		st.HasWork = len(z.Tasks) > 0 || len(plansByZone[z.ID]) > 0

		for _, d := range z.Dangers {
			st.RiskTypes = appendUnique(st.RiskTypes, d.RiskType)
		}
		for _, d := range dangersByZone[z.ID] {
			st.RiskTypes = appendUnique(st.RiskTypes, d.RiskType)
		}
		st.HasDanger = len(z.Dangers) > 0 || len(dangersByZone[z.ID]) > 0

		st.Classification = Classify(Flags{Mine: st.Mine, HasWork: st.HasWork, HasDanger: st.HasDanger})
		result[z.Name] = st
	}
	return result
}

// MyZoneNames - зоны, где работник назначен хотя бы в один план
func MyZoneNames(workerID int64, zones []models.Zone, plans []models.WorkPlan) []string {
	if workerID == 0 {
		return nil
	}
	nameByID := make(map[int64]string, len(zones))
	for _, z := range zones {
		nameByID[z.ID] = z.Name
	}
	var names []string
	for _, p := range plans {
		name, ok := nameByID[p.ZoneID]
		if !ok {
			continue
		}
		for _, a := range p.Allocations {
			if a.WorkerID == workerID {
				names = appendUnique(names, name)
				break
			}
		}
	}
	return names
}

func appendUnique(list []string, v string) []string {
	if v == "" {
		return list
	}
	for _, existing := range list {
		if existing == v {
			return list
		}
	}
	return append(list, v)
}
