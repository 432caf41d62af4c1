package status

import "github.com/shenikar/site_grid_system/internal/models"

// RosterEntry - строка списка работников зоны
type RosterEntry struct {
	WorkerID    int64  `json:"worker_id"`
	WorkerName  string `json:"worker_name"`
	CompanyName string `json:"company_name,omitempty"`
}

// Roster разворачивает назначения в плоский список.
// В компактном режиме повторы по паре (компания, имя) схлопываются в одну строку.
func Roster(allocations []models.Allocation, compact bool) []RosterEntry {
	if len(allocations) == 0 {
		return nil
	}
	out := make([]RosterEntry, 0, len(allocations))
	seen := make(map[[2]string]bool)
	for _, a := range allocations {
		if compact {
			key := [2]string{a.CompanyName, a.WorkerName}
			if seen[key] {
				continue
			}
			seen[key] = true
		}
		out = append(out, RosterEntry{
			WorkerID:    a.WorkerID,
			WorkerName:  a.WorkerName,
			CompanyName: a.CompanyName,
		})
	}
	return out
}
