package models

import "time"

// Allocation - назначение работника на план работ
type Allocation struct {
	WorkerID    int64  `json:"worker_id"`
	WorkerName  string `json:"worker_name"`
	CompanyName string `json:"company_name"`
	Role        string `json:"role"`
}

// WorkPlan - план работ в зоне на дату
type WorkPlan struct {
	ID                  int64        `json:"id"`
	ZoneID              int64        `json:"zone_id"`
	WorkType            string       `json:"work_type"`
	CalculatedRiskScore float64      `json:"calculated_risk_score"`
	Allocations         []Allocation `json:"allocations"`
	PlanDate            time.Time    `json:"plan_date"`
}

// DangerZone - запись об опасной зоне, действующая в пределах даты
type DangerZone struct {
	ID          int64     `json:"id"`
	ZoneID      int64     `json:"zone_id"`
	RiskType    string    `json:"risk_type"`
	Description string    `json:"description"`
	ValidDate   time.Time `json:"valid_date"`
}
