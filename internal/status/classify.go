// Package status сводит планы работ и записи об опасностях в классификацию зоны.
package status

// Classification - производный статус зоны на один проход отрисовки
type Classification string

const (
	Empty         Classification = "EMPTY"
	Work          Classification = "WORK"
	Danger        Classification = "DANGER"
	WorkAndDanger Classification = "WORK_AND_DANGER"
	MyZone        Classification = "MY_ZONE"
	MyZoneDanger  Classification = "MY_ZONE_DANGER"
)

// Flags - входные признаки зоны для классификации
type Flags struct {
	Mine      bool
	HasWork   bool
	HasDanger bool
}

// Classify применяет порядок приоритетов: MY_ZONE_DANGER > MY_ZONE > WORK_AND_DANGER > DANGER > WORK > EMPTY
func Classify(f Flags) Classification {
	switch {
	case f.Mine && f.HasDanger:
		return MyZoneDanger
	case f.Mine:
		return MyZone
	case f.HasWork && f.HasDanger:
		return WorkAndDanger
	case f.HasDanger:
		return Danger
	case f.HasWork:
		return Work
	default:
		return Empty
	}
}
