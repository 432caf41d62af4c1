package zone

import "github.com/shenikar/site_grid_system/internal/models"

// Index - отображение имя -> зона для одного уровня.
// При повторяющихся именах побеждает последняя встреченная запись, имя попадает в Duplicates.
type Index struct {
	level      string
	byName     map[string]models.Zone
	names      []string
	duplicates []string
}

// NewIndex строит индекс по зонам уровня level; зоны других уровней отбрасываются
func NewIndex(zones []models.Zone, level string) *Index {
	idx := &Index{
		level:  level,
		byName: make(map[string]models.Zone),
	}
	seenDup := make(map[string]bool)
	for _, z := range zones {
		if z.Level != level {
			continue
		}
		if _, exists := idx.byName[z.Name]; exists {
			if !seenDup[z.Name] {
				seenDup[z.Name] = true
				idx.duplicates = append(idx.duplicates, z.Name)
			}
		} else {
			idx.names = append(idx.names, z.Name)
		}
		idx.byName[z.Name] = z
	}
	return idx
}

func (i *Index) Level() string {
	return i.level
}

// Lookup возвращает зону с координатами. Зоны без координат в сетке не участвуют.
func (i *Index) Lookup(name string) (models.Zone, bool) {
	z, ok := i.byName[name]
	if !ok || !z.HasLocation() {
		return models.Zone{}, false
	}
	return z, true
}

// Get возвращает зону по имени независимо от наличия координат
func (i *Index) Get(name string) (models.Zone, bool) {
	z, ok := i.byName[name]
	return z, ok
}

// Zones - все зоны уровня после разрешения дубликатов, в порядке первого появления имени
func (i *Index) Zones() []models.Zone {
	out := make([]models.Zone, 0, len(i.names))
	for _, name := range i.names {
		out = append(out, i.byName[name])
	}
	return out
}

// ListOnly - зоны без координат
func (i *Index) ListOnly() []models.Zone {
	var out []models.Zone
	for _, name := range i.names {
		if z := i.byName[name]; !z.HasLocation() {
			out = append(out, z)
		}
	}
	return out
}

func (i *Index) Duplicates() []string {
	return i.duplicates
}

func (i *Index) Len() int {
	return len(i.names)
}
