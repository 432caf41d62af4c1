package render

import (
	"container/list"
	"sync"
	"time"

	"github.com/shenikar/site_grid_system/internal/metrics"
)

const defaultMemoCapacity = 128

// Memo - LRU-кэш моделей по отпечатку входов с TTL.
// Ошибки построения не кэшируются.
type Memo struct {
	mu   sync.Mutex
	cap  int
	ttl  time.Duration
	lst  *list.List
	dict map[string]*list.Element
	now  func() time.Time
}

type memoEntry struct {
	key   string
	model *Model
	exp   time.Time
}

// NewMemo создает кэш; ttl <= 0 отключает истечение по времени
func NewMemo(capacity int, ttl time.Duration) *Memo {
	if capacity <= 0 {
		capacity = defaultMemoCapacity
	}
	return &Memo{
		cap:  capacity,
		ttl:  ttl,
		lst:  list.New(),
		dict: make(map[string]*list.Element),
		now:  time.Now,
	}
}

// Build возвращает модель из кэша или строит новую
func (c *Memo) Build(in Input) (*Model, error) {
	key := Fingerprint(in)
	if key != "" {
		if m, ok := c.get(key); ok {
			metrics.RenderCacheHitsTotal.Inc()
			return m, nil
		}
	}
	metrics.RenderCacheMissesTotal.Inc()

	start := time.Now()
	m, err := Build(in)
	if err != nil {
		return nil, err
	}
	metrics.RenderDurationMs.Observe(float64(time.Since(start).Microseconds()) / 1000)

	m.Fingerprint = key
	if key != "" {
		c.set(key, m)
	}
	return m, nil
}

func (c *Memo) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lst.Len()
}

func (c *Memo) get(key string) (*Model, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.dict[key]
	if !ok {
		return nil, false
	}
	it := e.Value.(memoEntry)
	if c.ttl > 0 && !c.now().Before(it.exp) {
		c.lst.Remove(e)
		delete(c.dict, key)
		return nil, false
	}
	c.lst.MoveToFront(e)
	return it.model, true
}

func (c *Memo) set(key string, m *Model) {
	c.mu.Lock()
	defer c.mu.Unlock()
	it := memoEntry{key: key, model: m, exp: c.now().Add(c.ttl)}
	if e, ok := c.dict[key]; ok {
		e.Value = it
		c.lst.MoveToFront(e)
		return
	}
	c.dict[key] = c.lst.PushFront(it)
	for c.lst.Len() > c.cap {
		back := c.lst.Back()
		if back == nil {
			break
		}
		delete(c.dict, back.Value.(memoEntry).key)
		c.lst.Remove(back)
	}
}
