package monitor

import (
	"errors"
	"sync"
	"time"
)

// Errors
var (
	ErrNotRunning = errors.New("monitor is not running")
)

// TaskStats представляет собой накопленные метрики одного типа задач
type TaskStats struct {
	Count         int64         `json:"count"`
	Errors        int64         `json:"errors"`
	TotalDuration time.Duration `json:"totalDurationNs"`
	AvgDuration   time.Duration `json:"avgDurationNs"`
}

// Monitor собирает метрики выполнения задач. Создается явно,
// без глобального состояния; часы инжектируются для тестов.
// До Start() и после Stop() наблюдения игнорируются.
type Monitor struct {
	mu      sync.Mutex
	running bool
	started time.Time
	stopped time.Time
	now     func() time.Time
	stats   map[string]*TaskStats
}

// NewMonitor создает монитор с инжектированными часами.
// nil означает time.Now.
func NewMonitor(now func() time.Time) *Monitor {
	if now == nil {
		now = time.Now
	}
	return &Monitor{
		now:   now,
		stats: make(map[string]*TaskStats),
	}
}

// Start начинает сбор метрик
func (m *Monitor) Start() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.running {
		return
	}
	m.running = true
	m.started = m.now()
}

// Stop останавливает сбор метрик
func (m *Monitor) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.running {
		return
	}
	m.running = false
	m.stopped = m.now()
}

// ObserveTask фиксирует одно выполнение задачи
func (m *Monitor) ObserveTask(taskType string, duration time.Duration, failed bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.running {
		return
	}

	stats, ok := m.stats[taskType]
	if !ok {
		stats = &TaskStats{}
		m.stats[taskType] = stats
	}

	stats.Count++
	if failed {
		stats.Errors++
	}
	stats.TotalDuration += duration
	stats.AvgDuration = stats.TotalDuration / time.Duration(stats.Count)
}

// Snapshot возвращает копию накопленных метрик
func (m *Monitor) Snapshot() (map[string]TaskStats, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.running && m.started.IsZero() {
		return nil, ErrNotRunning
	}

	snapshot := make(map[string]TaskStats, len(m.stats))
	for taskType, stats := range m.stats {
		snapshot[taskType] = *stats
	}
	return snapshot, nil
}

// Uptime возвращает время работы монитора
func (m *Monitor) Uptime() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.started.IsZero() {
		return 0
	}
	if m.running {
		return m.now().Sub(m.started)
	}
	return m.stopped.Sub(m.started)
}
