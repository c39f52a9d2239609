package monitor

import (
	"errors"
	"testing"
	"time"
)

// fakeClock возвращает управляемые часы для монитора
func fakeClock(start time.Time) (func() time.Time, func(d time.Duration)) {
	now := start
	clock := func() time.Time { return now }
	advance := func(d time.Duration) { now = now.Add(d) }
	return clock, advance
}

// TestMonitorLifecycle проверяет жизненный цикл Start/Stop
func TestMonitorLifecycle(t *testing.T) {
	clock, advance := fakeClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	m := NewMonitor(clock)

	// До запуска наблюдения игнорируются, а снимка нет
	m.ObserveTask("SEARCH_PRODUCTS", time.Second, false)
	if _, err := m.Snapshot(); !errors.Is(err, ErrNotRunning) {
		t.Errorf("Snapshot() before start: err = %v, want ErrNotRunning", err)
	}

	m.Start()
	m.ObserveTask("SEARCH_PRODUCTS", time.Second, false)
	advance(5 * time.Second)
	m.Stop()

	// После остановки наблюдения тоже игнорируются
	m.ObserveTask("SEARCH_PRODUCTS", time.Second, false)

	snapshot, err := m.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot() error = %v", err)
	}
	if snapshot["SEARCH_PRODUCTS"].Count != 1 {
		t.Errorf("Count = %d, want 1", snapshot["SEARCH_PRODUCTS"].Count)
	}
	if m.Uptime() != 5*time.Second {
		t.Errorf("Uptime() = %v, want 5s", m.Uptime())
	}
}

// TestMonitorObserveTask проверяет накопление метрик по типам задач
func TestMonitorObserveTask(t *testing.T) {
	m := NewMonitor(nil)
	m.Start()

	m.ObserveTask("OPTIMIZE_IMAGES", 100*time.Millisecond, false)
	m.ObserveTask("OPTIMIZE_IMAGES", 300*time.Millisecond, true)
	m.ObserveTask("PROCESS_LARGE_DATASET", time.Second, false)

	snapshot, err := m.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot() error = %v", err)
	}

	images := snapshot["OPTIMIZE_IMAGES"]
	if images.Count != 2 {
		t.Errorf("Count = %d, want 2", images.Count)
	}
	if images.Errors != 1 {
		t.Errorf("Errors = %d, want 1", images.Errors)
	}
	if images.TotalDuration != 400*time.Millisecond {
		t.Errorf("TotalDuration = %v, want 400ms", images.TotalDuration)
	}
	if images.AvgDuration != 200*time.Millisecond {
		t.Errorf("AvgDuration = %v, want 200ms", images.AvgDuration)
	}

	if snapshot["PROCESS_LARGE_DATASET"].Count != 1 {
		t.Errorf("dataset Count = %d, want 1", snapshot["PROCESS_LARGE_DATASET"].Count)
	}

	// Снимок — копия: изменения оригинала не должны просачиваться
	m.ObserveTask("OPTIMIZE_IMAGES", time.Millisecond, false)
	if snapshot["OPTIMIZE_IMAGES"].Count != 2 {
		t.Error("snapshot is not isolated from later observations")
	}
}
