package compute

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"
)

// Errors
var (
	ErrUnknownTaskType   = errors.New("Unknown task type")
	ErrHandlerUnloadable = errors.New("handler could not be loaded")
)

// HandlerFunc обрабатывает полезную нагрузку одного типа задач
type HandlerFunc func(data json.RawMessage) (ResultMessage, error)

// Loader создает обработчик. Загрузка может временно не удаваться,
// поэтому Resolve повторяет ее согласно RetryPolicy.
type Loader func() (HandlerFunc, error)

// RetryPolicy задает политику повторов загрузки обработчика
type RetryPolicy struct {
	MaxAttempts int
	Backoff     time.Duration
}

// Registry сопоставляет логические имена задач с обработчиками.
// Обработчики загружаются лениво при первом обращении и кешируются.
type Registry struct {
	mu       sync.Mutex
	loaders  map[string]Loader
	handlers map[string]HandlerFunc
	retry    RetryPolicy
}

// NewRegistry создает пустой реестр с заданной политикой повторов
func NewRegistry(retry RetryPolicy) *Registry {
	if retry.MaxAttempts < 1 {
		retry.MaxAttempts = 1
	}
	return &Registry{
		loaders:  make(map[string]Loader),
		handlers: make(map[string]HandlerFunc),
		retry:    retry,
	}
}

// Register регистрирует загрузчик обработчика для типа задачи
func (r *Registry) Register(taskType string, loader Loader) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.loaders[taskType] = loader
	delete(r.handlers, taskType)
}

// Resolve возвращает обработчик для типа задачи.
// Неудачные загрузки повторяются до MaxAttempts раз с паузой Backoff.
func (r *Registry) Resolve(taskType string) (HandlerFunc, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if handler, ok := r.handlers[taskType]; ok {
		return handler, nil
	}

	loader, ok := r.loaders[taskType]
	if !ok {
		return nil, ErrUnknownTaskType
	}

	var lastErr error
	for attempt := 1; attempt <= r.retry.MaxAttempts; attempt++ {
		handler, err := loader()
		if err == nil {
			r.handlers[taskType] = handler
			return handler, nil
		}
		lastErr = err
		if attempt < r.retry.MaxAttempts {
			time.Sleep(r.retry.Backoff)
		}
	}

	return nil, fmt.Errorf("%w: %s: %v", ErrHandlerUnloadable, taskType, lastErr)
}

// DefaultRegistry создает реестр со всеми встроенными обработчиками
func DefaultRegistry(retry RetryPolicy) *Registry {
	r := NewRegistry(retry)
	r.Register(TaskProcessLargeDataset, func() (HandlerFunc, error) {
		return handleProcessLargeDataset, nil
	})
	r.Register(TaskOptimizeImages, func() (HandlerFunc, error) {
		return handleOptimizeImages, nil
	})
	r.Register(TaskCalculateAnalytics, func() (HandlerFunc, error) {
		return handleCalculateAnalytics, nil
	})
	r.Register(TaskSearchProducts, func() (HandlerFunc, error) {
		return handleSearchProducts, nil
	})
	return r
}
