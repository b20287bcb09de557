package health_storage

import (
	"sync"

	"github.com/trsv-dev/espresso-idling-bridge/internal/models"
)

// StatusCache In-memory хранилище последних статусов Espresso серверов.
type StatusCache struct {
	mu    sync.RWMutex
	cache map[string]models.EspressoStatus
}

// NewStatusCache Конструктор StatusCache.
func NewStatusCache() *StatusCache {
	return &StatusCache{
		cache: make(map[string]models.EspressoStatus),
	}
}

// Set Сохраняет статус сервера. Возвращает true, если состояние изменилось.
// Время проверки обновляется в любом случае.
func (sc *StatusCache) Set(s models.EspressoStatus) bool {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	old, ok := sc.cache[s.Address]
	sc.cache[s.Address] = s

	return !ok || !old.SameState(s)
}

// Get Извлекает статус сервера из in-memory хранилища.
func (sc *StatusCache) Get(address string) (models.EspressoStatus, bool) {
	sc.mu.RLock()
	defer sc.mu.RUnlock()

	v, ok := sc.cache[address]

	return v, ok
}
