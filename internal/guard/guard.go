package guard

import (
	"sync"
	"time"
)

// DefaultInterval — минимальная пауза между запросами одного пользователя
const DefaultInterval = 500 * time.Millisecond

// Guard защищает обработку от слишком частых запросов и от повторной
// обработки одного и того же нажатия кнопки
type Guard struct {
	mu          sync.Mutex
	lastRequest map[string]time.Time
	inFlight    map[string]struct{}
	minInterval time.Duration
	now         func() time.Time
}

// New создаёт Guard с заданным минимальным интервалом между запросами
func New(minInterval time.Duration) *Guard {
	return &Guard{
		lastRequest: make(map[string]time.Time),
		inFlight:    make(map[string]struct{}),
		minInterval: minInterval,
		now:         time.Now,
	}
}

// Admit пропускает запрос, если с предыдущего допущенного запроса этого
// пользователя прошло не меньше minInterval. Отклонение без побочных эффектов
func (g *Guard) Admit(userID string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now()
	if last, ok := g.lastRequest[userID]; ok && now.Sub(last) < g.minInterval {
		return false
	}
	g.lastRequest[userID] = now
	return true
}

// TryBeginAction помечает пару (пользователь, действие) как обрабатываемую.
// Возвращает false, если такое же действие уже в обработке
func (g *Guard) TryBeginAction(userID, action string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	key := userID + ":" + action
	if _, busy := g.inFlight[key]; busy {
		return false
	}
	g.inFlight[key] = struct{}{}
	return true
}

// EndAction снимает пометку обработки. Вызывается ровно один раз на каждый
// успешный TryBeginAction, в том числе на путях с ошибкой — через defer
func (g *Guard) EndAction(userID, action string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.inFlight, userID+":"+action)
}

// Forget удаляет все записи пользователя
func (g *Guard) Forget(userID string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.lastRequest, userID)
}
