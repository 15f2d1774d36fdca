package session

import "sync"

type EventType string

const (
	EventSignedOut   EventType = "SIGNED_OUT"
	EventUserUpdated EventType = "USER_UPDATED"
)

// Event es un cambio de estado de auth/usuario.
type Event struct {
	Type        EventType
	UserID      string
	AccessToken string // solo en SIGNED_OUT
}

// Notifier es la suscripción a cambios de auth. Publish es sincrónico:
// cuando retorna, todos los suscriptores ya procesaron el evento.
type Notifier struct {
	mu   sync.RWMutex
	next int
	subs map[int]func(Event)
}

func NewNotifier() *Notifier {
	return &Notifier{subs: map[int]func(Event){}}
}

// Subscribe registra fn y devuelve la función para desuscribirse (idempotente).
func (n *Notifier) Subscribe(fn func(Event)) (unsubscribe func()) {
	if fn == nil {
		return func() {}
	}

	n.mu.Lock()
	id := n.next
	n.next++
	n.subs[id] = fn
	n.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			n.mu.Lock()
			delete(n.subs, id)
			n.mu.Unlock()
		})
	}
}

func (n *Notifier) Publish(e Event) {
	if n == nil {
		return
	}

	n.mu.RLock()
	fns := make([]func(Event), 0, len(n.subs))
	for _, fn := range n.subs {
		fns = append(fns, fn)
	}
	n.mu.RUnlock()

	for _, fn := range fns {
		fn(e)
	}
}
