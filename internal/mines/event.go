package mines

import "slices"

type EventType int

const (
	EventReset EventType = iota
	EventOpen
	EventFlag
	EventLost
	EventWon
)

func (t EventType) String() string {
	switch t {
	case EventReset:
		return "reset"
	case EventOpen:
		return "open"
	case EventFlag:
		return "flag"
	case EventLost:
		return "lost"
	case EventWon:
		return "won"
	default:
		return "unknown"
	}
}

// Event describes a completed state change. X and Y are the cell the
// triggering operation targeted; they are zero for [EventReset].
type Event struct {
	Type  EventType
	X, Y  int
	Phase Phase
}

// Observer is called synchronously after every state change, from the
// goroutine that made it. It may read the game but must not mutate it.
type Observer func(Event)

type observerEntry struct {
	id int
	fn Observer
}

// Subscribe registers fn and returns a function that removes it. Observers
// are called in subscription order.
func (g *Game) Subscribe(fn Observer) (unsubscribe func()) {
	id := g.nextObs
	g.nextObs++
	g.observers = append(g.observers, observerEntry{id, fn})
	return func() {
		g.observers = slices.DeleteFunc(g.observers, func(o observerEntry) bool {
			return o.id == id
		})
	}
}

func (g *Game) notify(e Event) {
	for _, o := range g.observers {
		o.fn(e)
	}
}
