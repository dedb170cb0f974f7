package mines

type EventKind int8

const (
	CellsChanged EventKind = iota
	GameWon
	GameLost
	GameRestarted
	BoardCheated
)

func (k EventKind) String() string {
	switch k {
	case CellsChanged:
		return "cells changed"
	case GameWon:
		return "game won"
	case GameLost:
		return "game lost"
	case GameRestarted:
		return "game restarted"
	case BoardCheated:
		return "board cheated"
	default:
		return "unknown event"
	}
}

// Event tells a listener what a finished operation changed. A nil Cells
// means the whole board should be redrawn.
type Event struct {
	Kind     EventKind
	Cells    []Point
	Status   Status
	Assisted bool
}

type Listener func(Event)

type subscription struct {
	id int
	fn Listener
}

// Subscribe registers l to be called, in registration order, after every
// operation that changes the board. The returned func removes it.
func (b *Board) Subscribe(l Listener) (cancel func()) {
	id := b.nextSubID
	b.nextSubID++
	b.listeners = append(b.listeners, subscription{id, l})
	return func() {
		for i, s := range b.listeners {
			if s.id == id {
				b.listeners = append(b.listeners[:i:i], b.listeners[i+1:]...)
				return
			}
		}
	}
}

func (b *Board) emit(e Event) {
	b.pending = append(b.pending, e)
}

// flush delivers queued events once the operation that raised them is
// complete. A listener that changes the board only queues more events; the
// outermost flush delivers them after the ones already queued.
func (b *Board) flush() {
	if b.flushing {
		return
	}
	b.flushing = true
	defer func() { b.flushing = false }()

	for len(b.pending) > 0 {
		e := b.pending[0]
		b.pending = b.pending[1:]
		listeners := b.listeners
		for _, s := range listeners {
			s.fn(e)
		}
	}
	b.pending = nil
}
