package input

// Handler receives events of one kind.
type Handler func(*Event)

// Source delivers events to subscribed handlers.
type Source interface {
	Subscribe(kind Kind, h Handler) Subscription
}

// Subscription is returned by Subscribe; Remove unsubscribes.
type Subscription struct {
	remove func()
}

// Remove unsubscribes the handler. It is safe to call more than once.
func (s Subscription) Remove() {
	if s.remove != nil {
		s.remove()
	}
}

type entry struct {
	id uint64
	h  Handler
}

// Dispatcher is a Source fed by the host. Handlers run in subscription
// order until one stops propagation.
type Dispatcher struct {
	handlers map[Kind][]entry
	nextID   uint64
}

var _ Source = (*Dispatcher)(nil)

func NewDispatcher() *Dispatcher {
	return &Dispatcher{handlers: map[Kind][]entry{}}
}

func (d *Dispatcher) Subscribe(kind Kind, h Handler) Subscription {
	d.nextID++
	id := d.nextID
	d.handlers[kind] = append(d.handlers[kind], entry{id: id, h: h})
	return Subscription{remove: func() { d.remove(kind, id) }}
}

func (d *Dispatcher) remove(kind Kind, id uint64) {
	list := d.handlers[kind]
	for i, e := range list {
		if e.id != id {
			continue
		}
		// Copy so an in-flight Dispatch keeps its snapshot.
		next := make([]entry, 0, len(list)-1)
		next = append(next, list[:i]...)
		next = append(next, list[i+1:]...)
		if len(next) == 0 {
			delete(d.handlers, kind)
		} else {
			d.handlers[kind] = next
		}
		return
	}
}

// Dispatch delivers ev and returns the number of handlers that ran.
func (d *Dispatcher) Dispatch(ev *Event) int {
	n := 0
	for _, e := range d.handlers[ev.Kind] {
		if ev.PropagationStopped() {
			break
		}
		e.h(ev)
		n++
	}
	return n
}

// Len returns the number of handlers subscribed to kind.
func (d *Dispatcher) Len(kind Kind) int {
	return len(d.handlers[kind])
}
