package event

// EventType - тип события
type EventType string

// Event - событие симуляции. Data содержит одну из структур из types.go.
type Event struct {
	Type EventType
	Data any
}

// Listener - подписчик на события
type Listener interface {
	OnEvent(e Event)
}

// ListenerFunc позволяет подписать обычную функцию. Отписать её нельзя:
// функции не сравниваются.
type ListenerFunc func(e Event)

func (f ListenerFunc) OnEvent(e Event) { f(e) }

// Dispatcher рассылает события синхронно, в порядке подписки.
// Подписчики вызываются внутри шага и не должны менять мир.
type Dispatcher struct {
	listeners map[EventType][]Listener
	all       []Listener
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe - подписка на один тип события
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// SubscribeAll подписывает на все типы сразу (логирование, телеметрия).
func (d *Dispatcher) SubscribeAll(listener Listener) {
	d.all = append(d.all, listener)
}

func (d *Dispatcher) Unsubscribe(eventType EventType, listener Listener) {
	listeners := d.listeners[eventType]
	for i, l := range listeners {
		if l == listener {
			d.listeners[eventType] = append(listeners[:i:i], listeners[i+1:]...)
			return
		}
	}
}

func (d *Dispatcher) Dispatch(e Event) {
	for _, l := range d.listeners[e.Type] {
		l.OnEvent(e)
	}
	for _, l := range d.all {
		l.OnEvent(e)
	}
}
