package observer

type EventType int

const (
	BroadcastEvent    EventType = 1
	SubscriptionEvent EventType = 2
)

type Event struct {
	E       EventType
	Message string
}

func NewBroadcastEvent(message string) Event {
	return Event{E: BroadcastEvent, Message: message}
}

type Observer interface {
	OnNotify(Event)
}

type Notifier interface {
	RegisterObserver(Observer)
	Notify(Event)
}
