package analyzer

// EventType defines the type of event.
type EventType string

const (
	EventAnalysisCompleted EventType = "analysis_completed"
	EventCrumbsGenerated   EventType = "crumbs_generated"
	EventContributionMade  EventType = "contribution_made"
	EventSelfExamined      EventType = "self_examined"
)

// Event represents something that happened during analysis.
type Event struct {
	Type    EventType `json:"type"`
	Payload any       `json:"payload,omitempty"`
}

// EventBus allows publishing and subscribing to analyzer events.
type EventBus struct {
	subscribers []chan<- Event
}

// NewEventBus creates a new event bus.
func NewEventBus() *EventBus {
	return &EventBus{
		subscribers: make([]chan<- Event, 0),
	}
}

// Subscribe adds a subscriber to receive events.
func (eb *EventBus) Subscribe(ch chan<- Event) {
	eb.subscribers = append(eb.subscribers, ch)
}

// Publish sends an event to all subscribers.
func (eb *EventBus) Publish(event Event) {
	for _, ch := range eb.subscribers {
		select {
		case ch <- event:
		default:
			// Subscriber is slow, skip
		}
	}
}
