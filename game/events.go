package game

// Engine events are queued at the transition that causes them and delivered
// in order by Dispatch, which the simulation runs as the last stage of each
// step. Consumers must treat rotation-completed as the signal that agent
// positions and face labels are trustworthy again.

type EngineEventKind int

const (
	EngineEventRotationStarted EngineEventKind = iota
	EngineEventRotationCompleted
	EngineEventFaceChanged
)

type EngineEvent struct {
	Kind      EngineEventKind
	Direction RotationDirection // set for rotation-started
	NewFace   FaceID            // set for face-changed
}

type RotationStartedHandler func(direction RotationDirection)
type RotationCompletedHandler func()
type FaceChangedHandler func(newFace FaceID)

// Notifier is the explicit registration point for rotation lifecycle
// callbacks. No global event state, the owner hands it to whoever needs it.
type Notifier struct {
	started     []RotationStartedHandler
	completed   []RotationCompletedHandler
	faceChanged []FaceChangedHandler
	queue       []EngineEvent
}

func NewNotifier() *Notifier {
	return &Notifier{}
}

func (n *Notifier) OnRotationStarted(handler RotationStartedHandler) {
	n.started = append(n.started, handler)
}

func (n *Notifier) OnRotationCompleted(handler RotationCompletedHandler) {
	n.completed = append(n.completed, handler)
}

func (n *Notifier) OnFaceChanged(handler FaceChangedHandler) {
	n.faceChanged = append(n.faceChanged, handler)
}

func (n *Notifier) QueueRotationStarted(direction RotationDirection) {
	n.queue = append(n.queue, EngineEvent{Kind: EngineEventRotationStarted, Direction: direction})
}

func (n *Notifier) QueueRotationCompleted() {
	n.queue = append(n.queue, EngineEvent{Kind: EngineEventRotationCompleted})
}

func (n *Notifier) QueueFaceChanged(newFace FaceID) {
	n.queue = append(n.queue, EngineEvent{Kind: EngineEventFaceChanged, NewFace: newFace})
}

func (n *Notifier) Pending() int {
	return len(n.queue)
}

// Dispatch drains the queue in emission order. Handlers registered for the
// same event run in registration order.
func (n *Notifier) Dispatch() {
	for len(n.queue) > 0 {
		event := n.queue[0]
		n.queue = n.queue[1:]
		switch event.Kind {
		case EngineEventRotationStarted:
			for _, handler := range n.started {
				handler(event.Direction)
			}
		case EngineEventRotationCompleted:
			for _, handler := range n.completed {
				handler()
			}
		case EngineEventFaceChanged:
			for _, handler := range n.faceChanged {
				handler(event.NewFace)
			}
		}
	}
}
