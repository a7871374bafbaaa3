package events

// Direction is the crossing direction a threshold watches.
type Direction string

const (
	Increasing Direction = "increasing"
	Decreasing Direction = "decreasing"
)

// Action is a simulation action an event can trigger.
type Action string

const (
	Pause   Action = "pause"
	Stop    Action = "stop"
	Message Action = "message"
)

// RepeatEach fires the threshold's single event on every crossing. It is the
// only repeat mode the format defines today.
const RepeatEach = "each"

// Event is one action attached to a threshold.
type Event struct {
	Action *Action
	Text   string
}

// Threshold fires its events when the watched value crosses Value in
// Direction. Nil optional fields mean "not declared".
type Threshold struct {
	Value     float64
	Direction *Direction
	Repeat    *string
	Interval  *string
	Events    []Event
}

// EffectiveDirection resolves an undeclared direction to Increasing.
func (t Threshold) EffectiveDirection() Direction {
	if t.Direction == nil {
		return Increasing
	}
	return *t.Direction
}

// EffectiveRepeat resolves an undeclared repeat mode to RepeatEach.
func (t Threshold) EffectiveRepeat() string {
	if t.Repeat == nil {
		return RepeatEach
	}
	return *t.Repeat
}

// Poster is an event poster: display bounds and its thresholds.
type Poster struct {
	Min        float64
	Max        float64
	Thresholds []Threshold
}
