package bookings

// Status is the lifecycle stage of a booking.
type Status string

const (
	StatusPending     Status = "pending"
	StatusAdvancePaid Status = "advance_paid"
	StatusConfirmed   Status = "confirmed"
	StatusActive      Status = "active"
	StatusCompleted   Status = "completed"
	StatusCancelled   Status = "cancelled"
)

var validTransitions = map[Status][]Status{
	StatusPending:     {StatusAdvancePaid, StatusCancelled},
	StatusAdvancePaid: {StatusConfirmed, StatusCancelled},
	StatusConfirmed:   {StatusActive, StatusCancelled},
	StatusActive:      {StatusCompleted},
	StatusCompleted:   {},
	StatusCancelled:   {},
}

func (s Status) IsValid() bool {
	_, ok := validTransitions[s]
	return ok
}

// CanTransitionTo allows listed moves and staying in a non-terminal state.
func (s Status) CanTransitionTo(target Status) bool {
	allowed, ok := validTransitions[s]
	if !ok {
		return false
	}
	if s == target {
		return len(allowed) > 0
	}
	for _, t := range allowed {
		if t == target {
			return true
		}
	}
	return false
}

func (s Status) IsTerminal() bool {
	allowed, ok := validTransitions[s]
	if !ok {
		return true
	}
	return len(allowed) == 0
}
