package domain

// OrderStatus is the five-value order lifecycle. The happy path is linear
// (PENDING → REVIEWED → ACCEPTED → COMPLETED); CANCELLED is reachable from
// any non-terminal state. Backward moves are never allowed.
type OrderStatus string

const (
	StatusPending   OrderStatus = "PENDING"
	StatusReviewed  OrderStatus = "REVIEWED"
	StatusAccepted  OrderStatus = "ACCEPTED"
	StatusCompleted OrderStatus = "COMPLETED"
	StatusCancelled OrderStatus = "CANCELLED"
)

var orderTransitions = map[OrderStatus][]OrderStatus{
	StatusPending:   {StatusReviewed, StatusCancelled},
	StatusReviewed:  {StatusAccepted, StatusCancelled},
	StatusAccepted:  {StatusCompleted, StatusCancelled},
	StatusCompleted: {},
	StatusCancelled: {},
}

func (s OrderStatus) Valid() bool {
	_, ok := orderTransitions[s]
	return ok
}

func (s OrderStatus) Terminal() bool {
	next, ok := orderTransitions[s]
	return ok && len(next) == 0
}

// CanTransitionTo reports whether target is a legal next state.
func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	for _, t := range orderTransitions[s] {
		if t == target {
			return true
		}
	}
	return false
}
