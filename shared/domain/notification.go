package domain

import "fmt"

// ProviderResult is the outcome of one outbound provider call.
type ProviderResult struct {
	OK         bool
	StatusCode int
	Body       []byte
}

// OutgoingEmail is what the email-send provider delivers.
type OutgoingEmail struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

type Outcome int

const (
	Accepted Outcome = iota
	Rejected
	UpstreamFailure
	InternalFailure
)

func (o Outcome) String() string {
	switch o {
	case Accepted:
		return "accepted"
	case Rejected:
		return "rejected"
	case UpstreamFailure:
		return "upstream_failure"
	case InternalFailure:
		return "internal_failure"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// DispatchState tracks a single submission through the gateway.
type DispatchState int

const (
	Received DispatchState = iota
	Validated
	RejectedState
	Dispatched
	Succeeded
	Failed
)

var dispatchStateNames = map[DispatchState]string{
	Received:      "received",
	Validated:     "validated",
	RejectedState: "rejected",
	Dispatched:    "dispatched",
	Succeeded:     "succeeded",
	Failed:        "failed",
}

func (s DispatchState) String() string {
	if name, ok := dispatchStateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("state(%d)", int(s))
}

var dispatchTransitions = map[DispatchState][]DispatchState{
	Received:   {Validated, RejectedState},
	Validated:  {Dispatched},
	Dispatched: {Succeeded, Failed},
}

// Terminal reports whether no further transition is possible.
func (s DispatchState) Terminal() bool {
	return len(dispatchTransitions[s]) == 0
}

// Next returns the new state, or an error if next is not reachable from s.
func (s DispatchState) Next(next DispatchState) (DispatchState, error) {
	for _, allowed := range dispatchTransitions[s] {
		if allowed == next {
			return next, nil
		}
	}
	return s, fmt.Errorf("illegal dispatch transition %s -> %s", s, next)
}
