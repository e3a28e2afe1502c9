package retry

// State is a snapshot of a retry session: the policy and the index of the attempt in flight.
//
// State is a value. Advancing it returns a new State and leaves the receiver untouched, so an old
// State can be held by a late callback without affecting the session.
type State struct {
	policy Policy
	try    int
}

// NewState returns the State of the first attempt of a session.
func NewState(policy Policy) State {
	return State{policy: policy}
}

func (s State) Policy() Policy {
	return s.policy
}

// Try returns the index of the current attempt. The first attempt has index 0.
func (s State) Try() int {
	return s.try
}

func (s State) NextTry() int {
	return s.try + 1
}

// RetriesLeft reports whether another attempt can be made after the current one.
func (s State) RetriesLeft() bool {
	return s.try < s.policy.maxRetries
}

func (s State) Advance() State {
	return State{policy: s.policy, try: s.try + 1}
}
