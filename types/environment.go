package types

// Environment the agent acts in
type Environment interface {
	// Reset called at the start of each episode
	Reset() State
	// Step applies the action, returns the next state and the reward for the step.
	// Every action is valid in every state.
	Step(Action) (State, float64)
}

// State of the system that RL policies observe
type State interface {
	// Indexed by the Hash
	// Should be deterministic
	Hash() string
	// Dense index of the state, used as a row of tabular policies
	Index() int
	// Actions possible from the state
	Actions() []Action
}

// And Action that RL policy can take
type Action interface {
	// Should be deterministic
	Hash() string
	// Dense index of the action, used as a column of tabular policies
	Index() int
}
