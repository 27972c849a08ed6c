package types

type AgentConfig struct {
	Horizon     int
	Policy      Policy
	Environment Environment
	Schedule    Schedule
}

// transition waiting for the next state before the policy can learn from it
type transition struct {
	state  State
	action Action
	reward float64
}

// RL Agent configured with the corresponding
// policy and environment
//
// The agent holds at most one pending transition. The policy update for a step
// happens once the following state has been observed.
type Agent struct {
	config      *AgentConfig
	policy      Policy
	environment Environment
	pending     *transition
}

// Instantiates a new Agent
func NewAgent(config *AgentConfig) *Agent {
	return &Agent{
		config:      config,
		policy:      config.Policy,
		environment: config.Environment,
	}
}

// Pending reports whether a transition is waiting for its next state
func (a *Agent) Pending() bool {
	return a.pending != nil
}

// Observe completes the pending transition, if any, with the observed state
func (a *Agent) Observe(state State) {
	if a.pending == nil {
		return
	}
	a.policy.Update(a.pending.state, a.pending.action, a.pending.reward, state)
	a.pending = nil
}

// Act chooses the action for the state and keeps it pending until the next observation
func (a *Agent) Act(step int, state State, epsilon float64) Action {
	action := a.policy.NextAction(step, state, state.Actions(), epsilon)
	a.pending = &transition{state: state, action: action}
	return action
}

// Reward records the reward of the pending action
func (a *Agent) Reward(reward float64) {
	if a.pending != nil {
		a.pending.reward = reward
	}
}

// Finish applies the last update of the episode and drops the per-episode state.
// The horizon only cuts the episode, so the final state is still bootstrapped from.
func (a *Agent) Finish(state State) {
	a.Observe(state)
	a.pending = nil
}

// run a single episode and return the resulting trace
func (a *Agent) runEpisode(episode int) *Trace {
	state := a.environment.Reset()
	trace := NewTrace()
	epsilon := 0.0
	if a.config.Schedule != nil {
		epsilon = a.config.Schedule.Rate(episode)
	}

	for i := 0; i < a.config.Horizon; i++ {
		a.Observe(state)
		nextAction := a.Act(i, state, epsilon)
		nextState, reward := a.environment.Step(nextAction)
		a.Reward(reward)

		trace.Append(i, state, nextAction, reward, nextState)
		state = nextState
	}
	a.Finish(state)

	return trace
}
