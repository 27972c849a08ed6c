package types

import (
	"strconv"
	"testing"
)

type counterState int

func (s counterState) Hash() string { return strconv.Itoa(int(s)) }

func (s counterState) Index() int { return int(s) }

func (s counterState) Actions() []Action { return []Action{incAction{}} }

type incAction struct{}

func (incAction) Hash() string { return "inc" }

func (incAction) Index() int { return 0 }

// counterEnv counts up from zero, the reward of a step is the state it started from
type counterEnv struct {
	cur    int
	resets int
}

func (c *counterEnv) Reset() State {
	c.cur = 0
	c.resets++
	return counterState(0)
}

func (c *counterEnv) Step(Action) (State, float64) {
	reward := float64(c.cur)
	c.cur++
	return counterState(c.cur), reward
}

type update struct {
	state, next int
	reward      float64
}

type recordingPolicy struct {
	updates  []update
	epsilons []float64
}

func (r *recordingPolicy) NextAction(_ int, _ State, actions []Action, epsilon float64) Action {
	r.epsilons = append(r.epsilons, epsilon)
	return actions[0]
}

func (r *recordingPolicy) Update(state State, _ Action, reward float64, next State) {
	r.updates = append(r.updates, update{state: state.Index(), next: next.Index(), reward: reward})
}

type episodeSchedule struct{}

func (episodeSchedule) Rate(episode int) float64 { return float64(episode) }

func TestAgentUpdatesOncePerStep(t *testing.T) {
	policy := &recordingPolicy{}
	env := &counterEnv{}
	agent := NewAgent(&AgentConfig{Horizon: 4, Policy: policy, Environment: env, Schedule: episodeSchedule{}})

	trace := agent.runEpisode(3)
	if trace.Len() != 4 {
		t.Fatalf("expected 4 steps, got %d", trace.Len())
	}
	if len(policy.updates) != 4 {
		t.Fatalf("expected 4 updates, got %d", len(policy.updates))
	}
	for i, u := range policy.updates {
		expected := update{state: i, next: i + 1, reward: float64(i)}
		if u != expected {
			t.Errorf("update %d is %+v, expected %+v", i, u, expected)
		}
	}
	for _, e := range policy.epsilons {
		if e != 3 {
			t.Errorf("expected the rate of episode 3, got %v", e)
		}
	}
	if agent.Pending() {
		t.Errorf("transition left pending after the episode")
	}
	if trace.TotalReward() != 0+1+2+3 {
		t.Errorf("unexpected total reward %v", trace.TotalReward())
	}
}

func TestAgentStateMachine(t *testing.T) {
	policy := &recordingPolicy{}
	agent := NewAgent(&AgentConfig{Horizon: 1, Policy: policy, Environment: &counterEnv{}})

	agent.Observe(counterState(0))
	if len(policy.updates) != 0 || agent.Pending() {
		t.Fatalf("first observation should not update")
	}
	agent.Act(0, counterState(0), 0)
	if !agent.Pending() {
		t.Fatalf("action should be pending")
	}
	agent.Reward(7)
	agent.Observe(counterState(5))
	if len(policy.updates) != 1 || policy.updates[0] != (update{state: 0, next: 5, reward: 7}) {
		t.Fatalf("unexpected updates %+v", policy.updates)
	}
	if agent.Pending() {
		t.Errorf("transition still pending after the update")
	}
	agent.Finish(counterState(6))
	if len(policy.updates) != 1 {
		t.Errorf("finish without a pending transition should not update")
	}
}
