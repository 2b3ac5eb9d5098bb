package env

import (
	"fmt"

	"github.com/gymnarium/visualisers-base/internal/input"
)

// State is an opaque environment observation. Environments and agents
// agree on its shape out of band.
type State []float64

// Action is an opaque agent decision.
type Action []float64

// Agent acts in an environment.
type Agent interface {
	// Reseed reinitialises the agent's randomness. A nil seed asks for a
	// fresh arbitrary seed.
	Reseed(seed []byte) error
	// Reset prepares the agent for a new episode.
	Reset() error
	ChooseAction(state State) (Action, error)
	ProcessReward(oldState, newState State, reward float64, done bool) error
	Close() error
}

// ToActionMapper turns buffered input events into an action.
type ToActionMapper interface {
	Map(events []input.Event) (Action, error)
}

// ToActionMapperFunc adapts a function to the ToActionMapper interface.
type ToActionMapperFunc func(events []input.Event) (Action, error)

func (f ToActionMapperFunc) Map(events []input.Event) (Action, error) {
	return f(events)
}

// InputAgent is an Agent driven by a human at an input device: it drains
// an input provider each step and maps the events to an action.
type InputAgent struct {
	provider input.Provider
	mapper   ToActionMapper
}

func NewInputAgent(provider input.Provider, mapper ToActionMapper) *InputAgent {
	return &InputAgent{provider: provider, mapper: mapper}
}

func (a *InputAgent) Reseed(seed []byte) error {
	return nil
}

// Reset discards any events buffered before the new episode.
func (a *InputAgent) Reset() error {
	a.provider.Clear()
	return nil
}

func (a *InputAgent) ChooseAction(state State) (Action, error) {
	action, err := a.mapper.Map(a.provider.PopAll())
	if err != nil {
		return nil, fmt.Errorf("map input to action: %w", err)
	}
	return action, nil
}

func (a *InputAgent) ProcessReward(oldState, newState State, reward float64, done bool) error {
	return nil
}

func (a *InputAgent) Close() error {
	return nil
}
