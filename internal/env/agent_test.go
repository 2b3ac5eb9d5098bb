package env

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gymnarium/visualisers-base/internal/input"
)

func TestInputAgentMapsBufferedEvents(t *testing.T) {
	buffer := &input.Buffer{}
	buffer.Push(input.NewButtonEvent(input.ButtonArgs{
		State:  input.Press,
		Button: input.KeyboardButton(input.KeyLeft),
	}))
	buffer.Push(input.NewButtonEvent(input.ButtonArgs{
		State:  input.Press,
		Button: input.KeyboardButton(input.KeyRight),
	}))

	agent := NewInputAgent(buffer, ToActionMapperFunc(func(events []input.Event) (Action, error) {
		return Action{float64(len(events))}, nil
	}))

	action, err := agent.ChooseAction(State{0})
	require.NoError(t, err)
	assert.Equal(t, Action{2}, action)

	// The buffer was drained by the mapping.
	action, err = agent.ChooseAction(State{0})
	require.NoError(t, err)
	assert.Equal(t, Action{0}, action)
}

func TestInputAgentWrapsMapperError(t *testing.T) {
	mapErr := errors.New("no binding for event")
	agent := NewInputAgent(&input.Buffer{}, ToActionMapperFunc(func([]input.Event) (Action, error) {
		return nil, mapErr
	}))

	_, err := agent.ChooseAction(nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, mapErr)
}

func TestInputAgentResetClearsBuffer(t *testing.T) {
	buffer := &input.Buffer{}
	buffer.Push(input.NewTextEvent("stale"))

	agent := NewInputAgent(buffer, ToActionMapperFunc(func(events []input.Event) (Action, error) {
		return Action{float64(len(events))}, nil
	}))

	require.NoError(t, agent.Reset())
	assert.Equal(t, 0, buffer.Len())
}

func TestInputAgentLifecycleNoOps(t *testing.T) {
	agent := NewInputAgent(&input.Buffer{}, ToActionMapperFunc(func([]input.Event) (Action, error) {
		return nil, nil
	}))

	require.NoError(t, agent.Reseed(nil))
	require.NoError(t, agent.ProcessReward(nil, nil, 1, false))
	require.NoError(t, agent.Close())
}
