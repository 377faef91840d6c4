package usecase

import (
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/rollcall/pkg/domain/model/errs"
)

type State string

const (
	StateIdle    State = "idle"
	StateRunning State = "running"
)

// coordinator allows one roll-call at a time within this process. It is
// not shared between instances.
type coordinator struct {
	mu    sync.Mutex
	state State
}

func newCoordinator() *coordinator {
	return &coordinator{state: StateIdle}
}

// acquire switches to running and returns the release function. It fails
// immediately when a roll-call is already running.
func (c *coordinator) acquire() (func(), error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == StateRunning {
		return nil, goerr.New("a roll-call is already running", goerr.T(errs.TagRollCallRunning))
	}
	c.state = StateRunning

	var once sync.Once
	return func() {
		once.Do(func() {
			c.mu.Lock()
			c.state = StateIdle
			c.mu.Unlock()
		})
	}, nil
}

func (c *coordinator) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// State returns the current coordinator state.
func (uc *UseCases) State() State {
	return uc.coordinator.State()
}
