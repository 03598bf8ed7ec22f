package service

import (
	"errors"
	"sync"
)

var ErrBusy = errors.New("request already in progress")

// Action names used with Inflight.
const (
	ActionAnalyze  = "analyze"
	ActionFeedback = "feedback"
	ActionRetrain  = "retrain"
	ActionLogin    = "login"
)

// Inflight keeps one browser from running two requests of the same action at
// once. This replaces disabling the button while a request is pending.
type Inflight struct {
	mu   sync.Mutex
	busy map[string]struct{}
}

func NewInflight() *Inflight {
	return &Inflight{busy: make(map[string]struct{})}
}

// Acquire claims the slot or returns ErrBusy. The returned release must be
// called exactly once, usually deferred.
func (g *Inflight) Acquire(browserID, action string) (func(), error) {
	key := browserID + "/" + action
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.busy[key]; ok {
		return nil, ErrBusy
	}
	g.busy[key] = struct{}{}
	return func() {
		g.mu.Lock()
		delete(g.busy, key)
		g.mu.Unlock()
	}, nil
}
