package state

import (
	"sync"

	tele "gopkg.in/telebot.v4"
)

var (
	fsmMu       sync.RWMutex
	fsmHandlers = map[State]tele.HandlerFunc{}
)

// RegisterHandler associates a state with its handler.
func RegisterHandler(st State, h tele.HandlerFunc) {
	if h == nil {
		return
	}
	fsmMu.Lock()
	defer fsmMu.Unlock()
	fsmHandlers[st] = h
}

func lookupHandler(st State) (tele.HandlerFunc, bool) {
	fsmMu.RLock()
	defer fsmMu.RUnlock()
	h, ok := fsmHandlers[st]
	return h, ok
}
