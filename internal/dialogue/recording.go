// Package dialogue implements the multi-step expense recording conversation
// as an explicit state machine, independent of the transport.
package dialogue

import (
	"strings"

	"github.com/m3rciful/dongibot/core/telegram/state"
	"github.com/m3rciful/dongibot/internal/service"
)

// Recording dialogue states.
const (
	StateAwaitingPayer       state.State = "record_awaiting_payer"
	StateAwaitingAmount      state.State = "record_awaiting_amount"
	StateAwaitingDescription state.State = "record_awaiting_description"
)

// Scratch keys inside the per-user session.
const (
	keyPayer  = "payer_name"
	keyAmount = "amount"
)

// Outcome tells the caller what to show next.
type Outcome int

const (
	// OutcomeAskPayer means the payer keyboard should be shown.
	OutcomeAskPayer Outcome = iota
	// OutcomeAskAmount means the amount prompt should be shown.
	OutcomeAskAmount
	// OutcomeRetryAmount means the input was not a valid amount.
	OutcomeRetryAmount
	// OutcomeAskDescription means the description prompt should be shown.
	OutcomeAskDescription
	// OutcomeCommitted means a complete draft is ready to store.
	OutcomeCommitted
	// OutcomeCancelled means the dialogue was abandoned.
	OutcomeCancelled
	// OutcomeIdle means no dialogue is in progress for this user.
	OutcomeIdle
)

// Draft is a fully collected expense awaiting persistence.
type Draft struct {
	Payer       string
	Amount      float64
	Description string
}

// Flow drives the recording conversation over a session manager.
type Flow struct {
	states state.Manager
}

// NewFlow returns a recording flow backed by states.
func NewFlow(states state.Manager) *Flow {
	return &Flow{states: states}
}

// Begin starts a recording dialogue for the user, dropping any stale one.
func (f *Flow) Begin(userID int64) Outcome {
	f.states.Clear(userID)
	f.states.SetState(userID, StateAwaitingPayer)
	return OutcomeAskPayer
}

// SelectPayer records the chosen payer and advances to the amount step.
func (f *Flow) SelectPayer(userID int64, name string) Outcome {
	if f.states.GetState(userID) != StateAwaitingPayer {
		return OutcomeIdle
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return OutcomeAskPayer
	}
	f.states.SetTemp(userID, keyPayer, name)
	f.states.SetState(userID, StateAwaitingAmount)
	return OutcomeAskAmount
}

// EnterAmount parses the amount input. Invalid input keeps the state and
// asks again; valid input advances to the description step.
func (f *Flow) EnterAmount(userID int64, text string) Outcome {
	if f.states.GetState(userID) != StateAwaitingAmount {
		return OutcomeIdle
	}
	amount, err := service.ParseAmount(text)
	if err != nil {
		return OutcomeRetryAmount
	}
	f.states.SetTemp(userID, keyAmount, amount)
	f.states.SetState(userID, StateAwaitingDescription)
	return OutcomeAskDescription
}

// EnterDescription completes the dialogue and returns the collected draft.
// The session is cleared before returning.
func (f *Flow) EnterDescription(userID int64, text string) (Draft, Outcome) {
	if f.states.GetState(userID) != StateAwaitingDescription {
		return Draft{}, OutcomeIdle
	}

	payer, _ := f.states.GetTempString(userID, keyPayer)
	amount, _ := f.states.GetTempFloat64(userID, keyAmount)
	f.states.Clear(userID)

	if payer == "" || amount <= 0 {
		// scratch state went missing mid-dialogue, abandon cleanly
		return Draft{}, OutcomeCancelled
	}

	return Draft{
		Payer:       payer,
		Amount:      amount,
		Description: strings.TrimSpace(text),
	}, OutcomeCommitted
}

// Cancel abandons a dialogue in any state. Idle users stay idle.
func (f *Flow) Cancel(userID int64) Outcome {
	if !f.states.InProgress(userID) {
		return OutcomeIdle
	}
	f.states.Clear(userID)
	return OutcomeCancelled
}

// InProgress reports whether the user has an active recording dialogue.
func (f *Flow) InProgress(userID int64) bool {
	return f.states.InProgress(userID)
}

// Step returns the current dialogue state for the user.
func (f *Flow) Step(userID int64) state.State {
	return f.states.GetState(userID)
}
