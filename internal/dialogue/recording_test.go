package dialogue

import (
	"testing"

	"github.com/m3rciful/dongibot/core/telegram/state"
)

func TestRecordingHappyPath(t *testing.T) {
	f := NewFlow(state.NewMemoryManager())
	const user = int64(10)

	if got := f.Begin(user); got != OutcomeAskPayer {
		t.Fatalf("Begin = %v, want OutcomeAskPayer", got)
	}
	if got := f.SelectPayer(user, "Ali"); got != OutcomeAskAmount {
		t.Fatalf("SelectPayer = %v, want OutcomeAskAmount", got)
	}
	if got := f.EnterAmount(user, "12.5"); got != OutcomeAskDescription {
		t.Fatalf("EnterAmount = %v, want OutcomeAskDescription", got)
	}

	draft, outcome := f.EnterDescription(user, " dinner ")
	if outcome != OutcomeCommitted {
		t.Fatalf("EnterDescription outcome = %v, want OutcomeCommitted", outcome)
	}
	if draft.Payer != "Ali" || draft.Amount != 12.5 || draft.Description != "dinner" {
		t.Fatalf("draft = %+v", draft)
	}
	if f.InProgress(user) {
		t.Fatal("session must be cleared after commit")
	}
}

func TestRecordingRetriesInvalidAmount(t *testing.T) {
	f := NewFlow(state.NewMemoryManager())
	const user = int64(10)

	f.Begin(user)
	f.SelectPayer(user, "Ali")

	if got := f.EnterAmount(user, "abc"); got != OutcomeRetryAmount {
		t.Fatalf("invalid input = %v, want OutcomeRetryAmount", got)
	}
	if got := f.Step(user); got != StateAwaitingAmount {
		t.Fatalf("state after retry = %v, want StateAwaitingAmount", got)
	}
	if got := f.EnterAmount(user, "12.5"); got != OutcomeAskDescription {
		t.Fatalf("valid input after retry = %v, want OutcomeAskDescription", got)
	}
}

func TestRecordingCancel(t *testing.T) {
	f := NewFlow(state.NewMemoryManager())
	const user = int64(10)

	if got := f.Cancel(user); got != OutcomeIdle {
		t.Fatalf("idle cancel = %v, want OutcomeIdle", got)
	}

	f.Begin(user)
	f.SelectPayer(user, "Ali")
	if got := f.Cancel(user); got != OutcomeCancelled {
		t.Fatalf("cancel = %v, want OutcomeCancelled", got)
	}
	if f.InProgress(user) {
		t.Fatal("cancel must clear the session")
	}

	// a fresh dialogue starts clean after cancelling
	f.Begin(user)
	if _, got := f.EnterDescription(user, "x"); got != OutcomeIdle {
		t.Fatalf("out-of-order step = %v, want OutcomeIdle", got)
	}
}

func TestRecordingStepsRequireProperState(t *testing.T) {
	f := NewFlow(state.NewMemoryManager())
	const user = int64(10)

	if got := f.SelectPayer(user, "Ali"); got != OutcomeIdle {
		t.Fatalf("SelectPayer without Begin = %v, want OutcomeIdle", got)
	}
	if got := f.EnterAmount(user, "5"); got != OutcomeIdle {
		t.Fatalf("EnterAmount without Begin = %v, want OutcomeIdle", got)
	}

	f.Begin(user)
	if got := f.SelectPayer(user, "  "); got != OutcomeAskPayer {
		t.Fatalf("blank payer = %v, want OutcomeAskPayer", got)
	}

	users := []int64{10, 11}
	f.Begin(users[1])
	f.SelectPayer(users[1], "Reza")
	// user 10 is still picking a payer, user 11 is on the amount step
	if got := f.Step(users[0]); got != StateAwaitingPayer {
		t.Fatalf("user 10 state = %v, want StateAwaitingPayer", got)
	}
	if got := f.Step(users[1]); got != StateAwaitingAmount {
		t.Fatalf("user 11 state = %v, want StateAwaitingAmount", got)
	}
}
