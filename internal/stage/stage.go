// Package stage implements the proposal lifecycle: a fixed, totally
// ordered sequence of seven stages with per-stage date stamping.
package stage

import (
	"github.com/ptran/tracker/internal/apperr"
	"github.com/ptran/tracker/internal/model"
)

// Order is the proposal lifecycle from initial to terminal stage.
var Order = []model.Stage{
	model.StageDraft,
	model.StageSentToClient,
	model.StageClientReview,
	model.StageNegotiation,
	model.StageRevision,
	model.StageApproved,
	model.StageContractSigned,
}

// indexOf gives O(1) position lookup into Order.
var indexOf = func() map[model.Stage]int {
	m := make(map[model.Stage]int, len(Order))
	for i, s := range Order {
		m[s] = i
	}
	return m
}()

// dateOf maps each stage to the proposal field recording when that
// stage was entered. The mapping is explicit: stage names and field
// names are not mechanically related (sent_to_client records into
// sent_date), so deriving one from the other is never safe.
var dateOf = map[model.Stage]func(*model.Proposal) **model.Date{
	model.StageDraft:          func(p *model.Proposal) **model.Date { return &p.DraftDate },
	model.StageSentToClient:   func(p *model.Proposal) **model.Date { return &p.SentDate },
	model.StageClientReview:   func(p *model.Proposal) **model.Date { return &p.ReviewDate },
	model.StageNegotiation:    func(p *model.Proposal) **model.Date { return &p.NegotiationDate },
	model.StageRevision:       func(p *model.Proposal) **model.Date { return &p.RevisionDate },
	model.StageApproved:       func(p *model.Proposal) **model.Date { return &p.ApprovalDate },
	model.StageContractSigned: func(p *model.Proposal) **model.Date { return &p.SignedDate },
}

// Index returns the position of s in Order, or -1 if s is not a known
// stage (possible only for values that bypassed validation).
func Index(s model.Stage) int {
	if i, ok := indexOf[s]; ok {
		return i
	}
	return -1
}

// IsTerminal reports whether s is the final stage.
func IsTerminal(s model.Stage) bool {
	return s == model.StageContractSigned
}

// Next returns the stage after s in Order. ok is false when s is the
// terminal stage or unknown.
func Next(s model.Stage) (next model.Stage, ok bool) {
	i := Index(s)
	if i < 0 || i+1 >= len(Order) {
		return "", false
	}
	return Order[i+1], true
}

// DateEntered returns the date recorded for entering stage s, or nil.
func DateEntered(p *model.Proposal, s model.Stage) *model.Date {
	get, ok := dateOf[s]
	if !ok {
		return nil
	}
	return *get(p)
}

// SetDateEntered records d as the date stage s was entered.
func SetDateEntered(p *model.Proposal, s model.Stage, d model.Date) {
	if set, ok := dateOf[s]; ok {
		*set(p) = &d
	}
}

// Advance moves p to the next stage in Order and stamps that stage's
// date with today, leaving the other six date fields untouched. It
// returns the stage entered. Advancing from the terminal stage fails
// with an invalid-transition error.
//
// This is the only sanctioned transition; arbitrary stage assignment
// (including backward jumps) remains available through the general
// update path as a correction escape hatch.
func Advance(p *model.Proposal, today model.Date) (model.Stage, error) {
	next, ok := Next(p.Stage)
	if !ok {
		return "", apperr.NewInvalidTransition(string(p.Stage), "no next stage")
	}
	p.Stage = next
	SetDateEntered(p, next, today)
	return next, nil
}

// StepState classifies a stage relative to a proposal's current stage.
type StepState int

const (
	StepCompleted StepState = iota
	StepCurrent
	StepUpcoming
)

// Step is one entry of the progress read model.
type Step struct {
	Stage model.Stage
	State StepState
}

// Progress returns one Step per stage in Order: stages before current
// are completed, current is current, and the rest are upcoming.
func Progress(current model.Stage) []Step {
	cur := Index(current)
	steps := make([]Step, len(Order))
	for i, s := range Order {
		state := StepUpcoming
		switch {
		case i < cur:
			state = StepCompleted
		case i == cur:
			state = StepCurrent
		}
		steps[i] = Step{Stage: s, State: state}
	}
	return steps
}
