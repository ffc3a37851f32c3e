// Package checkout drives the four-step order acquisition flow:
// configure -> account -> payment -> review. Guards are pure functions of
// the session fields and an explicitly injected AuthState; nothing here
// reaches into ambient request context or performs I/O.
package checkout

import (
	"errors"

	"hostlane/pkg/utils"
)

type Step int

const (
	StepConfigure Step = iota
	StepAccount
	StepPayment
	StepReview
)

func (s Step) String() string {
	switch s {
	case StepConfigure:
		return "configure"
	case StepAccount:
		return "account"
	case StepPayment:
		return "payment"
	case StepReview:
		return "review"
	}
	return "unknown"
}

var (
	ErrAuthRequired = errors.New("authentication required")
	ErrForwardJump  = errors.New("cannot jump forward past unvisited steps")
	ErrTerminalStep = errors.New("review is the final step")
)

// AuthState is passed into every guard so the flow never depends on
// ambient session state; losing authentication between steps is visible
// on the next guard check.
type AuthState struct {
	Authenticated bool
	AccountID     string
}

type PlanInfo struct {
	ID         string
	Name       string
	PriceMinor int64
}

type Session struct {
	Plan PlanInfo

	Location         string
	PromoCode        string
	DiscountMinor    int64
	PaymentMethod    string
	PaymentProofURL  string
	PaymentProofName string

	current Step
}

func NewSession(plan PlanInfo) *Session {
	return &Session{Plan: plan, current: StepConfigure}
}

func (s *Session) Current() Step { return s.current }

// Next advances one step if the current step's exit guard passes.
// Leaving payment re-checks authentication: if it was lost the session
// reverts to the account step instead of merely reporting an error.
func (s *Session) Next(auth AuthState) error {
	switch s.current {
	case StepConfigure:
		s.current = StepAccount
		return nil
	case StepAccount:
		if !auth.Authenticated {
			return ErrAuthRequired
		}
		s.current = StepPayment
		return nil
	case StepPayment:
		if !auth.Authenticated {
			s.current = StepAccount
			return ErrAuthRequired
		}
		if s.PaymentMethod == "" || s.PaymentProofURL == "" {
			return utils.ErrPaymentIncomplete
		}
		s.current = StepReview
		return nil
	default:
		return ErrTerminalStep
	}
}

// Previous moves one step back unconditionally.
func (s *Session) Previous() {
	if s.current > StepConfigure {
		s.current--
	}
}

// Jump moves directly to an earlier step; forward jumps are rejected.
func (s *Session) Jump(step Step) error {
	if step > s.current {
		return ErrForwardJump
	}
	s.current = step
	return nil
}

func (s *Session) ApplyPromo(code string, discountMinor int64) {
	if discountMinor > s.Plan.PriceMinor {
		discountMinor = s.Plan.PriceMinor
	}
	s.PromoCode = code
	s.DiscountMinor = discountMinor
}

func (s *Session) ClearPromo() {
	s.PromoCode = ""
	s.DiscountMinor = 0
}

func (s *Session) Subtotal() int64 { return s.Plan.PriceMinor }

func (s *Session) Total() int64 {
	return utils.OrderTotal(s.Plan.PriceMinor, s.DiscountMinor)
}

// SubmitCheck verifies the four submission conditions. On failure it
// returns the earliest step owning the missing field together with the
// reason; callers must issue no order write and navigate the user there.
func (s *Session) SubmitCheck(auth AuthState) (Step, error) {
	if s.Location == "" {
		return StepConfigure, utils.ErrLocationRequired
	}
	if !auth.Authenticated {
		return StepAccount, ErrAuthRequired
	}
	if s.PaymentMethod == "" || s.PaymentProofURL == "" {
		return StepPayment, utils.ErrPaymentIncomplete
	}
	return StepReview, nil
}
