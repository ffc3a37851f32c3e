package checkout

import (
	"errors"
	"testing"

	"hostlane/pkg/utils"
)

func testPlan() PlanInfo {
	return PlanInfo{ID: "plan-1", Name: "RDP Basic", PriceMinor: 5000}
}

func authed() AuthState {
	return AuthState{Authenticated: true, AccountID: "acc-1"}
}

func anonymous() AuthState {
	return AuthState{}
}

func TestConfigureAlwaysAdvances(t *testing.T) {
	s := NewSession(testPlan())

	if err := s.Next(anonymous()); err != nil {
		t.Fatalf("configure exit should be unconditional, got %v", err)
	}
	if s.Current() != StepAccount {
		t.Fatalf("expected account step, got %s", s.Current())
	}
}

func TestAccountBlocksWithoutAuth(t *testing.T) {
	s := NewSession(testPlan())
	_ = s.Next(anonymous())

	if err := s.Next(anonymous()); !errors.Is(err, ErrAuthRequired) {
		t.Fatalf("expected ErrAuthRequired, got %v", err)
	}
	if s.Current() != StepAccount {
		t.Fatalf("failed guard must not move the step, got %s", s.Current())
	}

	if err := s.Next(authed()); err != nil {
		t.Fatalf("authenticated exit should pass, got %v", err)
	}
	if s.Current() != StepPayment {
		t.Fatalf("expected payment step, got %s", s.Current())
	}
}

func TestPaymentBlocksWithoutMethodAndProof(t *testing.T) {
	cases := []struct {
		name   string
		method string
		proof  string
	}{
		{"neither", "", ""},
		{"method only", "bank_transfer", ""},
		{"proof only", "", "https://blob/proof.png"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := NewSession(testPlan())
			_ = s.Next(authed())
			_ = s.Next(authed())
			s.PaymentMethod = tc.method
			s.PaymentProofURL = tc.proof

			if err := s.Next(authed()); !errors.Is(err, utils.ErrPaymentIncomplete) {
				t.Fatalf("expected ErrPaymentIncomplete, got %v", err)
			}
			if s.Current() != StepPayment {
				t.Fatalf("currentStep must be unchanged, got %s", s.Current())
			}
		})
	}
}

func TestPaymentRevertsToAccountOnAuthLoss(t *testing.T) {
	s := NewSession(testPlan())
	_ = s.Next(authed())
	_ = s.Next(authed())
	s.PaymentMethod = "bank_transfer"
	s.PaymentProofURL = "https://blob/proof.png"

	if err := s.Next(anonymous()); !errors.Is(err, ErrAuthRequired) {
		t.Fatalf("expected ErrAuthRequired, got %v", err)
	}
	if s.Current() != StepAccount {
		t.Fatalf("auth loss must force the session back to account, got %s", s.Current())
	}
}

func TestFullFlowReachesReview(t *testing.T) {
	s := NewSession(testPlan())
	s.Location = "karachi"

	_ = s.Next(authed())
	_ = s.Next(authed())
	s.PaymentMethod = "bank_transfer"
	s.PaymentProofURL = "https://blob/proof.png"
	if err := s.Next(authed()); err != nil {
		t.Fatalf("complete payment step should advance, got %v", err)
	}
	if s.Current() != StepReview {
		t.Fatalf("expected review step, got %s", s.Current())
	}

	if err := s.Next(authed()); !errors.Is(err, ErrTerminalStep) {
		t.Fatalf("review is terminal, got %v", err)
	}
}

func TestPreviousAndJump(t *testing.T) {
	s := NewSession(testPlan())
	_ = s.Next(authed())
	_ = s.Next(authed())

	s.Previous()
	if s.Current() != StepAccount {
		t.Fatalf("expected account after previous, got %s", s.Current())
	}

	if err := s.Jump(StepConfigure); err != nil {
		t.Fatalf("backward jump must be allowed, got %v", err)
	}
	if s.Current() != StepConfigure {
		t.Fatalf("expected configure after jump, got %s", s.Current())
	}

	if err := s.Jump(StepPayment); !errors.Is(err, ErrForwardJump) {
		t.Fatalf("forward jump must be rejected, got %v", err)
	}

	s.Previous() // already at the first step
	if s.Current() != StepConfigure {
		t.Fatalf("previous at configure must stay put, got %s", s.Current())
	}
}

func TestSubmitCheckRoutesToFirstUnsatisfiedStep(t *testing.T) {
	full := func() *Session {
		s := NewSession(testPlan())
		s.Location = "lahore"
		s.PaymentMethod = "easypaisa"
		s.PaymentProofURL = "https://blob/proof.png"
		return s
	}

	t.Run("all satisfied", func(t *testing.T) {
		step, err := full().SubmitCheck(authed())
		if err != nil || step != StepReview {
			t.Fatalf("expected (review, nil), got (%s, %v)", step, err)
		}
	})

	t.Run("missing location", func(t *testing.T) {
		s := full()
		s.Location = ""
		step, err := s.SubmitCheck(authed())
		if step != StepConfigure || !errors.Is(err, utils.ErrLocationRequired) {
			t.Fatalf("expected (configure, ErrLocationRequired), got (%s, %v)", step, err)
		}
	})

	t.Run("not authenticated", func(t *testing.T) {
		step, err := full().SubmitCheck(anonymous())
		if step != StepAccount || !errors.Is(err, ErrAuthRequired) {
			t.Fatalf("expected (account, ErrAuthRequired), got (%s, %v)", step, err)
		}
	})

	t.Run("missing proof", func(t *testing.T) {
		s := full()
		s.PaymentProofURL = ""
		step, err := s.SubmitCheck(authed())
		if step != StepPayment || !errors.Is(err, utils.ErrPaymentIncomplete) {
			t.Fatalf("expected (payment, ErrPaymentIncomplete), got (%s, %v)", step, err)
		}
	})
}

func TestPromoAndTotals(t *testing.T) {
	s := NewSession(testPlan())

	discount := utils.DiscountAmount(s.Subtotal(), 10)
	s.ApplyPromo("SAVE10", discount)
	if s.DiscountMinor != 500 {
		t.Fatalf("expected discount 500, got %d", s.DiscountMinor)
	}
	if s.Total() != 4500 {
		t.Fatalf("expected total 4500, got %d", s.Total())
	}

	s.ClearPromo()
	if s.Total() != 5000 {
		t.Fatalf("cleared promo must restore full price, got %d", s.Total())
	}

	// Discount can never exceed the plan price.
	s.ApplyPromo("BIG", 99999)
	if s.DiscountMinor != 5000 || s.Total() != 0 {
		t.Fatalf("expected clamped discount 5000 and total 0, got %d / %d", s.DiscountMinor, s.Total())
	}
}
