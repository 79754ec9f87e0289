package ledger

import (
	"errors"
	"testing"
)

const (
	alice AccountID = "alice"
	bob   AccountID = "bob"
	carol AccountID = "carol"
	dave  AccountID = "dave"
	gov   AccountID = "governance"
)

// newTestState returns an initialized ledger: alice=100, bob=50, gov=0.
func newTestState(t *testing.T) *State {
	t.Helper()
	s := NewState()
	err := s.Init([]InitialAccount{
		{Account: alice, Balance: 100},
		{Account: bob, Balance: 50},
	}, gov, Metadata{})
	if err != nil {
		t.Fatalf("init failed: %v", err)
	}
	return s
}

func wantTransferData(t *testing.T, events []Event, topic string, from, to AccountID, amount uint64) {
	t.Helper()
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if events[0].Topic != topic {
		t.Errorf("expected topic %q, got %q", topic, events[0].Topic)
	}
	data, ok := events[0].Data.(TransferData)
	if !ok {
		t.Fatalf("expected TransferData payload, got %T", events[0].Data)
	}
	if data.From != from || data.To != to || data.Amount != amount {
		t.Errorf("expected (%s, %s, %d), got (%s, %s, %d)",
			from, to, amount, data.From, data.To, data.Amount)
	}
}

func TestInit(t *testing.T) {
	t.Run("SeedsBalancesAndSupply", func(t *testing.T) {
		s := newTestState(t)
		if got := s.TotalSupply(); got != 150 {
			t.Errorf("expected supply 150, got %d", got)
		}
		if got := s.BalanceOf(alice); got != 100 {
			t.Errorf("expected alice=100, got %d", got)
		}
		if got := s.Governance(); got != gov {
			t.Errorf("expected governance %q, got %q", gov, got)
		}
		if s.IsPaused() {
			t.Error("fresh ledger must not be paused")
		}
		if got := s.Symbol(); got != "EMT" {
			t.Errorf("expected default symbol EMT, got %q", got)
		}
	})

	t.Run("DuplicateIdentitiesSum", func(t *testing.T) {
		s := NewState()
		err := s.Init([]InitialAccount{
			{Account: alice, Balance: 30},
			{Account: alice, Balance: 70},
		}, gov, Metadata{})
		if err != nil {
			t.Fatalf("init failed: %v", err)
		}
		if got := s.BalanceOf(alice); got != 100 {
			t.Errorf("expected summed balance 100, got %d", got)
		}
		if got := s.TotalSupply(); got != 100 {
			t.Errorf("expected supply 100, got %d", got)
		}
	})

	t.Run("SecondInitRejected", func(t *testing.T) {
		s := newTestState(t)
		err := s.Init(nil, gov, Metadata{})
		if !errors.Is(err, ErrAlreadyInitialized) {
			t.Fatalf("expected ErrAlreadyInitialized, got %v", err)
		}
	})

	t.Run("SeedOverflowRejectedWithoutMutation", func(t *testing.T) {
		s := NewState()
		err := s.Init([]InitialAccount{
			{Account: alice, Balance: 1<<64 - 1},
			{Account: bob, Balance: 1},
		}, gov, Metadata{})
		if !errors.Is(err, ErrSupplyOverflow) {
			t.Fatalf("expected ErrSupplyOverflow, got %v", err)
		}
		if s.Initialized() {
			t.Error("failed init must leave the state uninitialized")
		}
		if got := s.BalanceOf(alice); got != 0 {
			t.Errorf("failed init must not seed balances, alice=%d", got)
		}
	})

	t.Run("OperationsBeforeInitRejected", func(t *testing.T) {
		s := NewState()
		if _, err := s.Transfer(alice, bob, 1); !errors.Is(err, ErrNotInitialized) {
			t.Errorf("transfer: expected ErrNotInitialized, got %v", err)
		}
		if _, err := s.Approve(alice, bob, 1); !errors.Is(err, ErrNotInitialized) {
			t.Errorf("approve: expected ErrNotInitialized, got %v", err)
		}
		if _, err := s.Mint(gov, alice, 1); !errors.Is(err, ErrNotInitialized) {
			t.Errorf("mint: expected ErrNotInitialized, got %v", err)
		}
	})

	t.Run("GovernanceMaterialized", func(t *testing.T) {
		s := newTestState(t)
		if _, ok := s.accounts[gov]; !ok {
			t.Error("governance account not materialized at init")
		}
	})
}

func TestTransfer(t *testing.T) {
	t.Run("MovesBalance", func(t *testing.T) {
		s := newTestState(t)
		events, err := s.Transfer(alice, bob, 30)
		if err != nil {
			t.Fatalf("transfer failed: %v", err)
		}
		if got := s.BalanceOf(alice); got != 70 {
			t.Errorf("expected alice=70, got %d", got)
		}
		if got := s.BalanceOf(bob); got != 80 {
			t.Errorf("expected bob=80, got %d", got)
		}
		if got := s.TotalSupply(); got != 150 {
			t.Errorf("supply must be conserved, got %d", got)
		}
		wantTransferData(t, events, TopicTransfer, alice, bob, 30)
	})

	t.Run("ImplicitReceiverAccount", func(t *testing.T) {
		s := newTestState(t)
		if _, err := s.Transfer(alice, dave, 10); err != nil {
			t.Fatalf("transfer to fresh account failed: %v", err)
		}
		if got := s.BalanceOf(dave); got != 10 {
			t.Errorf("expected dave=10, got %d", got)
		}
	})

	t.Run("InsufficientBalance", func(t *testing.T) {
		s := newTestState(t)
		if _, err := s.Transfer(bob, alice, 51); !errors.Is(err, ErrInsufficientBalance) {
			t.Fatalf("expected ErrInsufficientBalance, got %v", err)
		}
		if got := s.BalanceOf(bob); got != 50 {
			t.Errorf("failed transfer must not mutate, bob=%d", got)
		}
	})

	t.Run("ZeroAmountStillEmits", func(t *testing.T) {
		s := newTestState(t)
		events, err := s.Transfer(alice, bob, 0)
		if err != nil {
			t.Fatalf("zero transfer failed: %v", err)
		}
		wantTransferData(t, events, TopicTransfer, alice, bob, 0)
	})

	t.Run("SelfTransferKeepsBalance", func(t *testing.T) {
		s := newTestState(t)
		events, err := s.Transfer(alice, alice, 40)
		if err != nil {
			t.Fatalf("self transfer failed: %v", err)
		}
		if got := s.BalanceOf(alice); got != 100 {
			t.Errorf("self transfer must keep balance, alice=%d", got)
		}
		wantTransferData(t, events, TopicTransfer, alice, alice, 40)
	})

	t.Run("SelfTransferStillChecked", func(t *testing.T) {
		s := newTestState(t)
		if _, err := s.Freeze(gov, alice); err != nil {
			t.Fatalf("freeze failed: %v", err)
		}
		if _, err := s.Transfer(alice, alice, 1); !errors.Is(err, ErrFrozen) {
			t.Fatalf("expected ErrFrozen on frozen self transfer, got %v", err)
		}
	})
}

func TestApprove(t *testing.T) {
	t.Run("Overwrites", func(t *testing.T) {
		s := newTestState(t)
		if _, err := s.Approve(alice, carol, 40); err != nil {
			t.Fatalf("approve failed: %v", err)
		}
		if _, err := s.Approve(alice, carol, 15); err != nil {
			t.Fatalf("re-approve failed: %v", err)
		}
		if got := s.Allowance(alice, carol); got != 15 {
			t.Errorf("approve must replace, not accumulate: got %d", got)
		}
	})

	t.Run("AbsentAllowanceIsZero", func(t *testing.T) {
		s := newTestState(t)
		if got := s.Allowance(alice, dave); got != 0 {
			t.Errorf("expected 0, got %d", got)
		}
	})

	t.Run("EmitsEvent", func(t *testing.T) {
		s := newTestState(t)
		events, err := s.Approve(alice, carol, 40)
		if err != nil {
			t.Fatalf("approve failed: %v", err)
		}
		if len(events) != 1 || events[0].Topic != TopicApprove {
			t.Fatalf("expected one approve event, got %+v", events)
		}
		data := events[0].Data.(ApproveData)
		if data.Owner != alice || data.Spender != carol || data.Amount != 40 {
			t.Errorf("unexpected approve payload: %+v", data)
		}
	})

	t.Run("AllowedWhilePaused", func(t *testing.T) {
		s := newTestState(t)
		if _, err := s.TogglePause(gov); err != nil {
			t.Fatalf("pause failed: %v", err)
		}
		if _, err := s.Approve(alice, carol, 10); err != nil {
			t.Errorf("approve must not be gated by pause: %v", err)
		}
	})

	t.Run("AllowedWhileSanctioned", func(t *testing.T) {
		s := newTestState(t)
		if _, err := s.Block(gov, alice); err != nil {
			t.Fatalf("block failed: %v", err)
		}
		if _, err := s.Approve(alice, carol, 10); err != nil {
			t.Errorf("approve must not be gated by sanctions: %v", err)
		}
	})
}

func TestTransferFrom(t *testing.T) {
	t.Run("SpendsAllowance", func(t *testing.T) {
		s := newTestState(t)
		if _, err := s.Approve(alice, carol, 40); err != nil {
			t.Fatalf("approve failed: %v", err)
		}
		events, err := s.TransferFrom(carol, alice, dave, 40)
		if err != nil {
			t.Fatalf("transfer_from failed: %v", err)
		}
		if got := s.BalanceOf(alice); got != 60 {
			t.Errorf("expected alice=60, got %d", got)
		}
		if got := s.BalanceOf(dave); got != 40 {
			t.Errorf("expected dave=40, got %d", got)
		}
		if got := s.Allowance(alice, carol); got != 0 {
			t.Errorf("full allowance spend must leave 0, got %d", got)
		}
		data := events[0].Data.(TransferData)
		if data.Spender != carol {
			t.Errorf("expected spender carol in event, got %q", data.Spender)
		}
		wantTransferData(t, events, TopicTransfer, alice, dave, 40)
	})

	t.Run("PartialSpendDecrementsExactly", func(t *testing.T) {
		s := newTestState(t)
		if _, err := s.Approve(alice, carol, 40); err != nil {
			t.Fatalf("approve failed: %v", err)
		}
		if _, err := s.TransferFrom(carol, alice, dave, 25); err != nil {
			t.Fatalf("transfer_from failed: %v", err)
		}
		if got := s.Allowance(alice, carol); got != 15 {
			t.Errorf("expected allowance 15, got %d", got)
		}
	})

	t.Run("InsufficientAllowance", func(t *testing.T) {
		s := newTestState(t)
		if _, err := s.Approve(alice, carol, 10); err != nil {
			t.Fatalf("approve failed: %v", err)
		}
		if _, err := s.TransferFrom(carol, alice, dave, 11); !errors.Is(err, ErrInsufficientAllowance) {
			t.Fatalf("expected ErrInsufficientAllowance, got %v", err)
		}
		if got := s.Allowance(alice, carol); got != 10 {
			t.Errorf("failed transfer_from must not touch allowance, got %d", got)
		}
	})

	t.Run("InsufficientBalance", func(t *testing.T) {
		s := newTestState(t)
		if _, err := s.Approve(bob, carol, 100); err != nil {
			t.Fatalf("approve failed: %v", err)
		}
		if _, err := s.TransferFrom(carol, bob, dave, 60); !errors.Is(err, ErrInsufficientBalance) {
			t.Fatalf("expected ErrInsufficientBalance, got %v", err)
		}
	})

	t.Run("OwnerSanctionsApply", func(t *testing.T) {
		s := newTestState(t)
		if _, err := s.Approve(alice, carol, 40); err != nil {
			t.Fatalf("approve failed: %v", err)
		}
		if _, err := s.Freeze(gov, alice); err != nil {
			t.Fatalf("freeze failed: %v", err)
		}
		if _, err := s.TransferFrom(carol, alice, dave, 10); !errors.Is(err, ErrFrozen) {
			t.Fatalf("expected ErrFrozen for frozen owner, got %v", err)
		}
	})

	t.Run("SpenderSanctionsDoNotApply", func(t *testing.T) {
		s := newTestState(t)
		if _, err := s.Approve(alice, carol, 40); err != nil {
			t.Fatalf("approve failed: %v", err)
		}
		if _, err := s.Freeze(gov, carol); err != nil {
			t.Fatalf("freeze failed: %v", err)
		}
		if _, err := s.TransferFrom(carol, alice, dave, 10); err != nil {
			t.Errorf("spender sanctions must not gate delegated transfers: %v", err)
		}
	})
}

func TestSupplyConservation(t *testing.T) {
	s := newTestState(t)

	ops := []struct {
		name string
		call func() ([]Event, error)
	}{
		{"transfer", func() ([]Event, error) { return s.Transfer(alice, bob, 10) }},
		{"approve", func() ([]Event, error) { return s.Approve(alice, carol, 40) }},
		{"transfer_from", func() ([]Event, error) { return s.TransferFrom(carol, alice, dave, 40) }},
		{"force_transfer", func() ([]Event, error) { return s.ForceTransfer(gov, bob, carol, 5) }},
		{"pause", func() ([]Event, error) { return s.TogglePause(gov) }},
		{"unpause", func() ([]Event, error) { return s.TogglePause(gov) }},
		{"freeze", func() ([]Event, error) { return s.Freeze(gov, dave) }},
	}
	for _, op := range ops {
		if _, err := op.call(); err != nil {
			t.Fatalf("%s failed: %v", op.name, err)
		}
		if got := s.TotalSupply(); got != 150 {
			t.Fatalf("%s changed the supply to %d", op.name, got)
		}
		if err := s.Audit(); err != nil {
			t.Fatalf("audit failed after %s: %v", op.name, err)
		}
	}

	if _, err := s.Mint(gov, gov, 25); err != nil {
		t.Fatalf("mint failed: %v", err)
	}
	if got := s.TotalSupply(); got != 175 {
		t.Fatalf("expected supply 175 after mint, got %d", got)
	}
	if _, err := s.Burn(gov, 20); err != nil {
		t.Fatalf("burn failed: %v", err)
	}
	if got := s.TotalSupply(); got != 155 {
		t.Fatalf("expected supply 155 after burn, got %d", got)
	}
	if err := s.Audit(); err != nil {
		t.Fatalf("final audit failed: %v", err)
	}
}
