package ledger

import (
	"errors"
	"testing"
)

func TestMint(t *testing.T) {
	t.Run("GrowsSupplyAndBalance", func(t *testing.T) {
		s := newTestState(t)
		events, err := s.Mint(gov, alice, 10)
		if err != nil {
			t.Fatalf("mint failed: %v", err)
		}
		if got := s.TotalSupply(); got != 160 {
			t.Errorf("expected supply 160, got %d", got)
		}
		if got := s.BalanceOf(alice); got != 110 {
			t.Errorf("expected alice=110, got %d", got)
		}
		wantTransferData(t, events, TopicMint, ZeroAccount, alice, 10)
	})

	t.Run("GovernanceOnly", func(t *testing.T) {
		s := newTestState(t)
		if _, err := s.Mint(alice, alice, 10); !errors.Is(err, ErrUnauthorized) {
			t.Fatalf("expected ErrUnauthorized, got %v", err)
		}
	})

	t.Run("SucceedsWhilePaused", func(t *testing.T) {
		s := newTestState(t)
		if _, err := s.TogglePause(gov); err != nil {
			t.Fatalf("pause failed: %v", err)
		}
		if _, err := s.Mint(gov, alice, 10); err != nil {
			t.Errorf("mint must not be gated by pause: %v", err)
		}
	})

	t.Run("SupplyOverflow", func(t *testing.T) {
		s := newTestState(t)
		if _, err := s.Mint(gov, alice, 1<<64-1); !errors.Is(err, ErrSupplyOverflow) {
			t.Fatalf("expected ErrSupplyOverflow, got %v", err)
		}
		if got := s.TotalSupply(); got != 150 {
			t.Errorf("failed mint must not mutate, supply=%d", got)
		}
		if got := s.BalanceOf(alice); got != 100 {
			t.Errorf("failed mint must not mutate, alice=%d", got)
		}
	})

	t.Run("ZeroAmountStillEmits", func(t *testing.T) {
		s := newTestState(t)
		events, err := s.Mint(gov, alice, 0)
		if err != nil {
			t.Fatalf("zero mint failed: %v", err)
		}
		wantTransferData(t, events, TopicMint, ZeroAccount, alice, 0)
	})
}

func TestBurn(t *testing.T) {
	t.Run("ShrinksGovernanceBalanceAndSupply", func(t *testing.T) {
		s := newTestState(t)
		if _, err := s.Mint(gov, gov, 30); err != nil {
			t.Fatalf("mint failed: %v", err)
		}
		events, err := s.Burn(gov, 20)
		if err != nil {
			t.Fatalf("burn failed: %v", err)
		}
		if got := s.BalanceOf(gov); got != 10 {
			t.Errorf("expected governance balance 10, got %d", got)
		}
		if got := s.TotalSupply(); got != 160 {
			t.Errorf("expected supply 160, got %d", got)
		}
		wantTransferData(t, events, TopicBurn, gov, ZeroAccount, 20)
	})

	t.Run("InsufficientBalance", func(t *testing.T) {
		s := newTestState(t)
		if _, err := s.Burn(gov, 1); !errors.Is(err, ErrInsufficientBalance) {
			t.Fatalf("expected ErrInsufficientBalance, got %v", err)
		}
	})

	t.Run("GovernanceOnly", func(t *testing.T) {
		s := newTestState(t)
		if _, err := s.Burn(alice, 1); !errors.Is(err, ErrUnauthorized) {
			t.Fatalf("expected ErrUnauthorized, got %v", err)
		}
	})
}

func TestForceTransfer(t *testing.T) {
	t.Run("BypassesSanctionsAndPause", func(t *testing.T) {
		s := newTestState(t)
		if _, err := s.Block(gov, alice); err != nil {
			t.Fatalf("block failed: %v", err)
		}
		if _, err := s.Freeze(gov, bob); err != nil {
			t.Fatalf("freeze failed: %v", err)
		}
		if _, err := s.TogglePause(gov); err != nil {
			t.Fatalf("pause failed: %v", err)
		}
		events, err := s.ForceTransfer(gov, alice, bob, 60)
		if err != nil {
			t.Fatalf("force transfer must bypass sanctions and pause: %v", err)
		}
		if got := s.BalanceOf(alice); got != 40 {
			t.Errorf("expected alice=40, got %d", got)
		}
		if got := s.BalanceOf(bob); got != 110 {
			t.Errorf("expected bob=110, got %d", got)
		}
		wantTransferData(t, events, TopicForceTransfer, alice, bob, 60)
	})

	t.Run("StillChecksBalance", func(t *testing.T) {
		s := newTestState(t)
		if _, err := s.ForceTransfer(gov, bob, alice, 51); !errors.Is(err, ErrInsufficientBalance) {
			t.Fatalf("expected ErrInsufficientBalance, got %v", err)
		}
	})

	t.Run("GovernanceOnly", func(t *testing.T) {
		s := newTestState(t)
		if _, err := s.ForceTransfer(alice, bob, alice, 1); !errors.Is(err, ErrUnauthorized) {
			t.Fatalf("expected ErrUnauthorized, got %v", err)
		}
	})
}

func TestPause(t *testing.T) {
	t.Run("GatesNormalTransfers", func(t *testing.T) {
		s := newTestState(t)
		if _, err := s.TogglePause(gov); err != nil {
			t.Fatalf("pause failed: %v", err)
		}
		if _, err := s.Transfer(alice, bob, 1); !errors.Is(err, ErrPaused) {
			t.Errorf("transfer: expected ErrPaused, got %v", err)
		}
		if _, err := s.Approve(alice, carol, 5); err != nil {
			t.Fatalf("approve failed: %v", err)
		}
		if _, err := s.TransferFrom(carol, alice, bob, 1); !errors.Is(err, ErrPaused) {
			t.Errorf("transfer_from: expected ErrPaused, got %v", err)
		}
	})

	t.Run("DoubleToggleRoundTrips", func(t *testing.T) {
		s := newTestState(t)
		first, err := s.TogglePause(gov)
		if err != nil {
			t.Fatalf("first toggle failed: %v", err)
		}
		second, err := s.TogglePause(gov)
		if err != nil {
			t.Fatalf("second toggle failed: %v", err)
		}
		if s.IsPaused() {
			t.Error("double toggle must restore the unpaused state")
		}
		if first[0].Data.(PauseData).Paused != true {
			t.Error("first toggle must report paused=true")
		}
		if second[0].Data.(PauseData).Paused != false {
			t.Error("second toggle must report paused=false")
		}
	})

	t.Run("GovernanceOnly", func(t *testing.T) {
		s := newTestState(t)
		if _, err := s.TogglePause(alice); !errors.Is(err, ErrUnauthorized) {
			t.Fatalf("expected ErrUnauthorized, got %v", err)
		}
	})
}

func TestGovernanceTransfer(t *testing.T) {
	t.Run("ImmediateHandover", func(t *testing.T) {
		s := newTestState(t)
		events, err := s.TransferGovernance(gov, carol)
		if err != nil {
			t.Fatalf("transfer governance failed: %v", err)
		}
		if got := s.Governance(); got != carol {
			t.Errorf("expected governance carol, got %q", got)
		}
		data := events[0].Data.(GovernanceData)
		if data.Previous != gov || data.New != carol {
			t.Errorf("unexpected governance payload: %+v", data)
		}
		// The old governance loses its privileges at once.
		if _, err := s.Mint(gov, alice, 1); !errors.Is(err, ErrUnauthorized) {
			t.Errorf("old governance must lose privileges, got %v", err)
		}
		if _, err := s.Mint(carol, alice, 1); err != nil {
			t.Errorf("new governance must gain privileges: %v", err)
		}
	})

	t.Run("NewGovernanceMaterialized", func(t *testing.T) {
		s := newTestState(t)
		if _, err := s.TransferGovernance(gov, carol); err != nil {
			t.Fatalf("transfer governance failed: %v", err)
		}
		if _, ok := s.accounts[carol]; !ok {
			t.Error("new governance account not materialized")
		}
	})

	t.Run("GovernanceOnly", func(t *testing.T) {
		s := newTestState(t)
		if _, err := s.TransferGovernance(alice, alice); !errors.Is(err, ErrUnauthorized) {
			t.Fatalf("expected ErrUnauthorized, got %v", err)
		}
	})
}

func TestRenounceGovernance(t *testing.T) {
	s := newTestState(t)
	events, err := s.RenounceGovernance(gov)
	if err != nil {
		t.Fatalf("renounce failed: %v", err)
	}
	if got := s.Governance(); !got.IsZero() {
		t.Errorf("expected zero governance, got %q", got)
	}
	data := events[0].Data.(GovernanceData)
	if data.Previous != gov || !data.New.IsZero() {
		t.Errorf("unexpected renounce payload: %+v", data)
	}

	// Renounced is terminal: every governance-only call fails forever,
	// including for the zero account itself.
	calls := []struct {
		name string
		call func() ([]Event, error)
	}{
		{"mint", func() ([]Event, error) { return s.Mint(gov, alice, 1) }},
		{"burn", func() ([]Event, error) { return s.Burn(gov, 1) }},
		{"pause", func() ([]Event, error) { return s.TogglePause(gov) }},
		{"transfer_governance", func() ([]Event, error) { return s.TransferGovernance(gov, alice) }},
		{"renounce", func() ([]Event, error) { return s.RenounceGovernance(gov) }},
		{"block", func() ([]Event, error) { return s.Block(gov, alice) }},
		{"force_transfer", func() ([]Event, error) { return s.ForceTransfer(gov, alice, bob, 1) }},
		{"zero caller", func() ([]Event, error) { return s.Mint(ZeroAccount, alice, 1) }},
	}
	for _, c := range calls {
		if _, err := c.call(); !errors.Is(err, ErrUnauthorized) {
			t.Errorf("%s after renounce: expected ErrUnauthorized, got %v", c.name, err)
		}
	}

	// Normal transfers keep working.
	if _, err := s.Transfer(alice, bob, 5); err != nil {
		t.Errorf("transfers must keep working after renounce: %v", err)
	}
}
