package ledger

import (
	"fmt"

	"github.com/holiman/uint256"
)

// Audit verifies the ledger's global invariants: the total supply equals
// the sum of all balances, and the governance account is materialized while
// governance is active.
//
// The balance sum is accumulated in 256-bit arithmetic so the audit itself
// cannot wrap, whatever the individual 64-bit balances are.
func (s *State) Audit() error {
	sum := new(uint256.Int)
	for _, info := range s.accounts {
		sum.Add(sum, uint256.NewInt(info.Balance))
	}
	supply := uint256.NewInt(s.supply)
	if !sum.Eq(supply) {
		return fmt.Errorf("%w: supply %d, balance sum %s", ErrSupplyMismatch, s.supply, sum.Dec())
	}
	if s.initialized && !s.governance.IsZero() {
		if _, ok := s.accounts[s.governance]; !ok {
			return fmt.Errorf("ledger: governance account %q not materialized", s.governance)
		}
	}
	return nil
}
