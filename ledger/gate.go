package ledger

// gateTransfer is the single access gate consulted by every normal transfer
// path. The matrix it enforces:
//
//	paused            -> ErrPaused
//	sender blocked    -> ErrBlocked
//	sender frozen     -> ErrFrozen
//	receiver blocked  -> ErrBlocked
//	receiver frozen   -> allowed (frozen accounts can still receive)
//
// For delegated transfers the effective sender is the owner of the funds,
// not the spender.
func (s *State) gateTransfer(sender, receiver AccountID) error {
	if !s.initialized {
		return ErrNotInitialized
	}
	if s.paused {
		return ErrPaused
	}
	from := s.accounts[sender]
	if from.Blocked {
		return ErrBlocked
	}
	if from.Frozen {
		return ErrFrozen
	}
	if s.accounts[receiver].Blocked {
		return ErrBlocked
	}
	return nil
}

// authorizeGovernance gates governance-only operations. Once governance has
// been renounced the check fails unconditionally: the zero account can never
// act as a caller.
func (s *State) authorizeGovernance(caller AccountID) error {
	if !s.initialized {
		return ErrNotInitialized
	}
	if s.governance.IsZero() || caller != s.governance {
		return ErrUnauthorized
	}
	return nil
}
