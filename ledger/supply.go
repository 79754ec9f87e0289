package ledger

// Mint creates amount new tokens on the receiver's account and grows the
// total supply by the same amount. Governance only. Minting is an
// administrative action and is not blocked by the pause switch.
func (s *State) Mint(caller, receiver AccountID, amount uint64) ([]Event, error) {
	if err := s.authorizeGovernance(caller); err != nil {
		return nil, err
	}

	supply, ok := addChecked(s.supply, amount)
	if !ok {
		return nil, ErrSupplyOverflow
	}
	s.supply = supply

	recv := s.accounts[receiver]
	recv.Balance += amount // bounded by the supply check above
	s.accounts[receiver] = recv

	return []Event{transferEvent(TopicMint, ZeroAccount, ZeroAccount, receiver, amount)}, nil
}

// Burn destroys amount tokens from the governance account's own balance and
// shrinks the total supply by the same amount. Governance only.
func (s *State) Burn(caller AccountID, amount uint64) ([]Event, error) {
	if err := s.authorizeGovernance(caller); err != nil {
		return nil, err
	}

	acct := s.accounts[s.governance]
	if acct.Balance < amount {
		return nil, ErrInsufficientBalance
	}
	acct.Balance -= amount
	s.accounts[s.governance] = acct

	// Cannot underflow: the burned balance is part of the supply.
	s.supply -= amount

	return []Event{transferEvent(TopicBurn, s.governance, ZeroAccount, ZeroAccount, amount)}, nil
}

// ForceTransfer moves amount from sender to receiver by governance decree,
// deliberately bypassing the pause switch and the block/freeze sanctions of
// both endpoints. Balance sufficiency is still enforced; the transfer never
// defaults to the maximum available balance.
func (s *State) ForceTransfer(caller, sender, receiver AccountID, amount uint64) ([]Event, error) {
	if err := s.authorizeGovernance(caller); err != nil {
		return nil, err
	}

	from := s.accounts[sender]
	if from.Balance < amount {
		return nil, ErrInsufficientBalance
	}
	from.Balance -= amount
	s.accounts[sender] = from

	recv := s.accounts[receiver]
	recv.Balance += amount
	s.accounts[receiver] = recv

	return []Event{transferEvent(TopicForceTransfer, sender, ZeroAccount, receiver, amount)}, nil
}
