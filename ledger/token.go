package ledger

// Transfer moves amount from the caller to the receiver.
//
// The caller must not be blocked or frozen; the receiver must not be blocked
// but may be frozen. A self-transfer leaves the balance unchanged but still
// runs every check and still emits the event, as does a transfer of zero.
func (s *State) Transfer(caller, receiver AccountID, amount uint64) ([]Event, error) {
	if err := s.gateTransfer(caller, receiver); err != nil {
		return nil, err
	}

	sender := s.accounts[caller]
	if sender.Balance < amount {
		return nil, ErrInsufficientBalance
	}

	sender.Balance -= amount
	s.accounts[caller] = sender

	// Re-read so a self-transfer credits the already-debited entry. The
	// credit cannot wrap: balance + amount never exceeds total supply.
	recv := s.accounts[receiver]
	recv.Balance += amount
	s.accounts[receiver] = recv

	return []Event{transferEvent(TopicTransfer, caller, ZeroAccount, receiver, amount)}, nil
}

// TransferFrom moves amount from owner to receiver on the caller's approved
// allowance. The pause and sanction checks apply to the owner as the
// effective sender, and to the receiver; the allowance is reduced by exactly
// amount before the balances move.
func (s *State) TransferFrom(caller, owner, receiver AccountID, amount uint64) ([]Event, error) {
	if err := s.gateTransfer(owner, receiver); err != nil {
		return nil, err
	}

	key := allowanceKey{Owner: owner, Spender: caller}
	if s.allowances[key] < amount {
		return nil, ErrInsufficientAllowance
	}

	from := s.accounts[owner]
	if from.Balance < amount {
		return nil, ErrInsufficientBalance
	}

	s.allowances[key] -= amount
	from.Balance -= amount
	s.accounts[owner] = from

	recv := s.accounts[receiver]
	recv.Balance += amount
	s.accounts[receiver] = recv

	return []Event{transferEvent(TopicTransfer, owner, caller, receiver, amount)}, nil
}

// Approve sets the amount spender may move on behalf of the caller. The
// value overwrites any prior approval, it never accumulates. Approvals are
// always permitted: neither the pause switch nor sanctions gate them.
func (s *State) Approve(caller, spender AccountID, amount uint64) ([]Event, error) {
	if !s.initialized {
		return nil, ErrNotInitialized
	}

	s.allowances[allowanceKey{Owner: caller, Spender: spender}] = amount

	return []Event{{
		Topic: TopicApprove,
		Data: ApproveData{
			Owner:   caller,
			Spender: spender,
			Amount:  amount,
		},
	}}, nil
}
