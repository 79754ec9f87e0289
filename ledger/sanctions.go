package ledger

// Sanction management. All four operations are governance only and
// idempotent: re-applying a sanction that is already set (or clearing one
// that is not) succeeds and re-emits the status event.

// Block prohibits the target from sending and receiving in normal
// transfers.
func (s *State) Block(caller, target AccountID) ([]Event, error) {
	return s.setStatus(caller, target, TopicBlocked, func(info *AccountInfo) {
		info.Blocked = true
	})
}

// Unblock clears the target's block sanction.
func (s *State) Unblock(caller, target AccountID) ([]Event, error) {
	return s.setStatus(caller, target, TopicUnblocked, func(info *AccountInfo) {
		info.Blocked = false
	})
}

// Freeze prohibits the target from sending in normal transfers; the target
// can still receive.
func (s *State) Freeze(caller, target AccountID) ([]Event, error) {
	return s.setStatus(caller, target, TopicFrozen, func(info *AccountInfo) {
		info.Frozen = true
	})
}

// Unfreeze clears the target's freeze sanction.
func (s *State) Unfreeze(caller, target AccountID) ([]Event, error) {
	return s.setStatus(caller, target, TopicUnfrozen, func(info *AccountInfo) {
		info.Frozen = false
	})
}

func (s *State) setStatus(caller, target AccountID, topic string, apply func(*AccountInfo)) ([]Event, error) {
	if err := s.authorizeGovernance(caller); err != nil {
		return nil, err
	}

	info := s.accounts[target]
	apply(&info)
	s.accounts[target] = info

	return []Event{{
		Topic: topic,
		Data:  AccountStatusData{Account: target},
	}}, nil
}
