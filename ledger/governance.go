package ledger

// TransferGovernance hands the governance role to another identity,
// effective immediately (no two-phase acceptance). Governance only.
func (s *State) TransferGovernance(caller, next AccountID) ([]Event, error) {
	if err := s.authorizeGovernance(caller); err != nil {
		return nil, err
	}

	previous := s.governance
	s.governance = next
	s.materialize(next)

	return []Event{{
		Topic: TopicGovernanceTransferred,
		Data: GovernanceData{
			Previous: previous,
			New:      next,
		},
	}}, nil
}

// RenounceGovernance gives up the governance role forever. The governance
// identity becomes the zero account and no subsequent call can satisfy a
// governance-only check. Governance only, and irreversible.
func (s *State) RenounceGovernance(caller AccountID) ([]Event, error) {
	if err := s.authorizeGovernance(caller); err != nil {
		return nil, err
	}

	previous := s.governance
	s.governance = ZeroAccount

	return []Event{{
		Topic: TopicGovernanceRenounced,
		Data: GovernanceData{
			Previous: previous,
			New:      ZeroAccount,
		},
	}}, nil
}

// TogglePause flips the pause switch. Governance only. While paused, normal
// transfers are rejected; approvals and administrative operations proceed.
func (s *State) TogglePause(caller AccountID) ([]Event, error) {
	if err := s.authorizeGovernance(caller); err != nil {
		return nil, err
	}

	s.paused = !s.paused

	return []Event{{
		Topic: TopicPauseToggled,
		Data:  PauseData{Paused: s.paused},
	}}, nil
}
