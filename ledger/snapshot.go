package ledger

// Snapshot is the complete ledger state in portable form. It marshals to
// JSON; hosts use it to persist state between calls and tests use it to
// construct known states.
type Snapshot struct {
	Initialized bool                               `json:"initialized"`
	Metadata    Metadata                           `json:"metadata"`
	Supply      uint64                             `json:"supply"`
	Governance  AccountID                          `json:"governance,omitempty"`
	Paused      bool                               `json:"paused,omitempty"`
	Accounts    map[AccountID]AccountInfo          `json:"accounts,omitempty"`
	Allowances  map[AccountID]map[AccountID]uint64 `json:"allowances,omitempty"`
}

// Snapshot exports a deep copy of the state.
func (s *State) Snapshot() *Snapshot {
	snap := &Snapshot{
		Initialized: s.initialized,
		Metadata:    s.meta,
		Supply:      s.supply,
		Governance:  s.governance,
		Paused:      s.paused,
		Accounts:    make(map[AccountID]AccountInfo, len(s.accounts)),
	}
	for id, info := range s.accounts {
		snap.Accounts[id] = info
	}
	if len(s.allowances) > 0 {
		snap.Allowances = make(map[AccountID]map[AccountID]uint64)
		for key, amount := range s.allowances {
			spenders := snap.Allowances[key.Owner]
			if spenders == nil {
				spenders = make(map[AccountID]uint64)
				snap.Allowances[key.Owner] = spenders
			}
			spenders[key.Spender] = amount
		}
	}
	return snap
}

// FromSnapshot rebuilds a state from a snapshot.
func FromSnapshot(snap *Snapshot) *State {
	s := NewState()
	s.initialized = snap.Initialized
	s.meta = snap.Metadata
	s.supply = snap.Supply
	s.governance = snap.Governance
	s.paused = snap.Paused
	for id, info := range snap.Accounts {
		s.accounts[id] = info
	}
	for owner, spenders := range snap.Allowances {
		for spender, amount := range spenders {
			s.allowances[allowanceKey{Owner: owner, Spender: spender}] = amount
		}
	}
	return s
}
