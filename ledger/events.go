package ledger

// Event topics. Every state transition emits exactly one event; the topic
// identifies which structured payload is carried in Data.
const (
	TopicTransfer      = "transfer"
	TopicForceTransfer = "force_transfer"
	TopicMint          = "mint"
	TopicBurn          = "burn"
	TopicApprove       = "approve"

	TopicGovernanceTransferred = "governance_transferred"
	TopicGovernanceRenounced   = "governance_renounced"
	TopicPauseToggled          = "pause_toggled"

	TopicBlocked   = "blocked"
	TopicUnblocked = "unblocked"
	TopicFrozen    = "frozen"
	TopicUnfrozen  = "unfrozen"
)

// Event is a structured record produced by a successful state transition.
// The engine hands events back to its caller; transporting or persisting
// them is the host's concern.
type Event struct {
	Topic string `json:"topic"`
	Data  any    `json:"data"`
}

// TransferData is the payload for transfer, mint, burn and force_transfer
// events. Mint events use the zero account as From, burn events use it as
// To. Spender is set only for delegated transfers.
type TransferData struct {
	From    AccountID `json:"from"`
	Spender AccountID `json:"spender,omitempty"`
	To      AccountID `json:"to"`
	Amount  uint64    `json:"amount"`
}

// ApproveData is the payload for approve events.
type ApproveData struct {
	Owner   AccountID `json:"owner"`
	Spender AccountID `json:"spender"`
	Amount  uint64    `json:"amount"`
}

// GovernanceData is the payload for governance_transferred and
// governance_renounced events. New is the zero account on renouncement.
type GovernanceData struct {
	Previous AccountID `json:"previous"`
	New      AccountID `json:"new,omitempty"`
}

// PauseData is the payload for pause_toggled events. Paused is the state
// after the toggle.
type PauseData struct {
	Paused bool `json:"paused"`
}

// AccountStatusData is the payload for blocked, unblocked, frozen and
// unfrozen events.
type AccountStatusData struct {
	Account AccountID `json:"account"`
}

func transferEvent(topic string, from, spender, to AccountID, amount uint64) Event {
	return Event{
		Topic: topic,
		Data: TransferData{
			From:    from,
			Spender: spender,
			To:      to,
			Amount:  amount,
		},
	}
}
