// Package host is a reference execution environment for the ledger engine.
// It owns the durable state: every mutating call is applied to a working
// copy of the ledger, and only when the whole operation succeeds are the
// emitted events journaled and the snapshot persisted. The runtime
// serializes mutating calls with a mutex; the engine itself stays lock-free.
package host

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/rs/zerolog"

	"github.com/pflow-xyz/go-ledger/journal"
	"github.com/pflow-xyz/go-ledger/ledger"
)

// Runtime executes ledger operations against durable storage.
type Runtime struct {
	mu      sync.Mutex
	state   *ledger.State
	store   journal.Store
	stream  string
	version int

	snapshotPath string
	log          zerolog.Logger
}

// NewRuntime opens the SQLite journal named by the config, restores the
// ledger state from the snapshot file if one exists, and returns a ready
// runtime.
func NewRuntime(cfg Config, logger zerolog.Logger) (*Runtime, error) {
	store, err := journal.NewSQLiteStore(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}
	rt, err := NewRuntimeWithStore(cfg, store, logger)
	if err != nil {
		store.Close()
		return nil, err
	}
	return rt, nil
}

// NewRuntimeWithStore builds a runtime on an existing journal store. The
// caller keeps ownership of nothing: Close releases the store.
func NewRuntimeWithStore(cfg Config, store journal.Store, logger zerolog.Logger) (*Runtime, error) {
	rt := &Runtime{
		state:        ledger.NewState(),
		store:        store,
		stream:       cfg.Stream,
		version:      -1,
		snapshotPath: cfg.SnapshotPath,
		log:          logger,
	}

	if cfg.SnapshotPath != "" {
		raw, err := os.ReadFile(cfg.SnapshotPath)
		switch {
		case err == nil:
			var snap ledger.Snapshot
			if err := json.Unmarshal(raw, &snap); err != nil {
				return nil, fmt.Errorf("parse snapshot %s: %w", cfg.SnapshotPath, err)
			}
			rt.state = ledger.FromSnapshot(&snap)
		case os.IsNotExist(err):
			// Fresh deployment.
		default:
			return nil, fmt.Errorf("read snapshot: %w", err)
		}
	}

	recs, err := store.Read(context.Background(), cfg.Stream, 0)
	if err != nil {
		return nil, fmt.Errorf("read journal: %w", err)
	}
	if len(recs) > 0 {
		rt.version = recs[len(recs)-1].Version
	}

	return rt, nil
}

// Close releases the journal store.
func (r *Runtime) Close() error {
	return r.store.Close()
}

// execute runs one mutating operation transactionally: on any failure the
// in-memory state, the journal and the snapshot are all left untouched.
func (r *Runtime) execute(ctx context.Context, op string, apply func(*ledger.State) ([]ledger.Event, error)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	work := r.state.Clone()
	events, err := apply(work)
	if err != nil {
		r.log.Error().Err(err).Str("op", op).Msg("operation rejected")
		return err
	}
	if err := work.Audit(); err != nil {
		r.log.Error().Err(err).Str("op", op).Msg("audit failed, discarding")
		return err
	}

	recs := make([]*journal.Record, 0, len(events))
	for _, ev := range events {
		rec, err := journal.NewRecord(r.stream, ev.Topic, ev.Data)
		if err != nil {
			return fmt.Errorf("build record: %w", err)
		}
		recs = append(recs, rec)
	}

	// The snapshot goes to disk before the journal sees anything: a failed
	// write aborts with the journal untouched, and the rename underneath
	// saveSnapshot keeps the previous snapshot intact.
	if err := r.saveSnapshot(work); err != nil {
		r.log.Error().Err(err).Str("op", op).Msg("snapshot write failed")
		return err
	}

	version := r.version
	if len(recs) > 0 {
		version, err = r.store.Append(ctx, r.stream, r.version, recs)
		if err != nil {
			// Roll the on-disk snapshot back to the committed state.
			if rbErr := r.saveSnapshot(r.state); rbErr != nil {
				r.log.Error().Err(rbErr).Str("op", op).Msg("snapshot rollback failed")
			}
			r.log.Error().Err(err).Str("op", op).Msg("journal append failed")
			return err
		}
	}

	r.state = work
	r.version = version
	r.log.Info().Str("op", op).Int("events", len(events)).Int("version", version).Msg("committed")
	return nil
}

func (r *Runtime) saveSnapshot(s *ledger.State) error {
	if r.snapshotPath == "" {
		return nil
	}
	raw, err := json.MarshalIndent(s.Snapshot(), "", "  ")
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	tmp := r.snapshotPath + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return os.Rename(tmp, r.snapshotPath)
}

// Init seeds the ledger. Deployment-time only, exactly once.
func (r *Runtime) Init(ctx context.Context, accounts []ledger.InitialAccount, governance ledger.AccountID, meta ledger.Metadata) error {
	return r.execute(ctx, "init", func(s *ledger.State) ([]ledger.Event, error) {
		return nil, s.Init(accounts, governance, meta)
	})
}

// Transfer moves tokens from the caller to the receiver.
func (r *Runtime) Transfer(ctx context.Context, caller, to ledger.AccountID, amount uint64) error {
	return r.execute(ctx, "transfer", func(s *ledger.State) ([]ledger.Event, error) {
		return s.Transfer(caller, to, amount)
	})
}

// TransferFrom moves tokens from owner to receiver on the caller's allowance.
func (r *Runtime) TransferFrom(ctx context.Context, caller, owner, to ledger.AccountID, amount uint64) error {
	return r.execute(ctx, "transfer_from", func(s *ledger.State) ([]ledger.Event, error) {
		return s.TransferFrom(caller, owner, to, amount)
	})
}

// Approve sets the caller's allowance for a spender.
func (r *Runtime) Approve(ctx context.Context, caller, spender ledger.AccountID, amount uint64) error {
	return r.execute(ctx, "approve", func(s *ledger.State) ([]ledger.Event, error) {
		return s.Approve(caller, spender, amount)
	})
}

// Mint creates new tokens on the receiver's account. Governance only.
func (r *Runtime) Mint(ctx context.Context, caller, to ledger.AccountID, amount uint64) error {
	return r.execute(ctx, "mint", func(s *ledger.State) ([]ledger.Event, error) {
		return s.Mint(caller, to, amount)
	})
}

// Burn destroys tokens from the governance balance. Governance only.
func (r *Runtime) Burn(ctx context.Context, caller ledger.AccountID, amount uint64) error {
	return r.execute(ctx, "burn", func(s *ledger.State) ([]ledger.Event, error) {
		return s.Burn(caller, amount)
	})
}

// ForceTransfer seizes tokens by governance decree. Governance only.
func (r *Runtime) ForceTransfer(ctx context.Context, caller, from, to ledger.AccountID, amount uint64) error {
	return r.execute(ctx, "force_transfer", func(s *ledger.State) ([]ledger.Event, error) {
		return s.ForceTransfer(caller, from, to, amount)
	})
}

// TransferGovernance hands governance to another identity. Governance only.
func (r *Runtime) TransferGovernance(ctx context.Context, caller, next ledger.AccountID) error {
	return r.execute(ctx, "transfer_governance", func(s *ledger.State) ([]ledger.Event, error) {
		return s.TransferGovernance(caller, next)
	})
}

// RenounceGovernance gives up governance forever. Governance only.
func (r *Runtime) RenounceGovernance(ctx context.Context, caller ledger.AccountID) error {
	return r.execute(ctx, "renounce_governance", func(s *ledger.State) ([]ledger.Event, error) {
		return s.RenounceGovernance(caller)
	})
}

// TogglePause flips the pause switch. Governance only.
func (r *Runtime) TogglePause(ctx context.Context, caller ledger.AccountID) error {
	return r.execute(ctx, "toggle_pause", func(s *ledger.State) ([]ledger.Event, error) {
		return s.TogglePause(caller)
	})
}

// Freeze applies the freeze sanction. Governance only.
func (r *Runtime) Freeze(ctx context.Context, caller, target ledger.AccountID) error {
	return r.execute(ctx, "freeze", func(s *ledger.State) ([]ledger.Event, error) {
		return s.Freeze(caller, target)
	})
}

// Unfreeze clears the freeze sanction. Governance only.
func (r *Runtime) Unfreeze(ctx context.Context, caller, target ledger.AccountID) error {
	return r.execute(ctx, "unfreeze", func(s *ledger.State) ([]ledger.Event, error) {
		return s.Unfreeze(caller, target)
	})
}

// Block applies the block sanction. Governance only.
func (r *Runtime) Block(ctx context.Context, caller, target ledger.AccountID) error {
	return r.execute(ctx, "block", func(s *ledger.State) ([]ledger.Event, error) {
		return s.Block(caller, target)
	})
}

// Unblock clears the block sanction. Governance only.
func (r *Runtime) Unblock(ctx context.Context, caller, target ledger.AccountID) error {
	return r.execute(ctx, "unblock", func(s *ledger.State) ([]ledger.Event, error) {
		return s.Unblock(caller, target)
	})
}

// Snapshot returns a copy of the current ledger state.
func (r *Runtime) Snapshot() *ledger.Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state.Snapshot()
}

// Account returns the account data for an identity.
func (r *Runtime) Account(id ledger.AccountID) ledger.AccountInfo {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state.Account(id)
}

// Allowance returns the approved amount for an (owner, spender) pair.
func (r *Runtime) Allowance(owner, spender ledger.AccountID) uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state.Allowance(owner, spender)
}

// TotalSupply returns the current total supply.
func (r *Runtime) TotalSupply() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state.TotalSupply()
}

// Governance returns the current governance identity.
func (r *Runtime) Governance() ledger.AccountID {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state.Governance()
}

// IsPaused reports whether normal transfers are suspended.
func (r *Runtime) IsPaused() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state.IsPaused()
}

// Version returns the version of the last journaled record, -1 if none.
func (r *Runtime) Version() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.version
}

// Events returns the journaled records with version >= from.
func (r *Runtime) Events(ctx context.Context, from int) ([]*journal.Record, error) {
	return r.store.Read(ctx, r.stream, from)
}
