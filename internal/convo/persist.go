package convo

import (
	"context"
	"encoding/json"

	"github.com/dkasab/unveil/internal/store"
)

// Persister is the opaque key-value persistence contract the manager
// depends on. Implementations own durability; the manager only decides
// when to write.
type Persister interface {
	// Save stores the conversation's current snapshot.
	Save(ctx context.Context, conversationID string, snapshot []byte) error

	// Load returns the latest snapshot, or nil when none exists.
	Load(ctx context.Context, conversationID string) ([]byte, error)
}

// snapshotsToKeep bounds per-conversation snapshot history in the store.
const snapshotsToKeep = 5

// StorePersister adapts the ent-backed snapshot repo to the Persister
// contract, pruning old snapshots on every save.
type StorePersister struct {
	Repo store.SnapshotRepo
}

func (p *StorePersister) Save(ctx context.Context, conversationID string, snapshot []byte) error {
	if err := p.Repo.Save(ctx, conversationID, json.RawMessage(snapshot)); err != nil {
		return err
	}
	// Best effort: failing to prune never fails the save.
	_ = p.Repo.Prune(ctx, conversationID, snapshotsToKeep)
	return nil
}

func (p *StorePersister) Load(ctx context.Context, conversationID string) ([]byte, error) {
	snap, err := p.Repo.Latest(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	if snap == nil {
		return nil, nil
	}
	return snap.Data, nil
}
