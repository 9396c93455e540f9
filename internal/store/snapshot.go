package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dkasab/unveil/ent"
	"github.com/dkasab/unveil/ent/snapshot"
)

// snapshotRepo implements SnapshotRepo using the ent client.
type snapshotRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *snapshotRepo) Save(ctx context.Context, conversationID string, data json.RawMessage) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.Snapshot.Create().
		SetConversationID(conversationID).
		SetSequence(seqNum).
		SetData(data).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

func (r *snapshotRepo) Latest(ctx context.Context, conversationID string) (*Snapshot, error) {
	s, err := r.client.Snapshot.Query().
		Where(snapshot.ConversationID(conversationID)).
		Order(ent.Desc(snapshot.FieldSequence)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query latest snapshot: %w", err)
	}

	return &Snapshot{
		ID:             s.ID,
		ConversationID: s.ConversationID,
		Sequence:       s.Sequence,
		Timestamp:      s.Timestamp,
		Data:           json.RawMessage(s.Data),
	}, nil
}

func (r *snapshotRepo) Delete(ctx context.Context, conversationID string) (int, error) {
	n, err := r.client.Snapshot.Delete().
		Where(snapshot.ConversationID(conversationID)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("delete snapshots: %w", err)
	}
	return n, nil
}

func (r *snapshotRepo) Prune(ctx context.Context, conversationID string, keep int) error {
	// Find the sequence threshold: the Nth most recent snapshot.
	snapshots, err := r.client.Snapshot.Query().
		Where(snapshot.ConversationID(conversationID)).
		Order(ent.Desc(snapshot.FieldSequence)).
		Offset(keep).
		Limit(1).
		All(ctx)
	if err != nil {
		return fmt.Errorf("query snapshots for prune: %w", err)
	}
	if len(snapshots) == 0 {
		return nil // fewer than keep snapshots exist
	}

	threshold := snapshots[0].Sequence
	_, err = r.client.Snapshot.Delete().
		Where(
			snapshot.ConversationID(conversationID),
			snapshot.SequenceLTE(threshold),
		).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("prune snapshots: %w", err)
	}
	return nil
}
