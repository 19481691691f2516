package store

import (
	"context"
	"fmt"
)

// RecordFingerprint stamps a stream/event pair as seen in generation, used
// by the event-EPG collaborator's match-tracking path.
func (p *Pool) RecordFingerprint(ctx context.Context, streamName, eventID string, generation int64) error {
	_, err := p.Exec(ctx, "upsert_fingerprint", streamName, eventID, generation)
	if err != nil {
		return fmt.Errorf("record fingerprint %s/%s: %w", streamName, eventID, err)
	}
	return nil
}

// PurgeStaleFingerprints removes Tier P entries not seen in the last
// maxAgeRuns generations.
func (p *Pool) PurgeStaleFingerprints(ctx context.Context, currentGeneration int64, maxAgeRuns int) (int64, error) {
	tag, err := p.Exec(ctx, "purge_stale_fingerprints", currentGeneration, maxAgeRuns)
	if err != nil {
		return 0, fmt.Errorf("purge stale fingerprints: %w", err)
	}
	return tag.RowsAffected(), nil
}
