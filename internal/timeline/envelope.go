package timeline

import (
	"encoding/json"
	"errors"
	"fmt"
)

// SchemaVersion is the current schema identifier for the persisted
// timeline collection.
const SchemaVersion = "chronicle.timeline/v2"

// envelope is the versioned on-disk record for a user's timeline scope.
type envelope struct {
	Schema string  `json:"schema"`
	Events []Event `json:"events"`
}

// errUnknownSchema marks stored data with a schema this build can't read.
var errUnknownSchema = errors.New("unknown timeline schema")

// encodeEvents serializes events under the current schema version.
func encodeEvents(events []Event) ([]byte, error) {
	data, err := json.Marshal(envelope{Schema: SchemaVersion, Events: events})
	if err != nil {
		return nil, fmt.Errorf("serializing timeline: %w", err)
	}
	return data, nil
}

// decodeEvents parses stored timeline data, upgrading legacy formats.
// Returns the events and whether a migration ran (the caller persists the
// upgraded form). Any parse failure is an error; the store falls back to
// reseeding.
func decodeEvents(data []byte) (events []Event, migrated bool, err error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err == nil && env.Schema != "" {
		if env.Schema != SchemaVersion {
			return nil, false, fmt.Errorf("%w: %s", errUnknownSchema, env.Schema)
		}
		return env.Events, false, nil
	}

	// Legacy v1: a bare JSON array, possibly with alias category names and
	// missing icon/badge fields.
	var legacy []Event
	if err := json.Unmarshal(data, &legacy); err != nil {
		return nil, false, fmt.Errorf("parsing timeline data: %w", err)
	}
	return migrateV1(legacy), true, nil
}

// migrateV1 upgrades legacy events: categories are already normalized by
// Category.UnmarshalJSON; backfill presentation fields that v1 data may lack.
func migrateV1(events []Event) []Event {
	for i := range events {
		if events[i].Icon == "" || events[i].Badge == "" {
			d := DisplayFor(events[i].Category)
			if events[i].Icon == "" {
				events[i].Icon = d.Icon
			}
			if events[i].Badge == "" {
				events[i].Badge = d.Badge
			}
		}
	}
	return events
}
