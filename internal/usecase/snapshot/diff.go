package snapshot

import (
	"sort"

	snapshotv1 "github.com/muhammadchandra19/marketfeed/internal/domain/snapshot/v1"
)

// Diff returns the rows that turn previous into current: changed or new levels
// first, then a zero-quantity row stamped with eventTime for every level that
// disappeared. An empty result means nothing changed.
func Diff(current, previous snapshotv1.Snapshot, eventTime string) snapshotv1.Snapshot {
	prev := make(map[snapshotv1.Key]int64, len(previous))
	for _, row := range previous {
		prev[row.Key()] = row.NewQuantity
	}

	var out snapshotv1.Snapshot
	seen := make(map[snapshotv1.Key]struct{}, len(current))
	for _, row := range current {
		key := row.Key()
		seen[key] = struct{}{}
		if qty, ok := prev[key]; ok && qty == row.NewQuantity {
			continue
		}
		out = append(out, row)
	}

	for _, row := range previous {
		key := row.Key()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, snapshotv1.Row{
			Side:        row.Side,
			PriceLevel:  row.PriceLevel,
			NewQuantity: 0,
			EventTime:   eventTime,
		})
	}
	return out
}

// Apply replays diff onto previous by key. Zero-quantity rows delete their level.
// The result is ordered like a built snapshot.
func Apply(previous, diff snapshotv1.Snapshot) snapshotv1.Snapshot {
	levels := make(map[snapshotv1.Key]snapshotv1.Row, len(previous)+len(diff))
	for _, row := range previous {
		levels[row.Key()] = row
	}
	for _, row := range diff {
		if row.NewQuantity == 0 {
			delete(levels, row.Key())
			continue
		}
		levels[row.Key()] = row
	}

	out := make(snapshotv1.Snapshot, 0, len(levels))
	for _, row := range levels {
		out = append(out, row)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Side != out[j].Side {
			return out[i].Side == snapshotv1.SideBid
		}
		if out[i].Side == snapshotv1.SideBid {
			return out[i].PriceLevel > out[j].PriceLevel
		}
		return out[i].PriceLevel < out[j].PriceLevel
	})
	return out
}
