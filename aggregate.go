package depot

import "fmt"

// Aggregate collapses raw orders sharing the same (ISIN, day) key into one
// order per key. Shares and totals are summed; a key with a single member
// passes through unchanged. Output keeps the first-occurrence order of keys,
// so later tie-breaks on equal dates are stable with respect to the input.
func Aggregate(orders []Order) ([]Order, error) {
	byKey := make(map[Key]Order, len(orders))
	keys := make([]Key, 0, len(orders))

	for _, o := range orders {
		k := o.Key()
		prev, seen := byKey[k]
		if !seen {
			byKey[k] = o
			keys = append(keys, k)
			continue
		}
		merged, err := Merge(prev, o)
		if err != nil {
			return nil, fmt.Errorf("aggregating %s on %s: %w", k.ISIN, k.Day, err)
		}
		byKey[k] = merged
	}

	out := make([]Order, 0, len(keys))
	for _, k := range keys {
		out = append(out, byKey[k])
	}
	return out, nil
}
