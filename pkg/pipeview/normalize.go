package pipeview

import "sort"

// DisplayPipe is a Record decorated with its sort key. Key is
// meaningful only when KeyValid is true.
type DisplayPipe struct {
	Record

	Key      int
	KeyValid bool
}

// compare is a three-way comparator on the derived keys. Invalid keys
// sort after every valid key and are equal among themselves.
func compare(a, b *DisplayPipe) int {
	switch {
	case a.KeyValid && !b.KeyValid:
		return -1
	case !a.KeyValid && b.KeyValid:
		return 1
	case !a.KeyValid && !b.KeyValid:
		return 0
	case a.Key < b.Key:
		return -1
	case a.Key > b.Key:
		return 1
	}
	return 0
}

// Normalize builds a new list of DisplayPipe sorted by key. The sort is
// stable: records sharing a key keep their input order. The input slice
// is never modified and no record is dropped.
func Normalize(records []Record) []DisplayPipe {
	pipes := make([]DisplayPipe, 0, len(records))
	for _, r := range records {
		key, ok := r.ID.Key()
		pipes = append(pipes, DisplayPipe{
			Record:   r,
			Key:      key,
			KeyValid: ok,
		})
	}
	// always sort by key
	sort.SliceStable(pipes, func(i, j int) bool {
		return compare(&pipes[i], &pipes[j]) < 0
	})
	return pipes
}

// Records strips the sort keys
func Records(pipes []DisplayPipe) []Record {
	res := make([]Record, len(pipes))
	for i, p := range pipes {
		res[i] = p.Record
	}
	return res
}
