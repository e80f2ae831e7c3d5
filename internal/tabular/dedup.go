// De-duplication collapses frame rows that share a business key before they
// hit the database, reducing write amplification and avoiding constraint
// errors on bulk loads. The database should still maintain UNIQUE/PK
// constraints as a backstop.
//
// A row's key is the xxh3 hash of its key fields rendered as strings with a
// NUL separator (nil -> "\x00"). Rows missing a key column pass through
// untouched.
package tabular

import (
	"github.com/zeebo/xxh3"
)

// Dedup policies.
const (
	// KeepFirst keeps the earliest occurrence of each key, preserving
	// input order.
	KeepFirst = "keep-first"
	// KeepLast keeps the latest occurrence of each key (the default when
	// policy is empty).
	KeepLast = "keep-last"
)

// Dedup returns a new Frame containing only the winning row for each key.
// Keys name the columns forming the business key; an unknown key column
// disables de-duplication and the input frame is returned unchanged.
func Dedup(f *Frame, keys []string, policy string) *Frame {
	if f.Len() == 0 || len(keys) == 0 {
		return f
	}
	keyIdx := make([]int, 0, len(keys))
	for _, k := range keys {
		found := -1
		for i, n := range f.names {
			if n == k {
				found = i
				break
			}
		}
		if found < 0 {
			return f
		}
		keyIdx = append(keyIdx, found)
	}
	if policy == "" {
		policy = KeepLast
	}

	hash := func(row int) uint64 {
		var buf []byte
		for _, c := range keyIdx {
			v := f.cols[c][row]
			if v == nil {
				buf = append(buf, 0)
			} else {
				buf = append(buf, FormatValue(v)...)
			}
			buf = append(buf, 0)
		}
		return xxh3.Hash(buf)
	}

	winner := make(map[uint64]int, f.Len())
	order := make([]uint64, 0, f.Len())
	for i := 0; i < f.Len(); i++ {
		h := hash(i)
		if _, seen := winner[h]; !seen {
			winner[h] = i
			order = append(order, h)
			continue
		}
		if policy == KeepLast {
			winner[h] = i
		}
	}

	out := New(f.names...)
	for _, h := range order {
		_ = out.AppendRow(f.Row(winner[h])...)
	}
	return out
}
