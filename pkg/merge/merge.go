// Package merge offers simple tools to combine dynamic tables.
package merge

import (
	"go.llib.dev/frameless/pkg/errorkit"

	"go.llib.dev/tablekit/pkg/clone"
	"go.llib.dev/tablekit/pkg/tablekit"
)

// ErrNilTable is returned when a nil destination table can not be filled.
const ErrNilTable errorkit.Error = "merge: nil destination table"

// Tables will merge all passed tables into a single new table.
// Merging is intentionally order dependent, the last table wins.
func Tables(ts ...tablekit.Table) tablekit.Table {
	var out = make(tablekit.Table)
	for _, t := range ts {
		for k, v := range t {
			out[k] = v
		}
	}
	return out
}

// Defaults fills every key absent in dst from the defaults table.
//
// Default values are deep cloned before being stored,
// so no two destinations ever alias the same default sub-table.
// A cyclic default value fails with clone.ErrRecursion;
// defaults filled before the failing key stay set.
func Defaults(dst, defaults tablekit.Table) error {
	if dst == nil {
		return ErrNilTable
	}
	for k, dv := range defaults {
		if _, ok := dst[k]; ok {
			continue
		}
		cv, err := clone.Value(dv)
		if err != nil {
			return err
		}
		dst[k] = cv
	}
	return nil
}
