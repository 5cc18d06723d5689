package badger

import (
	"fmt"
	"strings"
)

// Key prefixes for different data types
const (
	actRecordPrefix = "actrec"
	actTitlePrefix  = "acttit"
)

// makeActKey generates a key for an act by ID.
func makeActKey(id uint64) []byte {
	return []byte(fmt.Sprintf("%s:%d", actRecordPrefix, id))
}

// makeActTitleKey generates a key for the title index.
// Titles are lowercased so exact lookups are case-insensitive and so an
// iterator over the index yields acts in case-folded title order.
func makeActTitleKey(title string) []byte {
	return []byte(actTitlePrefix + ":" + strings.ToLower(title))
}
