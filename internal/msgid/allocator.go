// Package msgid assigns wire message IDs.
//
// Allocation is a pure function of the set of message names: names are
// sorted lexicographically (case-sensitive ASCII, so uppercase sorts
// before lowercase) and numbered sequentially. Appending a name that
// sorts last leaves existing IDs untouched; inserting one earlier shifts
// every later ID by one. That shift is intentional — callers version
// their protocol around it, and "fixing" it to insertion order would
// break determinism across schema files.
package msgid

import (
	"fmt"
	"sort"

	"protogen/internal/schema"
)

// MaxMessages is the hard cap: IDs must fit one wire byte.
const MaxMessages = 256

// AllocationError is fatal: the schema holds more messages than the wire
// format can address.
type AllocationError struct {
	Count int
}

func (e *AllocationError) Error() string {
	return fmt.Sprintf("too many messages: %d (max %d, IDs must fit one byte)", e.Count, MaxMessages)
}

// Allocate assigns IDs startID, startID+1, ... to messages in
// name-sorted order.
func Allocate(messages []*schema.Message, startID int) (map[string]int, error) {
	names := make([]string, len(messages))
	for i, m := range messages {
		names[i] = m.Name
	}
	return AllocateNames(names, startID)
}

// AllocateNames is Allocate over bare names.
func AllocateNames(names []string, startID int) (map[string]int, error) {
	if len(names) > MaxMessages {
		return nil, &AllocationError{Count: len(names)}
	}
	sorted := append([]string(nil), names...)
	sort.Strings(sorted)

	ids := make(map[string]int, len(sorted))
	for i, name := range sorted {
		ids[name] = startID + i
	}
	return ids, nil
}
