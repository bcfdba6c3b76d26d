package project

import (
	"fmt"
	"strconv"
	"strings"
)

// IDStrategy derives the identifier for a new project from the current snapshot.
type IDStrategy interface {
	NextID(snap Snapshot) string
}

// CountIDs numbers a new project one past the number of stored projects.
// After a deletion this can repeat an id that is still in use; the insert
// then fails with a constraint violation.
type CountIDs struct{}

func (CountIDs) NextID(snap Snapshot) string {
	return fmt.Sprintf("%s%d", IDPrefix, snap.Len()+1)
}

// MaxIDs numbers a new project one past the highest numeric suffix in use,
// so ids stay unique across deletions.
type MaxIDs struct{}

func (MaxIDs) NextID(snap Snapshot) string {
	highest := 0
	for _, p := range snap {
		n, ok := idNumber(p.ID)
		if ok && n > highest {
			highest = n
		}
	}
	return fmt.Sprintf("%s%d", IDPrefix, highest+1)
}

// StrategyByName resolves a configured strategy name.
func StrategyByName(name string) (IDStrategy, error) {
	switch name {
	case "", "count":
		return CountIDs{}, nil
	case "max":
		return MaxIDs{}, nil
	default:
		return nil, fmt.Errorf("unknown id strategy %q", name)
	}
}

func idNumber(id string) (int, bool) {
	if !strings.HasPrefix(id, IDPrefix) {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimPrefix(id, IDPrefix))
	if err != nil {
		return 0, false
	}
	return n, true
}
