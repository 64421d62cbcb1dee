package queue

import (
	"sort"

	"github.com/patrik-drean/dealflow-cli/internal/model"
	"github.com/patrik-drean/dealflow-cli/internal/scorer"
)

// Compare is the canonical within-queue ordering: priority tier first
// (urgent before high before medium before normal), then effective score
// descending. Returns -1 when a sorts before b, 1 when b sorts before a,
// and 0 on a full tie. Absent scores compare as 0; the leads themselves
// are never modified.
func Compare(a, b model.Lead, sc *scorer.Scorer) int {
	if ra, rb := a.Priority.Rank(), b.Priority.Rank(); ra != rb {
		if ra < rb {
			return -1
		}
		return 1
	}
	if sa, sb := sc.EffectiveScore(a), sc.EffectiveScore(b); sa != sb {
		if sa > sb {
			return -1
		}
		return 1
	}
	return 0
}

// Sort returns a sorted copy of leads ordered by Compare, with the
// original input position as the final tiebreak so the ordering is a
// deterministic pure function of its input. Sorting an already-sorted
// slice yields the same slice by value.
func Sort(leads []model.Lead, sc *scorer.Scorer) []model.Lead {
	type entry struct {
		lead model.Lead
		pos  int
	}
	entries := make([]entry, len(leads))
	for i, lead := range leads {
		entries[i] = entry{lead: lead, pos: i}
	}

	sort.Slice(entries, func(i, j int) bool {
		if c := Compare(entries[i].lead, entries[j].lead, sc); c != 0 {
			return c < 0
		}
		return entries[i].pos < entries[j].pos
	})

	result := make([]model.Lead, len(entries))
	for i, e := range entries {
		result[i] = e.lead
	}
	return result
}
