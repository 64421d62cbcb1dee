// Package queue buckets leads into work queues and orders them by the
// canonical priority rules. Both operations return new slices and never
// mutate their inputs, so filter-then-sort composes freely.
package queue

import (
	"github.com/patrik-drean/dealflow-cli/internal/model"
	"github.com/patrik-drean/dealflow-cli/internal/scorer"
)

// Classify returns the members of the given queue as a new slice,
// preserving the relative order of the input. Archived leads are
// excluded from every queue.
//
// A lead with no backend score and no price/sqft data has effective
// score 0 and so never qualifies for action_now; that is intentional,
// unscored leads need data entry before they need action.
func Classify(leads []model.Lead, q model.QueueID, sc *scorer.Scorer) []model.Lead {
	result := make([]model.Lead, 0, len(leads))
	for _, lead := range leads {
		if lead.Archived {
			continue
		}
		if matches(lead, q, sc) {
			result = append(result, lead)
		}
	}
	return result
}

func matches(lead model.Lead, q model.QueueID, sc *scorer.Scorer) bool {
	switch q {
	case model.QueueActionNow:
		return lead.Status == model.StatusNew && sc.EffectiveScore(lead) >= sc.MinActionScore()
	case model.QueueFollowUp:
		return lead.FollowUpDue
	case model.QueueNegotiating:
		return lead.Status == model.StatusNegotiating || lead.Status == model.StatusResponding
	case model.QueueAll:
		return true
	}
	return false
}
