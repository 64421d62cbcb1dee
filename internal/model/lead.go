package model

import "github.com/rotisserie/eris"

// Status is a lead's position in the sales lifecycle.
type Status string

const (
	StatusNew           Status = "New"
	StatusContacted     Status = "Contacted"
	StatusResponding    Status = "Responding"
	StatusNegotiating   Status = "Negotiating"
	StatusUnderContract Status = "UnderContract"
	StatusConverted     Status = "Converted"
	StatusArchived      Status = "Archived"
)

var validStatuses = map[Status]bool{
	StatusNew:           true,
	StatusContacted:     true,
	StatusResponding:    true,
	StatusNegotiating:   true,
	StatusUnderContract: true,
	StatusConverted:     true,
	StatusArchived:      true,
}

// ParseStatus validates a raw status string.
func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !validStatuses[st] {
		return "", eris.Errorf("model: unknown status %q", s)
	}
	return st, nil
}

// Priority is a coarse urgency tier, independent of the numeric deal score.
type Priority string

const (
	PriorityUrgent Priority = "urgent"
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityNormal Priority = "normal"
)

// priorityRank maps priority tiers to numeric ranks for comparison.
// Lower rank means more urgent (urgent is highest).
var priorityRank = map[Priority]int{
	PriorityUrgent: 0,
	PriorityHigh:   1,
	PriorityMedium: 2,
	PriorityNormal: 3,
}

// Rank returns the sort rank for a priority tier. Unrecognized tiers
// sort after normal.
func (p Priority) Rank() int {
	if r, ok := priorityRank[p]; ok {
		return r
	}
	return len(priorityRank)
}

// ParsePriority validates a raw priority string. Empty input defaults
// to normal.
func ParsePriority(s string) (Priority, error) {
	if s == "" {
		return PriorityNormal, nil
	}
	p := Priority(s)
	if _, ok := priorityRank[p]; !ok {
		return "", eris.Errorf("model: unknown priority %q", s)
	}
	return p, nil
}

// Lead is a single investor lead as sourced from the upstream CRM.
// The engine only ever reads Leads; derived values and filtered or
// sorted collections are always new allocations.
type Lead struct {
	ID                string   `json:"id"`
	Address           string   `json:"address,omitempty"`
	ListingPrice      float64  `json:"listingPrice"`
	SquareFootage     *float64 `json:"squareFootage,omitempty"`
	LeadScore         *int     `json:"leadScore,omitempty"`
	Status            Status   `json:"status"`
	Archived          bool     `json:"archived"`
	LastContactDate   string   `json:"lastContactDate,omitempty"`
	FollowUpDue       bool     `json:"followUpDue,omitempty"`
	Priority          Priority `json:"priority"`
	CreatedAt         string   `json:"createdAt"`
	NeighborhoodGrade string   `json:"neighborhoodGrade,omitempty"`
}
