package model

import "github.com/rotisserie/eris"

// QueueID names a work queue: a bucket of leads representing one
// category of follow-up work.
type QueueID string

const (
	QueueActionNow   QueueID = "action_now"
	QueueFollowUp    QueueID = "follow_up"
	QueueNegotiating QueueID = "negotiating"
	QueueAll         QueueID = "all"
)

// Queues lists every queue in display order.
var Queues = []QueueID{QueueActionNow, QueueFollowUp, QueueNegotiating, QueueAll}

// ParseQueueID validates a raw queue identifier.
func ParseQueueID(s string) (QueueID, error) {
	q := QueueID(s)
	switch q {
	case QueueActionNow, QueueFollowUp, QueueNegotiating, QueueAll:
		return q, nil
	}
	return "", eris.Errorf("model: unknown queue %q (want action_now, follow_up, negotiating, or all)", s)
}
