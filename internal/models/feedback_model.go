package models

import "time"

// WorkerFeedback is a fire-and-forget feedback record about a crew member.
// The client only ever writes these; no read-back is modeled.
type WorkerFeedback struct {
	ID         string    `json:"id" firestore:"-"`
	UserID     string    `json:"userId" firestore:"userId"`
	WorkerID   string    `json:"workerId" firestore:"workerId"`
	WorkerRole string    `json:"workerRole,omitempty" firestore:"workerRole,omitempty"` // "driver" or "collector"
	Rating     int       `json:"rating,omitempty" firestore:"rating,omitempty"`
	Comment    string    `json:"comment" firestore:"comment"`
	CreatedAt  time.Time `json:"createdAt" firestore:"createdAt,serverTimestamp"`
}
