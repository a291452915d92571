// Package async provides the background task submission used for
// fire-and-forget document processing: the triggering request enqueues and
// returns immediately, and worker goroutines run the pipeline so failures are
// still logged rather than silently swallowed.
package async

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Job is the smallest useful unit. Extend as needed later (actor, trace, retry).
type Job struct {
	DocumentID  uuid.UUID
	Force       bool // enqueue even if the document already completed
	SubmittedAt time.Time
	TraceID     string
}

type Queue interface {
	Enqueue(ctx context.Context, job Job) error
	Shutdown(ctx context.Context)
}
