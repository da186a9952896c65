package core

import "context"

// ReviewService runs a single code review against the generative service.
// One call, one attempt: no retries are performed internally.
type ReviewService interface {
	Review(ctx context.Context, req ReviewRequest) (*ReviewResult, error)
}

// FollowUpService answers one follow-up question about reviewed code. The
// service is stateless per call; the caller replays the full transcript.
type FollowUpService interface {
	Ask(ctx context.Context, req ChatRequest) (string, error)
}
