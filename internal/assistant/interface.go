package assistant

import "context"

// UseCase defines the business logic interface for the assistant domain.
type UseCase interface {
	// Answer produces the reply for one user turn. It never fails: every
	// failure path yields a user-facing reply with a provenance tag.
	Answer(ctx context.Context, input AnswerInput) AnswerOutput
}
