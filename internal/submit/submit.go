// Package submit defines the leaderboard submission hook.
//
// The hook mirrors the payload of the original score relay endpoint but is
// intentionally inert: no network submission is implemented, and gameplay
// never depends on its outcome.
package submit

import "context"

// Report is the score payload a submitter would relay.
type Report struct {
	UserID          int64  `json:"user_id"`
	ChatID          int64  `json:"chat_id,omitempty"`
	MessageID       int64  `json:"message_id,omitempty"`
	InlineMessageID string `json:"inline_message_id,omitempty"`
	Score           int    `json:"score"`
}

// Submitter relays a finished run's score to an external leaderboard.
// Implementations must be best-effort; callers ignore returned errors.
type Submitter interface {
	Submit(ctx context.Context, r Report) error
}

// Noop is the default submitter. It accepts every report and does nothing.
type Noop struct{}

// Submit discards the report.
func (Noop) Submit(context.Context, Report) error {
	return nil
}

var _ Submitter = Noop{}
