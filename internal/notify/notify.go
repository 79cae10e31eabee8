package notify

import "context"

// Notifier delivers one payload to wherever it is configured to go. The
// pipeline treats delivery as fire-and-forget per alert: an error is logged
// by the caller and the next alert is still processed.
type Notifier interface {
	Send(ctx context.Context, p Payload) error
}
