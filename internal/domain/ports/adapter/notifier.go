package adapter

import "context"

// StaffNotifier delivers short operational messages to the staff channel.
// Delivery failures are logged by callers and never fail the operation that
// produced the message.
type StaffNotifier interface {
	Notify(ctx context.Context, text string) error
}
