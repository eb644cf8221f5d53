package queue

import "context"

// Client hands render messages to a queue backend.
type Client interface {
	Send(ctx context.Context, msg Message) error
}
