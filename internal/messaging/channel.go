package messaging

import (
	"context"
	"sync"
)

type result struct {
	resp Response
	err  error
}

type envelope struct {
	ctx   context.Context
	req   Request
	reply chan result
}

// Channel is an in-process message channel into one context. Requests are
// served one at a time, in arrival order, by the goroutine running Serve.
type Channel struct {
	requests  chan envelope
	done      chan struct{}
	closeOnce sync.Once
}

// NewChannel creates an open channel with no server attached.
func NewChannel() *Channel {
	return &Channel{
		requests: make(chan envelope),
		done:     make(chan struct{}),
	}
}

// Listen creates a channel and serves it with h until ctx ends or the
// channel is closed.
func Listen(ctx context.Context, h Handler) *Channel {
	c := NewChannel()
	go c.Serve(ctx, h)
	return c
}

// Send delivers req and waits for the reply. There is no timeout beyond ctx.
func (c *Channel) Send(ctx context.Context, req Request) (Response, error) {
	select {
	case <-c.done:
		return Response{}, ErrClosed
	default:
	}

	reply := make(chan result, 1)

	select {
	case c.requests <- envelope{ctx: ctx, req: req, reply: reply}:
	case <-c.done:
		return Response{}, ErrClosed
	case <-ctx.Done():
		return Response{}, ctx.Err()
	}

	select {
	case r := <-reply:
		return r.resp, r.err
	case <-c.done:
		return Response{}, ErrClosed
	case <-ctx.Done():
		return Response{}, ctx.Err()
	}
}

// Serve handles requests until ctx is cancelled or Close is called.
func (c *Channel) Serve(ctx context.Context, h Handler) error {
	for {
		select {
		case env := <-c.requests:
			select {
			case <-c.done:
				env.reply <- result{err: ErrClosed}
				return nil
			default:
			}
			resp, err := h.Handle(env.ctx, env.req)
			env.reply <- result{resp: resp, err: err}
		case <-c.done:
			return nil
		case <-ctx.Done():
			c.Close()
			return ctx.Err()
		}
	}
}

// Close stops the channel. Pending and future sends return ErrClosed.
func (c *Channel) Close() {
	c.closeOnce.Do(func() { close(c.done) })
}
