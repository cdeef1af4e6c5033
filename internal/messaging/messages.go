// Package messaging carries typed request/response pairs between the
// isolated contexts of the checker: the background service, the page
// context of a tab, and the popup.
package messaging

import (
	"context"
	"errors"
	"fmt"

	"pecheck/internal/models"
	"pecheck/internal/registry"
)

// Action names a request on the wire.
type Action string

const (
	ActionCheckDomain   Action = "checkDomain"
	ActionGetPEDatabase Action = "getPEDatabase"
	ActionGetPageInfo   Action = "getPageInfo"
)

// Messaging errors.
var (
	ErrClosed         = errors.New("message channel closed")
	ErrUnknownAction  = errors.New("unknown message action")
	ErrUnhandled      = errors.New("request not handled by this context")
	ErrNoPageContext  = errors.New("page context unreachable")
	ErrMissingPayload = errors.New("response missing expected payload")
)

// Request is implemented by CheckDomain, GetPEDatabase and GetPageInfo.
type Request interface {
	Action() Action
}

// CheckDomain asks the background context for the record matching Domain.
type CheckDomain struct {
	Domain string
}

func (CheckDomain) Action() Action { return ActionCheckDomain }

// GetPEDatabase asks the background context for the full database.
type GetPEDatabase struct{}

func (GetPEDatabase) Action() Action { return ActionGetPEDatabase }

// GetPageInfo asks a page context for its extracted signals.
type GetPageInfo struct{}

func (GetPageInfo) Action() Action { return ActionGetPageInfo }

// Response carries the payload for whichever request was sent.
// A CheckDomain response with a nil Record means "no match".
type Response struct {
	Record   *models.PEOwnershipRecord
	Database *registry.Database
	Page     *models.PageSignals
}

// Handler answers requests inside one context.
type Handler interface {
	Handle(ctx context.Context, req Request) (Response, error)
}

// HandlerFunc adapts a function to Handler.
type HandlerFunc func(ctx context.Context, req Request) (Response, error)

func (f HandlerFunc) Handle(ctx context.Context, req Request) (Response, error) {
	return f(ctx, req)
}

// Message is the JSON wire form of a request.
type Message struct {
	Action Action `json:"action"`
	Domain string `json:"domain,omitempty"`
}

// Decode converts a wire message into a typed request.
func Decode(m Message) (Request, error) {
	switch m.Action {
	case ActionCheckDomain:
		return CheckDomain{Domain: m.Domain}, nil
	case ActionGetPEDatabase:
		return GetPEDatabase{}, nil
	case ActionGetPageInfo:
		return GetPageInfo{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAction, m.Action)
	}
}

// Encode converts a typed request into its wire form.
func Encode(req Request) Message {
	m := Message{Action: req.Action()}
	if cd, ok := req.(CheckDomain); ok {
		m.Domain = cd.Domain
	}
	return m
}
