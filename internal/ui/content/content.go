// Package content defines the widgets hosted by pane leaves and the registry
// that creates them by content type.
package content

import (
	"context"

	"github.com/bnema/paneshell/internal/application/port"
	"github.com/bnema/paneshell/internal/domain/entity"
	"github.com/bnema/paneshell/internal/ui/layout"
	"github.com/bnema/paneshell/internal/ui/lifecycle"
)

// Built-in content types.
const (
	TypeWelcome  entity.ContentType = "welcome"
	TypeNotes    entity.ContentType = "notes"
	TypeTerminal entity.ContentType = "terminal"
)

// RequestKind distinguishes outbound content requests.
type RequestKind string

const (
	RequestFocus  RequestKind = "focus"
	RequestAction RequestKind = "action"
)

// Actions a content widget may request from the workspace.
const (
	ActionSplitHorizontal = "split-horizontal"
	ActionSplitVertical   = "split-vertical"
	ActionClose           = "close"
	ActionChangeType      = "change-type" // Arg holds the new content type
	ActionStateChanged    = "state-changed"
)

// Request is an event a content widget sends to the workspace. The core never
// calls back into the widget in response; the workspace decides.
type Request struct {
	LeafID entity.NodeID
	Kind   RequestKind
	Action string
	Arg    string
}

// Widget is a content widget: the lifecycle hooks, the view placed in the
// pane, and an outbound request channel.
type Widget interface {
	lifecycle.Content

	// View returns the widget shown inside the pane. It must be the same
	// instance for the whole life of the content.
	View() layout.Widget
	// OnRequest subscribes to outbound requests.
	OnRequest(fn func(Request)) (unsubscribe func())
}

// Stateful is implemented by content that persists state in layout snapshots.
type Stateful interface {
	SaveState() map[string]any
}

// Metadata describes a content type.
type Metadata struct {
	Type        entity.ContentType `json:"type" yaml:"type"`
	Title       string             `json:"title" yaml:"title"`
	Description string             `json:"description,omitempty" yaml:"description,omitempty"`
	// CanSuspend tells the lifecycle machine whether Suspend/Resume apply.
	CanSuspend bool `json:"can_suspend" yaml:"can_suspend"`
}

// Params carry what a constructor needs to build a widget.
type Params struct {
	LeafID    entity.NodeID
	State     map[string]any
	Widgets   layout.WidgetFactory
	Scheduler port.Scheduler
}

// Constructor builds a content widget. It must not block; slow setup belongs
// in Start.
type Constructor func(ctx context.Context, p Params) (Widget, error)

// Emitter implements the outbound half of Widget. Embed it in content types.
type Emitter struct {
	leafID entity.NodeID
	bus    lifecycle.Bus[Request]
}

// NewEmitter returns an emitter tagging requests with leafID.
func NewEmitter(leafID entity.NodeID) *Emitter {
	return &Emitter{leafID: leafID}
}

// OnRequest subscribes to outbound requests.
func (e *Emitter) OnRequest(fn func(Request)) (unsubscribe func()) {
	return e.bus.Subscribe(fn)
}

// RequestFocus asks the workspace to focus this leaf.
func (e *Emitter) RequestFocus() {
	e.bus.Publish(Request{LeafID: e.leafID, Kind: RequestFocus})
}

// RequestAction asks the workspace to perform action on this leaf.
func (e *Emitter) RequestAction(action, arg string) {
	e.bus.Publish(Request{LeafID: e.leafID, Kind: RequestAction, Action: action, Arg: arg})
}

// Subscribers returns the number of live subscriptions.
func (e *Emitter) Subscribers() int { return e.bus.Len() }
