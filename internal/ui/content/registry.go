package content

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/bnema/paneshell/internal/application/port"
	"github.com/bnema/paneshell/internal/domain/entity"
	"github.com/bnema/paneshell/internal/logging"
	"github.com/bnema/paneshell/internal/ui/layout"
)

// ErrUnknownType is returned when no constructor is registered for a type.
var ErrUnknownType = errors.New("unknown content type")

type kind struct {
	meta Metadata
	ctor Constructor
}

// Registry maps content types to constructors and metadata. It is the single
// factory the workspace uses to create content.
type Registry struct {
	widgets   layout.WidgetFactory
	scheduler port.Scheduler

	mu    sync.RWMutex
	kinds map[entity.ContentType]kind
}

// NewRegistry creates an empty registry.
func NewRegistry(widgets layout.WidgetFactory, scheduler port.Scheduler) *Registry {
	return &Registry{
		widgets:   widgets,
		scheduler: scheduler,
		kinds:     make(map[entity.ContentType]kind),
	}
}

// Register adds or replaces a content type.
func (r *Registry) Register(meta Metadata, ctor Constructor) error {
	if strings.TrimSpace(string(meta.Type)) == "" {
		return errors.New("content type cannot be empty")
	}
	if ctor == nil {
		return errors.New("content constructor cannot be nil")
	}
	if meta.Title == "" {
		meta.Title = string(meta.Type)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.kinds[meta.Type] = kind{meta: meta, ctor: ctor}
	return nil
}

// Metadata returns the metadata of a registered type.
func (r *Registry) Metadata(t entity.ContentType) (Metadata, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	k, ok := r.kinds[t]
	return k.meta, ok
}

// Has reports whether t is registered.
func (r *Registry) Has(t entity.ContentType) bool {
	_, ok := r.Metadata(t)
	return ok
}

// Types returns the metadata of every registered type, sorted by type.
func (r *Registry) Types() []Metadata {
	r.mu.RLock()
	out := make([]Metadata, 0, len(r.kinds))
	for _, k := range r.kinds {
		out = append(out, k.meta)
	}
	r.mu.RUnlock()

	slices.SortFunc(out, func(a, b Metadata) int { return strings.Compare(string(a.Type), string(b.Type)) })
	return out
}

// Create builds the content widget for a leaf.
func (r *Registry) Create(
	ctx context.Context,
	t entity.ContentType,
	leafID entity.NodeID,
	state map[string]any,
) (Widget, Metadata, error) {
	r.mu.RLock()
	k, ok := r.kinds[t]
	r.mu.RUnlock()
	if !ok {
		return nil, Metadata{}, fmt.Errorf("create %q: %w", t, ErrUnknownType)
	}

	w, err := k.ctor(ctx, Params{
		LeafID:    leafID,
		State:     state,
		Widgets:   r.widgets,
		Scheduler: r.scheduler,
	})
	if err != nil {
		return nil, k.meta, fmt.Errorf("create %q for %s: %w", t, leafID, err)
	}
	if w == nil {
		return nil, k.meta, fmt.Errorf("create %q for %s: constructor returned no widget", t, leafID)
	}

	logging.FromContext(ctx).Debug().
		Str("content_type", string(t)).
		Str("pane_id", string(leafID)).
		Msg("content created")
	return w, k.meta, nil
}

// BuiltinOptions configure the built-in content types.
type BuiltinOptions struct {
	// Shell is the command run by terminal panes. Empty means $SHELL, then
	// /bin/sh.
	Shell string
}

// RegisterBuiltins registers the welcome, notes and terminal content types.
func RegisterBuiltins(r *Registry, opts BuiltinOptions) error {
	builtins := []struct {
		meta Metadata
		ctor Constructor
	}{
		{
			meta: Metadata{Type: TypeWelcome, Title: "Welcome", Description: "Start page listing the available content", CanSuspend: true},
			ctor: welcomeConstructor(r),
		},
		{
			meta: Metadata{Type: TypeNotes, Title: "Notes", Description: "Scratch text kept with the layout", CanSuspend: true},
			ctor: NewNotes,
		},
		{
			meta: Metadata{Type: TypeTerminal, Title: "Terminal", Description: "Line-mode shell on a pseudo terminal"},
			ctor: terminalConstructor(opts.Shell),
		},
	}
	for _, b := range builtins {
		if err := r.Register(b.meta, b.ctor); err != nil {
			return fmt.Errorf("register %s: %w", b.meta.Type, err)
		}
	}
	return nil
}
