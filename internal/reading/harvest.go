// Package reading implements the per-element InkML readers: one function
// per element kind, each consuming an xmltree.Node and yielding either a
// finished entity or an envelope carrying unresolved references.
package reading

import "github.com/willabides/inkml/internal/model"

// BrushEnvelope pairs a parsed Brush with its unresolved brushRef parent
// reference.
type BrushEnvelope struct {
	Brush     *model.Brush
	ParentRef string
}

// ID returns the wrapped brush's identifier.
func (e *BrushEnvelope) ID() string { return e.Brush.ID }

// ParentRefOf implements resolve.Entry.
func (e *BrushEnvelope) ParentRefOf() string { return e.ParentRef }

// SetParent attaches the resolved parent brush.
func (e *BrushEnvelope) SetParent(p *BrushEnvelope) { e.Brush.Parent = p.Brush }

// TimestampEnvelope pairs a parsed Timestamp with its unresolved
// timestampRef parent reference.
type TimestampEnvelope struct {
	Timestamp *model.Timestamp
	ParentRef string
}

func (e *TimestampEnvelope) ID() string                     { return e.Timestamp.ID }
func (e *TimestampEnvelope) ParentRefOf() string            { return e.ParentRef }
func (e *TimestampEnvelope) SetParent(p *TimestampEnvelope) { e.Timestamp.Parent = p.Timestamp }

// ContextEnvelope pairs a parsed Context with its unresolved parent and
// content references. Each *OrRef field holds either a string (an
// unresolved `*Ref` attribute), an inline parsed value (a nested child
// element), or nil (absent) until the resolver runs.
type ContextEnvelope struct {
	Context          *model.Context
	ParentRef        string
	InkSourceOrRef   any // string | *model.InkSource | nil
	TraceFormatOrRef any // string | *model.TraceFormat | nil
	BrushOrRef       any // string | *BrushEnvelope | nil
	TimestampOrRef   any // string | *TimestampEnvelope | nil
}

func (e *ContextEnvelope) ID() string                   { return e.Context.ID }
func (e *ContextEnvelope) ParentRefOf() string          { return e.ParentRef }
func (e *ContextEnvelope) SetParent(p *ContextEnvelope) { e.Context.Parent = p.Context }

// Harvest is the reading-phase bundle of entities and envelopes gathered
// by pass 1 (definition harvesting), keyed by id, before reference
// resolution runs. It is discarded once resolution completes; the
// surviving, resolved entities live on in model.Definitions.
type Harvest struct {
	Contexts     map[string]*ContextEnvelope
	Brushes      map[string]*BrushEnvelope
	InkSources   map[string]*model.InkSource
	TraceFormats map[string]*model.TraceFormat
	Timestamps   map[string]*TimestampEnvelope
	Traces       map[string]*model.Trace
	TraceGroups  map[string]*model.TraceGroup
	TraceViews   map[string]*model.TraceView
}

// NewHarvest returns a Harvest with every table initialized empty.
func NewHarvest() *Harvest {
	return &Harvest{
		Contexts:     map[string]*ContextEnvelope{},
		Brushes:      map[string]*BrushEnvelope{},
		InkSources:   map[string]*model.InkSource{},
		TraceFormats: map[string]*model.TraceFormat{},
		Timestamps:   map[string]*TimestampEnvelope{},
		Traces:       map[string]*model.Trace{},
		TraceGroups:  map[string]*model.TraceGroup{},
		TraceViews:   map[string]*model.TraceView{},
	}
}
