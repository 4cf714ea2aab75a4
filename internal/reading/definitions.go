package reading

import (
	"strings"

	"github.com/willabides/inkml/diag"
	"github.com/willabides/inkml/internal/ids"
	"github.com/willabides/inkml/internal/model"
	"github.com/willabides/inkml/internal/resolve"
	"github.com/willabides/inkml/xmltree"
)

// HarvestDefinitions reads every <definitions> element's ink sources,
// brushes, trace formats, and timestamps, then contexts (within
// <definitions> first, then top-level id-bearing ones), registers any
// ink source/trace format/brush/timestamp nested inline inside those
// contexts, reads <definitions>-scoped traces/groups/views purely for
// their id-registration side effects, and finally resolves every
// cross-reference.
func HarvestDefinitions(root xmltree.Node, assumeLocalRefs bool, sink diag.Sink) *model.Definitions {
	h := NewHarvest()
	defs := model.NewDefinitions()

	defsElements := root.ChildrenNamed("definitions")

	for _, de := range defsElements {
		for _, e := range de.ChildrenNamed("inkSource") {
			src, ok := readInkSource(e, sink)
			if !ok {
				continue
			}
			defs.InkSources[src.ID] = src
			if src.TraceFormat.ID != "" {
				defs.TraceFormats[src.TraceFormat.ID] = src.TraceFormat
			}
		}
		for _, e := range de.ChildrenNamed("brush") {
			env := readBrush(e, sink)
			if env.Brush.ID == "" {
				continue
			}
			h.Brushes[env.Brush.ID] = env
			defs.Brushes[env.Brush.ID] = env.Brush
		}
		for _, e := range de.ChildrenNamed("traceFormat") {
			tf := readTraceFormat(e, sink)
			if tf.ID == "" {
				continue
			}
			defs.TraceFormats[tf.ID] = tf
		}
		for _, e := range de.ChildrenNamed("timestamp") {
			env, ok := readTimestamp(e, sink)
			if !ok {
				continue
			}
			h.Timestamps[env.Timestamp.ID] = env
			defs.Timestamps[env.Timestamp.ID] = env.Timestamp
		}
	}

	for _, de := range defsElements {
		for _, e := range de.ChildrenNamed("context") {
			registerContext(readContext(e, sink), h, defs)
		}
	}
	for _, e := range root.ChildrenNamed("context") {
		registerContext(readContext(e, sink), h, defs)
	}

	for _, env := range h.Contexts {
		if src, ok := env.InkSourceOrRef.(*model.InkSource); ok && src.ID != "" {
			if _, exists := defs.InkSources[src.ID]; !exists {
				defs.InkSources[src.ID] = src
			}
		}
		if tf, ok := env.TraceFormatOrRef.(*model.TraceFormat); ok && tf.ID != "" {
			if _, exists := defs.TraceFormats[tf.ID]; !exists {
				defs.TraceFormats[tf.ID] = tf
			}
		}
		if benv, ok := env.BrushOrRef.(*BrushEnvelope); ok && benv.Brush.ID != "" {
			if _, exists := defs.Brushes[benv.Brush.ID]; !exists {
				defs.Brushes[benv.Brush.ID] = benv.Brush
				h.Brushes[benv.Brush.ID] = benv
			}
		}
		if tenv, ok := env.TimestampOrRef.(*TimestampEnvelope); ok && tenv.Timestamp.ID != "" {
			if _, exists := defs.Timestamps[tenv.Timestamp.ID]; !exists {
				defs.Timestamps[tenv.Timestamp.ID] = tenv.Timestamp
				h.Timestamps[tenv.Timestamp.ID] = tenv
			}
		}
	}

	for _, de := range defsElements {
		readTraceItems(de, defs, nil, assumeLocalRefs, true, sink)
	}

	resolveReferences(defs, h, assumeLocalRefs, sink)

	return defs
}

// registerContext stores a read context envelope under its id, unless
// the id is empty. Unidentified contexts are ignored: they are not
// registered, so nothing can reference them, and an id-less top-level
// <context> does not change the context of the traces that follow it.
// A trace's context comes only from its own contextRef or from an
// enclosing trace group.
func registerContext(env *ContextEnvelope, h *Harvest, defs *model.Definitions) {
	if env.Context.ID == "" {
		return
	}
	h.Contexts[env.Context.ID] = env
	defs.Contexts[env.Context.ID] = env.Context
}

// toLocalID normalizes a parent ref string into the bare id
// resolve.Parents uses as a table key. A leading '#' is dropped; a ref
// without one is used unchanged, so it resolves whenever an entry with
// exactly that id exists, whether or not assumeLocalRefs is set.
func toLocalID(ref string) string {
	return ids.ToLocal(ref)
}

// resolveReferences runs the three parent-chain fixed-point passes in
// order (brushes, timestamps, contexts) and then resolves context
// content references.
func resolveReferences(defs *model.Definitions, h *Harvest, assumeLocalRefs bool, sink diag.Sink) {
	droppedBrushes := resolve.Parents(h.Brushes, func(e *BrushEnvelope) bool {
		return e.ParentRef == "" || e.ParentRef == "#DefaultBrush"
	}, toLocalID)
	if len(droppedBrushes) > 0 {
		sink.Warn("inkml: some brush references are either cyclic or incorrect and could not be resolved; ignoring: %s", strings.Join(droppedBrushes, ", "))
		for _, id := range droppedBrushes {
			delete(defs.Brushes, id)
			delete(h.Brushes, id)
		}
	}

	droppedTimestamps := resolve.Parents(h.Timestamps, func(e *TimestampEnvelope) bool {
		return e.ParentRef == ""
	}, toLocalID)
	if len(droppedTimestamps) > 0 {
		sink.Warn("inkml: some timestamp references are either cyclic or incorrect and could not be resolved; ignoring: %s", strings.Join(droppedTimestamps, ", "))
		for _, id := range droppedTimestamps {
			delete(defs.Timestamps, id)
			delete(h.Timestamps, id)
		}
	}

	droppedContexts := resolve.Parents(h.Contexts, func(e *ContextEnvelope) bool {
		return e.ParentRef == ""
	}, toLocalID)
	if len(droppedContexts) > 0 {
		sink.Warn("inkml: some context references are either cyclic or incorrect and could not be resolved; ignoring: %s", strings.Join(droppedContexts, ", "))
		for _, id := range droppedContexts {
			delete(defs.Contexts, id)
			delete(h.Contexts, id)
		}
	}

	resolveContextContent(defs, h, assumeLocalRefs, sink)
}

// lookupLocalRef resolves ref against table, honoring assumeLocalRefs,
// and reports whether ref was classified as external (never even looked
// up) versus simply not found.
func lookupLocalRef[T any](ref string, table map[string]T, assumeLocalRefs bool) (value T, found bool, external bool) {
	if !ids.IsLocal(ref) && !assumeLocalRefs {
		return value, false, true
	}
	v, ok := table[ids.ToLocal(ref)]
	return v, ok, false
}

// resolveContextContent resolves each surviving context's ink source,
// trace format, brush, and timestamp content references. Nested id-less
// brush and timestamp envelopes skipped the parent-chain passes; their
// parent refs resolve here, against the already-settled tables.
func resolveContextContent(defs *model.Definitions, h *Harvest, assumeLocalRefs bool, sink diag.Sink) {
	for _, env := range h.Contexts {
		switch v := env.InkSourceOrRef.(type) {
		case *model.InkSource:
			env.Context.InkSource = v
		case string:
			if v != "" {
				src, found, external := lookupLocalRef(v, defs.InkSources, assumeLocalRefs)
				switch {
				case external:
					sink.Warn("inkml: external references are not yet supported: %q", v)
				case found:
					env.Context.InkSource = src
				default:
					sink.Warn("inkml: could not find inkSource %q referenced by context %q", v, env.Context.ID)
				}
			}
		}

		switch v := env.TraceFormatOrRef.(type) {
		case *model.TraceFormat:
			env.Context.TraceFormat = v
		case string:
			if v != "" {
				tf, found, external := lookupLocalRef(v, defs.TraceFormats, assumeLocalRefs)
				switch {
				case external:
					sink.Warn("inkml: external references are not yet supported: %q", v)
				case found:
					env.Context.TraceFormat = tf
				default:
					sink.Warn("inkml: could not find traceFormat %q referenced by context %q", v, env.Context.ID)
				}
			}
		}

		switch v := env.BrushOrRef.(type) {
		case *BrushEnvelope:
			if v.Brush.ID != "" {
				if b, ok := defs.Brushes[v.Brush.ID]; ok {
					env.Context.Brush = b
				} else {
					sink.Warn("inkml: context %q references a brush that was ignored", env.Context.ID)
				}
			} else {
				env.Context.Brush = v.Brush
				if v.ParentRef != "" {
					parentID := ids.ToLocal(v.ParentRef)
					if p, ok := defs.Brushes[parentID]; ok {
						v.Brush.Parent = p
					} else {
						sink.Warn("inkml: could not find brush %q referenced by brush %q", v.ParentRef, v.Brush.ID)
					}
				}
			}
		case string:
			if v != "" {
				b, found, external := lookupLocalRef(v, defs.Brushes, assumeLocalRefs)
				switch {
				case external:
					sink.Warn("inkml: external references are not yet supported: %q", v)
				case found:
					env.Context.Brush = b
				default:
					sink.Warn("inkml: could not find brush %q referenced by context %q", v, env.Context.ID)
				}
			}
		}

		switch v := env.TimestampOrRef.(type) {
		case *TimestampEnvelope:
			if v.Timestamp.ID != "" {
				if ts, ok := defs.Timestamps[v.Timestamp.ID]; ok {
					env.Context.Timestamp = ts
				} else {
					sink.Warn("inkml: context %q references a timestamp that was ignored", env.Context.ID)
				}
			} else {
				env.Context.Timestamp = v.Timestamp
				if v.ParentRef != "" {
					parentID := ids.ToLocal(v.ParentRef)
					if p, ok := defs.Timestamps[parentID]; ok {
						v.Timestamp.Parent = p
					} else {
						sink.Warn("inkml: could not find timestamp %q referenced by timestamp %q", v.ParentRef, v.Timestamp.ID)
					}
				}
			}
		case string:
			if v != "" {
				ts, found, external := lookupLocalRef(v, defs.Timestamps, assumeLocalRefs)
				switch {
				case external:
					sink.Warn("inkml: external references are not yet supported: %q", v)
				case found:
					env.Context.Timestamp = ts
				default:
					sink.Warn("inkml: could not find timestamp %q referenced by context %q", v, env.Context.ID)
				}
			}
		}
	}
}

// ReadTraceItems is the exported entry point the root package uses for
// pass 3: reading the root's own direct trace/traceGroup/traceView
// children once Definitions is fully resolved.
func ReadTraceItems(root xmltree.Node, defs *model.Definitions, assumeLocalRefs bool, sink diag.Sink) []model.TraceItem {
	return readTraceItems(root, defs, nil, assumeLocalRefs, true, sink)
}

// ReadTopLevelAnnotations is the exported entry point for reading the
// root element's own direct annotation/annotationXML children.
func ReadTopLevelAnnotations(root xmltree.Node, sink diag.Sink) []*model.Annotation {
	return readAnnotations(root, sink)
}
