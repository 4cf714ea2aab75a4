package reading

import (
	"github.com/willabides/inkml/diag"
	"github.com/willabides/inkml/internal/model"
	"github.com/willabides/inkml/xmltree"
)

// readTraceGroup reads a <traceGroup> element. Its children are decoded
// recursively by readTraceItems, which are the package's entry point for
// both this and the top-level/definitions trace-item scans.
func readTraceGroup(n xmltree.Node, defs *model.Definitions, ambient *model.Context, assumeLocalRefs bool, requireRefs bool, sink diag.Sink) (*model.TraceGroup, bool) {
	g := &model.TraceGroup{}
	if id, ok := n.ID(); ok {
		g.ID = id
	}
	if ref, hasRef := n.Attr("contextRef"); hasRef {
		ctx, lk := resolveContextRef(ref, hasRef, defs, assumeLocalRefs, sink)
		if lk == refMiss && requireRefs {
			return nil, false
		}
		g.Context = ctx
	}
	if ref, hasRef := n.Attr("brushRef"); hasRef {
		b, lk := resolveBrushRef(ref, hasRef, defs, assumeLocalRefs, sink)
		if lk == refMiss && requireRefs {
			return nil, false
		}
		g.Brush = b
	}
	g.Annotations = readAnnotations(n, sink)

	effectiveContext := ambient
	if g.Context != nil {
		effectiveContext = g.Context
	}
	g.Traces = readTraceItems(n, defs, effectiveContext, assumeLocalRefs, requireRefs, sink)
	return g, true
}

// readTraceItems reads the direct <trace>/<traceGroup>/<traceView>
// children of container, registering any that carry an id into defs, and
// propagating context as the ambient context for nested reads.
func readTraceItems(container xmltree.Node, defs *model.Definitions, context *model.Context, assumeLocalRefs bool, requireRefs bool, sink diag.Sink) []model.TraceItem {
	var items []model.TraceItem
	for _, c := range container.Children() {
		switch c.Tag().Local {
		case "trace":
			t, ok := readTrace(c, defs, context, assumeLocalRefs, requireRefs, sink)
			if !ok {
				sink.Warn("inkml: dropping malformed trace")
				continue
			}
			items = append(items, t)
			if t.ID != "" {
				defs.Traces[t.ID] = t
			}
		case "traceGroup":
			g, ok := readTraceGroup(c, defs, context, assumeLocalRefs, requireRefs, sink)
			if !ok {
				sink.Warn("inkml: dropping malformed traceGroup")
				continue
			}
			items = append(items, g)
			if g.ID != "" {
				defs.TraceGroups[g.ID] = g
			}
		case "traceView":
			v, ok := readTraceView(c, defs, assumeLocalRefs, sink)
			if !ok {
				sink.Warn("inkml: dropping malformed traceView")
				continue
			}
			items = append(items, v)
			if v.ID != "" {
				defs.TraceViews[v.ID] = v
			}
		}
	}
	return items
}
