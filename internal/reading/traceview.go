package reading

import (
	"strconv"
	"strings"

	"github.com/willabides/inkml/diag"
	"github.com/willabides/inkml/internal/ids"
	"github.com/willabides/inkml/internal/model"
	"github.com/willabides/inkml/xmltree"
)

// readTraceView reads a <traceView> element. traceDataRef is required and
// must already be registered in defs as a Trace, TraceGroup, or
// TraceView. Views are read after the item they reference, in document
// order, so forward references are not supported.
func readTraceView(n xmltree.Node, defs *model.Definitions, assumeLocalRefs bool, sink diag.Sink) (*model.TraceView, bool) {
	ref, hasRef := n.Attr("traceDataRef")
	if !hasRef {
		sink.Warn("inkml: traceView missing required traceDataRef")
		return nil, false
	}
	if !ids.IsLocal(ref) && !assumeLocalRefs {
		sink.Warn("inkml: traceView has external traceDataRef %q", ref)
		return nil, false
	}
	id := ids.ToLocal(ref)

	var data model.TraceItem
	switch {
	case defs.Traces[id] != nil:
		data = defs.Traces[id]
	case defs.TraceGroups[id] != nil:
		data = defs.TraceGroups[id]
	case defs.TraceViews[id] != nil:
		data = defs.TraceViews[id]
	default:
		sink.Warn("inkml: traceView references unknown trace data %q", ref)
		return nil, false
	}

	v := &model.TraceView{Data: data}
	if vid, ok := n.ID(); ok {
		v.ID = vid
	}
	if begin, ok := n.Attr("from"); ok && begin != "" {
		vals, ok := parseIntVector(begin)
		if !ok {
			sink.Warn("inkml: traceView could not convert \"from\" values to integers: %q", begin)
		}
		v.Begin = vals
	}
	if end, ok := n.Attr("to"); ok && end != "" {
		vals, ok := parseIntVector(end)
		if !ok {
			sink.Warn("inkml: traceView could not convert \"to\" values to integers: %q", end)
		}
		v.End = vals
	}
	return v, true
}

func parseIntVector(s string) ([]int, bool) {
	parts := strings.Split(s, ":")
	out := make([]int, len(parts))
	for i, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil {
			return nil, false
		}
		out[i] = v
	}
	return out, true
}
