package reading

import (
	"github.com/willabides/inkml/diag"
	"github.com/willabides/inkml/internal/model"
	"github.com/willabides/inkml/xmltree"
)

// readContext reads a <context> element into a ContextEnvelope. For each
// of ink source/trace format/brush/timestamp, a `*Ref` attribute is read
// first (storing an unresolved string); a nested child element is then
// checked and, if present, overwrites the attribute value. Nested child
// wins.
func readContext(n xmltree.Node, sink diag.Sink) *ContextEnvelope {
	env := &ContextEnvelope{Context: &model.Context{}}
	if id, ok := n.ID(); ok {
		env.Context.ID = id
	}
	if ref, ok := n.Attr("contextRef"); ok {
		env.ParentRef = ref
	}

	if ref, ok := n.Attr("inkSourceRef"); ok {
		env.InkSourceOrRef = ref
	}
	if nodes := n.ChildrenNamed("inkSource"); len(nodes) > 0 {
		if src, ok := readInkSource(nodes[0], sink); ok {
			env.InkSourceOrRef = src
		}
	}

	if ref, ok := n.Attr("traceFormatRef"); ok {
		env.TraceFormatOrRef = ref
	}
	if nodes := n.ChildrenNamed("traceFormat"); len(nodes) > 0 {
		env.TraceFormatOrRef = readTraceFormat(nodes[0], sink)
	}

	if ref, ok := n.Attr("brushRef"); ok {
		env.BrushOrRef = ref
	}
	if nodes := n.ChildrenNamed("brush"); len(nodes) > 0 {
		env.BrushOrRef = readBrush(nodes[0], sink)
	}

	if ref, ok := n.Attr("timestampRef"); ok {
		env.TimestampOrRef = ref
	}
	if nodes := n.ChildrenNamed("timestamp"); len(nodes) > 0 {
		if ts, ok := readTimestamp(nodes[0], sink); ok {
			env.TimestampOrRef = ts
		}
	}

	return env
}
