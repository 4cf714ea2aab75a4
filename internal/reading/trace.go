package reading

import (
	"strconv"

	"github.com/willabides/inkml/diag"
	"github.com/willabides/inkml/internal/ids"
	"github.com/willabides/inkml/internal/model"
	"github.com/willabides/inkml/internal/pointstream"
	"github.com/willabides/inkml/xmltree"
)

// readTrace reads a <trace> element. context is the ambient context (the
// enclosing trace group's, or nil at the document root). requireRefs
// controls whether an unresolved contextRef/brushRef/priorRef drops the
// trace rather than merely warning.
func readTrace(n xmltree.Node, defs *model.Definitions, context *model.Context, assumeLocalRefs bool, requireRefs bool, sink diag.Sink) (*model.Trace, bool) {
	t := &model.Trace{Channels: map[string][]float64{}, IntermittentChannels: map[string][]model.IndexValue{}}

	if ref, hasRef := n.Attr("contextRef"); hasRef {
		ctx, lk := resolveContextRef(ref, hasRef, defs, assumeLocalRefs, sink)
		if lk == refMiss && requireRefs {
			return nil, false
		}
		t.Context = ctx
	}
	if ref, hasRef := n.Attr("brushRef"); hasRef {
		b, lk := resolveBrushRef(ref, hasRef, defs, assumeLocalRefs, sink)
		if lk == refMiss && requireRefs {
			return nil, false
		}
		t.Brush = b
	}

	t.Continuation = model.ContinuationNo
	if c, ok := n.Attr("continuation"); ok {
		switch c {
		case "begin":
			t.Continuation = model.ContinuationBegin
		case "middle":
			t.Continuation = model.ContinuationMiddle
		case "end":
			t.Continuation = model.ContinuationEnd
		default:
			sink.Warn("inkml: trace has unrecognized continuation %q", c)
		}
	}

	if t.Continuation == model.ContinuationMiddle || t.Continuation == model.ContinuationEnd {
		priorRef, hasPrior := n.Attr("priorRef")
		if !hasPrior || priorRef == "" {
			sink.Warn("inkml: continuation trace missing required priorRef")
			return nil, false
		}
		if !ids.IsLocal(priorRef) && !assumeLocalRefs {
			sink.Warn("inkml: continuation trace has external priorRef %q", priorRef)
			return nil, false
		}
		priorID := ids.ToLocal(priorRef)
		prior, found := defs.Traces[priorID]
		if !found {
			sink.Warn("inkml: continuation trace references unknown prior %q", priorRef)
			if requireRefs {
				return nil, false
			}
		} else {
			prior.Next = t
		}
	}

	if n.Text() != "" {
		format := EffectiveTraceFormat(t, context)
		regular, intermittent, ok := pointstream.DecodeTrace(n.Text(), format, sink)
		if !ok {
			sink.Warn("inkml: trace body failed to decode; dropping trace")
			return nil, false
		}
		t.Channels = regular
		t.IntermittentChannels = intermittent
	}

	id, hasID := n.ID()
	if hasID {
		t.ID = id
	} else if t.Continuation == model.ContinuationBegin || t.Continuation == model.ContinuationMiddle {
		sink.Warn("inkml: continuation trace missing xml:id")
	}

	t.Type = model.TraceTypePenDown
	if tt, ok := n.Attr("type"); ok {
		switch tt {
		case "penDown":
			t.Type = model.TraceTypePenDown
		case "penUp":
			t.Type = model.TraceTypePenUp
		case "indeterminate":
			t.Type = model.TraceTypeIndeterminate
		}
	}

	if d, ok := n.Attr("duration"); ok {
		if v, err := strconv.Atoi(d); err == nil {
			t.Duration = &v
		}
	}
	if o, ok := n.Attr("timeOffset"); ok {
		if v, err := strconv.Atoi(o); err == nil {
			t.TimeOffset = &v
		}
	}

	return t, true
}
