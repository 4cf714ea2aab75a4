package reading

import "github.com/willabides/inkml/internal/model"

// EffectiveTraceFormat chooses the trace format that governs a trace's
// point-stream decoding. The trace's own context wins over the ambient
// (enclosing trace group's) context; if neither is set, the default
// format applies. Otherwise the context's parent chain is walked twice,
// not interleaved: once looking for a directly-attached trace format,
// then again looking for an ink source's trace format.
func EffectiveTraceFormat(trace *model.Trace, ambientContext *model.Context) *model.TraceFormat {
	context := trace.Context
	if context == nil {
		context = ambientContext
	}
	if context == nil {
		return model.DefaultTraceFormat()
	}

	for ctx := context; ctx != nil; ctx = ctx.Parent {
		if ctx.TraceFormat != nil {
			return ctx.TraceFormat
		}
	}

	for ctx := context; ctx != nil; ctx = ctx.Parent {
		if ctx.InkSource != nil {
			return ctx.InkSource.TraceFormat
		}
	}

	return model.DefaultTraceFormat()
}
