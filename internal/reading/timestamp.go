package reading

import (
	"strconv"

	"github.com/willabides/inkml/diag"
	"github.com/willabides/inkml/internal/model"
	"github.com/willabides/inkml/xmltree"
)

// readTimestamp reads a <timestamp> element into a TimestampEnvelope.
// Requires xml:id. Attribute priority: `time` wins over `timeString`
// wins over `timestampRef`/`timeOffset`; whichever fires first returns
// immediately, dropping the rest.
func readTimestamp(n xmltree.Node, sink diag.Sink) (*TimestampEnvelope, bool) {
	id, hasID := n.ID()
	if !hasID {
		sink.Warn("inkml: timestamp missing required xml:id")
		return nil, false
	}
	env := &TimestampEnvelope{Timestamp: &model.Timestamp{ID: id}}

	if t, ok := n.Attr("time"); ok {
		if f, err := strconv.ParseFloat(t, 64); err == nil {
			env.Timestamp.Time = &f
			return env, true
		}
	}
	if ts, ok := n.Attr("timeString"); ok {
		env.Timestamp.TimeString = ts
		return env, true
	}
	if ref, ok := n.Attr("timestampRef"); ok {
		env.ParentRef = ref
	}
	if off, ok := n.Attr("timeOffset"); ok {
		if v, err := strconv.Atoi(off); err == nil {
			env.Timestamp.TimeOffset = v
		}
	}
	return env, true
}
