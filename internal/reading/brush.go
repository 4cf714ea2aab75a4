package reading

import (
	"github.com/willabides/inkml/diag"
	"github.com/willabides/inkml/internal/model"
	"github.com/willabides/inkml/xmltree"
)

// readBrush reads a <brush> element into a BrushEnvelope. Id and
// brushRef are both optional.
func readBrush(n xmltree.Node, sink diag.Sink) *BrushEnvelope {
	b := &model.Brush{Properties: map[string]model.AnnotatedProperty{}}
	if id, ok := n.ID(); ok {
		b.ID = id
	}
	env := &BrushEnvelope{Brush: b}
	if ref, ok := n.Attr("brushRef"); ok {
		env.ParentRef = ref
	}
	for _, bp := range n.ChildrenNamed("brushProperty") {
		if name, prop, ok := readBrushProperty(bp, sink); ok {
			b.Properties[name] = prop
		}
	}
	b.Annotations = readAnnotations(n, sink)
	return env
}
