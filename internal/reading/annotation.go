package reading

import (
	"strings"

	"github.com/willabides/inkml/diag"
	"github.com/willabides/inkml/internal/model"
	"github.com/willabides/inkml/xmltree"
)

// readAnnotations reads the direct <annotation>/<annotationXML> children
// of container, in document order, dropping any that fail to read.
func readAnnotations(container xmltree.Node, sink diag.Sink) []*model.Annotation {
	var out []*model.Annotation
	for _, c := range container.Children() {
		tag := c.Tag().Local
		if tag != "annotation" && tag != "annotationXML" {
			continue
		}
		if a, ok := readAnnotation(c, sink); ok {
			out = append(out, a)
		}
	}
	return out
}

// innerText recursively flattens an element's text, each child's full
// inner text, and tails, in document order. annotationXML uses this to
// compute its flattened content.
func innerText(n xmltree.Node) string {
	var b strings.Builder
	b.WriteString(n.Text())
	for _, c := range n.Children() {
		b.WriteString(innerText(c))
		b.WriteString(c.Tail())
	}
	return b.String()
}

func readAnnotation(n xmltree.Node, sink diag.Sink) (*model.Annotation, bool) {
	a := &model.Annotation{Attributes: map[string]string{}}
	switch n.Tag().Local {
	case "annotation":
		a.Content = n.Text()
		a.ContentType = model.AnnotationContentText
	case "annotationXML":
		text := innerText(n)
		switch {
		case len(text) > 0:
			a.Content = text
			a.ContentType = model.AnnotationContentXML
		default:
			href, has := n.Attr("href")
			if !has {
				sink.Warn("inkml: annotationXML has no inner content and no href; dropping")
				return nil, false
			}
			a.Content = href
			a.ContentType = model.AnnotationContentHRef
		}
	default:
		return nil, false
	}
	if t, has := n.Attr("type"); has {
		a.Type = t
	}
	if e, has := n.Attr("encoding"); has {
		a.Encoding = e
	}
	for k, v := range n.Attrs() {
		if k == "href" || k == "type" || k == "encoding" {
			continue
		}
		a.Attributes[k] = v
	}
	return a, true
}
