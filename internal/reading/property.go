package reading

import (
	"strconv"

	"github.com/willabides/inkml/diag"
	"github.com/willabides/inkml/internal/model"
	"github.com/willabides/inkml/xmltree"
)

func propertyValue(valueStr string) model.Property {
	if f, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return model.Property{Kind: model.PropertyValueFloat, Float: f}
	}
	return model.Property{Kind: model.PropertyValueString, Str: valueStr}
}

// readSourceProperty reads one <sourceProperty> child, requiring `name`
// and `value`.
func readSourceProperty(n xmltree.Node, sink diag.Sink) (name string, prop model.Property, ok bool) {
	name, hasName := n.Attr("name")
	value, hasValue := n.Attr("value")
	if !hasName || !hasValue {
		sink.Warn("inkml: sourceProperty missing name or value attribute")
		return "", model.Property{}, false
	}
	prop = propertyValue(value)
	if units, has := n.Attr("units"); has {
		prop.Units = units
	}
	return name, prop, true
}

// readChannelProperty reads one <channelProperty> child, requiring
// `channel`, `name`, and `value`.
func readChannelProperty(n xmltree.Node, sink diag.Sink) (channel, name string, prop model.Property, ok bool) {
	channel, hasChannel := n.Attr("channel")
	name, hasName := n.Attr("name")
	value, hasValue := n.Attr("value")
	if !hasChannel || !hasName || !hasValue {
		sink.Warn("inkml: channelProperty missing channel, name, or value attribute")
		return "", "", model.Property{}, false
	}
	prop = propertyValue(value)
	if units, has := n.Attr("units"); has {
		prop.Units = units
	}
	return channel, name, prop, true
}

// readBrushProperty reads one <brushProperty> child, requiring `name` and
// `value`, plus any nested annotations.
func readBrushProperty(n xmltree.Node, sink diag.Sink) (name string, prop model.AnnotatedProperty, ok bool) {
	name, hasName := n.Attr("name")
	value, hasValue := n.Attr("value")
	if !hasName || !hasValue {
		sink.Warn("inkml: brushProperty missing name or value attribute")
		return "", model.AnnotatedProperty{}, false
	}
	base := propertyValue(value)
	if units, has := n.Attr("units"); has {
		base.Units = units
	}
	prop = model.AnnotatedProperty{Property: base, Annotations: readAnnotations(n, sink)}
	return name, prop, true
}
