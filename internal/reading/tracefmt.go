package reading

import (
	"strconv"
	"strings"

	"github.com/willabides/inkml/diag"
	"github.com/willabides/inkml/internal/model"
	"github.com/willabides/inkml/xmltree"
)

// readTraceFormat reads a <traceFormat> element: direct <channel>
// children become regular channels; <intermittentChannels><channel>
// children become intermittent channels.
func readTraceFormat(n xmltree.Node, sink diag.Sink) *model.TraceFormat {
	tf := &model.TraceFormat{}
	if id, ok := n.ID(); ok {
		tf.ID = id
	}
	for _, c := range n.ChildrenNamed("channel") {
		if ch, ok := readChannel(c, sink); ok {
			tf.RegularChannels = append(tf.RegularChannels, ch)
		}
	}
	for _, ic := range n.ChildrenNamed("intermittentChannels") {
		for _, c := range ic.ChildrenNamed("channel") {
			if ch, ok := readChannel(c, sink); ok {
				tf.IntermittentChannels = append(tf.IntermittentChannels, ch)
			}
		}
	}
	return tf
}

// readChannel reads a <channel> element. `name` is required; all other
// attributes default or are silently ignored on parse failure. The
// <mapping> sub-element is not decoded.
func readChannel(n xmltree.Node, sink diag.Sink) (*model.Channel, bool) {
	name, hasName := n.Attr("name")
	if !hasName {
		sink.Warn("inkml: channel missing required name attribute")
		return nil, false
	}
	ch := &model.Channel{
		Name:        name,
		Type:        model.ChannelTypeDecimal,
		Orientation: model.ChannelOrientationPositive,
		Properties:  map[string]model.Property{},
	}
	if id, ok := n.ID(); ok {
		ch.ID = id
	}
	if t, ok := n.Attr("type"); ok {
		switch t {
		case "integer":
			ch.Type = model.ChannelTypeInteger
		case "decimal":
			ch.Type = model.ChannelTypeDecimal
		case "double":
			ch.Type = model.ChannelTypeDouble
		case "boolean":
			ch.Type = model.ChannelTypeBoolean
		}
	}
	if d, ok := n.Attr("default"); ok {
		if ch.Type == model.ChannelTypeBoolean {
			lower := strings.ToLower(d)
			ch.Default = 0
			if lower == "true" || lower == "t" || lower == "1" {
				ch.Default = 1
			}
		} else if f, err := strconv.ParseFloat(d, 64); err == nil {
			ch.Default = f
		} else {
			ch.Default = 0.0
		}
	}
	if m, ok := n.Attr("min"); ok {
		if f, err := strconv.ParseFloat(m, 64); err == nil {
			ch.Min = &f
		}
	}
	if m, ok := n.Attr("max"); ok {
		if f, err := strconv.ParseFloat(m, 64); err == nil {
			ch.Max = &f
		}
	}
	if o, ok := n.Attr("orientation"); ok {
		switch o {
		case "+ve":
			ch.Orientation = model.ChannelOrientationPositive
		case "-ve":
			ch.Orientation = model.ChannelOrientationNegative
		}
	}
	if r, ok := n.Attr("respectTo"); ok {
		ch.RespectTo = r
	}
	if u, ok := n.Attr("units"); ok {
		ch.Units = u
	}
	return ch, true
}
