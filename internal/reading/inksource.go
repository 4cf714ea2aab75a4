package reading

import (
	"strconv"

	"github.com/willabides/inkml/diag"
	"github.com/willabides/inkml/internal/model"
	"github.com/willabides/inkml/xmltree"
)

// readInkSource reads an <inkSource> element. Requires xml:id and a
// nested <traceFormat>; either missing drops the whole element.
func readInkSource(n xmltree.Node, sink diag.Sink) (*model.InkSource, bool) {
	id, hasID := n.ID()
	if !hasID {
		sink.Warn("inkml: inkSource missing required xml:id")
		return nil, false
	}
	tfNodes := n.ChildrenNamed("traceFormat")
	if len(tfNodes) == 0 {
		sink.Warn("inkml: inkSource %q missing required traceFormat", id)
		return nil, false
	}
	src := &model.InkSource{
		ID:          id,
		TraceFormat: readTraceFormat(tfNodes[0], sink),
		Properties:  map[string]model.Property{},
	}
	if rates := n.ChildrenNamed("sampleRate"); len(rates) > 0 {
		src.SampleRate = readSampleRate(rates[0], sink)
	}
	if lats := n.ChildrenNamed("latency"); len(lats) > 0 {
		src.Latency = readLatency(lats[0], sink)
	}
	if areas := n.ChildrenNamed("activeArea"); len(areas) > 0 {
		src.ActiveArea = readActiveArea(areas[0], sink)
	}
	for _, sp := range n.ChildrenNamed("sourceProperty") {
		if name, prop, ok := readSourceProperty(sp, sink); ok {
			src.Properties[name] = prop
		}
	}
	readChannelProperties(n, src.TraceFormat, sink)

	if v, ok := n.Attr("manufacturer"); ok {
		src.Manufacturer = v
	}
	if v, ok := n.Attr("model"); ok {
		src.Model = v
	}
	if v, ok := n.Attr("serialNo"); ok {
		src.SerialNo = v
	}
	if v, ok := n.Attr("specificationRef"); ok {
		src.SpecificationRef = v
	}
	if v, ok := n.Attr("description"); ok {
		src.Description = v
	}
	return src, true
}

// readChannelProperties groups the <channelProperty> children of a single
// <channelProperties> wrapper by target channel name and attaches each
// group's properties to the matching channel (searched over regular then
// intermittent channels, by exact name).
func readChannelProperties(n xmltree.Node, tf *model.TraceFormat, sink diag.Sink) {
	wrappers := n.ChildrenNamed("channelProperties")
	if len(wrappers) == 0 {
		return
	}
	byChannel := map[string][]struct {
		name string
		prop model.Property
	}{}
	for _, w := range wrappers {
		for _, cp := range w.ChildrenNamed("channelProperty") {
			channel, name, prop, ok := readChannelProperty(cp, sink)
			if !ok {
				continue
			}
			byChannel[channel] = append(byChannel[channel], struct {
				name string
				prop model.Property
			}{name, prop})
		}
	}
	if len(byChannel) == 0 {
		return
	}
	all := make([]*model.Channel, 0, len(tf.RegularChannels)+len(tf.IntermittentChannels))
	all = append(all, tf.RegularChannels...)
	all = append(all, tf.IntermittentChannels...)
	for _, ch := range all {
		props, ok := byChannel[ch.Name]
		if !ok {
			continue
		}
		if ch.Properties == nil {
			ch.Properties = map[string]model.Property{}
		}
		for _, p := range props {
			ch.Properties[p.name] = p.prop
		}
	}
}

func readSampleRate(n xmltree.Node, sink diag.Sink) *model.SampleRate {
	v, ok := n.Attr("value")
	if !ok {
		sink.Warn("inkml: sampleRate missing required value attribute")
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		sink.Warn("inkml: sampleRate value %q is not numeric", v)
		return nil
	}
	uniform := true
	if u, ok := n.Attr("uniform"); ok && u != "true" {
		uniform = false
	}
	return &model.SampleRate{Value: f, Uniform: uniform}
}

func readLatency(n xmltree.Node, sink diag.Sink) *model.Latency {
	v, ok := n.Attr("value")
	if !ok {
		sink.Warn("inkml: latency missing required value attribute")
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		sink.Warn("inkml: latency value %q is not numeric", v)
		return nil
	}
	return &model.Latency{Value: f}
}

func readActiveArea(n xmltree.Node, sink diag.Sink) *model.ActiveArea {
	w, hasW := n.Attr("width")
	h, hasH := n.Attr("height")
	if !hasW || !hasH {
		sink.Warn("inkml: activeArea missing required width or height attribute")
		return nil
	}
	width, errW := strconv.ParseFloat(w, 64)
	height, errH := strconv.ParseFloat(h, 64)
	if errW != nil || errH != nil {
		sink.Warn("inkml: activeArea width/height not numeric")
		return nil
	}
	area := &model.ActiveArea{Width: width, Height: height}
	if u, ok := n.Attr("units"); ok {
		area.Units = u
	}
	if s, ok := n.Attr("size"); ok {
		area.Size = s
	}
	return area
}
