package model

// Document is the root of a decoded InkML object graph. It owns every
// entity reachable from it; once Decode returns, the graph is immutable.
type Document struct {
	Traces      []TraceItem
	Annotations []*Annotation
	Definitions *Definitions
}

// Definitions holds the deduplicated, id-keyed entity tables that traces,
// trace groups, and trace views reference by id.
type Definitions struct {
	Contexts     map[string]*Context
	Brushes      map[string]*Brush
	InkSources   map[string]*InkSource
	TraceFormats map[string]*TraceFormat
	Timestamps   map[string]*Timestamp
	Traces       map[string]*Trace
	TraceGroups  map[string]*TraceGroup
	TraceViews   map[string]*TraceView
}

// NewDefinitions returns a Definitions with every table initialized empty.
func NewDefinitions() *Definitions {
	return &Definitions{
		Contexts:     map[string]*Context{},
		Brushes:      map[string]*Brush{},
		InkSources:   map[string]*InkSource{},
		TraceFormats: map[string]*TraceFormat{},
		Timestamps:   map[string]*Timestamp{},
		Traces:       map[string]*Trace{},
		TraceGroups:  map[string]*TraceGroup{},
		TraceViews:   map[string]*TraceView{},
	}
}

// TraceItem is the tagged union of Trace, TraceGroup, and TraceView.
type TraceItem interface {
	traceItem()
}

// IndexValue pairs an intermittent-channel sample with the regular-channel
// sample index it is anchored to.
type IndexValue struct {
	Index int
	Value float64
}

// TraceType classifies the pen state a trace represents.
type TraceType int

const (
	TraceTypePenDown TraceType = iota
	TraceTypePenUp
	TraceTypeIndeterminate
)

func (t TraceType) String() string {
	switch t {
	case TraceTypePenDown:
		return "penDown"
	case TraceTypePenUp:
		return "penUp"
	case TraceTypeIndeterminate:
		return "indeterminate"
	default:
		return "unknown"
	}
}

// Continuation describes how a trace relates to a preceding trace of the
// same stroke, split across multiple <trace> elements.
type Continuation int

const (
	ContinuationNo Continuation = iota
	ContinuationBegin
	ContinuationMiddle
	ContinuationEnd
)

func (c Continuation) String() string {
	switch c {
	case ContinuationNo:
		return "no"
	case ContinuationBegin:
		return "begin"
	case ContinuationMiddle:
		return "middle"
	case ContinuationEnd:
		return "end"
	default:
		return "unknown"
	}
}

// Trace is a single pen stroke's decoded sample stream.
type Trace struct {
	ID                   string
	Channels             map[string][]float64
	IntermittentChannels map[string][]IndexValue
	Context              *Context
	Brush                *Brush
	Duration             *int
	TimeOffset           *int
	Type                 TraceType
	Continuation         Continuation

	// Next points forward to the trace that continues this one, set on
	// the prior trace once a later trace resolves a priorRef against it.
	Next *Trace
}

func (*Trace) traceItem() {}

// TraceGroup is an ordered collection of child trace items sharing an
// optional ambient context and brush.
type TraceGroup struct {
	ID          string
	Context     *Context
	Brush       *Brush
	Traces      []TraceItem
	Annotations []*Annotation
}

func (*TraceGroup) traceItem() {}

// TraceView references another TraceItem already registered in
// Definitions, optionally scoped to hierarchical begin/end indices.
type TraceView struct {
	ID    string
	Data  TraceItem
	Begin []int
	End   []int
}

func (*TraceView) traceItem() {}

// Context is a reusable bundle of ink source, trace format, brush, and
// timestamp, with an optional parent for inheritance.
type Context struct {
	ID          string
	Parent      *Context
	InkSource   *InkSource
	TraceFormat *TraceFormat
	Brush       *Brush
	Timestamp   *Timestamp
}

// SampleRate describes the ink source's sampling rate.
type SampleRate struct {
	Value   float64
	Uniform bool
}

// Latency is a millisecond delay value.
type Latency struct {
	Value float64
}

// ActiveArea describes the sensing surface's physical dimensions.
type ActiveArea struct {
	Width  float64
	Height float64
	Units  string
	Size   string
}

// InkSource describes a capture device and its default trace format.
type InkSource struct {
	ID               string
	TraceFormat      *TraceFormat
	SampleRate       *SampleRate
	Latency          *Latency
	ActiveArea       *ActiveArea
	Manufacturer     string
	Model            string
	SerialNo         string
	SpecificationRef string
	Description      string
	Properties       map[string]Property
}

// TraceFormat declares the ordering and typing of a trace's channels.
type TraceFormat struct {
	ID                   string
	RegularChannels      []*Channel
	IntermittentChannels []*Channel
}

// ChannelType is a channel's numeric or boolean representation.
type ChannelType int

const (
	ChannelTypeDecimal ChannelType = iota
	ChannelTypeInteger
	ChannelTypeDouble
	ChannelTypeBoolean
)

func (t ChannelType) String() string {
	switch t {
	case ChannelTypeDecimal:
		return "decimal"
	case ChannelTypeInteger:
		return "integer"
	case ChannelTypeDouble:
		return "double"
	case ChannelTypeBoolean:
		return "boolean"
	default:
		return "unknown"
	}
}

// ChannelOrientation indicates whether increasing values move in the
// positive or negative direction along the channel's axis.
type ChannelOrientation int

const (
	ChannelOrientationPositive ChannelOrientation = iota
	ChannelOrientationNegative
)

func (o ChannelOrientation) String() string {
	switch o {
	case ChannelOrientationPositive:
		return "+ve"
	case ChannelOrientationNegative:
		return "-ve"
	default:
		return "unknown"
	}
}

// Channel declares one sampled dimension of a trace format.
type Channel struct {
	ID          string
	Name        string
	Type        ChannelType
	Default     float64
	Min         *float64
	Max         *float64
	Orientation ChannelOrientation
	RespectTo   string
	Units       string
	Properties  map[string]Property
}

// Brush is a reusable rendering style with an optional parent for
// inheritance of its annotated properties.
type Brush struct {
	ID          string
	Parent      *Brush
	Properties  map[string]AnnotatedProperty
	Annotations []*Annotation
}

// Timestamp records an absolute or relative capture time, with an
// optional parent for inheritance.
type Timestamp struct {
	ID         string
	Parent     *Timestamp
	Time       *float64
	TimeString string
	TimeOffset int
}

// AnnotationContentType classifies an Annotation's Content field.
type AnnotationContentType int

const (
	AnnotationContentText AnnotationContentType = iota
	AnnotationContentXML
	AnnotationContentHRef
)

func (t AnnotationContentType) String() string {
	switch t {
	case AnnotationContentText:
		return "text"
	case AnnotationContentXML:
		return "xml"
	case AnnotationContentHRef:
		return "href"
	default:
		return "unknown"
	}
}

// Annotation is free-form metadata attached to ink, a trace group, or a
// brush.
type Annotation struct {
	Content     string
	ContentType AnnotationContentType
	Type        string
	Encoding    string
	Attributes  map[string]string
}

// PropertyValueKind discriminates Property's Value representation.
type PropertyValueKind int

const (
	PropertyValueString PropertyValueKind = iota
	PropertyValueFloat
)

// Property is a named, optionally-unitted value attached to an ink
// source, channel, or similar element.
type Property struct {
	Kind  PropertyValueKind
	Str   string
	Float float64
	Units string
}

// AnnotatedProperty is a Property that additionally carries annotations,
// used by Brush.
type AnnotatedProperty struct {
	Property
	Annotations []*Annotation
}

// DefaultTraceFormat is returned by the effective trace format lookup
// when no context, ink source, or trace format applies.
func DefaultTraceFormat() *TraceFormat {
	return &TraceFormat{
		ID: "DefaultTraceFormat",
		RegularChannels: []*Channel{
			{Name: "X", Type: ChannelTypeDecimal},
			{Name: "Y", Type: ChannelTypeDecimal},
		},
	}
}
