// Package inkml decodes InkML (W3C digital ink markup) documents into an
// in-memory object model. See Decode.
package inkml

import "github.com/willabides/inkml/internal/model"

// The exported data model is a thin facade over internal/model: the
// decoding subsystems (internal/reading, internal/pointstream,
// internal/resolve) depend on the model types directly and must not
// import this package, so the types live there and are re-exported here
// by alias for callers.
type (
	Document              = model.Document
	Definitions           = model.Definitions
	TraceItem             = model.TraceItem
	IndexValue            = model.IndexValue
	Trace                 = model.Trace
	TraceType             = model.TraceType
	Continuation          = model.Continuation
	TraceGroup            = model.TraceGroup
	TraceView             = model.TraceView
	Context               = model.Context
	SampleRate            = model.SampleRate
	Latency               = model.Latency
	ActiveArea            = model.ActiveArea
	InkSource             = model.InkSource
	TraceFormat           = model.TraceFormat
	ChannelType           = model.ChannelType
	ChannelOrientation    = model.ChannelOrientation
	Channel               = model.Channel
	Brush                 = model.Brush
	Timestamp             = model.Timestamp
	AnnotationContentType = model.AnnotationContentType
	Annotation            = model.Annotation
	PropertyValueKind     = model.PropertyValueKind
	Property              = model.Property
	AnnotatedProperty     = model.AnnotatedProperty
)

const (
	TraceTypePenDown       = model.TraceTypePenDown
	TraceTypePenUp         = model.TraceTypePenUp
	TraceTypeIndeterminate = model.TraceTypeIndeterminate

	ContinuationNo     = model.ContinuationNo
	ContinuationBegin  = model.ContinuationBegin
	ContinuationMiddle = model.ContinuationMiddle
	ContinuationEnd    = model.ContinuationEnd

	ChannelTypeDecimal = model.ChannelTypeDecimal
	ChannelTypeInteger = model.ChannelTypeInteger
	ChannelTypeDouble  = model.ChannelTypeDouble
	ChannelTypeBoolean = model.ChannelTypeBoolean

	ChannelOrientationPositive = model.ChannelOrientationPositive
	ChannelOrientationNegative = model.ChannelOrientationNegative

	AnnotationContentText = model.AnnotationContentText
	AnnotationContentXML  = model.AnnotationContentXML
	AnnotationContentHRef = model.AnnotationContentHRef

	PropertyValueString = model.PropertyValueString
	PropertyValueFloat  = model.PropertyValueFloat
)

// NewDefinitions returns an empty Definitions bundle.
func NewDefinitions() *Definitions { return model.NewDefinitions() }

// DefaultTraceFormat is the trace format used when no context, ink
// source, or trace format applies to a trace.
func DefaultTraceFormat() *TraceFormat { return model.DefaultTraceFormat() }
