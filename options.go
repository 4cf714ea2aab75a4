package inkml

import "github.com/willabides/inkml/diag"

// options holds Decode's configuration, assembled by applying each
// Option in order.
type options struct {
	assumeLocalRefs bool
	sink            diag.Sink
}

// Option configures a Decode call.
type Option func(*options)

// WithAssumeLocalRefs treats every id-reference string as local even if
// it lacks the leading '#'.
func WithAssumeLocalRefs(v bool) Option {
	return func(o *options) { o.assumeLocalRefs = v }
}

// WithDiagnosticSink supplies the diag.Sink warnings and info messages
// are routed to. Defaults to diag.NewStdSink() (stdout) when omitted.
func WithDiagnosticSink(sink diag.Sink) Option {
	return func(o *options) { o.sink = sink }
}

func newOptions(opts ...Option) *options {
	o := &options{sink: diag.NewStdSink()}
	for _, opt := range opts {
		opt(o)
	}
	if o.sink == nil {
		o.sink = diag.NewStdSink()
	}
	return o
}
