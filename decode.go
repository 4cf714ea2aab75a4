package inkml

import (
	"io"

	"github.com/willabides/inkml/internal/model"
	"github.com/willabides/inkml/internal/reading"
	"github.com/willabides/inkml/xmltree"
)

// Decode reads a complete InkML document from r and returns its decoded
// object model. The only fatal conditions are malformed XML and a root
// element other than {http://www.w3.org/2003/InkML}ink; every other
// problem is reported to the configured diag.Sink and recovered from.
func Decode(r io.Reader, opts ...Option) (*Document, error) {
	o := newOptions(opts...)

	root, err := xmltree.Parse(r)
	if err != nil {
		return nil, &ErrMalformedXML{Err: err}
	}

	tag := root.Tag()
	if tag.Space != xmltree.InkNamespace || tag.Local != "ink" {
		return nil, &ErrWrongRoot{Got: tag.String()}
	}

	defs := reading.HarvestDefinitions(root, o.assumeLocalRefs, o.sink)
	traces := reading.ReadTraceItems(root, defs, o.assumeLocalRefs, o.sink)
	annotations := reading.ReadTopLevelAnnotations(root, o.sink)

	return &model.Document{
		Traces:      traces,
		Annotations: annotations,
		Definitions: defs,
	}, nil
}

// Decoder decodes InkML documents with a fixed set of options, for
// callers that want to configure once and decode many times.
type Decoder struct {
	opts []Option
}

// NewDecoder returns a Decoder configured with opts.
func NewDecoder(opts ...Option) *Decoder {
	return &Decoder{opts: opts}
}

// Decode reads and decodes a complete InkML document from r.
func (d *Decoder) Decode(r io.Reader) (*Document, error) {
	return Decode(r, d.opts...)
}
