package inkml_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/willabides/inkml"
	"github.com/willabides/inkml/diag"
)

func decodeString(t *testing.T, doc string, opts ...inkml.Option) *inkml.Document {
	t.Helper()
	d, err := inkml.Decode(strings.NewReader(doc), opts...)
	require.NoError(t, err)
	return d
}

func traceAt(t *testing.T, d *inkml.Document, i int) *inkml.Trace {
	t.Helper()
	require.Greater(t, len(d.Traces), i)
	tr, ok := d.Traces[i].(*inkml.Trace)
	require.True(t, ok)
	return tr
}

// S1: minimal trace under default format.
func TestDecodeMinimalTraceDefaultFormat(t *testing.T) {
	d := decodeString(t, `<ink xmlns="http://www.w3.org/2003/InkML">
		<trace>10 20, 11 22, 12 24</trace>
	</ink>`)
	require.Len(t, d.Traces, 1)
	tr := traceAt(t, d, 0)
	require.Equal(t, []float64{10, 11, 12}, tr.Channels["X"])
	require.Equal(t, []float64{20, 22, 24}, tr.Channels["Y"])
}

// S2: first-difference coding.
func TestDecodeFirstDifferenceCoding(t *testing.T) {
	d := decodeString(t, `<ink xmlns="http://www.w3.org/2003/InkML">
		<trace>10 20, '1 '2, '1 '2</trace>
	</ink>`)
	tr := traceAt(t, d, 0)
	require.Equal(t, []float64{10, 11, 12}, tr.Channels["X"])
	require.Equal(t, []float64{20, 22, 24}, tr.Channels["Y"])
}

// S3: second-difference coding after one first-difference.
func TestDecodeSecondDifferenceCoding(t *testing.T) {
	d := decodeString(t, `<ink xmlns="http://www.w3.org/2003/InkML">
		<trace>10 20, '1 '2, "0 "0</trace>
	</ink>`)
	tr := traceAt(t, d, 0)
	require.Equal(t, []float64{10, 11, 12}, tr.Channels["X"])
	require.Equal(t, []float64{20, 22, 24}, tr.Channels["Y"])
}

// S4: wildcard and hex.
func TestDecodeWildcardAndHex(t *testing.T) {
	d := decodeString(t, `<ink xmlns="http://www.w3.org/2003/InkML">
		<trace>#A 0, * #1F, * *</trace>
	</ink>`)
	tr := traceAt(t, d, 0)
	require.Equal(t, []float64{10, 10, 10}, tr.Channels["X"])
	require.Equal(t, []float64{0, 31, 31}, tr.Channels["Y"])
}

// S5: brush parent chain with a cycle is entirely dropped, with one
// consolidated warning naming every id involved.
func TestDecodeBrushCycleIsRejected(t *testing.T) {
	collecting := &diag.Collecting{}
	d := decodeString(t, `<ink xmlns="http://www.w3.org/2003/InkML">
		<definitions>
			<brush xml:id="a" brushRef="#b"/>
			<brush xml:id="b" brushRef="#c"/>
			<brush xml:id="c" brushRef="#a"/>
			<brush xml:id="ok"/>
		</definitions>
		<trace>1 2</trace>
	</ink>`, inkml.WithDiagnosticSink(collecting))

	_, hasA := d.Definitions.Brushes["a"]
	_, hasB := d.Definitions.Brushes["b"]
	_, hasC := d.Definitions.Brushes["c"]
	require.False(t, hasA)
	require.False(t, hasB)
	require.False(t, hasC)

	_, hasOK := d.Definitions.Brushes["ok"]
	require.True(t, hasOK)

	require.Len(t, collecting.Warnings, 1)
	require.Contains(t, collecting.Warnings[0], "a")
	require.Contains(t, collecting.Warnings[0], "b")
	require.Contains(t, collecting.Warnings[0], "c")
}

// S6: intermittent channel with placeholders.
func TestDecodeIntermittentChannelWithPlaceholders(t *testing.T) {
	d := decodeString(t, `<ink xmlns="http://www.w3.org/2003/InkML">
		<definitions>
			<traceFormat xml:id="tf1">
				<channel name="X" type="decimal"/>
				<channel name="Y" type="decimal"/>
				<intermittentChannels>
					<channel name="F" type="decimal"/>
				</intermittentChannels>
			</traceFormat>
			<context xml:id="ctx1" traceFormatRef="#tf1"/>
		</definitions>
		<trace contextRef="#ctx1">0 0 1.0, 1 1 ?, 2 2 3.0</trace>
	</ink>`)
	tr := traceAt(t, d, 0)
	require.Equal(t, []float64{0, 1, 2}, tr.Channels["X"])
	require.Equal(t, []float64{0, 1, 2}, tr.Channels["Y"])
	require.Equal(t, []inkml.IndexValue{{Index: 0, Value: 1.0}, {Index: 2, Value: 3.0}}, tr.IntermittentChannels["F"])
}

// Invariant 1: every identifier registered in Definitions is unique
// within its category (a colliding xml:id silently overwrites, which is
// itself the guarantee the map-keyed representation provides).
func TestDefinitionsIDsAreUniquePerCategory(t *testing.T) {
	d := decodeString(t, `<ink xmlns="http://www.w3.org/2003/InkML">
		<definitions>
			<brush xml:id="b1"/>
			<brush xml:id="b2"/>
		</definitions>
		<trace>1 2</trace>
	</ink>`)
	require.Len(t, d.Definitions.Brushes, 2)
}

// Invariant 2: parent chains are finite and acyclic; walking from a leaf
// brush terminates.
func TestBrushParentChainIsFiniteAndAcyclic(t *testing.T) {
	d := decodeString(t, `<ink xmlns="http://www.w3.org/2003/InkML">
		<definitions>
			<brush xml:id="base"/>
			<brush xml:id="mid" brushRef="#base"/>
			<brush xml:id="leaf" brushRef="#mid"/>
		</definitions>
		<trace>1 2</trace>
	</ink>`)
	leaf, ok := d.Definitions.Brushes["leaf"]
	require.True(t, ok)

	seen := map[string]bool{}
	steps := 0
	for b := leaf; b != nil; b = b.Parent {
		require.False(t, seen[b.ID], "cycle detected at %q", b.ID)
		seen[b.ID] = true
		steps++
		require.Less(t, steps, 10, "parent chain did not terminate")
	}
	require.Equal(t, "base", leaf.Parent.Parent.ID)
}

// Invariant 3: every regular-channel sequence has one value per parsed
// point, and every intermittent entry's index is in bounds.
func TestChannelLengthsMatchPointCount(t *testing.T) {
	d := decodeString(t, `<ink xmlns="http://www.w3.org/2003/InkML">
		<trace>10 20, 11 22, 12 24</trace>
	</ink>`)
	tr := traceAt(t, d, 0)
	require.Len(t, tr.Channels["X"], 3)
	require.Len(t, tr.Channels["Y"], 3)
	for _, iv := range tr.IntermittentChannels["F"] {
		require.GreaterOrEqual(t, iv.Index, 0)
		require.Less(t, iv.Index, 3)
	}
}

// Invariant 4: round-trip of first-difference coding against the
// equivalent explicit-form encoding of the same samples.
func TestFirstDifferenceRoundTripsWithExplicitForm(t *testing.T) {
	explicit := decodeString(t, `<ink xmlns="http://www.w3.org/2003/InkML">
		<trace>10 20, 11 22, 12 24</trace>
	</ink>`)
	delta := decodeString(t, `<ink xmlns="http://www.w3.org/2003/InkML">
		<trace>10 20, '1 '2, '1 '2</trace>
	</ink>`)
	require.Equal(t, traceAt(t, explicit, 0).Channels, traceAt(t, delta, 0).Channels)
}

// Invariant 6: a brush cycle drops only the cyclic ids, leaving every
// unrelated brush untouched. Exercised in full by
// TestDecodeBrushCycleIsRejected; this test pins down the "no other
// brush is affected" half specifically.
func TestBrushCycleDoesNotAffectUnrelatedBrushes(t *testing.T) {
	d := decodeString(t, `<ink xmlns="http://www.w3.org/2003/InkML">
		<definitions>
			<brush xml:id="a" brushRef="#b"/>
			<brush xml:id="b" brushRef="#a"/>
			<brush xml:id="independent"/>
		</definitions>
		<trace>1 2</trace>
	</ink>`, inkml.WithDiagnosticSink(diag.NopSink{}))
	_, ok := d.Definitions.Brushes["independent"]
	require.True(t, ok)
	require.Len(t, d.Definitions.Brushes, 1)
}

func TestDecodeRejectsMalformedXML(t *testing.T) {
	_, err := inkml.Decode(strings.NewReader(`<ink><unclosed></ink>`))
	require.Error(t, err)
	var malformed *inkml.ErrMalformedXML
	require.ErrorAs(t, err, &malformed)
}

func TestDecodeRejectsWrongRoot(t *testing.T) {
	_, err := inkml.Decode(strings.NewReader(`<notink xmlns="http://www.w3.org/2003/InkML"></notink>`))
	require.Error(t, err)
	var wrongRoot *inkml.ErrWrongRoot
	require.ErrorAs(t, err, &wrongRoot)
}

func TestDecodeTraceGroupNesting(t *testing.T) {
	d := decodeString(t, `<ink xmlns="http://www.w3.org/2003/InkML">
		<traceGroup>
			<trace>0 0</trace>
			<traceGroup>
				<trace>1 1</trace>
			</traceGroup>
		</traceGroup>
	</ink>`)
	require.Len(t, d.Traces, 1)
	group, ok := d.Traces[0].(*inkml.TraceGroup)
	require.True(t, ok)
	require.Len(t, group.Traces, 2)
	_, ok = group.Traces[1].(*inkml.TraceGroup)
	require.True(t, ok)
}

func TestDecodeAssumeLocalRefs(t *testing.T) {
	d := decodeString(t, `<ink xmlns="http://www.w3.org/2003/InkML">
		<definitions>
			<brush xml:id="b1"/>
		</definitions>
		<trace brushRef="b1">1 2</trace>
	</ink>`, inkml.WithAssumeLocalRefs(true))
	tr := traceAt(t, d, 0)
	require.NotNil(t, tr.Brush)
	require.Equal(t, "b1", tr.Brush.ID)
}

func TestDecodeTopLevelAnnotations(t *testing.T) {
	d := decodeString(t, `<ink xmlns="http://www.w3.org/2003/InkML">
		<annotation type="title">my document</annotation>
		<trace>0 0</trace>
	</ink>`)
	require.Len(t, d.Annotations, 1)
	require.Equal(t, "my document", d.Annotations[0].Content)
	require.Equal(t, "title", d.Annotations[0].Type)
}
