package xmltree_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/willabides/inkml/xmltree"
)

func TestParseTagAndAttrs(t *testing.T) {
	root, err := xmltree.Parse(strings.NewReader(`<ink xmlns="http://www.w3.org/2003/InkML"><trace foo="bar">1 2</trace></ink>`))
	require.NoError(t, err)
	require.Equal(t, xmltree.QName{Space: xmltree.InkNamespace, Local: "ink"}, root.Tag())

	children := root.Children()
	require.Len(t, children, 1)

	trace := children[0]
	require.Equal(t, "trace", trace.Tag().Local)
	v, ok := trace.Attr("foo")
	require.True(t, ok)
	require.Equal(t, "bar", v)
	require.Equal(t, "1 2", trace.Text())
}

func TestParseIDPrefersXMLNamespace(t *testing.T) {
	root, err := xmltree.Parse(strings.NewReader(`<ink xmlns="http://www.w3.org/2003/InkML" xmlns:xml="http://www.w3.org/XML/1998/namespace" xml:id="a" id="b"></ink>`))
	require.NoError(t, err)
	id, ok := root.ID()
	require.True(t, ok)
	require.Equal(t, "a", id)
}

func TestParseIDFallsBackToBareAttribute(t *testing.T) {
	root, err := xmltree.Parse(strings.NewReader(`<ink xmlns="http://www.w3.org/2003/InkML" id="b"></ink>`))
	require.NoError(t, err)
	id, ok := root.ID()
	require.True(t, ok)
	require.Equal(t, "b", id)
}

func TestParseMissingID(t *testing.T) {
	root, err := xmltree.Parse(strings.NewReader(`<ink xmlns="http://www.w3.org/2003/InkML"></ink>`))
	require.NoError(t, err)
	_, ok := root.ID()
	require.False(t, ok)
}

func TestParseTailText(t *testing.T) {
	root, err := xmltree.Parse(strings.NewReader(`<ink xmlns="http://www.w3.org/2003/InkML"><a/>after-a<b/>after-b</ink>`))
	require.NoError(t, err)
	children := root.Children()
	require.Len(t, children, 2)
	require.Equal(t, "after-a", children[0].Tail())
	require.Equal(t, "after-b", children[1].Tail())
}

func TestParseChildrenNamed(t *testing.T) {
	root, err := xmltree.Parse(strings.NewReader(`<ink xmlns="http://www.w3.org/2003/InkML"><trace/><traceGroup/><trace/></ink>`))
	require.NoError(t, err)
	traces := root.ChildrenNamed("trace")
	require.Len(t, traces, 2)
}

func TestParseMalformedXML(t *testing.T) {
	_, err := xmltree.Parse(strings.NewReader(`<ink><unclosed></ink>`))
	require.Error(t, err)
}

func TestParseNoRootElement(t *testing.T) {
	_, err := xmltree.Parse(strings.NewReader(``))
	require.Error(t, err)
}

func TestParseAttrsMap(t *testing.T) {
	root, err := xmltree.Parse(strings.NewReader(`<ink xmlns="http://www.w3.org/2003/InkML" a="1" b="2"></ink>`))
	require.NoError(t, err)
	require.Equal(t, map[string]string{"a": "1", "b": "2"}, root.Attrs())
}
