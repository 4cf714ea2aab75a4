package pointstream

import (
	"math"
	"strconv"
	"strings"

	"github.com/willabides/inkml/diag"
	"github.com/willabides/inkml/internal/model"
)

// DifferenceOrder is the encoding mode of a numeric sample: an explicit
// value, a first difference (delta from the previous sample), or a
// second difference (delta of deltas).
type DifferenceOrder int

const (
	Explicit DifferenceOrder = iota
	FirstDifference
	SecondDifference
)

// ParseNumeric splits a numeric token's raw text into its optional
// difference-order marker and parsed value, handling the hex ('#...'),
// sign, and interior-whitespace rules of the point-stream grammar.
func ParseNumeric(raw string) (marker *DifferenceOrder, value float64, err error) {
	i := 0
	if i < len(raw) {
		var order DifferenceOrder
		switch raw[i] {
		case '!':
			order = Explicit
			marker = &order
			i++
		case '\'':
			order = FirstDifference
			marker = &order
			i++
		case '"':
			order = SecondDifference
			marker = &order
			i++
		}
	}
	for i < len(raw) && isSpace(raw[i]) {
		i++
	}
	negative := false
	if i < len(raw) && raw[i] == '-' {
		negative = true
		i++
	}
	for i < len(raw) && isSpace(raw[i]) {
		i++
	}
	rest := raw[i:]
	if strings.HasPrefix(rest, "#") {
		u, perr := strconv.ParseUint(rest[1:], 16, 64)
		if perr != nil {
			return marker, 0, ErrBadToken{Raw: raw}
		}
		value = float64(u)
	} else {
		f, perr := strconv.ParseFloat(rest, 64)
		if perr != nil {
			return marker, 0, ErrBadToken{Raw: raw}
		}
		value = f
	}
	if negative {
		value = -value
	}
	return marker, value, nil
}

// roundHalfAwayFromZero rounds integer-typed channel values to the
// nearest integer, halves away from zero, which is exactly math.Round.
func roundHalfAwayFromZero(v float64) float64 {
	return math.Round(v)
}

type regularState struct {
	channel       *model.Channel
	values        []float64
	currentOrder  DifferenceOrder
	lastFirstDiff float64
}

type intermittentState struct {
	channel *model.Channel
	values  []model.IndexValue
}

// DecodeTrace decodes a <trace> element's full text content into regular
// and intermittent channel samples under the given effective trace
// format. It returns ok=false if the content is malformed in any way
// (bad cardinality, unparseable token, empty carry state required by a
// wildcard or difference token); the entire trace is dropped on any such
// failure, with one warning describing the cause.
func DecodeTrace(content string, format *model.TraceFormat, sink diag.Sink) (regular map[string][]float64, intermittent map[string][]model.IndexValue, ok bool) {
	regularChannels := format.RegularChannels
	intermittentChannels := format.IntermittentChannels
	numRegular := len(regularChannels)
	numTotal := numRegular + len(intermittentChannels)

	regState := make([]regularState, numRegular)
	for i, ch := range regularChannels {
		regState[i] = regularState{channel: ch, currentOrder: Explicit, lastFirstDiff: math.NaN()}
	}
	intermState := make([]intermittentState, len(intermittentChannels))
	for i, ch := range intermittentChannels {
		intermState[i] = intermittentState{channel: ch}
	}

	points := strings.Split(content, ",")
	for pointIdx, rawPoint := range points {
		point := strings.TrimSpace(rawPoint)
		if point == "" && len(points) == 1 {
			continue
		}
		toks := Lex(point)
		if len(toks) < numRegular || len(toks) > numTotal {
			sink.Warn("inkml: trace point %d has %d tokens, expected between %d and %d; dropping trace", pointIdx, len(toks), numRegular, numTotal)
			return nil, nil, false
		}

		for j := 0; j < numRegular; j++ {
			st := &regState[j]
			tok := toks[j]
			var value float64
			switch {
			case tok.Kind == TokenWildcard:
				if len(st.values) == 0 {
					sink.Warn("inkml: wildcard in regular channel %d (%s) with no prior value; dropping trace", j, st.channel.Name)
					return nil, nil, false
				}
				value = st.values[len(st.values)-1]
			case st.channel.Type == model.ChannelTypeBoolean:
				switch tok.Kind {
				case TokenBoolTrue:
					value = 1
				case TokenBoolFalse:
					value = 0
				default:
					sink.Warn("inkml: non-boolean token in boolean channel %d (%s); dropping trace", j, st.channel.Name)
					return nil, nil, false
				}
				st.values = append(st.values, value)
				continue
			default:
				if tok.Kind != TokenNumeric {
					sink.Warn("inkml: non-numeric token in channel %d (%s); dropping trace", j, st.channel.Name)
					return nil, nil, false
				}
				marker, num, err := ParseNumeric(tok.Raw)
				if err != nil {
					sink.Warn("inkml: unparseable token in channel %d (%s): %v; dropping trace", j, st.channel.Name, err)
					return nil, nil, false
				}
				order := st.currentOrder
				if marker != nil {
					order = *marker
				}
				switch order {
				case Explicit:
					value = num
					st.lastFirstDiff = math.NaN()
				case FirstDifference:
					if len(st.values) == 0 {
						sink.Warn("inkml: first-difference token in channel %d (%s) with no prior value; dropping trace", j, st.channel.Name)
						return nil, nil, false
					}
					value = st.values[len(st.values)-1] + num
					st.lastFirstDiff = num
				case SecondDifference:
					if math.IsNaN(st.lastFirstDiff) {
						sink.Warn("inkml: second-difference token in channel %d (%s) with no prior first difference; dropping trace", j, st.channel.Name)
						return nil, nil, false
					}
					value = st.values[len(st.values)-1] + st.lastFirstDiff + num
					st.lastFirstDiff += num
				}
				if st.channel.Type == model.ChannelTypeInteger {
					value = roundHalfAwayFromZero(value)
				}
				st.currentOrder = order
			}
			st.values = append(st.values, value)
		}

		for k := 0; k < len(intermittentChannels); k++ {
			if numRegular+k >= len(toks) {
				break
			}
			st := &intermState[k]
			tok := toks[numRegular+k]
			if tok.Kind == TokenPlaceholder {
				continue
			}
			var value float64
			switch {
			case tok.Kind == TokenWildcard:
				if len(st.values) == 0 {
					sink.Warn("inkml: wildcard in intermittent channel %d (%s) with no prior value; dropping trace", k, st.channel.Name)
					return nil, nil, false
				}
				value = st.values[len(st.values)-1].Value
			case st.channel.Type == model.ChannelTypeBoolean:
				switch tok.Kind {
				case TokenBoolTrue:
					value = 1
				case TokenBoolFalse:
					value = 0
				default:
					sink.Warn("inkml: non-boolean token in intermittent channel %d (%s); dropping trace", k, st.channel.Name)
					return nil, nil, false
				}
			default:
				if tok.Kind != TokenNumeric {
					sink.Warn("inkml: non-numeric token in intermittent channel %d (%s); dropping trace", k, st.channel.Name)
					return nil, nil, false
				}
				_, num, err := ParseNumeric(tok.Raw)
				if err != nil {
					sink.Warn("inkml: unparseable token in intermittent channel %d (%s): %v; dropping trace", k, st.channel.Name, err)
					return nil, nil, false
				}
				value = num
				if st.channel.Type == model.ChannelTypeInteger {
					value = roundHalfAwayFromZero(value)
				}
			}
			st.values = append(st.values, model.IndexValue{Index: pointIdx, Value: value})
		}
	}

	regular = make(map[string][]float64, numRegular)
	for _, st := range regState {
		regular[st.channel.Name] = st.values
	}
	intermittent = make(map[string][]model.IndexValue, len(intermState))
	for _, st := range intermState {
		intermittent[st.channel.Name] = st.values
	}
	return regular, intermittent, true
}
