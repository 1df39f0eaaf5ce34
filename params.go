package glyph

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Params holds archetype parameter values keyed by parameter name.
// Missing keys take the archetype default.
type Params map[string]float64

// ParamSpec declares one archetype parameter.
type ParamSpec struct {
	Name    string
	Default float64
	Min     float64
	Max     float64
}

// clamp restricts v to the declared range. Non-finite values fall back to
// the default.
func (p ParamSpec) clamp(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return p.Default
	}
	return math.Max(p.Min, math.Min(p.Max, v))
}

// paramAliases maps host parameter names to canonical keys. Keys
// with a stroke prefix ("横-长度") map to dotted keys ("heng.length").
var paramAliases = map[string]string{
	"长度":     "length",
	"水平延伸":   "hspan",
	"竖直延伸":   "vspan",
	"弯曲游标":   "bend_cursor",
	"弯曲度":    "bend_degree",
	"横-长度":   "heng.length",
	"竖-长度":   "shu.length",
	"折-水平延伸": "zhe.hspan",
	"折-竖直延伸": "zhe.vspan",
	"折-弯曲游标": "zhe.bend_cursor",
	"折-弯曲度":  "zhe.bend_degree",
	"弯-长度":   "wan.length",
	"钩-水平延伸": "gou.hspan",
	"钩-竖直延伸": "gou.vspan",
}

// normalizeKey returns the canonical form of a tag or parameter name.
func normalizeKey(s string) string {
	return strings.TrimSpace(norm.NFC.String(s))
}

// CanonicalParamName maps an alias to its canonical parameter name.
// Unknown names are returned normalized but otherwise unchanged.
func CanonicalParamName(name string) string {
	k := normalizeKey(name)
	if c, ok := paramAliases[k]; ok {
		return c
	}
	return k
}

// resolve returns the value of every declared parameter: the supplied
// value (under its canonical or alias name) clamped into range, or the
// default. Unknown keys are ignored.
func (p Params) resolve(specs []ParamSpec) map[string]float64 {
	canon := make(map[string]float64, len(p))
	for k, v := range p {
		canon[CanonicalParamName(k)] = v
	}
	out := make(map[string]float64, len(specs))
	for _, s := range specs {
		v, ok := canon[s.Name]
		if !ok {
			out[s.Name] = s.Default
			continue
		}
		out[s.Name] = s.clamp(v)
	}
	return out
}

// key returns a canonical string form of the resolved parameters, used for
// memoization.
func (p Params) key(specs []ParamSpec) string {
	vals := p.resolve(specs)
	names := make([]string, 0, len(vals))
	for n := range vals {
		names = append(names, n)
	}
	sort.Strings(names)
	var sb strings.Builder
	for i, n := range names {
		if i > 0 {
			sb.WriteByte(';')
		}
		sb.WriteString(n)
		sb.WriteByte('=')
		sb.WriteString(formatFloat(vals[n]))
	}
	return sb.String()
}

// Defaults returns the default parameter set for specs.
func Defaults(specs []ParamSpec) Params {
	out := make(Params, len(specs))
	for _, s := range specs {
		out[s.Name] = s.Default
	}
	return out
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
