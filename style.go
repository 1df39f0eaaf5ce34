package glyph

import (
	"fmt"
	"strconv"
)

// DefaultWeight is the stroke weight used when StyleParameters.Weight is
// unset or non-positive.
const DefaultWeight = 40

// Nominal fillet radii per unit of bending degree.
const (
	bendRadiusPerDegree = 80
	hookRadiusPerDegree = 30
	// bendDegreePerUnit is added to every bend's degree per unit of the
	// global bending degree.
	bendDegreePerUnit = 30
)

// StartStyle selects the ornament drawn at a stroke's start joint.
type StartStyle uint8

const (
	// StartNone draws a plain butt start.
	StartNone StartStyle = iota
	// StartFlare draws a rectangular flare on both boundaries.
	StartFlare
	// StartFlareRounded draws the flare with a rounded inner corner.
	StartFlareRounded
)

// String returns the style name.
func (s StartStyle) String() string {
	switch s {
	case StartNone:
		return "none"
	case StartFlare:
		return "flare"
	case StartFlareRounded:
		return "flare-rounded"
	default:
		return fmt.Sprintf("StartStyle(%d)", uint8(s))
	}
}

// ParseStartStyle parses a style name as returned by String, or its
// number.
func ParseStartStyle(name string) (StartStyle, error) {
	for s := StartNone; s <= StartFlareRounded; s++ {
		if name == s.String() {
			return s, nil
		}
	}
	if n, err := strconv.ParseUint(name, 10, 8); err == nil && StartStyle(n) <= StartFlareRounded {
		return StartStyle(n), nil
	}
	return StartNone, fmt.Errorf("glyph: unknown start style %q", name)
}

// MarshalText implements encoding.TextMarshaler.
func (s StartStyle) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *StartStyle) UnmarshalText(text []byte) error {
	v, err := ParseStartStyle(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// TurnStyle selects the decoration drawn at interior turn joints.
type TurnStyle uint8

const (
	// TurnSharp keeps the plain mitered corner.
	TurnSharp TurnStyle = iota
	// TurnBulge adds a smooth bulge on the convex side of the turn.
	TurnBulge
)

// String returns the style name.
func (s TurnStyle) String() string {
	switch s {
	case TurnSharp:
		return "sharp"
	case TurnBulge:
		return "bulge"
	default:
		return fmt.Sprintf("TurnStyle(%d)", uint8(s))
	}
}

// ParseTurnStyle parses a style name as returned by String, or its number.
func ParseTurnStyle(name string) (TurnStyle, error) {
	switch name {
	case "sharp", "0":
		return TurnSharp, nil
	case "bulge", "1":
		return TurnBulge, nil
	}
	return TurnSharp, fmt.Errorf("glyph: unknown turn style %q", name)
}

// MarshalText implements encoding.TextMarshaler.
func (s TurnStyle) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *TurnStyle) UnmarshalText(text []byte) error {
	v, err := ParseTurnStyle(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// StyleParameters parameterize every pipeline stage. They are read-only:
// a pipeline run is a pure function of a skeleton and these values.
type StyleParameters struct {
	// Weight is the stroke weight (full width across the centerline).
	Weight float64 `yaml:"weight"`
	// BendingDegree scales fillet radii and bend displacement. Zero keeps
	// every corner sharp.
	BendingDegree float64 `yaml:"bending_degree"`

	StartStyle StartStyle `yaml:"start_style"`
	StartValue float64    `yaml:"start_value"`

	TurnStyle TurnStyle `yaml:"turn_style"`
	TurnValue float64   `yaml:"turn_value"`
}

// DefaultStyle returns the style used when a host supplies none.
func DefaultStyle() StyleParameters {
	return StyleParameters{
		Weight:        DefaultWeight,
		BendingDegree: 1,
	}
}

// weight returns the effective stroke weight.
func (s StyleParameters) weight() float64 {
	if s.Weight <= 0 || !isFinite(s.Weight) {
		return DefaultWeight
	}
	return s.Weight
}

func (s StyleParameters) bendingDegree() float64 {
	if s.BendingDegree < 0 || !isFinite(s.BendingDegree) {
		return 0
	}
	return s.BendingDegree
}

// cornerRadius returns the nominal fillet radius for a junction kind.
func (s StyleParameters) cornerRadius(k CornerKind) float64 {
	switch k {
	case CornerBend:
		return bendRadiusPerDegree * s.bendingDegree()
	case CornerHook:
		return hookRadiusPerDegree * s.bendingDegree()
	default:
		return 0
	}
}

// effectiveBend returns the bend displacement for a bone's bend_degree
// parameter, adjusted by the global bending degree.
func (s StyleParameters) effectiveBend(degree float64) float64 {
	return degree + bendDegreePerUnit*s.bendingDegree()
}

// key returns a canonical string form used for memoization.
func (s StyleParameters) key() string {
	return fmt.Sprintf("w=%g;b=%g;s=%d:%g;t=%d:%g",
		s.weight(), s.bendingDegree(), s.StartStyle, s.StartValue, s.TurnStyle, s.TurnValue)
}
