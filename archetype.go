package glyph

import (
	"fmt"
	"sort"
)

// Generator maps archetype parameters to a skeleton. Implementations are
// pure: the same inputs always produce the same skeleton.
type Generator interface {
	// Archetype returns the canonical tag, e.g. "heng_zhe_wan_gou".
	Archetype() string
	// Alias returns the host's name for the archetype, e.g. "横折弯钩".
	Alias() string
	// Params declares the accepted parameters.
	Params() []ParamSpec
	// Skeleton builds the centerline for resolved parameter values.
	Skeleton(p map[string]float64, style StyleParameters) Skeleton
}

// origin is the anchor of every archetype: the center of a 1000-unit em.
var origin = Point{X: 500, Y: 500}

// generators is the closed set of stroke archetypes.
var generators = []Generator{
	hengGenerator{},
	shuGenerator{},
	bendGenerator{tag: "dian", alias: "点", hspan: 100, vspan: 150, degree: 30},
	bendGenerator{tag: "pie", alias: "撇", hspan: 500, vspan: 500, degree: 150, leftward: true},
	bendGenerator{tag: "na", alias: "捺", hspan: 500, vspan: 500, degree: 150},
	bendGenerator{tag: "tiao", alias: "挑", hspan: 200, vspan: 200, degree: 30, rising: true},
	hengZheGenerator{},
	hookGenerator{tag: "heng_gou", alias: "横钩", first: "heng", firstLen: 500, gouH: 100, gouV: 100},
	hookGenerator{tag: "shu_gou", alias: "竖钩", first: "shu", firstLen: 500, gouH: 100, gouV: -15},
	hengZheGouGenerator{},
	hengZheWanGouGenerator{},
}

var generatorIndex = func() map[string]Generator {
	m := make(map[string]Generator, 2*len(generators))
	for _, g := range generators {
		m[g.Archetype()] = g
		m[normalizeKey(g.Alias())] = g
	}
	return m
}()

// Lookup returns the generator for an archetype tag or its alias.
func Lookup(archetype string) (Generator, error) {
	g, ok := generatorIndex[normalizeKey(archetype)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownArchetype, archetype)
	}
	return g, nil
}

// Archetypes returns the canonical tags of all archetypes, sorted.
func Archetypes() []string {
	out := make([]string, 0, len(generators))
	for _, g := range generators {
		out = append(out, g.Archetype())
	}
	sort.Strings(out)
	return out
}

// BuildSkeleton resolves params against the archetype's declared ranges and
// returns its skeleton.
func BuildSkeleton(archetype string, params Params, style StyleParameters) (Skeleton, error) {
	g, err := Lookup(archetype)
	if err != nil {
		return Skeleton{}, err
	}
	return g.Skeleton(params.resolve(g.Params()), style), nil
}

// Parameter ranges shared by the archetypes.
func lengthSpec(name string, def float64) ParamSpec {
	return ParamSpec{Name: name, Default: def, Min: 0, Max: 1000}
}

func spanSpec(name string, def float64) ParamSpec {
	return ParamSpec{Name: name, Default: def, Min: -1000, Max: 1000}
}

func cursorSpec(name string) ParamSpec {
	return ParamSpec{Name: name, Default: 0.5, Min: 0, Max: 1}
}

func degreeSpec(name string, def float64) ParamSpec {
	return ParamSpec{Name: name, Default: def, Min: -1000, Max: 1000}
}

// down returns a vector v units down the em (toward -y).
func down(v float64) Point { return Point{Y: -v} }
