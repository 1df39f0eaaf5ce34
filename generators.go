package glyph

// ----------------------------------------------------------------------------
// Single-bone archetypes
// ----------------------------------------------------------------------------

// hengGenerator builds 横, a horizontal line drawn left to right.
type hengGenerator struct{}

func (hengGenerator) Archetype() string { return "heng" }
func (hengGenerator) Alias() string     { return "横" }

func (hengGenerator) Params() []ParamSpec {
	return []ParamSpec{lengthSpec("length", 500)}
}

func (hengGenerator) Skeleton(p map[string]float64, _ StyleParameters) Skeleton {
	l := p["length"]
	start := origin.Add(Pt(-l/2, 0))
	return newSkeletonBuilder("heng").
		joint("heng_start", start).
		joint("heng_end", start.Add(Pt(l, 0))).
		line("heng_start", "heng_end").
		build()
}

// shuGenerator builds 竖, a vertical line drawn top to bottom.
type shuGenerator struct{}

func (shuGenerator) Archetype() string { return "shu" }
func (shuGenerator) Alias() string     { return "竖" }

func (shuGenerator) Params() []ParamSpec {
	return []ParamSpec{lengthSpec("length", 500)}
}

func (shuGenerator) Skeleton(p map[string]float64, _ StyleParameters) Skeleton {
	l := p["length"]
	start := origin.Add(Pt(0, l/2))
	return newSkeletonBuilder("shu").
		joint("shu_start", start).
		joint("shu_end", start.Add(down(l))).
		line("shu_start", "shu_end").
		build()
}

// bendGenerator builds the single bent-bone archetypes. By default the bone
// runs from the upper left to the lower right; leftward strokes run from
// the upper right to the lower left and rising strokes from the lower left
// to the upper right.
type bendGenerator struct {
	tag, alias   string
	hspan, vspan float64
	degree       float64
	leftward     bool
	rising       bool
}

func (g bendGenerator) Archetype() string { return g.tag }
func (g bendGenerator) Alias() string     { return g.alias }

func (g bendGenerator) Params() []ParamSpec {
	return []ParamSpec{
		spanSpec("hspan", g.hspan),
		spanSpec("vspan", g.vspan),
		cursorSpec("bend_cursor"),
		degreeSpec("bend_degree", g.degree),
	}
}

func (g bendGenerator) Skeleton(p map[string]float64, style StyleParameters) Skeleton {
	h, v := p["hspan"], p["vspan"]
	cursor := p["bend_cursor"]
	degree := style.effectiveBend(p["bend_degree"])

	var start, end Point
	switch {
	case g.leftward:
		start = origin.Add(Pt(h/2, v/2))
		end = start.Add(Pt(-h, -v))
		degree = -degree
	case g.rising:
		start = origin.Add(Pt(-h/2, -v/2))
		end = start.Add(Pt(h, v))
		cursor = 1 - cursor
	default:
		start = origin.Add(Pt(-h/2, v/2))
		end = start.Add(Pt(h, -v))
	}

	b := newSkeletonBuilder(g.tag).
		joint(g.tag+"_start", start).
		joint(g.tag+"_bend", BendPoint(start, end, cursor, degree)).
		joint(g.tag+"_end", end).
		bend(g.tag+"_start", g.tag+"_bend", g.tag+"_end")
	if g.rising {
		b.reversed()
	}
	return b.build()
}

// ----------------------------------------------------------------------------
// Compound archetypes
// ----------------------------------------------------------------------------

// hengZheGenerator builds 横折: a horizontal line turning down and slightly
// left.
type hengZheGenerator struct{}

func (hengZheGenerator) Archetype() string { return "heng_zhe" }
func (hengZheGenerator) Alias() string     { return "横折" }

func (hengZheGenerator) Params() []ParamSpec {
	return []ParamSpec{
		lengthSpec("heng.length", 500),
		spanSpec("zhe.hspan", 100),
		spanSpec("zhe.vspan", 300),
	}
}

func (hengZheGenerator) Skeleton(p map[string]float64, _ StyleParameters) Skeleton {
	l, zh, zv := p["heng.length"], p["zhe.hspan"], p["zhe.vspan"]
	hengStart := origin.Add(Pt(-l/2, zv/2))
	hengEnd := hengStart.Add(Pt(l, 0))
	return newSkeletonBuilder("heng_zhe").
		joint("heng_start", hengStart).
		joint("heng_end", hengEnd).
		joint("zhe_end", hengEnd.Add(Pt(-zh, -zv))).
		line("heng_start", "heng_end").
		corner(CornerTurn).
		line("heng_end", "zhe_end").
		build()
}

// hookGenerator builds a straight stroke ending in a hook that points left;
// a negative vertical span lifts the hook tip.
type hookGenerator struct {
	tag, alias string
	first      string // "heng" or "shu"
	firstLen   float64
	gouH, gouV float64
}

func (g hookGenerator) Archetype() string { return g.tag }
func (g hookGenerator) Alias() string     { return g.alias }

func (g hookGenerator) Params() []ParamSpec {
	return []ParamSpec{
		lengthSpec(g.first+".length", g.firstLen),
		spanSpec("gou.hspan", g.gouH),
		spanSpec("gou.vspan", g.gouV),
	}
}

func (g hookGenerator) Skeleton(p map[string]float64, _ StyleParameters) Skeleton {
	l, gh, gv := p[g.first+".length"], p["gou.hspan"], p["gou.vspan"]
	var start, end Point
	if g.first == "shu" {
		start = origin.Add(Pt(0, l/2))
		end = start.Add(down(l))
	} else {
		start = origin.Add(Pt(-l/2, 0))
		end = start.Add(Pt(l, 0))
	}
	s, e := g.first+"_start", g.first+"_end"
	return newSkeletonBuilder(g.tag).
		joint(s, start).
		joint(e, end).
		joint("gou_end", end.Add(Pt(-gh, -gv))).
		line(s, e).
		corner(CornerHook).
		line(e, "gou_end").
		build()
}

// hengZheGouGenerator builds 横折钩.
type hengZheGouGenerator struct{}

func (hengZheGouGenerator) Archetype() string { return "heng_zhe_gou" }
func (hengZheGouGenerator) Alias() string     { return "横折钩" }

func (hengZheGouGenerator) Params() []ParamSpec {
	return []ParamSpec{
		lengthSpec("heng.length", 500),
		spanSpec("zhe.hspan", 100),
		spanSpec("zhe.vspan", 300),
		spanSpec("gou.hspan", 80),
		spanSpec("gou.vspan", -30),
	}
}

func (hengZheGouGenerator) Skeleton(p map[string]float64, _ StyleParameters) Skeleton {
	l, zh, zv := p["heng.length"], p["zhe.hspan"], p["zhe.vspan"]
	gh, gv := p["gou.hspan"], p["gou.vspan"]
	hengStart := origin.Add(Pt(-l/2, zv/2))
	hengEnd := hengStart.Add(Pt(l, 0))
	zheEnd := hengEnd.Add(Pt(-zh, -zv))
	return newSkeletonBuilder("heng_zhe_gou").
		joint("heng_start", hengStart).
		joint("heng_end", hengEnd).
		joint("zhe_end", zheEnd).
		joint("gou_end", zheEnd.Add(Pt(-gh, -gv))).
		line("heng_start", "heng_end").
		corner(CornerTurn).
		line("heng_end", "zhe_end").
		corner(CornerHook).
		line("zhe_end", "gou_end").
		build()
}

// hengZheWanGouGenerator builds 横折弯钩: a horizontal line, a bent
// descending stroke, a horizontal run to the right and an upward hook.
type hengZheWanGouGenerator struct{}

func (hengZheWanGouGenerator) Archetype() string { return "heng_zhe_wan_gou" }
func (hengZheWanGouGenerator) Alias() string     { return "横折弯钩" }

func (hengZheWanGouGenerator) Params() []ParamSpec {
	return []ParamSpec{
		lengthSpec("heng.length", 300),
		spanSpec("zhe.hspan", 300),
		spanSpec("zhe.vspan", 380),
		cursorSpec("zhe.bend_cursor"),
		degreeSpec("zhe.bend_degree", 100),
		lengthSpec("wan.length", 380),
		spanSpec("gou.hspan", 60),
		spanSpec("gou.vspan", 60),
	}
}

func (hengZheWanGouGenerator) Skeleton(p map[string]float64, style StyleParameters) Skeleton {
	l, zh, zv := p["heng.length"], p["zhe.hspan"], p["zhe.vspan"]
	wl, gh, gv := p["wan.length"], p["gou.hspan"], p["gou.vspan"]
	degree := style.effectiveBend(p["zhe.bend_degree"])

	hengStart := origin.Add(Pt(-l/2, zv/2))
	hengEnd := hengStart.Add(Pt(l, 0))
	zheEnd := hengEnd.Add(Pt(-zh, -zv))
	zheBend := BendPoint(hengEnd, zheEnd, p["zhe.bend_cursor"], degree)
	wanEnd := zheEnd.Add(Pt(wl, 0))

	return newSkeletonBuilder("heng_zhe_wan_gou").
		joint("heng_start", hengStart).
		joint("heng_end", hengEnd).
		joint("zhe_bend", zheBend).
		joint("zhe_end", zheEnd).
		joint("wan_end", wanEnd).
		joint("gou_end", wanEnd.Add(Pt(gh, gv))).
		line("heng_start", "heng_end").
		corner(CornerTurn).
		bend("heng_end", "zhe_bend", "zhe_end").
		corner(CornerBend).
		line("zhe_end", "wan_end").
		corner(CornerHook).
		line("wan_end", "gou_end").
		build()
}
