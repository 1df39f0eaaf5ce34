// Command strokegen synthesizes stroke and glyph outlines and writes them as
// PNG previews.
//
// Usage:
//
//	strokegen -archetype heng_zhe -param heng.length=600 -output hz.png
//	strokegen -glyphs glyphs.yaml -output out/
//	strokegen -font font.ttf -rune 回 -output hui.png
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/glyph"
	"github.com/gogpu/glyph/outline"
)

func main() {
	var (
		archetype = flag.String("archetype", "heng", "stroke archetype tag or alias")
		glyphs    = flag.String("glyphs", "", "YAML file of glyph specs to build")
		fontPath  = flag.String("font", "", "font whose glyph gets its overlaps removed")
		char      = flag.String("rune", "", "character to load from -font")
		size      = flag.Int("size", 512, "image width and height")
		output    = flag.String("output", "stroke.png", "output file, or directory for -glyphs")
		dump      = flag.Bool("dump", false, "print the contour segments")
		quad      = flag.Bool("quad", false, "convert cubics to quadratics before output")
		verbose   = flag.Bool("v", false, "debug logging")
		workers   = flag.Int("workers", 0, "batch workers (0 = GOMAXPROCS)")

		style  = glyph.DefaultStyle()
		params = glyph.Params{}
	)
	flag.Float64Var(&style.Weight, "weight", style.Weight, "stroke weight")
	flag.Float64Var(&style.BendingDegree, "bend", style.BendingDegree, "global bending degree")
	flag.Float64Var(&style.StartValue, "start-value", 0, "start decoration magnitude")
	flag.Float64Var(&style.TurnValue, "turn-value", 0, "turn decoration magnitude")
	flag.TextVar(&style.StartStyle, "start", glyph.StartNone, "start decoration: none, flare, flare-rounded")
	flag.TextVar(&style.TurnStyle, "turn", glyph.TurnSharp, "turn decoration: sharp, bulge")
	flag.Func("param", "archetype parameter name=value (repeatable)", func(s string) error {
		name, value, ok := strings.Cut(s, "=")
		if !ok {
			return fmt.Errorf("want name=value, got %q", s)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return err
		}
		params[name] = v
		return nil
	})
	flag.Parse()
	initDisplay()

	if *verbose {
		glyph.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}
	out := writer{size: *size, dump: *dump, quad: *quad}

	var err error
	switch {
	case *glyphs != "":
		err = buildGlyphs(*glyphs, *output, *workers, out)
	case *fontPath != "":
		err = resolveFontGlyph(*fontPath, *char, *output, out)
	default:
		err = buildStroke(*archetype, params, style, *output, out)
	}
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(1)
	}
}

// initDisplay sets the pterm prefixes.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func buildStroke(archetype string, params glyph.Params, style glyph.StyleParameters, path string, out writer) error {
	c, err := glyph.SynthesizeStroke(archetype, params, style)
	if err != nil {
		return err
	}
	pterm.Info.Printf("%s: %d segments, area %.1f\n", archetype, len(c), c.Area())
	return out.write(path, []glyph.Contour{c}, outline.EmView)
}

func buildGlyphs(specPath, dir string, workers int, out writer) error {
	f, err := os.Open(specPath)
	if err != nil {
		return err
	}
	specs, err := glyph.LoadGlyphSpecs(f)
	f.Close()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("cannot create output directory: %w", err)
	}

	results := glyph.NewComposer(glyph.WithWorkers(workers)).BuildGlyphs(specs)
	data := [][]string{{"Glyph", "Contours", "Area", "Status"}}
	var failed int
	for i, r := range results {
		name := specs[i].Name
		if r.Err != nil {
			failed++
			data = append(data, []string{name, "-", "-", r.Err.Error()})
			continue
		}
		path := filepath.Join(dir, fileName(name, i)+".png")
		if err := out.write(path, r.Glyph.Contours, outline.EmView); err != nil {
			return err
		}
		data = append(data, []string{name, strconv.Itoa(len(r.Glyph.Contours)),
			fmt.Sprintf("%.1f", glyph.AreaOf(r.Glyph.Contours)), "ok"})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	if failed > 0 {
		return fmt.Errorf("%d of %d glyphs failed", failed, len(results))
	}
	return nil
}

// fileName returns a file system friendly name for a glyph.
func fileName(name string, i int) string {
	if name == "" || strings.ContainsAny(name, `/\:`) {
		return fmt.Sprintf("glyph%03d", i)
	}
	return name
}

func resolveFontGlyph(fontPath, char, path string, out writer) error {
	r := []rune(char)
	if len(r) != 1 {
		return fmt.Errorf("-rune needs exactly one character, got %q", char)
	}
	data, err := os.ReadFile(fontPath)
	if err != nil {
		return err
	}
	f, err := sfnt.Parse(data)
	if err != nil {
		return fmt.Errorf("cannot parse font: %w", err)
	}
	var buf sfnt.Buffer
	gid, err := f.GlyphIndex(&buf, r[0])
	if err != nil {
		return err
	}
	if gid == 0 {
		return fmt.Errorf("font has no glyph for %q", char)
	}
	upem := int(f.UnitsPerEm())
	// At ppem == upem the segments are in font units.
	segs, err := f.LoadGlyph(&buf, gid, fixed.I(upem), nil)
	if err != nil {
		return fmt.Errorf("cannot load glyph %d: %w", gid, err)
	}

	in := outline.FromSFNT(segs)
	resolved, err := glyph.ResolveOverlap(in)
	if err != nil {
		return err
	}
	pterm.Info.Printf("%q: %d contours in, %d out\n", char, len(in), len(resolved))
	view := glyph.Rect{Max: glyph.Pt(float64(upem), float64(upem))}
	if b := glyph.BoundsOf(resolved); !b.IsEmpty() {
		view = view.Union(b)
	}
	return out.write(path, resolved, view)
}

// writer renders contours and optionally dumps their segments.
type writer struct {
	size int
	dump bool
	quad bool
}

func (w writer) write(path string, contours []glyph.Contour, view glyph.Rect) error {
	if w.quad {
		contours = outline.ToQuadratic(contours, outline.DefaultQuadTolerance)
	}
	if w.dump {
		dumpContours(contours)
	}
	mask := outline.Rasterize(contours, w.size, w.size, view)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create output file: %w", err)
	}
	defer f.Close()
	if err := outline.WritePNG(f, mask); err != nil {
		return err
	}
	pterm.Info.Printf("wrote %s\n", path)
	return nil
}

func dumpContours(contours []glyph.Contour) {
	data := [][]string{{"Contour", "Kind", "Points"}}
	for i, c := range contours {
		for _, s := range c {
			n := 2
			switch s.Kind {
			case glyph.SegmentQuad:
				n = 3
			case glyph.SegmentCubic:
				n = 4
			}
			pts := make([]string, n)
			for j := range n {
				pts[j] = fmt.Sprintf("(%.2f, %.2f)", s.P[j].X, s.P[j].Y)
			}
			data = append(data, []string{strconv.Itoa(i), s.Kind.String(), strings.Join(pts, " ")})
		}
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}
