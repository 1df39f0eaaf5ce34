// Command strokerepl is an interactive shell for tweaking stroke
// parameters and inspecting the synthesized outline.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/gogpu/glyph"
	"github.com/gogpu/glyph/outline"
)

func main() {
	archetype := flag.String("archetype", "heng", "initial stroke archetype")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()
	initDisplay()

	if *verbose {
		glyph.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}
	pterm.Info.Println("Welcome to the stroke REPL")

	repl, err := readline.New("stroke > ")
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(3)
	}
	defer repl.Close()

	intp := &Intp{repl: repl, synth: glyph.NewSynthesizer(glyph.WithCacheCapacity(16))}
	if err := intp.use(*archetype); err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(4)
	}
	pterm.Info.Println("Quit with <ctrl>D, type 'help' for commands")
	intp.REPL()
}

// We use pterm for moderately fancy output.
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

// Intp is the interpreter state: the selected archetype, its parameter
// overrides and the style.
type Intp struct {
	repl   *readline.Instance
	synth  *glyph.Synthesizer
	gen    glyph.Generator
	params glyph.Params
	style  glyph.StyleParameters
}

func (intp *Intp) String() string {
	if intp.gen == nil {
		return "()"
	}
	return fmt.Sprintf("( %s %s, weight=%g )", intp.gen.Archetype(), intp.gen.Alias(), intp.style.Weight)
}

// REPL reads commands until EOF or quit.
func (intp *Intp) REPL() {
	for {
		pterm.Println(intp.String())
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF or interrupt
			break
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		quit, err := intp.execute(fields[0], fields[1:])
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

var commands = [][2]string{
	{"list", "list archetypes"},
	{"use <archetype>", "select an archetype and reset its parameters"},
	{"params", "show parameters of the current archetype"},
	{"set <param> <value>", "set a parameter (Chinese names accepted)"},
	{"style <field> <value>", "weight, bend, start, start-value, turn, turn-value"},
	{"reset", "restore default parameters and style"},
	{"show", "synthesize and summarize the outline"},
	{"dump", "print the outline segments"},
	{"png <file> [size]", "write a PNG preview"},
	{"quit", "leave"},
}

func (intp *Intp) execute(cmd string, args []string) (quit bool, err error) {
	switch cmd {
	case "quit", "exit":
		return true, nil
	case "help":
		data := [][]string{{"Command", "Description"}}
		for _, c := range commands {
			data = append(data, []string{c[0], c[1]})
		}
		pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	case "list":
		pterm.Println(strings.Join(glyph.Archetypes(), " "))
	case "use":
		if len(args) != 1 {
			return false, fmt.Errorf("usage: use <archetype>")
		}
		return false, intp.use(args[0])
	case "params":
		intp.printParams()
	case "set":
		if len(args) != 2 {
			return false, fmt.Errorf("usage: set <param> <value>")
		}
		v, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return false, err
		}
		intp.params[glyph.CanonicalParamName(args[0])] = v
		return false, intp.show()
	case "style":
		if len(args) != 2 {
			return false, fmt.Errorf("usage: style <field> <value>")
		}
		if err := intp.setStyle(args[0], args[1]); err != nil {
			return false, err
		}
		return false, intp.show()
	case "reset":
		intp.params = glyph.Params{}
		intp.style = glyph.DefaultStyle()
	case "show":
		return false, intp.show()
	case "dump":
		c, err := intp.contour()
		if err != nil {
			return false, err
		}
		for i, s := range c {
			pterm.Printf("%3d %-5s %v\n", i, s.Kind, s.P)
		}
	case "png":
		return false, intp.png(args)
	default:
		return false, fmt.Errorf("unknown command %q, try 'help'", cmd)
	}
	return false, nil
}

func (intp *Intp) use(archetype string) error {
	g, err := glyph.Lookup(archetype)
	if err != nil {
		return err
	}
	intp.gen = g
	intp.params = glyph.Params{}
	if intp.style == (glyph.StyleParameters{}) {
		intp.style = glyph.DefaultStyle()
	}
	return nil
}

func (intp *Intp) printParams() {
	data := [][]string{{"Param", "Value", "Default", "Range"}}
	for _, p := range intp.gen.Params() {
		v, ok := intp.params[p.Name]
		value := "-"
		if ok {
			value = strconv.FormatFloat(v, 'g', -1, 64)
		}
		data = append(data, []string{p.Name, value,
			strconv.FormatFloat(p.Default, 'g', -1, 64),
			fmt.Sprintf("%g .. %g", p.Min, p.Max)})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func (intp *Intp) setStyle(field, value string) error {
	switch field {
	case "start":
		return intp.style.StartStyle.UnmarshalText([]byte(value))
	case "turn":
		return intp.style.TurnStyle.UnmarshalText([]byte(value))
	}
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return err
	}
	switch field {
	case "weight":
		intp.style.Weight = v
	case "bend":
		intp.style.BendingDegree = v
	case "start-value":
		intp.style.StartValue = v
	case "turn-value":
		intp.style.TurnValue = v
	default:
		return fmt.Errorf("unknown style field %q", field)
	}
	return nil
}

func (intp *Intp) contour() (glyph.Contour, error) {
	return intp.synth.Stroke(intp.gen.Archetype(), intp.params, intp.style)
}

func (intp *Intp) show() error {
	c, err := intp.contour()
	if err != nil {
		return err
	}
	sk, err := glyph.BuildSkeleton(intp.gen.Archetype(), intp.params, intp.style)
	if err != nil {
		return err
	}
	b := c.Bounds()
	pterm.Printf("segments %d, area %.1f, bounds (%.1f, %.1f)-(%.1f, %.1f), measured weight %.2f\n",
		len(c), c.Area(), b.Min.X, b.Min.Y, b.Max.X, b.Max.Y,
		glyph.EstimateWeight([]glyph.Contour{c}, sk))
	stats := intp.synth.CacheStats()
	pterm.Printf("cache: %d entries, hit rate %.0f%%\n", stats.Len, 100*stats.HitRate())
	return nil
}

func (intp *Intp) png(args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return fmt.Errorf("usage: png <file> [size]")
	}
	size := 512
	if len(args) == 2 {
		n, err := strconv.Atoi(args[1])
		if err != nil || n <= 0 {
			return fmt.Errorf("bad size %q", args[1])
		}
		size = n
	}
	c, err := intp.contour()
	if err != nil {
		return err
	}
	f, err := os.Create(args[0])
	if err != nil {
		return fmt.Errorf("cannot create output file: %w", err)
	}
	defer f.Close()
	if err := outline.WritePNG(f, outline.Rasterize([]glyph.Contour{c}, size, size, outline.EmView)); err != nil {
		return err
	}
	pterm.Info.Printf("wrote %s\n", args[0])
	return nil
}
