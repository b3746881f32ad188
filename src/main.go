package main

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/integrii/flaggy"
	"github.com/logrusorgru/aurora"

	"gridsvg/src/grid"
	"gridsvg/src/render"
	"gridsvg/src/view"
)

var (
	templates = map[string]string{
		"heart": `
.##...##.
####.####
#########
#########
.#######.
..#####..
...###...
....#....`,
		"invader": `
..#.....#..
...#...#...
..#######..
.##.###.##.
###########
#.#######.#
#.#.....#.#
...##.##...`,
		"ring": `
.###.
##.##
#...#
##.##
.###.`,
	}
)

type EnvOptions struct {
	inputFile   string
	template    string
	randomData  bool
	interactive bool
	width       int
	height      int
	outputFile  string
}

func main() {
	eo, ro := initOptions()

	g, err := sourceGrid(eo)
	if err != nil {
		fmt.Fprintln(os.Stderr, aurora.Red(err.Error()))
		os.Exit(1)
	}

	if eo.interactive {
		outFile := eo.outputFile
		if outFile == "" {
			outFile = "grid.svg"
		}
		v := view.NewEditorUI(g, ro, outFile)
		v.Start()
		return
	}

	startTime := time.Now()
	doc, err := render.Convert(g.Cells, ro)
	if err != nil {
		fmt.Fprintln(os.Stderr, aurora.Red(err.Error()))
		os.Exit(1)
	}

	if eo.outputFile == "" {
		fmt.Println(doc)
	} else {
		if err := os.WriteFile(eo.outputFile, []byte(doc), 0644); err != nil {
			fmt.Fprintln(os.Stderr, aurora.Red(err.Error()))
			os.Exit(1)
		}
	}
	printSummary(g, ro, len(doc), time.Since(startTime))
}

//sourceGrid builds the grid from the configured source:
//a pattern file, random data or a built-in template
func sourceGrid(eo *EnvOptions) (*grid.Grid, error) {
	switch {
	case eo.inputFile != "":
		text, err := os.ReadFile(eo.inputFile)
		if err != nil {
			return nil, err
		}
		cells, err := grid.Parse(string(text))
		if err != nil {
			return nil, err
		}
		return grid.FromCells(cells), nil
	case eo.randomData:
		g := grid.New(eo.width, eo.height)
		g.Randomize()
		return g, nil
	default:
		cells, err := grid.Parse(templates[eo.template])
		if err != nil {
			return nil, err
		}
		return grid.FromCells(cells), nil
	}
}

func printSummary(g *grid.Grid, ro *render.Options, docBytes int, elapsed time.Duration) {
	mode := "simple"
	if ro.Rounded {
		mode = "rounded"
	}
	fmt.Fprintln(os.Stderr, "Rendered:")
	printProp("Dimension", "%v x %v cells", g.Width, g.Height)
	printProp("Canvas", "%v x %v px", g.Width*ro.CellSize, g.Height*ro.CellSize)
	printProp("On cells", "%v", g.CountOn())
	printProp("Mode", "%v", mode)
	printProp("Output", "%v bytes", docBytes)
	printProp("Took", "%v", elapsed.Round(time.Microsecond))
}

func printProp(name string, valueformat string, values ...interface{}) {
	fmt.Fprintf(os.Stderr, "  "+aurora.Colorize(name, aurora.GreenFg).String()+": "+valueformat+"\n", values...)
}

func initOptions() (eo *EnvOptions, ro *render.Options) {

	o := render.DefaultOptions
	ro = &o
	templateNames := make([]string, 0, len(templates))
	for k := range templates {
		templateNames = append(templateNames, k)
	}
	sort.Strings(templateNames)
	eo = &EnvOptions{template: "heart", width: 24, height: 16}

	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	flaggy.String(&eo.inputFile, "f", "file", "Pattern file to render ('#' marks the on cells)")
	flaggy.String(&eo.template, "t", "template", "Built-in template to render ["+strings.Join(templateNames, "|")+"]")
	flaggy.Bool(&eo.randomData, "r", "random", "Render a random grid instead of a pattern")
	flaggy.Int(&eo.width, "x", "width", "Width of a random grid")
	flaggy.Int(&eo.height, "y", "height", "Height of a random grid")
	flaggy.Bool(&eo.interactive, "n", "interactive", "Start the interactive editor")
	flaggy.String(&eo.outputFile, "o", "output", "Output SVG file (stdout when omitted)")
	flaggy.Int(&ro.CellSize, "c", "cell", "Size of one cell in SVG units")
	flaggy.String(&ro.OnColor, "a", "on", "Fill color of the on cells")
	flaggy.String(&ro.OffColor, "b", "off", "Background color (no background when omitted)")
	flaggy.Bool(&ro.Rounded, "u", "rounded", "Round the cell corners by the neighborhood rule")
	flaggy.Int(&ro.Workers, "j", "workers", "Emit rows with this many goroutines")

	flaggy.Parse()

	if _, ok := templates[eo.template]; !ok {
		flaggy.ShowHelpAndExit("unknown template")
	}
	if eo.width < 1 || eo.height < 1 {
		flaggy.ShowHelpAndExit("the grid dimensions must be positive")
	}

	return
}
