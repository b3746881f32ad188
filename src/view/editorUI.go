package view

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"

	"gridsvg/src/grid"
	"gridsvg/src/render"
)

type keyBinding struct {
	key      interface{}
	name     string
	descr    string
	handler  func(v *gocui.View) error
	viewName string
}

//EditorUI is the interactive terminal editor for the grid
//cells are toggled with the mouse, the current grid can be exported
//to an SVG file at any moment
type EditorUI struct {
	grid    *grid.Grid
	opts    *render.Options
	outFile string
	g       *gocui.Gui
	k       []keyBinding

	onFiller   string
	offFiller  string
	lastExport string
}

//NewEditorUI creates the editor over the grid g
//opts is shared with the editor: toggling the rounding mode changes it in place
//exports are written to outFile
func NewEditorUI(g *grid.Grid, opts *render.Options, outFile string) *EditorUI {

	var err error
	t := EditorUI{
		grid:      g,
		opts:      opts,
		outFile:   outFile,
		onFiller:  aurora.Green("█").BgBrightGreen().String(),
		offFiller: "░",
	}

	t.g, err = gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		log.Panicln(err)
	}

	t.g.Mouse = true
	t.k = []keyBinding{
		{gocui.KeyCtrlC,
			"^C",
			"Exit",
			t.cmdQuit,
			""},
		{'e',
			"E",
			"Export SVG",
			t.cmdExport,
			""},
		{'u',
			"U",
			"Toggle rounding",
			t.cmdToggleRounding,
			""},
		{'w',
			"W",
			"Randomize",
			t.cmdRandomize,
			""},
		{'c',
			"C",
			"Clear",
			t.cmdClear,
			""},
		{gocui.MouseLeft,
			"MOUSE",
			"Toggle the cell",
			t.cmdMouseClick,
			"canvas"},
	}
	t.g.SetManagerFunc(t.layout)

	t.initKeyBindings(t.k)

	return &t
}

func (t *EditorUI) initKeyBindings(k []keyBinding) {
	for _, kb := range k {
		h := kb.handler
		if err := t.g.SetKeybinding(kb.viewName, kb.key, gocui.ModNone, func(gui *gocui.Gui, view *gocui.View) error { return h(view) }); err != nil {
			log.Panicln(err)
		}
	}
}

func (t *EditorUI) Start() {
	if err := t.g.MainLoop(); err != nil && err != gocui.ErrQuit {
		log.Panicln(err)
	}
	t.g.Close()
}

func (t *EditorUI) Refresh() {
	t.renderCanvas()
	t.renderSettings()
	t.renderStatus()
}

func (t *EditorUI) renderCanvas() {

	t.g.Update(func(g *gocui.Gui) error {
		v, e := g.View("canvas")
		if e != nil {
			return e
		}
		v.Clear()

		crop := false
		maxW, maxH := v.Size()
		if t.grid.Width > maxW || t.grid.Height > maxH {
			crop = true
		}

		var b bytes.Buffer

		for y, row := range t.grid.Cells {
			if y >= maxH {
				break
			}
			if y != 0 {
				b.WriteByte(10)
			}
			if crop && y == (maxH-1) {
				b.WriteString(aurora.Red("The grid is larger than the viewing area").BgBlack().String())
				break
			}
			for x := range row {
				if x >= maxW {
					break
				}
				if row[x] {
					b.WriteString(t.onFiller)
				} else {
					b.WriteString(t.offFiller)
				}
			}
		}
		_, _ = fmt.Fprint(v, b.String())
		return nil
	})
}

func (t *EditorUI) renderSettings() {
	t.g.Update(func(g *gocui.Gui) error {
		if v, e := g.View("settings"); e == nil {
			v.Clear()
			offColor := t.opts.OffColor
			if offColor == "" {
				offColor = "none"
			}
			_, _ = fmt.Fprintln(v, t.renderProp("Dimension", "%v x %v", t.grid.Width, t.grid.Height))
			_, _ = fmt.Fprintln(v, t.renderProp("Cell size", "%v", t.opts.CellSize))
			_, _ = fmt.Fprintln(v, t.renderProp("On color", "%v", t.opts.OnColor))
			_, _ = fmt.Fprintln(v, t.renderProp("Background", "%v", offColor))
			_, _ = fmt.Fprintln(v, t.renderProp("Rounding", "%v", t.renderRounding()))
			_, _ = fmt.Fprintln(v, t.renderProp("Output", "%v", t.outFile))
		}
		return nil
	})
}

func (t *EditorUI) renderStatus() {
	t.g.Update(func(g *gocui.Gui) error {
		if v, e := t.g.View("status"); e == nil {
			v.Clear()
			_, _ = fmt.Fprintln(v, t.renderProp("On cells", "%v", t.grid.CountOn()))
			_, _ = fmt.Fprintln(v, t.renderProp("Canvas", "%v x %v px",
				t.grid.Width*t.opts.CellSize, t.grid.Height*t.opts.CellSize))
			if t.lastExport != "" {
				_, _ = fmt.Fprintln(v, t.renderProp("Export", "%v", t.lastExport))
			}
		}
		return nil
	})
}

func (t *EditorUI) renderRounding() string {
	if t.opts.Rounded {
		return aurora.Colorize("on", aurora.CyanFg).String()
	}
	return aurora.Colorize("off", aurora.BlueFg).String()
}

func (t *EditorUI) renderProp(name string, valueformat string, values ...interface{}) string {
	return fmt.Sprintf(" "+aurora.Colorize(name, aurora.GreenFg).String()+": "+valueformat, values...)
}

func (t *EditorUI) layout(g *gocui.Gui) error {

	maxX, maxY := g.Size()
	leftColumnWidth := 28
	minWindowHeight := 16

	if maxY < minWindowHeight {
		if _, err := t.headerLayout(g, maxY, "Terminal height too small"); err != nil {
			if err != gocui.ErrUnknownView {
				return err
			}
		}
		_ = g.DeleteView("settings")
		_ = g.DeleteView("status")
		_ = g.DeleteView("canvas")
		return nil

	} else {
		if _, err := t.headerLayout(g, 3, "gridsvg interactive editor"); err != nil {
			if err != gocui.ErrUnknownView {
				return err
			}
		}
	}

	if v, err := g.SetView("settings", 0, 3, leftColumnWidth, 3+(maxY-5-3)/2); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Settings"
		v.Frame = true
		t.renderSettings()
	}

	if v, err := g.SetView("status", 0, 3+(maxY-5-3)/2+1, leftColumnWidth, maxY-5); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Status"
		v.Frame = true
		t.renderStatus()
	}

	if v, err := g.SetView("canvas", leftColumnWidth+1, 3, maxX-1, maxY-5); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Canvas"
		v.Frame = true
		t.renderCanvas()
	} else {
		t.renderCanvas()
	}

	if v, err := g.SetView("help", -1, maxY-5, maxX, maxY-3); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Frame = false
		b := bytes.Buffer{}
		b.WriteString("KEYBINDINGS: ")
		for i, k := range t.k {
			if i != 0 {
				b.WriteString(", ")
			}
			b.WriteString(aurora.Green(k.name).String())
			b.WriteString(": ")
			b.WriteString(k.descr)
		}
		_, _ = fmt.Fprintln(v, b.String())
	}

	return nil
}

func (t *EditorUI) headerLayout(g *gocui.Gui, height int, text string) (v *gocui.View, err error) {
	maxX, _ := g.Size()
	if v, err = g.SetView("header", -1, -1, maxX+1, height); err != nil {
		if err == gocui.ErrUnknownView && v != nil {
			v.Frame = false
			v.BgColor = gocui.ColorCyan
			v.FgColor = gocui.ColorBlack
		}
	}
	if v != nil {
		v.Clear()
		if maxX < len(text) {
			return v, nil
		}
		_, _ = fmt.Fprintln(v, strings.Repeat("\n", height/2+1)+strings.Repeat(" ", (maxX-len(text))/2)+text)
	}
	return
}

func (t *EditorUI) cmdQuit(_ *gocui.View) error {
	return gocui.ErrQuit
}

func (t *EditorUI) cmdExport(_ *gocui.View) error {
	doc, err := render.Convert(t.grid.Cells, t.opts)
	if err != nil {
		t.lastExport = aurora.Red(err.Error()).String()
	} else if err = os.WriteFile(t.outFile, []byte(doc), 0644); err != nil {
		t.lastExport = aurora.Red(err.Error()).String()
	} else {
		t.lastExport = aurora.Colorize(fmt.Sprintf("%v bytes written", len(doc)), aurora.CyanFg).String()
	}
	t.renderStatus()
	return nil
}

func (t *EditorUI) cmdToggleRounding(_ *gocui.View) error {
	t.opts.Rounded = !t.opts.Rounded
	t.renderSettings()
	return nil
}

func (t *EditorUI) cmdRandomize(_ *gocui.View) error {
	t.grid.Randomize()
	t.Refresh()
	return nil
}

func (t *EditorUI) cmdClear(_ *gocui.View) error {
	t.grid.Clear()
	t.Refresh()
	return nil
}

func (t *EditorUI) cmdMouseClick(v *gocui.View) error {
	cx, cy := v.Cursor()
	t.grid.Invert(cx, cy)
	t.renderCanvas()
	t.renderStatus()
	return nil
}
