// Command termview-demo shows the widget set and the constraint layout:
// a bordered form with labels, a checkbox and buttons, plus a modal
// confirmation dialog. Tab cycles focus, Alt accelerators press buttons,
// the Quit button exits.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/lixenwraith/termview/layout"
	"github.com/lixenwraith/termview/terminal"
	"github.com/lixenwraith/termview/theme"
	"github.com/lixenwraith/termview/view"
	"github.com/lixenwraith/termview/widget"
)

func main() {
	themePath := flag.String("theme", "", "TOML theme file")
	flag.Parse()

	if *themePath != "" {
		schemes, err := theme.Load(*themePath)
		if err != nil {
			log.Fatalf("theme: %v", err)
		}
		if cs, ok := schemes["default"]; ok {
			theme.Default = cs
		}
		if cs, ok := schemes["dialog"]; ok {
			theme.Dialog = cs
		}
	}

	term, err := terminal.New()
	if err != nil {
		log.Fatalf("terminal: %v", err)
	}
	if err := term.Init(); err != nil {
		log.Fatalf("terminal: %v", err)
	}
	defer term.Fini()
	term.SetMouseMode(terminal.MouseModeClick | terminal.MouseModeDrag)

	app := view.NewApp(term)
	if err := app.Run(buildMain(app, term)); err != nil {
		term.Fini()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func buildMain(app *view.App, term terminal.Terminal) *view.Toplevel {
	tl := view.NewToplevel()

	box := widget.NewBox("termview demo")
	box.SetX(layout.At(0))
	box.SetY(layout.At(0))
	box.SetWidth(layout.Fill(0))
	box.SetHeight(layout.Fill(1))
	tl.AddSubview(box)

	title := widget.NewLabel("Tab cycles focus, Alt+letter presses buttons")
	title.SetX(layout.At(2))
	title.SetY(layout.At(1))
	title.SetWidth(layout.Fill(4))
	title.SetHeight(layout.Abs(1))
	box.AddSubview(title)

	verbose := widget.NewCheckbox("verbose output")
	verbose.SetX(layout.At(2))
	verbose.SetY(layout.Bottom(title).Add(layout.At(1)))
	verbose.SetWidth(layout.Abs(20))
	verbose.SetHeight(layout.Abs(1))
	box.AddSubview(verbose)

	status := widget.NewLabel("")
	status.SetX(layout.At(0))
	status.SetY(layout.AnchorEnd(1))
	status.SetWidth(layout.Fill(0))
	status.SetHeight(layout.Abs(1))
	tl.AddSubview(status)

	verbose.OnChange = func(checked bool) {
		status.SetText(fmt.Sprintf("verbose = %v", checked))
	}

	bell := widget.NewButton("&Bell", func() {
		term.Bell()
		status.SetText("ding")
	})
	bell.SetX(layout.At(2))
	bell.SetY(layout.Bottom(verbose).Add(layout.At(1)))
	bell.SetWidth(layout.Abs(10))
	bell.SetHeight(layout.Abs(1))
	box.AddSubview(bell)

	quit := widget.NewButton("&Quit", func() {
		if confirm(app, "Really quit?") {
			app.RequestStop()
		}
	})
	quit.SetX(layout.Right(bell).Add(layout.At(2)))
	quit.SetY(layout.Top(bell))
	quit.SetWidth(layout.Abs(10))
	quit.SetHeight(layout.Abs(1))
	box.AddSubview(quit)

	return tl
}

// confirm runs a modal yes/no dialog and reports the choice
func confirm(app *view.App, question string) bool {
	dlg := view.NewToplevel()
	dlg.SetColorScheme(theme.Dialog)
	dlg.SetX(layout.Center())
	dlg.SetY(layout.Center())
	dlg.SetWidth(layout.Abs(30))
	dlg.SetHeight(layout.Abs(6))

	box := widget.NewBox("")
	box.SetX(layout.At(0)) // Zero constraints elsewhere, so the box fills the dialog
	dlg.AddSubview(box)

	msg := widget.NewLabel(question)
	msg.SetAlign(widget.AlignCenter)
	msg.SetX(layout.At(1))
	msg.SetY(layout.At(1))
	msg.SetWidth(layout.Fill(2))
	msg.SetHeight(layout.Abs(1))
	box.AddSubview(msg)

	answer := false
	yes := widget.NewButton("&Yes", func() {
		answer = true
		app.RequestStop()
	})
	yes.SetDefault(true)
	yes.SetX(layout.At(3))
	yes.SetY(layout.At(3))
	yes.SetWidth(layout.Abs(10))
	yes.SetHeight(layout.Abs(1))
	box.AddSubview(yes)

	no := widget.NewButton("&No", func() { app.RequestStop() })
	no.SetX(layout.Right(yes).Add(layout.At(2)))
	no.SetY(layout.At(3))
	no.SetWidth(layout.Abs(10))
	no.SetHeight(layout.Abs(1))
	box.AddSubview(no)

	if err := app.Run(dlg); err != nil {
		log.Printf("dialog: %v", err)
	}
	return answer
}
