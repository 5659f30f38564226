package main

import (
	"fmt"
	"image"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/hippodribble/fynewidgets"
	"github.com/hippodribble/spyview/spy"
)

var stack *fyne.Container
var win fyne.Window

var infochan chan interface{}

var current *spy.COO
var binarize *widget.Check
var precision *widget.Entry

const figuresize = 600

func main() {
	log.Println("Application start")
	win = simpleGUI()
	win.Resize(fyne.NewSize(700, 700))
	win.ShowAndRun()
}

func simpleGUI() fyne.Window {
	app := app.NewWithID("com.github.hippodribble.spyview")
	w := app.NewWindow("Sparsity Pattern")
	stack = container.NewGridWithColumns(1, widget.NewLabel("Welcome"))

	top := container.NewHBox()

	top.Add(widget.NewButton("Demo", func() {
		current = laplacian2D(24)
		showPattern("5-point Laplacian 24x24 grid")
	}))
	top.Add(widget.NewButton("Open", openFile))
	top.Add(widget.NewButton("Spectrum", showSpectrum))
	binarize = widget.NewCheck("Binarize", func(bool) {
		if current != nil {
			showPattern("re-rendered")
		}
	})
	precision = widget.NewEntry()
	precision.SetPlaceHolder("precision")
	top.Add(binarize)
	top.Add(precision)

	infochan = make(chan interface{})
	bottom := fynewidgets.NewStatusProgress(infochan)
	w.SetContent(container.NewBorder(top, bottom, nil, nil, container.NewVScroll(stack)))
	return w
}

func openFile() {
	dialog.ShowFileOpen(func(rc fyne.URIReadCloser, err error) {
		if err != nil || rc == nil {
			return
		}
		defer rc.Close()
		a, err := spy.ReadMatrixMarket(rc)
		if err != nil {
			log.Println("could not read matrix: " + err.Error())
			infochan <- "could not read matrix: " + err.Error()
			return
		}
		current = a
		showPattern(rc.URI().Name())
	}, win)
}

func options() spy.Options {
	opts := spy.DefaultOptions()
	if binarize.Checked {
		opts.Binarize = true
		var p float64
		if _, err := fmt.Sscanf(precision.Text, "%g", &p); err == nil {
			opts.Precision = p
		}
	}
	return opts
}

func showPattern(name string) {
	img, err := spy.Image(current, options())
	if err != nil {
		log.Println("cannot build pattern: " + err.Error())
		infochan <- "cannot build pattern: " + err.Error()
		return
	}
	fig := spy.Figure(img, figuresize)

	ww, err := fynewidgets.NewPanZoomCanvasFromImage(fig, image.Pt(100, 100), infochan, name)
	if err != nil {
		log.Println("cannot make display canvas")
		return
	}

	h, w := current.Dims()
	infochan <- fmt.Sprintf("%s  %d x %d, %d entries", name, h, w, current.NNZ())
	stack.RemoveAll()
	stack.Add(ww)
	stack.Refresh()
}

func showSpectrum() {
	if current == nil {
		return
	}
	canvas, _, err := spy.Pattern(current, options())
	if err != nil {
		log.Println("cannot build pattern: " + err.Error())
		return
	}
	amp := spy.Spectrum(canvas)
	im, err := amp.AsGray(true)
	if err != nil {
		log.Println("cannot build spectrum image: " + err.Error())
		return
	}
	fig := spy.Figure(im, figuresize)
	w2, err := fynewidgets.NewPanZoomCanvasFromImage(fig, image.Pt(100, 100), infochan, "spectrum")
	if err != nil {
		log.Println("cannot make display canvas")
		return
	}
	stack.Add(w2)
	stack.Refresh()
}

// the classic FEM warm-up matrix: 5-point Laplacian on an n x n grid
func laplacian2D(n int) *spy.COO {
	N := n * n
	a := spy.NewCOO(N, N)
	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			k := j*n + i
			a.Append(k, k, 4)
			if i > 0 {
				a.Append(k, k-1, -1)
			}
			if i < n-1 {
				a.Append(k, k+1, -1)
			}
			if j > 0 {
				a.Append(k, k-n, -1)
			}
			if j < n-1 {
				a.Append(k, k+n, -1)
			}
		}
	}
	return a
}
