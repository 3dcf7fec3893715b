package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	"github.com/dshills/textgeom"
	"github.com/dshills/textgeom/blocklayout"
	"github.com/dshills/textgeom/core"
	"github.com/dshills/textgeom/render"
	"github.com/dshills/textgeom/style"
	"github.com/dshills/textgeom/viewport"
)

// quitRequest asks the event loop to exit.
type quitRequest struct{}

// sheetUpdate carries a reloaded style sheet into the event loop.
type sheetUpdate struct {
	sheet style.Sheet
}

// ui owns the tcell screen and drives a Session from input events.
type ui struct {
	screen     tcell.Screen
	session    *textgeom.Session
	blocks     []core.Block
	lineHeight float64
	scroll     float64
	finished   bool
}

func newUI(session *textgeom.Session, blocks []core.Block, lineHeight float64) (*ui, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.SetStyle(tcell.StyleDefault)
	screen.Clear()
	return &ui{
		screen:     screen,
		session:    session,
		blocks:     blocks,
		lineHeight: lineHeight,
	}, nil
}

func (u *ui) shutdown() {
	if u.finished {
		return
	}
	u.finished = true
	u.screen.Fini()
}

// quit posts an interrupt so loop returns from any goroutine safely.
func (u *ui) quit() {
	_ = u.screen.PostEvent(tcell.NewEventInterrupt(quitRequest{}))
}

func (u *ui) postSheet(s style.Sheet) {
	_ = u.screen.PostEvent(tcell.NewEventInterrupt(sheetUpdate{sheet: s}))
}

// loop processes events until the user quits.
func (u *ui) loop() error {
	u.draw()
	for {
		switch ev := u.screen.PollEvent().(type) {
		case *tcell.EventResize:
			u.screen.Sync()
			u.clampScroll()
			u.draw()
		case *tcell.EventKey:
			if u.handleKey(ev) {
				return nil
			}
			u.draw()
		case *tcell.EventInterrupt:
			switch data := ev.Data().(type) {
			case quitRequest:
				return nil
			case sheetUpdate:
				u.session.Reconfigure(blocklayout.ConfigFromSheet(data.sheet, u.lineHeight))
				u.clampScroll()
				u.draw()
			}
		case nil:
			return nil
		}
	}
}

func (u *ui) handleKey(ev *tcell.EventKey) (quit bool) {
	page := u.viewHeight()
	switch {
	case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q':
		return true
	case ev.Key() == tcell.KeyUp || ev.Rune() == 'k':
		u.scroll--
	case ev.Key() == tcell.KeyDown || ev.Rune() == 'j':
		u.scroll++
	case ev.Key() == tcell.KeyPgUp:
		u.scroll -= page
	case ev.Key() == tcell.KeyPgDn || ev.Rune() == ' ':
		u.scroll += page
	case ev.Key() == tcell.KeyHome || ev.Rune() == 'g':
		u.scroll = 0
	case ev.Key() == tcell.KeyEnd || ev.Rune() == 'G':
		u.scroll = u.session.TotalHeight() - page
	}
	u.clampScroll()
	return false
}

// viewHeight is the drawable height in rows, reserving the status line.
func (u *ui) viewHeight() float64 {
	_, h := u.screen.Size()
	if h <= 1 {
		return 0
	}
	return float64(h - 1)
}

func (u *ui) clampScroll() {
	limit := u.session.TotalHeight() - u.viewHeight()
	if limit < 0 {
		limit = 0
	}
	if u.scroll > limit {
		u.scroll = limit
	}
	if u.scroll < 0 {
		u.scroll = 0
	}
}

// draw renders one frame: the visible blocks plus a status line.
func (u *ui) draw() {
	u.screen.Clear()

	vp := core.Viewport{OffsetY: u.scroll, Height: u.viewHeight()}
	infos, m := u.session.Frame(vp)

	backend := &rowBackend{
		screen: u.screen,
		blocks: u.blocks,
		top:    m.TopSpacer - u.scroll,
		rows:   int(u.viewHeight()),
	}
	render.Draw(backend, infos)

	u.drawStatus(m, infos)
	u.screen.Show()
}

func (u *ui) drawStatus(m viewport.Metrics, infos []render.BlockInfo) {
	w, h := u.screen.Size()
	if h == 0 {
		return
	}
	first, last := 0, 0
	if len(infos) > 0 {
		first = infos[0].Block
		last = infos[len(infos)-1].Block
	}
	text := fmt.Sprintf(" scroll %.0f/%.0f  blocks %d-%d of %d  spacers %.0f/%.0f  q quits",
		u.scroll, m.Total, first, last, u.session.BlockCount(), m.TopSpacer, m.BottomSpacer)
	bar := tcell.StyleDefault.Reverse(true)
	col := 0
	for _, r := range text {
		if col >= w {
			break
		}
		u.screen.SetContent(col, h-1, r, nil, bar)
		col += max(uniseg.StringWidth(string(r)), 1)
	}
	for ; col < w; col++ {
		u.screen.SetContent(col, h-1, ' ', nil, bar)
	}
}

// rowBackend draws BlockInfo descriptors onto a tcell screen. Y values
// arrive relative to the first rendered block; top converts them to
// screen rows.
type rowBackend struct {
	screen tcell.Screen
	blocks []core.Block
	top    float64
	rows   int
}

var _ render.Backend = (*rowBackend)(nil)

func (r *rowBackend) DrawBlock(info render.BlockInfo) {
	if info.Block < 0 || info.Block >= len(r.blocks) {
		return
	}
	blk := r.blocks[info.Block]

	step := 1.0
	if info.LineCount > 0 {
		step = info.Height / float64(info.LineCount)
	}
	st := kindStyle(blk.Kind)
	for l, text := range blk.Lines() {
		row := int(r.top + info.Y + float64(l)*step)
		if row < 0 || row >= r.rows {
			continue
		}
		drawText(r.screen, 0, row, st, text)
	}
}

func drawText(s tcell.Screen, x, y int, st tcell.Style, text string) {
	col := x
	for _, r := range text {
		s.SetContent(col, y, r, nil, st)
		col += max(uniseg.StringWidth(string(r)), 1)
	}
}

func kindStyle(kind core.BlockKind) tcell.Style {
	switch kind {
	case core.KindHeading1:
		return tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	case core.KindHeading2:
		return tcell.StyleDefault.Bold(true)
	case core.KindHeading3:
		return tcell.StyleDefault.Underline(true)
	case core.KindCode:
		return tcell.StyleDefault.Foreground(tcell.ColorGreen)
	case core.KindQuote:
		return tcell.StyleDefault.Foreground(tcell.ColorTeal).Italic(true)
	case core.KindList:
		return tcell.StyleDefault.Foreground(tcell.ColorSilver)
	default:
		return tcell.StyleDefault
	}
}
