package nerf

import (
	"image"
	"math"
	"testing"
)

func TestRow(t *testing.T) {
	a := newProbe(Fixed(50), Fixed(10))
	b := newProbe(Flex(1), Min(20, 1))
	c := newProbe(Fixed(50), None)
	row := NewRow[string](a, b, c)

	w, h := row.Measure()
	if w != Min(100, 1) || h != Min(20, 1) {
		t.Errorf("measure %v %v, want Min(100, 1) Min(20, 1)", w, h)
	}

	row.Draw(newRecorder(200, 60), image.Rect(0, 0, 200, 60))
	want := []image.Rectangle{
		image.Rect(0, 0, 50, 60),
		image.Rect(50, 0, 150, 60),
		image.Rect(150, 0, 200, 60),
	}
	for i, p := range []*probe{a, b, c} {
		if r := p.lastDrawn(); r != want[i] {
			t.Errorf("kid %d drawn in %v, want %v", i, r, want[i])
		}
	}
}

func TestRowHugeKids(t *testing.T) {
	a := newProbe(Fixed(math.MaxInt), Fixed(10))
	b := newProbe(Fixed(math.MaxInt), Fixed(10))
	row := NewRow[string](a, b)

	bounds := image.Rect(0, 0, 100, 10)
	row.Draw(newRecorder(100, 10), bounds)
	want := []image.Rectangle{
		image.Rect(0, 0, 50, 10),
		image.Rect(50, 0, 100, 10),
	}
	for i, p := range []*probe{a, b} {
		r := p.lastDrawn()
		if r != want[i] {
			t.Errorf("kid %d drawn in %v, want %v", i, r, want[i])
		}
		if !r.In(bounds) {
			t.Errorf("kid %d drawn in %v, outside %v", i, r, bounds)
		}
	}
}

func TestColumn(t *testing.T) {
	a := newProbe(Fixed(10), Fixed(30))
	b := newProbe(Max(40, 0), Flex(1))
	col := NewColumn[string](a, b)

	w, h := col.Measure()
	if w != MinMax(10, 40, 0) || h != Min(30, 1) {
		t.Errorf("measure %v %v", w, h)
	}

	col.Draw(newRecorder(100, 100), image.Rect(10, 20, 110, 120))
	if r := a.lastDrawn(); r != image.Rect(10, 20, 110, 50) {
		t.Errorf("first kid in %v", r)
	}
	if r := b.lastDrawn(); r != image.Rect(10, 50, 110, 120) {
		t.Errorf("second kid in %v", r)
	}
}

func TestLinearSkipsEmpty(t *testing.T) {
	a := newProbe(Fixed(50), Fixed(10))
	b := newProbe(Flex(1), Fixed(10))
	row := NewRow[string](a, b)
	r := image.Rect(0, 0, 50, 10)

	row.Draw(newRecorder(50, 10), r)
	row.HandleEvent(CursorMoved[string](image.Pt(1, 1)), r)
	if len(b.drawn) != 0 || len(b.events) != 0 {
		t.Errorf("kid without space was drawn %d times, got %d events", len(b.drawn), len(b.events))
	}
	if len(a.drawn) != 1 || len(a.events) != 1 {
		t.Errorf("kid with space was drawn %d times, got %d events", len(a.drawn), len(a.events))
	}
}

func TestStack(t *testing.T) {
	a := newProbe(Fixed(10), Fixed(30))
	b := newProbe(Flex(1), Fixed(20))
	a.response = Response{Redraw: true}
	b.response = Response{AnimationFrame: true}
	st := NewStack[string](a, b)

	w, h := st.Measure()
	if w != Min(10, 1) || h != Fixed(30) {
		t.Errorf("measure %v %v", w, h)
	}

	r := image.Rect(5, 5, 50, 50)
	st.Draw(newRecorder(50, 50), r)
	if a.lastDrawn() != r || b.lastDrawn() != r {
		t.Errorf("kids drawn in %v and %v, want %v", a.lastDrawn(), b.lastDrawn(), r)
	}
	resp := st.HandleEvent(CursorLeft[string](), r)
	if resp != (Response{Redraw: true, AnimationFrame: true}) {
		t.Errorf("response %+v, want merged", resp)
	}
}

func TestPadder(t *testing.T) {
	kid := newProbe(Fixed(100), Fixed(100))
	p := NewPadder[string](SpaceAll(20), kid)

	w, h := p.Measure()
	if w != Fixed(140) || h != Fixed(140) {
		t.Errorf("measure %v %v, want Fixed(140) Fixed(140)", w, h)
	}

	p.Draw(newRecorder(140, 140), image.Rect(0, 0, 140, 140))
	if r := kid.lastDrawn(); r != image.Rect(20, 20, 120, 120) {
		t.Errorf("kid drawn in %v", r)
	}

	// Padding eats all the space: the kid is skipped.
	kid.drawn = nil
	p.Draw(newRecorder(30, 30), image.Rect(0, 0, 30, 30))
	p.HandleEvent(CursorMoved[string](image.Pt(15, 15)), image.Rect(0, 0, 30, 30))
	if len(kid.drawn) != 0 || len(kid.events) != 0 {
		t.Errorf("kid without space was drawn or got events")
	}

	if !mustPanic(func() { NewPadder[string](Space{Top: -1}, kid) }) {
		t.Errorf("negative padding accepted")
	}
}

func TestSpace(t *testing.T) {
	s := SpaceXY(4, 2)
	if s != (Space{2, 4, 2, 4}) || s.Dx() != 8 || s.Dy() != 4 {
		t.Errorf("space %+v dx %d dy %d", s, s.Dx(), s.Dy())
	}
	if r := SpaceAll(10).Inset(image.Rect(0, 0, 15, 40)); !r.Empty() {
		t.Errorf("inset %v not empty", r)
	}
}

func TestSizedBox(t *testing.T) {
	kid := newProbe(Flex(1), Min(5, 1))

	sb := NewSizedBox[string](100, 50, kid)
	if w, h := sb.Measure(); w != Fixed(100) || h != Fixed(50) {
		t.Errorf("measure %v %v", w, h)
	}
	sb.Draw(newRecorder(200, 200), image.Rect(10, 10, 210, 210))
	if r := kid.lastDrawn(); r != image.Rect(10, 10, 110, 60) {
		t.Errorf("kid in %v", r)
	}
	// Short on space: clamped, never larger than available.
	sb.Draw(newRecorder(80, 30), image.Rect(0, 0, 80, 30))
	if r := kid.lastDrawn(); r != image.Rect(0, 0, 80, 30) {
		t.Errorf("clamped kid in %v", r)
	}

	sw := SizedWidth[string](30, kid)
	if w, h := sw.Measure(); w != Fixed(30) || h != Min(5, 1) {
		t.Errorf("width only: %v %v", w, h)
	}
	sh := SizedHeight[string](30, kid)
	if w, h := sh.Measure(); w != Flex(1) || h != Fixed(30) {
		t.Errorf("height only: %v %v", w, h)
	}
	sw.Draw(newRecorder(100, 100), image.Rect(0, 0, 100, 100))
	if r := kid.lastDrawn(); r != image.Rect(0, 0, 30, 100) {
		t.Errorf("width only kid in %v", r)
	}

	for _, fn := range []func(){
		func() { NewSizedBox[string](0, 10, kid) },
		func() { NewSizedBox[string](10, -1, kid) },
		func() { SizedWidth[string](0, kid) },
		func() { SizedHeight[string](0, kid) },
	} {
		if !mustPanic(fn) {
			t.Errorf("non-positive size accepted")
		}
	}
}

func TestAlign(t *testing.T) {
	r := image.Rect(0, 0, 200, 200)
	tests := []struct {
		align         Alignment
		width, height SizeRequirement
		want          image.Rectangle
	}{
		{AlignCenter, Fixed(50), Fixed(50), image.Rect(75, 75, 125, 125)},
		{AlignTopLeft, Fixed(50), Fixed(50), image.Rect(0, 0, 50, 50)},
		{AlignBottomRight, Fixed(50), Fixed(50), image.Rect(150, 150, 200, 200)},
		{AlignTop, Fixed(50), Fixed(20), image.Rect(75, 0, 125, 20)},
		{AlignRight, Max(100, 1), Flex(1), image.Rect(100, 0, 200, 200)},
		{AlignCenter, Fixed(300), Fixed(50), image.Rect(0, 75, 200, 125)},
		{AlignCenter, Min(10, 1), MinMax(10, 100, 0), image.Rect(0, 50, 200, 150)},
	}
	for _, tt := range tests {
		kid := newProbe(tt.width, tt.height)
		NewAlign[string](tt.align, kid).Draw(newRecorder(200, 200), r)
		if got := kid.lastDrawn(); got != tt.want {
			t.Errorf("%+v %v %v: kid in %v, want %v", tt.align, tt.width, tt.height, got, tt.want)
		}
	}

	if !mustPanic(func() { NewAlign[string](Alignment{1.5, 0}, newProbe(None, None)) }) {
		t.Errorf("alignment outside [0, 1] accepted")
	}
}

func TestCenter(t *testing.T) {
	kid := newProbe(Fixed(50), Fixed(50))
	c := NewCenter[string](kid)
	if w, h := c.Measure(); w != Fixed(50) || h != Fixed(50) {
		t.Errorf("measure %v %v", w, h)
	}
	c.Draw(newRecorder(200, 200), image.Rect(0, 0, 200, 200))
	if r := kid.lastDrawn(); r != image.Rect(75, 75, 125, 125) {
		t.Errorf("kid in %v, want (75,75)-(125,125)", r)
	}

	// Events get the same rect as the draw.
	c.HandleEvent(CursorMoved[string](image.Pt(100, 100)), image.Rect(0, 0, 200, 200))
	if len(kid.events) != 1 || kid.events[0] != image.Rect(75, 75, 125, 125) {
		t.Errorf("event rects %v", kid.events)
	}
}

func TestScaffold(t *testing.T) {
	r := image.Rect(0, 0, 200, 100)
	tests := []struct {
		side          Side
		bar           *probe
		width, height SizeRequirement
		barRect       image.Rectangle
		bodyRect      image.Rectangle
	}{
		{SideTop, newProbe(Flex(1), Fixed(20)), Flex(1), Min(20, 1), image.Rect(0, 0, 200, 20), image.Rect(0, 20, 200, 100)},
		{SideBottom, newProbe(Flex(1), Fixed(20)), Flex(1), Min(20, 1), image.Rect(0, 80, 200, 100), image.Rect(0, 0, 200, 80)},
		{SideLeft, newProbe(Fixed(30), Flex(1)), Min(30, 1), Flex(1), image.Rect(0, 0, 30, 100), image.Rect(30, 0, 200, 100)},
		{SideRight, newProbe(Fixed(30), Flex(1)), Min(30, 1), Flex(1), image.Rect(170, 0, 200, 100), image.Rect(0, 0, 170, 100)},
	}
	for _, tt := range tests {
		body := newProbe(Flex(1), Flex(1))
		s := NewScaffold[string](tt.side, tt.bar, body)
		if w, h := s.Measure(); w != tt.width || h != tt.height {
			t.Errorf("side %d: measure %v %v, want %v %v", tt.side, w, h, tt.width, tt.height)
		}
		s.Draw(newRecorder(200, 100), r)
		if got := tt.bar.lastDrawn(); got != tt.barRect {
			t.Errorf("side %d: bar in %v, want %v", tt.side, got, tt.barRect)
		}
		if got := body.lastDrawn(); got != tt.bodyRect {
			t.Errorf("side %d: body in %v, want %v", tt.side, got, tt.bodyRect)
		}
		if got := tt.bar.lastDrawn().Intersect(body.lastDrawn()); !got.Empty() {
			t.Errorf("side %d: bar and body overlap in %v", tt.side, got)
		}
	}
}

func TestScaffoldEvents(t *testing.T) {
	bar := newProbe(Flex(1), Fixed(20))
	body := newProbe(Flex(1), Flex(1))
	bar.response = Response{Redraw: true}
	body.response = Response{Clicked: true}
	s := NewScaffold[string](SideTop, bar, body)
	resp := s.HandleEvent(MouseDown[string](ButtonPrimary), image.Rect(0, 0, 100, 100))
	if resp != (Response{Redraw: true, Clicked: true}) {
		t.Errorf("response %+v", resp)
	}
	if len(bar.events) != 1 || len(body.events) != 1 {
		t.Errorf("bar got %d events, body %d", len(bar.events), len(body.events))
	}
}

func TestEmpty(t *testing.T) {
	shrink := NewEmpty[string](Shrink)
	if w, h := shrink.Measure(); w != None || h != None {
		t.Errorf("shrink measure %v %v", w, h)
	}
	expand := NewEmpty[string](Expand)
	if w, h := expand.Measure(); w != Flex(1) || h != Flex(1) {
		t.Errorf("expand measure %v %v", w, h)
	}
	c := newRecorder(10, 10)
	expand.Draw(c, c.Bounds())
	if len(c.ops) != 0 {
		t.Errorf("empty drew %v", c.ops)
	}
	if resp := expand.HandleEvent(MouseDown[string](ButtonPrimary), c.Bounds()); !resp.IsZero() {
		t.Errorf("empty responded %+v", resp)
	}

	// Spacers between fixed kids.
	a, b := newProbe(Fixed(10), None), newProbe(Fixed(10), None)
	NewRow[string](a, expand, b).Draw(c, image.Rect(0, 0, 100, 10))
	if r := b.lastDrawn(); r != image.Rect(90, 0, 100, 10) {
		t.Errorf("last kid in %v", r)
	}
}

func TestExpanded(t *testing.T) {
	kid := newProbe(Fixed(10), Fixed(10))
	e := NewExpanded[string](2, kid)
	if w, h := e.Measure(); w != Flex(2) || h != Flex(2) {
		t.Errorf("measure %v %v", w, h)
	}
	if !mustPanic(func() { NewExpanded[string](0, kid) }) {
		t.Errorf("zero flex accepted")
	}
}

func TestBackground(t *testing.T) {
	kid := newProbe(Fixed(10), Fixed(10))
	bg := NewBackground[string](rgb(0xff0000), kid)
	c := newRecorder(10, 10)
	bg.Draw(c, c.Bounds())
	if len(c.ops) != 1 || c.ops[0] != "fill (0,0)-(10,10) {255 0 0 255}" {
		t.Errorf("ops %v", c.ops)
	}
	if kid.lastDrawn() != c.Bounds() {
		t.Errorf("kid not drawn over background")
	}

	bg.SetColor(nil)
	c.ops = nil
	bg.Draw(c, c.Bounds())
	if len(c.ops) != 0 {
		t.Errorf("nil color filled: %v", c.ops)
	}
}

func TestText(t *testing.T) {
	txt := NewText[string]("hello", TextStyle{})
	if w, h := txt.Measure(); w != Flex(1) || h != Flex(1) {
		t.Errorf("measure %v %v", w, h)
	}
	c := newRecorder(50, 10)
	txt.Draw(c, c.Bounds())
	txt.SetText("bye")
	txt.Draw(c, c.Bounds())
	want := []string{`text "hello" (0,0)-(50,10)`, `text "bye" (0,0)-(50,10)`}
	if len(c.ops) != 2 || c.ops[0] != want[0] || c.ops[1] != want[1] {
		t.Errorf("ops %q, want %q", c.ops, want)
	}
	if txt.Text() != "bye" {
		t.Errorf("text %q", txt.Text())
	}
}

// A kid changing size during an event moves its siblings for the next event.
func TestRectsRecomputed(t *testing.T) {
	grower := newProbe(Fixed(10), Fixed(10))
	other := newProbe(Fixed(10), Fixed(10))
	row := NewRow[string](grower, other, NewEmpty[string](Expand))
	r := image.Rect(0, 0, 100, 10)

	row.HandleEvent(CursorLeft[string](), r)
	grower.width = Fixed(40)
	row.HandleEvent(CursorLeft[string](), r)
	if len(other.events) != 2 || other.events[0] != image.Rect(10, 0, 20, 10) || other.events[1] != image.Rect(40, 0, 50, 10) {
		t.Errorf("sibling rects %v", other.events)
	}
}
