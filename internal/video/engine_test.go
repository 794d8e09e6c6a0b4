package video

import "testing"

type fakePresenter struct {
	frames []Palette
	last   *Buffer
	delay  int
}

func (f *fakePresenter) Present(frame *Buffer, palette Palette, delayMS int) error {
	f.last = frame
	f.frames = append(f.frames, palette)
	f.delay = delayMS
	return nil
}

func TestMarkReadyBackSwapsFrontBack(t *testing.T) {
	p := &fakePresenter{}
	e := NewEngine(p)
	e.front, e.back = 1, 2

	if err := e.MarkReady(IDBack, 40); err != nil {
		t.Fatalf("MarkReady() err = %v", err)
	}
	if e.front != 2 || e.back != 1 {
		t.Errorf("front,back = %d,%d, wanted 2,1", e.front, e.back)
	}
}

func TestMarkReadySpecificBuffer(t *testing.T) {
	p := &fakePresenter{}
	e := NewEngine(p)
	e.SelectTarget(2)
	e.Fill(2, 5)

	if err := e.MarkReady(2, 20); err != nil {
		t.Fatalf("MarkReady() err = %v", err)
	}
	if p.last.Get(0, 0) != 5 {
		t.Errorf("presented buffer pixel = %d, wanted 5", p.last.Get(0, 0))
	}
	if p.delay != 20 {
		t.Errorf("delay = %d, wanted 20", p.delay)
	}
}

func TestSelectTargetSentinels(t *testing.T) {
	e := NewEngine(&fakePresenter{})
	e.front, e.back = 2, 3
	if err := e.SelectTarget(IDFront); err != nil {
		t.Fatalf("SelectTarget(front) err = %v", err)
	}
	if e.target != 2 {
		t.Errorf("target = %d, wanted 2 (front)", e.target)
	}
	if err := e.SelectTarget(IDBack); err != nil {
		t.Fatalf("SelectTarget(back) err = %v", err)
	}
	if e.target != 3 {
		t.Errorf("target = %d, wanted 3 (back)", e.target)
	}
}

func TestDrawSpritePolygonRequiresAnimations(t *testing.T) {
	e := NewEngine(&fakePresenter{})
	if err := e.DrawSpritePolygon(0, 0, 0, 64); err != ErrAnimationsNotLoaded {
		t.Errorf("DrawSpritePolygon() err = %v, wanted ErrAnimationsNotLoaded", err)
	}
}

func TestCopyAppliesScrollOnlyWhenRequested(t *testing.T) {
	e := NewEngine(&fakePresenter{})
	e.buffers[0].Set(5, 5, 9)

	if err := e.Copy(0, 1, false, 3); err != nil {
		t.Fatalf("Copy() err = %v", err)
	}
	if got := e.buffers[1].Get(5, 5); got != 9 {
		t.Errorf("Copy() without scroll flag moved pixels; Get(5,5) = %d, wanted 9", got)
	}

	if err := e.Copy(0, 2, true, 3); err != nil {
		t.Fatalf("Copy() err = %v", err)
	}
	if got := e.buffers[2].Get(5, 8); got != 9 {
		t.Errorf("Copy() with scroll flag = %d at (5,8), wanted 9", got)
	}
}
