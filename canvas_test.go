package tsgl

import (
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

func TestNewCanvas_Defaults(t *testing.T) {
	c := NewCanvas(40, 30, WithTitle("t"), WithBackground(Gray))
	if c.Width() != 40 || c.Height() != 30 {
		t.Errorf("size = %dx%d, want 40x30", c.Width(), c.Height())
	}
	if c.Title() != "t" || c.Background() != Gray {
		t.Errorf("Title() = %q, Background() = %v", c.Title(), c.Background())
	}
	if c.IsOpen() {
		t.Error("IsOpen() = true before Start")
	}
	if got := c.Pixel(5, 5); got != c.Pixel(39, 29) || got.A != 1 {
		t.Errorf("Pixel(5, 5) = %v, want the background", got)
	}
}

func TestCanvas_Lifecycle(t *testing.T) {
	c := NewCanvas(10, 10, WithFrame(time.Millisecond))
	c.Start()
	c.Start()
	if !c.IsOpen() {
		t.Fatal("IsOpen() = false after Start")
	}
	for range 3 {
		c.Sleep()
	}
	if c.Reps() < 3 {
		t.Errorf("Reps() = %d after three sleeps, want at least 3", c.Reps())
	}
	if c.Time() <= 0 {
		t.Errorf("Time() = %v, want positive", c.Time())
	}

	c.Close()
	c.Close()
	if c.IsOpen() {
		t.Error("IsOpen() = true after Close")
	}
	c.Sleep()
	c.SleepFor(time.Hour)
	c.Wait()
	select {
	case <-c.Done():
	default:
		t.Error("Done() not closed after Close")
	}
}

func TestCanvas_PostHandleIO(t *testing.T) {
	c := NewCanvas(10, 10, WithEventQueue(4))
	var order []int
	for i := range 3 {
		if err := c.Post(func() { order = append(order, i) }); err != nil {
			t.Fatal(err)
		}
	}
	if n := c.HandleIO(); n != 3 {
		t.Errorf("HandleIO() = %d, want 3", n)
	}
	if len(order) != 3 || order[0] != 0 || order[2] != 2 {
		t.Errorf("handlers ran in order %v", order)
	}
	if n := c.HandleIO(); n != 0 {
		t.Errorf("HandleIO() on an empty queue = %d", n)
	}

	c.Close()
	if err := c.Post(func() {}); !errors.Is(err, ErrCanvasClosed) {
		t.Errorf("Post after Close = %v, want ErrCanvasClosed", err)
	}
}

func TestCanvas_PostBlocksUntilClose(t *testing.T) {
	c := NewCanvas(10, 10, WithEventQueue(1))
	if err := c.Post(func() {}); err != nil {
		t.Fatal(err)
	}
	done := make(chan error, 1)
	go func() { done <- c.Post(func() {}) }()
	time.Sleep(10 * time.Millisecond)
	c.Close()
	if err := <-done; !errors.Is(err, ErrCanvasClosed) {
		t.Errorf("blocked Post = %v, want ErrCanvasClosed", err)
	}
}

func TestCanvas_ConcurrentDrawPoint(t *testing.T) {
	c := NewCanvas(64, 64)
	var wg sync.WaitGroup
	for w := range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for y := w; y < 64; y += 4 {
				for x := range 64 {
					c.DrawPoint(x, y, ColorInt(x*4, y*4, 0, 255))
				}
			}
		}()
	}
	wg.Wait()
	if got, want := c.Pixel(10, 20), ColorInt(40, 80, 0, 255); got != want {
		t.Errorf("Pixel(10, 20) = %v, want %v", got, want)
	}

	c.Reset()
	if got := c.Pixel(10, 20); got != White {
		t.Errorf("Pixel after Reset = %v, want white", got)
	}
}

func TestCanvas_AddRemove(t *testing.T) {
	c := NewCanvas(10, 10)
	r := mustRectangle(t, 2, 2, Red)
	c.Add(r)
	c.Add(r)
	if c.Drawables() != 1 {
		t.Errorf("Drawables() = %d after adding twice, want 1", c.Drawables())
	}
	c.Remove(r)
	c.Remove(r)
	if c.Drawables() != 0 {
		t.Errorf("Drawables() = %d after Remove, want 0", c.Drawables())
	}
}

func TestCanvas_Render(t *testing.T) {
	c := NewCanvas(100, 100)
	s, err := NewSphere(0, 0, 0, 30, 0, 0, 0, Red)
	if err != nil {
		t.Fatal(err)
	}
	c.Add(s)
	c.Render()

	if got := c.Pixel(50, 50); got.R < 0.4 || got.G != 0 || got.B != 0 {
		t.Errorf("center pixel = %v, want a red shade", got)
	}
	if got := c.Pixel(2, 2); got != White {
		t.Errorf("corner pixel = %v, want background", got)
	}

	// The sphere spans x in [20, 80] on screen.
	if got := c.Pixel(15, 50); got != White {
		t.Errorf("pixel left of the sphere = %v, want background", got)
	}
	s.SetCenter(-30, 0, 0)
	c.Render()
	if got := c.Pixel(15, 50); got == White {
		t.Error("moved sphere not drawn at its new center")
	}
}

func TestCanvas_RenderLayers(t *testing.T) {
	c := NewCanvas(40, 40)
	top := mustRectangle(t, 10, 10, Blue)
	bottom := mustRectangle(t, 30, 30, Green)
	top.SetLayer(2)
	bottom.SetLayer(1)
	c.Add(top)
	c.Add(bottom)
	c.Render()
	if got := c.Pixel(20, 20); got != Blue {
		t.Errorf("center = %v, want the higher layer", got)
	}
	if got := c.Pixel(8, 8); got != Green {
		t.Errorf("Pixel(8, 8) = %v, want the lower layer", got)
	}
}

func TestCanvas_RenderKeepsAddOrderWithinLayer(t *testing.T) {
	c := NewCanvas(40, 40)
	first := mustRectangle(t, 30, 30, Red)
	top := mustRectangle(t, 10, 10, Blue)
	second := mustRectangle(t, 30, 30, Green)
	first.SetLayer(1)
	top.SetLayer(2)
	second.SetLayer(1)
	c.Add(first)
	c.Add(top)
	c.Add(second)
	c.Render()
	if got := c.Pixel(20, 20); got != Blue {
		t.Errorf("center = %v, want the higher layer", got)
	}
	if got := c.Pixel(8, 8); got != Red {
		t.Errorf("Pixel(8, 8) = %v, want the first drawable added to layer 1", got)
	}
}

func TestCanvas_RenderOutline(t *testing.T) {
	c := NewCanvas(40, 40)
	r := mustRectangle(t, 20, 20, White)
	r.SetOutlined(true)
	c.Add(r)
	c.Render()
	if got := c.Pixel(20, 10); got != Black {
		t.Errorf("top edge = %v, want the black outline", got)
	}
	if got := c.Pixel(20, 20); got != White {
		t.Errorf("center = %v, want the fill", got)
	}
}

func TestCanvas_RenderBlendsAlpha(t *testing.T) {
	c := NewCanvas(20, 20, WithBackground(White))
	c.Add(mustRectangle(t, 10, 10, RGBA(0, 0, 0, 0.5)))
	c.Render()
	got := c.Pixel(10, 10)
	if got.R < 0.45 || got.R > 0.55 {
		t.Errorf("blended pixel = %v, want half gray", got)
	}
}

func TestCanvas_ImageOutput(t *testing.T) {
	c := NewCanvas(32, 16)
	c.DrawPoint(3, 4, Red)
	img := c.Image()
	if got := FromColor(img.At(3, 4)); got != Red {
		t.Errorf("Image().At(3, 4) = %v, want red", got)
	}
	thumb := c.Thumbnail(8, 4)
	if b := thumb.Bounds(); b.Dx() != 8 || b.Dy() != 4 {
		t.Errorf("Thumbnail bounds = %v, want 8x4", b)
	}

	path := filepath.Join(t.TempDir(), "out.png")
	if err := c.SavePNG(path); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	decoded, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if b := decoded.Bounds(); b.Dx() != 32 || b.Dy() != 16 {
		t.Errorf("decoded bounds = %v", b)
	}
}

func TestCanvas_DrawText(t *testing.T) {
	c := NewCanvas(120, 40)
	if err := c.DrawText(5, 30, "Hello", 20, Black); err != nil {
		t.Fatal(err)
	}
	dark := 0
	for y := range 40 {
		for x := range 120 {
			if c.Pixel(x, y).R < 0.5 {
				dark++
			}
		}
	}
	if dark == 0 {
		t.Error("DrawText drew nothing")
	}
	w, err := MeasureText("Hello", 20)
	if err != nil || w <= 0 || w > 115 {
		t.Errorf("MeasureText() = %d, %v", w, err)
	}
	if err := c.DrawText(0, 0, "", 12, Black); err != nil {
		t.Errorf("DrawText(\"\") = %v", err)
	}
}
