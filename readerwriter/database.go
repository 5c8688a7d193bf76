package readerwriter

import (
	"fmt"

	"github.com/gogpu/tsgl"
)

// Database is the shared data: a column of rectangles whose colors are
// read by readers and replaced by writers. Callers serialize access
// through a Monitor; each rectangle also guards its own buffer so the
// canvas can render mid-write.
type Database struct {
	items []*tsgl.Rectangle
}

// NewDatabase creates n rectangles of the given size stacked vertically
// about (x, 0), all colored c.
func NewDatabase(n int, x, width, height float32, c tsgl.ColorFloat) (*Database, error) {
	if n < 1 {
		return nil, fmt.Errorf("readerwriter: database needs at least one item, got %d", n)
	}
	db := &Database{items: make([]*tsgl.Rectangle, n)}
	top := height * float32(n-1) / 2
	for i := range db.items {
		r, err := tsgl.NewRectangle(x, top-float32(i)*height, 0, width, height*0.9, 0, 0, 0, c)
		if err != nil {
			return nil, fmt.Errorf("readerwriter: item %d: %w", i, err)
		}
		db.items[i] = r
	}
	return db, nil
}

// Len returns the number of items.
func (db *Database) Len() int { return len(db.items) }

// Item returns item i.
func (db *Database) Item(i int) *tsgl.Rectangle { return db.items[i] }

// Read returns the fill color of item i.
func (db *Database) Read(i int) tsgl.ColorFloat {
	var buf [tsgl.RectangleCorners]tsgl.ColorFloat
	return db.items[i].FillColors(buf[:0])[0]
}

// Write recolors item i.
func (db *Database) Write(i int, c tsgl.ColorFloat) {
	db.items[i].SetColor(c)
}

// AddTo queues every item on the canvas.
func (db *Database) AddTo(can *tsgl.Canvas) {
	for _, r := range db.items {
		r.SetOutlined(true)
		can.Add(r)
	}
}
