// Package tsgl provides thread-safe shapes and a headless canvas for
// teaching parallel graphics in Go.
//
// # Overview
//
// Shapes (Sphere, Ellipsoid, Rectangle) own their vertex buffers and a
// per-shape lock, so any number of goroutines may resize, move and
// recolor them while a render pass reads them. A Canvas is an in-memory
// surface with a frame clock, an input queue serviced on the owning
// goroutine, and a software renderer for queued shapes. CartesianCanvas
// maps a cartesian plane onto a Canvas for plotting demos such as the
// Mandelbrot set.
//
// # Quick Start
//
//	import "github.com/gogpu/tsgl"
//
//	can := tsgl.NewCanvas(640, 480, tsgl.WithTitle("spheres"))
//	can.Start()
//	defer can.Close()
//
//	s, err := tsgl.NewSphere(0, 0, 0, 100, 0, 0, 0, tsgl.Blue)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	can.Add(s)
//
//	go func() {
//	    for r := float32(100); r > 20; r -= 5 {
//	        _ = s.SetRadius(r)
//	        can.Sleep()
//	    }
//	}()
//	can.Render()
//
// # Geometry
//
// Spheres and ellipsoids are tessellated into 36 vertical and 20
// horizontal sections as one triangle strip. Radii are baked into the
// vertex positions; the center and the yaw, pitch and roll angles (in
// degrees) are kept in a Transform and applied at render time.
//
// Vertex colors are stored alongside the positions, four float32 per
// vertex, so a buffer can be uploaded with the layouts from
// VertexLayouts.
//
// # Coordinate System
//
// World space has the origin at the canvas center with y up and one unit
// per pixel. Larger z is nearer to the viewer.
//
// # Concurrency
//
// Every exported method on a shape is safe for concurrent use. DrawPoint
// may be called concurrently for distinct pixels. HandleIO, Render and
// DrawText belong to the goroutine that owns the canvas.
package tsgl
