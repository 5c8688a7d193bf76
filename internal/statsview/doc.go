// Package statsview serves live runtime charts for the demo commands.
//
// The viewer is compiled in only with the statsview build tag:
//
//	go build -tags statsview ./cmd/mandelbrot
//
// Once launched, the charts are at
//
//	localhost:12601/debug/statsview
//
// and the standard pprof pages at localhost:12601/debug/pprof/. Without
// the tag Launch does nothing and Available reports false.
package statsview
