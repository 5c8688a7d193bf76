// Package cache provides a small thread-safe cache with a soft size limit
// and least-recently-used eviction.
//
// tsgl uses it to keep one font face per text size, so repeated labels do
// not rebuild glyph rasterizers every frame.
package cache
