// Package cache provides a small generic LRU used for rasterized glyph masks.
//
// LRU is not safe for concurrent use. Owners guard it with their own mutex,
// usually the one that already serializes the work producing the values.
//
//	c := cache.New[string, int](100)
//	c.Add("key", 42)
//	value, ok := c.Get("key")
package cache
