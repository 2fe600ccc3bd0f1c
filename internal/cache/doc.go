// Package cache provides a generic LRU cache with hit statistics.
//
//	c := cache.New[string, image.Image](64)
//	img, err := c.GetOrCreate(src, func() (image.Image, error) {
//	    return fetch(src)
//	})
//
// # Thread Safety
//
// Cache is safe for concurrent use. It must not be copied after creation.
package cache
