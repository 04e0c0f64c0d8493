package image

import "sync"

// Pool recycles scratch buffers such as per-glyph coverage masks.
//
// Buffers are grouped by (width, height, format). A buffer handed out by
// Get is always zeroed. All methods are safe for concurrent use.
type Pool struct {
	mu      sync.Mutex
	buckets map[poolKey][]*Buf
	limit   int
}

type poolKey struct {
	width, height int
	format        Format
}

// NewPool creates a pool retaining at most limit buffers per bucket.
// A limit of 0 retains everything.
func NewPool(limit int) *Pool {
	return &Pool{
		buckets: make(map[poolKey][]*Buf),
		limit:   limit,
	}
}

// Get returns a zeroed buffer of the given shape, reusing a pooled one if
// available.
func (p *Pool) Get(width, height int, format Format) (*Buf, error) {
	key := poolKey{width: width, height: height, format: format}

	p.mu.Lock()
	if bucket := p.buckets[key]; len(bucket) > 0 {
		buf := bucket[len(bucket)-1]
		p.buckets[key] = bucket[:len(bucket)-1]
		p.mu.Unlock()
		buf.Clear()
		return buf, nil
	}
	p.mu.Unlock()

	return NewBuf(width, height, format)
}

// Put hands buf back to the pool. Nil buffers and buffers beyond the
// bucket limit are dropped.
func (p *Pool) Put(buf *Buf) {
	if buf == nil {
		return
	}
	key := poolKey{width: buf.width, height: buf.height, format: buf.format}

	p.mu.Lock()
	defer p.mu.Unlock()

	bucket := p.buckets[key]
	if p.limit > 0 && len(bucket) >= p.limit {
		return
	}
	p.buckets[key] = append(bucket, buf)
}

// Len returns the number of buffers currently retained.
func (p *Pool) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	n := 0
	for _, bucket := range p.buckets {
		n += len(bucket)
	}
	return n
}
