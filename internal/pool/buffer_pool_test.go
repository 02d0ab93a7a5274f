package pool

import "testing"

func TestBufferPoolRoundTrip(t *testing.T) {
	bp := NewBufferPool(16)

	buffer := bp.Get()
	*buffer = append(*buffer, "hello"...)
	bp.Put(buffer)

	reused := bp.Get()
	if len(*reused) != 0 {
		t.Errorf("buffer from pool has length %d, want 0", len(*reused))
	}
	if cap(*reused) < 5 {
		t.Errorf("buffer capacity = %d, want at least 5 after reuse", cap(*reused))
	}
}
