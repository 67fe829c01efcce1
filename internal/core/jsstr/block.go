package jsstr

import (
	"math"
	"strings"
	"sync/atomic"
)

// blockHeaderSize is the accounted size of a block header: the reference
// count, the length and the encoding flag, rounded to word alignment.
const blockHeaderSize = 24

// rawBlock is one heap allocation backing a non-interned String.
// The storage variant is fixed when the block is allocated.
type rawBlock struct {
	refcount uint
	length   int
	ascii    bool
	str      Str
}

var (
	liveBlocks atomic.Int64
	liveBytes  atomic.Int64
)

// HeapStats describes the string blocks currently alive in the process.
type HeapStats struct {
	Blocks int64
	Bytes  int64
}

// ReadHeapStats returns a snapshot of the live block accounting.
func ReadHeapStats() HeapStats {
	return HeapStats{
		Blocks: liveBlocks.Load(),
		Bytes:  liveBytes.Load(),
	}
}

func unitWidth(ascii bool) int {
	if ascii {
		return 1
	}
	return 2
}

// layoutSize returns the accounted size of a block holding length units.
func layoutSize(length int, ascii bool) int {
	w := unitWidth(ascii)
	if length < 0 || length > (math.MaxInt-blockHeaderSize)/w {
		fail(ErrAllocationOverflow, "length", length)
	}
	return blockHeaderSize + length*w
}

// blockWriter fills a freshly allocated block. Exactly one of the two
// buffers is in use, depending on the encoding chosen at allocation.
type blockWriter struct {
	block *rawBlock
	text  strings.Builder
	units []uint16
}

// allocate reserves a block for length units. The caller fills it through
// the returned writer and then calls seal.
func allocate(length int, ascii bool) *blockWriter {
	size := layoutSize(length, ascii)

	w := &blockWriter{
		block: &rawBlock{
			refcount: 1,
			length:   length,
			ascii:    ascii,
		},
	}
	if ascii {
		w.text.Grow(length)
	} else {
		w.units = make([]uint16, 0, length)
	}

	liveBlocks.Add(1)
	liveBytes.Add(int64(size))
	return w
}

// seal stores the written content as the block's Str.
func (w *blockWriter) seal() *rawBlock {
	b := w.block
	if b.ascii {
		if w.text.Len() != b.length {
			fail(ErrBlockLengthMismatch, "written", w.text.Len())
		}
		b.str = Str{ascii: w.text.String()}
	} else {
		if len(w.units) != b.length {
			fail(ErrBlockLengthMismatch, "written", len(w.units))
		}
		b.str = Str{units: w.units, wide: true}
	}
	w.block = nil
	w.units = nil
	return b
}

func (b *rawBlock) retain() {
	switch b.refcount {
	case 0:
		fail(ErrUseAfterRelease, "length", b.length)
	case math.MaxUint:
		fail(ErrRefcountOverflow, "length", b.length)
	}
	b.refcount++
}

// release drops one reference. The block is freed when the last one goes.
func (b *rawBlock) release() {
	if b.refcount == 0 {
		fail(ErrUseAfterRelease, "length", b.length)
	}
	b.refcount--
	if b.refcount > 0 {
		return
	}

	liveBlocks.Add(-1)
	liveBytes.Add(-int64(layoutSize(b.length, b.ascii)))
	b.str = Str{}
}

func (b *rawBlock) load() Str {
	if b.refcount == 0 {
		fail(ErrUseAfterRelease, "length", b.length)
	}
	return b.str
}
