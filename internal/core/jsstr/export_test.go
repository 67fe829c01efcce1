package jsstr

func init() {
	checkInvariants = true
}

// BlockOf returns the heap block behind s, or nil for interned strings.
// This is exported for testing purposes only.
func BlockOf(s String) any {
	if s.r.block == nil {
		return nil
	}
	return s.r.block
}

// ResetWellKnown restores the built-in table and unseals it.
// This is exported for testing purposes only.
func ResetWellKnown() {
	installMu.Lock()
	defer installMu.Unlock()
	table.Store(newTable(builtinWellKnown))
	sealed.Store(false)
}

// StaticIndex returns the table index of an interned string.
func StaticIndex(s String) (uint32, bool) {
	if !s.r.isStatic() {
		return 0, false
	}
	return s.r.index, true
}

// StaticString builds a String referring to table index i.
func StaticString(i uint32) String {
	return String{r: staticRef(i)}
}

// Unchecked view constructors, exposed to check their guards.
var (
	ASCIIView      = asciiView
	ASCIIUnitsView = asciiUnitsView
	NarrowView     = narrowView
	WideView       = wideView
)

// LayoutSize exposes the block size computation.
var LayoutSize = layoutSize

// BlockHeaderSize is the accounted header size of a block.
const BlockHeaderSize = blockHeaderSize

// ForceRefcount overwrites the reference count of a heap string.
func ForceRefcount(s String, n uint) {
	s.r.block.refcount = n
}

// SealUnfilled allocates a block and seals it without writing any units.
// The block is removed from the heap statistics again, even when sealing panics.
func SealUnfilled(length int, ascii bool) {
	w := allocate(length, ascii)
	defer func() {
		liveBlocks.Add(-1)
		liveBytes.Add(-int64(layoutSize(length, ascii)))
	}()
	w.seal()
}
