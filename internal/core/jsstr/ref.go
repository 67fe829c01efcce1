package jsstr

// ref points either at a heap block or at an entry of the well-known table.
// A nil block means the ref is the static entry at index.
type ref struct {
	block *rawBlock
	index uint32
}

func heapRef(b *rawBlock) ref {
	return ref{block: b}
}

func staticRef(index uint32) ref {
	return ref{index: index}
}

func (r ref) isStatic() bool {
	return r.block == nil
}

func (r ref) resolve() Str {
	if r.block != nil {
		return r.block.load()
	}
	text, ok := loadTable().get(r.index)
	if !ok {
		fail(ErrUnknownStaticIndex, "index", r.index)
	}
	return Str{ascii: text}
}
