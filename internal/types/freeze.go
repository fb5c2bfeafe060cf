package types

// align rounds offset up to a multiple of alignment.
func align(offset, alignment int) int {
	if alignment <= 0 {
		return offset
	}
	rem := offset % alignment
	if rem == 0 {
		return offset
	}
	return offset + (alignment - rem)
}

// Freeze computes a record's component offsets and overall size, or an
// array's element count and size, per spec §4.6. It is idempotent: a
// type already frozen is left unchanged.
func Freeze(t *Type) {
	if t.Frozen {
		return
	}
	switch t.Kind {
	case Record:
		freezeRecord(t)
	case Array:
		freezeArray(t)
	default:
		t.Frozen = true
	}
}

func freezeRecord(t *Type) {
	offset := 0
	maxAlign := 1
	for _, c := range t.Discriminants {
		offset = align(offset, c.Type.Alignment)
		c.Offset = offset
		offset += c.Type.Size
		if c.Type.Alignment > maxAlign {
			maxAlign = c.Type.Alignment
		}
	}
	for _, c := range t.Components {
		offset = align(offset, c.Type.Alignment)
		c.Offset = offset
		offset += c.Type.Size
		if c.Type.Alignment > maxAlign {
			maxAlign = c.Type.Alignment
		}
	}
	t.Size = align(offset, maxAlign)
	t.Alignment = maxAlign
	t.Frozen = true
}

func freezeArray(t *Type) {
	count := t.High - t.Low + 1
	if count < 0 {
		count = 0
	}
	elemSize := 8
	elemAlign := 8
	if t.ElementType != nil {
		elemSize = t.ElementType.Size
		elemAlign = t.ElementType.Alignment
	}
	t.Size = elemSize * int(count)
	t.Alignment = elemAlign
	t.Frozen = true
}
