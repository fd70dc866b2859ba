package pixbuf

// InterleavedSize returns the number of bytes ToInterleaved and ToPlanar write.
func (b *Buffer) InterleavedSize() int {
	return b.channels * b.width * b.height
}

// ToInterleaved copies the pixel data into dst in pixel-major order: channel
// fastest, then x, then y. Padding is dropped.
//
// Only Uint8 buffers can be exported. Returns ErrBufferTooSmall if dst holds
// fewer than Channels()*Width()*Height() bytes. Returns the number of bytes
// written.
func (b *Buffer) ToInterleaved(dst []byte) (int, error) {
	need, err := b.checkExport(dst)
	if err != nil {
		return 0, err
	}
	ch, ps := b.channels, b.pixelSize
	for y := range b.height {
		row, _ := b.RowUint8(y)
		out := dst[y*b.width*ch:]
		if ch == ps {
			copy(out, row)
			continue
		}
		for x := range b.width {
			copy(out[x*ch:x*ch+ch], row[x*ps:x*ps+ch])
		}
	}
	return need, nil
}

// ToPlanar copies the pixel data into dst in channel-major order: x fastest,
// then y, then channel. Each channel forms one contiguous Width()*Height()
// plane.
//
// Size and type requirements are the same as for ToInterleaved.
func (b *Buffer) ToPlanar(dst []byte) (int, error) {
	need, err := b.checkExport(dst)
	if err != nil {
		return 0, err
	}
	plane := b.width * b.height
	ps := b.pixelSize
	for y := range b.height {
		row, _ := b.RowUint8(y)
		for c := range b.channels {
			out := dst[c*plane+y*b.width:]
			for x := range b.width {
				out[x] = row[x*ps+c]
			}
		}
	}
	return need, nil
}

func (b *Buffer) checkExport(dst []byte) (int, error) {
	if b.elem != Uint8 {
		return 0, ErrUnsupportedElementType
	}
	if b.released() {
		return 0, ErrOutOfRange
	}
	need := b.InterleavedSize()
	if len(dst) < need {
		return 0, ErrBufferTooSmall
	}
	return need, nil
}
