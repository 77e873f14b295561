package fp

// Limbs51 returns e's canonical value as five 51-bit radix-2^51 limbs,
// little-endian, a reference encoding for F_p elements used by
// 64-bit limb-based backends.
func (e *Elt) Limbs51() [5]uint64 {
	b := e.Bytes()
	var w [4]uint64
	for i := 0; i < 4; i++ {
		w[i] = uint64(b[8*i]) | uint64(b[8*i+1])<<8 | uint64(b[8*i+2])<<16 | uint64(b[8*i+3])<<24 |
			uint64(b[8*i+4])<<32 | uint64(b[8*i+5])<<40 | uint64(b[8*i+6])<<48 | uint64(b[8*i+7])<<56
	}
	const mask51 = (uint64(1) << 51) - 1
	var l [5]uint64
	l[0] = w[0] & mask51
	l[1] = ((w[0] >> 51) | (w[1] << 13)) & mask51
	l[2] = ((w[1] >> 38) | (w[2] << 26)) & mask51
	l[3] = ((w[2] >> 25) | (w[3] << 39)) & mask51
	l[4] = w[3] >> 12
	return l
}

// SetLimbs51 sets e from five 51-bit radix-2^51 limbs, little-endian.
func (e *Elt) SetLimbs51(l [5]uint64) *Elt {
	w0 := l[0] | (l[1] << 51)
	w1 := (l[1] >> 13) | (l[2] << 38)
	w2 := (l[2] >> 26) | (l[3] << 25)
	w3 := (l[3] >> 39) | (l[4] << 12)
	var b [32]byte
	for i := 0; i < 8; i++ {
		b[i] = byte(w0 >> (8 * i))
		b[8+i] = byte(w1 >> (8 * i))
		b[16+i] = byte(w2 >> (8 * i))
		b[24+i] = byte(w3 >> (8 * i))
	}
	return e.SetBytes(b[:])
}

// Limbs25_5 returns e's canonical value as ten limbs alternating 26/25
// bits (radix 2^25.5), a reference encoding for 32-bit backends.
func (e *Elt) Limbs25_5() [10]uint32 {
	l51 := e.Limbs51()
	// Re-slice the 255-bit value carried in five 51-bit limbs into ten
	// alternating 26/25-bit limbs by going through a flat bit buffer.
	var bits [255]byte
	pos := 0
	for _, limb := range l51 {
		for b := 0; b < 51 && pos < 255; b++ {
			bits[pos] = byte((limb >> uint(b)) & 1)
			pos++
		}
	}
	widths := [10]int{26, 25, 26, 25, 26, 25, 26, 25, 26, 25}
	var out [10]uint32
	idx := 0
	for i, w := range widths {
		var v uint32
		for b := 0; b < w && idx < 255; b++ {
			v |= uint32(bits[idx]) << uint(b)
			idx++
		}
		out[i] = v
	}
	return out
}
