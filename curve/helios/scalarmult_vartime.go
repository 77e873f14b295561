package helios

// wnaf computes the width-w non-adjacent form digits of s, least
// significant first.
func wnaf(s *Scalar, width uint) []int32 {
	b := s.Bytes()
	// Work over a mutable big-endian-free bit buffer built from the
	// little-endian byte encoding, one bit higher than needed so the
	// final carry from digit extraction never runs off the end.
	bits := make([]uint8, 257)
	for i := 0; i < 256; i++ {
		bits[i] = (b[i/8] >> (uint(i) % 8)) & 1
	}

	digits := make([]int32, 0, 257)
	i := 0
	for i < 256 {
		if bits[i] == 0 {
			digits = append(digits, 0)
			i++
			continue
		}
		// extract a width-`width` window starting at i
		window := int32(0)
		for j := uint(0); j < width && i+int(j) < 257; j++ {
			window |= int32(bits[i+int(j)]) << j
		}
		half := int32(1) << (width - 1)
		full := int32(1) << width
		if window >= half {
			window -= full
		}
		digits = append(digits, window)
		// subtract window from the remaining bits (propagate borrow)
		if window < 0 {
			addCarry(bits, i, -window)
		} else {
			subBorrow(bits, i, window)
		}
		for k := uint(0); k < width-1; k++ {
			digits = append(digits, 0)
			i++
		}
		i++
	}
	return digits
}

func subBorrow(bits []uint8, pos int, value int32) {
	borrow := int32(0)
	for j := 0; value > 0 || borrow > 0; j++ {
		if pos+j >= len(bits) {
			break
		}
		bit := value & 1
		value >>= 1
		d := int32(bits[pos+j]) - bit - borrow
		borrow = 0
		if d < 0 {
			d += 2
			borrow = 1
		}
		bits[pos+j] = uint8(d)
	}
}

func addCarry(bits []uint8, pos int, value int32) {
	carry := int32(0)
	for j := 0; value > 0 || carry > 0; j++ {
		if pos+j >= len(bits) {
			break
		}
		bit := value & 1
		value >>= 1
		d := int32(bits[pos+j]) + bit + carry
		carry = d >> 1
		bits[pos+j] = uint8(d & 1)
	}
}

// ScalarMultVartime computes s*base using width-5 wNAF with an odd
// multiples table. Not constant-time: branches and table indices depend
// on s's value.
func ScalarMultVartime(s *Scalar, base *Point) Point {
	const width = 5
	table := oddMultiples(base, 1<<(width-2))
	digits := wnaf(s, width)

	acc := Identity()
	for i := len(digits) - 1; i >= 0; i-- {
		acc.Double(&acc)
		d := digits[i]
		if d == 0 {
			continue
		}
		if d > 0 {
			acc.Add(&acc, &table[d/2])
		} else {
			var neg Point
			neg.Neg(&table[(-d)/2])
			acc.Add(&acc, &neg)
		}
	}
	return acc
}

// oddMultiples returns [1*base, 3*base, 5*base, ..., (2n-1)*base].
func oddMultiples(base *Point, n int) []Point {
	out := make([]Point, n)
	out[0] = *base
	var dbl Point
	dbl.Double(base)
	for i := 1; i < n; i++ {
		out[i].Add(&out[i-1], &dbl)
	}
	return out
}

// MultiScalarMultVartime computes sum(scalars[i]*points[i]) using
// Straus's method: a single left-to-right pass over per-point wNAF
// digit sequences, sharing doublings across all terms. Panics if the
// slice lengths differ, matching the original source's fixed-arity
// multi_scalar_mul contract (api_point.cpp checks n against both
// slices before calling into the vartime MSM).
func MultiScalarMultVartime(scalars []Scalar, points []Point) Point {
	if len(scalars) != len(points) {
		panic(errMSMLengthMismatch)
	}
	if len(scalars) == 0 {
		return Identity()
	}

	const width = 5
	tables := make([][]Point, len(points))
	digitSets := make([][]int32, len(points))
	maxLen := 0
	for i := range points {
		tables[i] = oddMultiples(&points[i], 1<<(width-2))
		digitSets[i] = wnaf(&scalars[i], width)
		if len(digitSets[i]) > maxLen {
			maxLen = len(digitSets[i])
		}
	}

	acc := Identity()
	for pos := maxLen - 1; pos >= 0; pos-- {
		acc.Double(&acc)
		for i := range points {
			if pos >= len(digitSets[i]) {
				continue
			}
			d := digitSets[i][pos]
			if d == 0 {
				continue
			}
			if d > 0 {
				acc.Add(&acc, &tables[i][d/2])
			} else {
				var neg Point
				neg.Neg(&tables[i][(-d)/2])
				acc.Add(&acc, &neg)
			}
		}
	}
	return acc
}
