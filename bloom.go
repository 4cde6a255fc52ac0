package grove

// Bytes constrains fingerprint inputs to byte sequences.
type Bytes interface {
	~string | ~[]byte
}

// voidClass marks bytes that contribute no information to a
// fingerprint. Masking 1<<16 down to 16 bits yields zero.
const voidClass = 16

// classTable maps a byte to one of 16 fingerprint bits, or voidClass.
// Common identifier characters occupy distinct bits; punctuation and
// control characters are void so they cannot saturate the filter.
//
//   - '$' and '_' get dedicated classes
//   - digits occupy classes 2..11
//   - letters cycle through all 16 classes, case-sensitively
//   - bytes >= 0x80 cycle by their low nibble
var classTable = [256]uint8{
	//  0   1   2   3   4   5   6   7   8   9   A   B   C   D   E   F
	16, 16, 16, 16, 16, 16, 16, 16, 16, 16, 16, 16, 16, 16, 16, 16, // 0
	16, 16, 16, 16, 16, 16, 16, 16, 16, 16, 16, 16, 16, 16, 16, 16, // 1
	16, 16, 16, 16, 1, 16, 16, 16, 16, 16, 16, 16, 16, 16, 16, 16, // 2
	2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 16, 16, 16, 16, 16, 16, // 3
	16, 12, 13, 14, 15, 0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, // 4
	11, 12, 13, 14, 15, 0, 1, 2, 3, 4, 5, 16, 16, 16, 16, 0, // 5
	16, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 0, 1, 2, 3, 4, // 6
	5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 16, 16, 16, 16, // 7
	0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, // 8
	0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, // 9
	0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, // A
	0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, // B
	0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, // C
	0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, // D
	0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, // E
	0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, // F
}

// maskA selects the fingerprint bit for a byte in position 0 (bits
// 0..15). Void bytes produce 0.
func maskA(b byte) uint64 {
	return uint64(uint32(1)<<classTable[b]) & 0xFFFF
}

// maskB is maskA shifted into the position-1 band (bits 16..31).
func maskB(b byte) uint64 {
	return maskA(b) << 16
}

// maskC is maskA shifted into the position-2 band (bits 32..47).
func maskC(b byte) uint64 {
	return maskA(b) << 32
}

// Fingerprint computes a 64-bit bloom fingerprint for v. The cost is
// constant regardless of length: only the first three bytes and the
// length class contribute bits.
//
// The length marker lives in bits 48..63. Empty input sets exactly one
// bit; one- and two-byte inputs set a dedicated length bit plus one bit
// per byte; longer inputs set bit 48+len%16 plus the three byte bits,
// so two inputs sharing their first three bytes and a length congruent
// mod 16 produce identical fingerprints.
//
// The usual filter test applies: if filter&Fingerprint(k) !=
// Fingerprint(k), then k was never added to filter; the converse does
// not hold.
func Fingerprint[T Bytes](v T) uint64 {
	switch n := len(v); n {
	case 0:
		return 1 << 48
	case 1:
		return 1<<49 | maskA(v[0])
	case 2:
		return 1<<50 | maskA(v[0]) | maskB(v[1])
	default:
		return 1<<(48+uint(n%16)) | maskA(v[0]) | maskB(v[1]) | maskC(v[2])
	}
}
