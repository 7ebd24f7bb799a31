package tt

// Bound describes how a stored value relates to the true score of the
// position: an exact score, or only a lower/upper bound left behind by
// alpha-beta pruning.
type Bound uint8

const (
	// BoundNone marks a record without usable score information.
	BoundNone Bound = 0
	// BoundUpper marks a score that is at most the true value.
	BoundUpper Bound = 1
	// BoundLower marks a score that is at least the true value.
	BoundLower Bound = 2
	// BoundExact marks a score that is the true value.
	BoundExact Bound = BoundUpper | BoundLower
)

// Move is a 16-bit packed move encoding. The table does not interpret it
// beyond the MoveNone sentinel.
type Move uint16

// MoveNone is the "no move" sentinel.
const MoveNone Move = 0

// Value is a 16-bit signed search score or static evaluation.
type Value int16

const (
	// depthOffset is subtracted when unpacking the stored depth byte.
	// Storing depth-depthOffset keeps zero free as the "no data" marker
	// while still representing small negative quiescence depths.
	depthOffset = -7

	// DepthNone is the smallest storable depth.
	DepthNone = depthOffset + 1

	// DepthMax is the largest storable depth.
	DepthMax = depthOffset + 255
)

// Generation bookkeeping. The top 5 bits of genBound8 hold the entry's
// generation stamp, bit 2 the PV flag and bits 0-1 the bound. The
// table-wide counter advances in steps of generationDelta so its low
// bits stay clear, and ages are recovered by a masked subtraction that
// works across counter wraparound: genCycle adds a borrow bit above the
// 8-bit counter and keeps the non-generation bits from leaking into the
// difference.
const (
	generationBits  = 5
	generationDelta = uint8(1) << (8 - generationBits)                          // 8
	generationMask  = uint8(0xFF) &^ (generationDelta - 1)                      // 0xF8
	genCycle        = (uint16(generationMask) + uint16(generationDelta)) | 0x07 // 0x107
)

// maxAge is the number of distinct ages the 5 generation bits can express.
// An entry that survives unrefreshed for a full cycle of NewSearch calls
// aliases back to age zero; this is an intentional limit, not a bug.
const maxAge = 1 << generationBits

// Entry is one packed 10-byte transposition record:
//
//	key16     16 bit  signature (truncated position key)
//	depth8     8 bit  depth, offset so that 0 means "no data"
//	genBound8  8 bit  5 bit generation | 1 bit pv | 2 bit bound
//	move16    16 bit  packed move
//	value16   16 bit  search score
//	eval16    16 bit  static evaluation
//
// All accessors are derived views over this layout; nothing is duplicated.
// Fields are read and written as plain memory operations, racily by design
// (see the package documentation).
type Entry struct {
	key16     uint16
	depth8    uint8
	genBound8 uint8
	move16    uint16
	value16   int16
	eval16    int16
}

// Move returns the stored move, or MoveNone.
func (e *Entry) Move() Move { return Move(e.move16) }

// Value returns the stored search score.
func (e *Entry) Value() Value { return Value(e.value16) }

// Eval returns the stored static evaluation.
func (e *Entry) Eval() Value { return Value(e.eval16) }

// Depth returns the stored depth, de-offset.
func (e *Entry) Depth() int { return int(e.depth8) + depthOffset }

// IsPV reports whether the record was stored at a principal-variation node.
func (e *Entry) IsPV() bool { return e.genBound8&0x4 != 0 }

// Bound returns the stored bound type.
func (e *Entry) Bound() Bound { return Bound(e.genBound8 & 0x3) }

func (e *Entry) empty() bool { return e.depth8 == 0 }

// age returns how many generations old the entry's stamp is relative to
// the given table generation, in [0, maxAge).
func (e *Entry) age(generation uint8) int {
	return int((genCycle+uint16(generation)-uint16(e.genBound8))&uint16(generationMask)) >> (8 - generationBits)
}

// save overwrites the record if the incoming data is judged at least as
// valuable as what is stored:
//
//  1. A known move is never replaced by MoveNone for the same position.
//  2. The remaining fields are overwritten when the signature differs
//     (different position, or eviction target), the new bound is exact, or
//     the new depth beats the stored depth minus a bias that grows with
//     the entry's age. Fresh same-position data must therefore be nearly
//     as deep to replace, while stale data gives way even to shallower
//     results.
//  3. Otherwise the call is a no-op.
//
// Callers are trusted to pass depth within [DepthNone, DepthMax]; the
// packed field widths are a documented contract, not runtime-checked.
func (e *Entry) save(k uint64, v Value, pv bool, b Bound, d int, m Move, ev Value, generation uint8, ageWeight int) {
	sig := uint16(k)

	if m != MoveNone || sig != e.key16 {
		e.move16 = uint16(m)
	}

	pvBonus := 0
	if pv {
		pvBonus = 2
	}

	if b == BoundExact || sig != e.key16 ||
		d-depthOffset+pvBonus > int(e.depth8)-4-e.age(generation)*ageWeight {
		e.key16 = sig
		e.depth8 = uint8(d - depthOffset)
		e.genBound8 = generation | pvBit(pv) | uint8(b)
		e.value16 = int16(v)
		e.eval16 = int16(ev)
	}
}

func pvBit(pv bool) uint8 {
	if pv {
		return 0x4
	}
	return 0
}
