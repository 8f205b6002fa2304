package domain

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/authcorp/strongtypes/strong"
)

// Crockford's base32 alphabet.
const ulidAlphabet = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"

const ulidLength = 26

var ulidDecodeMap [256]byte

func init() {
	for i := range ulidDecodeMap {
		ulidDecodeMap[i] = 0xFF
	}
	for i, c := range ulidAlphabet {
		ulidDecodeMap[c] = byte(i)
	}
}

type ulid struct{}

func (ulid) BrandName() string { return "ulid" }

func (ulid) Validate(v string) error {
	if len(v) != ulidLength {
		return errors.New("must be 26 characters")
	}
	for i := 0; i < len(v); i++ {
		if ulidDecodeMap[v[i]] == 0xFF {
			return errors.New("must use upper-case Crockford base32")
		}
	}
	// 26 characters carry 130 bits; the top two must be zero.
	if v[0] > '7' {
		return errors.New("timestamp overflows 48 bits")
	}
	return nil
}

// ULID is a lexicographically sortable identifier. Because the text is
// upper-case base32, String ordering matches creation order.
type ULID = strong.String[ulid]

// NewULID trims and upper-cases raw, then validates it.
func NewULID(raw string) (ULID, error) {
	return strong.Create[ULID](strings.ToUpper(strings.TrimSpace(raw)))
}

// MustULID is NewULID that panics on invalid input.
func MustULID(raw string) ULID {
	return must(NewULID(raw))
}

// ErrULIDOverflow is returned when a millisecond has used up its 80-bit
// random space.
var ErrULIDOverflow = errors.New("domain: ulid random part overflow")

// ULIDGenerator issues strictly increasing ULIDs. When the clock stands
// still or moves backwards, the previous timestamp is kept and the random
// part is incremented.
type ULIDGenerator struct {
	mu       sync.Mutex
	entropy  io.Reader
	lastTime uint64
	lastRand [10]byte
	started  bool
}

// NewULIDGenerator returns a generator that draws fresh random parts from
// entropy, or from crypto/rand when entropy is nil.
func NewULIDGenerator(entropy io.Reader) *ULIDGenerator {
	if entropy == nil {
		entropy = rand.Reader
	}
	return &ULIDGenerator{entropy: entropy}
}

// Generate returns a ULID stamped with t, or with the last issued
// timestamp when t is earlier.
func (g *ULIDGenerator) Generate(t time.Time) (ULID, error) {
	ms := uint64(t.UnixMilli())

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.started && ms <= g.lastTime {
		next := g.lastRand
		if !increment(&next) {
			return ULID{}, fmt.Errorf("%w at %d", ErrULIDOverflow, g.lastTime)
		}
		g.lastRand = next
		return strong.NewString[ulid](encodeULID(g.lastTime, g.lastRand)), nil
	}
	var next [10]byte
	if _, err := io.ReadFull(g.entropy, next[:]); err != nil {
		return ULID{}, fmt.Errorf("domain: ulid entropy: %w", err)
	}
	g.lastTime, g.lastRand, g.started = ms, next, true
	return strong.NewString[ulid](encodeULID(ms, next)), nil
}

// increment adds one to the big-endian value in b and reports false when
// it wraps around.
func increment(b *[10]byte) bool {
	for i := len(b) - 1; i >= 0; i-- {
		b[i]++
		if b[i] != 0 {
			return true
		}
	}
	return false
}

var defaultULIDs = NewULIDGenerator(nil)

// GenerateULID returns a new ULID stamped with the current time.
func GenerateULID() (ULID, error) {
	return defaultULIDs.Generate(time.Now())
}

// GenerateULIDAt returns a new process-wide ULID stamped with t. Results
// are strictly increasing across calls.
func GenerateULIDAt(t time.Time) (ULID, error) {
	return defaultULIDs.Generate(t)
}

// ULIDTime returns the millisecond timestamp encoded in u, or the zero
// time when u is not a valid ULID.
func ULIDTime(u ULID) time.Time {
	v := u.Value()
	if u.Validate() != nil {
		return time.Time{}
	}
	var ms uint64
	for i := range 10 {
		ms = ms<<5 | uint64(ulidDecodeMap[v[i]])
	}
	return time.UnixMilli(int64(ms)).UTC()
}

func encodeULID(ms uint64, random [10]byte) string {
	var out [ulidLength]byte
	for i := 9; i >= 0; i-- {
		out[i] = ulidAlphabet[ms&0x1F]
		ms >>= 5
	}
	// 80 random bits fill the remaining 16 characters, 5 bits each.
	var acc uint64
	bits := 0
	pos := 10
	for _, b := range random {
		acc = acc<<8 | uint64(b)
		bits += 8
		for bits >= 5 {
			bits -= 5
			out[pos] = ulidAlphabet[(acc>>bits)&0x1F]
			pos++
		}
	}
	return string(out[:])
}
