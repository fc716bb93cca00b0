package treecode

import (
	"math/bits"
)

// wordBitCount is the number of bits in a single backing word.
const wordBitCount = 64

// marker is the sentinel bit separating empty trailing space from the
// encoded path.
const marker uint64 = 1

// growWords is how many extra words are allocated when a Treecode's
// backing array needs to grow.
const growWords = 3

// Step is a single left/right branch taken while descending the tree.
type Step uint8

const (
	// Left descends to the 0 child.
	Left Step = 0
	// Right descends to the 1 child.
	Right Step = 1
)

// Treecode is an immutable-by-convention path encoding: callers are
// expected to treat a Treecode as a value and use Append's return value
// rather than mutating a shared instance. Append copies the backing
// words, so it never modifies the receiver.
type Treecode struct {
	words      []uint64
	codeLength int
}

// New returns the empty treecode (root node, zero steps taken).
func New() Treecode {
	return Treecode{words: []uint64{marker}, codeLength: 0}
}

// FromWord builds a Treecode directly from a single packed word, for
// tests and literal paths.
func FromWord(w uint64) Treecode {
	words := []uint64{w}

	return Treecode{words: words, codeLength: codeLengthMeasured(words)}
}

// Len reports the number of steps encoded (excluding the marker bit).
func (t Treecode) Len() int { return t.codeLength }

func clz(x uint64) int {
	return bits.LeadingZeros64(x)
}

func setBitInWord(word uint64, bitIndex int, step Step) uint64 {
	if step == Right {
		return word | (uint64(1) << uint(bitIndex))
	}

	return word &^ (uint64(1) << uint(bitIndex))
}

// wordAppend appends a single step's bit to word, relocating the marker
// bit one position higher (or leaving it implicit if the word is now
// full).
func wordAppend(word uint64, step Step) uint64 {
	significantBits := wordBitCount - 1 - clz(word)
	newVal := setBitInWord(word, significantBits, step)

	if significantBits == wordBitCount-1 {
		return newVal
	}

	return setBitInWord(newVal, significantBits+1, Right)
}

// codeLengthMeasured recovers a treecode's step count purely from its
// packed words, by locating the highest occupied word and the position
// of its marker bit.
func codeLengthMeasured(words []uint64) int {
	occupied := 0
	for i := len(words); i > 0; i-- {
		if words[i-1] != 0 {
			occupied = i - 1
			break
		}
	}

	count := (wordBitCount - 1) - clz(words[occupied])
	if occupied == 0 {
		return count
	}

	return count + occupied*wordBitCount
}

// wordIsPrefixOf is the single-word prefix test: lhs (treated as a
// marker-terminated path within one word) is a prefix of rhs's
// corresponding word.
func wordIsPrefixOf(lhs, rhs uint64) bool {
	if lhs == rhs || lhs == marker {
		return true
	}
	if lhs == 0 || rhs == 0 {
		return false
	}

	leadingZeros := clz(lhs) + 1
	mask := (uint64(1) << uint(wordBitCount-leadingZeros)) - 1

	return (lhs & mask) == (rhs & mask)
}

// Append returns the treecode extended by one more step. It works on a
// fresh copy of the receiver's words (grown as needed), so the receiver
// and every Treecode derived from it stay valid and unchanged.
func (t Treecode) Append(step Step) Treecode {
	currentLength := t.codeLength
	t.codeLength++
	newMarkerBitIndex := t.codeLength

	if newMarkerBitIndex < wordBitCount {
		words := append([]uint64(nil), t.words...)
		words[0] = wordAppend(words[0], step)
		t.words = words

		return t
	}

	wordCapacity := len(t.words)
	lastAllocatedIndex := wordCapacity*wordBitCount - 1

	words := append([]uint64(nil), t.words...)
	if newMarkerBitIndex > lastAllocatedIndex {
		words = append(words, make([]uint64, growWords)...)
	}

	newMarkerWord := newMarkerBitIndex / wordBitCount
	newDataWord := currentLength / wordBitCount

	if newMarkerWord == newDataWord {
		words[newMarkerWord] = wordAppend(words[newMarkerWord], step)
		t.words = words

		return t
	}

	words[newMarkerWord] = marker
	words[newDataWord] = setBitInWord(words[newDataWord], wordBitCount-1, step)
	t.words = words

	return t
}

// IsPrefixOf reports whether t's path is a prefix of rhs's path (t is an
// ancestor of, or equal to, rhs). The empty path is a prefix of
// everything.
func (t Treecode) IsPrefixOf(rhs Treecode) bool {
	if t.codeLength == 0 {
		return true
	}
	if rhs.codeLength == 0 || rhs.codeLength < t.codeLength {
		return false
	}

	if t.codeLength < wordBitCount {
		return wordIsPrefixOf(t.words[0], rhs.words[0])
	}

	greatestNonzeroIndex := t.codeLength / wordBitCount
	for i := 0; i < greatestNonzeroIndex; i++ {
		if t.words[i] != rhs.words[i] {
			return false
		}
	}

	return wordIsPrefixOf(t.words[greatestNonzeroIndex], rhs.words[greatestNonzeroIndex])
}

// Equal reports value equality: same length and same encoded steps.
func (t Treecode) Equal(rhs Treecode) bool {
	if t.codeLength != rhs.codeLength {
		return false
	}

	endWord := t.codeLength/wordBitCount + 1
	if endWord > len(t.words) {
		endWord = len(t.words)
	}
	if endWord > len(rhs.words) {
		endWord = len(rhs.words)
	}

	for i := 0; i < endWord; i++ {
		if t.words[i] != rhs.words[i] {
			return false
		}
	}

	return true
}

// Hash computes a content hash suitable for keying a map, combining each
// nonzero word's index and value with fixed odd multipliers and a
// Wyhash-like rotating mix.
func (t Treecode) Hash() uint64 {
	var hash uint64

	for i, w := range t.words {
		if w == 0 {
			continue
		}
		hash ^= uint64(i+1) * 0x9e3779b97f4a7c15
		hash ^= w * 0xbf58476d1ce4e5b9
		hash = bits.RotateLeft64(hash, 27)
	}

	return hash
}

// NextStepTowards returns the single step to take from t towards dest,
// reading the bit at position t.Len() in dest's path. dest must be at
// least as long as t (callers typically ensure t.IsPrefixOf(dest) first).
func (t Treecode) NextStepTowards(dest Treecode) (Step, error) {
	if dest.codeLength <= t.codeLength {
		return Left, ErrEmptyDestination
	}

	wordIdx := t.codeLength / wordBitCount
	bitIdx := t.codeLength % wordBitCount

	targetWord := dest.words[wordIdx]
	if targetWord&(uint64(1)<<uint(bitIdx)) != 0 {
		return Right, nil
	}

	return Left, nil
}

// PathExists reports whether a monotone root-to-leaf path relates fst
// and snd: true when they are equal, or one is a prefix (ancestor) of
// the other.
func PathExists(fst, snd Treecode) bool {
	return fst.Equal(snd) || fst.IsPrefixOf(snd) || snd.IsPrefixOf(fst)
}
