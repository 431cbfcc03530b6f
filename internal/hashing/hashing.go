// Package hashing provides duplicate detection for decoded positions.
package hashing

import "github.com/lgbarn/fenboard-go/internal/chess"

// Signature stores identifying information about a position.
type Signature struct {
	// Hash is the Zobrist hash of the position
	Hash uint64
	// WeakHash is a placement checksum for additional confidence
	WeakHash uint64
	// Clocks holds the halfmove clock and fullmove number
	Clocks [2]uint
}

// NewSignature computes the signature of a position.
func NewSignature(pos *chess.Position) Signature {
	sig := Signature{
		Hash:     ZobristHash(pos),
		WeakHash: WeakHash(pos),
	}
	if pos != nil {
		sig.Clocks = [2]uint{pos.HalfmoveClock, pos.FullmoveNumber}
	}
	return sig
}

// DuplicateDetector tracks seen positions.
type DuplicateDetector struct {
	// hashTable stores seen signatures by Zobrist hash
	hashTable map[uint64][]Signature
	// exactMatch also requires equal move counters
	exactMatch bool
	// maxCapacity bounds the number of stored signatures (0 = unlimited)
	maxCapacity int
	// count is the number of stored signatures
	count int
	// duplicateCount tracks number of duplicates found
	duplicateCount int
}

// NewDuplicateDetector creates a new duplicate detector. With exactMatch
// two positions only match when their move counters agree as well.
// maxCapacity of 0 means unlimited capacity.
func NewDuplicateDetector(exactMatch bool, maxCapacity int) *DuplicateDetector {
	if maxCapacity < 0 {
		maxCapacity = 0
	}
	return &DuplicateDetector{
		hashTable:   make(map[uint64][]Signature),
		exactMatch:  exactMatch,
		maxCapacity: maxCapacity,
	}
}

// CheckAndAdd reports whether pos was seen before and remembers it if not.
// Once the detector is full new positions are still checked but no longer
// stored.
func (d *DuplicateDetector) CheckAndAdd(pos *chess.Position) bool {
	if pos == nil {
		return false
	}

	sig := NewSignature(pos)
	for _, existing := range d.hashTable[sig.Hash] {
		if d.signaturesMatch(sig, existing) {
			d.duplicateCount++
			return true
		}
	}

	if d.IsFull() {
		return false
	}
	d.hashTable[sig.Hash] = append(d.hashTable[sig.Hash], sig)
	d.count++
	return false
}

// signaturesMatch checks if two signatures match.
func (d *DuplicateDetector) signaturesMatch(a, b Signature) bool {
	if a.Hash != b.Hash || a.WeakHash != b.WeakHash {
		return false
	}
	if d.exactMatch && a.Clocks != b.Clocks {
		return false
	}
	return true
}

// IsFull returns true if the detector has reached its capacity limit.
func (d *DuplicateDetector) IsFull() bool {
	return d.maxCapacity > 0 && d.count >= d.maxCapacity
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	return d.duplicateCount
}

// UniqueCount returns the number of stored positions.
func (d *DuplicateDetector) UniqueCount() int {
	return d.count
}

// Reset clears the hash table.
func (d *DuplicateDetector) Reset() {
	d.hashTable = make(map[uint64][]Signature)
	d.count = 0
	d.duplicateCount = 0
}
