package Go_Trees

import (
	"math/bits"
)

// NewBitArray that can hold at least size bits, all cleared.
func NewBitArray(size int) BitArray {
	return BitArray{bits: make([]uint, (size+bits.UintSize-1)/bits.UintSize)}
}

// BitArray is a fixed length array of bits. The receivers don't check bounds beyond what the slice does.
type BitArray struct {
	bits []uint
}

// Len is the number of bits that can be held, it's a multiple of bits.UintSize.
func (u BitArray) Len() int {
	return len(u.bits) * bits.UintSize
}

func (u BitArray) Get(i int) bool {
	return (u.bits[i/bits.UintSize]>>(i%bits.UintSize))&1 == 1
}

func (u BitArray) Set(i int) {
	u.bits[i/bits.UintSize] |= 1 << (i % bits.UintSize)
}

func (u BitArray) Clr(i int) {
	u.bits[i/bits.UintSize] &^= 1 << (i % bits.UintSize)
}

// First set bit, -1 if none is set.
func (u BitArray) First() int {
	return u.Next(0)
}

// Next set bit at index i or after it, -1 if none is set.
// Time: O(Len()/bits.UintSize)
func (u BitArray) Next(i int) int {
	if i < 0 {
		i = 0
	}
	w := i / bits.UintSize
	if w >= len(u.bits) {
		return -1
	}
	if cur := u.bits[w] >> (i % bits.UintSize); cur != 0 {
		return i + bits.TrailingZeros(cur)
	}
	for w++; w < len(u.bits); w++ {
		if u.bits[w] != 0 {
			return w*bits.UintSize + bits.TrailingZeros(u.bits[w])
		}
	}
	return -1
}

// Count of set bits.
func (u BitArray) Count() (c int) {
	for _, w := range u.bits {
		c += bits.OnesCount(w)
	}
	return
}

// Reset clears all bits.
func (u BitArray) Reset() {
	clear(u.bits)
}
