package vocabulary

import (
	"math"
	"sort"
)

// BuildHuffman assigns a Huffman code and path to every entry, by the
// classic two-queue merge: one cursor walks already-sorted leaves by
// ascending frequency, the other walks newly created internal nodes,
// and each step merges whichever pair of queues currently holds the two
// smallest counts. The leaf cursor is preferred only on a strict "<", so
// an exact tie between a leaf and an internal node goes to the internal
// node.
func (v *Vocabulary) BuildHuffman() {
	n := len(v.byIndex)
	if n == 0 {
		return
	}
	if n == 1 {
		// A single-word vocabulary has no internal nodes; give it the
		// trivial one-bit code so callers relying on len(Path) == len(Code)+1
		// still hold.
		v.byIndex[0].Code = []uint8{0}
		v.byIndex[0].Path = []uint32{0, 0}
		return
	}

	sorted := make([]*Word, n)
	copy(sorted, v.byIndex)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Frequency > sorted[j].Frequency
	})

	const inf = math.MaxInt32
	count := make([]int64, 2*n)
	binary := make([]int64, 2*n)
	parent := make([]int64, 2*n)

	for i := 0; i < n; i++ {
		count[i] = int64(sorted[i].Frequency)
	}
	for i := n; i < 2*n; i++ {
		count[i] = inf
	}

	pos1 := int64(n - 1)
	pos2 := int64(n)
	for i := 0; i < n-1; i++ {
		var min1i, min2i int64

		if pos1 >= 0 {
			if count[pos1] < count[pos2] {
				min1i = pos1
				pos1--
			} else {
				min1i = pos2
				pos2++
			}
		} else {
			min1i = pos2
			pos2++
		}

		if pos1 >= 0 {
			if count[pos1] < count[pos2] {
				min2i = pos1
				pos1--
			} else {
				min2i = pos2
				pos2++
			}
		} else {
			min2i = pos2
			pos2++
		}

		count[int64(n)+int64(i)] = count[min1i] + count[min2i]
		parent[min1i] = int64(n) + int64(i)
		parent[min2i] = int64(n) + int64(i)
		binary[min2i] = 1
	}

	root := int64(2*n - 2)
	codeBuf := make([]int64, 0, 64)
	pointBuf := make([]int64, 0, 64)
	for i := 0; i < n; i++ {
		codeBuf = codeBuf[:0]
		pointBuf = pointBuf[:0]
		b := int64(i)
		for {
			codeBuf = append(codeBuf, binary[b])
			pointBuf = append(pointBuf, b)
			b = parent[b]
			if b == root {
				break
			}
		}
		k := len(codeBuf)
		code := make([]uint8, k)
		path := make([]uint32, k+1)
		path[0] = uint32(n - 2)
		for b := 0; b < k; b++ {
			code[k-b-1] = uint8(codeBuf[b])
			path[k-b] = uint32(pointBuf[b] - int64(n))
		}
		sorted[i].Code = code
		sorted[i].Path = path
	}
}
