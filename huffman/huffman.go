// Package huffman implements the source coder: tree construction from a
// probability distribution, code table derivation and the bitstream
// encode/decode pair.
package huffman

import (
	"container/heap"
	"errors"
	"fmt"
	"sort"

	"github.com/harlequix/bitpipe/internal/bits"
)

var ErrUnknownSymbol = errors.New("huffman: symbol has no code")

// Node is either a leaf carrying one symbol or an internal node carrying
// up to two children. Trees are built once per run and never mutated.
type Node struct {
	Symbol rune
	Weight float64
	Left   *Node
	Right  *Node
	leaf   bool
	seq    int
}

func (self *Node) Leaf() bool {
	return self.leaf
}

type nodeHeap []*Node

func (h nodeHeap) Len() int { return len(h) }
func (h nodeHeap) Less(i, j int) bool {
	if h[i].Weight != h[j].Weight {
		return h[i].Weight < h[j].Weight
	}
	// Equal weights are ordered by the sequence number assigned at
	// queue-insertion time, so code assignment never depends on heap
	// internals.
	return h[i].seq < h[j].seq
}
func (h nodeHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *nodeHeap) Push(x interface{}) {
	*h = append(*h, x.(*Node))
}
func (h *nodeHeap) Pop() interface{} {
	old := *h
	n := old[len(old)-1]
	*h = old[:len(old)-1]
	return n
}

// BuildTree builds the prefix-code tree for the given distribution.
//
// Leaves enter the queue in sorted symbol order and every queued node gets
// a monotonically increasing sequence number, making the result
// reproducible for any input. Each merge removes the two lowest nodes;
// the first removed becomes the right child, the second the left child.
// A single-symbol alphabet yields an internal root with the lone leaf on
// the left, so its code is "0" rather than the empty string. An empty
// distribution yields a nil tree.
func BuildTree(probs map[rune]float64) *Node {
	if len(probs) == 0 {
		return nil
	}
	symbols := make([]rune, 0, len(probs))
	for sym := range probs {
		symbols = append(symbols, sym)
	}
	sort.Slice(symbols, func(i, j int) bool { return symbols[i] < symbols[j] })

	seq := 0
	h := make(nodeHeap, 0, len(symbols))
	for _, sym := range symbols {
		h = append(h, &Node{Symbol: sym, Weight: probs[sym], leaf: true, seq: seq})
		seq++
	}
	heap.Init(&h)

	if h.Len() == 1 {
		only := heap.Pop(&h).(*Node)
		return &Node{Weight: only.Weight, Left: only}
	}

	for h.Len() > 1 {
		first := heap.Pop(&h).(*Node)
		second := heap.Pop(&h).(*Node)
		parent := &Node{Weight: first.Weight + second.Weight, Left: second, Right: first, seq: seq}
		seq++
		heap.Push(&h, parent)
	}
	return heap.Pop(&h).(*Node)
}

// DeriveCodes walks the tree depth first, appending '0' on the left edge
// and '1' on the right edge; each leaf records the accumulated path. The
// resulting table is prefix-free for any alphabet size.
func DeriveCodes(root *Node) map[rune]string {
	codes := make(map[rune]string)
	if root == nil {
		return codes
	}
	var walk func(node *Node, prefix string)
	walk = func(node *Node, prefix string) {
		if node.leaf {
			codes[node.Symbol] = prefix
			return
		}
		if node.Left != nil {
			walk(node.Left, prefix+"0")
		}
		if node.Right != nil {
			walk(node.Right, prefix+"1")
		}
	}
	walk(root, "")
	return codes
}

// Encode concatenates the code of every symbol of source. A symbol absent
// from the table means the table was not derived from this source and is
// reported as ErrUnknownSymbol.
func Encode(source string, codes map[rune]string) (*bits.Stream, error) {
	out := bits.New()
	for _, sym := range source {
		code, ok := codes[sym]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownSymbol, sym)
		}
		for i := 0; i < len(code); i++ {
			if code[i] == '1' {
				out.Append(1)
			} else {
				out.Append(0)
			}
		}
	}
	return out, nil
}

// Decode walks the tree from the root, consuming one bit per edge and
// emitting a symbol at every leaf. A dangling partial path at the end of
// the stream produces no symbol; correct padding upstream keeps that from
// happening inside the full pipeline.
func Decode(stream *bits.Stream, root *Node) string {
	if root == nil {
		return ""
	}
	out := make([]rune, 0, stream.Len()/2)
	node := root
	for i := 0; i < stream.Len(); i++ {
		if stream.Bit(i) == 0 {
			node = node.Left
		} else {
			node = node.Right
		}
		if node == nil {
			// Only reachable on the single-child root with input
			// not produced by Encode; drop the rest of the walk.
			break
		}
		if node.leaf {
			out = append(out, node.Symbol)
			node = root
		}
	}
	return string(out)
}
