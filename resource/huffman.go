package resource

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/32bitkid/bitreader"
)

// A huffman node is a leaf when siblings is zero. Otherwise the high
// nibble is the forward distance to the child for a 0 bit and the low
// nibble the one for a 1 bit; a distance of zero means an 8 bit literal
// follows in the stream.
type huffmanNode struct {
	Value    uint8
	Siblings uint8
}

type huffmanTree struct {
	nodes []huffmanNode
	br    bitreader.BitReader8
}

// decode walks the tree from the root. literal reports whether the value
// came from the stream instead of a leaf.
func (t *huffmanTree) decode() (value uint8, literal bool, err error) {
	idx := 0
	for {
		if idx >= len(t.nodes) {
			return 0, false, fmt.Errorf("huffman: node %d out of range", idx)
		}
		node := t.nodes[idx]
		if node.Siblings == 0 {
			return node.Value, false, nil
		}

		bit, err := t.br.Read1()
		if err != nil {
			return 0, false, err
		}

		dist := int(node.Siblings >> 4)
		if bit {
			dist = int(node.Siblings & 0x0f)
		}
		if dist == 0 {
			value, err := t.br.Read8(8)
			return value, true, err
		}
		idx += dist
	}
}

// huffman decodes src into dest. The stream ends with the terminator byte
// sent as a literal.
func huffman(src io.Reader, dest []uint8) error {
	var head struct {
		Nodes      uint8
		Terminator uint8
	}
	if err := binary.Read(src, binary.LittleEndian, &head); err != nil {
		return err
	}

	tree := huffmanTree{nodes: make([]huffmanNode, head.Nodes)}
	if err := binary.Read(src, binary.LittleEndian, &tree.nodes); err != nil {
		return err
	}
	tree.br = bitreader.NewReader(src)

	n := 0
	for {
		c, literal, err := tree.decode()
		if err != nil {
			return err
		}
		if literal && c == head.Terminator {
			break
		}
		if n == len(dest) {
			return fmt.Errorf("huffman: output exceeds %d bytes", len(dest))
		}
		dest[n] = c
		n++
	}

	if n != len(dest) {
		return fmt.Errorf("huffman: read aborted early. expected(%d) != actual(%d)", len(dest), n)
	}
	return nil
}
