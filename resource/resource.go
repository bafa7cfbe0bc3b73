package resource

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
)

type Number uint16
type RID uint16

const InvalidRID = RID(0xFFFF)

type Resource interface {
	ID() RID
	Type() Type
	Bytes() []uint8
}

// Every resource in a volume file starts with this header.
type header struct {
	ID               RID
	CompressedSize   uint16
	DecompressedSize uint16
	CompressionMethod
}

// ParsePayloadFrom reads one resource from r and returns its id and
// decompressed bytes, using decomp to pick the decompressor.
func ParsePayloadFrom(r io.Reader, decomp DecompressorLUT) (RID, []byte, error) {
	src := bufio.NewReader(r)

	var h header
	if err := binary.Read(src, binary.LittleEndian, &h); err != nil {
		return InvalidRID, nil, err
	}

	decompress, ok := decomp[h.CompressionMethod]
	if !ok {
		return InvalidRID, nil, fmt.Errorf("resource %d: unhandled compression method %d", h.ID, h.CompressionMethod)
	}

	// The compressed size counts the last two header fields.
	if h.CompressedSize < 4 {
		return InvalidRID, nil, fmt.Errorf("resource %d: bad compressed size %d", h.ID, h.CompressedSize)
	}

	payload := make([]uint8, h.DecompressedSize)
	if err := decompress(src, payload, h.CompressedSize-4, h.DecompressedSize); err != nil {
		return InvalidRID, nil, fmt.Errorf("resource %d: %w", h.ID, err)
	}
	return h.ID, payload, nil
}
