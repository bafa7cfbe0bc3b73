package resource

import (
	"compress/lzw"
	"errors"
	"io"
)

type CompressionMethod uint16

type DecompressionFn = func(r io.Reader, dest []byte, compressedSize, decompressedSize uint16) error

// DecompressorLUT maps the compression method in a resource header to its
// decompressor. The numbering differs between interpreter generations.
type DecompressorLUT map[CompressionMethod]DecompressionFn

var ErrUnsupportedCompression = errors.New("unsupported compression")

func DecompressNone(r io.Reader, dst []byte, compressedSize, decompressedSize uint16) error {
	_, err := io.ReadFull(io.LimitReader(r, int64(compressedSize)), dst[:decompressedSize])
	return err
}

func DecompressLZW(r io.Reader, dst []byte, compressedSize, decompressedSize uint16) error {
	lzwr := lzw.NewReader(io.LimitReader(r, int64(compressedSize)), lzw.LSB, 8)
	defer lzwr.Close()
	_, err := io.ReadFull(lzwr, dst[:decompressedSize])
	return err
}

func DecompressHuffman(r io.Reader, dst []byte, compressedSize, decompressedSize uint16) error {
	return huffman(io.LimitReader(r, int64(compressedSize)), dst[:decompressedSize])
}

// TODO: SCI01 LZW1 (method 1) and COMP3 (method 2).
func unsupported(io.Reader, []byte, uint16, uint16) error {
	return ErrUnsupportedCompression
}

var Decompressors = struct {
	SCI0  DecompressorLUT
	SCI01 DecompressorLUT
}{
	SCI0: DecompressorLUT{
		0: DecompressNone,
		1: DecompressLZW,
		2: DecompressHuffman,
	},
	SCI01: DecompressorLUT{
		0: DecompressNone,
		1: unsupported,
		2: unsupported,
		3: DecompressHuffman,
	},
}
