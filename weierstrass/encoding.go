package weierstrass

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"io"
	"math/big"

	bitstream "github.com/walterschell/go-bitstream"
)

const fingerprintBits = 256

func writeBigInt(writer io.Writer, value *big.Int) error {
	bytes := value.Bytes()
	sizeBytes := []byte{}
	sizeBytes = binary.AppendVarint(sizeBytes, int64(len(bytes)))
	_, err := writer.Write(sizeBytes)
	if err != nil {
		return err
	}

	_, err = writer.Write(bytes)
	if err != nil {
		return err
	}
	return nil
}

// Fingerprint computes a SHA-256 digest of the curve parameters. Serialized
// points embed it so that bytes produced under one curve are rejected when
// unmarshaled under another.
func Fingerprint[C Params]() []byte {
	var c C
	gx, gy := c.Generator()
	hash := sha256.New()
	writeBigInt(hash, c.FieldModulus())
	writeBigInt(hash, c.A())
	writeBigInt(hash, gx)
	writeBigInt(hash, gy)
	hash.Write([]byte(c.Name()))
	return hash.Sum(nil)
}

// Serialized width of one coordinate.
func coordinateBits[C Params]() uint {
	var c C
	return uint(c.FieldModulus().BitLen())
}

// MarshalBitstream serializes a point
// X coordinate + Y coordinate + curve fingerprint
// The point at infinity has no affine encoding.
func (p Point[C]) MarshalBitstream() (*bitstream.BitStream, error) {
	if p.IsInfinity() {
		return nil, fmt.Errorf("cannot marshal the point at infinity")
	}
	bits := coordinateBits[C]()
	result := &bitstream.BitStream{}
	result.AppendBigInt(p.x, bits)
	result.AppendBigInt(p.y, bits)
	result.AppendBigInt(new(big.Int).SetBytes(Fingerprint[C]()), fingerprintBits)
	return result, nil
}

// UnmarshalPoint decodes a point serialized with MarshalBitstream and
// sanity checks that it was produced for the curve C.
func UnmarshalPoint[C Params](bs *bitstream.BitStream) (Point[C], error) {
	bits := coordinateBits[C]()
	expected := 2*bits + fingerprintBits
	if bs.Size() != expected {
		return Infinity[C](), fmt.Errorf("invalid bitstream size for point (expected %d, got %d)", expected, bs.Size())
	}

	fingerprint := bs.BigIntAt(2*bits, fingerprintBits)
	if fingerprint.Cmp(new(big.Int).SetBytes(Fingerprint[C]())) != 0 {
		return Infinity[C](), fmt.Errorf("curve fingerprint does not match")
	}

	x := bs.BigIntAt(0, bits)
	y := bs.BigIntAt(bits, bits)
	return Point[C]{x: x, y: y}, nil
}
