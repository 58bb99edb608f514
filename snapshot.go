package kdgo

import (
	"bytes"
	"context"
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"io"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/hupe1980/kdgo/blobstore"
	"github.com/hupe1980/kdgo/codec"
)

// Snapshot layout, little endian:
//
//	magic       uint32  "KDGO"
//	version     uint32
//	compression uint8
//	codecLen    uint8
//	reserved    [6]byte
//	codecName   [codecLen]byte
//	payload     (compressed, codec-encoded backing sequence)
//	crc32       uint32  (IEEE, over everything before it)
//
// A snapshot is nothing but the tree's backing sequence; the k-d layout
// is preserved by preserving the order.
const (
	snapshotMagic   = 0x4b44474f // "KDGO"
	snapshotVersion = 1

	snapshotHeaderSize  = 16
	snapshotTrailerSize = 4
)

// Compression selects how snapshot payloads are compressed.
type Compression uint8

const (
	// CompressionNone stores the payload as-is.
	CompressionNone Compression = 0
	// CompressionLZ4 is fast with a moderate ratio.
	CompressionLZ4 Compression = 1
	// CompressionZSTD trades some speed for a better ratio.
	CompressionZSTD Compression = 2
)

func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionLZ4:
		return "lz4"
	case CompressionZSTD:
		return "zstd"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(c))
	}
}

// SnapshotOptions contains configuration options for Save and Load.
type SnapshotOptions struct {
	// Codec encodes the backing sequence. Defaults to codec.Default.
	// Load ignores this and selects the codec named in the header.
	Codec codec.Codec

	// Compression for the payload. Defaults to CompressionZSTD.
	// Load ignores this and honors the header.
	Compression Compression

	// Logger receives debug-level records about snapshot IO.
	// Defaults to a silent logger.
	Logger *Logger
}

// DefaultSnapshotOptions contains the default configuration options for
// Save and Load.
var DefaultSnapshotOptions = SnapshotOptions{
	Codec:       nil,
	Compression: CompressionZSTD,
	Logger:      nil,
}

// WithCodec configures the codec used to encode the backing sequence.
func WithCodec(c codec.Codec) func(*SnapshotOptions) {
	return func(o *SnapshotOptions) {
		o.Codec = c
	}
}

// WithCompression configures the payload compression.
func WithCompression(c Compression) func(*SnapshotOptions) {
	return func(o *SnapshotOptions) {
		o.Compression = c
	}
}

// WithLogger configures a logger for snapshot IO.
func WithLogger(l *Logger) func(*SnapshotOptions) {
	return func(o *SnapshotOptions) {
		o.Logger = l
	}
}

func resolveSnapshotOptions(optFns []func(*SnapshotOptions)) SnapshotOptions {
	opts := DefaultSnapshotOptions
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Codec == nil {
		opts.Codec = codec.Default
	}
	if opts.Logger == nil {
		opts.Logger = NewNopLogger()
	}
	return opts
}

// Save writes the tree's backing sequence to the store as a
// self-describing snapshot blob.
func Save[P Point[P], O Object[P]](ctx context.Context, store blobstore.Store, name string, tree *KdTree[P, O], optFns ...func(*SnapshotOptions)) error {
	opts := resolveSnapshotOptions(optFns)

	payload, err := opts.Codec.Marshal(tree.Objects())
	if err != nil {
		return fmt.Errorf("kdgo: encode snapshot: %w", err)
	}

	compressed, err := compressPayload(payload, opts.Compression)
	if err != nil {
		return fmt.Errorf("kdgo: compress snapshot: %w", err)
	}

	codecName := opts.Codec.Name()
	if len(codecName) > 255 {
		return fmt.Errorf("kdgo: codec name too long: %q", codecName)
	}

	buf := make([]byte, 0, snapshotHeaderSize+len(codecName)+len(compressed)+snapshotTrailerSize)
	var header [snapshotHeaderSize]byte
	binary.LittleEndian.PutUint32(header[0:], snapshotMagic)
	binary.LittleEndian.PutUint32(header[4:], snapshotVersion)
	header[8] = uint8(opts.Compression)
	header[9] = uint8(len(codecName))
	buf = append(buf, header[:]...)
	buf = append(buf, codecName...)
	buf = append(buf, compressed...)
	buf = binary.LittleEndian.AppendUint32(buf, crc32.ChecksumIEEE(buf))

	if err := store.Put(ctx, name, buf); err != nil {
		return fmt.Errorf("kdgo: write snapshot: %w", err)
	}

	opts.Logger.DebugContext(ctx, "snapshot written",
		"name", name,
		"objects", tree.Len(),
		"codec", codecName,
		"compression", opts.Compression.String(),
		"bytes", len(buf),
	)

	return nil
}

// Load reads a snapshot blob and wraps the decoded sequence as a tree.
//
// The decoded order is trusted to satisfy the k-d layout, exactly like
// FromOrdered; snapshots from untrusted sources carry the same silent
// invariant-violation risk.
func Load[P Point[P], O Object[P]](ctx context.Context, store blobstore.Store, name string, optFns ...func(*SnapshotOptions)) (*KdTree[P, O], error) {
	opts := resolveSnapshotOptions(optFns)

	blob, err := store.Open(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("kdgo: open snapshot: %w", err)
	}
	defer blob.Close()

	data, err := blobstore.Bytes(blob)
	if err != nil {
		return nil, fmt.Errorf("kdgo: read snapshot: %w", err)
	}

	payload, c, err := decodeSnapshot(data)
	if err != nil {
		return nil, err
	}

	var objects []O
	if err := c.Unmarshal(payload, &objects); err != nil {
		return nil, fmt.Errorf("kdgo: decode snapshot: %w", err)
	}

	opts.Logger.DebugContext(ctx, "snapshot loaded",
		"name", name,
		"objects", len(objects),
		"codec", c.Name(),
	)

	return FromOrdered[P](objects), nil
}

// decodeSnapshot validates the framing and returns the decompressed
// payload together with the codec recorded in the header.
func decodeSnapshot(data []byte) ([]byte, codec.Codec, error) {
	if len(data) < snapshotHeaderSize+snapshotTrailerSize {
		return nil, nil, ErrSnapshotTooShort
	}

	if binary.LittleEndian.Uint32(data[0:]) != snapshotMagic {
		return nil, nil, ErrInvalidMagic
	}
	if binary.LittleEndian.Uint32(data[4:]) != snapshotVersion {
		return nil, nil, ErrInvalidVersion
	}

	body := data[:len(data)-snapshotTrailerSize]
	sum := binary.LittleEndian.Uint32(data[len(data)-snapshotTrailerSize:])
	if crc32.ChecksumIEEE(body) != sum {
		return nil, nil, ErrChecksum
	}

	compression := Compression(data[8])
	codecLen := int(data[9])
	if len(body) < snapshotHeaderSize+codecLen {
		return nil, nil, ErrSnapshotTooShort
	}

	codecName := string(body[snapshotHeaderSize : snapshotHeaderSize+codecLen])
	c, ok := codec.ByName(codecName)
	if !ok {
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownCodec, codecName)
	}

	payload, err := decompressPayload(body[snapshotHeaderSize+codecLen:], compression)
	if err != nil {
		return nil, nil, err
	}

	return payload, c, nil
}

func compressPayload(data []byte, compression Compression) ([]byte, error) {
	switch compression {
	case CompressionNone:
		return data, nil

	case CompressionLZ4:
		var buf bytes.Buffer
		zw := lz4.NewWriter(&buf)
		if _, err := zw.Write(data); err != nil {
			return nil, err
		}
		if err := zw.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil

	case CompressionZSTD:
		enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			return nil, err
		}
		defer enc.Close()
		return enc.EncodeAll(data, nil), nil

	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownCompression, uint8(compression))
	}
}

func decompressPayload(data []byte, compression Compression) ([]byte, error) {
	switch compression {
	case CompressionNone:
		return data, nil

	case CompressionLZ4:
		return io.ReadAll(lz4.NewReader(bytes.NewReader(data)))

	case CompressionZSTD:
		dec, err := zstd.NewReader(nil)
		if err != nil {
			return nil, err
		}
		defer dec.Close()
		return dec.DecodeAll(data, nil)

	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownCompression, uint8(compression))
	}
}
