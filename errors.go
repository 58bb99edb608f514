package kdgo

import "errors"

// Snapshot decoding errors. All of them indicate that the blob cannot be
// trusted as a kdgo snapshot; none of them is returned for an empty (but
// valid) tree.
var (
	// ErrInvalidMagic is returned when a blob does not start with the
	// kdgo snapshot magic number.
	ErrInvalidMagic = errors.New("kdgo: not a kdgo snapshot")

	// ErrInvalidVersion is returned when a snapshot was written by an
	// unsupported format version.
	ErrInvalidVersion = errors.New("kdgo: unsupported snapshot version")

	// ErrUnknownCodec is returned when the codec named in a snapshot
	// header is not registered.
	ErrUnknownCodec = errors.New("kdgo: unknown snapshot codec")

	// ErrUnknownCompression is returned when the compression byte in a
	// snapshot header is not recognized.
	ErrUnknownCompression = errors.New("kdgo: unknown snapshot compression")

	// ErrChecksum is returned when a snapshot's CRC32 does not match its
	// contents, i.e. the blob was corrupted or truncated.
	ErrChecksum = errors.New("kdgo: snapshot checksum mismatch")

	// ErrSnapshotTooShort is returned when a blob is smaller than the
	// fixed snapshot framing.
	ErrSnapshotTooShort = errors.New("kdgo: snapshot too short")
)
