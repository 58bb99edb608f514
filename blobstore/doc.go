// Package blobstore provides storage abstraction for kdgo snapshots.
//
// Store is the interface for reading and writing immutable data blobs.
// Implementations must be safe for concurrent use.
//
// # Built-in Implementations
//
//   - LocalStore: local filesystem, memory-mapped reads
//   - MemoryStore: in-process map, mainly for tests
//   - minio.Store: MinIO / S3-compatible object storage
//
// # Custom Implementations
//
// Implement the Store interface to support other backends. Blobs whose
// content is already resident in memory should additionally implement
// Mappable so readers can decode without copying.
package blobstore
