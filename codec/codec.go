// Package codec centralizes the encoding of snapshot payloads.
//
// A kdgo snapshot is exactly the encoded backing sequence of a tree, so
// the codec fully determines the byte layout. Snapshots store the codec
// name in their header; changing the default codec never breaks reading
// existing snapshots, since the codec is selected by name on load.
package codec

// Codec encodes/decodes values.
// Implementations must be safe for concurrent use.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

var (
	_ Codec = JSON{}
	_ Codec = GoJSON{}
)

// ByName returns a built-in codec by its stable name.
//
// This is how snapshots resolve the codec recorded in their header.
func ByName(name string) (Codec, bool) {
	switch name {
	case "json":
		return JSON{}, true
	case "go-json":
		return GoJSON{}, true
	default:
		return nil, false
	}
}

// Default is the codec used when none is configured.
//
// This only affects newly written snapshots; existing snapshots are
// self-describing and select their codec by name.
var Default Codec = GoJSON{}
