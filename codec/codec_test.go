package codec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type payload struct {
	Name string     `json:"name"`
	Pos  [2]float64 `json:"pos"`
}

func TestCodecs_RoundTrip(t *testing.T) {
	in := []payload{
		{Name: "a", Pos: [2]float64{1.5, -2.25}},
		{Name: "b", Pos: [2]float64{0, 3}},
	}

	for _, c := range []Codec{JSON{}, GoJSON{}} {
		t.Run(c.Name(), func(t *testing.T) {
			data, err := c.Marshal(in)
			require.NoError(t, err)

			var out []payload
			require.NoError(t, c.Unmarshal(data, &out))
			require.Equal(t, in, out)
		})
	}
}

func TestByName(t *testing.T) {
	for _, name := range []string{"json", "go-json"} {
		c, ok := ByName(name)
		require.True(t, ok)
		require.Equal(t, name, c.Name())
	}

	_, ok := ByName("msgpack")
	require.False(t, ok)
}

func TestCodecs_Compatible(t *testing.T) {
	// go-json output must stay decodable by encoding/json and vice
	// versa, since snapshots may be written and read with different
	// defaults.
	in := payload{Name: "x", Pos: [2]float64{7, 8}}

	data, err := GoJSON{}.Marshal(in)
	require.NoError(t, err)

	var out payload
	require.NoError(t, JSON{}.Unmarshal(data, &out))
	require.Equal(t, in, out)
}
