package codec

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByName(t *testing.T) {
	for _, name := range Names() {
		c, ok := ByName(name)
		require.True(t, ok, name)
		assert.Equal(t, name, c.Name())
	}
	_, ok := ByName("gob")
	assert.False(t, ok)
}

func TestCodecs_Interchangeable(t *testing.T) {
	in := benchPayload()
	for _, enc := range []Codec{JSON{}, GoJSON{}} {
		for _, dec := range []Codec{JSON{}, GoJSON{}} {
			data, err := enc.Marshal(in)
			require.NoError(t, err)

			var out benchMultivector
			require.NoError(t, dec.Unmarshal(data, &out))
			assert.Equal(t, in, out, "%s -> %s", enc.Name(), dec.Name())
		}
	}
}

func TestCodecs_NonFinite(t *testing.T) {
	in := benchMultivector{Signature: "Cl(1,0,0)", Coefficients: []float64{math.Inf(1), 0}}
	for _, c := range []Codec{JSON{}, GoJSON{}} {
		_, err := c.Marshal(in)
		assert.Error(t, err, c.Name())
	}
}

func TestMustMarshal_Panics(t *testing.T) {
	assert.Panics(t, func() { MustMarshal(nil, make(chan int)) })
}

func TestGoJSON_MarshalIndent(t *testing.T) {
	data, err := GoJSON{}.MarshalIndent(map[string]int{"a": 1}, "", "  ")
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"a\": 1\n}", string(data))
}
