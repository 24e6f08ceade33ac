package stats

import (
	"github.com/flow-lab/b64/pkg/base64"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestCompare(t *testing.T) {
	c := base64.New()

	t.Run("Should count multi-byte characters", func(t *testing.T) {
		// three bytes per CJK character and full-width punctuation, one per ASCII
		r := Compare(c, []byte("可以，uu#$"))

		assert.Equal(t, 13, r.InputBytes)
		assert.Equal(t, 7, r.InputRunes)
		assert.Equal(t, 20, r.EncodedBytes)
		assert.Equal(t, 20, r.URLSafeBytes)
		assert.Equal(t, 2, r.Padding)
		assert.InDelta(t, 20.0/13.0, r.Ratio, 1e-9)
		assert.True(t, r.RoundTrip)
	})

	t.Run("Should handle empty input", func(t *testing.T) {
		r := Compare(c, nil)

		assert.Equal(t, 0, r.InputBytes)
		assert.Equal(t, 0, r.EncodedBytes)
		assert.Equal(t, 0, r.Padding)
		assert.Equal(t, float64(0), r.Ratio)
		assert.True(t, r.RoundTrip)
	})

	t.Run("Should report url-safe symbols", func(t *testing.T) {
		r := Compare(c, []byte{0xfb, 0xff})

		assert.Equal(t, "+/8=", r.Encoded)
		assert.Equal(t, "-_8=", r.URLSafe)
		assert.Equal(t, 1, r.Padding)
		assert.True(t, r.RoundTrip)
	})
}

func TestRender(t *testing.T) {
	text, err := Render(Compare(base64.New(), []byte("ABCD")))

	assert.Nil(t, err)
	expected := "input bytes:    4\n" +
		"input runes:    4\n" +
		"encoded bytes:  8\n" +
		"url-safe bytes: 8\n" +
		"padding:        2\n" +
		"ratio:          2.000\n" +
		"round trip:     true\n"
	assert.Equal(t, expected, text)
}
