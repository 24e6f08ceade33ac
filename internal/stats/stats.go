package stats

import (
	"bytes"
	"github.com/flow-lab/b64/pkg/base64"
	"strings"
	"text/template"
	"unicode/utf8"
)

const reportTemplate = "input bytes:    {{.InputBytes}}\n" +
	"input runes:    {{.InputRunes}}\n" +
	"encoded bytes:  {{.EncodedBytes}}\n" +
	"url-safe bytes: {{.URLSafeBytes}}\n" +
	"padding:        {{.Padding}}\n" +
	"ratio:          {{printf \"%.3f\" .Ratio}}\n" +
	"round trip:     {{.RoundTrip}}\n"

// Report compares the size of a text with the size of its base64 forms.
type Report struct {
	// The number of bytes of the input.
	InputBytes int `json:"inputBytes"`
	// The number of runes of the input, counting invalid UTF-8 bytes as one rune each.
	InputRunes int `json:"inputRunes"`
	// The number of bytes of the standard encoding.
	EncodedBytes int `json:"encodedBytes"`
	// The number of bytes of the URL-safe encoding.
	URLSafeBytes int `json:"urlSafeBytes"`
	// The number of = characters at the end of the encoding.
	Padding int `json:"padding"`
	// EncodedBytes / InputBytes, 0 for empty input.
	Ratio float64 `json:"ratio"`
	// Whether decoding both encodings gives back the input.
	RoundTrip bool `json:"roundTrip"`

	Encoded string `json:"encoded"`
	URLSafe string `json:"urlSafe"`
}

// Compare encodes text with c and sums up the sizes.
func Compare(c *base64.Codec, text []byte) *Report {
	enc := c.Encode(text)
	urlSafe := c.EncodeURLSafe(text)

	var ratio float64
	if len(text) != 0 {
		ratio = float64(len(enc)) / float64(len(text))
	}

	return &Report{
		InputBytes:   len(text),
		InputRunes:   utf8.RuneCount(text),
		EncodedBytes: len(enc),
		URLSafeBytes: len(urlSafe),
		Padding:      len(enc) - len(strings.TrimRight(enc, "=")),
		Ratio:        ratio,
		RoundTrip:    bytes.Equal(c.Decode(enc), text) && bytes.Equal(c.Decode(base64.ToStd(urlSafe)), text),
		Encoded:      enc,
		URLSafe:      urlSafe,
	}
}

// Render returns the text representation of r.
func Render(r *Report) (string, error) {
	t, err := template.New("report").Parse(reportTemplate)
	if err != nil {
		return "", err
	}
	var b bytes.Buffer
	err = t.ExecuteTemplate(&b, "report", r)
	return b.String(), err
}
