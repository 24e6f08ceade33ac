package base64

import (
	"encoding/base64"
	"github.com/pkg/errors"
	"strings"
)

// LineWidth is the MIME line length used by Wrap.
const LineWidth = 76

// ErrDecodeFailure is the cause of every error returned by DecodeStrict.
var ErrDecodeFailure = errors.New("base64: decode failure")

// Codec encodes and decodes base64 text. It has no mutable state and can be
// shared between goroutines.
type Codec struct {
	sink Sink
}

// Option configures a Codec.
type Option func(*Codec)

// WithSink sets the sink that receives decode failures.
func WithSink(s Sink) Option {
	return func(c *Codec) {
		c.sink = s
	}
}

// New returns a Codec. Without options failures are discarded.
func New(opts ...Option) *Codec {
	c := &Codec{}
	for _, opt := range opts {
		opt(c)
	}
	if c.sink == nil {
		c.sink = NopSink{}
	}
	return c
}

// Encode encodes data with the standard alphabet and = padding.
func (c *Codec) Encode(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

// EncodeURLSafe encodes data with the URL-safe alphabet. Padding is kept, so
// ToStd of the result is valid standard base64.
func (c *Codec) EncodeURLSafe(data []byte) string {
	return base64.URLEncoding.EncodeToString(data)
}

// Decode decodes standard base64 text. New line characters (\r and \n) are ignored.
// Malformed input yields an empty slice and the failure is recorded on the sink.
func (c *Codec) Decode(text string) []byte {
	dst, err := c.DecodeStrict(text)
	if err != nil {
		c.sink.Record(Event{Op: OpDecode, Input: text, Err: err})
		return []byte{}
	}
	return dst
}

// DecodeStrict decodes standard base64 text and reports malformed input as an
// error whose cause is ErrDecodeFailure.
func (c *Codec) DecodeStrict(text string) ([]byte, error) {
	dst, err := base64.StdEncoding.DecodeString(text)
	if err != nil {
		return nil, errors.Wrapf(ErrDecodeFailure, "call to base64.StdEncoding.DecodeString failed: %s", err)
	}
	return dst, nil
}

// DecodeURLSafe decodes URL-safe text, padded or not. Failures are handled like in Decode.
func (c *Codec) DecodeURLSafe(text string) []byte {
	dst, err := c.DecodeURLSafeStrict(text)
	if err != nil {
		c.sink.Record(Event{Op: OpDecodeURLSafe, Input: text, Err: err})
		return []byte{}
	}
	return dst
}

// DecodeURLSafeStrict is DecodeURLSafe returning the failure instead of recording it.
func (c *Codec) DecodeURLSafeStrict(text string) ([]byte, error) {
	s := strings.NewReplacer("\r", "", "\n", "").Replace(text)
	// base64 encoded strings must be a multiple of 4
	if m := len(s) % 4; m != 0 {
		s += strings.Repeat("=", 4-m)
	}
	dst, err := base64.URLEncoding.DecodeString(s)
	if err != nil {
		return nil, errors.Wrapf(ErrDecodeFailure, "call to base64.URLEncoding.DecodeString failed: %s", err)
	}
	return dst, nil
}

// Wrap breaks text into lines of at most width characters separated by \n.
func Wrap(text string, width int) string {
	if width <= 0 || len(text) <= width {
		return text
	}
	var b strings.Builder
	b.Grow(len(text) + len(text)/width)
	for len(text) > width {
		b.WriteString(text[:width])
		b.WriteByte('\n')
		text = text[width:]
	}
	b.WriteString(text)
	return b.String()
}

var (
	toStd     = strings.NewReplacer("-", "+", "_", "/")
	toURLSafe = strings.NewReplacer("+", "-", "/", "_")
)

// ToStd translates URL-safe text to the standard alphabet.
func ToStd(text string) string {
	return toStd.Replace(text)
}

// ToURLSafe translates standard text to the URL-safe alphabet.
func ToURLSafe(text string) string {
	return toURLSafe.Replace(text)
}

var std = New()

// Encode encodes data using the default codec.
func Encode(data []byte) string {
	return std.Encode(data)
}

// EncodeURLSafe encodes data using the default codec.
func EncodeURLSafe(data []byte) string {
	return std.EncodeURLSafe(data)
}

// Decode decodes text using the default codec, which discards failures.
func Decode(text string) []byte {
	return std.Decode(text)
}
