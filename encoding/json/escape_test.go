package json

import (
	"bytes"
	"testing"
)

func TestEscapeStringBytes(t *testing.T) {
	cases := map[string]struct {
		input  string
		expect string
	}{
		"plain": {
			input:  "queue-1",
			expect: `"queue-1"`,
		},
		"quote and backslash": {
			input:  `say "hi" \o/`,
			expect: `"say \"hi\" \\o/"`,
		},
		"control characters": {
			input:  "a\nb\tc\rd\x01",
			expect: `"a\nb\tc\rd\u0001"`,
		},
		"line separators": {
			input:  "x\u2028y\u2029z",
			expect: `"x\u2028y\u2029z"`,
		},
		"multibyte": {
			input:  "Grüße",
			expect: `"Grüße"`,
		},
		"invalid utf8": {
			input:  "a\xffb",
			expect: `"a\ufffdb"`,
		},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			escapeStringBytes(&buf, []byte(c.input))
			if e, a := c.expect, buf.String(); e != a {
				t.Errorf("expected %s, got %s", e, a)
			}
		})
	}
}

func TestEscapeObjectKey(t *testing.T) {
	jsonEncoder := NewEncoder()
	object := jsonEncoder.Object()

	object.Key("foo\"").String("bar")
	object.Key("faz").String("baz")
	object.Close()

	expected := []byte(`{"foo\"":"bar","faz":"baz"}`)
	actual := jsonEncoder.Bytes()
	if bytes.Compare(expected, actual) != 0 {
		t.Errorf("expected %+q, but got %+q", expected, actual)
	}
}
