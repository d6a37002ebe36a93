package huffman

import (
	"errors"
	"strings"
	"testing"

	"github.com/harlequix/bitpipe/internal/bits"
	"github.com/harlequix/bitpipe/model"
)

func mustStream(t *testing.T, s string) *bits.Stream {
	t.Helper()
	stream, err := bits.FromString(s)
	if err != nil {
		t.Fatal(err)
	}
	return stream
}

func buildFor(t *testing.T, text string) (*Node, map[rune]string) {
	t.Helper()
	tree := BuildTree(model.Probabilities(text))
	return tree, DeriveCodes(tree)
}

func TestWorkedExample(t *testing.T) {
	tree, codes := buildFor(t, "aaab")
	if codes['a'] != "0" || codes['b'] != "1" {
		t.Fatalf("codes = %v", codes)
	}
	encoded, err := Encode("aaab", codes)
	if err != nil {
		t.Fatal(err)
	}
	if encoded.String() != "0001" {
		t.Errorf("encoded = %q", encoded.String())
	}
	if decoded := Decode(encoded, tree); decoded != "aaab" {
		t.Errorf("decoded = %q", decoded)
	}
}

func TestRoundTrip(t *testing.T) {
	cases := []string{
		"aabc",
		"hello world",
		"the quick brown fox jumps over the lazy dog",
		"ääüöß мир 世界\n\t",
		strings.Repeat("abacabad", 101),
	}
	for _, text := range cases {
		tree, codes := buildFor(t, text)
		encoded, err := Encode(text, codes)
		if err != nil {
			t.Fatalf("%q: %v", text, err)
		}
		if decoded := Decode(encoded, tree); decoded != text {
			t.Errorf("round trip of %q gave %q", text, decoded)
		}
	}
}

func TestPrefixFree(t *testing.T) {
	_, codes := buildFor(t, "abracadabra alakazam, such wonders of the east!")
	for symA, codeA := range codes {
		if codeA == "" {
			t.Fatalf("empty code for %q", symA)
		}
		for symB, codeB := range codes {
			if symA != symB && strings.HasPrefix(codeB, codeA) {
				t.Errorf("code %q of %q is a prefix of code %q of %q", codeA, symA, codeB, symB)
			}
		}
	}
}

func TestSingleSymbol(t *testing.T) {
	tree, codes := buildFor(t, "zzzz")
	if codes['z'] != "0" {
		t.Fatalf("lone symbol code = %q", codes['z'])
	}
	encoded, err := Encode("zzzz", codes)
	if err != nil {
		t.Fatal(err)
	}
	if encoded.String() != "0000" {
		t.Errorf("encoded = %q", encoded.String())
	}
	if decoded := Decode(encoded, tree); decoded != "zzzz" {
		t.Errorf("decoded = %q", decoded)
	}
}

func TestEmptyDistribution(t *testing.T) {
	tree := BuildTree(nil)
	if tree != nil {
		t.Error("expected nil tree")
	}
	if codes := DeriveCodes(tree); len(codes) != 0 {
		t.Errorf("codes = %v", codes)
	}
	encoded, err := Encode("", map[rune]string{})
	if err != nil {
		t.Fatal(err)
	}
	if encoded.Len() != 0 {
		t.Errorf("encoded %d bits", encoded.Len())
	}
	if decoded := Decode(encoded, tree); decoded != "" {
		t.Errorf("decoded = %q", decoded)
	}
}

func TestUnknownSymbol(t *testing.T) {
	_, codes := buildFor(t, "aabb")
	_, err := Encode("aabc", codes)
	if !errors.Is(err, ErrUnknownSymbol) {
		t.Errorf("expected ErrUnknownSymbol, got %v", err)
	}
}

// Equal weights must always resolve the same way: queue order follows the
// sequence numbers handed out at insertion, with leaves queued in sorted
// symbol order.
func TestTieBreakIsFixed(t *testing.T) {
	want := map[rune]string{'a': "11", 'b': "10", 'c': "01", 'd': "00"}
	for i := 0; i < 25; i++ {
		_, codes := buildFor(t, "abcd")
		for sym, code := range want {
			if codes[sym] != code {
				t.Fatalf("run %d: codes = %v", i, codes)
			}
		}
	}
}

// A dangling path at the end of the stream yields no symbol.
func TestTruncatedStreamDropsTail(t *testing.T) {
	tree, codes := buildFor(t, "aabc")
	encoded, err := Encode("aabc", codes)
	if err != nil {
		t.Fatal(err)
	}
	truncated := encoded.Clone()
	short := truncated.String()[:truncated.Len()-1]
	stream := mustStream(t, short)
	if decoded := Decode(stream, tree); decoded != "aab" {
		t.Errorf("decoded truncated stream to %q", decoded)
	}
}
