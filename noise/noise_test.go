package noise

import (
	"strings"
	"testing"

	"github.com/harlequix/bitpipe/internal/bits"
)

func mustStream(t *testing.T, s string) *bits.Stream {
	t.Helper()
	stream, err := bits.FromString(s)
	if err != nil {
		t.Fatal(err)
	}
	return stream
}

func TestPureGivenSameArguments(t *testing.T) {
	stream := mustStream(t, strings.Repeat("1101001", 20))
	first := Inject(stream, 13, 77)
	second := Inject(stream, 13, 77)
	if !first.Equal(second) {
		t.Error("identical arguments gave different streams")
	}
}

func TestInputUntouched(t *testing.T) {
	original := strings.Repeat("10", 50)
	stream := mustStream(t, original)
	Inject(stream, 3, 1)
	if stream.String() != original {
		t.Error("input stream was mutated")
	}
}

func TestNoop(t *testing.T) {
	if out := Inject(bits.New(), 5, 1); out.Len() != 0 {
		t.Error("empty input should stay empty")
	}
	stream := mustStream(t, "110100")
	for _, interval := range []int{0, -1, -50} {
		if out := Inject(stream, interval, 1); !out.Equal(stream) {
			t.Errorf("interval %d should be a no-op", interval)
		}
	}
}

func TestIntervalOneFlipsEverything(t *testing.T) {
	stream := mustStream(t, "101010")
	out := Inject(stream, 1, 42)
	if out.String() != "010101" {
		t.Errorf("got %q", out.String())
	}
}

func TestFlipsFollowTheStride(t *testing.T) {
	interval := 7
	stream := mustStream(t, strings.Repeat("0", 100))
	out := Inject(stream, interval, 2024)

	flipped := []int{}
	for i := 0; i < out.Len(); i++ {
		if out.Bit(i) != stream.Bit(i) {
			flipped = append(flipped, i)
		}
	}
	if len(flipped) == 0 {
		t.Fatal("no bits flipped")
	}
	start := flipped[0]
	if start < 0 || start >= interval {
		t.Errorf("start offset %d outside [0,%d)", start, interval)
	}
	for i, pos := range flipped {
		if pos != start+i*interval {
			t.Errorf("flip %d at %d, want %d", i, pos, start+i*interval)
		}
	}
	if want := (stream.Len()-start+interval-1)/interval; len(flipped) != want {
		t.Errorf("%d flips, want %d", len(flipped), want)
	}
}
