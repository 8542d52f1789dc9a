package opentype

import (
	"math"
	"testing"
)

func TestPairKerner_Sentinels(t *testing.T) {
	k := NewPairKerner()
	source := newTestSource(t)

	if got := k.Kern(nil, 'A', 'V', 24); got != 0 {
		t.Errorf("Kern(nil source) = %v, want 0", got)
	}
	if got := k.Kern(source, 0, 'V', 24); got != 0 {
		t.Errorf("Kern(prev 0) = %v, want 0", got)
	}
	if got := k.Kern(source, 'A', 0, 24); got != 0 {
		t.Errorf("Kern(cur 0) = %v, want 0", got)
	}
	if got := k.Kern(source, 'A', 'V', 0); got != 0 {
		t.Errorf("Kern(size 0) = %v, want 0", got)
	}
}

func TestPairKerner_Deterministic(t *testing.T) {
	k := NewPairKerner()
	source := newTestSource(t)

	first := k.Kern(source, 'A', 'V', 24)
	second := k.Kern(source, 'A', 'V', 24)

	if first != second {
		t.Errorf("kern not deterministic: %v != %v", first, second)
	}
}

func TestPairKerner_SaneMagnitude(t *testing.T) {
	k := NewPairKerner()
	source := newTestSource(t)

	// A kerning adjustment is a fraction of an advance, never anywhere
	// near a full character size.
	for _, pair := range [][2]rune{{'A', 'V'}, {'T', 'o'}, {'a', 'b'}} {
		got := k.Kern(source, pair[0], pair[1], 24)
		if math.Abs(got) >= 24 {
			t.Errorf("Kern(%c, %c) = %v, implausibly large", pair[0], pair[1], got)
		}
	}
}

func TestPairKerner_UnkernedPairIsZero(t *testing.T) {
	k := NewPairKerner()
	source := newTestSource(t)

	// Digits carry no pair kerning in tabular fonts like Go Regular.
	if got := k.Kern(source, '0', '1', 24); got != 0 {
		t.Errorf("Kern('0', '1') = %v, want 0", got)
	}
}

func TestPairKerner_CacheLifecycle(t *testing.T) {
	k := NewPairKerner()
	source := newTestSource(t)

	before := k.Kern(source, 'A', 'V', 24)
	k.RemoveSource(source)
	after := k.Kern(source, 'A', 'V', 24)
	if before != after {
		t.Errorf("kern changed after RemoveSource: %v != %v", before, after)
	}

	k.ClearCache()
	if got := k.Kern(source, 'A', 'V', 24); got != before {
		t.Errorf("kern changed after ClearCache: %v != %v", got, before)
	}
}

func TestFontSource_WithKerner(t *testing.T) {
	k := NewPairKerner()
	source := newTestSource(t, WithKerner(k))

	direct := k.Kern(source, 'A', 'V', 24)
	viaSource := source.Kerning('A', 'V', 24)

	if direct != viaSource {
		t.Errorf("source kerning %v differs from kerner result %v", viaSource, direct)
	}
}
