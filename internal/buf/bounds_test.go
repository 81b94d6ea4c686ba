package buf

import (
	"math"
	"testing"
)

func TestAddOverflowSafe(t *testing.T) {
	if sum, ok := AddOverflowSafe(10, 5); !ok || sum != 15 {
		t.Fatalf("AddOverflowSafe(10,5)=%d,%v want 15,true", sum, ok)
	}
	if _, ok := AddOverflowSafe(math.MaxInt, 1); ok {
		t.Fatalf("expected overflow when adding to MaxInt")
	}
	if _, ok := AddOverflowSafe(math.MinInt, -1); ok {
		t.Fatalf("expected underflow when subtracting from MinInt")
	}
}

func TestSlice(t *testing.T) {
	data := []byte{0, 1, 2, 3, 4}
	if got, ok := Slice(data, 1, 3); !ok || len(got) != 3 || got[0] != 1 || got[2] != 3 {
		t.Fatalf("Slice returned unexpected result: %v, %v", got, ok)
	}
	if _, ok := Slice(data, 4, 2); ok {
		t.Fatalf("Slice should fail when extending beyond len")
	}
	if got, ok := Slice(data, 5, 0); !ok || len(got) != 0 {
		t.Fatalf("Slice should allow an empty span at len")
	}

	if _, ok := Slice(data, -1, 1); ok {
		t.Fatalf("Slice should reject negative offset")
	}
	if _, ok := Slice(data, 1, -1); ok {
		t.Fatalf("Slice should reject negative length")
	}
}

func TestCheckSpan(t *testing.T) {
	tests := []struct {
		name    string
		bufLen  int
		offset  int
		n       int
		wantEnd int
		wantErr bool
	}{
		{"exact fit", 20, 8, 12, 20, false},
		{"empty span at end", 20, 20, 0, 20, false},
		{"one past end", 20, 9, 12, 0, true},
		{"negative offset", 20, -1, 4, 0, true},
		{"negative size", 20, 0, -4, 0, true},
		{"overflow", 20, math.MaxInt - 2, 12, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			end, err := CheckSpan(tt.bufLen, tt.offset, tt.n)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("CheckSpan(%d,%d,%d) expected error, got end=%d", tt.bufLen, tt.offset, tt.n, end)
				}
				return
			}
			if err != nil {
				t.Fatalf("CheckSpan: %v", err)
			}
			if end != tt.wantEnd {
				t.Fatalf("end=%d want %d", end, tt.wantEnd)
			}
		})
	}
}
