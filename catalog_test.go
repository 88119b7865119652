package convolve

import (
	"sort"
	"testing"
)

func TestDefaultCatalogEntries(t *testing.T) {
	tests := []struct {
		name    string
		weights [KernelDim][KernelDim]int
		norm    int
	}{
		{
			name: "identity",
			weights: [KernelDim][KernelDim]int{
				{0, 0, 0},
				{0, 1, 0},
				{0, 0, 0},
			},
			norm: 1,
		},
		{
			name: "edge-detect",
			weights: [KernelDim][KernelDim]int{
				{-1, -1, -1},
				{-1, 8, -1},
				{-1, -1, -1},
			},
			norm: 1,
		},
		{
			name: "sharpen",
			weights: [KernelDim][KernelDim]int{
				{0, -1, 0},
				{-1, 5, -1},
				{0, -1, 0},
			},
			norm: 1,
		},
		{
			name: "emboss",
			weights: [KernelDim][KernelDim]int{
				{-2, -1, 0},
				{-1, 1, 1},
				{0, -2, 2},
			},
			norm: 1,
		},
		{
			name: "gaussian-blur",
			weights: [KernelDim][KernelDim]int{
				{1, 2, 1},
				{2, 4, 2},
				{1, 2, 1},
			},
			norm: 16,
		},
	}

	catalog := DefaultCatalog()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k, ok := catalog.Lookup(tt.name)
			if !ok {
				t.Fatalf("Lookup(%q) missing", tt.name)
			}
			if got := k.Norm(); got != tt.norm {
				t.Errorf("Norm() = %d, want %d", got, tt.norm)
			}
			for r := 0; r < KernelDim; r++ {
				for c := 0; c < KernelDim; c++ {
					if got := k.Weight(r, c); got != tt.weights[r][c] {
						t.Errorf("Weight(%d, %d) = %d, want %d", r, c, got, tt.weights[r][c])
					}
				}
			}
		})
	}
}

func TestCatalogLookupMiss(t *testing.T) {
	if _, ok := DefaultCatalog().Lookup("no-such-kernel"); ok {
		t.Error("Lookup of unknown name should report false")
	}
}

func TestCatalogDefaultNamePresent(t *testing.T) {
	if _, ok := DefaultCatalog().Lookup(DefaultKernelName); !ok {
		t.Errorf("default kernel %q missing from catalog", DefaultKernelName)
	}
}

func TestCatalogNamesSorted(t *testing.T) {
	names := DefaultCatalog().Names()
	if len(names) != 5 {
		t.Fatalf("Names() returned %d entries, want 5", len(names))
	}
	if !sort.StringsAreSorted(names) {
		t.Errorf("Names() = %v, want sorted order", names)
	}
}
