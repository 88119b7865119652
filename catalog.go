package convolve

import "sort"

// DefaultKernelName is the catalog entry used when no kernel is requested.
const DefaultKernelName = "identity"

// Catalog is an immutable mapping from filter names to kernels.
//
// The catalog is collaborator glue: Convolve never sees it, only kernel
// values resolved from it.
type Catalog struct {
	kernels map[string]Kernel
}

// DefaultCatalog returns the built-in filter catalog.
func DefaultCatalog() *Catalog {
	return &Catalog{kernels: map[string]Kernel{
		DefaultKernelName: NewKernel([KernelDim][KernelDim]int{
			{0, 0, 0},
			{0, 1, 0},
			{0, 0, 0},
		}),
		"edge-detect": NewKernel([KernelDim][KernelDim]int{
			{-1, -1, -1},
			{-1, 8, -1},
			{-1, -1, -1},
		}),
		"sharpen": NewKernel([KernelDim][KernelDim]int{
			{0, -1, 0},
			{-1, 5, -1},
			{0, -1, 0},
		}),
		"emboss": NewKernel([KernelDim][KernelDim]int{
			{-2, -1, 0},
			{-1, 1, 1},
			{0, -2, 2},
		}),
		"gaussian-blur": NewKernel([KernelDim][KernelDim]int{
			{1, 2, 1},
			{2, 4, 2},
			{1, 2, 1},
		}),
	}}
}

// Lookup returns the kernel registered under name.
func (c *Catalog) Lookup(name string) (Kernel, bool) {
	k, ok := c.kernels[name]
	return k, ok
}

// Names returns the catalog's filter names in sorted order.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.kernels))
	for name := range c.kernels {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
