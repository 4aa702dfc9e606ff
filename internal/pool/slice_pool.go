package pool

import (
	"sync"

	"github.com/Stormrider66/toon/quant"
)

// landmarkSlicePool holds the running quantized state used while decoding.
var landmarkSlicePool = sync.Pool{
	New: func() any { return &[]quant.Landmark{} },
}

// GetLandmarkSlice retrieves and resizes a quantized landmark slice from the pool.
//
// The contents of the returned slice are unspecified. The caller must call the
// returned cleanup function to return the slice to the pool.
//
// Parameters:
//   - size: The desired length of the slice
//
// Returns:
//   - []quant.Landmark: A slice with length equal to size
//   - func(): Cleanup function, typically deferred
//
// Example:
//
//	state, cleanup := pool.GetLandmarkSlice(len(indices))
//	defer cleanup()
func GetLandmarkSlice(size int) ([]quant.Landmark, func()) {
	ptr, _ := landmarkSlicePool.Get().(*[]quant.Landmark)
	slice := (*ptr)[:0]

	if cap(slice) < size {
		slice = make([]quant.Landmark, size)
	} else {
		slice = slice[:size]
	}
	*ptr = slice

	return slice, func() { landmarkSlicePool.Put(ptr) }
}
