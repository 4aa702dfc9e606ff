// Package pool provides sync.Pool backed scratch buffers for the codec hot paths.
package pool
