package registry_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lutgrid/interp"
	"github.com/katalvlaran/lutgrid/registry"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

// TestConcurrentRegisterLookup registers from many goroutines while others
// query, then checks every handle is unique and resolves to its own table.
func TestConcurrentRegisterLookup(t *testing.T) {
	r := registry.New()
	seed, err := r.Register(mustLine(t, 0, 2))
	require.NoError(t, err)

	const writers = 64
	handles := make([]registry.Handle, writers)
	var eg errgroup.Group

	for i := 0; i < writers; i++ {
		eg.Go(func() error {
			ip, err := interp.Build([][]float64{{0, 1}}, [][]float64{{float64(i), float64(i)}})
			if err != nil {
				return err
			}
			h, err := r.Register(ip)
			if err != nil {
				return err
			}
			handles[i] = h
			return nil
		})

		eg.Go(func() error {
			v, err := r.Interpolate(seed, []float64{0.5}, false)
			if err != nil {
				return err
			}
			if len(v) != 1 || v[0] != 1 {
				return fmt.Errorf("seed(0.5) = %v, want [1]", v)
			}
			return nil
		})
	}
	require.NoError(t, eg.Wait())

	seen := make(map[registry.Handle]bool, writers)
	for id, h := range handles {
		require.False(t, seen[h], "handle %d issued twice", h)
		seen[h] = true

		v, err := r.Interpolate(h, []float64{0.25}, true)
		require.NoError(t, err)
		require.Equal(t, []float64{float64(id)}, v)
	}
	require.Equal(t, writers+1, r.Len())
}
