package hashtable_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/lvsearch/hashtable"
)

var (
	_ hashtable.Table[string, int] = (*hashtable.Open[string, int])(nil)
	_ hashtable.Table[string, int] = (*hashtable.Chained[string, int])(nil)
)

// TestLinear_ConstructionErrors covers capacity and hasher preconditions.
func TestLinear_ConstructionErrors(t *testing.T) {
	_, err := hashtable.NewLinear[string, int](hashtable.Comparable[string](), 1)
	assert.ErrorIs(t, err, hashtable.ErrCapacityTooSmall)

	_, err = hashtable.NewLinear[string, int](nil, 8)
	assert.ErrorIs(t, err, hashtable.ErrNilHasher)

	_, err = hashtable.NewLinear[string, int](hashtable.Comparable[string](), 8, hashtable.WithLoadFactor(1.5))
	assert.ErrorIs(t, err, hashtable.ErrOptionViolation)

	_, err = hashtable.NewLinear[string, int](hashtable.Comparable[string](), 8,
		hashtable.WithLoadFactor(0.5), hashtable.WithShrinkFactor(0.3))
	assert.ErrorIs(t, err, hashtable.ErrOptionViolation)
}

// TestTriangular_RequiresPowerOfTwo rejects capacities that are not 2^k.
func TestTriangular_RequiresPowerOfTwo(t *testing.T) {
	_, err := hashtable.NewTriangular[int, int](hashtable.Comparable[int](), 12)
	assert.ErrorIs(t, err, hashtable.ErrNotPowerOfTwo)

	tbl, err := hashtable.NewTriangular[int, int](hashtable.Comparable[int](), 16)
	require.NoError(t, err)
	assert.Equal(t, 16, tbl.Capacity())
}

// TestLinear_CollidingKeysProbeForward places three keys hashing to slot 3
// into slots 3, 4 and 5 of a capacity-10 table.
func TestLinear_CollidingKeysProbeForward(t *testing.T) {
	tbl, err := hashtable.NewLinear[string, string](hashtable.ConstantHasher[string](3), 10)
	require.NoError(t, err)

	for _, k := range []string{"a", "b", "c"} {
		require.NoError(t, tbl.Put(k, k))
	}
	for i, k := range []string{"a", "b", "c"} {
		v, ok := tbl.Get(k)
		assert.True(t, ok)
		assert.Equal(t, k, v)
		assert.Equal(t, 3+i, tbl.SlotOf(k))
	}
	assert.Equal(t, 3, tbl.Stats().LongestRun)
}

// TestLinear_HasherFunc places keys at their hash modulo capacity.
func TestLinear_HasherFunc(t *testing.T) {
	h := hashtable.HasherFunc[int](func(k int) uint64 { return uint64(3 * k) })
	tbl, err := hashtable.NewLinear[int, string](h, 8)
	require.NoError(t, err)

	require.NoError(t, tbl.Put(1, "one"))
	require.NoError(t, tbl.Put(2, "two"))
	assert.Equal(t, 3, tbl.SlotOf(1))
	assert.Equal(t, 6, tbl.SlotOf(2))
	assert.True(t, h.Equal(4, 4))
}

// TestTriangular_ProbeOffsets checks the 0, 1, 3, 6 offset sequence.
func TestTriangular_ProbeOffsets(t *testing.T) {
	tbl, err := hashtable.NewTriangular[int, int](hashtable.ConstantHasher[int](2), 16)
	require.NoError(t, err)
	for k := 0; k < 4; k++ {
		require.NoError(t, tbl.Put(k, k))
	}
	assert.Equal(t, []int{2, 3, 5, 8}, []int{tbl.SlotOf(0), tbl.SlotOf(1), tbl.SlotOf(2), tbl.SlotOf(3)})
}

// TestOpen_RemoveKeepsProbeChain ensures a tombstone does not hide keys
// further along the same probe run.
func TestOpen_RemoveKeepsProbeChain(t *testing.T) {
	for name, ctor := range openCtors() {
		t.Run(name, func(t *testing.T) {
			tbl, err := ctor(hashtable.ConstantHasher[string](1), 16)
			require.NoError(t, err)
			require.NoError(t, tbl.Put("x", 1))
			require.NoError(t, tbl.Put("y", 2))
			require.NoError(t, tbl.Put("z", 3))

			v, ok := tbl.Remove("y")
			assert.True(t, ok)
			assert.Equal(t, 2, v)

			got, ok := tbl.Get("z")
			assert.True(t, ok)
			assert.Equal(t, 3, got)

			_, ok = tbl.Remove("y")
			assert.False(t, ok, "second removal must report absent")
			_, ok = tbl.Remove("never")
			assert.False(t, ok)
			assert.Equal(t, 2, tbl.Len())
			assert.Equal(t, 1, tbl.Stats().Tombstones)

			// a new key reuses the tombstone
			require.NoError(t, tbl.Put("w", 4))
			assert.Equal(t, 0, tbl.Stats().Tombstones)
			assert.Equal(t, 3, tbl.Len())
		})
	}
}

// TestOpen_OverwriteInPlace keeps Len stable on duplicate puts.
func TestOpen_OverwriteInPlace(t *testing.T) {
	tbl, err := hashtable.NewLinear[string, int](hashtable.Comparable[string](), 4)
	require.NoError(t, err)
	require.NoError(t, tbl.Put("k", 1))
	require.NoError(t, tbl.Put("k", 2))
	v, _ := tbl.Get("k")
	assert.Equal(t, 2, v)
	assert.Equal(t, 1, tbl.Len())
}

// TestOpen_FixedCapacityExhausted leaves one slot empty and refuses the put
// that would fill it, without mutating the table.
func TestOpen_FixedCapacityExhausted(t *testing.T) {
	tbl, err := hashtable.NewLinear[int, int](hashtable.Comparable[int](), 4, hashtable.WithFixedCapacity())
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		require.NoError(t, tbl.Put(i, i))
	}
	err = tbl.Put(99, 99)
	assert.ErrorIs(t, err, hashtable.ErrCapacityExhausted)
	assert.Equal(t, 3, tbl.Len())
	assert.False(t, tbl.Contains(99))
	assert.Equal(t, 4, tbl.Capacity())

	// overwriting an existing key still works
	require.NoError(t, tbl.Put(1, 100))
	v, _ := tbl.Get(1)
	assert.Equal(t, 100, v)
}

// TestOpen_GrowAndShrinkPreserveContents drives the table through several
// resizes and compares against a reference map after every step.
func TestOpen_GrowAndShrinkPreserveContents(t *testing.T) {
	for name, ctor := range openCtors() {
		t.Run(name, func(t *testing.T) {
			tbl, err := ctor(hashtable.Comparable[string](), 4)
			require.NoError(t, err)
			ref := make(map[string]int)
			rng := rand.New(rand.NewSource(7))

			for i := 0; i < 2000; i++ {
				k := fmt.Sprintf("k%d", rng.Intn(300))
				if rng.Intn(3) == 0 {
					v, ok := tbl.Remove(k)
					rv, rok := ref[k]
					assert.Equal(t, rok, ok)
					assert.Equal(t, rv, v)
					delete(ref, k)
					continue
				}
				require.NoError(t, tbl.Put(k, i))
				ref[k] = i
			}
			assertSameContents(t, ref, tbl)

			st := tbl.Stats()
			assert.Greater(t, st.Resizes, 0)
			assert.Less(t, st.Len+st.Tombstones, st.Capacity)

			// drain and watch it shrink back
			for k := range ref {
				_, ok := tbl.Remove(k)
				require.True(t, ok)
			}
			assert.Equal(t, 0, tbl.Len())
			assert.LessOrEqual(t, tbl.Capacity(), 8)
		})
	}
}

// TestOpen_GrowsWhenThresholdReached pins the capacity around the put that
// brings live+tombstones to LoadFactor·M.
func TestOpen_GrowsWhenThresholdReached(t *testing.T) {
	lin, err := hashtable.NewLinear[int, int](hashtable.Comparable[int](), 4)
	require.NoError(t, err)
	require.NoError(t, lin.Put(1, 1))
	require.NoError(t, lin.Put(2, 2))
	assert.Equal(t, 4, lin.Capacity())
	require.NoError(t, lin.Put(3, 3)) // 3 >= 0.75·4
	assert.Equal(t, 9, lin.Capacity())
	assert.Equal(t, 1, lin.Stats().Resizes)

	tri, err := hashtable.NewTriangular[int, int](hashtable.Comparable[int](), 8)
	require.NoError(t, err)
	for k := 0; k < 5; k++ {
		require.NoError(t, tri.Put(k, k))
	}
	assert.Equal(t, 8, tri.Capacity())
	require.NoError(t, tri.Put(5, 5)) // 6 >= 0.75·8
	assert.Equal(t, 16, tri.Capacity())
	assert.Equal(t, 1, tri.Stats().Resizes)
}

// TestLinear_TombstonesCountTowardThreshold grows on the put that makes
// live+tombstones reach the threshold even though few keys are live.
func TestLinear_TombstonesCountTowardThreshold(t *testing.T) {
	identity := hashtable.HasherFunc[int](func(k int) uint64 { return uint64(k) })
	tbl, err := hashtable.NewLinear[int, int](identity, 8)
	require.NoError(t, err)
	for k := 0; k < 5; k++ {
		require.NoError(t, tbl.Put(k, k))
	}
	tbl.Remove(0)
	tbl.Remove(1)
	st := tbl.Stats()
	require.Equal(t, 8, st.Capacity)
	require.Equal(t, 2, st.Tombstones)

	require.NoError(t, tbl.Put(5, 5)) // 3 live + 2 tombstones + 1 >= 6
	st = tbl.Stats()
	assert.Equal(t, 17, st.Capacity)
	assert.Equal(t, 0, st.Tombstones)
	assert.Equal(t, 4, st.Len)
}

// TestLinear_ShrinkTargetIsOdd checks the odd-size normalisation of shrinks.
func TestLinear_ShrinkTargetIsOdd(t *testing.T) {
	tbl, err := hashtable.NewLinear[int, int](hashtable.Comparable[int](), 3)
	require.NoError(t, err)
	for i := 0; i < 40; i++ {
		require.NoError(t, tbl.Put(i, i))
	}
	grown := tbl.Capacity()
	for i := 0; i < 38; i++ {
		tbl.Remove(i)
	}
	assert.Less(t, tbl.Capacity(), grown)
	assert.Equal(t, 1, tbl.Capacity()%2)
	for i := 38; i < 40; i++ {
		v, ok := tbl.Get(i)
		assert.True(t, ok)
		assert.Equal(t, i, v)
	}
}

// TestOpen_ResizeIsLogged verifies resize events reach the injected logger.
func TestOpen_ResizeIsLogged(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	tbl, err := hashtable.NewLinear[int, int](hashtable.Comparable[int](), 2, hashtable.WithLogger(zap.New(core)))
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		require.NoError(t, tbl.Put(i, i))
	}
	entries := logs.FilterMessage("hashtable: resized").All()
	require.NotEmpty(t, entries)
	assert.Equal(t, "linear", entries[0].ContextMap()["kind"])
}

// TestOpen_AllAndClear iterates live entries only and resets capacity.
func TestOpen_AllAndClear(t *testing.T) {
	tbl, err := hashtable.NewTriangular[string, int](hashtable.Comparable[string](), 8)
	require.NoError(t, err)
	require.NoError(t, tbl.Put("a", 1))
	require.NoError(t, tbl.Put("b", 2))
	require.NoError(t, tbl.Put("c", 3))
	tbl.Remove("b")

	got := map[string]int{}
	for k, v := range tbl.All() {
		got[k] = v
	}
	assert.Equal(t, map[string]int{"a": 1, "c": 3}, got)
	assert.ElementsMatch(t, []string{"a", "c"}, tbl.Keys())

	tbl.Clear()
	assert.Equal(t, 0, tbl.Len())
	assert.Equal(t, 8, tbl.Capacity())
}

type openCtor func(h hashtable.Hasher[string], capacity int) (*hashtable.Open[string, int], error)

func openCtors() map[string]openCtor {
	return map[string]openCtor{
		"linear": func(h hashtable.Hasher[string], c int) (*hashtable.Open[string, int], error) {
			return hashtable.NewLinear[string, int](h, c)
		},
		"triangular": func(h hashtable.Hasher[string], c int) (*hashtable.Open[string, int], error) {
			return hashtable.NewTriangular[string, int](h, c)
		},
	}
}

func assertSameContents(t *testing.T, ref map[string]int, tbl hashtable.Table[string, int]) {
	t.Helper()
	assert.Equal(t, len(ref), tbl.Len())
	for k, want := range ref {
		got, ok := tbl.Get(k)
		assert.True(t, ok, "missing %q", k)
		assert.Equal(t, want, got, "value of %q", k)
	}
	seen := 0
	for k, v := range tbl.All() {
		assert.Equal(t, ref[k], v)
		seen++
	}
	assert.Equal(t, len(ref), seen)
}
