// internal/state/store_test.go
package state

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type counterAction int

func reduceCounter(s int, a counterAction) int { return s + int(a) }

func TestStore_DispatchSerialized(t *testing.T) {
	store := NewStore("counter", 0, reduceCounter, nil)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 20; j++ {
				store.Dispatch(counterAction(1))
			}
		}()
	}
	wg.Wait()

	// 遷移は直列化されるので取りこぼしがない
	assert.Equal(t, 1000, store.State())
}

func TestStore_SubscribeNotifiesSynchronously(t *testing.T) {
	store := NewStore("counter", 0, reduceCounter, nil)

	var seen []int
	unsubscribe := store.Subscribe(func(s int) { seen = append(seen, s) })

	store.Dispatch(counterAction(1))
	store.Dispatch(counterAction(2))
	require.Equal(t, []int{1, 3}, seen)

	unsubscribe()
	store.Dispatch(counterAction(5))
	assert.Equal(t, []int{1, 3}, seen) // 解除後は通知されない
	assert.Equal(t, 8, store.State())
}

func TestStore_ListenerMayDispatch(t *testing.T) {
	store := NewStore("counter", 0, reduceCounter, nil)

	// リスナーからの再 Dispatch がデッドロックしないこと
	fired := false
	var unsubscribe func()
	unsubscribe = store.Subscribe(func(s int) {
		if !fired {
			fired = true
			unsubscribe()
			store.Dispatch(counterAction(10))
		}
	})

	store.Dispatch(counterAction(1))
	assert.Equal(t, 11, store.State())
}

func TestStore_StateIsSnapshot(t *testing.T) {
	store := NewStore("vocab", InitialVocabState(), ReduceVocab, nil)

	snap := store.State()
	store.Dispatch(VocabFetchStart{})

	assert.False(t, snap.Loading) // 取得済みスナップショットは後続の遷移に影響されない
	assert.True(t, store.State().Loading)
}
