package sequence_test

import (
	"glamp/shared/sequence"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSequencer_NewestWins(t *testing.T) {
	seq := sequence.New[string]()

	first := seq.Issue("s1:profit-loss")
	second := seq.Issue("s1:profit-loss")

	// second response arrives first
	current, stale := seq.Commit(second, "june")
	assert.False(t, stale)
	assert.Equal(t, "june", current)

	// the older response resolves afterwards and must not overwrite
	current, stale = seq.Commit(first, "may")
	assert.True(t, stale)
	assert.Equal(t, "june", current)

	latest, ok := seq.Latest("s1:profit-loss")
	assert.True(t, ok)
	assert.Equal(t, "june", latest)
}

func TestSequencer_StaleBeforeAnyCommit(t *testing.T) {
	seq := sequence.New[int]()

	first := seq.Issue("s1:statements")
	_ = seq.Issue("s1:statements")

	current, stale := seq.Commit(first, 10)
	assert.True(t, stale)
	assert.Zero(t, current)

	_, ok := seq.Latest("s1:statements")
	assert.False(t, ok)
}

func TestSequencer_KeysAreIndependent(t *testing.T) {
	seq := sequence.New[string]()

	a := seq.Issue("s1:profit-loss")
	b := seq.Issue("s2:profit-loss")

	_, staleA := seq.Commit(a, "a")
	_, staleB := seq.Commit(b, "b")

	assert.False(t, staleA)
	assert.False(t, staleB)
}

func TestSequencer_ConcurrentIssue(t *testing.T) {
	seq := sequence.New[int]()

	var wg sync.WaitGroup

	seen := make(chan uint64, 100)

	for range 100 {
		wg.Add(1)

		go func() {
			defer wg.Done()
			seen <- seq.Issue("key").N
		}()
	}

	wg.Wait()
	close(seen)

	unique := make(map[uint64]struct{})
	for n := range seen {
		unique[n] = struct{}{}
	}

	assert.Len(t, unique, 100)
}
