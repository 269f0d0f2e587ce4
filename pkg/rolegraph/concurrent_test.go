package rolegraph_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/authzkit/authzkit/pkg/rolegraph"
)

func TestManager_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	m := newTestHierarchy(t)

	t.Run("concurrent_queries", func(t *testing.T) {
		t.Parallel()

		const numGoroutines = 50
		const numOperations = 500

		var wg sync.WaitGroup
		wg.Add(numGoroutines)

		for i := 0; i < numGoroutines; i++ {
			go func() {
				defer wg.Done()

				for j := 0; j < numOperations; j++ {
					switch j % 4 {
					case 0:
						assert.True(t, m.HasLink("u1", "g3"))
					case 1:
						assert.False(t, m.HasLink("u1", "g2"))
					case 2:
						assert.Equal(t, []string{"g2", "g3"}, m.GetRoles("u4"))
					case 3:
						assert.ElementsMatch(t, []string{"u1", "u2"}, m.GetUsers("g1"))
					}
				}
			}()
		}

		wg.Wait()
	})

	t.Run("concurrent_writers_on_disjoint_links", func(t *testing.T) {
		t.Parallel()

		const numGoroutines = 20

		m := rolegraph.New(rolegraph.WithMaxDepth(2))

		var wg sync.WaitGroup
		wg.Add(numGoroutines)

		for i := 0; i < numGoroutines; i++ {
			go func(id int) {
				defer wg.Done()

				user := fmt.Sprintf("user-%d", id)
				m.AddLink(user, "shared")
				m.AddLink(user, "shared") // duplicate, must be dropped
			}(i)
		}

		wg.Wait()

		users := m.GetUsers("shared")
		assert.Len(t, users, numGoroutines)
		for i := 0; i < numGoroutines; i++ {
			assert.Contains(t, users, fmt.Sprintf("user-%d", i))
		}
	})
}

// Stress test with race detector
func TestManager_RaceConditions(t *testing.T) {
	t.Parallel()

	m := rolegraph.New(rolegraph.WithMaxDepth(3))
	m.AddLink("alice", "editor")
	m.AddLink("editor", "viewer")

	const numGoroutines = 20
	const numOperations = 500

	var wg sync.WaitGroup
	wg.Add(numGoroutines)

	// Mix of reads, writes and deletes running concurrently.
	for i := 0; i < numGoroutines; i++ {
		go func(id int) {
			defer wg.Done()

			for j := 0; j < numOperations; j++ {
				switch (id + j) % 6 {
				case 0:
					_ = m.HasLink("alice", "viewer")
				case 1:
					_ = m.GetRoles("alice")
				case 2:
					_ = m.GetUsers("viewer")
				case 3:
					m.AddLink(fmt.Sprintf("user-%d", id), "editor")
				case 4:
					_ = m.DeleteLink(fmt.Sprintf("user-%d", id), "editor")
				case 5:
					_ = m.HasLink("alice", "editor", "tenant1")
				}
			}
		}(i)
	}

	wg.Wait()

	// The backbone links were never touched.
	assert.True(t, m.HasLink("alice", "viewer"))
}
