package metricstore_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/clientmeta/svc/metricstore"
	"github.com/dmitrymomot/clientmeta/svc/telemetry"
)

func TestStore_AppendListAll(t *testing.T) {
	t.Parallel()

	s := metricstore.New()
	assert.Empty(t, s.ListAll())
	assert.Equal(t, 0, s.Len())

	first := telemetry.Record{IP: "192.0.2.1", UserAgent: "a"}
	second := telemetry.Record{IP: "192.0.2.1", UserAgent: "a"}

	assert.Equal(t, 1, s.Append(first))
	assert.Equal(t, 2, s.Append(second))

	all := s.ListAll()
	require.Len(t, all, 2)
	assert.Equal(t, second, all[len(all)-1])
	assert.Equal(t, 2, s.Len())
}

func TestStore_ListAllReturnsCopy(t *testing.T) {
	t.Parallel()

	s := metricstore.New()
	s.Append(telemetry.Record{IP: "192.0.2.1"})

	all := s.ListAll()
	all[0].IP = "changed"

	assert.Equal(t, "192.0.2.1", s.ListAll()[0].IP)
}

func TestStore_ConcurrentAppend(t *testing.T) {
	t.Parallel()

	s := metricstore.New()
	const n = 100

	var wg sync.WaitGroup
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Append(telemetry.Record{IP: fmt.Sprintf("10.0.0.%d", i)})
			_ = s.ListAll()
		}()
	}
	wg.Wait()

	assert.Equal(t, n, s.Len())
	assert.Len(t, s.ListAll(), n)
}
