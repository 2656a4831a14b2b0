package numerator

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	corenumerator "uniboks/internal/core/numerator"
)

// mockRow implements pgx.Row for tests.
type mockRow struct {
	value int64
	err   error
}

func (r *mockRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	if len(dest) > 0 {
		if p, ok := dest[0].(*int64); ok {
			*p = r.value
		}
	}
	return nil
}

// mockQuerier simulates the atomic upsert against invoice_counters:
// every call for a key bumps its counter by one and returns the new value.
type mockQuerier struct {
	mu       sync.Mutex
	counters map[string]int64
}

func newMockQuerier() *mockQuerier {
	return &mockQuerier{counters: make(map[string]int64)}
}

func (q *mockQuerier) QueryRow(_ context.Context, _ string, args ...any) pgx.Row {
	q.mu.Lock()
	defer q.mu.Unlock()
	key := args[0].(string)
	if len(args) > 1 {
		// SetNextNumber path: overwrite with the supplied value.
		q.counters[key] = args[1].(int64)
	} else {
		q.counters[key]++
	}
	return &mockRow{value: q.counters[key]}
}

func TestNextNumber_StartsAtOne(t *testing.T) {
	svc := New(newMockQuerier())
	day := time.Date(2024, 6, 1, 10, 30, 0, 0, time.UTC)

	number, err := svc.NextNumber(context.Background(), corenumerator.DefaultConfig("INV"), day)
	require.NoError(t, err)
	assert.Equal(t, "INV-20240601-0001", number)
}

func TestNextNumber_SequentialIncrements(t *testing.T) {
	svc := New(newMockQuerier())
	day := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	cfg := corenumerator.DefaultConfig("INV")

	want := []string{
		"INV-20240601-0001",
		"INV-20240601-0002",
		"INV-20240601-0003",
	}
	for _, expected := range want {
		number, err := svc.NextNumber(context.Background(), cfg, day)
		require.NoError(t, err)
		assert.Equal(t, expected, number)
	}
}

func TestNextNumber_IndependentPerDay(t *testing.T) {
	svc := New(newMockQuerier())
	cfg := corenumerator.DefaultConfig("INV")

	first, err := svc.NextNumber(context.Background(), cfg, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	second, err := svc.NextNumber(context.Background(), cfg, time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.Equal(t, "INV-20240601-0001", first)
	assert.Equal(t, "INV-20240602-0001", second)
}

func TestNextNumber_ConcurrentNoDuplicates(t *testing.T) {
	svc := New(newMockQuerier())
	day := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	cfg := corenumerator.DefaultConfig("INV")

	const workers = 50
	results := make(chan string, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			number, err := svc.NextNumber(context.Background(), cfg, day)
			assert.NoError(t, err)
			results <- number
		}()
	}
	wg.Wait()
	close(results)

	seen := make(map[string]bool)
	for number := range results {
		assert.False(t, seen[number], "duplicate number %s", number)
		seen[number] = true
	}
	assert.Len(t, seen, workers)
}

func TestNextNumber_WidensPastPadWidth(t *testing.T) {
	q := newMockQuerier()
	svc := New(q)
	day := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	cfg := corenumerator.DefaultConfig("INV")

	require.NoError(t, svc.SetNextNumber(context.Background(), cfg, day, 9999))

	number, err := svc.NextNumber(context.Background(), cfg, day)
	require.NoError(t, err)
	assert.Equal(t, "INV-20240601-9999", number)

	number, err = svc.NextNumber(context.Background(), cfg, day)
	require.NoError(t, err)
	assert.Equal(t, "INV-20240601-10000", number, "counter must widen, never wrap")
}

func TestNextNumber_MonthlyReset(t *testing.T) {
	svc := New(newMockQuerier())
	cfg := corenumerator.Config{Prefix: "INV", PadWidth: 4, ResetPeriod: "month"}

	a, err := svc.NextNumber(context.Background(), cfg, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	b, err := svc.NextNumber(context.Background(), cfg, time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	// Same month shares the counter even on different days.
	assert.Equal(t, "INV-20240601-0001", a)
	assert.Equal(t, "INV-20240615-0002", b)
}

func TestParseCounter(t *testing.T) {
	assert.Equal(t, int64(1), ParseCounter("INV-20240601-0001"))
	assert.Equal(t, int64(10000), ParseCounter("INV-20240601-10000"))
	assert.Equal(t, int64(-1), ParseCounter("garbage"))
	assert.Equal(t, int64(-1), ParseCounter("INV-20240601-"))
	assert.Equal(t, int64(-1), ParseCounter(""))
}

func TestParseCounter_RoundTrip(t *testing.T) {
	svc := New(newMockQuerier())
	day := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	cfg := corenumerator.DefaultConfig("INV")

	for i := int64(1); i <= 3; i++ {
		number, err := svc.NextNumber(context.Background(), cfg, day)
		require.NoError(t, err)
		assert.Equal(t, i, ParseCounter(number))
	}
}
