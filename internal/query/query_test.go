package query

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PIliev24/green-street/internal/domain"
)

func tx(id, fromName, toName string, amount int64, date string) domain.TransactionWithContractors {
	return domain.TransactionWithContractors{
		Transaction: domain.Transaction{
			ID:     id,
			Date:   date,
			Amount: amount,
			State:  domain.StateSend,
		},
		ContractorFrom: domain.Contractor{Name: fromName},
		ContractorTo:   domain.Contractor{Name: toName},
	}
}

func ids(list []domain.TransactionWithContractors) []string {
	out := make([]string, len(list))
	for i, t := range list {
		out[i] = t.ID
	}
	return out
}

func TestFilterBySearch(t *testing.T) {
	list := []domain.TransactionWithContractors{
		tx("ab", "Alice", "Bob", 100, "2024-01-01T00:00:00Z"),
		tx("cd", "Carol", "Dan", 200, "2024-01-02T00:00:00Z"),
	}

	// substring on the sending side
	assert.Equal(t, []string{"ab"}, ids(FilterBySearch(list, "ali")))
	// case-insensitive, receiving side
	assert.Equal(t, []string{"ab"}, ids(FilterBySearch(list, "BOB")))
	// either side
	assert.Equal(t, []string{"cd"}, ids(FilterBySearch(list, "dan")))
	// no match
	assert.Empty(t, FilterBySearch(list, "zzz"))
}

func TestFilterBySearchEmptyQueryIsIdentity(t *testing.T) {
	list := []domain.TransactionWithContractors{
		tx("ab", "Alice", "Bob", 100, "2024-01-01T00:00:00Z"),
	}
	assert.Equal(t, list, FilterBySearch(list, ""))
	assert.Equal(t, list, FilterBySearch(list, "   "))
}

func TestSortFields(t *testing.T) {
	list := []domain.TransactionWithContractors{
		tx("a", "zed", "Bob", 300, "2024-01-03T00:00:00Z"),
		tx("b", "Alice", "dan", 100, "2024-01-01T00:00:00Z"),
		tx("c", "Mallory", "Carol", 200, "2024-01-02T00:00:00Z"),
	}

	tests := []struct {
		name string
		cfg  SortConfig
		want []string
	}{
		{"date asc", SortConfig{SortDate, Asc}, []string{"b", "c", "a"}},
		{"date desc", SortConfig{SortDate, Desc}, []string{"a", "c", "b"}},
		{"amount asc", SortConfig{SortAmount, Asc}, []string{"b", "c", "a"}},
		{"amount desc", SortConfig{SortAmount, Desc}, []string{"a", "c", "b"}},
		{"from asc is case-insensitive", SortConfig{SortFrom, Asc}, []string{"b", "c", "a"}},
		{"to asc", SortConfig{SortTo, Asc}, []string{"a", "c", "b"}},
		{"to desc", SortConfig{SortTo, Desc}, []string{"b", "c", "a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(Sort(list, tt.cfg)))
		})
	}
}

func TestSortIsStableUnderTies(t *testing.T) {
	list := []domain.TransactionWithContractors{
		tx("first", "A", "B", 500, "2024-01-01T00:00:00Z"),
		tx("second", "C", "D", 500, "2024-01-02T00:00:00Z"),
		tx("third", "E", "F", 500, "2024-01-03T00:00:00Z"),
	}

	assert.Equal(t, []string{"first", "second", "third"}, ids(Sort(list, SortConfig{SortAmount, Asc})))
	assert.Equal(t, []string{"first", "second", "third"}, ids(Sort(list, SortConfig{SortAmount, Desc})))
}

func TestSortDoesNotMutateInput(t *testing.T) {
	list := []domain.TransactionWithContractors{
		tx("a", "A", "B", 300, "2024-01-03T00:00:00Z"),
		tx("b", "C", "D", 100, "2024-01-01T00:00:00Z"),
	}

	_ = Sort(list, SortConfig{SortAmount, Asc})
	assert.Equal(t, []string{"a", "b"}, ids(list))
}

func TestFilterAndSortComposition(t *testing.T) {
	list := []domain.TransactionWithContractors{
		tx("a", "Alice", "Bob", 300, "2024-01-03T00:00:00Z"),
		tx("b", "Carol", "Dan", 100, "2024-01-01T00:00:00Z"),
		tx("c", "Alice", "Carol", 200, "2024-01-02T00:00:00Z"),
	}

	got := FilterAndSort(list, "alice", SortConfig{SortAmount, Asc})
	assert.Equal(t, []string{"c", "a"}, ids(got))
}

func TestNextSortToggle(t *testing.T) {
	cur := SortConfig{Field: SortDate, Direction: Desc}

	cur = NextSort(cur, SortAmount)
	assert.Equal(t, SortConfig{Field: SortAmount, Direction: Asc}, cur)

	cur = NextSort(cur, SortAmount)
	assert.Equal(t, SortConfig{Field: SortAmount, Direction: Desc}, cur)

	cur = NextSort(cur, SortDate)
	assert.Equal(t, SortConfig{Field: SortDate, Direction: Asc}, cur)
}

func TestDebouncerCollapsesBursts(t *testing.T) {
	var calls int32
	d := NewDebouncer(20 * time.Millisecond)
	defer d.Stop()

	for i := 0; i < 5; i++ {
		d.Do(func() { atomic.AddInt32(&calls, 1) })
	}

	require.Eventually(t, func() bool {
		return atomic.LoadInt32(&calls) == 1
	}, time.Second, 5*time.Millisecond)

	// settle and make sure no extra call fires
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}
