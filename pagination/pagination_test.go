package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type change struct {
	page int
	size int
}

func newRecorded(total, size int) (*Controller, *[]change) {
	changes := &[]change{}
	ctl := Config{PageSize: size}.New(total, func(page, size int) {
		*changes = append(*changes, change{page, size})
	})
	return ctl, changes
}

func TestDerived(t *testing.T) {

	ctl, _ := newRecorded(11, 10)

	assert.Equal(t, 2, ctl.TotalPages())
	assert.Equal(t, 1, ctl.StartIndex())
	assert.Equal(t, 10, ctl.EndIndex())
	assert.True(t, ctl.CanGoNext())
	assert.False(t, ctl.CanGoPrev())

	lo, hi := ctl.Bounds()
	assert.Equal(t, 0, lo)
	assert.Equal(t, 10, hi)
}

func TestSetPage(t *testing.T) {

	ctl, changes := newRecorded(11, 10)

	assert.True(t, ctl.SetPage(1))
	assert.Equal(t, 11, ctl.StartIndex())
	assert.Equal(t, 11, ctl.EndIndex())
	assert.False(t, ctl.CanGoNext())
	assert.True(t, ctl.CanGoPrev())

	lo, hi := ctl.Bounds()
	assert.Equal(t, 10, lo)
	assert.Equal(t, 11, hi)

	assert.Equal(t, []change{{1, 10}}, *changes)
}

func TestSetPageOutOfRange(t *testing.T) {

	ctl, changes := newRecorded(11, 10)

	for _, p := range []int{-1, 2, 99} {
		assert.False(t, ctl.SetPage(p))
		assert.Equal(t, 0, ctl.Page())
	}
	assert.Empty(t, *changes)
}

func TestSetPageNoRows(t *testing.T) {

	ctl, changes := newRecorded(0, 10)

	assert.Equal(t, 0, ctl.TotalPages())
	assert.False(t, ctl.SetPage(0))
	assert.False(t, ctl.Next())
	assert.Equal(t, 0, ctl.Page())
	assert.Equal(t, 0, ctl.EndIndex())
	assert.Empty(t, *changes)
}

func TestSetPageSizeClamps(t *testing.T) {

	ctl, changes := newRecorded(11, 10)
	require.True(t, ctl.SetPage(1))

	ctl.SetPageSize(25)

	assert.Equal(t, 0, ctl.Page())
	assert.Equal(t, 25, ctl.PageSize())
	assert.Equal(t, 1, ctl.StartIndex())
	assert.Equal(t, 11, ctl.EndIndex())
	assert.Equal(t, []change{{1, 10}, {0, 25}}, *changes)
}

func TestSetPageSizeKeepsPageInRange(t *testing.T) {

	ctl, changes := newRecorded(100, 10)
	require.True(t, ctl.SetPage(3))

	ctl.SetPageSize(5)

	assert.Equal(t, 3, ctl.Page())
	assert.Equal(t, change{3, 5}, (*changes)[1])
}

func TestSetPageSizeIgnoresNonPositive(t *testing.T) {

	ctl, changes := newRecorded(11, 10)

	ctl.SetPageSize(0)
	ctl.SetPageSize(-5)

	assert.Equal(t, 10, ctl.PageSize())
	assert.Empty(t, *changes)
}

func TestClampInvariant(t *testing.T) {

	for _, total := range []int{0, 1, 7, 10, 11, 99, 250} {
		ctl, _ := newRecorded(total, 10)
		ctl.LastPage()

		for _, size := range []int{1, 3, 10, 25, 100, 7, 2} {
			ctl.SetPageSize(size)
			assert.GreaterOrEqual(t, ctl.Page(), 0)
			assert.Less(t, ctl.Page(), max(1, ctl.TotalPages()), "total %d size %d", total, size)
			ctl.LastPage()
		}
	}
}

func TestSetTotal(t *testing.T) {

	ctl, changes := newRecorded(50, 10)
	require.True(t, ctl.SetPage(4))

	ctl.SetTotal(12)
	assert.Equal(t, 1, ctl.Page())
	assert.Equal(t, change{1, 10}, (*changes)[len(*changes)-1])

	count := len(*changes)
	ctl.SetTotal(15)
	assert.Equal(t, 1, ctl.Page())
	assert.Len(t, *changes, count)

	ctl.SetTotal(0)
	assert.Equal(t, 0, ctl.Page())
}

func TestReset(t *testing.T) {

	ctl, changes := newRecorded(100, 10)
	ctl.SetPageSize(25)
	require.True(t, ctl.SetPage(2))

	ctl.Reset()

	assert.Equal(t, 0, ctl.Page())
	assert.Equal(t, 10, ctl.PageSize())
	assert.Equal(t, change{0, 10}, (*changes)[len(*changes)-1])
}

func TestNavigation(t *testing.T) {

	ctl, _ := newRecorded(30, 10)

	assert.True(t, ctl.LastPage())
	assert.Equal(t, 2, ctl.Page())
	assert.False(t, ctl.Next())
	assert.True(t, ctl.Prev())
	assert.Equal(t, 1, ctl.Page())
	assert.True(t, ctl.FirstPage())
	assert.False(t, ctl.Prev())
}

func TestDefaults(t *testing.T) {

	ctl := Config{}.New(3, nil)

	assert.Equal(t, 10, ctl.PageSize())
	assert.Equal(t, DefaultSizeOptions, ctl.SizeOptions())
	ctl.SetPageSize(5) // nil callback is fine
}
