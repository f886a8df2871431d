// Package pagination tracks the page window over a row count.
package pagination

// DefaultSizeOptions are offered when none are configured.
var DefaultSizeOptions = []int{5, 10, 25, 50, 100}

// ChangeFunc receives the page and size after each accepted change.
type ChangeFunc func(page, size int)

// Controller owns page, pageSize and total and derives the rest.
// Page is 0-based and always within [0, max(1, TotalPages)).
type Controller struct {
	page        int
	size        int
	total       int
	options     []int
	initialPage int
	initialSize int
	onChange    ChangeFunc
}

// Config is the initial state of a Controller.
type Config struct {
	Page        int   `yaml:"page"`
	PageSize    int   `yaml:"pageSize"`
	SizeOptions []int `yaml:"pageSizeOptions"`
}

// New creates a Controller for total rows, onChange may be nil.
func (cfg Config) New(total int, onChange ChangeFunc) *Controller {

	size := cfg.PageSize
	if size <= 0 {
		size = 10
	}
	options := cfg.SizeOptions
	if len(options) == 0 {
		options = DefaultSizeOptions
	}

	ctl := &Controller{
		page:        max(cfg.Page, 0),
		size:        size,
		total:       max(total, 0),
		options:     options,
		initialPage: max(cfg.Page, 0),
		initialSize: size,
		onChange:    onChange,
	}
	ctl.clamp()

	return ctl
}

// Page returns the current 0-based page.
func (ctl *Controller) Page() int { return ctl.page }

// PageSize returns the current page size.
func (ctl *Controller) PageSize() int { return ctl.size }

// Total returns the row count being paged.
func (ctl *Controller) Total() int { return ctl.total }

// SizeOptions returns the selectable page sizes.
func (ctl *Controller) SizeOptions() []int { return ctl.options }

// TotalPages is ceil(total/size), zero when there are no rows.
func (ctl *Controller) TotalPages() int {
	return pages(ctl.total, ctl.size)
}

// CanGoNext reports whether a following page exists.
func (ctl *Controller) CanGoNext() bool {
	return ctl.page < ctl.TotalPages()-1
}

// CanGoPrev reports whether a preceding page exists.
func (ctl *Controller) CanGoPrev() bool {
	return ctl.page > 0
}

// StartIndex is the 1-based index of the first row on the page.
func (ctl *Controller) StartIndex() int {
	return ctl.page*ctl.size + 1
}

// EndIndex is the 1-based index of the last row on the page.
func (ctl *Controller) EndIndex() int {
	return min((ctl.page+1)*ctl.size, ctl.total)
}

// Bounds returns the slice bounds of the current page within total rows.
func (ctl *Controller) Bounds() (lo, hi int) {
	lo = min(ctl.page*ctl.size, ctl.total)
	hi = min(lo+ctl.size, ctl.total)
	return
}

// SetPage moves to page p, ignoring out of range requests.
func (ctl *Controller) SetPage(p int) (changed bool) {

	if p < 0 || p >= ctl.TotalPages() {
		return
	}

	ctl.page = p
	ctl.notify()
	return true
}

// SetPageSize changes the size, pulling the page back into range.
func (ctl *Controller) SetPageSize(size int) {

	if size <= 0 {
		return
	}

	newPages := pages(ctl.total, size)
	if ctl.page >= newPages {
		ctl.page = max(0, newPages-1)
	}
	ctl.size = size
	ctl.notify()
}

// SetTotal updates the row count, pulling the page back into range.
// Nothing is notified unless the page moved.
func (ctl *Controller) SetTotal(total int) {

	ctl.total = max(total, 0)
	before := ctl.page
	ctl.clamp()
	if ctl.page != before {
		ctl.notify()
	}
}

// Reset restores the initial page and size.
func (ctl *Controller) Reset() {

	ctl.page = ctl.initialPage
	ctl.size = ctl.initialSize
	ctl.clamp()
	ctl.notify()
}

// Next moves forward one page if possible.
func (ctl *Controller) Next() bool { return ctl.SetPage(ctl.page + 1) }

// Prev moves back one page if possible.
func (ctl *Controller) Prev() bool { return ctl.SetPage(ctl.page - 1) }

// FirstPage moves to the first page.
func (ctl *Controller) FirstPage() bool { return ctl.SetPage(0) }

// LastPage moves to the last page.
func (ctl *Controller) LastPage() bool { return ctl.SetPage(ctl.TotalPages() - 1) }

// unexported

func (ctl *Controller) clamp() {
	last := max(0, ctl.TotalPages()-1)
	if ctl.page > last {
		ctl.page = last
	}
	if ctl.page < 0 {
		ctl.page = 0
	}
}

func (ctl *Controller) notify() {
	if ctl.onChange != nil {
		ctl.onChange(ctl.page, ctl.size)
	}
}

func pages(total, size int) int {
	if size <= 0 || total <= 0 {
		return 0
	}
	return (total + size - 1) / size
}
