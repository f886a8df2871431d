package zupos

import (
	"context"
	"slices"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zupos/board/piece"
	"zupos/detail"
	"zupos/drawer"
	nt "zupos/entity"
	"zupos/filter"
	"zupos/grid"
	"zupos/toast"
)

type quiet struct{}

func (quiet) Info(ctx context.Context, msg string, kv ...any)              {}
func (quiet) Error(ctx context.Context, msg string, err error, kv ...any) {}

// memStore keeps stores in a slice.
type memStore struct {
	stores []nt.StoreDef
	fail   error
}

func (ms *memStore) Name() string { return "memory" }

func (ms *memStore) List(ctx context.Context) ([]nt.StoreDef, error) {
	return slices.Clone(ms.stores), ms.fail
}

func (ms *memStore) Get(ctx context.Context, id int) (nt.StoreDef, error) {
	for _, sd := range ms.stores {
		if sd.Id == id {
			return sd, nil
		}
	}
	return nt.StoreDef{}, errors.Errorf("no store with id %d", id)
}

func (ms *memStore) Save(ctx context.Context, sd nt.StoreDef) (nt.StoreDef, error) {
	if ms.fail != nil {
		return nt.StoreDef{}, ms.fail
	}
	if sd.Id == 0 {
		sd.Id = len(ms.stores) + 1
		ms.stores = append(ms.stores, sd)
		return sd, nil
	}
	for i := range ms.stores {
		if ms.stores[i].Id == sd.Id {
			ms.stores[i] = sd
			return sd, nil
		}
	}
	return nt.StoreDef{}, errors.Errorf("no store with id %d", sd.Id)
}

func (ms *memStore) Delete(ctx context.Context, id int) error {
	idx := slices.IndexFunc(ms.stores, func(sd nt.StoreDef) bool { return sd.Id == id })
	if idx < 0 {
		return errors.Errorf("no store with id %d", id)
	}
	ms.stores = slices.Delete(ms.stores, idx, idx+1)
	return nil
}

func elevenStores() *memStore {
	names := []string{"Ana Depo", "Şube", "Yedek Depo", "Merkez", "Outlet", "Karşıyaka", "Bornova", "Nilüfer", "Osmangazi", "Muratpaşa", "Konyaaltı"}

	ms := &memStore{}
	for i, name := range names {
		ms.stores = append(ms.stores, nt.StoreDef{
			Id:           i + 1,
			Code:         string(rune('1'+i%9)) + "00",
			Name:         name,
			TransferType: "Sayim",
			Status:       i%2 == 0,
		})
	}
	return ms
}

type harness struct {
	t      *testing.T
	model  Model
	store  *memStore
	toasts *toast.Manager
}

func newHarness(t *testing.T, ms *memStore) *harness {
	t.Helper()

	cfg := Defaults()
	cfg.Sort = nt.Sort{}

	toasts := toast.Config{DefaultDuration: 0}.New()
	t.Cleanup(toasts.Close)

	h := &harness{
		t:      t,
		model:  cfg.New(context.Background(), ms, toasts, quiet{}),
		store:  ms,
		toasts: toasts,
	}
	h.send(h.model.Init()())
	return h
}

// send updates the model with msg and runs returned commands to completion.
func (h *harness) send(msg tea.Msg) {
	h.t.Helper()

	next, cmd := h.model.Update(msg)
	h.model = next.(Model)
	h.run(cmd)
}

func (h *harness) run(cmd tea.Cmd) {
	h.t.Helper()

	if cmd == nil {
		return
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, sub := range batch {
			h.run(sub)
		}
		return
	}
	if msg != nil {
		h.send(msg)
	}
}

func (h *harness) visible() (names []string) {
	for _, sd := range h.model.grid.Result().Visible {
		names = append(names, sd.Name)
	}
	return
}

func (h *harness) lastToast() toast.Toast {
	h.t.Helper()

	toasts := h.toasts.Toasts()
	require.NotEmpty(h.t, toasts)
	return toasts[len(toasts)-1]
}

func TestLoadAndPage(t *testing.T) {

	h := newHarness(t, elevenStores())

	assert.False(t, h.model.loading)
	assert.Len(t, h.visible(), 10)
	assert.Equal(t, 1, h.model.pager.StartIndex())
	assert.Equal(t, 10, h.model.pager.EndIndex())

	h.send(grid.PageMsg{Page: 1})
	assert.Equal(t, []string{"Konyaaltı"}, h.visible())
	assert.Equal(t, 11, h.model.pager.StartIndex())
	assert.Equal(t, 11, h.model.pager.EndIndex())

	h.send(grid.PageSizeMsg{Size: 25})
	assert.Equal(t, 0, h.model.pager.Page())
	assert.Len(t, h.visible(), 11)

	h.send(grid.PageMsg{Page: 3})
	assert.Equal(t, 0, h.model.pager.Page(), "out of range page is ignored")
}

func TestQuickSearch(t *testing.T) {

	ms := &memStore{stores: []nt.StoreDef{
		{Id: 1, Code: "100", Name: "Ana Depo", TransferType: "Sayim"},
		{Id: 2, Code: "200", Name: "Şube", TransferType: "Devir"},
	}}
	h := newHarness(t, ms)

	h.model = h.model.quickSearch("dep")
	assert.Equal(t, []string{"Ana Depo"}, h.visible())

	h.model = h.model.quickSearch("")
	assert.Equal(t, []string{"Ana Depo", "Şube"}, h.visible())
}

func TestQuickSearchKeepsOtherFilters(t *testing.T) {

	h := newHarness(t, elevenStores())
	h.model.filters = []nt.Filter{{Field: "status", Op: nt.Equals, Value: true}}

	h.model = h.model.quickSearch("depo")
	assert.Equal(t, []string{"Ana Depo", "Yedek Depo"}, h.visible())

	h.model = h.model.quickSearch("")
	assert.Equal(t, []nt.Filter{{Field: "status", Op: nt.Equals, Value: true}}, h.model.filters)
}

func TestSortProposal(t *testing.T) {

	h := newHarness(t, elevenStores())

	h.send(grid.SortMsg{Sort: nt.Sort{Field: "name", Desc: true}})
	assert.Equal(t, "Şube", h.visible()[0])
	assert.Equal(t, nt.Sort{Field: "name", Desc: true}, h.model.grid.Sort())
}

func TestCreate(t *testing.T) {

	h := newHarness(t, elevenStores())

	h.model = h.model.openDrawer(drawer.Create, nt.StoreDef{})
	assert.Equal(t, DrawerScreen, h.model.screen)
	assert.Equal(t, createValues(), h.model.drawer.Session().Values())

	h.send(&piece.PressedMsg{Id: "submit"})
	assert.Equal(t, DrawerScreen, h.model.screen, "blocked by validation")
	assert.Equal(t, "Name is required", h.model.drawer.Session().Error("name"))

	h.model.drawer = h.model.drawer.Set("name", "Yeni Depo").Set("code", "900")
	h.send(&piece.PressedMsg{Id: "submit"})

	assert.Equal(t, GridScreen, h.model.screen)
	require.Len(t, h.store.stores, 12)
	assert.Equal(t, nt.StoreDef{Id: 12, Code: "900", Name: "Yeni Depo", TransferType: "Sayim", Status: true}, h.store.stores[11])
	assert.Equal(t, toast.Success, h.lastToast().Kind)
	assert.Equal(t, "Yeni Depo created", h.lastToast().Message)
	assert.False(t, h.model.loading)
	assert.Len(t, h.model.rows, 12)
}

func TestEdit(t *testing.T) {

	h := newHarness(t, elevenStores())

	h.send(editMsg{store: h.store.stores[1]})
	assert.Equal(t, drawer.Edit, h.model.drawer.Session().Mode())
	assert.Equal(t, "Şube", h.model.drawer.Session().Value("name"))

	h.model.drawer = h.model.drawer.Set("transferType", "Devir")
	assert.Equal(t, drawer.OpenDirty, h.model.drawer.Session().State())
	h.send(&piece.PressedMsg{Id: "submit"})

	assert.Equal(t, GridScreen, h.model.screen)
	assert.Equal(t, "Devir", h.store.stores[1].TransferType)
	assert.Equal(t, 2, h.store.stores[1].Id)
	assert.Equal(t, "Şube updated", h.lastToast().Message)
}

func TestSaveFailureKeepsDrawer(t *testing.T) {

	h := newHarness(t, elevenStores())

	h.send(editMsg{store: h.store.stores[0]})
	h.model.drawer = h.model.drawer.Set("name", "Ana Depo 2")

	h.store.fail = errors.New("code 100 is already in use")
	h.send(&piece.PressedMsg{Id: "submit"})

	assert.Equal(t, DrawerScreen, h.model.screen)
	assert.Equal(t, drawer.OpenDirty, h.model.drawer.Session().State())
	assert.Equal(t, "Ana Depo 2", h.model.drawer.Session().Value("name"))
	assert.EqualError(t, h.model.drawer.Session().Failure(), "code 100 is already in use")
	assert.Equal(t, toast.Error, h.lastToast().Kind)
	assert.Equal(t, "Store not saved", h.lastToast().Title)
}

func TestDelete(t *testing.T) {

	h := newHarness(t, elevenStores())
	sd := h.store.stores[0]
	h.model.selection = grid.Selection{sd.Key()}

	h.send(deleteMsg{store: sd})
	assert.Equal(t, ConfirmScreen, h.model.screen)
	assert.Equal(t, sd, h.model.deleting)

	h.run(h.model.deleteCmd(h.model.deleting))
	assert.Len(t, h.store.stores, 10)
	assert.Equal(t, "Ana Depo deleted", h.lastToast().Message)
	assert.Empty(t, h.model.selection)
	assert.Len(t, h.model.rows, 10)

	h.run(h.model.deleteCmd(sd))
	assert.Equal(t, toast.Error, h.lastToast().Kind)
}

func TestView(t *testing.T) {

	h := newHarness(t, elevenStores())

	h.send(viewMsg{store: h.store.stores[2]})
	assert.Equal(t, DetailScreen, h.model.screen)
	assert.Contains(t, h.model.detail.Lines()[2], "Yedek Depo")

	h.send(detail.CloseMsg{})
	assert.Equal(t, GridScreen, h.model.screen)
}

func TestLoadFailure(t *testing.T) {

	ms := elevenStores()
	ms.fail = errors.New("source offline")
	h := newHarness(t, ms)

	assert.False(t, h.model.loading)
	assert.Empty(t, h.visible())
	assert.Equal(t, "source offline", h.lastToast().Message)
	assert.Equal(t, "Could not load stores", h.lastToast().Title)
}

func TestFilterApply(t *testing.T) {

	h := newHarness(t, elevenStores())
	h.send(grid.PageMsg{Page: 1})

	h.send(filter.ApplyMsg{Filters: []nt.Filter{{Field: "status", Op: nt.Equals, Value: false}}})
	assert.Equal(t, 0, h.model.pager.Page())
	assert.Len(t, h.visible(), 5)
}

func TestResize(t *testing.T) {

	h := newHarness(t, elevenStores())

	h.send(tea.WindowSizeMsg{Width: 60, Height: 30})
	assert.Equal(t, grid.Mobile, h.model.grid.Mode())

	h.send(tea.WindowSizeMsg{Width: 160, Height: 40})
	assert.Equal(t, grid.Desktop, h.model.grid.Mode())
	assert.Contains(t, h.model.grid.Render(), "Ana Depo")
}

func TestRenderFooter(t *testing.T) {

	out := RenderFooter(SearchScreen, "dep", "stores.ndjson", 80)
	assert.Contains(t, out, "search: dep▏")
	assert.Contains(t, out, "stores.ndjson")
	assert.Contains(t, out, "enter done")
}
