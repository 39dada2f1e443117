package component

import (
	"slices"

	"github.com/bnema/paneshell/internal/domain/entity"
	"github.com/bnema/paneshell/internal/ui/layout"
)

const (
	tabBarClass    = "tab-bar"
	tabClass       = "tab"
	tabActiveClass = "tab-active"
)

// TabView stacks one page per tab under a bar of tab labels. Only the active
// page is visible.
type TabView struct {
	factory layout.WidgetFactory
	root    layout.BoxWidget
	bar     layout.BoxWidget
	pages   layout.BoxWidget

	order  []entity.TabID
	tabs   map[entity.TabID]*tabWidgets
	active entity.TabID
}

type tabWidgets struct {
	label layout.LabelWidget
	page  layout.Widget
}

// NewTabView creates an empty tab view with a visible bar.
func NewTabView(factory layout.WidgetFactory) *TabView {
	root := factory.NewBox(layout.OrientationVertical, 0)
	root.SetHexpand(true)
	root.SetVexpand(true)

	bar := factory.NewBox(layout.OrientationHorizontal, 0)
	bar.AddCssClass(tabBarClass)

	pages := factory.NewBox(layout.OrientationVertical, 0)
	pages.SetHexpand(true)
	pages.SetVexpand(true)

	root.Append(bar)
	root.Append(pages)

	return &TabView{
		factory: factory,
		root:    root,
		bar:     bar,
		pages:   pages,
		tabs:    make(map[entity.TabID]*tabWidgets),
	}
}

// Widget returns the outer container.
func (v *TabView) Widget() layout.Widget { return v.root }

// AddTab appends a label and a hidden page. Adding a known id does nothing.
func (v *TabView) AddTab(id entity.TabID, title string, page layout.Widget) {
	if _, ok := v.tabs[id]; ok {
		return
	}
	label := v.factory.NewLabel(title)
	label.AddCssClass(tabClass)
	page.SetVisible(false)

	v.bar.Append(label)
	v.pages.Append(page)
	v.tabs[id] = &tabWidgets{label: label, page: page}
	v.order = append(v.order, id)
}

// RemoveTab drops the label and the page of a tab.
func (v *TabView) RemoveTab(id entity.TabID) {
	tw, ok := v.tabs[id]
	if !ok {
		return
	}
	v.bar.Remove(tw.label)
	v.pages.Remove(tw.page)
	delete(v.tabs, id)
	v.order = slices.DeleteFunc(v.order, func(o entity.TabID) bool { return o == id })
	if v.active == id {
		v.active = ""
	}
}

// SetActive shows the page of id and hides the previous one.
func (v *TabView) SetActive(id entity.TabID) {
	tw, ok := v.tabs[id]
	if !ok || v.active == id {
		return
	}
	if prev, ok := v.tabs[v.active]; ok {
		prev.page.SetVisible(false)
		prev.label.RemoveCssClass(tabActiveClass)
	}
	tw.page.SetVisible(true)
	tw.label.AddCssClass(tabActiveClass)
	v.active = id
}

// SetTitle updates the label of a tab.
func (v *TabView) SetTitle(id entity.TabID, title string) {
	if tw, ok := v.tabs[id]; ok {
		tw.label.SetText(title)
	}
}

// Title returns the label text of a tab.
func (v *TabView) Title(id entity.TabID) string {
	if tw, ok := v.tabs[id]; ok {
		return tw.label.GetText()
	}
	return ""
}

// SetBarVisible shows or hides the label bar.
func (v *TabView) SetBarVisible(visible bool) { v.bar.SetVisible(visible) }

// BarVisible reports whether the label bar is shown.
func (v *TabView) BarVisible() bool { return v.bar.IsVisible() }

// ActiveTab returns the id of the visible page.
func (v *TabView) ActiveTab() entity.TabID { return v.active }

// TabIDs returns the tabs in bar order.
func (v *TabView) TabIDs() []entity.TabID { return slices.Clone(v.order) }

// Page returns the page widget of a tab.
func (v *TabView) Page(id entity.TabID) (layout.Widget, bool) {
	tw, ok := v.tabs[id]
	if !ok {
		return nil, false
	}
	return tw.page, true
}
