package handler

import "go-appmanager/internal/domain/model"

// Views add the canonical resource uri to the stored fields.

type AppView struct {
	model.App
	URI string `json:"uri"`
}

func newAppView(a model.App) AppView { return AppView{App: a, URI: a.URI()} }

func appViews(apps []model.App) []AppView {
	out := make([]AppView, 0, len(apps))
	for _, a := range apps {
		out = append(out, newAppView(a))
	}
	return out
}

type MenuItemView struct {
	model.MenuItem
	URI string `json:"uri"`
}

func newMenuItemView(m model.MenuItem) MenuItemView {
	return MenuItemView{MenuItem: m, URI: m.URI()}
}

func menuItemViews(items []model.MenuItem) []MenuItemView {
	out := make([]MenuItemView, 0, len(items))
	for _, m := range items {
		out = append(out, newMenuItemView(m))
	}
	return out
}
