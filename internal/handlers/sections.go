package handlers

import (
	"fmt"
	"html/template"

	"hypertech.group/hypersystem-web/internal/i18n"
	"hypertech.group/hypersystem-web/internal/uistate"
)

// Option is one selectable control: a tab, a pain point or an FAQ question.
type Option struct {
	Index  int
	Label  string
	Sub    string
	Active bool
	Link   StateLink
}

// ModuleView is the expanded content of the active tab.
type ModuleView struct {
	Name     string
	Subtitle string
	Desc     template.HTML
}

// TabsView is a tab strip plus the panel of its active entry.
type TabsView struct {
	Options []Option
	Active  ModuleView
}

// tabs renders modules as a tab strip. sel returns the state with tab i selected.
func (b *Builder) tabs(lk Linker, s State, modules []i18n.Module, active uistate.Tabs, fragment string, sel func(State, int) State) (TabsView, error) {
	v := TabsView{Options: make([]Option, 0, len(modules))}
	for i, mod := range modules {
		v.Options = append(v.Options, Option{
			Index:  i,
			Label:  mod.Name,
			Sub:    mod.Subtitle,
			Active: active.IsActive(i),
			Link:   lk.Link(fragment, sel(s, i)),
		})
	}
	if len(modules) == 0 {
		return v, nil
	}
	cur := modules[active.Active]
	desc, err := b.Markdown.Inline(cur.Desc)
	if err != nil {
		return TabsView{}, fmt.Errorf("handlers: module %q: %w", cur.Name, err)
	}
	v.Active = ModuleView{Name: cur.Name, Subtitle: cur.Subtitle, Desc: desc}
	return v, nil
}
