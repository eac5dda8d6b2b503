package sampledata

import (
	"context"
	"strconv"
	"strings"

	"github.com/johnwards/sampledata/internal/domain"
	"github.com/johnwards/sampledata/internal/urlsafe"
)

// Record kinds reported to the metrics recorder.
const (
	KindCategory = "category"
	KindArticle  = "article"
	KindField    = "field"
	KindMenu     = "menu"
	KindMenuItem = "menuitem"
)

// checkDefaultValues resets r for insertion and fills the columns every
// content record needs.
func (p *Plugin) checkDefaultValues(r *domain.Record) {
	r.ID = 0
	if r.Access == 0 {
		r.Access = 1
	}
	if r.State == nil {
		r.State = domain.StatePtr(domain.StatePublished)
	}
	if r.Language == "" {
		r.Language = "*"
	}
	r.Associations = nil
	r.Metakey = ""
	r.Metadesc = ""
	r.XReference = ""
	r.Params = map[string]any{}
	if r.Title == "" {
		r.Title = p.text.Sentence(10, 30)
	}
	r.Alias = r.Title + "-" + p.randomSuffix()
}

func (p *Plugin) randomSuffix() string {
	return strconv.Itoa(p.text.Between(0, int(p.now().Unix())))
}

// addCategories saves categories under extension and returns their IDs in
// input order.
//
// The add helpers return host errors unwrapped: their text is what the
// content model wants shown to the user and ends up verbatim in the step
// response.
func (p *Plugin) addCategories(ctx context.Context, categories []*domain.Category, extension string, userID int64) ([]int64, error) {
	ids := make([]int64, 0, len(categories))
	defer func() { p.metrics.IncRecordsCreated(KindCategory, len(ids)) }()

	for _, c := range categories {
		p.checkDefaultValues(&c.Record)
		if c.Description == "" {
			c.Description = p.text.Text(30, 80)
		}
		if c.CreatedUserID == 0 {
			c.CreatedUserID = userID
		}
		c.Extension = extension
		if c.Level == 0 {
			c.Level = 1
		}

		id, err := p.host.Categories.Save(ctx, c)
		if err != nil {
			return ids, err
		}
		c.ID = id
		ids = append(ids, id)
	}
	return ids, nil
}

// addArticles saves articles and returns them, with IDs set, in input order.
// Empty custom field values are filled with a generated sentence.
func (p *Plugin) addArticles(ctx context.Context, articles []*domain.Article, userID int64) ([]*domain.Article, error) {
	created := make([]*domain.Article, 0, len(articles))
	defer func() { p.metrics.IncRecordsCreated(KindArticle, len(created)) }()

	for _, a := range articles {
		p.checkDefaultValues(&a.Record)
		if a.IntroText == "" {
			a.IntroText = toHTML(p.text.Text(30, 80))
		}
		if a.FullText == "" {
			a.FullText = toHTML(p.text.Text(30, 300))
		}
		if a.CreatedUserID == 0 {
			a.CreatedUserID = userID
		}
		for name, value := range a.Fields {
			if value == "" {
				a.Fields[name] = p.text.Sentence(10, 30)
			}
		}

		id, err := p.host.Articles.Save(ctx, a)
		if err != nil {
			return created, err
		}
		a.ID = id
		created = append(created, a)
	}
	return created, nil
}

// addFields saves custom field definitions and returns them, with IDs and
// final names set, in input order.
func (p *Plugin) addFields(ctx context.Context, fields []*domain.Field, userID int64) ([]*domain.Field, error) {
	created := make([]*domain.Field, 0, len(fields))
	defer func() { p.metrics.IncRecordsCreated(KindField, len(created)) }()

	for _, f := range fields {
		if f.Context == "" {
			f.Context = domain.ArticleContext
		}
		if f.Type == "" {
			f.Type = "text"
		}
		if f.Label == "" {
			f.Label = p.text.Sentence(4, 10)
		}
		if f.Title == "" {
			f.Title = f.Label
		}
		if f.Name == "" {
			f.Name = strings.ReplaceAll(f.Label, " ", "") + "-" + p.randomSuffix()
		}
		f.Name = strings.ToLower(f.Name)
		if f.State == nil {
			f.State = domain.StatePtr(domain.StatePublished)
		}
		if f.Access == 0 {
			f.Access = 1
		}
		if f.Language == "" {
			f.Language = "*"
		}
		if f.Params == nil {
			f.Params = map[string]any{}
		}
		if f.FieldParams == nil {
			f.FieldParams = map[string]any{}
		}
		if f.CreatedUserID == 0 {
			f.CreatedUserID = userID
		}

		id, err := p.host.Fields.Save(ctx, f)
		if err != nil {
			return created, err
		}
		f.ID = id
		created = append(created, f)
	}
	return created, nil
}

// addMenus saves menus and returns them, with IDs and URL-safe menutypes set,
// in input order.
func (p *Plugin) addMenus(ctx context.Context, menus []*domain.Menu) ([]*domain.Menu, error) {
	created := make([]*domain.Menu, 0, len(menus))
	defer func() { p.metrics.IncRecordsCreated(KindMenu, len(created)) }()

	for _, m := range menus {
		if m.Title == "" {
			m.Title = p.text.Sentence(10, 30)
		}
		if m.MenuType == "" {
			m.MenuType = m.Title
		}
		m.MenuType = urlsafe.String(m.MenuType)

		id, err := p.host.Menus.Save(ctx, m)
		if err != nil {
			return created, err
		}
		m.ID = id
		created = append(created, m)
	}
	return created, nil
}

// addMenuItems saves site menu items at the top level of their menu and
// returns their IDs in input order.
func (p *Plugin) addMenuItems(ctx context.Context, items []*domain.MenuItem, userID int64) ([]int64, error) {
	ids := make([]int64, 0, len(items))
	defer func() { p.metrics.IncRecordsCreated(KindMenuItem, len(ids)) }()

	for _, item := range items {
		p.checkDefaultValues(&item.Record)
		if item.Type == "" {
			item.Type = "component"
		}
		if item.CreatedUserID == 0 {
			item.CreatedUserID = userID
		}
		item.BrowserNav = 0
		item.ClientID = 0
		item.Level = 1
		if item.ParentID == 0 {
			item.ParentID = domain.RootMenuItemID
		}
		item.Home = false

		id, err := p.host.MenuItems.Save(ctx, item)
		if err != nil {
			return ids, err
		}
		item.ID = id
		ids = append(ids, id)
	}
	return ids, nil
}
