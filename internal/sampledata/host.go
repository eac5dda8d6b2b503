package sampledata

import (
	"context"

	"github.com/johnwards/sampledata/internal/domain"
)

// CategoryModel saves categories. Implementations validate the record, persist
// it and assign its ID.
type CategoryModel interface {
	Save(ctx context.Context, c *domain.Category) (int64, error)
}

// ArticleModel saves articles together with their custom field values.
type ArticleModel interface {
	Save(ctx context.Context, a *domain.Article) (int64, error)
}

// FieldModel saves custom field definitions. Save may normalise f.Name.
type FieldModel interface {
	Save(ctx context.Context, f *domain.Field) (int64, error)
}

// MenuModel saves menus.
type MenuModel interface {
	Save(ctx context.Context, m *domain.Menu) (int64, error)
}

// MenuItemModel saves menu items.
type MenuItemModel interface {
	Save(ctx context.Context, item *domain.MenuItem) (int64, error)
}

// ComponentResolver looks up installed components by element name.
type ComponentResolver interface {
	Lookup(ctx context.Context, element string) (*domain.Component, error)
}

// Host is the content model a plugin writes through. The plugin never assigns
// IDs or touches storage itself.
type Host struct {
	Categories CategoryModel
	Articles   ArticleModel
	Fields     FieldModel
	Menus      MenuModel
	MenuItems  MenuItemModel
	Components ComponentResolver
}
