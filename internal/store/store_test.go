package store_test

import (
	"testing"

	"github.com/johnwards/sampledata/internal/store"
	"github.com/johnwards/sampledata/internal/testhelpers"
)

var (
	_ store.CategoryStore  = (*store.SQLiteCategoryStore)(nil)
	_ store.ArticleStore   = (*store.SQLiteArticleStore)(nil)
	_ store.FieldStore     = (*store.SQLiteFieldStore)(nil)
	_ store.MenuStore      = (*store.SQLiteMenuStore)(nil)
	_ store.MenuItemStore  = (*store.SQLiteMenuItemStore)(nil)
	_ store.ComponentStore = (*store.SQLiteComponentStore)(nil)
	_ store.UserStore      = (*store.SQLiteUserStore)(nil)
	_ store.StepLogStore   = (*store.SQLiteStepLogStore)(nil)
)

func setupStore(t *testing.T) *store.Store {
	t.Helper()
	return testhelpers.NewSeededStore(t)
}
