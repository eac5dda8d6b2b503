package store

import "database/sql"

// Store holds the content model sub-stores.
type Store struct {
	DB         *sql.DB
	Categories CategoryStore
	Articles   ArticleStore
	Fields     FieldStore
	Menus      MenuStore
	MenuItems  MenuItemStore
	Components ComponentStore
	Users      UserStore
	Steps      StepLogStore
}

// New creates a Store with all sub-stores initialized.
func New(db *sql.DB) *Store {
	return &Store{
		DB:         db,
		Categories: NewSQLiteCategoryStore(db),
		Articles:   NewSQLiteArticleStore(db),
		Fields:     NewSQLiteFieldStore(db),
		Menus:      NewSQLiteMenuStore(db),
		MenuItems:  NewSQLiteMenuItemStore(db),
		Components: NewSQLiteComponentStore(db),
		Users:      NewSQLiteUserStore(db),
		Steps:      NewSQLiteStepLogStore(db),
	}
}
