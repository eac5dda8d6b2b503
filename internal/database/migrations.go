package database

// migrations is an ordered list of SQL migration groups. Each entry is a slice
// of SQL statements that are executed together in a single transaction. The
// version number is the 1-based index into this slice.
var migrations = [][]string{
	// Migration 1: content model tables
	{
		`CREATE TABLE users (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			username TEXT UNIQUE NOT NULL,
			email TEXT UNIQUE NOT NULL,
			created_at TEXT NOT NULL
		)`,

		`CREATE TABLE extensions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			element TEXT UNIQUE NOT NULL,
			name TEXT NOT NULL,
			enabled BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TEXT NOT NULL
		)`,

		`CREATE TABLE categories (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			parent_id INTEGER NOT NULL DEFAULT 0,
			level INTEGER NOT NULL DEFAULT 0,
			extension TEXT NOT NULL,
			title TEXT NOT NULL,
			alias TEXT NOT NULL,
			description TEXT DEFAULT '',
			access INTEGER NOT NULL DEFAULT 1,
			published INTEGER NOT NULL DEFAULT 1,
			language TEXT NOT NULL DEFAULT '*',
			params TEXT DEFAULT '{}',
			metakey TEXT DEFAULT '',
			metadesc TEXT DEFAULT '',
			xreference TEXT DEFAULT '',
			created_user_id INTEGER NOT NULL DEFAULT 0,
			created_at TEXT NOT NULL,
			UNIQUE(extension, parent_id, alias)
		)`,
		`CREATE INDEX idx_categories_parent ON categories(parent_id)`,

		`CREATE TABLE content (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			catid INTEGER NOT NULL,
			title TEXT NOT NULL,
			alias TEXT NOT NULL,
			introtext TEXT NOT NULL DEFAULT '',
			fulltext TEXT NOT NULL DEFAULT '',
			state INTEGER NOT NULL DEFAULT 1,
			featured BOOLEAN NOT NULL DEFAULT FALSE,
			access INTEGER NOT NULL DEFAULT 1,
			language TEXT NOT NULL DEFAULT '*',
			images TEXT DEFAULT '',
			params TEXT DEFAULT '{}',
			metakey TEXT DEFAULT '',
			metadesc TEXT DEFAULT '',
			xreference TEXT DEFAULT '',
			created_by INTEGER NOT NULL DEFAULT 0,
			created_at TEXT NOT NULL,
			UNIQUE(catid, alias),
			FOREIGN KEY (catid) REFERENCES categories(id)
		)`,
		`CREATE INDEX idx_content_catid ON content(catid, state)`,

		`CREATE TABLE fields (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			context TEXT NOT NULL,
			name TEXT NOT NULL,
			label TEXT NOT NULL,
			title TEXT NOT NULL,
			type TEXT NOT NULL,
			group_id INTEGER NOT NULL DEFAULT 0,
			state INTEGER NOT NULL DEFAULT 1,
			access INTEGER NOT NULL DEFAULT 1,
			language TEXT NOT NULL DEFAULT '*',
			description TEXT DEFAULT '',
			params TEXT DEFAULT '{}',
			fieldparams TEXT DEFAULT '{}',
			created_user_id INTEGER NOT NULL DEFAULT 0,
			created_at TEXT NOT NULL,
			UNIQUE(context, name)
		)`,

		`CREATE TABLE fields_categories (
			field_id INTEGER NOT NULL,
			category_id INTEGER NOT NULL,
			PRIMARY KEY (field_id, category_id),
			FOREIGN KEY (field_id) REFERENCES fields(id),
			FOREIGN KEY (category_id) REFERENCES categories(id)
		)`,

		`CREATE TABLE fields_values (
			field_id INTEGER NOT NULL,
			item_id INTEGER NOT NULL,
			value TEXT,
			PRIMARY KEY (field_id, item_id),
			FOREIGN KEY (field_id) REFERENCES fields(id)
		)`,
		`CREATE INDEX idx_fields_values_item ON fields_values(item_id)`,

		`CREATE TABLE menu_types (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			menutype TEXT UNIQUE NOT NULL,
			title TEXT NOT NULL,
			description TEXT DEFAULT '',
			created_at TEXT NOT NULL
		)`,

		`CREATE TABLE menu (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			menutype TEXT NOT NULL,
			title TEXT NOT NULL,
			alias TEXT NOT NULL,
			link TEXT NOT NULL,
			type TEXT NOT NULL,
			component_id INTEGER NOT NULL DEFAULT 0,
			parent_id INTEGER NOT NULL DEFAULT 0,
			level INTEGER NOT NULL DEFAULT 0,
			browser_nav INTEGER NOT NULL DEFAULT 0,
			client_id INTEGER NOT NULL DEFAULT 0,
			home BOOLEAN NOT NULL DEFAULT FALSE,
			template_style_id INTEGER NOT NULL DEFAULT 0,
			published INTEGER NOT NULL DEFAULT 1,
			access INTEGER NOT NULL DEFAULT 1,
			language TEXT NOT NULL DEFAULT '*',
			params TEXT DEFAULT '{}',
			created_user_id INTEGER NOT NULL DEFAULT 0,
			created_at TEXT NOT NULL,
			UNIQUE(client_id, parent_id, alias, language)
		)`,
		`CREATE INDEX idx_menu_menutype ON menu(menutype)`,

		`CREATE TABLE step_log (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			type TEXT NOT NULL,
			step INTEGER NOT NULL,
			success BOOLEAN NOT NULL,
			message TEXT,
			duration_ms INTEGER,
			correlation_id TEXT,
			created_at TEXT NOT NULL
		)`,
		`CREATE INDEX idx_step_log_time ON step_log(created_at)`,
	},
}
