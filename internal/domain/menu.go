package domain

// RootMenuItemID is the id of the menu tree root.
const RootMenuItemID int64 = 1

// MaxMenuTypeLength is the longest menutype the content model accepts.
const MaxMenuTypeLength = 24

// Menu is a named container of menu items, addressed by its menutype.
type Menu struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	MenuType    string `json:"menutype"`
	Description string `json:"description"`
}

// MenuItem is a single link inside a menu.
type MenuItem struct {
	Record
	MenuType        string `json:"menutype"`
	Link            string `json:"link"`
	Type            string `json:"type"`
	ComponentID     int64  `json:"componentId"`
	ParentID        int64  `json:"parentId"`
	Level           int    `json:"level"`
	BrowserNav      int    `json:"browserNav"`
	ClientID        int    `json:"clientId"`
	Home            bool   `json:"home"`
	TemplateStyleID int64  `json:"templateStyleId"`
}
