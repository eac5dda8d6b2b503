package domain

// RootCategoryID is the id of the tree root every top-level category hangs from.
const RootCategoryID int64 = 1

// Category is a node of a per-extension category tree.
type Category struct {
	Record
	Description string `json:"description"`
	ParentID    int64  `json:"parentId"`
	Level       int    `json:"level"`
	Extension   string `json:"extension"`
}
