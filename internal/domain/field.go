package domain

// ArticleContext is the field context for content articles.
const ArticleContext = "com_content.article"

// Field is a custom field definition attached to a content context.
type Field struct {
	ID             int64          `json:"id"`
	Name           string         `json:"name"`
	Label          string         `json:"label"`
	Title          string         `json:"title"`
	Type           string         `json:"type"`
	Context        string         `json:"context"`
	GroupID        int64          `json:"groupId"`
	State          *State         `json:"state,omitempty"`
	Access         int            `json:"access"`
	Language       string         `json:"language"`
	Description    string         `json:"description"`
	Params         map[string]any `json:"params"`
	FieldParams    map[string]any `json:"fieldparams"`
	AssignedCatIDs []int64        `json:"assignedCatIds"`
	CreatedUserID  int64          `json:"createdUserId"`
	CreatedAt      string         `json:"createdAt,omitempty"`
}
