package models

// ResourceType classifies a module resource.
type ResourceType string

const (
	ResourceLink     ResourceType = "link"
	ResourceText     ResourceType = "text"
	ResourceDocument ResourceType = "document"
	ResourceImage    ResourceType = "image"
	ResourceVideo    ResourceType = "video"
)

// RequiresAttachment reports whether a resource of this type must carry a
// binary upload.
func (t ResourceType) RequiresAttachment() bool {
	switch t {
	case ResourceDocument, ResourceImage, ResourceVideo:
		return true
	}
	return false
}

// Resource is one piece of material inside a module.
type Resource struct {
	ID           string       `json:"resource_id"`
	Title        string       `json:"title"`
	Type         ResourceType `json:"type"`
	OriginalName string       `json:"original_name,omitempty"`
	URL          string       `json:"url,omitempty"`
	Content      string       `json:"content,omitempty"`
}

// Key implements liststore.Keyed.
func (r Resource) Key() string { return r.ID }

// Module groups resources inside a course. OrderIdx is unique within the
// course; the backend enforces uniqueness and answers 409 on a duplicate.
type Module struct {
	ID          string     `json:"module_id"`
	CourseID    string     `json:"course_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	OrderIdx    int        `json:"order_idx"`
	Resources   []Resource `json:"resources"`
}

// Key implements liststore.Keyed.
func (m Module) Key() string { return m.ID }
