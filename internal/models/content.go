package models

// ContentKind tags the closed set of moderatable content types.
type ContentKind string

const (
	KindTopic    ContentKind = "topic"
	KindPost     ContentKind = "post"
	KindResource ContentKind = "resource"
	KindVideo    ContentKind = "video"
)

// ContentKinds lists every valid kind, in display order.
var ContentKinds = []ContentKind{KindTopic, KindPost, KindResource, KindVideo}

// Valid reports whether k belongs to the closed set.
func (k ContentKind) Valid() bool {
	switch k {
	case KindTopic, KindPost, KindResource, KindVideo:
		return true
	}
	return false
}
