package entity

import (
	"time"
)

// ImageCategory classifies an image's purpose. It never changes after the
// image is created.
type ImageCategory string

const (
	CategoryDocument       ImageCategory = "document"
	CategoryMoveInPicture  ImageCategory = "move_in_picture"
	CategoryMoveOutPicture ImageCategory = "move_out_picture"
)

func (c ImageCategory) Valid() bool {
	switch c {
	case CategoryDocument, CategoryMoveInPicture, CategoryMoveOutPicture:
		return true
	}
	return false
}

// ParseImageCategory accepts both the stored form ("move_in_picture") and
// the URL form ("move-in-pictures").
func ParseImageCategory(s string) (ImageCategory, bool) {
	switch s {
	case "document", "documents":
		return CategoryDocument, true
	case "move_in_picture", "move-in-pictures":
		return CategoryMoveInPicture, true
	case "move_out_picture", "move-out-pictures":
		return CategoryMoveOutPicture, true
	}
	return "", false
}

type UnitImage struct {
	ID            string            `json:"id" firestore:"id"`
	UnitID        string            `json:"unit_id" firestore:"unitId"`
	OwnerID       string            `json:"owner_id" firestore:"ownerId"`
	Category      ImageCategory     `json:"category" firestore:"category"`
	ObjectName    string            `json:"object_name" firestore:"objectName"`
	ThumbnailName string            `json:"thumbnail_name" firestore:"thumbnailName"`
	Renditions    map[string]string `json:"renditions" firestore:"renditions"`
	ContentType   string            `json:"content_type" firestore:"contentType"`
	Width         int               `json:"width" firestore:"width"`
	Height        int               `json:"height" firestore:"height"`
	CreatedAt     time.Time         `json:"created_at" firestore:"createdAt"`
}

// ObjectNames returns every stored object belonging to this image: the
// original plus all renditions.
func (i *UnitImage) ObjectNames() []string {
	names := []string{i.ObjectName}
	for _, name := range i.Renditions {
		names = append(names, name)
	}
	return names
}
