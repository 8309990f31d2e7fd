// internal/domain/models/watchvideo.go
package models

// WatchVideo is an entry in the standalone watch catalog, distinct from the
// lesson videos embedded in courses.
type WatchVideo struct {
	ID           string `bson:"_id" json:"id"`
	VideoURL     string `bson:"videoUrl" json:"videoUrl"`
	Title        string `bson:"title" json:"title"`
	TitleCI      string `bson:"title_ci" json:"-"`
	Description  string `bson:"description" json:"description"`
	Duration     string `bson:"duration" json:"duration"`
	Channel      string `bson:"channel" json:"channel"`
	ThumbnailURL string `bson:"thumbnailUrl" json:"thumbnailUrl"`
}
