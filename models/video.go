// video.go - Defines the Video model (a reference to playable content)

package models

import "time"

// Video points at playable content: an uploaded file, an external YouTube
// URL, either, neither, or both. There is no either/or rule between the two.
// Every video belongs to exactly one folder and is removed when that folder
// is deleted.
type Video struct {
	ID         uint    `gorm:"primaryKey"`                                      // Unique video ID (primary key)
	Title      string  `gorm:"size:255;not null"`                               // Display title (required)
	VideoFile  *string `gorm:"column:video_file"`                               // Media-dir relative path of an uploaded file (optional)
	YouTubeURL *string `gorm:"column:youtube_url"`                              // External URL (optional, validated when present)
	FolderID   uint    `gorm:"not null;index"`                                  // Owning folder (required foreign key)
	Folder     Folder  `gorm:"foreignKey:FolderID;constraint:OnDelete:CASCADE"` // Deleting the folder deletes its videos
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
