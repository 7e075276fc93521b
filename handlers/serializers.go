// serializers.go - Read representations for folders and videos
//
// Folders serialize as a tree: every folder embeds all of its videos and,
// recursively, all of its subfolders. The tree is recomputed from the live
// tables on every read; nothing nested is ever stored.

package handlers

import (
	"go-video-backend/database"
	"go-video-backend/models"
	"time"
)

// VideoResponse is the external shape of a video (snake_case, folder as id).
type VideoResponse struct {
	ID         uint      `json:"id"`
	Title      string    `json:"title"`
	VideoFile  *string   `json:"video_file"`
	YouTubeURL *string   `json:"youtube_url"`
	Folder     uint      `json:"folder"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// FolderResponse is the external shape of a folder. Videos and Subfolders are
// read-only computed fields; they are never accepted on input.
type FolderResponse struct {
	ID         uint             `json:"id"`
	Name       string           `json:"name"`
	Parent     *uint            `json:"parent"`
	CreatedAt  time.Time        `json:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at"`
	Videos     []VideoResponse  `json:"videos"`
	Subfolders []FolderResponse `json:"subfolders"`
}

func serializeVideo(v models.Video) VideoResponse {
	return VideoResponse{
		ID:         v.ID,
		Title:      v.Title,
		VideoFile:  v.VideoFile,
		YouTubeURL: v.YouTubeURL,
		Folder:     v.FolderID,
		CreatedAt:  v.CreatedAt,
		UpdatedAt:  v.UpdatedAt,
	}
}

// serializeFolder builds the nested representation by recursive descent.
// The visited set guards against a cyclic parent chain created out-of-band:
// a folder already on the current path serializes with empty children
// instead of recursing forever. With the ancestor check on writes this
// branch should never be taken.
func serializeFolder(f models.Folder, visited map[uint]bool) FolderResponse {
	resp := FolderResponse{
		ID:         f.ID,
		Name:       f.Name,
		Parent:     f.ParentID,
		CreatedAt:  f.CreatedAt,
		UpdatedAt:  f.UpdatedAt,
		Videos:     []VideoResponse{},
		Subfolders: []FolderResponse{},
	}
	if visited[f.ID] {
		return resp // Cycle: truncate rather than recurse
	}
	visited[f.ID] = true

	var videos []models.Video
	database.DB.Where("folder_id = ?", f.ID).Order("id").Find(&videos)
	for _, v := range videos {
		resp.Videos = append(resp.Videos, serializeVideo(v))
	}

	var subfolders []models.Folder
	database.DB.Where("parent_id = ?", f.ID).Order("id").Find(&subfolders)
	for _, sub := range subfolders {
		resp.Subfolders = append(resp.Subfolders, serializeFolder(sub, visited))
	}
	return resp
}

// folderTree serializes a single folder with a fresh visited set.
func folderTree(f models.Folder) FolderResponse {
	return serializeFolder(f, map[uint]bool{})
}
