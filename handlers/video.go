// video.go - Video CRUD handlers plus file upload

package handlers

import (
	"fmt"
	"go-video-backend/config"
	"go-video-backend/database"
	"go-video-backend/models"
	"net/http"
	"os"
	"path"
	"path/filepath"

	"github.com/gin-gonic/gin"
)

type VideoInput struct { // Accepted scalar fields for create and full update
	Title      string  `json:"title" binding:"required"`              // Display title (required)
	VideoFile  *string `json:"video_file"`                            // Optional stored-file path
	YouTubeURL *string `json:"youtube_url" binding:"omitempty,url"`   // Optional, must parse as a URL when present
	Folder     uint    `json:"folder" binding:"required"`             // Owning folder id (required)
}

type VideoPatchInput struct { // Partial update: only present fields are applied
	Title      *string `json:"title"`
	VideoFile  *string `json:"video_file"`
	YouTubeURL *string `json:"youtube_url" binding:"omitempty,url"`
	Folder     *uint   `json:"folder"`
}

// folderExists reports whether the given folder id is present.
func folderExists(id uint) bool {
	var folder models.Folder
	return database.DB.Select("id").First(&folder, id).Error == nil
}

func ListVideos(c *gin.Context) { // GET /api/videos
	var videos []models.Video
	if err := database.DB.Order("id").Find(&videos).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	resp := []VideoResponse{}
	for _, v := range videos {
		resp = append(resp, serializeVideo(v))
	}
	c.JSON(http.StatusOK, resp)
}

func GetVideo(c *gin.Context) { // GET /api/videos/:id
	var video models.Video
	if err := database.DB.First(&video, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "video not found"})
		return
	}
	c.JSON(http.StatusOK, serializeVideo(video))
}

func CreateVideo(c *gin.Context) { // POST /api/videos
	var input VideoInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !folderExists(input.Folder) { // No floating videos
		c.JSON(http.StatusBadRequest, gin.H{"folder": "folder does not exist"})
		return
	}
	video := models.Video{
		Title:      input.Title,
		VideoFile:  input.VideoFile,
		YouTubeURL: input.YouTubeURL,
		FolderID:   input.Folder,
	}
	if err := database.DB.Create(&video).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, serializeVideo(video))
}

func UpdateVideo(c *gin.Context) { // PUT /api/videos/:id (full update)
	var video models.Video
	if err := database.DB.First(&video, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "video not found"})
		return
	}
	var input VideoInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !folderExists(input.Folder) {
		c.JSON(http.StatusBadRequest, gin.H{"folder": "folder does not exist"})
		return
	}
	video.Title = input.Title
	video.VideoFile = input.VideoFile
	video.YouTubeURL = input.YouTubeURL
	video.FolderID = input.Folder
	if err := database.DB.Save(&video).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, serializeVideo(video))
}

func PatchVideo(c *gin.Context) { // PATCH /api/videos/:id (partial update)
	var video models.Video
	if err := database.DB.First(&video, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "video not found"})
		return
	}
	var input VideoPatchInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Folder != nil {
		if !folderExists(*input.Folder) {
			c.JSON(http.StatusBadRequest, gin.H{"folder": "folder does not exist"})
			return
		}
		video.FolderID = *input.Folder
	}
	if input.Title != nil {
		video.Title = *input.Title
	}
	if input.VideoFile != nil {
		video.VideoFile = input.VideoFile
	}
	if input.YouTubeURL != nil {
		video.YouTubeURL = input.YouTubeURL
	}
	if err := database.DB.Save(&video).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, serializeVideo(video))
}

func DeleteVideo(c *gin.Context) { // DELETE /api/videos/:id
	var video models.Video
	if err := database.DB.First(&video, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "video not found"})
		return
	}
	if err := database.DB.Delete(&video).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// UploadVideoFile - POST /api/videos/:id/upload (multipart, field "file")
// Stores the uploaded file under the media directory and records its
// media-relative path on the video. Serving the stored files is a concern of
// the deployment (reverse proxy), not of this API.
func UploadVideoFile(c *gin.Context) {
	var video models.Video
	if err := database.DB.First(&video, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "video not found"})
		return
	}
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"file": "no file provided"})
		return
	}
	cfg := config.Load()
	dir := filepath.Join(cfg.MediaDir, "videos")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	// Prefix with the video id so uploads for different videos never collide
	name := fmt.Sprintf("%d_%s", video.ID, filepath.Base(file.Filename))
	if err := c.SaveUploadedFile(file, filepath.Join(dir, name)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	rel := path.Join("videos", name)
	video.VideoFile = &rel
	if err := database.DB.Save(&video).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, serializeVideo(video))
}
