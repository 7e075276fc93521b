// folder.go - Folder CRUD handlers
//
// Folders are global resources: reads are public, writes require any
// authenticated user (enforced by middleware.TokenAuth, not here).

package handlers

import (
	"errors"
	"go-video-backend/database"
	"go-video-backend/models"
	"net/http"

	"github.com/gin-gonic/gin"
)

// maxFolderDepth bounds the ancestor walk when validating a new parent.
const maxFolderDepth = 100

type FolderInput struct { // Accepted scalar fields; videos/subfolders are computed, never input
	Name   string `json:"name" binding:"required"` // Folder name (required)
	Parent *uint  `json:"parent"`                  // Optional parent folder id
}

type FolderPatchInput struct { // Partial update: only present fields are applied
	Name   *string `json:"name"`
	Parent *uint   `json:"parent"`
}

// validateParent checks that a prospective parent exists and that attaching
// folder id under it keeps the forest a forest: the folder must not appear in
// its own ancestor chain. id is 0 when the folder does not exist yet
// (create), in which case only existence and the depth bound are checked.
func validateParent(id uint, parentID *uint) error {
	depth := 0
	current := parentID
	for current != nil {
		if *current == id {
			return errors.New("folder cannot be its own ancestor")
		}
		depth++
		if depth > maxFolderDepth {
			return errors.New("folder nesting too deep")
		}
		var parent models.Folder
		if err := database.DB.Select("id", "parent_id").First(&parent, *current).Error; err != nil {
			return errors.New("parent folder does not exist")
		}
		current = parent.ParentID
	}
	return nil
}

func ListFolders(c *gin.Context) { // GET /api/folders
	var folders []models.Folder
	if err := database.DB.Order("id").Find(&folders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	resp := []FolderResponse{}
	for _, f := range folders {
		resp = append(resp, folderTree(f))
	}
	c.JSON(http.StatusOK, resp)
}

func GetFolder(c *gin.Context) { // GET /api/folders/:id
	var folder models.Folder
	if err := database.DB.First(&folder, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "folder not found"})
		return
	}
	c.JSON(http.StatusOK, folderTree(folder))
}

func CreateFolder(c *gin.Context) { // POST /api/folders
	var input FolderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := validateParent(0, input.Parent); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"parent": err.Error()})
		return
	}
	folder := models.Folder{Name: input.Name, ParentID: input.Parent}
	if err := database.DB.Create(&folder).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, folderTree(folder))
}

func UpdateFolder(c *gin.Context) { // PUT /api/folders/:id (full update)
	var folder models.Folder
	if err := database.DB.First(&folder, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "folder not found"})
		return
	}
	var input FolderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := validateParent(folder.ID, input.Parent); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"parent": err.Error()})
		return
	}
	folder.Name = input.Name
	folder.ParentID = input.Parent
	if err := database.DB.Save(&folder).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, folderTree(folder))
}

func PatchFolder(c *gin.Context) { // PATCH /api/folders/:id (partial update)
	var folder models.Folder
	if err := database.DB.First(&folder, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "folder not found"})
		return
	}
	var input FolderPatchInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Parent != nil {
		if err := validateParent(folder.ID, input.Parent); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"parent": err.Error()})
			return
		}
		folder.ParentID = input.Parent
	}
	if input.Name != nil {
		folder.Name = *input.Name
	}
	if err := database.DB.Save(&folder).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, folderTree(folder))
}

func DeleteFolder(c *gin.Context) { // DELETE /api/folders/:id
	var folder models.Folder
	if err := database.DB.First(&folder, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "folder not found"})
		return
	}
	// The storage layer cascades: every descendant subfolder and every video
	// in the subtree goes with this row, atomically.
	if err := database.DB.Delete(&folder).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
