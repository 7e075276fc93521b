// folder_test.go - Tests for folder CRUD, tree serialization, permissions
// and the cascade/cycle behavior of the folder hierarchy

package handlers

import (
	"bytes"
	"encoding/json"
	"go-video-backend/database"
	"go-video-backend/middleware"
	"go-video-backend/models"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

// setupFolderTestDB - Creates a fresh test database for folder tests
func setupFolderTestDB() {
	_ = os.Remove("test_folders.db")
	database.Connect("test_folders.db")
}

// setupFolderRouter wires the resource routes exactly like main.go, including
// the method-sensitive token middleware
func setupFolderRouter() *gin.Engine {
	r := gin.Default()
	api := r.Group("/api")
	api.Use(middleware.TokenAuth())
	{
		folders := api.Group("/folders")
		{
			folders.GET("", ListFolders)
			folders.POST("", CreateFolder)
			folders.GET("/:id", GetFolder)
			folders.PUT("/:id", UpdateFolder)
			folders.PATCH("/:id", PatchFolder)
			folders.DELETE("/:id", DeleteFolder)
		}
		videos := api.Group("/videos")
		{
			videos.GET("/:id", GetVideo)
		}
	}
	return r
}

// createFolderTestToken creates a user plus token directly in the DB and
// returns the bearer key
func createFolderTestToken() string {
	hash, _ := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.DefaultCost)
	user := models.User{Username: "folders@test", Email: "folders@test.com", Password: string(hash)}
	database.DB.Create(&user)
	token := models.Token{Key: uuid.NewString(), UserID: user.ID}
	database.DB.Create(&token)
	return token.Key
}

// doJSON sends a JSON request with an optional bearer token
func doJSON(r *gin.Engine, method, url string, payload interface{}, token string) *httptest.ResponseRecorder {
	var buf *bytes.Buffer
	if payload != nil {
		body, _ := json.Marshal(payload)
		buf = bytes.NewBuffer(body)
	} else {
		buf = bytes.NewBuffer(nil)
	}
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(method, url, buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	r.ServeHTTP(w, req)
	return w
}

// TestFolderRoundTrip: create then retrieve returns the same scalars plus
// empty videos/subfolders arrays
func TestFolderRoundTrip(t *testing.T) {
	setupFolderTestDB()
	router := setupFolderRouter()
	key := createFolderTestToken()

	w := doJSON(router, "POST", "/api/folders", FolderInput{Name: "Algebra"}, key)
	assert.Equal(t, 201, w.Code)

	var created FolderResponse
	json.Unmarshal(w.Body.Bytes(), &created)
	assert.Equal(t, "Algebra", created.Name)
	assert.Nil(t, created.Parent)

	w = doJSON(router, "GET", "/api/folders/1", nil, "")
	assert.Equal(t, 200, w.Code)

	var got FolderResponse
	json.Unmarshal(w.Body.Bytes(), &got)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "Algebra", got.Name)
	assert.NotNil(t, got.Videos)
	assert.NotNil(t, got.Subfolders)
	assert.Len(t, got.Videos, 0)     // Empty, not null
	assert.Len(t, got.Subfolders, 0) // Empty, not null
}

// TestFolderRecursiveNesting: A -> B -> C serializes as nested subfolders
func TestFolderRecursiveNesting(t *testing.T) {
	setupFolderTestDB()
	router := setupFolderRouter()
	key := createFolderTestToken()

	doJSON(router, "POST", "/api/folders", FolderInput{Name: "A"}, key)
	a := uint(1)
	doJSON(router, "POST", "/api/folders", FolderInput{Name: "B", Parent: &a}, key)
	b := uint(2)
	doJSON(router, "POST", "/api/folders", FolderInput{Name: "C", Parent: &b}, key)

	w := doJSON(router, "GET", "/api/folders/1", nil, "")
	assert.Equal(t, 200, w.Code)

	var tree FolderResponse
	json.Unmarshal(w.Body.Bytes(), &tree)
	assert.Equal(t, "A", tree.Name)
	assert.Len(t, tree.Subfolders, 1)
	assert.Equal(t, "B", tree.Subfolders[0].Name)
	assert.Len(t, tree.Subfolders[0].Subfolders, 1)
	assert.Equal(t, "C", tree.Subfolders[0].Subfolders[0].Name)
	assert.Len(t, tree.Subfolders[0].Subfolders[0].Subfolders, 0)
}

// TestFolderCascadeDelete: deleting A removes its videos, its subfolder and
// the subfolder's videos
func TestFolderCascadeDelete(t *testing.T) {
	setupFolderTestDB()
	router := setupFolderRouter()
	key := createFolderTestToken()

	folderA := models.Folder{Name: "A"}
	database.DB.Create(&folderA)
	folderB := models.Folder{Name: "B", ParentID: &folderA.ID}
	database.DB.Create(&folderB)
	videoV := models.Video{Title: "V", FolderID: folderA.ID}
	database.DB.Create(&videoV)
	videoW := models.Video{Title: "W", FolderID: folderB.ID}
	database.DB.Create(&videoW)

	w := doJSON(router, "DELETE", "/api/folders/1", nil, key)
	assert.Equal(t, 204, w.Code)

	// Everything under A is gone
	assert.Equal(t, 404, doJSON(router, "GET", "/api/folders/1", nil, "").Code)
	assert.Equal(t, 404, doJSON(router, "GET", "/api/folders/2", nil, "").Code)
	assert.Equal(t, 404, doJSON(router, "GET", "/api/videos/1", nil, "").Code)
	assert.Equal(t, 404, doJSON(router, "GET", "/api/videos/2", nil, "").Code)

	var folders, videos int64
	database.DB.Model(&models.Folder{}).Count(&folders)
	database.DB.Model(&models.Video{}).Count(&videos)
	assert.Equal(t, int64(0), folders)
	assert.Equal(t, int64(0), videos)
}

// TestFolderReadIsPublic: listing works with zero authentication
func TestFolderReadIsPublic(t *testing.T) {
	setupFolderTestDB()
	router := setupFolderRouter()

	w := doJSON(router, "GET", "/api/folders", nil, "")
	assert.Equal(t, 200, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}

// TestFolderWriteRequiresAuth: POST without a token is rejected, with a
// token it succeeds
func TestFolderWriteRequiresAuth(t *testing.T) {
	setupFolderTestDB()
	router := setupFolderRouter()

	w := doJSON(router, "POST", "/api/folders", FolderInput{Name: "x"}, "")
	assert.Equal(t, 401, w.Code)

	key := createFolderTestToken()
	w = doJSON(router, "POST", "/api/folders", FolderInput{Name: "x"}, key)
	assert.Equal(t, 201, w.Code)

	// A bogus token is rejected too
	w = doJSON(router, "POST", "/api/folders", FolderInput{Name: "x"}, "not-a-key")
	assert.Equal(t, 401, w.Code)
}

// TestFolderCycleRejected: a folder may not appear in its own ancestor chain
func TestFolderCycleRejected(t *testing.T) {
	setupFolderTestDB()
	router := setupFolderRouter()
	key := createFolderTestToken()

	doJSON(router, "POST", "/api/folders", FolderInput{Name: "A"}, key)
	a := uint(1)
	doJSON(router, "POST", "/api/folders", FolderInput{Name: "B", Parent: &a}, key)
	b := uint(2)

	// A under B would make A its own ancestor
	w := doJSON(router, "PATCH", "/api/folders/1", FolderPatchInput{Parent: &b}, key)
	assert.Equal(t, 400, w.Code)
	assert.Contains(t, w.Body.String(), "ancestor")

	// Self-parenting is the one-step cycle
	w = doJSON(router, "PUT", "/api/folders/1", FolderInput{Name: "A", Parent: &a}, key)
	assert.Equal(t, 400, w.Code)

	// A missing parent is a validation error, not a 500
	missing := uint(999)
	w = doJSON(router, "POST", "/api/folders", FolderInput{Name: "C", Parent: &missing}, key)
	assert.Equal(t, 400, w.Code)
	assert.Contains(t, w.Body.String(), "does not exist")
}

// TestFolderUpdate covers rename via PUT and PATCH
func TestFolderUpdate(t *testing.T) {
	setupFolderTestDB()
	router := setupFolderRouter()
	key := createFolderTestToken()

	doJSON(router, "POST", "/api/folders", FolderInput{Name: "Old"}, key)

	w := doJSON(router, "PUT", "/api/folders/1", FolderInput{Name: "New"}, key)
	assert.Equal(t, 200, w.Code)

	var got FolderResponse
	json.Unmarshal(w.Body.Bytes(), &got)
	assert.Equal(t, "New", got.Name)

	newer := "Newer"
	w = doJSON(router, "PATCH", "/api/folders/1", FolderPatchInput{Name: &newer}, key)
	assert.Equal(t, 200, w.Code)
	json.Unmarshal(w.Body.Bytes(), &got)
	assert.Equal(t, "Newer", got.Name)

	// Unknown id is a 404
	w = doJSON(router, "PUT", "/api/folders/42", FolderInput{Name: "nope"}, key)
	assert.Equal(t, 404, w.Code)
}
