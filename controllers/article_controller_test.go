package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-admin/models"
)

func TestArticleAPI_CreateSetsAuthorToCaller(t *testing.T) {
	r, db := newTestRouter(t)
	alice := createTestUser(t, db, "alice", models.RoleBlogger)

	w := performJSON(r, http.MethodPost, "/api/articles", alice.ApiToken, map[string]string{
		"title":       "Hi",
		"description": "World",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "Hi", body["title"])
	assert.Equal(t, "World", body["description"])

	author := body["author"].(map[string]any)
	assert.Equal(t, float64(alice.ID), author["id"])
	assert.Equal(t, "alice", author["username"])
	assert.NotContains(t, author, "password")
	assert.NotContains(t, author, "apiToken")
	assert.NotContains(t, author, "role")
}

func TestArticleAPI_AuthorFieldInPayloadIgnored(t *testing.T) {
	r, db := newTestRouter(t)
	alice := createTestUser(t, db, "alice", models.RoleBlogger)
	createTestUser(t, db, "bob", models.RoleBlogger)

	// A supplied author is never consulted; authorship is the caller's.
	w := performJSON(r, http.MethodPost, "/api/articles", alice.ApiToken, map[string]any{
		"title":       "Hi",
		"description": "World",
		"author":      2,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	author := decodeBody(t, w)["author"].(map[string]any)
	assert.Equal(t, float64(alice.ID), author["id"])
}

func TestArticleAPI_CreateRequiresToken(t *testing.T) {
	r, _ := newTestRouter(t)

	w := performJSON(r, http.MethodPost, "/api/articles", "", map[string]string{
		"title":       "Hi",
		"description": "World",
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestArticleAPI_ListIsPublic(t *testing.T) {
	r, db := newTestRouter(t)
	alice := createTestUser(t, db, "alice", models.RoleBlogger)

	w := performJSON(r, http.MethodPost, "/api/articles", alice.ApiToken, map[string]string{
		"title":       "Hi",
		"description": "World",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = performJSON(r, http.MethodGet, "/api/articles", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var list []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, "Hi", list[0]["title"])
	assert.NotContains(t, list[0], "author", "list view excludes author detail")
}

func TestArticleAPI_AdminCannotManageOthersArticle(t *testing.T) {
	r, db := newTestRouter(t)
	alice := createTestUser(t, db, "alice", models.RoleBlogger)
	admin := createTestUser(t, db, "root", models.RoleAdmin)

	w := performJSON(r, http.MethodPost, "/api/articles", alice.ApiToken, map[string]string{
		"title":       "Hi",
		"description": "World",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	articleID := uint(decodeBody(t, w)["id"].(float64))

	w = performJSON(r, http.MethodPut, fmt.Sprintf("/api/articles/%d", articleID), admin.ApiToken, map[string]string{
		"title": "Edited",
	})
	require.Equal(t, http.StatusForbidden, w.Code)

	w = performJSON(r, http.MethodDelete, fmt.Sprintf("/api/articles/%d", articleID), admin.ApiToken, nil)
	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestArticleAPI_AuthorUpdatesAndDeletes(t *testing.T) {
	r, db := newTestRouter(t)
	alice := createTestUser(t, db, "alice", models.RoleBlogger)

	w := performJSON(r, http.MethodPost, "/api/articles", alice.ApiToken, map[string]string{
		"title":       "Hi",
		"description": "World",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	articleID := uint(decodeBody(t, w)["id"].(float64))

	w = performJSON(r, http.MethodPut, fmt.Sprintf("/api/articles/%d", articleID), alice.ApiToken, map[string]string{
		"title": "Edited",
	})
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Edited", body["title"])
	assert.Equal(t, "World", body["description"], "unsupplied fields stay untouched")

	w = performJSON(r, http.MethodDelete, fmt.Sprintf("/api/articles/%d", articleID), alice.ApiToken, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = performJSON(r, http.MethodGet, fmt.Sprintf("/api/articles/%d", articleID), "", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestArticleAPI_CreateBlankFields(t *testing.T) {
	r, db := newTestRouter(t)
	alice := createTestUser(t, db, "alice", models.RoleBlogger)

	w := performJSON(r, http.MethodPost, "/api/articles", alice.ApiToken, map[string]string{})
	require.Equal(t, http.StatusBadRequest, w.Code)

	message := decodeBody(t, w)["message"].(string)
	assert.Contains(t, message, "title must not be blank")
	assert.Contains(t, message, "description must not be blank")
}

func TestArticleAPI_DetailViewEmbedsAuthorSummary(t *testing.T) {
	r, db := newTestRouter(t)
	alice := createTestUser(t, db, "alice", models.RoleBlogger)

	w := performJSON(r, http.MethodPost, "/api/articles", alice.ApiToken, map[string]string{
		"title":       "Hi",
		"description": "World",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	articleID := uint(decodeBody(t, w)["id"].(float64))

	w = performJSON(r, http.MethodGet, fmt.Sprintf("/api/articles/%d", articleID), "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	author := decodeBody(t, w)["author"].(map[string]any)
	assert.Equal(t, "alice", author["username"])
	assert.Equal(t, "A", author["firstName"])
	assert.Equal(t, "L", author["lastName"])
}
