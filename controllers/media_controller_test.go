package controllers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMediaCreateRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	mc := NewMediaController(nil)
	r := gin.New()
	r.POST("/media", mc.Create)
	return r
}

func TestMediaCreateRejectsNonMultipartBody(t *testing.T) {
	r := newMediaCreateRouter()

	req := httptest.NewRequest(http.MethodPost, "/media", strings.NewReader(`{"file":"nope"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "invalid multipart", body["error"])
}

func TestMediaCreateRejectsMissingFileField(t *testing.T) {
	r := newMediaCreateRouter()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("attachment", "olive.png")
	require.NoError(t, err)
	_, err = part.Write([]byte("not the field the handler wants"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/media", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "missing file field", body["error"])
}
