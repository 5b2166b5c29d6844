package http_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	handler "github.com/devfolio/blog-api/internal/handler/http"
	"github.com/devfolio/blog-api/internal/handler/http/dto"
	"github.com/devfolio/blog-api/internal/handler/http/mocks"
	"github.com/devfolio/blog-api/internal/infrastructure/validator"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	validator.RegisterCustomValidators()
	os.Exit(m.Run())
}

func setupRouter(blogUC *mocks.MockBlogUsecase, mediaUC *mocks.MockMediaUsecase, gate *mocks.MockAdminGate) *gin.Engine {
	r := gin.New()
	handler.NewRouter(blogUC, mediaUC, gate, nil).SetupRoutes(r)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, payload interface{}, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var body *bytes.Buffer
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewBuffer(raw)
	} else {
		body = bytes.NewBuffer(nil)
	}
	req, err := http.NewRequest(method, path, body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func adminHeader() map[string]string {
	return map[string]string{"X-Admin-Secret": "letmein"}
}

func TestListBlogs(t *testing.T) {
	r := setupRouter(mocks.NewMockBlogUsecase(), mocks.NewMockMediaUsecase(), mocks.NewMockAdminGate())

	w := doJSON(t, r, "GET", "/api/v1/blogs", nil, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var got []dto.BlogResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "mock-post", got[0].Slug)
}

func TestGetBlogBySlug(t *testing.T) {
	r := setupRouter(mocks.NewMockBlogUsecase(), mocks.NewMockMediaUsecase(), mocks.NewMockAdminGate())

	w := doJSON(t, r, "GET", "/api/v1/blogs/slug/mock-post", nil, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"views":5`)
}

func TestGetBlogBySlugNotFound(t *testing.T) {
	blogUC := mocks.NewMockBlogUsecase()
	blogUC.NotFoundOnGet = true
	r := setupRouter(blogUC, mocks.NewMockMediaUsecase(), mocks.NewMockAdminGate())

	w := doJSON(t, r, "GET", "/api/v1/blogs/slug/ghost", nil, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateBlog(t *testing.T) {
	blogUC := mocks.NewMockBlogUsecase()
	r := setupRouter(blogUC, mocks.NewMockMediaUsecase(), mocks.NewMockAdminGate())

	payload := dto.CreateBlogRequest{Title: "Mock Post", Content: "# mock", Published: true}
	w := doJSON(t, r, "POST", "/api/v1/blogs", payload, adminHeader())

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Mock Post", blogUC.LastCreateInput.Title)
}

func TestCreateBlogWrongSecret(t *testing.T) {
	blogUC := mocks.NewMockBlogUsecase()
	r := setupRouter(blogUC, mocks.NewMockMediaUsecase(), mocks.NewMockAdminGate())

	// Payload is perfectly valid; the secret alone decides.
	payload := dto.CreateBlogRequest{Title: "Mock Post", Content: "# mock"}
	w := doJSON(t, r, "POST", "/api/v1/blogs", payload, map[string]string{"X-Admin-Secret": "nope"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, blogUC.LastCreateInput.Title)
}

func TestCreateBlogNoSecret(t *testing.T) {
	r := setupRouter(mocks.NewMockBlogUsecase(), mocks.NewMockMediaUsecase(), mocks.NewMockAdminGate())

	payload := dto.CreateBlogRequest{Title: "Mock Post", Content: "# mock"}
	w := doJSON(t, r, "POST", "/api/v1/blogs", payload, nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateBlogWithSessionToken(t *testing.T) {
	r := setupRouter(mocks.NewMockBlogUsecase(), mocks.NewMockMediaUsecase(), mocks.NewMockAdminGate())

	payload := dto.CreateBlogRequest{Title: "Mock Post", Content: "# mock"}
	w := doJSON(t, r, "POST", "/api/v1/blogs", payload, map[string]string{"Authorization": "Bearer mock-admin-token"})

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestCreateBlogConflict(t *testing.T) {
	blogUC := mocks.NewMockBlogUsecase()
	blogUC.ConflictOnCreate = true
	r := setupRouter(blogUC, mocks.NewMockMediaUsecase(), mocks.NewMockAdminGate())

	payload := dto.CreateBlogRequest{Title: "Mock Post", Slug: "my-post", Content: "# mock"}
	w := doJSON(t, r, "POST", "/api/v1/blogs", payload, adminHeader())

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCreateBlogRejectsMalformedSlug(t *testing.T) {
	r := setupRouter(mocks.NewMockBlogUsecase(), mocks.NewMockMediaUsecase(), mocks.NewMockAdminGate())

	w := doJSON(t, r, "POST", "/api/v1/blogs", map[string]interface{}{
		"title":   "Mock Post",
		"content": "# mock",
		"slug":    "Not A Slug!",
	}, adminHeader())

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateBlogNotFound(t *testing.T) {
	blogUC := mocks.NewMockBlogUsecase()
	blogUC.NotFoundOnUpdate = true
	r := setupRouter(blogUC, mocks.NewMockMediaUsecase(), mocks.NewMockAdminGate())

	title := "New Title"
	w := doJSON(t, r, "PUT", "/api/v1/blogs/ghost", dto.UpdateBlogRequest{Title: &title}, adminHeader())

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteBlog(t *testing.T) {
	blogUC := mocks.NewMockBlogUsecase()
	r := setupRouter(blogUC, mocks.NewMockMediaUsecase(), mocks.NewMockAdminGate())

	w := doJSON(t, r, "DELETE", "/api/v1/blogs/mock-blog-id", nil, adminHeader())

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "mock-blog-id", blogUC.LastDeleteID)
}

func TestDeleteBlogMissingID(t *testing.T) {
	r := setupRouter(mocks.NewMockBlogUsecase(), mocks.NewMockMediaUsecase(), mocks.NewMockAdminGate())

	// No route param and no query param: validation error, not a 404.
	w := doJSON(t, r, "DELETE", "/api/v1/blogs", nil, adminHeader())

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteBlogNotFound(t *testing.T) {
	blogUC := mocks.NewMockBlogUsecase()
	blogUC.NotFoundOnDelete = true
	r := setupRouter(blogUC, mocks.NewMockMediaUsecase(), mocks.NewMockAdminGate())

	w := doJSON(t, r, "DELETE", "/api/v1/blogs/ghost", nil, adminHeader())

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestVerifyAdmin(t *testing.T) {
	r := setupRouter(mocks.NewMockBlogUsecase(), mocks.NewMockMediaUsecase(), mocks.NewMockAdminGate())

	w := doJSON(t, r, "POST", "/api/v1/auth/verify", dto.VerifyAdminRequest{Secret: "letmein"}, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "mock-admin-token")
}

func TestVerifyAdminWrongSecret(t *testing.T) {
	r := setupRouter(mocks.NewMockBlogUsecase(), mocks.NewMockMediaUsecase(), mocks.NewMockAdminGate())

	w := doJSON(t, r, "POST", "/api/v1/auth/verify", dto.VerifyAdminRequest{Secret: "nope"}, nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestVerifyAdminMisconfigured(t *testing.T) {
	gate := mocks.NewMockAdminGate()
	gate.Misconfig = true
	r := setupRouter(mocks.NewMockBlogUsecase(), mocks.NewMockMediaUsecase(), gate)

	w := doJSON(t, r, "POST", "/api/v1/auth/verify", dto.VerifyAdminRequest{Secret: "letmein"}, nil)

	// A missing configured secret is a server fault, not a credential
	// mismatch.
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func newUploadRequest(t *testing.T, withFile bool, headers map[string]string) *http.Request {
	t.Helper()
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	if withFile {
		part, err := mw.CreateFormFile("file", "cover.png")
		require.NoError(t, err)
		_, err = part.Write([]byte("png-bytes"))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req, err := http.NewRequest("POST", "/api/v1/upload", body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	return req
}

func TestUpload(t *testing.T) {
	r := setupRouter(mocks.NewMockBlogUsecase(), mocks.NewMockMediaUsecase(), mocks.NewMockAdminGate())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, newUploadRequest(t, true, adminHeader()))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/media/1700000000000-abc123.png")
}

func TestUploadNoFile(t *testing.T) {
	r := setupRouter(mocks.NewMockBlogUsecase(), mocks.NewMockMediaUsecase(), mocks.NewMockAdminGate())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, newUploadRequest(t, false, adminHeader()))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "file")
}

func TestUploadWrongSecret(t *testing.T) {
	r := setupRouter(mocks.NewMockBlogUsecase(), mocks.NewMockMediaUsecase(), mocks.NewMockAdminGate())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, newUploadRequest(t, true, map[string]string{"X-Admin-Secret": "nope"}))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestServeMedia(t *testing.T) {
	r := setupRouter(mocks.NewMockBlogUsecase(), mocks.NewMockMediaUsecase(), mocks.NewMockAdminGate())

	w := doJSON(t, r, "GET", "/media/1700000000000-abc123.png", nil, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	assert.Equal(t, "png-bytes", w.Body.String())
}

func TestServeMediaNotFound(t *testing.T) {
	mediaUC := mocks.NewMockMediaUsecase()
	mediaUC.NotFoundOnGet = true
	r := setupRouter(mocks.NewMockBlogUsecase(), mediaUC, mocks.NewMockAdminGate())

	w := doJSON(t, r, "GET", "/media/missing.png", nil, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
