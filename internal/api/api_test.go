package api

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"soulid/internal/db"
	"soulid/internal/events"
	"soulid/internal/sandbox"
	"soulid/internal/storage"
	"soulid/internal/suggestions"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const (
	aliceWallet = "0xABCDEF0123456789abcdef0123456789ABCDEF01"
	testSecret  = "test-secret"
	unusedUUID  = "123e4567-e89b-12d3-a456-426614174000"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []events.TokenMinted
}

func (p *recordingPublisher) PublishTokenMinted(_ context.Context, e events.TokenMinted) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
	return nil
}

type testServer struct {
	handler   http.Handler
	db        *gorm.DB
	redis     *miniredis.Miniredis
	publisher *recordingPublisher
	uploadDir string
	store     *sandbox.Store
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	dir := t.TempDir()

	conn, err := db.Open("sqlite", filepath.Join(dir, "soulid.db"))
	require.NoError(t, err)
	require.NoError(t, db.Migrate(conn))

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	uploadDir := filepath.Join(dir, "uploads")
	uploader, err := storage.NewLocalUploader(uploadDir, "/uploads")
	require.NoError(t, err)

	catalog, err := suggestions.Load()
	require.NoError(t, err)

	pub := &recordingPublisher{}
	store := sandbox.NewStore(filepath.Join(dir, "store.json"))
	router := NewRouter(Deps{
		DB:            conn,
		Redis:         rdb,
		Uploader:      uploader,
		UploadDir:     uploadDir,
		Publisher:     pub,
		Sandbox:       store,
		Catalog:       catalog,
		JWTSecret:     testSecret,
		PublicBaseURL: "https://soulid.example",
	})
	return &testServer{
		handler:   WithCORS(router, []string{"*"}),
		db:        conn,
		redis:     mr,
		publisher: pub,
		uploadDir: uploadDir,
		store:     store,
	}
}

func (s *testServer) do(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	s.handler.ServeHTTP(w, req)
	return w
}

func (s *testServer) get(path string) *httptest.ResponseRecorder {
	return s.do(httptest.NewRequest(http.MethodGet, path, nil))
}

func (s *testServer) postJSON(t *testing.T, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	return s.do(req)
}

type upload struct {
	field    string
	filename string
	content  string
}

func (s *testServer) postForm(t *testing.T, path string, fields map[string]string, file *upload) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if file != nil {
		fw, err := mw.CreateFormFile(file.field, file.filename)
		require.NoError(t, err)
		_, err = fw.Write([]byte(file.content))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return s.do(req)
}

// createProfile registers a profile and returns its ID
func (s *testServer) createProfile(t *testing.T, name, email, wallet string) string {
	t.Helper()
	w := s.postForm(t, "/api/create-profile", map[string]string{
		"name":          name,
		"email":         email,
		"walletAddress": wallet,
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var resp struct {
		Profile ProfileResponse `json:"profile"`
	}
	decode(t, w, &resp)
	return resp.Profile.ID
}

// mintToken mints a token and returns its response projection
func (s *testServer) mintToken(t *testing.T, body map[string]any) TokenResponse {
	t.Helper()
	w := s.postJSON(t, "/api/mint-token", body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var resp struct {
		Message string        `json:"message"`
		Token   TokenResponse `json:"token"`
	}
	decode(t, w, &resp)
	require.Equal(t, "Token minted successfully", resp.Message)
	return resp.Token
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v), w.Body.String())
}

func message(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Message string `json:"message"`
	}
	decode(t, w, &body)
	return body.Message
}

func degreeBody(profileID string) map[string]any {
	return map[string]any{
		"profileId":    profileID,
		"type":         "degree",
		"title":        "BSc",
		"issuer":       "MIT",
		"date":         "2024-01-01",
		"degreeName":   "Computer Science",
		"fieldOfStudy": "CS",
	}
}

func lower(s string) string { return strings.ToLower(s) }
