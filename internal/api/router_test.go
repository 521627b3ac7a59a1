package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"degreedecider/internal/api/controllers"
	"degreedecider/internal/infra"
	"degreedecider/internal/repositories"
	"degreedecider/internal/services"
	"degreedecider/pkg/logger"
	mem "degreedecider/pkg/memcache"
	"degreedecider/pkg/metrics"
	"degreedecider/pkg/utils"
)

const testAnonKey = "anon-key"

const artsAnswers = `{
	"subjects": "arts",
	"skills": ["creativity"],
	"theoryPractice": 30,
	"learningStyle": "visual",
	"interests": ["design"],
	"workEnvironment": "creative",
	"creativityStructure": 80
}`

func newTestRouter(t *testing.T, prefix string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	log := logger.NewNop()

	db, err := infra.OpenDatabase("sqlite", filepath.Join(t.TempDir(), "api.db"))
	require.NoError(t, err)
	t.Cleanup(func() { infra.CloseDatabase(db, log) })

	reg := prometheus.NewRegistry()
	m := metrics.MustNewMetrics(reg)

	tokens, err := utils.NewTokenIssuer("test-secret", time.Hour)
	require.NoError(t, err)
	gate := services.NewAccountService(repositories.NewAccountRepository(db), tokens, mem.NewRevokedTokens(), m, log)

	history := services.NewHistoryService(gate, repositories.NewQuizResultRepository(mem.NewKVStore(), log), m, log)

	return NewRouter(
		RouterOptions{Prefix: prefix, AnonKey: testAnonKey, Gatherer: reg},
		log,
		controllers.NewHealthController(),
		controllers.NewAccountController(gate),
		controllers.NewQuizController(services.NewRecommendationService(m), history),
	)
}

func call(t *testing.T, r http.Handler, method, path, token, body string) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var out map[string]any
	if bytes.HasPrefix(w.Body.Bytes(), []byte("{")) {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	}
	return w.Code, out
}

func signUpAndIn(t *testing.T, r http.Handler, prefix, email string) string {
	t.Helper()
	code, body := call(t, r, http.MethodPost, prefix+"/signup", testAnonKey,
		`{"email":"`+email+`","password":"secret123","name":"Ada"}`)
	require.Equal(t, http.StatusOK, code, body)

	code, body = call(t, r, http.MethodPost, prefix+"/signin", "", `{"email":"`+email+`","password":"secret123"}`)
	require.Equal(t, http.StatusOK, code, body)
	token, _ := body["accessToken"].(string)
	require.NotEmpty(t, token)
	return token
}

func TestRouter_Health(t *testing.T) {
	r := newTestRouter(t, "")

	code, body := call(t, r, http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ok", body["status"])
}

func TestRouter_Prefix(t *testing.T) {
	r := newTestRouter(t, "/make-server")

	code, _ := call(t, r, http.MethodGet, "/make-server/health", "", "")
	assert.Equal(t, http.StatusOK, code)

	code, _ = call(t, r, http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusNotFound, code)
}

func TestRouter_SignUp(t *testing.T) {
	r := newTestRouter(t, "")
	payload := `{"email":"ada@example.com","password":"secret123","name":"Ada"}`

	code, _ := call(t, r, http.MethodPost, "/signup", "", payload)
	assert.Equal(t, http.StatusUnauthorized, code)

	code, body := call(t, r, http.MethodPost, "/signup", testAnonKey, `{"email":"ada@example.com"}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Email, password, and name are required", body["error"])

	code, body = call(t, r, http.MethodPost, "/signup", testAnonKey, payload)
	require.Equal(t, http.StatusOK, code)
	user, _ := body["user"].(map[string]any)
	assert.Equal(t, "ada@example.com", user["email"])
	assert.Equal(t, "Ada", user["name"])

	code, body = call(t, r, http.MethodPost, "/signup", testAnonKey, payload)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.NotEmpty(t, body["error"])
}

func TestRouter_SaveAndHistory(t *testing.T) {
	r := newTestRouter(t, "")
	token := signUpAndIn(t, r, "", "ada@example.com")

	code, body := call(t, r, http.MethodGet, "/history", token, "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, []any{}, body["results"])

	code, body = call(t, r, http.MethodPost, "/recommend", "", artsAnswers)
	require.Equal(t, http.StatusOK, code)
	degree := body["degree"].(map[string]any)
	assert.Equal(t, "Graphic Design", degree["name"])
	degreeJSON, err := json.Marshal(degree)
	require.NoError(t, err)

	save := `{"answers":` + artsAnswers + `,"degree":` + string(degreeJSON) + `}`
	code, body = call(t, r, http.MethodPost, "/save-result", token, save)
	require.Equal(t, http.StatusOK, code, body)
	assert.Equal(t, true, body["success"])
	first := body["resultId"].(float64)

	time.Sleep(2 * time.Millisecond)
	code, body = call(t, r, http.MethodPost, "/save-result", token, save)
	require.Equal(t, http.StatusOK, code, body)
	second := body["resultId"].(float64)
	assert.Greater(t, second, first)

	code, body = call(t, r, http.MethodGet, "/history", token, "")
	require.Equal(t, http.StatusOK, code)
	results := body["results"].([]any)
	require.Len(t, results, 2)
	newest := results[0].(map[string]any)
	assert.Equal(t, second, newest["timestamp"])
	assert.Equal(t, "ada@example.com", newest["userEmail"])
	assert.Equal(t, "Ada", newest["userName"])
	assert.NotEmpty(t, newest["createdAt"])
	assert.Equal(t, "Graphic Design", newest["degree"].(map[string]any)["name"])
}

func TestRouter_HistoryIsPerUser(t *testing.T) {
	r := newTestRouter(t, "")
	ada := signUpAndIn(t, r, "", "ada@example.com")
	grace := signUpAndIn(t, r, "", "grace@example.com")

	save := `{"answers":` + artsAnswers + `,"degree":{"name":"Graphic Design"}}`
	code, _ := call(t, r, http.MethodPost, "/save-result", ada, save)
	require.Equal(t, http.StatusOK, code)

	code, body := call(t, r, http.MethodGet, "/history", grace, "")
	require.Equal(t, http.StatusOK, code)
	assert.Empty(t, body["results"])
}

func TestRouter_Unauthorized(t *testing.T) {
	r := newTestRouter(t, "")

	for _, token := range []string{"", "not-a-token"} {
		code, body := call(t, r, http.MethodGet, "/history", token, "")
		assert.Equal(t, http.StatusUnauthorized, code)
		assert.Equal(t, "Unauthorized - please sign in", body["error"])
		assert.NotEmpty(t, body["trace_id"])

		// A broken body does not change the answer when the caller is unknown.
		code, _ = call(t, r, http.MethodPost, "/save-result", token, "{broken")
		assert.Equal(t, http.StatusUnauthorized, code)
	}
}

func TestRouter_SaveResultBadRequest(t *testing.T) {
	r := newTestRouter(t, "")
	token := signUpAndIn(t, r, "", "ada@example.com")

	for name, body := range map[string]string{
		"broken json":     "{broken",
		"missing degree":  `{"answers":` + artsAnswers + `}`,
		"missing answers": `{"degree":{"name":"Graphic Design"}}`,
		"bad answer":      `{"answers":{"subjects":"astrology"},"degree":{"name":"Graphic Design"}}`,
	} {
		t.Run(name, func(t *testing.T) {
			code, resp := call(t, r, http.MethodPost, "/save-result", token, body)
			assert.Equal(t, http.StatusBadRequest, code)
			assert.NotEmpty(t, resp["error"])
		})
	}

	code, body := call(t, r, http.MethodGet, "/history", token, "")
	require.Equal(t, http.StatusOK, code)
	assert.Empty(t, body["results"])
}

func TestRouter_SignOutAndSession(t *testing.T) {
	r := newTestRouter(t, "")
	token := signUpAndIn(t, r, "", "ada@example.com")

	code, body := call(t, r, http.MethodGet, "/session", token, "")
	require.Equal(t, http.StatusOK, code)
	assert.NotNil(t, body["session"])

	code, _ = call(t, r, http.MethodPost, "/signout", token, "")
	require.Equal(t, http.StatusOK, code)

	code, body = call(t, r, http.MethodGet, "/session", token, "")
	require.Equal(t, http.StatusOK, code)
	assert.Nil(t, body["session"])

	code, _ = call(t, r, http.MethodGet, "/history", token, "")
	assert.Equal(t, http.StatusUnauthorized, code)
}

func TestRouter_QuestionsAndRecommend(t *testing.T) {
	r := newTestRouter(t, "")

	code, body := call(t, r, http.MethodGet, "/questions", "", "")
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, body["questions"], 7)

	code, _ = call(t, r, http.MethodPost, "/recommend", "", `{"subjects":"arts"}`)
	assert.Equal(t, http.StatusBadRequest, code)
}
