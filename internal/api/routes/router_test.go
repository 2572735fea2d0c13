package routes_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/leadradar/leadradar-api/internal/api/middleware"
	"github.com/leadradar/leadradar-api/internal/api/routes"
	"github.com/leadradar/leadradar-api/internal/config"
	"github.com/leadradar/leadradar-api/internal/testutils"
	"github.com/leadradar/leadradar-api/pkg/metrics"
	prometheustestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postForm(t *testing.T, r *gin.Engine, path, token string, values url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func get(t *testing.T, r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func registerAndLogin(t *testing.T, r *gin.Engine) string {
	t.Helper()

	w := postForm(t, r, "/api/auth/register", "", url.Values{
		"accountName": {"Acme AG"},
		"email":       {"owner@acme.example"},
		"name":        {"Owner"},
		"password":    {"supersecret"},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = postForm(t, r, "/api/auth/login", "", url.Values{
		"email":    {"owner@acme.example"},
		"password": {"supersecret"},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestLoginSetsSessionCookieAndRedirects(t *testing.T) {
	r, _ := testutils.SetupRouter(t)

	w := postForm(t, r, "/api/auth/register", "", url.Values{
		"accountName": {"Acme AG"},
		"email":       {"owner@acme.example"},
		"name":        {"Owner"},
		"password":    {"supersecret"},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = postForm(t, r, "/api/auth/login", "", url.Values{
		"email":      {"owner@acme.example"},
		"password":   {"supersecret"},
		"redirectTo": {"/admin"},
	})
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/admin", w.Header().Get("Location"))

	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)
	var found bool
	for _, c := range cookies {
		if c.Name == "lr_session" {
			found = true
			assert.NotEmpty(t, c.Value)
			assert.True(t, c.HttpOnly)
		}
	}
	assert.True(t, found, "expected lr_session cookie")
}

func TestLoginRejectsBadPassword(t *testing.T) {
	r, _ := testutils.SetupRouter(t)

	w := postForm(t, r, "/api/auth/register", "", url.Values{
		"accountName": {"Acme AG"},
		"email":       {"owner@acme.example"},
		"name":        {"Owner"},
		"password":    {"supersecret"},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = postForm(t, r, "/api/auth/login", "", url.Values{
		"email":    {"owner@acme.example"},
		"password": {"wrong"},
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateFormSubstitutesIDPlaceholderInRedirect(t *testing.T) {
	r, _ := testutils.SetupRouter(t)
	token := registerAndLogin(t, r)

	w := postForm(t, r, "/api/forms", token, url.Values{
		"name":       {"Messeformular"},
		"redirectTo": {"/admin/forms/{id}"},
	})
	require.Equal(t, http.StatusSeeOther, w.Code, w.Body.String())

	loc := w.Header().Get("Location")
	assert.NotContains(t, loc, "{id}")
	require.True(t, strings.HasPrefix(loc, "/admin/forms/"), loc)

	// The redirect must point at the form that was just created.
	id := strings.TrimPrefix(loc, "/admin/forms/")
	w = get(t, r, "/api/forms/"+id, token)
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func TestCaptureFlowEndToEnd(t *testing.T) {
	r, _ := testutils.SetupRouter(t)
	token := registerAndLogin(t, r)

	// Create a form.
	w := postForm(t, r, "/api/forms", token, url.Values{
		"name": {"Messeformular"},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created struct {
		ID uint `json:"ID"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotZero(t, created.ID)
	formID := strconv.FormatUint(uint64(created.ID), 10)

	// Add two fields through the builder endpoint.
	w = postForm(t, r, "/api/form-fields", token, url.Values{
		"formId":   {formID},
		"label":    {"Name"},
		"type":     {"TEXT"},
		"required": {"on"},
	})
	require.Equal(t, http.StatusSeeOther, w.Code, w.Body.String())
	assert.Equal(t, "/admin/forms/"+formID, w.Header().Get("Location"))

	w = postForm(t, r, "/api/form-fields", token, url.Values{
		"formId": {formID},
		"label":  {"E-Mail"},
		"type":   {"EMAIL"},
	})
	require.Equal(t, http.StatusSeeOther, w.Code)

	// The form now exposes its fields in order.
	w = get(t, r, "/api/forms/"+formID, token)
	require.Equal(t, http.StatusOK, w.Code)
	var fetched struct {
		Fields []struct {
			ID    uint   `json:"ID"`
			Label string `json:"label"`
			Order int    `json:"order"`
		} `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fetched))
	require.Len(t, fetched.Fields, 2)
	assert.Equal(t, 1, fetched.Fields[0].Order)
	assert.Equal(t, 2, fetched.Fields[1].Order)
	nameFieldID := strconv.FormatUint(uint64(fetched.Fields[0].ID), 10)

	// A visitor submits the public capture endpoint without a session.
	w = postForm(t, r, "/api/leads", "", url.Values{
		"formId":               {formID},
		"field_" + nameFieldID: {"Max Muster"},
		"redirectTo":           {"/f/messeformular/danke"},
	})
	require.Equal(t, http.StatusSeeOther, w.Code, w.Body.String())
	assert.Equal(t, "/f/messeformular/danke", w.Header().Get("Location"))

	// Missing required field is rejected.
	w = postForm(t, r, "/api/leads", "", url.Values{
		"formId": {formID},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// The lead shows up for the account.
	w = get(t, r, "/api/forms/"+formID+"/leads", token)
	require.Equal(t, http.StatusOK, w.Code)
	var leads []struct {
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &leads))
	require.Len(t, leads, 1)
	assert.Equal(t, "NEW", leads[0].Status)

	// CSV export carries the dialect and the attachment header.
	w = get(t, r, "/admin/forms/"+formID+"/leads/export", token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "messeformular-")
	body := w.Body.String()
	assert.True(t, strings.HasPrefix(body, "Lead-ID;Erstellt am;Status;Name;E-Mail"))
	assert.Contains(t, body, "Max Muster")
}

func TestLeadFeedTracksSubscriberGauge(t *testing.T) {
	gin.SetMode(gin.TestMode)
	config.LoadConfig()
	middleware.Init()

	conn := testutils.SetupTestDB(t)
	m := metrics.New()
	r := gin.New()
	routes.RegisterRoutes(r, conn, nil, m)
	token := registerAndLogin(t, r)

	srv := httptest.NewServer(r)
	defer srv.Close()

	require.Equal(t, float64(0), prometheustestutil.ToFloat64(m.FeedSubscribers))

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/ws/leads"
	header := http.Header{"Authorization": {"Bearer " + token}}
	conn1, resp, err := websocket.DefaultDialer.Dial(wsURL, header)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Eventually(t, func() bool {
		return prometheustestutil.ToFloat64(m.FeedSubscribers) == 1
	}, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, conn1.Close())

	require.Eventually(t, func() bool {
		return prometheustestutil.ToFloat64(m.FeedSubscribers) == 0
	}, 2*time.Second, 10*time.Millisecond)
}

func TestProtectedRoutesRequireAuth(t *testing.T) {
	r, _ := testutils.SetupRouter(t)

	w := get(t, r, "/api/forms", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = get(t, r, "/api/events", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHealthz(t *testing.T) {
	r, _ := testutils.SetupRouter(t)

	w := get(t, r, "/api/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}
