// internal/mockapi/server_test.go
package mockapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) (*Server, *httptest.Server) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	api := NewServer()
	ts := httptest.NewServer(api.Handler())
	t.Cleanup(ts.Close)
	return api, ts
}

func postJSON(t *testing.T, url string, doc map[string]interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()
	body, err := json.Marshal(doc)
	require.NoError(t, err)

	resp, err := http.Post(url, "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })

	var out map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp, out
}

func TestCreateAssignsOpaqueID(t *testing.T) {
	_, ts := newTestServer(t)

	resp, created := postJSON(t, ts.URL+"/users", map[string]interface{}{"email": "an@example.com"})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.NotEmpty(t, created["id"])
	assert.Equal(t, "an@example.com", created["email"])
}

func TestGetMissingRecordReturns404(t *testing.T) {
	_, ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/products/nope")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestListFiltersByExactFieldMatch(t *testing.T) {
	api, ts := newTestServer(t)
	api.Insert(CollectionCart, map[string]interface{}{"user_id": "u1"})
	api.Insert(CollectionCart, map[string]interface{}{"user_id": "u2"})

	resp, err := http.Get(ts.URL + "/cart?user_id=u1")
	require.NoError(t, err)
	defer resp.Body.Close()

	var carts []map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&carts))
	require.Len(t, carts, 1)
	assert.Equal(t, "u1", carts[0]["user_id"])
}

func TestPutReplacesDocumentAndKeepsID(t *testing.T) {
	api, ts := newTestServer(t)
	id := api.Insert(CollectionCart, map[string]interface{}{"user_id": "u1", "status": "active"})

	body, _ := json.Marshal(map[string]interface{}{"user_id": "u1", "status": "merged"})
	req, err := http.NewRequest(http.MethodPut, ts.URL+"/cart/"+id, bytes.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var updated map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&updated))
	assert.Equal(t, id, updated["id"])
	assert.Equal(t, "merged", updated["status"])
}

func TestPutMissingRecordReturns404(t *testing.T) {
	_, ts := newTestServer(t)

	req, err := http.NewRequest(http.MethodPut, ts.URL+"/cart/nope", bytes.NewReader([]byte(`{}`)))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDeleteRemovesRecord(t *testing.T) {
	api, ts := newTestServer(t)
	id := api.Insert(CollectionCart, map[string]interface{}{"user_id": "u1"})

	req, err := http.NewRequest(http.MethodDelete, ts.URL+"/cart/"+id, nil)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Zero(t, api.Count(CollectionCart))
}

func TestSeedProductsLoadsCatalog(t *testing.T) {
	api, _ := newTestServer(t)
	api.SeedProducts()
	assert.Equal(t, 4, api.Count(CollectionProducts))
}
