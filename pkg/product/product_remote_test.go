package product

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"techsell-web/pkg/gateway"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeProductsToleratesBothShapes(t *testing.T) {
	bare, err := decodeProducts(json.RawMessage(`[{"_id":"p1","name":"lamp","price":5}]`))
	require.NoError(t, err)
	require.Len(t, bare, 1)
	assert.Equal(t, "p1", bare[0].ID)

	wrapped, err := decodeProducts(json.RawMessage(`{"products":[{"_id":"p2","name":"desk","price":40}]}`))
	require.NoError(t, err)
	require.Len(t, wrapped, 1)
	assert.Equal(t, "p2", wrapped[0].ID)

	empty, err := decodeProducts(nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestFetchProductsSendsPagination(t *testing.T) {
	var gotQuery string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		_, _ = w.Write([]byte(`[]`))
	}))
	defer ts.Close()

	remote := NewProductRemote(gateway.NewClient(ts.URL))
	_, err := remote.FetchProducts(context.Background(), nil, 15, 1)
	require.NoError(t, err)
	assert.Equal(t, "limit=15&page=1", gotQuery)
}

func TestSearchProductsEscapesKeyword(t *testing.T) {
	var gotKeyword string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKeyword = r.URL.Query().Get("keyword")
		_, _ = w.Write([]byte(`{"products":[]}`))
	}))
	defer ts.Close()

	remote := NewProductRemote(gateway.NewClient(ts.URL))
	_, err := remote.SearchProducts(context.Background(), nil, "desk lamp & charger")
	require.NoError(t, err)
	assert.Equal(t, "desk lamp & charger", gotKeyword)
}
