package httpclient_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"petstore/internal/platform/httpclient"
	"petstore/internal/router"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(t *testing.T) *httpclient.Client {
	t.Helper()
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	t.Cleanup(ts.Close)

	c, err := httpclient.New(ts.URL+"/", time.Second)
	require.NoError(t, err)
	return c
}

func TestNew_RejectsBadURL(t *testing.T) {
	_, err := httpclient.New("not a url", 0)
	assert.Error(t, err)
	_, err = httpclient.New("", 0)
	assert.Error(t, err)
}

func TestClient_Lifecycle(t *testing.T) {
	ctx := context.Background()
	c := newClient(t)

	created, err := c.Create(ctx, httpclient.Pet{Name: "Fido", Category: "dog", Available: true, Gender: "MALE"})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	got, err := c.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	_, err = c.Create(ctx, httpclient.Pet{Name: "Kitty", Category: "cat", Available: false, Gender: "FEMALE"})
	require.NoError(t, err)

	list, err := c.List(ctx, url.Values{"category": {"dog"}})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, created.ID, list[0].ID)

	all, err := c.List(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	updated, err := c.Update(ctx, created.ID, httpclient.Pet{Name: "Fido", Category: "dog", Available: true, Gender: "UNKNOWN"})
	require.NoError(t, err)
	assert.Equal(t, "UNKNOWN", updated.Gender)

	bought, err := c.Purchase(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, bought.Available)

	_, err = c.Purchase(ctx, created.ID)
	var apiErr *httpclient.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusConflict, apiErr.StatusCode)
	assert.Contains(t, apiErr.Message, "is not available")

	require.NoError(t, c.Delete(ctx, created.ID))
	require.NoError(t, c.Delete(ctx, created.ID))

	_, err = c.Get(ctx, created.ID)
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
}

func TestClient_ValidationErrorSurfaces(t *testing.T) {
	c := newClient(t)

	_, err := c.Create(context.Background(), httpclient.Pet{Name: "x", Category: "y", Gender: "DRAGON"})
	var apiErr *httpclient.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Contains(t, apiErr.Error(), "gender")
}
