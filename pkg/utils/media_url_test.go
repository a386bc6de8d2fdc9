package utils

import (
	"context"
	"crypto/tls"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMediaURL(t *testing.T) {
	withOrigin := WithOrigin(context.Background(), "https://api.example.com/")

	assert.Nil(t, MediaURL(withOrigin, ""))

	got := MediaURL(withOrigin, "/media/places/main/a.jpg")
	require.NotNil(t, got)
	assert.Equal(t, "https://api.example.com/media/places/main/a.jpg", *got)

	got = MediaURL(context.Background(), "/media/places/main/a.jpg")
	require.NotNil(t, got)
	assert.Equal(t, "/media/places/main/a.jpg", *got)

	got = MediaURL(withOrigin, "https://cdn.example.com/items/b.png")
	require.NotNil(t, got)
	assert.Equal(t, "https://cdn.example.com/items/b.png", *got)
}

func TestRequestOrigin(t *testing.T) {
	r := httptest.NewRequest("GET", "http://eco.example.com/api/places/", nil)
	assert.Equal(t, "http://eco.example.com", RequestOrigin(r))

	r.Header.Set("X-Forwarded-Proto", "HTTPS, http")
	assert.Equal(t, "https://eco.example.com", RequestOrigin(r))

	r = httptest.NewRequest("GET", "http://eco.example.com/", nil)
	r.TLS = &tls.ConnectionState{}
	assert.Equal(t, "https://eco.example.com", RequestOrigin(r))
}

func TestRequestOrigin_IgnoresUnknownForwardedProto(t *testing.T) {
	for _, proto := range []string{"javascript", "ftp", "https:", " "} {
		r := httptest.NewRequest("GET", "http://eco.example.com/", nil)
		r.Header.Set("X-Forwarded-Proto", proto)
		assert.Equal(t, "http://eco.example.com", RequestOrigin(r), proto)

		r.TLS = &tls.ConnectionState{}
		assert.Equal(t, "https://eco.example.com", RequestOrigin(r), proto)
	}
}
