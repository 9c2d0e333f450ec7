package gcs_test

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"presell/pkg/artifact/gcs"
	"strings"
	"testing"

	"cloud.google.com/go/storage"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"
)

func newTestStore(t *testing.T, handler http.Handler, options gcs.Options) *gcs.Store {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := storage.NewClient(context.Background(),
		option.WithEndpoint(server.URL),
		option.WithoutAuthentication())
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	store, err := gcs.New(client, options)
	require.NoError(t, err)

	return store
}

func uploadHandler(t *testing.T, bucket, key, content string) http.Handler {
	t.Helper()

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.Path, fmt.Sprintf("/upload/storage/v1/b/%s/o", bucket)) {
			w.WriteHeader(http.StatusNotFound)

			return
		}
		if r.URL.Query().Get("name") != key || r.URL.Query().Get("uploadType") != "multipart" {
			w.WriteHeader(http.StatusBadRequest)

			return
		}

		body, err := io.ReadAll(r.Body)
		if err != nil || !strings.Contains(string(body), content) {
			w.WriteHeader(http.StatusBadRequest)

			return
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = fmt.Fprintf(w, `{"name":%q,"bucket":%q}`, key, bucket)
	})
}

func TestStore_Put(t *testing.T) {
	key := "presells/p/t/desktop.jpg"

	t.Run("gs reference", func(t *testing.T) {
		store := newTestStore(t, uploadHandler(t, "shots", key, "jpeg-bytes"), gcs.Options{Bucket: "shots"})

		ref, err := store.Put(context.Background(), key, "image/jpeg", strings.NewReader("jpeg-bytes"))
		require.NoError(t, err)
		require.Equal(t, "gs://shots/"+key, ref)
	})

	t.Run("public reference", func(t *testing.T) {
		store := newTestStore(t, uploadHandler(t, "shots", key, "jpeg-bytes"), gcs.Options{
			Bucket:        "shots",
			PublicBaseURL: "https://cdn.example.com/",
		})

		ref, err := store.Put(context.Background(), "/"+key, "image/jpeg", strings.NewReader("jpeg-bytes"))
		require.NoError(t, err)
		require.Equal(t, "https://cdn.example.com/"+key, ref)
	})

	t.Run("upload rejected", func(t *testing.T) {
		store := newTestStore(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		}), gcs.Options{Bucket: "shots"})

		_, err := store.Put(context.Background(), key, "image/jpeg", strings.NewReader("jpeg-bytes"))
		require.Error(t, err)
	})

	t.Run("empty key", func(t *testing.T) {
		store := newTestStore(t, http.NotFoundHandler(), gcs.Options{Bucket: "shots"})

		_, err := store.Put(context.Background(), " ", "image/jpeg", strings.NewReader("x"))
		require.Error(t, err)
	})
}

func TestNew_Validation(t *testing.T) {
	_, err := gcs.New(nil, gcs.Options{Bucket: "b"})
	require.Error(t, err)

	client, err := storage.NewClient(context.Background(), option.WithoutAuthentication())
	require.NoError(t, err)
	defer func() { _ = client.Close() }()

	_, err = gcs.New(client, gcs.Options{})
	require.Error(t, err)
}
