package fas

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountClientSearch(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal("POST", r.Method)
		assert.Equal("/user/list", r.URL.Path)
		assert.NoError(r.ParseForm())
		assert.Equal("ralphbean", r.PostForm.Get("search"))
		assert.Equal("", r.PostForm.Get("by_email"))
		assert.Equal("shim", r.PostForm.Get("user_name"))
		assert.Equal("hunter2", r.PostForm.Get("password"))
		assert.Equal("Login", r.PostForm.Get("login"))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(SearchResponse{
			Username: "ralph",
			People: []Person{
				{Username: "ralph", Email: "ralph@redhat.com", IRCNick: "ralphbean"},
			},
		})
	}))
	defer srv.Close()

	client := NewAccountClient()
	creds := Credentials{Username: "shim", Password: "hunter2", BaseURL: srv.URL + "/"}

	resp, err := client.Search(ctx, "ralphbean", creds, false)
	require.NoError(t, err)
	assert.Equal("ralph", resp.Username)
	require.Len(t, resp.People, 1)
	assert.Equal("ralph@redhat.com", resp.People[0].Email)
}

func TestAccountClientSearchByEmail(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(r.ParseForm())
		assert.Equal("ralph@redhat.com", r.PostForm.Get("search"))
		assert.Equal("1", r.PostForm.Get("by_email"))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(SearchResponse{
			Username: "ralph",
			People:   []Person{{Username: "ralph", Email: "ralph@redhat.com"}},
		})
	}))
	defer srv.Close()

	client := NewAccountClient()
	creds := Credentials{BaseURL: srv.URL + "/"}

	resp, err := client.Search(ctx, "ralph@redhat.com", creds, true)
	require.NoError(t, err)
	assert.Equal("ralph", resp.Username)
}

func TestAccountClientServerError(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := NewAccountClient()
	creds := Credentials{BaseURL: srv.URL + "/"}

	_, err := client.Search(ctx, "ralphbean", creds, false)
	assert.Error(err)
	assert.Contains(err.Error(), "401")
}
