/* Tryoutd - Tryout quiz authoring daemon
 *
 * Copyright (C) 2024 The Tryoutd Authors.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package web

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tryoutd/tryoutd/ident"
	"github.com/tryoutd/tryoutd/store"
	"github.com/tryoutd/tryoutd/tryout"
)

const sampleForm = "t=Physics&d=Forces+and+motion" +
	"&0_q=Is+mass+conserved%3F&0_t=1&0_c0=True&0_o1=False" +
	"&1_q=Describe+Newton%27s+third+law.&1_t=3"

func newTestServer(t *testing.T, cfg ServerConfig) (*httptest.Server, store.Store) {
	st, err := store.NewFileStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	srv := httptest.NewServer(NewServer(cfg, st).Handler())
	t.Cleanup(srv.Close)
	return srv, st
}

func testConfig() ServerConfig {
	return ServerConfig{
		Bind:             "127.0.0.1",
		Port:             12345,
		MaxBodySize:      1 << 16,
		WebSocketEnabled: true,
	}
}

func noRedirectClient() *http.Client {
	return &http.Client{
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

func submit(t *testing.T, srv *httptest.Server, body string) *http.Response {
	resp, err := noRedirectClient().Post(srv.URL+"/tryout", "application/x-www-form-urlencoded", strings.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func doRequest(t *testing.T, method string, target string, header http.Header) (*http.Response, []byte) {
	req, err := http.NewRequest(method, target, nil)
	require.NoError(t, err)
	for k, v := range header {
		req.Header[k] = v
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, body
}

func TestSubmitAndShow(t *testing.T) {
	srv, st := newTestServer(t, testConfig())

	resp := submit(t, srv, sampleForm)
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	loc := resp.Header.Get("Location")
	require.True(t, strings.HasPrefix(loc, "/tryout/"))
	id, err := ident.Parse(strings.TrimPrefix(loc, "/tryout/"))
	require.NoError(t, err)

	wire, err := st.Get(id)
	require.NoError(t, err)
	tr, err := tryout.DecodeBytes(wire)
	require.NoError(t, err)
	require.NotNil(t, tr.ID)
	assert.Equal(t, id, *tr.ID)
	assert.Equal(t, "Physics", tr.Title)
	assert.Equal(t, "Forces and motion", tr.Description)
	require.Len(t, tr.Questions, 2)
	assert.Equal(t, tryout.TrueOrFalse, tr.Questions[0].Kind)
	assert.Equal(t, []tryout.Choice{{Name: "True", Correct: true}, {Name: "False"}}, tr.Questions[0].Choices)
	assert.Equal(t, tryout.Essay, tr.Questions[1].Kind)

	resp, body := doRequest(t, http.MethodGet, srv.URL+loc, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
	assert.Contains(t, string(body), "Physics")
	assert.Contains(t, string(body), "Describe Newton&#39;s third law.")
	assert.Contains(t, string(body), loc+"/raw")
}

func TestSubmitKeepsGivenID(t *testing.T) {
	srv, st := newTestServer(t, testConfig())
	id := ident.New()

	resp := submit(t, srv, "a="+id.String()+"&t=Fixed")
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/tryout/"+id.String(), resp.Header.Get("Location"))
	_, err := st.Get(id)
	assert.NoError(t, err)
}

func TestSubmitRejectsInvalidForms(t *testing.T) {
	srv, st := newTestServer(t, testConfig())

	for _, body := range []string{
		"t=x&t=y",
		"0_q=prompt",
		"a=not-an-id",
		"0_q=p&0_t=9",
		"bogus=1",
		"t=%zz",
	} {
		resp := submit(t, srv, body)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, body)
	}
	ids, err := st.List()
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestSubmitTooLarge(t *testing.T) {
	cfg := testConfig()
	cfg.MaxBodySize = 16
	srv, _ := newTestServer(t, cfg)

	resp := submit(t, srv, "t="+strings.Repeat("x", 64))
	assert.Equal(t, http.StatusRequestEntityTooLarge, resp.StatusCode)
}

func TestRawAndETag(t *testing.T) {
	srv, st := newTestServer(t, testConfig())
	id := ident.New()
	tr := &tryout.Tryout{ID: &id, Title: "Raw"}
	wire, err := tr.Bytes()
	require.NoError(t, err)
	require.NoError(t, st.Put(id, wire))

	target := srv.URL + "/tryout/" + id.String() + "/raw"
	resp, body := doRequest(t, http.MethodGet, target, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/octet-stream", resp.Header.Get("Content-Type"))
	assert.Equal(t, wire, body)
	etag := resp.Header.Get("ETag")
	require.NotEmpty(t, etag)
	assert.Equal(t, contentETag(wire), etag)

	resp, body = doRequest(t, http.MethodGet, target, http.Header{"If-None-Match": {etag}})
	assert.Equal(t, http.StatusNotModified, resp.StatusCode)
	assert.Empty(t, body)

	resp, _ = doRequest(t, http.MethodGet, target, http.Header{"If-None-Match": {`"other"`}})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestDelete(t *testing.T) {
	srv, _ := newTestServer(t, testConfig())

	resp := submit(t, srv, sampleForm)
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	target := srv.URL + resp.Header.Get("Location")

	resp, _ = doRequest(t, http.MethodDelete, target, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp, _ = doRequest(t, http.MethodGet, target, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp, _ = doRequest(t, http.MethodDelete, target, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestInvalidAndMissingIDs(t *testing.T) {
	srv, _ := newTestServer(t, testConfig())

	resp, _ := doRequest(t, http.MethodGet, srv.URL+"/tryout/not-an-id", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp, _ = doRequest(t, http.MethodGet, srv.URL+"/tryout/not-an-id/raw", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp, _ = doRequest(t, http.MethodDelete, srv.URL+"/tryout/not-an-id", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = doRequest(t, http.MethodGet, srv.URL+"/tryout/"+ident.New().String(), nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestIndexListsTryouts(t *testing.T) {
	srv, _ := newTestServer(t, testConfig())

	resp, body := doRequest(t, http.MethodGet, srv.URL+"/", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "No tryouts yet.")
	assert.Contains(t, string(body), `action="/tryout"`)

	var locs []string
	for i := 0; i < 3; i++ {
		resp := submit(t, srv, sampleForm)
		require.Equal(t, http.StatusSeeOther, resp.StatusCode)
		locs = append(locs, resp.Header.Get("Location"))
	}
	_, body = doRequest(t, http.MethodGet, srv.URL+"/", nil)
	for _, loc := range locs {
		assert.Contains(t, string(body), `href="`+loc+`"`)
	}

	resp, _ = doRequest(t, http.MethodGet, srv.URL+"/elsewhere", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestWebSocketUpload(t *testing.T) {
	srv, st := newTestServer(t, testConfig())
	u, err := url.Parse(srv.URL)
	require.NoError(t, err)
	u.Scheme = "ws"
	u.Path = "/ws"

	conn, _, err := websocket.DefaultDialer.Dial(u.String(), nil)
	require.NoError(t, err)
	defer conn.Close()

	tr := &tryout.Tryout{
		Title:     "Uploaded",
		Questions: []tryout.Question{{Kind: tryout.Essay, Prompt: "Why?"}},
	}
	wire, err := tr.Bytes()
	require.NoError(t, err)
	require.NoError(t, conn.WriteMessage(websocket.BinaryMessage, wire))
	mt, reply, err := conn.ReadMessage()
	require.NoError(t, err)
	assert.Equal(t, websocket.TextMessage, mt)
	id, err := ident.Parse(string(reply))
	require.NoError(t, err)

	stored, err := st.Get(id)
	require.NoError(t, err)
	got, err := tryout.DecodeBytes(stored)
	require.NoError(t, err)
	assert.Equal(t, "Uploaded", got.Title)
	require.NotNil(t, got.ID)
	assert.Equal(t, id, *got.ID)

	// text messages are ignored, garbage is answered with an error
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("hello")))
	require.NoError(t, conn.WriteMessage(websocket.BinaryMessage, []byte{0, 0, 0, 9, 0, 0, 0, 17, 'x'}))
	_, reply, err = conn.ReadMessage()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(reply), "error: "), string(reply))
}

func TestWebSocketDisabled(t *testing.T) {
	cfg := testConfig()
	cfg.WebSocketEnabled = false
	srv, _ := newTestServer(t, cfg)

	resp, _ := doRequest(t, http.MethodGet, srv.URL+"/ws", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCheckOrigin(t *testing.T) {
	s := &Server{cfg: ServerConfig{AllowedOrigins: []string{"http://good.example"}}}
	r := httptest.NewRequest(http.MethodGet, "/ws", nil)
	r.Header.Set("Origin", "http://good.example")
	assert.True(t, s.checkOrigin(r))
	r.Header.Set("Origin", "http://evil.example")
	assert.False(t, s.checkOrigin(r))

	s.cfg.AllowedOrigins = nil
	assert.True(t, s.checkOrigin(r))
}

func TestServerConfigString(t *testing.T) {
	cfg := testConfig()
	assert.Equal(t, "http://127.0.0.1:12345", cfg.URL().String())
	assert.Equal(t, "web server at http://127.0.0.1:12345 with WebSocket uploads", cfg.String())
}
