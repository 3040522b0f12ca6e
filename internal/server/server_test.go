package server

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type echoResponder struct {
	reply string
	last  string
}

func (e *echoResponder) Respond(_ context.Context, message string) string {
	e.last = message
	if e.reply != "" {
		return e.reply
	}
	return "echo: " + message
}

type panicResponder struct{}

func (panicResponder) Respond(context.Context, string) string {
	panic("boom")
}

func newTestServer(t *testing.T, r Responder) *httptest.Server {
	t.Helper()
	srv := New("127.0.0.1:0", r, log.New(io.Discard))
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func TestWebhookJSON(t *testing.T) {
	responder := &echoResponder{}
	ts := newTestServer(t, responder)

	resp, err := http.Post(ts.URL+"/webhook", "application/json",
		strings.NewReader(`{"message":"what's the news"}`))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "application/json")

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"reply":"echo: what's the news","status":"success"}`, string(body))
	assert.Equal(t, "what's the news", responder.last)
}

func TestWebhookRejectsBadJSON(t *testing.T) {
	ts := newTestServer(t, &echoResponder{})

	resp, err := http.Post(ts.URL+"/webhook", "application/json",
		strings.NewReader(`{not json`))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestWebhookTwilioForm(t *testing.T) {
	responder := &echoResponder{reply: "Reminder 1 deleted."}
	ts := newTestServer(t, responder)

	form := url.Values{"Body": {"delete reminder 1"}, "From": {"+15550001111"}}
	resp, err := http.Post(ts.URL+"/webhook", "application/x-www-form-urlencoded",
		strings.NewReader(form.Encode()))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "text/xml", resp.Header.Get("Content-Type"))

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "<Response><Message>Reminder 1 deleted.</Message></Response>", string(body))
	assert.Equal(t, "delete reminder 1", responder.last)
}

func TestTwilioReplyEscapesXML(t *testing.T) {
	responder := &echoResponder{reply: `Use <b> & "quotes"`}
	ts := newTestServer(t, responder)

	form := url.Values{"Body": {"hi"}}
	resp, err := http.Post(ts.URL+"/webhook", "application/x-www-form-urlencoded",
		strings.NewReader(form.Encode()))
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "&lt;b&gt; &amp; &#34;quotes&#34;")
	assert.NotContains(t, string(body), "<b>")
}

func TestHealthz(t *testing.T) {
	ts := newTestServer(t, &echoResponder{})

	resp, err := http.Get(ts.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.JSONEq(t, `{"status":"ok"}`, string(body))
}

func TestMethodNotAllowed(t *testing.T) {
	ts := newTestServer(t, &echoResponder{})

	resp, err := http.Get(ts.URL + "/webhook")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestPanicBecomesApology(t *testing.T) {
	ts := newTestServer(t, panicResponder{})

	resp, err := http.Post(ts.URL+"/webhook", "application/json",
		strings.NewReader(`{"message":"hi"}`))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), panicApology)
}
