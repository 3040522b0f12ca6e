// Package server exposes the assistant over HTTP. It accepts plain JSON
// webhooks as well as Twilio-style form posts and answers the latter with
// TwiML so the same endpoint serves both integrations.
package server

import (
	"context"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// Responder is the slice of the assistant the server needs.
type Responder interface {
	Respond(ctx context.Context, message string) string
}

const panicApology = "Sorry, something went wrong while handling your message."

// Server wraps an http.Server around the webhook routes.
type Server struct {
	addr      string
	responder Responder
	logger    *log.Logger
	httpSrv   *http.Server
}

// New builds a Server listening on addr.
func New(addr string, responder Responder, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{
		addr:      addr,
		responder: responder,
		logger:    logger,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /webhook", s.handleWebhook)
	mux.HandleFunc("GET /healthz", s.handleHealthz)

	s.httpSrv = &http.Server{
		Addr:              addr,
		Handler:           s.withRecovery(s.withLogging(mux)),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// ListenAndServe blocks until the server stops.
func (s *Server) ListenAndServe() error {
	s.logger.Info("listening", "addr", s.addr)
	return s.httpSrv.ListenAndServe()
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpSrv.Shutdown(ctx)
}

// Handler returns the routed handler; tests serve it via httptest.
func (s *Server) Handler() http.Handler {
	return s.httpSrv.Handler
}

type webhookRequest struct {
	Message string `json:"message"`
}

type webhookResponse struct {
	Reply  string `json:"reply"`
	Status string `json:"status"`
}

func (s *Server) handleWebhook(w http.ResponseWriter, r *http.Request) {
	ct := r.Header.Get("Content-Type")
	if strings.HasPrefix(ct, "application/x-www-form-urlencoded") ||
		strings.HasPrefix(ct, "multipart/form-data") {
		s.handleTwilioForm(w, r)
		return
	}

	var req webhookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	reply := s.responder.Respond(r.Context(), req.Message)
	writeJSON(w, http.StatusOK, webhookResponse{Reply: reply, Status: "success"})
}

// handleTwilioForm answers Twilio SMS posts. Twilio puts the message text in
// the Body field and expects TwiML back.
func (s *Server) handleTwilioForm(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeError(w, http.StatusBadRequest, "invalid form body")
		return
	}
	body := r.PostFormValue("Body")
	from := r.PostFormValue("From")
	if from != "" {
		s.logger.Debug("inbound sms", "from", from)
	}

	reply := s.responder.Respond(r.Context(), body)

	var escaped strings.Builder
	xml.EscapeText(&escaped, []byte(reply))

	w.Header().Set("Content-Type", "text/xml")
	fmt.Fprintf(w, "<Response><Message>%s</Message></Response>", escaped.String())
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, `{"status":"ok"}`)
}

func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Info("request", "method", r.Method, "path", r.URL.Path, "duration", time.Since(start))
	})
}

// withRecovery is the last line of defense: a handler panic becomes a JSON
// apology instead of a dropped connection.
func (s *Server) withRecovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				s.logger.Error("handler panic", "path", r.URL.Path, "panic", rec)
				writeJSON(w, http.StatusInternalServerError, webhookResponse{
					Reply:  panicApology,
					Status: "error",
				})
			}
		}()
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg, "status": "error"})
}
