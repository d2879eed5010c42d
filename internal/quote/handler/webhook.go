package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/twilio/twilio-go/twiml"
)

// webhookPayload is the subset of the provider's webhook fields the
// service reads. Twilio posts form-encoded by default but JSON shows up
// from test tooling, so both are accepted.
type webhookPayload struct {
	Body          string `json:"Body"`
	MessageSid    string `json:"MessageSid"`
	MessageStatus string `json:"MessageStatus"`
}

// WebhookInfo answers provider URL checks with plain text.
func (h *Handler) WebhookInfo(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	_, _ = w.Write([]byte("Webhook endpoint is working! Send a POST request with a message to parse metal prices."))
}

// Webhook ingests one inbound message. Status pings and empty bodies are
// acknowledged with a bare OK; everything else is classified and
// answered with a TwiML reply, the fixed fallback included. The sender
// always gets an answer.
func (h *Handler) Webhook(w http.ResponseWriter, r *http.Request) {
	payload, err := decodeWebhookPayload(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if payload.MessageStatus != "" {
		logrus.WithField("status", payload.MessageStatus).Info("Received delivery status update")
		writePlainOK(w)
		return
	}
	if payload.Body == "" {
		logrus.Info("Webhook payload carried no message body")
		writePlainOK(w)
		return
	}

	execID := uuid.NewString()

	// Providers redeliver webhooks they consider unanswered; a replayed
	// SID gets the same reply back without touching the store again.
	if payload.MessageSid != "" {
		if cached, ok := h.replyCache.Get(payload.MessageSid); ok {
			logrus.WithFields(logrus.Fields{"execID": execID, "sid": payload.MessageSid}).
				Info("Replayed message SID, serving cached reply")
			writeTwiML(w, cached)
			return
		}
	}

	dialect, reply, matched := h.processor.Process(execID, payload.Body)
	logrus.WithFields(logrus.Fields{
		"execID":  execID,
		"dialect": dialect,
		"matched": matched,
	}).Info("Webhook message processed")

	if payload.MessageSid != "" {
		h.replyCache.Set(payload.MessageSid, reply)
	}
	writeTwiML(w, reply)
}

func decodeWebhookPayload(r *http.Request) (webhookPayload, error) {
	var payload webhookPayload
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			return webhookPayload{}, err
		}
		return payload, nil
	}
	if err := r.ParseForm(); err != nil {
		return webhookPayload{}, err
	}
	payload.Body = r.PostFormValue("Body")
	payload.MessageSid = r.PostFormValue("MessageSid")
	payload.MessageStatus = r.PostFormValue("MessageStatus")
	return payload, nil
}

func writeTwiML(w http.ResponseWriter, reply string) {
	doc, err := twiml.Messages([]twiml.Element{&twiml.MessagingMessage{Body: reply}})
	if err != nil {
		logrus.WithError(err).Error("Failed to render TwiML response")
		writeError(w, http.StatusInternalServerError, "failed to render response")
		return
	}
	w.Header().Set("Content-Type", "text/xml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(doc))
}

func writePlainOK(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/plain")
	_, _ = w.Write([]byte("OK"))
}
