package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
)

// StatusInfo answers provider URL checks for the status callback.
func (h *Handler) StatusInfo(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	_, _ = w.Write([]byte("Status endpoint is working! This endpoint receives status updates for sent messages."))
}

// Status is the delivery status callback sink. Nothing is stored; the
// fields are logged for correlation with provider dashboards.
func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	payload, err := decodeWebhookPayload(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	logrus.WithFields(logrus.Fields{
		"status": payload.MessageStatus,
		"sid":    payload.MessageSid,
	}).Info("Delivery status callback")
	writePlainOK(w)
}
