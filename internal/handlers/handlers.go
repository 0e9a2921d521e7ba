package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
)

// sendJSONOrLog writes v with the given status. Nothing is written before v
// is marshalled, so a marshal error still turns into a 500.
func sendJSONOrLog(w http.ResponseWriter, log logrus.FieldLogger, status int, v any) {
	payload, err := json.Marshal(v)
	if err != nil {
		log.WithError(err).WithField("response", v).Error("unable to marshal response")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(payload); err != nil {
		log.WithError(err).Warn("unable to send response")
	}
}

func wrapError(err error) map[string]string {
	return map[string]string{
		"error": err.Error(),
	}
}
