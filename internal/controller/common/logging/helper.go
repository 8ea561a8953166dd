package logginghelper

import (
	"github.com/Lead-Coder/api-rate-limit/internal/domain"
	"github.com/Lead-Coder/api-rate-limit/internal/gate"
	log "github.com/sirupsen/logrus"
)

func LogNavigation(path string, d gate.Decision) {
	entry := log.WithFields(log.Fields{
		"path":     path,
		"screen":   d.Screen,
		"decision": d.Kind.String(),
	})
	if d.Allowed() {
		entry.Debug("Navigation allowed")
		return
	}
	entry.WithField("redirect", d.Redirect).Info("Navigation redirected")
}

func LogLogin(sess domain.Session) {
	log.WithFields(log.Fields{
		"credential": sess.Masked(),
		"role":       sess.Role,
	}).Info("Operator logged in")
}

func LogLoginRejected(credential string, err error) {
	log.WithFields(log.Fields{
		"credential": domain.MaskCredential(credential),
		"error":      err,
	}).Warn("Login rejected")
}

func LogViewError(view string, err error) {
	log.WithFields(log.Fields{
		"view":  view,
		"error": err,
	}).Error("Failed to refresh view")
}
