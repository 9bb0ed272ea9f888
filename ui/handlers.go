package ui

import (
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"

	"lessoncard/domain/card"
	"lessoncard/internal/config"
	"lessoncard/internal/errors"
	"lessoncard/internal/session"
)

// recordOption is one entry of the picker dropdown.
type recordOption struct {
	ID    string
	Label string
}

// indexView is the data for the index page.
type indexView struct {
	Loaded            bool
	Options           []recordOption
	Count             int
	LoadedAt          string
	FormURL           string
	FormURLConfigured bool
	Error             string
}

func (a *App) currentSession(r *http.Request) *session.Session {
	cookie, err := r.Cookie(sessionCookie)
	if err != nil {
		return nil
	}
	return a.sessions.Get(cookie.Value)
}

func (a *App) indexViewFor(sess *session.Session, errMsg string) indexView {
	view := indexView{
		FormURL:           a.formURL,
		FormURLConfigured: a.formURL != config.PlaceholderFormURL,
		Error:             errMsg,
	}
	if sess == nil {
		return view
	}

	view.Loaded = true
	view.Count = len(sess.Records)
	view.LoadedAt = sess.LoadedAt.Format("2006-01-02 15:04:05")
	view.Options = make([]recordOption, 0, len(sess.Records))
	for _, rec := range sess.Records {
		view.Options = append(view.Options, recordOption{
			ID:    rec.GeneratedID,
			Label: card.SelectionLabel(rec),
		})
	}
	return view
}

// handleIndex renders the picker page from the session's loaded batch.
func (a *App) handleIndex(w http.ResponseWriter, r *http.Request) {
	a.renderTemplate(w, "index.html", a.indexViewFor(a.currentSession(r), ""))
}

// handleReload invalidates the cache, loads fresh responses, and stores
// the batch under the browser's session.
func (a *App) handleReload(w http.ResponseWriter, r *http.Request) {
	a.sessions.CleanupExpired()

	records, err := a.service.ReloadRecords(r.Context())
	if err != nil {
		log.Printf("[handleReload] FAILED - %v", err)
		a.renderTemplate(w, "index.html", a.indexViewFor(a.currentSession(r), err.Error()))
		return
	}

	sessionID := ""
	if cookie, err := r.Cookie(sessionCookie); err == nil {
		sessionID = cookie.Value
	}
	sess := a.sessions.Replace(sessionID, records)

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    sess.ID,
		Path:     "/",
		HttpOnly: true,
		Expires:  time.Now().Add(24 * time.Hour),
	})

	log.Printf("[handleReload] Loaded %d records into session %s", len(records), sess.ID)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// handleDownload fills the template with the selected record and serves
// the result as a file download.
func (a *App) handleDownload(w http.ResponseWriter, r *http.Request) {
	sess := a.currentSession(r)
	if sess == nil {
		http.Error(w, "フォーム回答が読み込まれていません", http.StatusNotFound)
		return
	}

	recordID := chi.URLParam(r, "id")
	record, ok := sess.Record(recordID)
	if !ok {
		http.Error(w, "指定されたフォーム回答が見つかりません", http.StatusNotFound)
		return
	}

	data, filename, err := a.service.GenerateCard(record)
	if err != nil {
		log.Printf("[handleDownload] FAILED - %v", err)
		status := http.StatusInternalServerError
		if errors.GetCode(err) == errors.CodeTemplateMissing {
			status = http.StatusNotFound
		}
		http.Error(w, err.Error(), status)
		return
	}

	w.Header().Set("Content-Type", a.service.MIMEType())
	w.Header().Set("Content-Disposition",
		"attachment; filename*=UTF-8''"+url.PathEscape(filename))
	if _, err := w.Write(data); err != nil {
		log.Printf("[handleDownload] Failed to stream card: %v", err)
	}
}
