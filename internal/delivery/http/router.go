package http

import (
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"confcentral/internal/delivery/http/controllers"
	"confcentral/internal/delivery/http/middleware"
	"confcentral/internal/domain"
)

// Controllers bundles the controllers the router dispatches to.
type Controllers struct {
	Conference *controllers.ConferenceController
	Attendee   *controllers.AttendeeController
	Session    *controllers.SessionController
	Speaker    *controllers.SpeakerController
	Wishlist   *controllers.WishlistController
	Profile    *controllers.ProfileController
	Signal     *controllers.SignalController
}

// NewRouter initializes the HTTP router with all application routes
func NewRouter(c Controllers, verifier domain.TokenVerifier, logger *slog.Logger) *http.ServeMux {
	mux := http.NewServeMux()
	auth := middleware.RequireAuth(verifier, logger)

	// Profile
	mux.HandleFunc("GET /profile", auth(c.Profile.GetProfile))
	mux.HandleFunc("POST /profile", auth(c.Profile.SaveProfile))

	// Conferences
	mux.HandleFunc("POST /conferences", auth(c.Conference.CreateConference))
	mux.HandleFunc("POST /conferences/query", c.Conference.QueryConferences)
	mux.HandleFunc("GET /conferences/created", auth(c.Conference.ListCreated))
	mux.HandleFunc("GET /conferences/attending", auth(c.Conference.ListAttending))
	mux.HandleFunc("GET /conferences/{conferenceKey}", c.Conference.GetConference)
	mux.HandleFunc("GET /conferences/{conferenceKey}/attendees", auth(c.Conference.ListAttendees))

	// Registration
	mux.HandleFunc("POST /conferences/{conferenceKey}/registration", auth(c.Attendee.Register))
	mux.HandleFunc("DELETE /conferences/{conferenceKey}/registration", auth(c.Attendee.Unregister))

	// Sessions
	mux.HandleFunc("POST /conferences/{conferenceKey}/sessions", auth(c.Session.CreateSession))
	mux.HandleFunc("GET /conferences/{conferenceKey}/sessions", c.Session.ListByConference)
	mux.HandleFunc("GET /conferences/{conferenceKey}/sessions/{type}", c.Session.ListByConferenceAndType)
	mux.HandleFunc("GET /speakers/{speakerKey}/sessions", c.Session.ListBySpeaker)
	mux.HandleFunc("GET /sessions/daytime-non-workshops", c.Session.ListDaytimeNonWorkshops)

	// Speakers
	mux.HandleFunc("POST /speakers", auth(c.Speaker.AddSpeaker))
	mux.HandleFunc("GET /speakers", c.Speaker.ListSpeakers)
	mux.HandleFunc("GET /conferences/{conferenceKey}/speakers", c.Speaker.ListPresenters)

	// Wishlist
	mux.HandleFunc("POST /wishlist/{sessionKey}", auth(c.Wishlist.Add))
	mux.HandleFunc("DELETE /wishlist/{sessionKey}", auth(c.Wishlist.Remove))
	mux.HandleFunc("GET /wishlist", auth(c.Wishlist.List))

	// Signals
	mux.HandleFunc("GET /announcement", c.Signal.GetAnnouncement)
	mux.HandleFunc("POST /announcement/recompute", c.Signal.RecomputeAnnouncement)
	mux.HandleFunc("GET /featured-speaker", c.Signal.GetFeaturedSpeaker)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	// Metrics
	mux.Handle("GET /metrics", promhttp.Handler())

	return mux
}
