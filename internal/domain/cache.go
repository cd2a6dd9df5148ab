package domain

import "context"

// Cache keys for derived signals.
const (
	AnnouncementCacheKey    = "RECENT_ANNOUNCEMENTS"
	FeaturedSpeakerCacheKey = "FEATURED_SPEAKER"
)

// SignalCache is the key-value store for derived signal strings. Get returns
// "" with no error when the key is absent.
type SignalCache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// SignalService computes and serves the derived signals: the near-sold-out
// announcement and the featured speaker.
type SignalService interface {
	// RecomputeAnnouncement rebuilds the announcement from conferences with
	// 1-5 seats remaining, caching it; with no qualifying conferences the
	// cache entry is deleted and "" returned.
	RecomputeAnnouncement(ctx context.Context) (string, error)
	Announcement(ctx context.Context) (string, error)
	// SetFeaturedSpeaker caches a featured-speaker string when the speaker
	// has more than one session at the conference; otherwise it leaves any
	// prior cached value in place and returns "".
	SetFeaturedSpeaker(ctx context.Context, speakerKey, conferenceKey string) (string, error)
	FeaturedSpeaker(ctx context.Context) (string, error)
}
