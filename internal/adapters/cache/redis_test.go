package cache

import (
	"context"
	"testing"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"confcentral/internal/domain"
)

func TestSignalCache_GetMissingReturnsEmpty(t *testing.T) {
	client, mock := redismock.NewClientMock()
	mock.ExpectGet("signals:" + domain.AnnouncementCacheKey).RedisNil()

	c := NewSignalCache(client, "signals")
	val, err := c.Get(context.Background(), domain.AnnouncementCacheKey)
	require.NoError(t, err)
	require.Equal(t, "", val)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSignalCache_SetGet(t *testing.T) {
	client, mock := redismock.NewClientMock()
	mock.ExpectSet("signals:"+domain.FeaturedSpeakerCacheKey, "The featured speaker for this conference is: Ada", 0).
		SetVal("OK")
	mock.ExpectGet("signals:" + domain.FeaturedSpeakerCacheKey).
		SetVal("The featured speaker for this conference is: Ada")

	c := NewSignalCache(client, "signals")
	require.NoError(t, c.Set(context.Background(), domain.FeaturedSpeakerCacheKey, "The featured speaker for this conference is: Ada"))
	val, err := c.Get(context.Background(), domain.FeaturedSpeakerCacheKey)
	require.NoError(t, err)
	require.Equal(t, "The featured speaker for this conference is: Ada", val)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSignalCache_Delete(t *testing.T) {
	client, mock := redismock.NewClientMock()
	mock.ExpectDel("signals:" + domain.AnnouncementCacheKey).SetVal(1)

	c := NewSignalCache(client, "signals")
	require.NoError(t, c.Delete(context.Background(), domain.AnnouncementCacheKey))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSignalCache_GetError(t *testing.T) {
	client, mock := redismock.NewClientMock()
	mock.ExpectGet("signals:" + domain.AnnouncementCacheKey).SetErr(redis.ErrClosed)

	c := NewSignalCache(client, "signals")
	_, err := c.Get(context.Background(), domain.AnnouncementCacheKey)
	require.Error(t, err)
}
