//go:build integration

package assessment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"orbita/internal/report"
	"orbita/pkg/domain"
	"orbita/pkg/testutil/containers"
)

type RedisReportCacheSuite struct {
	suite.Suite
	ctx   context.Context
	cache *RedisReportCache
	redis *containers.RedisContainer
}

func (s *RedisReportCacheSuite) SetupSuite() {
	s.ctx = context.Background()
	s.redis = containers.GetManager().GetRedis(s.T())
	s.cache = NewRedisReportCache(s.redis.Client, time.Minute)
}

func (s *RedisReportCacheSuite) SetupTest() {
	s.Require().NoError(s.redis.FlushAll(s.ctx))
}

func TestRedisReportCacheSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(RedisReportCacheSuite))
}

func (s *RedisReportCacheSuite) TestSetGet() {
	id := domain.NewAssessmentID()
	key := reportCacheKey(id, domain.FrameworkEUSpaceAct, report.KindAnnual)
	doc := []byte(`{"kind":"annual_compliance"}`)

	_, ok := s.cache.Get(s.ctx, key)
	s.False(ok)

	s.cache.Set(s.ctx, key, doc, 0)

	got, ok := s.cache.Get(s.ctx, key)
	s.True(ok)
	s.Equal(doc, got)
}

func (s *RedisReportCacheSuite) TestTTLExpiry() {
	id := domain.NewAssessmentID()
	key := reportCacheKey(id, domain.FrameworkNIS2, report.KindIncident)

	s.cache.Set(s.ctx, key, []byte("{}"), 50*time.Millisecond)

	s.Require().Eventually(func() bool {
		_, ok := s.cache.Get(s.ctx, key)
		return !ok
	}, 2*time.Second, 25*time.Millisecond)
}

func (s *RedisReportCacheSuite) TestInvalidateSweepsAssessment() {
	id := domain.NewAssessmentID()
	other := domain.NewAssessmentID()

	for _, kind := range []report.Kind{report.KindAnnual, report.KindIncident} {
		s.cache.Set(s.ctx, reportCacheKey(id, domain.FrameworkEUSpaceAct, kind), []byte("{}"), 0)
	}
	otherKey := reportCacheKey(other, domain.FrameworkEUSpaceAct, report.KindAnnual)
	s.cache.Set(s.ctx, otherKey, []byte("{}"), 0)

	s.cache.Invalidate(s.ctx, id)

	for _, kind := range []report.Kind{report.KindAnnual, report.KindIncident} {
		_, ok := s.cache.Get(s.ctx, reportCacheKey(id, domain.FrameworkEUSpaceAct, kind))
		s.False(ok)
	}
	_, ok := s.cache.Get(s.ctx, otherKey)
	s.True(ok)
}
