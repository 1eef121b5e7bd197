//go:build integration

package sequence_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"wardregistry/internal/registry/store/sequence"
	"wardregistry/pkg/testutil/containers"
)

const testPrefix = "test:case:"

type RedisSequencerSuite struct {
	suite.Suite
	redis *containers.Redis
	seq   *sequence.Redis
}

func TestRedisSequencerSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(RedisSequencerSuite))
}

func (s *RedisSequencerSuite) SetupSuite() {
	s.redis = containers.StartRedis(s.T())
	s.seq = sequence.NewRedis(s.redis.Client, sequence.WithKeyPrefix(testPrefix))
}

func (s *RedisSequencerSuite) SetupTest() {
	s.Require().NoError(s.redis.DeletePrefix(context.Background(), testPrefix))
}

func (s *RedisSequencerSuite) TestYearsAreIndependent() {
	ctx := context.Background()
	for want := int64(1); want <= 3; want++ {
		got, err := s.seq.Next(ctx, 2026)
		s.Require().NoError(err)
		s.Equal(want, got)
	}
	got, err := s.seq.Next(ctx, 2025)
	s.Require().NoError(err)
	s.Equal(int64(1), got)

	raw, err := s.redis.Client.Get(ctx, testPrefix+"2026").Int64()
	s.Require().NoError(err)
	s.Equal(int64(3), raw)
}

func (s *RedisSequencerSuite) TestSharedCounterAcrossClients() {
	ctx := context.Background()
	other := sequence.NewRedis(s.redis.Client, sequence.WithKeyPrefix(testPrefix))

	a, err := s.seq.Next(ctx, 2026)
	s.Require().NoError(err)
	b, err := other.Next(ctx, 2026)
	s.Require().NoError(err)
	s.NotEqual(a, b)
}

func (s *RedisSequencerSuite) TestOtherPrefixesAreUntouched() {
	ctx := context.Background()
	s.Require().NoError(s.redis.Client.Set(ctx, "other:2026", 41, 0).Err())

	got, err := s.seq.Next(ctx, 2026)
	s.Require().NoError(err)
	s.Equal(int64(1), got)

	s.Require().NoError(s.redis.DeletePrefix(ctx, testPrefix))
	kept, err := s.redis.Client.Get(ctx, "other:2026").Int64()
	s.Require().NoError(err)
	s.Equal(int64(41), kept)
}
