package newsletter

import (
	"context"
	"encoding/hex"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/blake2b"

	"github.com/FACorreiaa/northern-oak/internal/pkg/cache"
)

// DedupeWindow is how long a repeated address counts as a duplicate.
const DedupeWindow = 24 * time.Hour

type Result string

const (
	ResultNew       Result = "new"
	ResultDuplicate Result = "duplicate"
	ResultEmpty     Result = "empty"
)

// Service accepts footer signups. Addresses are never stored or logged in
// the clear.
type Service struct {
	seen   *cache.UnifiedCache[time.Time]
	logger *zap.Logger
	now    func() time.Time
}

func NewService(window time.Duration, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		seen:   cache.NewUnifiedCache[time.Time](window, "newsletter", logger),
		logger: logger,
		now:    time.Now,
	}
}

func (s *Service) Subscribe(_ context.Context, email string) Result {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return ResultEmpty
	}

	key := Pseudonym(email)
	if !s.seen.Add(key, s.now()) {
		s.logger.Info("Newsletter signup repeated", zap.String("subscriber", key))
		return ResultDuplicate
	}
	s.logger.Info("Newsletter signup", zap.String("subscriber", key))
	return ResultNew
}

// Pseudonym is a short stable digest of an address, safe to log.
func Pseudonym(email string) string {
	sum := blake2b.Sum256([]byte(email))
	return hex.EncodeToString(sum[:8])
}

func (s *Service) Stats() cache.Source { return s.seen }
