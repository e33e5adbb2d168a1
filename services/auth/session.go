package auth

import (
	"context"
	"time"

	adminRepo "rent2reuse/database/repository/admin"
	"rent2reuse/models"
	"rent2reuse/services/access"
	"rent2reuse/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// DefaultSessionService is the production implementation.
type DefaultSessionService struct {
	Repo     adminRepo.AdminRepository
	Verifier IdentityVerifier
	Cache    *redis.Client
	Watcher  *SessionWatcher
	Idle     *IdleMonitor
	TokenTTL time.Duration
}

// checkRecord applies the approval rules to a looked-up admin record.
// A lookup failure is logged and treated exactly like a missing record.
func (s *DefaultSessionService) checkRecord(ctx context.Context, email string) (*models.AdminAccount, error) {
	acct, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		if err != adminRepo.ErrNotFound {
			zap.L().Error("admin record lookup failed, denying session", zap.Error(err))
		}
		return nil, ErrDenied
	}
	if !acct.Approved() {
		return nil, ErrDenied
	}
	return acct, nil
}

// deny clears the persisted session flags and publishes the signed-out state
// before returning ErrDenied, so a denied admin never keeps stale markers.
func (s *DefaultSessionService) deny(ctx context.Context, uid string) error {
	if uid != "" {
		if err := utils.ClearSessionFlags(ctx, s.Cache, uid); err != nil {
			zap.L().Warn("failed to clear session flags", zap.String("uid", uid), zap.Error(err))
		}
		s.Cache.Del(ctx, utils.SessionTokenPrefix+uid)
	}
	if s.Watcher != nil {
		s.Watcher.Publish(SessionState{Authenticated: false})
	}
	return ErrDenied
}

// SignIn verifies the Firebase ID token, requires an approved admin record,
// and mints a revocable session token.
func (s *DefaultSessionService) SignIn(ctx context.Context, idToken string) (*Session, string, error) {
	uid, email, err := s.Verifier.Verify(ctx, idToken)
	if err != nil {
		zap.L().Warn("ID token verification failed", zap.Error(err))
		return nil, "", ErrDenied
	}

	acct, err := s.checkRecord(ctx, email)
	if err != nil {
		return nil, "", s.deny(ctx, uid)
	}

	token, err := utils.GenerateToken(uid, email, s.TokenTTL)
	if err != nil {
		zap.L().Error("failed to generate session token", zap.Error(err))
		return nil, "", s.deny(ctx, uid)
	}

	// Persist the token hash and session flags. The hash gates resolution;
	// deleting it revokes the token immediately.
	if err := s.Cache.Set(ctx, utils.SessionTokenPrefix+uid, utils.HashToken(token), s.TokenTTL).Err(); err != nil {
		zap.L().Error("failed to persist session token hash", zap.Error(err))
		return nil, "", s.deny(ctx, uid)
	}
	flags := utils.SessionFlags{
		IsAuthenticated: true,
		AdminRole:       acct.AdminRole,
		AdminUID:        uid,
		Email:           email,
	}
	if err := utils.SaveSessionFlags(ctx, s.Cache, uid, flags); err != nil {
		zap.L().Warn("failed to persist session flags", zap.Error(err))
	}

	session := &Session{UID: uid, Email: email, Role: access.Role(acct.AdminRole)}
	if s.Watcher != nil {
		s.Watcher.Publish(SessionState{Authenticated: true, Role: session.Role})
	}
	if s.Idle != nil {
		s.Idle.Touch(uid)
	}
	return session, token, nil
}

// ResolveSession validates the session token and re-fetches the admin record.
// When the token hash is no longer live, the persisted flags are consulted as
// a fallback identity marker, but the record re-fetch stays authoritative:
// the fallback alone can never grant access.
func (s *DefaultSessionService) ResolveSession(ctx context.Context, token string) (*Session, error) {
	uid, email, err := utils.ValidateToken(token)
	if err != nil {
		return nil, ErrDenied
	}

	storedHash, err := s.Cache.Get(ctx, utils.SessionTokenPrefix+uid).Result()
	live := err == nil && storedHash == utils.HashToken(token)
	if !live {
		if err != nil && err != redis.Nil {
			zap.L().Error("session token lookup failed, denying", zap.Error(err))
			return nil, s.deny(ctx, uid)
		}
		flags, ferr := utils.GetSessionFlags(ctx, s.Cache, uid)
		if ferr != nil || !flags.IsAuthenticated {
			return nil, s.deny(ctx, uid)
		}
	}

	acct, err := s.checkRecord(ctx, email)
	if err != nil {
		return nil, s.deny(ctx, uid)
	}

	if s.Idle != nil {
		s.Idle.Touch(uid)
	}
	return &Session{UID: uid, Email: email, Role: access.Role(acct.AdminRole)}, nil
}

// SignOut revokes the session token, clears flags and stamps lastLogout.
func (s *DefaultSessionService) SignOut(ctx context.Context, uid string) error {
	if err := s.Cache.Del(ctx, utils.SessionTokenPrefix+uid).Err(); err != nil && err != redis.Nil {
		zap.L().Warn("failed to revoke session token", zap.String("uid", uid), zap.Error(err))
	}
	if err := utils.ClearSessionFlags(ctx, s.Cache, uid); err != nil && err != redis.Nil {
		zap.L().Warn("failed to clear session flags", zap.String("uid", uid), zap.Error(err))
	}
	if err := s.Repo.StampLastLogout(ctx, uid, time.Now()); err != nil && err != adminRepo.ErrNotFound {
		zap.L().Warn("failed to stamp lastLogout", zap.String("uid", uid), zap.Error(err))
	}
	if s.Idle != nil {
		s.Idle.Stop(uid)
	}
	if s.Watcher != nil {
		s.Watcher.Publish(SessionState{Authenticated: false})
	}
	return nil
}
