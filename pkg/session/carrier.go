package session

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"
)

// storageKeyPrefix namespaces intake sessions in the shared store.
const storageKeyPrefix = "relaykit_intake:"

// Carrier is the session half of the state carrier. Every operation is
// best-effort: a failing store turns reads into the zero session and drops
// writes, leaving the wizard running on URL state alone.
type Carrier struct {
	store  Store
	logger *zap.Logger
}

// NewCarrier wraps a store. A nil logger falls back to a no-op logger.
func NewCarrier(store Store, logger *zap.Logger) *Carrier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Carrier{store: store, logger: logger}
}

// Key returns the store key for a session id.
func Key(sid string) string {
	return storageKeyPrefix + sid
}

// Load returns the stored session for sid, or the zero session when the key
// is absent, the payload is unreadable, or the store fails.
func (c *Carrier) Load(ctx context.Context, sid string) IntakeSession {
	if sid == "" {
		return IntakeSession{}
	}
	raw, ok, err := c.store.Get(ctx, Key(sid))
	if err != nil {
		c.logger.Debug("session load failed, continuing with URL state", zap.String("sid", sid), zap.Error(err))
		return IntakeSession{}
	}
	if !ok {
		return IntakeSession{}
	}
	var sess IntakeSession
	if err := json.Unmarshal([]byte(raw), &sess); err != nil {
		c.logger.Debug("session payload unreadable, discarding", zap.String("sid", sid), zap.Error(err))
		return IntakeSession{}
	}
	return sess
}

// Save merges update into the stored session in one read-merge-write pass.
// Failures are logged at debug and otherwise ignored.
func (c *Carrier) Save(ctx context.Context, sid string, update IntakeSession) {
	if sid == "" {
		return
	}
	merged := c.Load(ctx, sid).Merge(update)
	payload, err := json.Marshal(merged)
	if err != nil {
		c.logger.Debug("session marshal failed, dropping write", zap.String("sid", sid), zap.Error(err))
		return
	}
	if err := c.store.Set(ctx, Key(sid), string(payload)); err != nil {
		c.logger.Debug("session write dropped", zap.String("sid", sid), zap.Error(err))
	}
}

// Clear removes the stored session for sid.
func (c *Carrier) Clear(ctx context.Context, sid string) {
	if sid == "" {
		return
	}
	if err := c.store.Clear(ctx, Key(sid)); err != nil {
		c.logger.Debug("session clear failed", zap.String("sid", sid), zap.Error(err))
	}
}
