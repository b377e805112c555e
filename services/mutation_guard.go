package services

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	apperrors "frontdesk/errors"
	"frontdesk/models"
	"frontdesk/services/logger"
)

// Dispatcher performs the network call of one mutation.
type Dispatcher interface {
	Dispatch(ctx context.Context, token string, req models.MutationRequest) (*models.MutationResult, error)
}

// OutcomeListener is told about every resolved mutation.
type OutcomeListener func(outcome models.MutationOutcome)

type GuardOptions struct {
	Dispatcher  Dispatcher
	Sessions    SessionStore
	Clock       Clock
	MinInterval time.Duration
	QuietPeriod time.Duration
	Logger      logger.Logger
}

// Guard lets at most one mutation per target be in flight and spaces
// consecutive network calls by MinInterval. The first throttled request is
// parked and sent as soon as the interval has elapsed; later ones are refused.
type Guard struct {
	dispatcher  Dispatcher
	sessions    SessionStore
	clock       Clock
	minInterval time.Duration
	logger      logger.Logger
	debouncer   *Debouncer

	mu        sync.Mutex
	states    map[string]models.MutationState
	parked    *models.MutationRequest
	parkedAt  time.Time
	lastCall  time.Time
	called    bool
	listeners []OutcomeListener
}

func NewGuard(opts GuardOptions) *Guard {
	if opts.Clock == nil {
		opts.Clock = RealClock{}
	}
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}
	if opts.MinInterval < 0 {
		opts.MinInterval = 0
	}
	return &Guard{
		dispatcher:  opts.Dispatcher,
		sessions:    opts.Sessions,
		clock:       opts.Clock,
		minInterval: opts.MinInterval,
		logger:      opts.Logger,
		debouncer:   NewDebouncer(opts.Clock, opts.QuietPeriod),
		states:      make(map[string]models.MutationState),
	}
}

// Sessions is the store the guard reads tokens from.
func (g *Guard) Sessions() SessionStore {
	return g.sessions
}

// AddListener registers l for every future outcome.
func (g *Guard) AddListener(l OutcomeListener) {
	g.mu.Lock()
	g.listeners = append(g.listeners, l)
	g.mu.Unlock()
}

// Submit runs req now, parks it, or refuses it.
//
// A target that is already pending yields *AlreadyInProgressError without a
// network call. A call within MinInterval of the previous one yields
// *ThrottledError. Otherwise the outcome is returned once the call resolves;
// the returned error is the outcome's error. Cancelling ctx does not abort a
// call that has been dispatched.
func (g *Guard) Submit(ctx context.Context, req models.MutationRequest) (*models.MutationOutcome, error) {
	g.mu.Lock()
	if g.states[req.TargetID] == models.MutationPending {
		g.mu.Unlock()
		g.logger.Warn("Bỏ qua yêu cầu trùng cho %s (%s)", req.TargetID, req.Kind)
		return nil, &apperrors.AlreadyInProgressError{TargetID: req.TargetID}
	}

	now := g.clock.Now()
	if wait := g.waitLocked(now); wait > 0 {
		if g.parked != nil {
			g.mu.Unlock()
			return nil, &apperrors.ThrottledError{RetryAfter: wait}
		}
		parked := req
		g.parked = &parked
		g.parkedAt = now.Add(wait)
		g.moveLocked(req.TargetID, models.MutationPending)
		g.mu.Unlock()

		g.clock.AfterFunc(wait, g.dispatchParked)
		g.logger.Info("Yêu cầu %s cho %s được giữ lại, gửi sau %s", req.Kind, req.TargetID, wait)
		return nil, &apperrors.ThrottledError{RetryAfter: wait, Parked: true}
	}

	g.moveLocked(req.TargetID, models.MutationPending)
	g.lastCall, g.called = now, true
	g.mu.Unlock()

	outcome := g.execute(context.WithoutCancel(ctx), req)
	return &outcome, outcome.Err
}

// IsPending reports whether target has a call in flight or parked.
func (g *Guard) IsPending(targetID string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.states[targetID] == models.MutationPending
}

// Pending lists the pending targets in order.
func (g *Guard) Pending() []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]string, 0, len(g.states))
	for target, state := range g.states {
		if state == models.MutationPending {
			out = append(out, target)
		}
	}
	sort.Strings(out)
	return out
}

// Idle reports whether nothing is pending, parked or debounced.
func (g *Guard) Idle() bool {
	g.mu.Lock()
	busy := len(g.states) > 0 || g.parked != nil
	g.mu.Unlock()
	return !busy && !g.debouncer.Scheduled()
}

// Schedule runs fn once the quiet period passes without another Schedule.
func (g *Guard) Schedule(fn func()) {
	g.debouncer.Schedule(fn)
}

// Cancel drops the debounced function, if any.
func (g *Guard) Cancel() {
	g.debouncer.Cancel()
}

// SubmitDebounced submits req after the quiet period; a later call within
// the period replaces it.
func (g *Guard) SubmitDebounced(req models.MutationRequest) {
	g.Schedule(func() {
		if _, err := g.Submit(context.Background(), req); err != nil {
			g.logger.Warn("Yêu cầu %s cho %s (debounce): %v", req.Kind, req.TargetID, err)
		}
	})
}

// waitLocked returns how long the next call must wait. Caller holds g.mu.
func (g *Guard) waitLocked(now time.Time) time.Duration {
	if g.parked != nil {
		wait := g.parkedAt.Sub(now) + g.minInterval
		if wait <= 0 {
			wait = g.minInterval
		}
		return wait
	}
	if !g.called || g.minInterval == 0 {
		return 0
	}
	elapsed := now.Sub(g.lastCall)
	if elapsed >= g.minInterval {
		return 0
	}
	return g.minInterval - elapsed
}

func (g *Guard) dispatchParked() {
	g.mu.Lock()
	req := g.parked
	g.parked = nil
	if req == nil {
		g.mu.Unlock()
		return
	}
	g.lastCall, g.called = g.clock.Now(), true
	g.mu.Unlock()

	g.logger.Info("Gửi yêu cầu đã giữ %s cho %s", req.Kind, req.TargetID)
	g.execute(context.Background(), *req)
}

func (g *Guard) execute(ctx context.Context, req models.MutationRequest) models.MutationOutcome {
	token, err := g.sessions.GetToken(ctx)
	if err != nil {
		if isSessionGone(err) {
			return g.resolve(req, nil, authExpired(err), false)
		}
		// store unreachable: the session may still be valid
		return g.resolve(req, nil, remoteFailure(err), false)
	}

	result, err := g.dispatcher.Dispatch(ctx, token, req)
	if err == nil {
		return g.resolve(req, result, nil, false)
	}
	if !errors.Is(err, apperrors.ErrUnauthorized) {
		return g.resolve(req, nil, remoteFailure(err), false)
	}

	g.logger.Info("Phiên hết hạn khi gửi %s cho %s, làm mới phiên", req.Kind, req.TargetID)
	newToken, refreshErr := g.sessions.RefreshSession(ctx)
	if refreshErr != nil {
		g.clearSession(ctx)
		return g.resolve(req, nil, authExpired(refreshErr), false)
	}

	g.touch()
	result, err = g.dispatcher.Dispatch(ctx, newToken, req)
	switch {
	case err == nil:
		return g.resolve(req, result, nil, true)
	case errors.Is(err, apperrors.ErrUnauthorized):
		g.clearSession(ctx)
		return g.resolve(req, nil, authExpired(err), true)
	default:
		return g.resolve(req, nil, remoteFailure(err), true)
	}
}

func (g *Guard) resolve(req models.MutationRequest, result *models.MutationResult, err error, replayed bool) models.MutationOutcome {
	final := models.MutationSucceeded
	if err != nil {
		final = models.MutationFailed
	}
	outcome := models.MutationOutcome{
		Request:    req,
		State:      final,
		Result:     result,
		Err:        err,
		ErrorCode:  string(apperrors.CodeOf(err)),
		Replayed:   replayed,
		ResolvedAt: g.clock.Now(),
	}
	if err != nil && outcome.ErrorCode == "" {
		outcome.ErrorCode = string(apperrors.ErrCodeRemoteFailure)
	}

	g.mu.Lock()
	g.moveLocked(req.TargetID, final)
	g.moveLocked(req.TargetID, models.MutationIdle)
	listeners := make([]OutcomeListener, len(g.listeners))
	copy(listeners, g.listeners)
	g.mu.Unlock()

	if err != nil {
		g.logger.Error("Yêu cầu %s cho %s thất bại: %v", req.Kind, req.TargetID, err)
	} else {
		g.logger.Info("Yêu cầu %s cho %s thành công", req.Kind, req.TargetID)
	}
	for _, l := range listeners {
		l(outcome)
	}
	return outcome
}

// moveLocked applies one state machine step. Idle targets are dropped from
// the map. Caller holds g.mu.
func (g *Guard) moveLocked(targetID string, to models.MutationState) {
	from, ok := g.states[targetID]
	if !ok {
		from = models.MutationIdle
	}
	next, err := models.Transition(from, to)
	if err != nil {
		g.logger.Error("Trạng thái không hợp lệ cho %s: %v", targetID, err)
		return
	}
	if next == models.MutationIdle {
		delete(g.states, targetID)
		return
	}
	g.states[targetID] = next
}

func (g *Guard) touch() {
	g.mu.Lock()
	g.lastCall, g.called = g.clock.Now(), true
	g.mu.Unlock()
}

func (g *Guard) clearSession(ctx context.Context) {
	if err := g.sessions.Clear(ctx); err != nil {
		g.logger.Warn("Không xóa được phiên: %v", err)
	}
}

func isSessionGone(err error) bool {
	switch apperrors.CodeOf(err) {
	case apperrors.ErrCodeMissingToken, apperrors.ErrCodeAuthExpired:
		return true
	}
	return false
}

func authExpired(err error) error {
	return apperrors.NewAppError(apperrors.ErrCodeAuthExpired, "phiên đăng nhập đã hết hạn, vui lòng đăng nhập lại", err)
}

func remoteFailure(err error) error {
	if errors.Is(err, apperrors.ErrRemoteFailure) {
		return err
	}
	return &apperrors.RemoteError{Message: "directory call failed", Err: err}
}

// GuardRegistry keeps one guard per operator. Every desk an operator is
// logged in at shares that guard, so the per-target and throttle rules hold
// across tabs.
type GuardRegistry struct {
	clock Clock
	build func(key string) *Guard

	mu       sync.Mutex
	guards   map[string]*Guard
	lastUsed map[string]time.Time
}

func NewGuardRegistry(build func(key string) *Guard) *GuardRegistry {
	return &GuardRegistry{
		clock:    RealClock{},
		build:    build,
		guards:   make(map[string]*Guard),
		lastUsed: make(map[string]time.Time),
	}
}

// WithClock sets the clock used to track idle guards.
func (r *GuardRegistry) WithClock(clock Clock) *GuardRegistry {
	r.clock = clock
	return r
}

// Get returns the guard for key, creating it on first use.
func (r *GuardRegistry) Get(key string) *Guard {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lastUsed[key] = r.clock.Now()
	if g, ok := r.guards[key]; ok {
		return g
	}
	g := r.build(key)
	r.guards[key] = g
	return g
}

// Remove forgets the guard and cancels its debounced work.
func (r *GuardRegistry) Remove(key string) {
	r.mu.Lock()
	g, ok := r.guards[key]
	delete(r.guards, key)
	delete(r.lastUsed, key)
	r.mu.Unlock()
	if ok {
		g.Cancel()
	}
}

// Sweep drops guards unused for at least idle that have nothing in flight.
// It returns how many were dropped.
func (r *GuardRegistry) Sweep(idle time.Duration) int {
	now := r.clock.Now()
	r.mu.Lock()
	defer r.mu.Unlock()
	removed := 0
	for key, g := range r.guards {
		if now.Sub(r.lastUsed[key]) < idle || !g.Idle() {
			continue
		}
		delete(r.guards, key)
		delete(r.lastUsed, key)
		removed++
	}
	return removed
}

// Len counts the live guards.
func (r *GuardRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.guards)
}
