package statemachine_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/doorkit/pkg/statemachine"
)

type state string

type event string

const (
	Draft     state = "draft"
	InReview  state = "in_review"
	Approved  state = "approved"
	Published state = "published"
	Rejected  state = "rejected"

	Submit  event = "submit"
	Approve event = "approve"
	Reject  event = "reject"
	Publish event = "publish"
)

type (
	machine = statemachine.Machine[state, event]
	option  = statemachine.Option[state, event]
)

func transition(from, to state, ev event, opts ...statemachine.TransitionOption[state, event]) option {
	return statemachine.WithTransition(from, to, ev, opts...)
}

func TestMachine(t *testing.T) {
	t.Parallel()

	t.Run("basic transitions", func(t *testing.T) {
		t.Parallel()

		sm := statemachine.MustNew(Draft,
			transition(Draft, InReview, Submit),
			transition(InReview, Approved, Approve),
		)
		ctx := context.Background()

		assert.Equal(t, Draft, sm.Current())
		assert.True(t, sm.CanFire(ctx, Submit))

		require.NoError(t, sm.Fire(ctx, Submit))
		assert.Equal(t, InReview, sm.Current())

		require.NoError(t, sm.Fire(ctx, Approve))
		assert.Equal(t, Approved, sm.Current())

		sm.Reset()
		assert.Equal(t, Draft, sm.Current())
	})

	t.Run("no transition available", func(t *testing.T) {
		t.Parallel()

		sm := statemachine.MustNew(Draft, transition(Draft, InReview, Submit))

		err := sm.Fire(context.Background(), Publish)
		require.Error(t, err)
		assert.True(t, statemachine.IsNoTransitionAvailableError(err))
		assert.False(t, statemachine.IsTransitionRejectedError(err))
		assert.Contains(t, err.Error(), "draft")
		assert.Contains(t, err.Error(), "publish")
		assert.Equal(t, Draft, sm.Current())
		assert.False(t, sm.CanFire(context.Background(), Publish))
	})

	t.Run("guards", func(t *testing.T) {
		t.Parallel()

		authorized := false
		isAuthorized := func(context.Context, state, event) bool { return authorized }

		sm := statemachine.MustNew(Draft,
			transition(Draft, InReview, Submit, statemachine.WithGuard(isAuthorized)),
		)
		ctx := context.Background()

		assert.False(t, sm.CanFire(ctx, Submit))
		err := sm.Fire(ctx, Submit)
		assert.True(t, statemachine.IsTransitionRejectedError(err), "got: %v", err)
		assert.Equal(t, Draft, sm.Current())

		authorized = true
		assert.True(t, sm.CanFire(ctx, Submit))
		require.NoError(t, sm.Fire(ctx, Submit))
		assert.Equal(t, InReview, sm.Current())
	})

	t.Run("first passing transition wins", func(t *testing.T) {
		t.Parallel()

		deny := func(context.Context, state, event) bool { return false }
		allow := func(context.Context, state, event) bool { return true }

		sm := statemachine.MustNew(InReview,
			transition(InReview, Rejected, Approve, statemachine.WithGuard(deny)),
			transition(InReview, Approved, Approve, statemachine.WithGuard(allow)),
			transition(InReview, Published, Approve),
		)

		require.NoError(t, sm.Fire(context.Background(), Approve))
		assert.Equal(t, Approved, sm.Current())
	})

	t.Run("actions", func(t *testing.T) {
		t.Parallel()

		var calls []string
		record := func(_ context.Context, from, to state, ev event) error {
			calls = append(calls, string(from)+"->"+string(to)+":"+string(ev))
			return nil
		}
		failing := func(context.Context, state, state, event) error {
			return errors.New("boom")
		}

		sm := statemachine.MustNew(Draft,
			transition(Draft, InReview, Submit, statemachine.WithAction(record)),
			transition(InReview, Rejected, Reject, statemachine.WithAction(failing)),
		)
		ctx := context.Background()

		require.NoError(t, sm.Fire(ctx, Submit))
		assert.Equal(t, []string{"draft->in_review:submit"}, calls)

		err := sm.Fire(ctx, Reject)
		require.Error(t, err)
		assert.ErrorIs(t, err, statemachine.ErrActionFailed)
		assert.Contains(t, err.Error(), "boom")
		assert.Equal(t, InReview, sm.Current(), "failed action must not change state")
	})

	t.Run("effect resolves target", func(t *testing.T) {
		t.Parallel()

		settle := Rejected
		effect := func(context.Context, state, event) (state, error) { return settle, nil }

		sm := statemachine.MustNew(InReview,
			transition(InReview, Approved, Approve, statemachine.WithEffect(effect)),
		)
		ctx := context.Background()

		require.NoError(t, sm.Fire(ctx, Approve))
		assert.Equal(t, Rejected, sm.Current())
	})

	t.Run("effect error aborts", func(t *testing.T) {
		t.Parallel()

		effect := func(context.Context, state, event) (state, error) { return Approved, errors.New("jammed") }
		sm := statemachine.MustNew(InReview,
			transition(InReview, Approved, Approve, statemachine.WithEffect(effect)),
		)

		err := sm.Fire(context.Background(), Approve)
		assert.ErrorIs(t, err, statemachine.ErrActionFailed)
		assert.Equal(t, InReview, sm.Current())
	})

	t.Run("can fire does not run actions", func(t *testing.T) {
		t.Parallel()

		ran := false
		sm := statemachine.MustNew(Draft,
			transition(Draft, InReview, Submit, statemachine.WithAction(func(context.Context, state, state, event) error {
				ran = true
				return nil
			})),
		)

		assert.True(t, sm.CanFire(context.Background(), Submit))
		assert.False(t, ran)
	})

	t.Run("hooks observe committed changes only", func(t *testing.T) {
		t.Parallel()

		var seen []state
		hook := func(_ context.Context, _, to state, _ event) { seen = append(seen, to) }

		sm := statemachine.MustNew(Draft,
			transition(Draft, InReview, Submit),
			transition(InReview, Approved, Approve),
			statemachine.OnTransition(hook),
		)
		ctx := context.Background()

		require.NoError(t, sm.Fire(ctx, Submit))
		require.Error(t, sm.Fire(ctx, Submit))
		require.NoError(t, sm.Fire(ctx, Approve))
		sm.Reset()

		assert.Equal(t, []state{InReview, Approved}, seen)
	})
}

func TestWithTransitions(t *testing.T) {
	t.Parallel()

	t.Run("adds all definitions", func(t *testing.T) {
		t.Parallel()

		sm, err := statemachine.New(Draft, statemachine.WithTransitions([]statemachine.TransitionDef[state, event]{
			{From: Draft, To: InReview, Event: Submit},
			{From: InReview, To: Approved, Event: Approve},
			{From: InReview, To: Rejected, Event: Reject},
		}))
		require.NoError(t, err)

		assert.ElementsMatch(t, []event{Approve, Reject}, sm.Events(InReview))
		assert.ElementsMatch(t, []event{Submit}, sm.Events(Draft))
		assert.Empty(t, sm.Events(Published))
	})

	t.Run("rejects nil guard", func(t *testing.T) {
		t.Parallel()

		_, err := statemachine.New(Draft, statemachine.WithTransitions([]statemachine.TransitionDef[state, event]{
			{From: Draft, To: InReview, Event: Submit, Guards: []statemachine.Guard[state, event]{nil}},
		}))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "transition[0]")
	})

	t.Run("must new panics on bad option", func(t *testing.T) {
		t.Parallel()

		bad := func(*machine) error { return errors.New("bad option") }
		assert.Panics(t, func() {
			statemachine.MustNew(Draft, option(bad))
		})
	})
}

func BenchmarkMachine_Fire(b *testing.B) {
	ctx := context.Background()
	sm := statemachine.MustNew(Draft,
		transition(Draft, InReview, Submit),
		transition(InReview, Draft, Reject),
	)

	for b.Loop() {
		_ = sm.Fire(ctx, Submit)
		_ = sm.Fire(ctx, Reject)
	}
}

func BenchmarkMachine_FireWithGuards(b *testing.B) {
	ctx := context.Background()
	pass := func(context.Context, state, event) bool { return true }
	sm := statemachine.MustNew(Draft,
		transition(Draft, InReview, Submit, statemachine.WithGuard(pass)),
		transition(InReview, Draft, Reject, statemachine.WithGuard(pass)),
	)

	for b.Loop() {
		_ = sm.Fire(ctx, Submit)
		_ = sm.Fire(ctx, Reject)
	}
}
