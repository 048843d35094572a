package statemachine_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nesaranaeem/qr-box/pkg/statemachine"
)

type state string

type event string

const (
	draft     state = "draft"
	review    state = "review"
	published state = "published"
	rejected  state = "rejected"

	submit  event = "submit"
	approve event = "approve"
	reject  event = "reject"
	edit    event = "edit"
)

func newMachine(t *testing.T, opts ...statemachine.Option[state, event]) *statemachine.Machine[state, event] {
	t.Helper()
	base := []statemachine.Option[state, event]{
		statemachine.WithTransition[state, event](draft, review, submit),
		statemachine.WithTransition[state, event](review, published, approve),
		statemachine.WithTransition[state, event](review, rejected, reject),
		statemachine.WithTransitionFrom[state, event]([]state{review, rejected, published}, draft, edit),
	}
	m, err := statemachine.New(draft, append(base, opts...)...)
	require.NoError(t, err)
	return m
}

func TestMachineFire(t *testing.T) {
	t.Parallel()

	t.Run("follows defined transitions", func(t *testing.T) {
		t.Parallel()
		ctx := context.Background()
		m := newMachine(t)

		assert.Equal(t, draft, m.Current())
		require.NoError(t, m.Fire(ctx, submit, nil))
		assert.Equal(t, review, m.Current())
		require.NoError(t, m.Fire(ctx, reject, nil))
		assert.True(t, m.Is(rejected))
		require.NoError(t, m.Fire(ctx, edit, nil))
		assert.Equal(t, draft, m.Current())
	})

	t.Run("undefined transition", func(t *testing.T) {
		t.Parallel()
		m := newMachine(t)

		err := m.Fire(context.Background(), approve, nil)
		require.ErrorIs(t, err, statemachine.ErrNoTransition)
		var te *statemachine.TransitionError
		require.ErrorAs(t, err, &te)
		assert.Equal(t, "approve", te.Event)
		assert.Contains(t, err.Error(), "draft")
		assert.Equal(t, draft, m.Current())
	})

	t.Run("empty event", func(t *testing.T) {
		t.Parallel()
		m := newMachine(t)

		assert.ErrorIs(t, m.Fire(context.Background(), "", nil), statemachine.ErrInvalidEvent)
		assert.False(t, m.CanFire(context.Background(), "", nil))
	})
}

func TestMachineGuards(t *testing.T) {
	t.Parallel()

	ok := func(_ context.Context, _ state, _ event, data any) bool {
		v, _ := data.(bool)
		return v
	}

	t.Run("first passing transition wins", func(t *testing.T) {
		t.Parallel()
		m := statemachine.MustNew(review,
			statemachine.WithTransition(review, published, approve, statemachine.WithGuard(ok)),
			statemachine.WithTransition[state, event](review, rejected, approve),
		)

		require.NoError(t, m.Fire(context.Background(), approve, true))
		assert.Equal(t, published, m.Current())

		m.Reset()
		require.NoError(t, m.Fire(context.Background(), approve, false))
		assert.Equal(t, rejected, m.Current())
	})

	t.Run("rejected by guards", func(t *testing.T) {
		t.Parallel()
		m := statemachine.MustNew(review,
			statemachine.WithTransition(review, published, approve, statemachine.WithGuard(ok)),
		)

		assert.False(t, m.CanFire(context.Background(), approve, false))
		assert.True(t, m.CanFire(context.Background(), approve, true))

		err := m.Fire(context.Background(), approve, false)
		assert.ErrorIs(t, err, statemachine.ErrRejected)
		assert.NotErrorIs(t, err, statemachine.ErrNoTransition)
		assert.Equal(t, review, m.Current())
	})
}

func TestMachineActions(t *testing.T) {
	t.Parallel()

	t.Run("runs before state change", func(t *testing.T) {
		t.Parallel()
		var seenFrom, seenTo state
		m := statemachine.MustNew(draft,
			statemachine.WithTransition(draft, review, submit,
				statemachine.WithAction(func(_ context.Context, from, to state, _ event, _ any) error {
					seenFrom, seenTo = from, to
					return nil
				}),
			),
		)

		require.NoError(t, m.Fire(context.Background(), submit, nil))
		assert.Equal(t, draft, seenFrom)
		assert.Equal(t, review, seenTo)
	})

	t.Run("error aborts transition", func(t *testing.T) {
		t.Parallel()
		boom := errors.New("boom")
		m := statemachine.MustNew(draft,
			statemachine.WithTransition(draft, review, submit,
				statemachine.WithAction(func(context.Context, state, state, event, any) error { return boom }),
			),
		)

		err := m.Fire(context.Background(), submit, nil)
		assert.ErrorIs(t, err, boom)
		assert.Equal(t, draft, m.Current())
	})
}

func TestNewValidation(t *testing.T) {
	t.Parallel()

	_, err := statemachine.New[state, event]("")
	assert.Error(t, err)

	_, err = statemachine.New(draft, statemachine.WithTransition[state, event](draft, "", submit))
	assert.ErrorIs(t, err, statemachine.ErrInvalidTransition)

	assert.Panics(t, func() {
		statemachine.MustNew(draft, statemachine.WithTransition[state, event]("", review, submit))
	})
}

func TestMachineConcurrentFire(t *testing.T) {
	t.Parallel()

	m := statemachine.MustNew(draft,
		statemachine.WithTransition[state, event](draft, review, submit),
		statemachine.WithTransition[state, event](review, draft, edit),
	)

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = m.Fire(context.Background(), submit, nil)
			_ = m.Fire(context.Background(), edit, nil)
			_ = m.Current()
		}()
	}
	wg.Wait()

	assert.True(t, m.Is(draft, review))
}
