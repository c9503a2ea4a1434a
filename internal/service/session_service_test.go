package service

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/radion-x/ODI-Aaron-3/internal/catalog"
	"github.com/radion-x/ODI-Aaron-3/internal/session"
)

func TestSessionServiceCreateAndUse(t *testing.T) {
	svc := NewSessionService(catalog.Default())

	id, err := svc.Create(catalog.BackPainID)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	err = svc.With(id, func(s *session.Session) error {
		if err := s.Answer(2); err != nil {
			return err
		}
		return s.Advance()
	})
	require.NoError(t, err)

	err = svc.With(id, func(s *session.Session) error {
		assert.Equal(t, 1, s.CurrentIndex())
		return nil
	})
	require.NoError(t, err)
}

func TestSessionServiceUnknownCatalog(t *testing.T) {
	svc := NewSessionService(catalog.Default())
	_, err := svc.Create("oswestryNeck")
	assert.Error(t, err)
}

func TestSessionServiceUnknownID(t *testing.T) {
	svc := NewSessionService(catalog.Default())
	err := svc.With("no-such-id", func(s *session.Session) error { return nil })
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionServiceDelete(t *testing.T) {
	svc := NewSessionService(catalog.Default())
	id, err := svc.Create(catalog.BackPainID)
	require.NoError(t, err)

	svc.Delete(id)
	err = svc.With(id, func(s *session.Session) error { return nil })
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestIndependentSessionsProceedConcurrently(t *testing.T) {
	svc := NewSessionService(catalog.Default())

	const sessions = 10
	ids := make([]string, sessions)
	for i := range ids {
		id, err := svc.Create(catalog.BackPainID)
		require.NoError(t, err)
		ids[i] = id
	}

	var wg sync.WaitGroup
	wg.Add(sessions)
	for _, id := range ids {
		go func(id string) {
			defer wg.Done()
			err := svc.With(id, func(s *session.Session) error {
				for !s.Completed() {
					if err := s.Answer(1); err != nil {
						return err
					}
					if err := s.Advance(); err != nil {
						return err
					}
				}
				return nil
			})
			assert.NoError(t, err)
		}(id)
	}
	wg.Wait()

	for _, id := range ids {
		err := svc.With(id, func(s *session.Session) error {
			require.True(t, s.Completed())
			assert.Equal(t, 10, s.Result().TotalScore)
			return nil
		})
		require.NoError(t, err)
	}
}
