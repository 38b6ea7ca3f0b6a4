package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clubops/internal/app"
)

func TestReconciliationServiceRun(t *testing.T) {
	yesterday := fixedNow.AddDate(0, 0, -1)
	tomorrow := fixedNow.AddDate(0, 0, 1)

	t.Run("completes past scheduled socialings only", func(t *testing.T) {
		past := scheduledSocialing("s1", "지난 모임", yesterday, registered("영희"))
		future := scheduledSocialing("s2", "다음 모임", tomorrow, registered("철수"))
		cancelledPast := scheduledSocialing("s3", "취소된 모임", yesterday)
		cancelledPast.Status = app.SocialingCancelled

		store := &fakeStore{socialings: []app.Socialing{past, future, cancelledPast}}
		svc := NewReconciliationService(store)
		svc.Now = clockAt(fixedNow)

		n, err := svc.Run(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 1, n)
		assert.Equal(t, []string{"s1"}, store.completed)
	})

	t.Run("second run is a no-op", func(t *testing.T) {
		past := scheduledSocialing("s1", "지난 모임", yesterday, registered("영희"))
		store := &fakeStore{socialings: []app.Socialing{past}}
		svc := NewReconciliationService(store)
		svc.Now = clockAt(fixedNow)

		n, err := svc.Run(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 1, n)

		n, err = svc.Run(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 0, n)
		assert.Len(t, store.completed, 1)
	})

	t.Run("same-day socialings are left alone", func(t *testing.T) {
		today := scheduledSocialing("s1", "오늘 모임", fixedNow)
		store := &fakeStore{socialings: []app.Socialing{today}}
		svc := NewReconciliationService(store)
		svc.Now = clockAt(fixedNow)

		n, err := svc.Run(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 0, n)
		assert.Empty(t, store.completed)
	})
}
