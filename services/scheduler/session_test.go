package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookcall/models"
	"bookcall/services/availability"
)

func TestStartSessionDefaults(t *testing.T) {
	svc, _, _, _ := newTestService(t, nil)
	ctx := context.Background()

	session, err := svc.StartSession(ctx)
	require.NoError(t, err)

	assert.NotEmpty(t, session.SessionID)
	assert.Equal(t, models.MonthCursor{Year: 2026, Month: time.March}, session.Cursor)
	assert.Equal(t, models.FlowSelectingDateTime, session.Flow)
	assert.Equal(t, models.SlotsNotRequested, session.SlotStatus)
	assert.Empty(t, session.SelectedDate)
	assert.Empty(t, session.SelectedTime)

	// Round-trips through the cache.
	loaded, err := svc.GetSession(ctx, session.SessionID)
	require.NoError(t, err)
	assert.Equal(t, session.SessionID, loaded.SessionID)
}

func TestGetSessionUnknownID(t *testing.T) {
	svc, _, _, _ := newTestService(t, nil)

	_, err := svc.GetSession(context.Background(), "nope")
	require.Error(t, err)
	assert.Equal(t, CodeSessionNotFound, CodeOf(err))

	_, err = svc.GetSession(context.Background(), "")
	assert.Equal(t, CodeSessionNotFound, CodeOf(err))
}

func TestNavigate(t *testing.T) {
	svc, _, _, _ := newTestService(t, nil)
	ctx := context.Background()

	session, err := svc.StartSession(ctx)
	require.NoError(t, err)

	session, err = svc.Navigate(ctx, session.SessionID, Next)
	require.NoError(t, err)
	assert.Equal(t, models.MonthCursor{Year: 2026, Month: time.April}, session.Cursor)

	session, err = svc.Navigate(ctx, session.SessionID, Previous)
	require.NoError(t, err)
	assert.Equal(t, models.MonthCursor{Year: 2026, Month: time.March}, session.Cursor)

	_, err = svc.Navigate(ctx, session.SessionID, Direction("sideways"))
	require.Error(t, err)
	assert.Equal(t, CodeValidation, CodeOf(err))
}

func TestNavigateKeepsSelection(t *testing.T) {
	svc, _, _, _ := newTestService(t, nil)
	ctx := context.Background()

	session, err := svc.StartSession(ctx)
	require.NoError(t, err)
	_, err = svc.SelectDate(ctx, session.SessionID, "2026-03-20")
	require.NoError(t, err)

	session, err = svc.Navigate(ctx, session.SessionID, Next)
	require.NoError(t, err)
	assert.Equal(t, "2026-03-20", session.SelectedDate, "paging the calendar never clears the selection")
}

func TestNavigateForwardCap(t *testing.T) {
	svc, _, _, _ := newTestService(t, nil)
	svc.MaxMonthsAhead = 2
	ctx := context.Background()

	session, err := svc.StartSession(ctx)
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		session, err = svc.Navigate(ctx, session.SessionID, Next)
		require.NoError(t, err)
	}

	_, err = svc.Navigate(ctx, session.SessionID, Next)
	require.Error(t, err)
	assert.Equal(t, CodeFlow, CodeOf(err))

	// Paging back is always allowed.
	_, err = svc.Navigate(ctx, session.SessionID, Previous)
	assert.NoError(t, err)
}

func TestSelectDateResolvesSlots(t *testing.T) {
	svc, _, _, _ := newTestService(t, nil)
	ctx := context.Background()

	session, err := svc.StartSession(ctx)
	require.NoError(t, err)

	session, err = svc.SelectDate(ctx, session.SessionID, "2026-03-20")
	require.NoError(t, err)
	assert.Equal(t, "2026-03-20", session.SelectedDate)
	assert.Equal(t, models.SlotsLoading, session.SlotStatus)
	assert.Empty(t, session.SelectedTime)

	require.Eventually(t, func() bool {
		s, err := svc.GetSession(ctx, session.SessionID)
		return err == nil && s.SlotStatus == models.SlotsReady
	}, 2*time.Second, 10*time.Millisecond)

	loaded, err := svc.GetSession(ctx, session.SessionID)
	require.NoError(t, err)
	assert.Equal(t, availability.DefaultSlotLabels, loaded.Slots)
	assert.Equal(t, "2026-03-20", loaded.SlotsFor)
}

func TestSelectDateRejectsPast(t *testing.T) {
	svc, _, _, _ := newTestService(t, nil)
	ctx := context.Background()

	session, err := svc.StartSession(ctx)
	require.NoError(t, err)

	_, err = svc.SelectDate(ctx, session.SessionID, "2026-03-09")
	require.Error(t, err)
	assert.Equal(t, CodePastDate, CodeOf(err))

	// Today is fine.
	_, err = svc.SelectDate(ctx, session.SessionID, "2026-03-10")
	assert.NoError(t, err)
}

func TestSelectDateClearsPreviousTime(t *testing.T) {
	svc, _, _, _ := newTestService(t, nil)
	ctx := context.Background()

	session := startWithReadySlots(t, svc)
	session, err := svc.SelectTime(ctx, session.SessionID, "09:00 AM")
	require.NoError(t, err)
	session, err = svc.Back(ctx, session.SessionID)
	require.NoError(t, err)
	assert.Equal(t, "09:00 AM", session.SelectedTime)

	session, err = svc.SelectDate(ctx, session.SessionID, "2026-03-21")
	require.NoError(t, err)
	assert.Empty(t, session.SelectedTime, "a new date invalidates the chosen time")
	assert.Equal(t, models.SlotsLoading, session.SlotStatus)
}

func TestSelectTimeGuards(t *testing.T) {
	slow := &availability.Static{Labels: availability.DefaultSlotLabels, Delay: 5 * time.Second}
	svc, _, _, _ := newTestService(t, slow)
	ctx := context.Background()

	session, err := svc.StartSession(ctx)
	require.NoError(t, err)

	// No date selected yet.
	_, err = svc.SelectTime(ctx, session.SessionID, "09:00 AM")
	require.Error(t, err)
	assert.Equal(t, CodeSlot, CodeOf(err))

	// Slots still loading.
	_, err = svc.SelectDate(ctx, session.SessionID, "2026-03-20")
	require.NoError(t, err)
	_, err = svc.SelectTime(ctx, session.SessionID, "09:00 AM")
	require.Error(t, err)
	assert.Equal(t, CodeSlot, CodeOf(err))
}

func TestSelectTimeRejectsUnofferedLabel(t *testing.T) {
	svc, _, _, _ := newTestService(t, nil)
	session := startWithReadySlots(t, svc)

	_, err := svc.SelectTime(context.Background(), session.SessionID, "11:00 PM")
	require.Error(t, err)
	assert.Equal(t, CodeSlot, CodeOf(err))
}

func TestSelectTimeAdvancesToDetails(t *testing.T) {
	svc, _, _, _ := newTestService(t, nil)
	session := startWithReadySlots(t, svc)

	session, err := svc.SelectTime(context.Background(), session.SessionID, "02:00 PM")
	require.NoError(t, err)
	assert.Equal(t, "02:00 PM", session.SelectedTime)
	assert.Equal(t, models.FlowEnteringDetails, session.Flow)
}

func TestBackKeepsSelection(t *testing.T) {
	svc, _, _, _ := newTestService(t, nil)
	ctx := context.Background()
	session := startWithReadySlots(t, svc)

	_, err := svc.SelectTime(ctx, session.SessionID, "09:30 AM")
	require.NoError(t, err)

	session, err = svc.Back(ctx, session.SessionID)
	require.NoError(t, err)
	assert.Equal(t, models.FlowSelectingDateTime, session.Flow)
	assert.Equal(t, "2026-03-20", session.SelectedDate)
	assert.Equal(t, "09:30 AM", session.SelectedTime)
	assert.Equal(t, models.SlotsReady, session.SlotStatus)
}

func TestBackFromInitialStepFails(t *testing.T) {
	svc, _, _, _ := newTestService(t, nil)
	ctx := context.Background()

	session, err := svc.StartSession(ctx)
	require.NoError(t, err)

	_, err = svc.Back(ctx, session.SessionID)
	require.Error(t, err)
	assert.Equal(t, CodeFlow, CodeOf(err))
}

func TestResetReturnsToDefaults(t *testing.T) {
	svc, _, _, _ := newTestService(t, nil)
	ctx := context.Background()
	session := startWithReadySlots(t, svc)

	_, err := svc.SelectTime(ctx, session.SessionID, "09:00 AM")
	require.NoError(t, err)

	fresh, err := svc.Reset(ctx, session.SessionID)
	require.NoError(t, err)
	assert.Equal(t, session.SessionID, fresh.SessionID)
	assert.Equal(t, models.FlowSelectingDateTime, fresh.Flow)
	assert.Equal(t, models.SlotsNotRequested, fresh.SlotStatus)
	assert.Empty(t, fresh.SelectedDate)
	assert.Empty(t, fresh.SelectedTime)
	assert.Equal(t, models.MonthCursor{Year: 2026, Month: time.March}, fresh.Cursor)
	assert.Equal(t, session.ResolveSeq, fresh.ResolveSeq, "in-flight resolves must stay stale after a reset")
}

// startWithReadySlots starts a session, selects 2026-03-20 and waits for the
// slot resolution to land.
func startWithReadySlots(t *testing.T, svc *DefaultSchedulerService) *models.SchedulingSession {
	t.Helper()
	ctx := context.Background()

	session, err := svc.StartSession(ctx)
	require.NoError(t, err)
	_, err = svc.SelectDate(ctx, session.SessionID, "2026-03-20")
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		s, err := svc.GetSession(ctx, session.SessionID)
		return err == nil && s.SlotStatus == models.SlotsReady
	}, 2*time.Second, 10*time.Millisecond)

	loaded, err := svc.GetSession(ctx, session.SessionID)
	require.NoError(t, err)
	return loaded
}
