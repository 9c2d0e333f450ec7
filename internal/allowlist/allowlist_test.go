package allowlist_test

import (
	"context"
	"errors"
	"presell/internal/allowlist"
	mockallowlist "presell/internal/allowlist/mock"
	"presell/pkg/logger"
	"presell/pkg/serrors"
	mockstorage "presell/pkg/storage/mock"
	"presell/pkg/urlguard"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

func newManager(t *testing.T) (*mockstorage.MockAllStorage, *urlguard.AllowList, allowlist.Manager) {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockAllStorage(ctrl)
	list, err := urlguard.NewAllowList("hotmart.com")
	require.NoError(t, err)

	return st, list, allowlist.New(list, st)
}

func TestManager_Trust(t *testing.T) {
	st, list, m := newManager(t)
	validator := urlguard.New(list, urlguard.Options{})

	require.False(t, validator.Validate("https://shop.example.com/").Valid)

	st.EXPECT().StoreTrustedDomain(gomock.Any(), "example.com").Return(nil)
	name, err := m.Trust(context.Background(), " Example.COM. ")
	require.NoError(t, err)
	require.Equal(t, "example.com", name)

	require.True(t, validator.Validate("https://shop.example.com/").Valid)
	require.Equal(t, []string{"hotmart.com", "example.com"}, m.Domains())
}

func TestManager_Trust_Invalid(t *testing.T) {
	_, _, m := newManager(t)

	_, err := m.Trust(context.Background(), "not a domain")
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestManager_Trust_StoreFails(t *testing.T) {
	st, list, m := newManager(t)

	st.EXPECT().StoreTrustedDomain(gomock.Any(), "example.com").Return(errors.New("db down"))
	_, err := m.Trust(context.Background(), "example.com")
	require.Error(t, err)
	require.False(t, list.Matches("example.com"))
}

func TestManager_Load(t *testing.T) {
	st, list, m := newManager(t)

	st.EXPECT().TrustedDomains(gomock.Any()).Return([]string{"kiwify.com.br", "hotmart.com", "bad domain"}, nil)
	require.NoError(t, m.Load(context.Background()))
	require.Equal(t, []string{"hotmart.com", "kiwify.com.br"}, list.Domains())

	st.EXPECT().TrustedDomains(gomock.Any()).Return(nil, errors.New("db down"))
	require.Error(t, m.Load(context.Background()))
	require.Equal(t, []string{"hotmart.com", "kiwify.com.br"}, list.Domains())
}

func TestWatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := mockallowlist.NewMockManager(ctrl)

	var loads atomic.Int32
	m.EXPECT().Load(gomock.Any()).DoAndReturn(func(context.Context) error {
		if loads.Add(1) == 1 {
			return errors.New("transient")
		}

		return nil
	}).MinTimes(2)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		allowlist.Watch(ctx, m, 10*time.Millisecond)
		close(done)
	}()

	require.Eventually(t, func() bool { return loads.Load() >= 2 }, time.Second, 5*time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("watch did not stop after cancellation")
	}
}

func TestWatch_Disabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := mockallowlist.NewMockManager(ctrl)

	// returns immediately without loading
	allowlist.Watch(context.Background(), m, 0)
}
