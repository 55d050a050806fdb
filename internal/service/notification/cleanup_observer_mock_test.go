package notification

import (
	"sync"
)

var _ cleanupObserver = &cleanupObserverMock{}

type cleanupObserverMock struct {
	ObserveNotificationsCleanupFunc func(removed int)

	calls struct {
		ObserveNotificationsCleanup []struct {
			Removed int
		}
	}
	lockObserveNotificationsCleanup sync.RWMutex
}

func (mock *cleanupObserverMock) ObserveNotificationsCleanup(removed int) {
	if mock.ObserveNotificationsCleanupFunc == nil {
		panic("cleanupObserverMock.ObserveNotificationsCleanupFunc: method is nil but cleanupObserver.ObserveNotificationsCleanup was just called")
	}
	callInfo := struct {
		Removed int
	}{
		Removed: removed,
	}
	mock.lockObserveNotificationsCleanup.Lock()
	mock.calls.ObserveNotificationsCleanup = append(mock.calls.ObserveNotificationsCleanup, callInfo)
	mock.lockObserveNotificationsCleanup.Unlock()
	mock.ObserveNotificationsCleanupFunc(removed)
}

func (mock *cleanupObserverMock) ObserveNotificationsCleanupCalls() []struct {
	Removed int
} {
	var calls []struct {
		Removed int
	}
	mock.lockObserveNotificationsCleanup.RLock()
	calls = mock.calls.ObserveNotificationsCleanup
	mock.lockObserveNotificationsCleanup.RUnlock()
	return calls
}
