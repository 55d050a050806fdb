package account

import (
	"context"
	"github.com/heartmarshall/gamecatalog-backend/internal/auth"
	"sync"
)

var _ identityVerifier = &identityVerifierMock{}

type identityVerifierMock struct {
	VerifyFunc func(ctx context.Context, initData string) (*auth.TelegramIdentity, error)

	calls struct {
		Verify []struct {
			Ctx      context.Context
			InitData string
		}
	}
	lockVerify sync.RWMutex
}

func (mock *identityVerifierMock) Verify(ctx context.Context, initData string) (*auth.TelegramIdentity, error) {
	if mock.VerifyFunc == nil {
		panic("identityVerifierMock.VerifyFunc: method is nil but identityVerifier.Verify was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		InitData string
	}{
		Ctx:      ctx,
		InitData: initData,
	}
	mock.lockVerify.Lock()
	mock.calls.Verify = append(mock.calls.Verify, callInfo)
	mock.lockVerify.Unlock()
	return mock.VerifyFunc(ctx, initData)
}

func (mock *identityVerifierMock) VerifyCalls() []struct {
	Ctx      context.Context
	InitData string
} {
	var calls []struct {
		Ctx      context.Context
		InitData string
	}
	mock.lockVerify.RLock()
	calls = mock.calls.Verify
	mock.lockVerify.RUnlock()
	return calls
}
