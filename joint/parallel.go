package joint

import (
	"context"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// A Request names one joint to construct in a batch.
type Request struct {
	Type string `json:"type"`
	Axis string `json:"axis,omitempty"`
}

// NewInParallel constructs one joint per request concurrently; derivations
// are independent, so there is no synchronization beyond the join. Results
// keep request order. If any request fails validation, no joints are
// returned and the error collects every failure.
func NewInParallel(ctx context.Context, reqs []Request) ([]*Joint, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var wg sync.WaitGroup

	var bigError error
	var bigErrorMutex sync.Mutex
	storeError := func(err error) {
		bigErrorMutex.Lock()
		defer bigErrorMutex.Unlock()
		if bigError == nil || !errors.Is(err, context.Canceled) {
			bigError = multierr.Combine(bigError, err)
		}
	}

	joints := make([]*Joint, len(reqs))

	helper := func(i int, req Request) {
		defer func() {
			if thePanic := recover(); thePanic != nil {
				storeError(errors.Errorf("got panic constructing a joint in parallel: %v", thePanic))
				cancel()
			}
			wg.Done()
		}()
		if err := ctx.Err(); err != nil {
			storeError(err)
			return
		}
		j, err := New(req.Type, req.Axis)
		if err != nil {
			storeError(errors.Wrapf(err, "request %d", i))
			cancel()
			return
		}
		joints[i] = j
	}

	for i, req := range reqs {
		wg.Add(1)
		go helper(i, req)
	}

	wg.Wait()
	if bigError != nil {
		return nil, bigError
	}
	return joints, nil
}
