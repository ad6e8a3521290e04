package encode

import (
	"context"
	"fmt"
	"runtime"

	"github.com/cfoust/gmk/pkg/assets"
	"github.com/cfoust/gmk/pkg/gmk/io"

	"golang.org/x/sync/errgroup"
)

// ItemFunc produces the body of a single occupied slot. It must not touch
// shared state, since it may run on any worker.
type ItemFunc[T any] func(item *T) ([]byte, error)

type Options struct {
	Parallel bool
	// 0 means GOMAXPROCS
	Workers int
	// Frame each item body as a compressed block
	Compress bool
	Progress *Progress
}

func (o Options) workers() int {
	if o.Workers > 0 {
		return o.Workers
	}
	return runtime.GOMAXPROCS(0)
}

// SlotError identifies the slot whose encoder failed.
type SlotError struct {
	Category string
	Index    int
	Err      error
}

func (e *SlotError) Error() string {
	return fmt.Sprintf("failed to encode %s[%d]: %v", e.Category, e.Index, e.Err)
}

func (e *SlotError) Unwrap() error {
	return e.Err
}

func encodeItem[T any](item *T, fn ItemFunc[T], compress bool) ([]byte, error) {
	data, err := fn(item)
	if err != nil {
		return nil, err
	}

	if !compress {
		return data, nil
	}

	block := io.Buffer{}
	err = block.PutBlock(data)
	if err != nil {
		return nil, err
	}
	return block, nil
}

// List encodes a resource list: the slot count, then for each slot an
// existence flag followed by the item body if the slot is occupied. The
// output depends only on the slots, never on worker scheduling.
func List[T any](
	ctx context.Context,
	category string,
	slots []assets.Slot[T],
	fn ItemFunc[T],
	opts Options,
) ([]byte, error) {
	progress := opts.Progress
	progress.Start(category, occupied(slots))

	var results [][]byte
	var err error
	if opts.Parallel {
		results, err = encodeParallel(ctx, category, slots, fn, opts)
	} else {
		results, err = encodeSequential(ctx, category, slots, fn, opts)
	}
	if err != nil {
		return nil, err
	}

	p := io.Buffer{}
	p.PutUint(uint32(len(slots)))
	for i, slot := range slots {
		if slot.IsEmpty() {
			p.PutBool(false)
			continue
		}
		p.PutBool(true)
		p = append(p, results[i]...)
	}

	progress.Finish(category)
	return p, nil
}

func occupied[T any](slots []assets.Slot[T]) int {
	count := 0
	for _, slot := range slots {
		if !slot.IsEmpty() {
			count++
		}
	}
	return count
}

func encodeSequential[T any](
	ctx context.Context,
	category string,
	slots []assets.Slot[T],
	fn ItemFunc[T],
	opts Options,
) ([][]byte, error) {
	results := make([][]byte, len(slots))
	for i, slot := range slots {
		if slot.IsEmpty() {
			continue
		}

		if err := ctx.Err(); err != nil {
			return nil, err
		}

		data, err := encodeItem(slot.Get(), fn, opts.Compress)
		if err != nil {
			return nil, &SlotError{Category: category, Index: i, Err: err}
		}
		results[i] = data
		opts.Progress.Step(category)
	}
	return results, nil
}

// encodeParallel runs every occupied slot even after a failure so that the
// reported error is always the one with the lowest index.
func encodeParallel[T any](
	ctx context.Context,
	category string,
	slots []assets.Slot[T],
	fn ItemFunc[T],
	opts Options,
) ([][]byte, error) {
	results := make([][]byte, len(slots))
	errs := make([]error, len(slots))

	var group errgroup.Group
	group.SetLimit(opts.workers())

	for i := range slots {
		if slots[i].IsEmpty() {
			continue
		}

		if err := ctx.Err(); err != nil {
			break
		}

		item := slots[i].Get()
		index := i
		group.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}

			data, err := encodeItem(item, fn, opts.Compress)
			if err != nil {
				errs[index] = err
				return nil
			}
			results[index] = data
			opts.Progress.Step(category)
			return nil
		})
	}
	group.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	for i, err := range errs {
		if err != nil {
			return nil, &SlotError{Category: category, Index: i, Err: err}
		}
	}

	return results, nil
}
