package encode

import (
	"github.com/rs/zerolog/log"
	"github.com/sasha-s/go-deadlock"
)

// Progress counts encoded items across all lists of a run. It is shared by
// every worker; a nil Progress ignores all calls.
type Progress struct {
	mutex deadlock.Mutex
	total int
	done  int
	lists map[string]int
}

func NewProgress() *Progress {
	return &Progress{
		lists: make(map[string]int),
	}
}

func (p *Progress) Start(category string, items int) {
	if p == nil {
		return
	}

	p.mutex.Lock()
	p.total += items
	p.lists[category] = 0
	p.mutex.Unlock()

	log.Debug().Str("category", category).Msgf("encoding %d items", items)
}

func (p *Progress) Step(category string) {
	if p == nil {
		return
	}

	p.mutex.Lock()
	p.done++
	p.lists[category]++
	done, total := p.done, p.total
	p.mutex.Unlock()

	log.Debug().Str("category", category).Msgf("encoded %d/%d", done, total)
}

func (p *Progress) Finish(category string) {
	if p == nil {
		return
	}

	p.mutex.Lock()
	count := p.lists[category]
	p.mutex.Unlock()

	log.Debug().Str("category", category).Msgf("finished %d items", count)
}

// Counts returns the number of items encoded so far and the number expected.
func (p *Progress) Counts() (done, total int) {
	if p == nil {
		return 0, 0
	}

	p.mutex.Lock()
	defer p.mutex.Unlock()
	return p.done, p.total
}

// Category returns how many items of one list have been encoded.
func (p *Progress) Category(category string) int {
	if p == nil {
		return 0
	}

	p.mutex.Lock()
	defer p.mutex.Unlock()
	return p.lists[category]
}
