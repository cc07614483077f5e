package events

import (
	"context"
	"sync"
)

type FakePublisher struct {
	Published []Event
	lock      sync.Mutex
}

func NewFakePublisher() *FakePublisher {
	return &FakePublisher{}
}

func (p *FakePublisher) Publish(ctx context.Context, event Event) {
	p.lock.Lock()
	defer p.lock.Unlock()
	p.Published = append(p.Published, event)
}
