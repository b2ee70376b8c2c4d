package outreach

import (
	"context"
	"fmt"
	"sync"
)

type call struct {
	done    chan struct{}
	message string
	err     error
	callers int
}

// inflight guarda as gerações em andamento por URL.
// A entrada existe só enquanto a chamada roda e é removida antes de liberar os chamadores.
type inflight struct {
	mu    sync.Mutex
	calls map[string]*call
}

func newInflight() *inflight {
	return &inflight{
		calls: make(map[string]*call),
	}
}

// do executa fn uma vez por chave entre chamadas concorrentes. shared indica
// que o chamador se anexou a uma execução já iniciada por outro.
func (g *inflight) do(ctx context.Context, key string, fn func() (string, error)) (message string, err error, shared bool) {
	g.mu.Lock()
	if c, ok := g.calls[key]; ok {
		c.callers++
		g.mu.Unlock()

		message, err = c.wait(ctx)
		return message, err, true
	}

	c := &call{
		done:    make(chan struct{}),
		callers: 1,
	}
	g.calls[key] = c
	g.mu.Unlock()

	go g.run(key, c, fn)

	message, err = c.wait(ctx)
	return message, err, false
}

func (g *inflight) run(key string, c *call, fn func() (string, error)) {
	defer func() {
		if r := recover(); r != nil {
			c.err = fmt.Errorf("panic na geração: %v", r)
		}

		g.mu.Lock()
		delete(g.calls, key)
		g.mu.Unlock()

		close(c.done)
	}()

	c.message, c.err = fn()
}

// wait bloqueia até o resultado ou até o contexto do próprio chamador terminar
func (c *call) wait(ctx context.Context) (string, error) {
	select {
	case <-c.done:
		return c.message, c.err
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// callers retorna quantos chamadores estão anexados à chave, 0 quando não há chamada
func (g *inflight) callers(key string) int {
	g.mu.Lock()
	defer g.mu.Unlock()

	if c, ok := g.calls[key]; ok {
		return c.callers
	}
	return 0
}
