package closer

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// Closer обеспечивает потокобезопасное закрытие ресурсов в порядке LIFO.
type Closer struct {
	funcs []Func
	mu    sync.Mutex
	once  sync.Once
}

// Func — сигнатура функции закрытия ресурса.
type Func func(ctx context.Context) error

func NewCloser() *Closer {
	return &Closer{}
}

// Add добавляет функцию в список закрытия
func (c *Closer) Add(f Func) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.funcs = append(c.funcs, f)
}

// Close последовательно запускает закрытие всех зарегистрированных функций (LIFO).
// Если контекст отменяется до завершения, оставшиеся функции не запускаются.
func (c *Closer) Close(ctx context.Context) error {
	var err error
	c.once.Do(func() {
		c.mu.Lock()
		funcs := c.funcs
		c.mu.Unlock()

		var (
			errors  []string
			stopped int
		)
		for i := len(funcs) - 1; i >= 0; i-- {
			select {
			case <-ctx.Done():
				stopped = i + 1
			default:
			}
			if stopped > 0 {
				break
			}

			if closeErr := funcs[i](ctx); closeErr != nil {
				errors = append(errors, fmt.Sprintf("[!] %v", closeErr))
			}
		}

		if stopped > 0 {
			errors = append(errors, fmt.Sprintf("shutdown interrupted, %d func(s) skipped", stopped))
		}

		if len(errors) > 0 {
			err = fmt.Errorf("shutdown finished with error(s):\n%s", strings.Join(errors, "\n"))
		}
	})

	return err
}
