package filecache

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/parquet-go/parquet-go"

	"github.com/uhastre/EV-app/internal/pkg/logger"
)

// Cache — двухъярусный кэш табличных результатов. Нижний ярус — parquet-файл
// на диске, один на ключ; файл не протухает сам по себе, инвалидация —
// только явное удаление. Верхний ярус — копия в памяти процесса с окном
// свежести ttl: внутри окна compute и диск не трогаются вовсе.
//
// Конкурентная запись одного ключа — гонка "последний победил": значение
// детерминировано по входам, поэтому гонка стоит лишней работы, не порчи.
type Cache[T any] struct {
	dir    string
	prefix string
	ttl    time.Duration

	mu    sync.Mutex
	fresh map[string]entry[T]
}

type entry[T any] struct {
	rows     []T
	loadedAt time.Time
}

func New[T any](dir, prefix string, ttl time.Duration) *Cache[T] {
	return &Cache[T]{
		dir:    dir,
		prefix: prefix,
		ttl:    ttl,
		fresh:  make(map[string]entry[T]),
	}
}

var reWhitespace = regexp.MustCompile(`\s+`)

// Key собирает ключ из частей: пробелы в именах регионов/районов заменяются
// на "_" ради безопасного имени файла.
func Key(parts ...string) string {
	safe := make([]string, 0, len(parts))
	for _, p := range parts {
		safe = append(safe, reWhitespace.ReplaceAllString(strings.TrimSpace(p), "_"))
	}
	return strings.Join(safe, "_")
}

func (c *Cache[T]) path(key string) string {
	return filepath.Join(c.dir, fmt.Sprintf("%s_%s.parquet", c.prefix, key))
}

// GetOrCompute возвращает таблицу по ключу. Порядок: память в окне ttl →
// файл на диске → compute с записью файла. Ошибка compute отдаётся как есть;
// битый или недописанный файл кэша не фатален — идём в compute заново.
func (c *Cache[T]) GetOrCompute(ctx context.Context, key string, compute func(context.Context) ([]T, error)) ([]T, error) {
	c.mu.Lock()
	if e, ok := c.fresh[key]; ok && time.Since(e.loadedAt) < c.ttl {
		c.mu.Unlock()
		return e.rows, nil
	}
	c.mu.Unlock()

	path := c.path(key)
	if _, err := os.Stat(path); err == nil {
		rows, err := parquet.ReadFile[T](path)
		if err == nil {
			c.remember(key, rows)
			return rows, nil
		}
		logger.Warnf(ctx, "filecache: unreadable %s, recomputing: %s", path, err)
	}

	rows, err := compute(ctx)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		logger.Warnf(ctx, "filecache: mkdir %s: %s", c.dir, err)
	} else if err := parquet.WriteFile(path, rows); err != nil {
		logger.Warnf(ctx, "filecache: write %s: %s", path, err)
	}

	c.remember(key, rows)
	return rows, nil
}

func (c *Cache[T]) remember(key string, rows []T) {
	c.mu.Lock()
	c.fresh[key] = entry[T]{rows: rows, loadedAt: time.Now()}
	c.mu.Unlock()
}

// Invalidate удаляет и файл, и горячую копию ключа.
func (c *Cache[T]) Invalidate(key string) error {
	c.mu.Lock()
	delete(c.fresh, key)
	c.mu.Unlock()

	err := os.Remove(c.path(key))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
