package sampledata_test

import (
	"context"
	"errors"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/johnwards/sampledata/internal/domain"
	"github.com/johnwards/sampledata/internal/lorem"
	"github.com/johnwards/sampledata/internal/metrics"
	"github.com/johnwards/sampledata/internal/sampledata"
)

var fixedNow = time.Date(2024, 3, 9, 14, 5, 7, 0, time.UTC)

// fakeHost records every saved record and hands out sequential IDs.
type fakeHost struct {
	mu     sync.Mutex
	nextID int64

	categories []*domain.Category
	articles   []*domain.Article
	fields     []*domain.Field
	menus      []*domain.Menu
	menuItems  []*domain.MenuItem

	failArticlesAfter int
	failWith          error
	panicOnMenu       bool
}

func newFakeHost() *fakeHost {
	return &fakeHost{nextID: 100, failArticlesAfter: -1}
}

func (h *fakeHost) id() int64 {
	h.nextID++
	return h.nextID
}

func (h *fakeHost) host() sampledata.Host {
	return sampledata.Host{
		Categories: categoryFunc(func(_ context.Context, c *domain.Category) (int64, error) {
			h.mu.Lock()
			defer h.mu.Unlock()
			if c.Title == "" {
				return 0, errors.New("title required")
			}
			h.categories = append(h.categories, c)
			return h.id(), nil
		}),
		Articles: articleFunc(func(_ context.Context, a *domain.Article) (int64, error) {
			h.mu.Lock()
			defer h.mu.Unlock()
			if h.failArticlesAfter >= 0 && len(h.articles) >= h.failArticlesAfter {
				return 0, h.failWith
			}
			h.articles = append(h.articles, a)
			return h.id(), nil
		}),
		Fields: fieldFunc(func(_ context.Context, f *domain.Field) (int64, error) {
			h.mu.Lock()
			defer h.mu.Unlock()
			h.fields = append(h.fields, f)
			return h.id(), nil
		}),
		Menus: menuFunc(func(_ context.Context, m *domain.Menu) (int64, error) {
			h.mu.Lock()
			defer h.mu.Unlock()
			if h.panicOnMenu {
				panic("menu table missing")
			}
			h.menus = append(h.menus, m)
			return h.id(), nil
		}),
		MenuItems: menuItemFunc(func(_ context.Context, item *domain.MenuItem) (int64, error) {
			h.mu.Lock()
			defer h.mu.Unlock()
			h.menuItems = append(h.menuItems, item)
			return h.id(), nil
		}),
		Components: componentFunc(func(_ context.Context, element string) (*domain.Component, error) {
			if element != "com_content" {
				return nil, errors.New("not installed")
			}
			return &domain.Component{ID: 22, Element: element, Enabled: true}, nil
		}),
	}
}

type categoryFunc func(context.Context, *domain.Category) (int64, error)

func (f categoryFunc) Save(ctx context.Context, c *domain.Category) (int64, error) { return f(ctx, c) }

type articleFunc func(context.Context, *domain.Article) (int64, error)

func (f articleFunc) Save(ctx context.Context, a *domain.Article) (int64, error) { return f(ctx, a) }

type fieldFunc func(context.Context, *domain.Field) (int64, error)

func (f fieldFunc) Save(ctx context.Context, fd *domain.Field) (int64, error) { return f(ctx, fd) }

type menuFunc func(context.Context, *domain.Menu) (int64, error)

func (f menuFunc) Save(ctx context.Context, m *domain.Menu) (int64, error) { return f(ctx, m) }

type menuItemFunc func(context.Context, *domain.MenuItem) (int64, error)

func (f menuItemFunc) Save(ctx context.Context, item *domain.MenuItem) (int64, error) {
	return f(ctx, item)
}

type componentFunc func(context.Context, string) (*domain.Component, error)

func (f componentFunc) Lookup(ctx context.Context, element string) (*domain.Component, error) {
	return f(ctx, element)
}

// countingRecorder tallies IncRecordsCreated calls by kind.
type countingRecorder struct {
	mu      sync.Mutex
	created map[string]int
}

func (r *countingRecorder) ObserveStep(string, time.Duration, metrics.ResultLabel) {}

func (r *countingRecorder) IncRecordsCreated(kind string, n int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.created == nil {
		r.created = make(map[string]int)
	}
	r.created[kind] += n
}

func newPlugin(h *fakeHost, settings sampledata.Settings, opts ...sampledata.Option) *sampledata.Plugin {
	opts = append([]sampledata.Option{
		sampledata.WithText(lorem.New(rand.NewPCG(7, 11))),
		sampledata.WithClock(func() time.Time { return fixedNow }),
	}, opts...)
	return sampledata.New(h.host(), settings, opts...)
}
