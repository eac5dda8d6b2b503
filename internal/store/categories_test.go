package store_test

import (
	"context"
	"errors"
	"testing"

	"github.com/johnwards/sampledata/internal/domain"
	"github.com/johnwards/sampledata/internal/store"
)

func TestCategorySave(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	c := &domain.Category{
		Record:    domain.Record{Title: "Big data 2024-05-01 10:00:00", CreatedUserID: 1},
		ParentID:  domain.RootCategoryID,
		Extension: "com_content",
		Level:     7,
	}
	id, err := s.Categories.Save(ctx, c)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if id == 0 || c.ID != id {
		t.Fatalf("expected id to be assigned, got id=%d c.ID=%d", id, c.ID)
	}
	if c.Level != 1 {
		t.Errorf("expected level derived from parent = 1, got %d", c.Level)
	}
	if c.Alias != "big-data-2024-05-01-10-00-00" {
		t.Errorf("expected alias from title, got %q", c.Alias)
	}

	got, err := s.Categories.Get(ctx, id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Title != c.Title {
		t.Errorf("expected title %q, got %q", c.Title, got.Title)
	}
	if !got.Published() {
		t.Error("expected category to default to published")
	}
	if got.Language != "*" {
		t.Errorf("expected language *, got %q", got.Language)
	}
}

func TestCategorySaveValidation(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	tests := []struct {
		name string
		cat  *domain.Category
	}{
		{"blank title", &domain.Category{Record: domain.Record{Title: "  "}, Extension: "com_content"}},
		{"missing extension", &domain.Category{Record: domain.Record{Title: "X"}}},
		{"unknown parent", &domain.Category{Record: domain.Record{Title: "X"}, Extension: "com_content", ParentID: 999}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := s.Categories.Save(ctx, tc.cat)
			if !errors.Is(err, store.ErrValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestCategoryDuplicateAlias(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	first := &domain.Category{Record: domain.Record{Title: "News", Alias: "news"}, Extension: "com_content"}
	if _, err := s.Categories.Save(ctx, first); err != nil {
		t.Fatalf("save first: %v", err)
	}

	second := &domain.Category{Record: domain.Record{Title: "News again", Alias: "news"}, Extension: "com_content"}
	_, err := s.Categories.Save(ctx, second)
	var verr *store.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if verr.Message != "Another category with the same parent has the same alias." {
		t.Errorf("unexpected message %q", verr.Message)
	}

	// Same alias in another extension is fine.
	other := &domain.Category{Record: domain.Record{Title: "News", Alias: "news"}, Extension: "com_contact"}
	if _, err := s.Categories.Save(ctx, other); err != nil {
		t.Fatalf("save other extension: %v", err)
	}
}

func TestCategoryGetNotFound(t *testing.T) {
	s := setupStore(t)

	_, err := s.Categories.Get(context.Background(), 999)
	if !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCategoryListAndCount(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	for _, title := range []string{"One", "Two", "Three"} {
		if _, err := s.Categories.Save(ctx, &domain.Category{Record: domain.Record{Title: title}, Extension: "com_content"}); err != nil {
			t.Fatalf("save %s: %v", title, err)
		}
	}

	// Uncategorised is seeded.
	n, err := s.Categories.Count(ctx, "com_content")
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 4 {
		t.Errorf("expected 4 content categories, got %d", n)
	}

	p, err := s.Categories.List(ctx, "com_content", domain.ListOpts{Limit: 3})
	if err != nil {
		t.Fatalf("list page 1: %v", err)
	}
	if len(p.Results) != 3 || !p.HasMore {
		t.Fatalf("expected 3 results with more, got %d hasMore=%v", len(p.Results), p.HasMore)
	}

	p2, err := s.Categories.List(ctx, "com_content", domain.ListOpts{Limit: 3, After: p.After})
	if err != nil {
		t.Fatalf("list page 2: %v", err)
	}
	if len(p2.Results) != 1 || p2.HasMore {
		t.Fatalf("expected 1 result on last page, got %d hasMore=%v", len(p2.Results), p2.HasMore)
	}
	if p2.Results[0].Title != "Three" {
		t.Errorf("expected last category Three, got %q", p2.Results[0].Title)
	}
}
