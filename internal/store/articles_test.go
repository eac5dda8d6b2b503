package store_test

import (
	"context"
	"errors"
	"testing"

	"github.com/johnwards/sampledata/internal/domain"
	"github.com/johnwards/sampledata/internal/store"
)

func createCategory(t *testing.T, s *store.Store, title string) int64 {
	t.Helper()
	id, err := s.Categories.Save(context.Background(), &domain.Category{
		Record:    domain.Record{Title: title},
		Extension: "com_content",
	})
	if err != nil {
		t.Fatalf("create category: %v", err)
	}
	return id
}

func TestArticleSaveWithFields(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()
	catID := createCategory(t, s, "Articles")

	f := &domain.Field{Name: "colour", Label: "Colour", Type: "text", Context: domain.ArticleContext}
	if _, err := s.Fields.Save(ctx, f); err != nil {
		t.Fatalf("save field: %v", err)
	}

	a := &domain.Article{
		Record:    domain.Record{Title: "Hello world", CreatedUserID: 1},
		CatID:     catID,
		IntroText: "<p>Intro.</p>",
		FullText:  "<p>Full.</p>",
		Images:    map[string]string{"image_intro": "images/a.jpg"},
		Fields:    map[string]string{"colour": "blue", "unknown": "ignored"},
	}
	id, err := s.Articles.Save(ctx, a)
	if err != nil {
		t.Fatalf("save article: %v", err)
	}

	got, err := s.Articles.Get(ctx, id)
	if err != nil {
		t.Fatalf("get article: %v", err)
	}
	if got.Alias != "hello-world" {
		t.Errorf("expected alias hello-world, got %q", got.Alias)
	}
	if got.CatID != catID {
		t.Errorf("expected catid %d, got %d", catID, got.CatID)
	}
	if got.Images["image_intro"] != "images/a.jpg" {
		t.Errorf("expected images round trip, got %v", got.Images)
	}
	if len(got.Fields) != 1 || got.Fields["colour"] != "blue" {
		t.Errorf("expected only the known field value, got %v", got.Fields)
	}
	if got.Featured {
		t.Error("expected featured=false")
	}
}

func TestArticleSaveUnknownCategory(t *testing.T) {
	s := setupStore(t)

	_, err := s.Articles.Save(context.Background(), &domain.Article{
		Record: domain.Record{Title: "Orphan"},
		CatID:  999,
	})
	if !errors.Is(err, store.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestArticleSaveDuplicateAliasRollsBack(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()
	catID := createCategory(t, s, "Dupes")

	if _, err := s.Articles.Save(ctx, &domain.Article{Record: domain.Record{Title: "Same"}, CatID: catID}); err != nil {
		t.Fatalf("save first: %v", err)
	}

	a := &domain.Article{Record: domain.Record{Title: "Same"}, CatID: catID}
	if _, err := s.Articles.Save(ctx, a); !errors.Is(err, store.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if a.ID != 0 {
		t.Errorf("expected id to stay 0 on failure, got %d", a.ID)
	}

	n, err := s.Articles.Count(ctx, catID)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Errorf("expected 1 article, got %d", n)
	}
}

func TestArticleList(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()
	catA := createCategory(t, s, "A")
	catB := createCategory(t, s, "B")

	for i, cat := range []int64{catA, catA, catB} {
		title := []string{"first", "second", "third"}[i]
		if _, err := s.Articles.Save(ctx, &domain.Article{Record: domain.Record{Title: title}, CatID: cat}); err != nil {
			t.Fatalf("save %s: %v", title, err)
		}
	}

	p, err := s.Articles.List(ctx, catA, domain.ListOpts{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(p.Results) != 2 {
		t.Fatalf("expected 2 articles in A, got %d", len(p.Results))
	}
	if p.HasMore {
		t.Error("expected hasMore=false")
	}

	all, err := s.Articles.Count(ctx, 0)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if all != 3 {
		t.Errorf("expected 3 articles, got %d", all)
	}
}
