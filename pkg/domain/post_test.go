package domain_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/opst/knitsocial/pkg/domain"
	kerr "github.com/opst/knitsocial/pkg/domain/errors"
)

func TestPostParam_Validate(t *testing.T) {
	type When struct {
		param domain.PostParam
	}
	type Then struct {
		field string // empty when it should be valid
	}

	theory := func(when When, then Then) func(*testing.T) {
		return func(t *testing.T) {
			spec, err := when.param.Validate()
			if then.field == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if spec.Author() != when.param.Author ||
					spec.Title() != when.param.Title ||
					spec.Content() != when.param.Content {
					t.Errorf("unmatch: %+v", spec)
				}
				return
			}

			verr := new(kerr.ValidationError)
			if !errors.As(err, &verr) {
				t.Fatalf("not ValidationError: %v", err)
			}
			if verr.Field != then.field {
				t.Errorf("unmatch field: %s", verr.Field)
			}
		}
	}

	t.Run("valid post", theory(
		When{param: domain.PostParam{Author: 1, Title: "Hello", Content: "World"}},
		Then{},
	))
	t.Run("title of 200 characters is allowed", theory(
		When{param: domain.PostParam{Author: 1, Title: strings.Repeat("あ", 200), Content: "c"}},
		Then{},
	))
	t.Run("title of 201 characters is rejected", theory(
		When{param: domain.PostParam{Author: 1, Title: strings.Repeat("a", 201), Content: "c"}},
		Then{field: "title"},
	))
	t.Run("blank title is rejected", theory(
		When{param: domain.PostParam{Author: 1, Title: "  ", Content: "c"}},
		Then{field: "title"},
	))
	t.Run("empty content is rejected", theory(
		When{param: domain.PostParam{Author: 1, Title: "t", Content: ""}},
		Then{field: "content"},
	))
}

func TestPostUpdate_Validate(t *testing.T) {
	ptr := func(s string) *string { return &s }

	t.Run("partial update keeps nil", func(t *testing.T) {
		change, err := domain.PostUpdate{Content: ptr("new")}.Validate()
		if err != nil {
			t.Fatal(err)
		}
		if change.Title() != nil {
			t.Errorf("title is changed: %v", *change.Title())
		}
		if c := change.Content(); c == nil || *c != "new" {
			t.Errorf("unmatch content: %v", c)
		}
	})

	t.Run("empty title is rejected", func(t *testing.T) {
		if _, err := (domain.PostUpdate{Title: ptr("")}).Validate(); !errors.Is(err, kerr.ErrValidation) {
			t.Errorf("unexpected error: %v", err)
		}
	})
}

func TestCommentParam_Validate(t *testing.T) {
	t.Run("valid comment", func(t *testing.T) {
		spec, err := domain.CommentParam{PostId: 3, Author: 2, Content: "nice"}.Validate()
		if err != nil {
			t.Fatal(err)
		}
		if spec.PostId() != 3 || spec.Author() != 2 || spec.Content() != "nice" {
			t.Errorf("unmatch: %+v", spec)
		}
	})

	t.Run("blank comment is rejected", func(t *testing.T) {
		_, err := domain.CommentParam{PostId: 3, Author: 2, Content: "\n"}.Validate()
		if !errors.Is(err, kerr.ErrValidation) {
			t.Errorf("unexpected error: %v", err)
		}
		if _, err := domain.NewCommentContent(""); !errors.Is(err, kerr.ErrValidation) {
			t.Errorf("unexpected error: %v", err)
		}
	})
}

func TestParseOrdering(t *testing.T) {
	for expr, expected := range map[string]domain.Ordering{
		"":            domain.DefaultPostOrdering,
		"title":       {Field: "title"},
		"-title":      {Field: "title", Descending: true},
		"updated_at":  {Field: "updated_at"},
		"-created_at": {Field: "created_at", Descending: true},
	} {
		t.Run("post ordering "+expr, func(t *testing.T) {
			actual, err := domain.ParsePostOrdering(expr)
			if err != nil {
				t.Fatal(err)
			}
			if actual != expected {
				t.Errorf("unmatch: %+v != %+v", actual, expected)
			}
		})
	}

	t.Run("comments are oldest first by default", func(t *testing.T) {
		o, err := domain.ParseCommentOrdering("")
		if err != nil {
			t.Fatal(err)
		}
		if o.String() != "created_at" {
			t.Errorf("unmatch: %s", o)
		}
	})

	t.Run("unknown field is rejected", func(t *testing.T) {
		if _, err := domain.ParsePostOrdering("-password_hash"); !errors.Is(err, kerr.ErrValidation) {
			t.Errorf("unexpected error: %v", err)
		}
		if _, err := domain.ParseCommentOrdering("title"); !errors.Is(err, kerr.ErrValidation) {
			t.Errorf("unexpected error: %v", err)
		}
	})
}
