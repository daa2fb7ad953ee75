package db

import (
	"strings"
	"testing"

	"github.com/coinclub/coinclub-api/internal/models"
)

func floatPtr(f float64) *float64 { return &f }

func TestBuildListQuery_NoFilters(t *testing.T) {
	query, args := buildListQuery(models.ClassifiedFilter{})

	if strings.Contains(query, "WHERE") {
		t.Fatalf("expected no WHERE clause, got %q", query)
	}
	if !strings.HasSuffix(query, "ORDER BY created_at DESC") {
		t.Fatalf("expected default newest sort, got %q", query)
	}
	if len(args) != 0 {
		t.Fatalf("expected no args, got %v", args)
	}
}

func TestBuildListQuery_FreeTextMatchesTitleOrDescription(t *testing.T) {
	query, args := buildListQuery(models.ClassifiedFilter{Query: "morgan dollar"})

	if !strings.Contains(query, "(title ILIKE $1 OR description ILIKE $1)") {
		t.Fatalf("expected title-or-description match, got %q", query)
	}
	if len(args) != 1 || args[0] != "%morgan dollar%" {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestBuildListQuery_CommasFoldedToSpaces(t *testing.T) {
	_, args := buildListQuery(models.ClassifiedFilter{Query: "1921, Morgan,proof"})

	if len(args) != 1 {
		t.Fatalf("expected one arg, got %v", args)
	}
	if args[0] != "%1921  Morgan proof%" {
		t.Fatalf("commas should be replaced with spaces, got %q", args[0])
	}
}

func TestBuildListQuery_BlankFreeTextSkipsMatch(t *testing.T) {
	query, args := buildListQuery(models.ClassifiedFilter{Query: "   "})

	if strings.Contains(query, "ILIKE") {
		t.Fatalf("blank query must not add a substring filter, got %q", query)
	}
	if len(args) != 0 {
		t.Fatalf("expected no args, got %v", args)
	}
}

func TestBuildListQuery_AllPredicatesCombine(t *testing.T) {
	query, args := buildListQuery(models.ClassifiedFilter{
		Query:    "wheat penny",
		Category: "US Coins",
		Status:   "active",
		MinPrice: floatPtr(10),
		MaxPrice: floatPtr(250),
	})

	for _, want := range []string{
		"(title ILIKE $1 OR description ILIKE $1)",
		"category = $2",
		"status = $3",
		"price >= $4",
		"price <= $5",
	} {
		if !strings.Contains(query, want) {
			t.Fatalf("query %q missing predicate %q", query, want)
		}
	}
	if len(args) != 5 {
		t.Fatalf("expected 5 args, got %v", args)
	}
	if args[3] != 10.0 || args[4] != 250.0 {
		t.Fatalf("unexpected price bounds: %v", args)
	}
}

func TestBuildListQuery_IndependentPredicates(t *testing.T) {
	// Each predicate must appear whether applied alone or together with the
	// others, so combined filtering is the intersection of individual filters.
	single := map[string]models.ClassifiedFilter{
		"category = $1": {Category: "Currency"},
		"status = $1":   {Status: "sold"},
		"price >= $1":   {MinPrice: floatPtr(5)},
	}
	for want, f := range single {
		query, _ := buildListQuery(f)
		if !strings.Contains(query, want) {
			t.Fatalf("query %q missing predicate %q", query, want)
		}
	}
}

func TestBuildListQuery_SortKeys(t *testing.T) {
	cases := []struct {
		sort string
		want string
	}{
		{"price_asc", "ORDER BY price ASC"},
		{"price_desc", "ORDER BY price DESC"},
		{"newest", "ORDER BY created_at DESC"},
		{"", "ORDER BY created_at DESC"},
		{"garbage", "ORDER BY created_at DESC"},
	}

	for _, tc := range cases {
		query, _ := buildListQuery(models.ClassifiedFilter{Sort: tc.sort})
		if !strings.HasSuffix(query, tc.want) {
			t.Fatalf("sort %q: expected %q, got %q", tc.sort, tc.want, query)
		}
	}
}
