package postgres

import (
	"strings"
	"testing"

	"go-manpower-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestBuildJobSearchQuery(t *testing.T) {
	t.Run("Should omit WHERE with no filters", func(t *testing.T) {
		query, args := buildJobSearchQuery(domain.JobSearchFilter{})

		assert.NotContains(t, query, "WHERE")
		assert.Empty(t, args)
		assert.Contains(t, query, "GROUP BY j.id, u.name")
		assert.Contains(t, query, "ORDER BY j.created_at DESC")
	})

	t.Run("Should wrap location in wildcards", func(t *testing.T) {
		query, args := buildJobSearchQuery(domain.JobSearchFilter{Location: "Oslo"})

		assert.Contains(t, query, "j.location ILIKE $1")
		assert.Equal(t, []any{"%Oslo%"}, args)
	})

	t.Run("Should bind salary and duration bounds", func(t *testing.T) {
		minSalary := 5000.0
		maxDuration := 30
		query, args := buildJobSearchQuery(domain.JobSearchFilter{MinSalary: &minSalary, MaxDuration: &maxDuration})

		assert.Contains(t, query, "j.salary >= $1")
		assert.Contains(t, query, "j.duration_days <= $2")
		assert.Equal(t, []any{5000.0, 30}, args)
	})

	t.Run("Should reuse one placeholder for the text search", func(t *testing.T) {
		query, args := buildJobSearchQuery(domain.JobSearchFilter{Query: "welder"})

		assert.Contains(t, query, "(j.title ILIKE $1 OR j.description ILIKE $1)")
		assert.Equal(t, []any{"%welder%"}, args)
	})

	t.Run("Should normalize the skill filter", func(t *testing.T) {
		query, args := buildJobSearchQuery(domain.JobSearchFilter{Skill: "  Welding "})

		assert.Contains(t, query, "s2.name = $1")
		assert.Equal(t, []any{"welding"}, args)
	})

	t.Run("Should combine all filters with AND in declaration order", func(t *testing.T) {
		minSalary := 1000.0
		maxDuration := 14
		query, args := buildJobSearchQuery(domain.JobSearchFilter{
			Location:    "Bergen",
			MinSalary:   &minSalary,
			MaxDuration: &maxDuration,
			Query:       "night shift",
			Skill:       "Forklift",
		})

		assert.Contains(t, query, "j.location ILIKE $1")
		assert.Contains(t, query, "j.salary >= $2")
		assert.Contains(t, query, "j.duration_days <= $3")
		assert.Contains(t, query, "(j.title ILIKE $4 OR j.description ILIKE $4)")
		assert.Contains(t, query, "s2.name = $5")
		assert.True(t, strings.Contains(query, "WHERE j.location ILIKE $1 AND j.salary >= $2"))
		assert.Equal(t, []any{"%Bergen%", 1000.0, 14, "%night shift%", "forklift"}, args)
	})

	t.Run("Should never inline filter values into the SQL text", func(t *testing.T) {
		query, _ := buildJobSearchQuery(domain.JobSearchFilter{
			Location: "'; DROP TABLE jobs; --",
			Query:    "1 OR 1=1",
			Skill:    "x' OR 'a'='a",
		})

		assert.NotContains(t, query, "DROP TABLE")
		assert.NotContains(t, query, "1=1")
		assert.NotContains(t, query, "'a'='a")
	})
}
