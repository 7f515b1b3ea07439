package postgres

import (
	"testing"

	"go-manpower-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeSkillName(t *testing.T) {
	cases := map[string]string{
		"Welding":       "welding",
		"  Forklift  ":  "forklift",
		"C++":           "c++",
		"NIGHT driving": "night driving",
		"   ":           "",
		"":              "",
	}
	for input, want := range cases {
		assert.Equal(t, want, normalizeSkillName(input))
	}
}

func TestSkillPivot(t *testing.T) {
	t.Run("Should resolve known owner kinds", func(t *testing.T) {
		table, column, err := skillPivot(domain.SkillOwnerJob)
		assert.NoError(t, err)
		assert.Equal(t, "job_skills", table)
		assert.Equal(t, "job_id", column)

		table, column, err = skillPivot(domain.SkillOwnerProfile)
		assert.NoError(t, err)
		assert.Equal(t, "user_skills", table)
		assert.Equal(t, "user_id", column)
	})

	t.Run("Should reject unknown owner kinds", func(t *testing.T) {
		_, _, err := skillPivot(domain.SkillOwner("company"))
		assert.Error(t, err)
	})
}
