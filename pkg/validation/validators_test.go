package validation

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func TestValidRole(t *testing.T) {
	v := validator.New()
	RegisterValidators(v)

	type payload struct {
		Role string `validate:"valid_role"`
	}

	assert.NoError(t, v.Struct(payload{Role: "admin"}))
	assert.NoError(t, v.Struct(payload{Role: "employer"}))
	assert.NoError(t, v.Struct(payload{Role: "job_seeker"}))
	assert.Error(t, v.Struct(payload{Role: "superuser"}))
	assert.Error(t, v.Struct(payload{Role: "ADMIN"}))
}

func TestValidSkill(t *testing.T) {
	v := validator.New()
	RegisterValidators(v)

	type payload struct {
		Skill string `validate:"valid_skill"`
	}

	assert.NoError(t, v.Struct(payload{Skill: "c++"}))
	assert.NoError(t, v.Struct(payload{Skill: "night driving"}))
	assert.NoError(t, v.Struct(payload{Skill: "CI/CD"}))
	assert.NoError(t, v.Struct(payload{Skill: ""}))
	assert.Error(t, v.Struct(payload{Skill: "drop; table"}))
	assert.Error(t, v.Struct(payload{Skill: "skill' OR '1"}))
}
