package errors_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/spellbook-api/internal/errors"
)

type ValidationTestSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

func (s *ValidationTestSuite) TestBuilderEmpty() {
	vb := errors.NewValidationBuilder()
	s.NoError(vb.Build())
}

func (s *ValidationTestSuite) TestBuilderRequiredFields() {
	vb := errors.NewValidationBuilder()
	vb.RequiredField("ClassRulesRepo")
	vb.RequiredField("Clock")

	err := vb.Build()
	s.Error(err)
	s.True(errors.IsInvalidArgument(err))

	meta := errors.GetMeta(err)
	fields, ok := meta["validation_errors"].(map[string][]string)
	s.Require().True(ok)
	s.Contains(fields, "ClassRulesRepo")
	s.Contains(fields, "Clock")
}

func (s *ValidationTestSuite) TestBuilderFieldf() {
	vb := errors.NewValidationBuilder()
	vb.Fieldf("preparationBonus", "must be between %d and %d", -5, 20)

	err := vb.Build()
	s.Error(err)
	s.Contains(err.Error(), "preparationBonus")
	s.Contains(err.Error(), "between -5 and 20")
}
