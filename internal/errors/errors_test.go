package errors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/spellbook-api/internal/errors"
)

type ErrorsTestSuite struct {
	suite.Suite
}

func TestErrorsSuite(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}

func (s *ErrorsTestSuite) TestNewError() {
	testCases := []struct {
		name     string
		code     errors.Code
		message  string
		expected string
	}{
		{
			name:     "not found error",
			code:     errors.CodeNotFound,
			message:  "spell not found",
			expected: "NOT_FOUND: spell not found",
		},
		{
			name:     "invalid argument error",
			code:     errors.CodeInvalidArgument,
			message:  "invalid query",
			expected: "INVALID_ARGUMENT: invalid query",
		},
		{
			name:     "failed precondition error",
			code:     errors.CodeFailedPrecondition,
			message:  "swap window closed",
			expected: "FAILED_PRECONDITION: swap window closed",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := errors.New(tc.code, tc.message)
			s.Equal(tc.expected, err.Error())
			s.Equal(tc.code, err.Code)
			s.Equal(tc.message, err.Message)
		})
	}
}

func (s *ErrorsTestSuite) TestWrapPreservesCode() {
	original := errors.NotFound("character not found")
	wrapped := errors.Wrap(original, "failed to load rule state")

	s.Equal(errors.CodeNotFound, wrapped.Code)
	s.True(errors.IsNotFound(wrapped))
	s.ErrorIs(wrapped, original)
}

func (s *ErrorsTestSuite) TestWrapPlainError() {
	plain := fmt.Errorf("connection refused")
	wrapped := errors.Wrap(plain, "failed to persist prepared set")

	s.Equal(errors.CodeInternal, wrapped.Code)
	s.Contains(wrapped.Error(), "connection refused")
}

func (s *ErrorsTestSuite) TestWrapNil() {
	s.Nil(errors.Wrap(nil, "should be nil"))
}

func (s *ErrorsTestSuite) TestWrapWithCode() {
	plain := fmt.Errorf("redis: nil")
	wrapped := errors.WrapWithCode(plain, errors.CodeNotFound, "ledger not found")

	s.Equal(errors.CodeNotFound, wrapped.Code)
	s.True(errors.IsNotFound(wrapped))
}

func (s *ErrorsTestSuite) TestMeta() {
	err := errors.FailedPrecondition("only one cantrip swap per window").
		WithMeta("reason", "OnlyOneSwap").
		WithMeta("class_id", "wizard")

	meta := errors.GetMeta(err)
	s.Equal("OnlyOneSwap", meta["reason"])
	s.Equal("wizard", meta["class_id"])
}

func (s *ErrorsTestSuite) TestGetCode() {
	s.Equal(errors.CodeOK, errors.GetCode(nil))
	s.Equal(errors.CodeInternal, errors.GetCode(fmt.Errorf("plain")))
	s.Equal(errors.CodeResourceExhausted, errors.GetCode(errors.ResourceExhausted("at cap")))
}

func (s *ErrorsTestSuite) TestGetMessage() {
	s.Equal("", errors.GetMessage(nil))
	s.Equal("at cap", errors.GetMessage(errors.ResourceExhausted("at cap")))
	s.Equal("plain", errors.GetMessage(fmt.Errorf("plain")))
}
