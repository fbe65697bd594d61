package types

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
)

type ErrorTestSuite struct {
	suite.Suite
}

func TestErrorSuite(t *testing.T) {
	suite.Run(t, new(ErrorTestSuite))
}

func (s *ErrorTestSuite) TestNewError() {
	err := NewError(ErrInsufficientFunds, "not enough credits")

	s.Equal(ErrInsufficientFunds, err.Code)
	s.Equal("not enough credits", err.Message)
	s.Nil(err.Err)
}

func (s *ErrorTestSuite) TestWrapError() {
	underlying := errors.New("connection reset")

	err := WrapError(ErrGenerationFailed, "the spirits are silent", underlying)

	s.Equal(ErrGenerationFailed, err.Code)
	s.ErrorIs(err, underlying, "Underlying error should be reachable")
}

func (s *ErrorTestSuite) TestErrorString() {
	testCases := []struct {
		name     string
		err      *AppError
		expected string
	}{
		{
			name:     "Simple error",
			err:      NewError(ErrProductNotFound, "unknown package"),
			expected: "PRODUCT_NOT_FOUND: unknown package",
		},
		{
			name:     "Wrapped error",
			err:      WrapError(ErrPersistenceUnavailable, "save failed", errors.New("disk full")),
			expected: "PERSISTENCE_UNAVAILABLE: save failed (disk full)",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, tc.err.Error())
		})
	}
}

func (s *ErrorTestSuite) TestIsCode() {
	appErr := NewError(ErrInsufficientFunds, "not enough credits")

	testCases := []struct {
		name     string
		err      error
		code     ErrorCode
		expected bool
	}{
		{"Matching code", appErr, ErrInsufficientFunds, true},
		{"Different code", appErr, ErrGenerationFailed, false},
		{"Wrapped with fmt", fmt.Errorf("tarot: %w", appErr), ErrInsufficientFunds, true},
		{"Regular error", errors.New("plain"), ErrInsufficientFunds, false},
		{"Nil error", nil, ErrInsufficientFunds, false},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, IsCode(tc.err, tc.code))
		})
	}
}

func (s *ErrorTestSuite) TestUserMessage() {
	s.Equal("the spirits are silent", UserMessage(NewError(ErrGenerationFailed, "the spirits are silent")))
	s.NotEmpty(UserMessage(errors.New("boom")))
}
