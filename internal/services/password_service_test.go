package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
)

type PasswordServiceTestSuite struct {
	suite.Suite
	service PasswordServiceInterface
}

func (s *PasswordServiceTestSuite) SetupSuite() {
	// Minimum cost keeps the suite fast; production cost comes from config.
	s.service = NewPasswordService(4, 8)
}

func TestPasswordServiceSuite(t *testing.T) {
	suite.Run(t, new(PasswordServiceTestSuite))
}

func (s *PasswordServiceTestSuite) TestHashAndCompare() {
	hash, err := s.service.HashPassword("correct-horse")
	s.Require().NoError(err)
	s.NotEqual("correct-horse", hash)

	s.True(s.service.ComparePassword("correct-horse", hash))
	s.False(s.service.ComparePassword("wrong-horse", hash))
}

func (s *PasswordServiceTestSuite) TestValidatePassword() {
	s.ErrorIs(s.service.ValidatePassword(""), ErrPasswordEmpty)
	s.ErrorIs(s.service.ValidatePassword("short"), ErrPasswordTooShort)
	s.ErrorIs(s.service.ValidatePassword(strings.Repeat("x", 73)), ErrPasswordTooLong)
	s.NoError(s.service.ValidatePassword("exactly8c"))
}

func (s *PasswordServiceTestSuite) TestHashRejectsInvalidPassword() {
	_, err := s.service.HashPassword("short")
	s.ErrorIs(err, ErrPasswordTooShort)
}
