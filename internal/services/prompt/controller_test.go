package prompt

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/aiguessr/aiguessr-go/internal/model"
	"github.com/aiguessr/aiguessr-go/internal/storage/memory"
)

type ControllerSuite struct {
	suite.Suite
	storage    *memory.Storage
	controller *Controller
	ctx        context.Context
}

func TestControllerSuite(t *testing.T) {
	suite.Run(t, new(ControllerSuite))
}

func (s *ControllerSuite) SetupTest() {
	s.storage = memory.New()
	s.controller = NewController(s.storage)
	s.ctx = context.Background()
}

func (s *ControllerSuite) TestGetFallsBackToDefault() {
	prompt, err := s.controller.Get(s.ctx)
	s.Require().NoError(err)
	s.Equal(DefaultPrompt, prompt)
}

func (s *ControllerSuite) TestUpdateThenGet() {
	err := s.controller.Update(s.ctx, "act natural")
	s.Require().NoError(err)

	prompt, err := s.controller.Get(s.ctx)
	s.Require().NoError(err)
	s.Equal("act natural", prompt)
}

func (s *ControllerSuite) TestUpdateRejectsEmpty() {
	err := s.controller.Update(s.ctx, "   ")
	s.ErrorIs(err, model.ErrEmptyMessage)
}
