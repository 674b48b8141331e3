package mocks

import (
	"testing"

	"go.uber.org/mock/gomock"
)

// NewMockPaymentsAPIForTest creates a new mock PaymentsAPI for testing
func NewMockPaymentsAPIForTest(t *testing.T) *MockPaymentsAPI {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockPaymentsAPI(ctrl)
}
