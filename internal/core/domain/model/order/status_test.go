package order_test

import (
	"fmt"
	"testing"

	"freightline/internal/core/domain/model/order"
	"freightline/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(order.Unknown))
		assert.Equal(t, 1, int(order.Registered))
		assert.Equal(t, 2, int(order.InProgress))
		assert.Equal(t, 3, int(order.Completed))
		assert.Equal(t, 4, int(order.Failed))
		assert.Equal(t, 5, int(order.Cancelled))
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate valid statuses", func(t *testing.T) {
		validStatuses := []order.Status{
			order.Registered,
			order.InProgress,
			order.Completed,
			order.Failed,
			order.Cancelled,
		}

		for _, status := range validStatuses {
			t.Run(fmt.Sprintf("should validate %s status", status.String()), func(t *testing.T) {
				require.NoError(t, status.Validate())
			})
		}
	})

	t.Run("should reject Unknown status", func(t *testing.T) {
		err := order.Unknown.Validate()

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		assert.Contains(t, err.Error(), "status is invalid")
		assert.Contains(t, err.Error(), "0 is not a valid status")
	})

	t.Run("should reject invalid status values", func(t *testing.T) {
		invalidStatuses := []order.Status{
			order.Status(-1),
			order.Status(6),
			order.Status(100),
		}

		for _, status := range invalidStatuses {
			t.Run(fmt.Sprintf("should reject status value %d", int(status)), func(t *testing.T) {
				err := status.Validate()

				require.Error(t, err)
				assert.IsType(t, &errs.ValueIsInvalidError{}, err)
				assert.Contains(t, err.Error(), "status is invalid")
			})
		}
	})
}

func TestStatus_String(t *testing.T) {
	testCases := []struct {
		status   order.Status
		expected string
	}{
		{order.Unknown, "Unknown"},
		{order.Registered, "Registered"},
		{order.InProgress, "InProgress"},
		{order.Completed, "Completed"},
		{order.Failed, "Failed"},
		{order.Cancelled, "Cancelled"},
		{order.Status(99), "Unknown"},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("should return %s", tc.expected), func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.status.String())
		})
	}
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.False(t, order.Registered.IsTerminal())
	assert.False(t, order.InProgress.IsTerminal())
	assert.True(t, order.Completed.IsTerminal())
	assert.True(t, order.Failed.IsTerminal())
	assert.True(t, order.Cancelled.IsTerminal())
}

func TestStatus_Transitions(t *testing.T) {
	t.Run("Start", func(t *testing.T) {
		t.Run("should transition Registered to InProgress", func(t *testing.T) {
			newStatus, err := order.Registered.Start()

			require.NoError(t, err)
			assert.Equal(t, order.InProgress, newStatus)
		})

		for _, s := range []order.Status{order.InProgress, order.Completed, order.Failed, order.Cancelled, order.Unknown} {
			t.Run(fmt.Sprintf("should reject start from %s", s.String()), func(t *testing.T) {
				_, err := s.Start()
				require.Error(t, err)
			})
		}
	})

	t.Run("Complete", func(t *testing.T) {
		t.Run("should transition InProgress to Completed", func(t *testing.T) {
			newStatus, err := order.InProgress.Complete()

			require.NoError(t, err)
			assert.Equal(t, order.Completed, newStatus)
		})

		for _, s := range []order.Status{order.Registered, order.Completed, order.Failed, order.Cancelled} {
			t.Run(fmt.Sprintf("should reject complete from %s", s.String()), func(t *testing.T) {
				_, err := s.Complete()
				require.Error(t, err)
			})
		}
	})

	t.Run("Fail", func(t *testing.T) {
		t.Run("should transition InProgress to Failed", func(t *testing.T) {
			newStatus, err := order.InProgress.Fail()

			require.NoError(t, err)
			assert.Equal(t, order.Failed, newStatus)
		})

		for _, s := range []order.Status{order.Registered, order.Completed, order.Failed, order.Cancelled} {
			t.Run(fmt.Sprintf("should reject fail from %s", s.String()), func(t *testing.T) {
				_, err := s.Fail()
				require.Error(t, err)
			})
		}
	})

	t.Run("Cancel", func(t *testing.T) {
		t.Run("should transition Registered to Cancelled", func(t *testing.T) {
			newStatus, err := order.Registered.Cancel()

			require.NoError(t, err)
			assert.Equal(t, order.Cancelled, newStatus)
		})

		t.Run("should transition InProgress to Cancelled", func(t *testing.T) {
			newStatus, err := order.InProgress.Cancel()

			require.NoError(t, err)
			assert.Equal(t, order.Cancelled, newStatus)
		})

		for _, s := range []order.Status{order.Completed, order.Failed, order.Cancelled} {
			t.Run(fmt.Sprintf("should reject cancel from %s", s.String()), func(t *testing.T) {
				_, err := s.Cancel()
				require.Error(t, err)
			})
		}
	})
}
