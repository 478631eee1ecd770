package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var validationDay = time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC)

func validGoalPayload() GoalPayload {
	return GoalPayload{
		Name:          strPtr("Emergency fund"),
		TargetAmount:  floatPtr(10000),
		CurrentAmount: floatPtr(2500),
	}
}

func TestGoalPayloadValidate_Valid(t *testing.T) {
	assert.NoError(t, validGoalPayload().Validate(validationDay))
}

func TestGoalPayloadValidate_NameRequired(t *testing.T) {
	payload := validGoalPayload()
	payload.Name = strPtr("   ")

	messages := fieldMessages(t, payload.Validate(validationDay))

	assert.Equal(t, "Goal name is required", messages["name"])
}

func TestGoalPayloadValidate_NameTooLong(t *testing.T) {
	payload := validGoalPayload()
	payload.Name = strPtr(strings.Repeat("g", 101))

	messages := fieldMessages(t, payload.Validate(validationDay))

	assert.Equal(t, "Goal name must be less than 100 characters", messages["name"])

	payload.Name = strPtr(strings.Repeat("g", 100))
	assert.NoError(t, payload.Validate(validationDay))
}

func TestGoalPayloadValidate_TargetAmount(t *testing.T) {
	payload := validGoalPayload()
	payload.TargetAmount = nil
	messages := fieldMessages(t, payload.Validate(validationDay))
	assert.Equal(t, "Target amount is required", messages["target_amount"])

	payload.TargetAmount = floatPtr(0)
	messages = fieldMessages(t, payload.Validate(validationDay))
	assert.Equal(t, "Target amount must be greater than 0", messages["target_amount"])
}

func TestGoalPayloadValidate_CurrentCannotBeNegative(t *testing.T) {
	payload := validGoalPayload()
	payload.CurrentAmount = floatPtr(-1)

	messages := fieldMessages(t, payload.Validate(validationDay))

	assert.Equal(t, "Current amount cannot be negative", messages["current_amount"])
}

func TestGoalPayloadValidate_CurrentCannotExceedTarget(t *testing.T) {
	payload := validGoalPayload()
	payload.TargetAmount = floatPtr(5000)
	payload.CurrentAmount = floatPtr(6000)

	messages := fieldMessages(t, payload.Validate(validationDay))

	assert.Contains(t, messages["current_amount"], "exceed target")
}

func TestGoalPayloadValidate_CrossFieldSkippedWhenTargetInvalid(t *testing.T) {
	// A broken target must not also trigger the exceeds-target rule.
	payload := validGoalPayload()
	payload.TargetAmount = floatPtr(-100)
	payload.CurrentAmount = floatPtr(50)

	messages := fieldMessages(t, payload.Validate(validationDay))

	assert.Equal(t, "Target amount must be greater than 0", messages["target_amount"])
	assert.NotContains(t, messages, "current_amount")
}

func TestGoalPayloadValidate_DeadlineFormat(t *testing.T) {
	payload := validGoalPayload()
	payload.Deadline = strPtr("31-12-2025")

	messages := fieldMessages(t, payload.Validate(validationDay))

	assert.Equal(t, "Deadline must be in YYYY-MM-DD format", messages["deadline"])
}

func TestGoalPayloadValidate_DeadlineMustNotBePast(t *testing.T) {
	payload := validGoalPayload()
	payload.Deadline = strPtr("2020-01-01")

	messages := fieldMessages(t, payload.Validate(validationDay))

	assert.Equal(t, "Deadline must be in the future", messages["deadline"])
}

func TestGoalPayloadValidate_DeadlineTodayIsAccepted(t *testing.T) {
	payload := validGoalPayload()
	payload.Deadline = strPtr("2025-06-15")

	assert.NoError(t, payload.Validate(validationDay))
}

func TestGoalPayloadValidate_EmptyDeadlineIsAccepted(t *testing.T) {
	payload := validGoalPayload()
	payload.Deadline = strPtr("")

	assert.NoError(t, payload.Validate(validationDay))
}

func TestGoalPayloadMergeWith_InheritedCurrentStillChecked(t *testing.T) {
	// Shrinking the target below the stored current amount must fail,
	// even though the request never mentions current_amount.
	existing := Goal{Name: "Vacation", TargetAmount: 10000, CurrentAmount: 6000}

	merged := GoalPayload{TargetAmount: floatPtr(5000)}.MergeWith(existing)
	messages := fieldMessages(t, merged.Validate(validationDay))

	assert.Contains(t, messages["current_amount"], "exceed target")
}

func TestGoalPayloadToGoal_EmptyDeadlineMeansNone(t *testing.T) {
	payload := validGoalPayload()
	payload.Deadline = strPtr("")

	goal := payload.ToGoal()

	assert.Nil(t, goal.Deadline)
	assert.Equal(t, "Emergency fund", goal.Name)
	assert.Equal(t, 10000.0, goal.TargetAmount)
	assert.Equal(t, 2500.0, goal.CurrentAmount)
}
