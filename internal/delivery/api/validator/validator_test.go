package validator

import (
	"encoding/json"
	"testing"

	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_FieldErrorsUseJSONNames(t *testing.T) {
	err := New().Validate(&usecase.CreateDriverRateInput{Amount: -1, Status: "Paused"})
	require.Error(t, err)

	var validationErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	byField := map[string]domainerrors.FieldError{}
	for _, field := range validationErr.Fields {
		byField[field.Field] = field
	}

	require.Contains(t, byField, "deliveryType")
	assert.Equal(t, "required", byField["deliveryType"].Tag)
	assert.Equal(t, "deliveryType is required", byField["deliveryType"].Message)

	require.Contains(t, byField, "amount")
	assert.Equal(t, "gt", byField["amount"].Tag)

	require.Contains(t, byField, "status")
	assert.Equal(t, "status must be one of [Active, Inactive]", byField["status"].Message)
}

func TestValidate_PartialUpdateSkipsNilFields(t *testing.T) {
	assert.NoError(t, New().Validate(&usecase.UpdateDriverRateInput{}))

	zero := 0.0
	err := New().Validate(&usecase.UpdateDriverRateInput{Amount: &zero})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestValidate_JSONPayloadKinds(t *testing.T) {
	tests := []struct {
		name    string
		input   usecase.UpsertPreOrderInput
		wantTag string
	}{
		{name: "absent payloads", input: usecase.UpsertPreOrderInput{OrderID: "A"}},
		{name: "null payloads", input: usecase.UpsertPreOrderInput{OrderID: "A", DeliveryRoutes: json.RawMessage("null")}},
		{name: "valid kinds", input: usecase.UpsertPreOrderInput{
			OrderID:            "A",
			ProductAssignments: json.RawMessage(`[{"sku":"x"}]`),
			DeliveryRoutes:     json.RawMessage(` [] `),
			SummaryData:        json.RawMessage(`{"total":1}`),
		}},
		{name: "object where array expected", input: usecase.UpsertPreOrderInput{OrderID: "A", DeliveryRoutes: json.RawMessage(`{}`)}, wantTag: "jsonarray"},
		{name: "array where object expected", input: usecase.UpsertPreOrderInput{OrderID: "A", SummaryData: json.RawMessage(`[]`)}, wantTag: "jsonobject"},
		{name: "string encoded array", input: usecase.UpsertPreOrderInput{OrderID: "A", ProductAssignments: json.RawMessage(`"[1,2]"`)}, wantTag: "jsonarray"},
		{name: "missing order id", input: usecase.UpsertPreOrderInput{}, wantTag: "required"},
		{name: "unknown collection type", input: usecase.UpsertPreOrderInput{OrderID: "A", CollectionType: "Crate"}, wantTag: "oneof"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New().Validate(&tt.input)
			if tt.wantTag == "" {
				assert.NoError(t, err)

				return
			}

			var validationErr *domainerrors.ValidationError
			require.ErrorAs(t, err, &validationErr)
			require.Len(t, validationErr.Fields, 1)
			assert.Equal(t, tt.wantTag, validationErr.Fields[0].Tag)
		})
	}
}

func TestValidate_VegetableHistoryMustBeArray(t *testing.T) {
	input := usecase.CreateVegetableAvailabilityInput{
		VegetableName:    "Carrot",
		Unit:             "kg",
		VegetableHistory: json.RawMessage(`"[{\"qty\":1}]"`),
	}

	var validationErr *domainerrors.ValidationError
	require.ErrorAs(t, New().Validate(&input), &validationErr)
	assert.Equal(t, "vegetable_history", validationErr.Fields[0].Field)
	assert.Equal(t, "vegetable_history must be a JSON array", validationErr.Fields[0].Message)
}
