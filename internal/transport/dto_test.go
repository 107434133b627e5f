package transport

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/gamemart/orders-service/internal/models"
)

func TestNewOrderResponseFormatsCreatedAsHTTPDate(t *testing.T) {
	order := &models.Order{
		OrderID:       5,
		CustomerEmail: "cposkitt@smu.edu.sg",
		Status:        "NEW",
		Created:       time.Date(2021, 8, 10, 0, 0, 0, 0, time.UTC),
	}

	resp := NewOrderResponse(order)
	require.Equal(t, "Tue, 10 Aug 2021 00:00:00 GMT", resp.Created)
}

func TestNewOrderResponseEmptyItemsSerializeAsArray(t *testing.T) {
	order := &models.Order{
		OrderID:       1,
		CustomerEmail: "haniel@danley.com",
		Status:        "NEW",
		Created:       time.Now(),
	}

	b, err := json.Marshal(NewOrderResponse(order))
	require.NoError(t, err)
	require.Contains(t, string(b), `"order_items":[]`)
}

func TestUpdateOrderRequestDistinguishesAbsentStatus(t *testing.T) {
	var absent UpdateOrderRequest
	require.NoError(t, json.Unmarshal([]byte(`{}`), &absent))
	require.Nil(t, absent.Status)

	var present UpdateOrderRequest
	require.NoError(t, json.Unmarshal([]byte(`{"status":"CANCELLED"}`), &present))
	require.NotNil(t, present.Status)
	require.Equal(t, "CANCELLED", *present.Status)
}
