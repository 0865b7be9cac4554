package enum

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// OrderType describes how an order is fulfilled.
type OrderType string

const (
	OrderTypeDineIn   OrderType = "dine-in"
	OrderTypeTakeaway OrderType = "takeaway"
	OrderTypeDelivery OrderType = "delivery"
)

// ParseOrderType validates s. An empty string yields the dine-in default.
func ParseOrderType(s string) (OrderType, error) {
	switch OrderType(s) {
	case "":
		return OrderTypeDineIn, nil
	case OrderTypeDineIn, OrderTypeTakeaway, OrderTypeDelivery:
		return OrderType(s), nil
	}
	return "", fmt.Errorf("unknown order type %q", s)
}

func (t OrderType) String() string {
	return string(t)
}

func (t OrderType) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(t))
}

func (t *OrderType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	parsed, err := ParseOrderType(str)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

func (t OrderType) Value() (driver.Value, error) {
	if t == "" {
		return string(OrderTypeDineIn), nil
	}
	return string(t), nil
}

func (t *OrderType) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*t = OrderTypeDineIn
	case string:
		*t = OrderType(v)
	case []byte:
		*t = OrderType(v)
	default:
		return fmt.Errorf("cannot scan %T into OrderType", value)
	}
	return nil
}
