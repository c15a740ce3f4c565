package orderv1

import (
	"strconv"
	"strings"

	"github.com/muhammadchandra19/marketfeed/pkg/errors"
	"github.com/shopspring/decimal"
)

// Wire field names.
const (
	FieldID            = "id"
	FieldProductID     = "product_id"
	FieldUserID        = "user_id"
	FieldSide          = "side"
	FieldType          = "type"
	FieldCreatedAt     = "created_at"
	FieldExecutedValue = "executed_value"
	FieldStatus        = "status"
	FieldSettled       = "settled"
	FieldPrice         = "price"
	FieldCancelAfter   = "cancel_after"
	FieldSize          = "size"
)

// ParseOrder converts a flat wire record into an Order. Every offending field is
// reported in the returned *errors.BaseError; a record with any error must be skipped.
func ParseOrder(fields map[string]string) (*Order, error) {
	p := parser{fields: fields, errs: errors.NewBaseError()}

	o := &Order{
		ID:          p.required(FieldID),
		ProductID:   fields[FieldProductID],
		UserID:      fields[FieldUserID],
		Side:        p.side(),
		Type:        p.orderType(),
		CreatedAt:   p.int(FieldCreatedAt, true),
		Status:      p.status(),
		Settled:     fields[FieldSettled] == "true",
		CancelAfter: p.cancelAfter(),
		Size:        p.int(FieldSize, true),
		Raw:         fields,
	}
	o.ExecutedValue = p.decimal(FieldExecutedValue)

	if o.Type == TypeLimit {
		o.Price = p.int(FieldPrice, true)
		if _, present := fields[FieldPrice]; present && o.Price <= 0 && !p.failed(FieldPrice) {
			p.outOfRange(FieldPrice, "price must be positive for limit orders")
		}
	} else if v := strings.TrimSpace(fields[FieldPrice]); v != "" {
		o.Price = p.int(FieldPrice, false)
	}

	if o.Size <= 0 && !p.failed(FieldSize) {
		p.outOfRange(FieldSize, "size must be positive")
	}

	if err := p.errs.OrNil(); err != nil {
		p.errs.ReplaceAllObjects(fields)
		return nil, err
	}
	return o, nil
}

type parser struct {
	fields map[string]string
	errs   *errors.BaseError
}

func (p parser) invalid(field, msg string) {
	p.errs.AddErrorDetails(errors.NewErrorDetails(msg, string(errors.OrderInvalidFieldError), field))
}

func (p parser) outOfRange(field, msg string) {
	p.errs.AddErrorDetails(errors.NewErrorDetails(msg, string(errors.OrderRangeError), field))
}

func (p parser) failed(field string) bool {
	for _, f := range p.errs.Fields() {
		if f == field {
			return true
		}
	}
	return false
}

func (p parser) required(field string) string {
	v := strings.TrimSpace(p.fields[field])
	if v == "" {
		p.invalid(field, field+" is required")
	}
	return v
}

func (p parser) int(field string, required bool) int64 {
	raw := strings.TrimSpace(p.fields[field])
	if raw == "" {
		if required {
			p.invalid(field, field+" is required")
		}
		return 0
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		p.invalid(field, field+" is not a base 10 integer")
		return 0
	}
	return v
}

// decimal treats an absent executed_value as zero; a present but malformed one is an error.
func (p parser) decimal(field string) decimal.Decimal {
	raw := strings.TrimSpace(p.fields[field])
	if raw == "" {
		return decimal.Zero
	}
	v, err := decimal.NewFromString(raw)
	if err != nil {
		p.invalid(field, field+" is not a number")
		return decimal.Zero
	}
	return v
}

func (p parser) side() Side {
	switch p.fields[FieldSide] {
	case "buy":
		return SideBuy
	case "sell":
		return SideSell
	}
	p.invalid(FieldSide, "side must be buy or sell")
	return SideUnknown
}

func (p parser) orderType() Type {
	switch p.fields[FieldType] {
	case "limit":
		return TypeLimit
	case "market":
		return TypeMarket
	}
	p.invalid(FieldType, "type must be market or limit")
	return TypeUnknown
}

// status is lenient: the book only needs it to tell cancellations apart.
func (p parser) status() Status {
	switch p.fields[FieldStatus] {
	case "received":
		return StatusReceived
	case "open":
		return StatusOpen
	case "done":
		return StatusDone
	case "cancelled", "canceled":
		return StatusCancelled
	}
	return StatusUnknown
}

func (p parser) cancelAfter() CancelAfter {
	switch p.fields[FieldCancelAfter] {
	case "min":
		return CancelAfterMin
	case "hour":
		return CancelAfterHour
	}
	return CancelAfterNone
}
