package enum

// Side buy, sell
type Side uint8

const (
	SideEmpty Side = 48
	SideBuy   Side = 49
	SideSell  Side = 50
)

var sides = newTable("side", map[Side]string{
	SideEmpty: "empty",
	SideBuy:   "buy",
	SideSell:  "sell",
})

func (s Side) Code() int64       { return int64(s) }
func (s Side) String() string    { return sides.name(s) }
func (s Side) IsAvailable() bool { return sides.has(s) }

// OrdType market, limit, stop limit
type OrdType uint8

const (
	OrdTypeMarket    OrdType = 49
	OrdTypeLimit     OrdType = 50
	OrdTypeStopLimit OrdType = 52
)

var ordTypes = newTable("ord_type", map[OrdType]string{
	OrdTypeMarket:    "market",
	OrdTypeLimit:     "limit",
	OrdTypeStopLimit: "stop_limit",
})

func (t OrdType) Code() int64       { return int64(t) }
func (t OrdType) String() string    { return ordTypes.name(t) }
func (t OrdType) IsAvailable() bool { return ordTypes.has(t) }

// Tif day, GTC, IOC, FOK, GTD
type Tif uint8

const (
	TifDay Tif = 48
	TifGTC Tif = 49
	TifIOC Tif = 51
	TifFOK Tif = 52
	TifGTD Tif = 54
)

var tifs = newTable("tif", map[Tif]string{
	TifDay: "day",
	TifGTC: "gtc",
	TifIOC: "ioc",
	TifFOK: "fok",
	TifGTD: "gtd",
})

func (t Tif) Code() int64       { return int64(t) }
func (t Tif) String() string    { return tifs.name(t) }
func (t Tif) IsAvailable() bool { return tifs.has(t) }

type RejReason uint8

const (
	RejReasonOther RejReason = iota + 1
	RejReasonTooLate
	RejReasonUnknownInstr
	RejReasonDuplicate
	RejReasonExceedLimit
	RejReasonExchClosed
	RejReasonBrokerOpt
	RejReasonWrongAccount
	RejReasonAlreadyInPending
	RejReasonUnknown
	RejReasonInternalError
	RejReasonTranLimit
	RejReasonRemoved
	RejReasonGuard
)

var rejReasons = newTable("rej_reason", map[RejReason]string{
	RejReasonOther:            "other",
	RejReasonTooLate:          "too_late",
	RejReasonUnknownInstr:     "unknown_instr",
	RejReasonDuplicate:        "duplicate",
	RejReasonExceedLimit:      "exceed_limit",
	RejReasonExchClosed:       "exch_closed",
	RejReasonBrokerOpt:        "broker_opt",
	RejReasonWrongAccount:     "wrong_account",
	RejReasonAlreadyInPending: "already_in_pending",
	RejReasonUnknown:          "unknown",
	RejReasonInternalError:    "internal_error",
	RejReasonTranLimit:        "tran_limit",
	RejReasonRemoved:          "removed",
	RejReasonGuard:            "guard",
})

func (r RejReason) Code() int64       { return int64(r) }
func (r RejReason) String() string    { return rejReasons.name(r) }
func (r RejReason) IsAvailable() bool { return rejReasons.has(r) }

// OrderFixStatus is the FIX OrdStatus(39) value of an order.
type OrderFixStatus uint8

const (
	OrderFixStatusNew             OrderFixStatus = 48
	OrderFixStatusPartiallyFilled OrderFixStatus = 49
	OrderFixStatusFilled          OrderFixStatus = 50
	OrderFixStatusCanceled        OrderFixStatus = 52
	OrderFixStatusPendingCancel   OrderFixStatus = 54
	OrderFixStatusRejected        OrderFixStatus = 56
	OrderFixStatusPendingNew      OrderFixStatus = 65
	OrderFixStatusExpired         OrderFixStatus = 67
	OrderFixStatusPendingReplace  OrderFixStatus = 69
)

var orderFixStatuses = newTable("order_fix_status", map[OrderFixStatus]string{
	OrderFixStatusNew:             "new",
	OrderFixStatusPartiallyFilled: "partially_filled",
	OrderFixStatusFilled:          "filled",
	OrderFixStatusCanceled:        "canceled",
	OrderFixStatusPendingCancel:   "pending_cancel",
	OrderFixStatusRejected:        "rejected",
	OrderFixStatusPendingNew:      "pending_new",
	OrderFixStatusExpired:         "expired",
	OrderFixStatusPendingReplace:  "pending_replace",
})

func (s OrderFixStatus) Code() int64       { return int64(s) }
func (s OrderFixStatus) String() string    { return orderFixStatuses.name(s) }
func (s OrderFixStatus) IsAvailable() bool { return orderFixStatuses.has(s) }

// OrderStatus initial, active, filled, canceled, rejected, expired, removed, awaiting_*
type OrderStatus uint8

const (
	OrderStatusInitial         OrderStatus = 'I'
	OrderStatusActive          OrderStatus = 'A'
	OrderStatusFilled          OrderStatus = 'F'
	OrderStatusCanceled        OrderStatus = 'C'
	OrderStatusRejected        OrderStatus = 'R'
	OrderStatusExpired         OrderStatus = 'E'
	OrderStatusRemoved         OrderStatus = 'T'
	OrderStatusAwaitingActive  OrderStatus = 'a'
	OrderStatusAwaitingCancel  OrderStatus = 'c'
	OrderStatusAwaitingReplace OrderStatus = 'r'
)

var orderStatuses = newTable("order_status", map[OrderStatus]string{
	OrderStatusInitial:         "initial",
	OrderStatusActive:          "active",
	OrderStatusFilled:          "filled",
	OrderStatusCanceled:        "canceled",
	OrderStatusRejected:        "rejected",
	OrderStatusExpired:         "expired",
	OrderStatusRemoved:         "removed",
	OrderStatusAwaitingActive:  "awaiting_active",
	OrderStatusAwaitingCancel:  "awaiting_cancel",
	OrderStatusAwaitingReplace: "awaiting_replace",
})

func (s OrderStatus) Code() int64       { return int64(s) }
func (s OrderStatus) String() string    { return orderStatuses.name(s) }
func (s OrderStatus) IsAvailable() bool { return orderStatuses.has(s) }

// IsActive reports whether the order may still trade.
func (s OrderStatus) IsActive() bool {
	switch s {
	case OrderStatusInitial, OrderStatusActive, OrderStatusAwaitingActive,
		OrderStatusAwaitingCancel, OrderStatusAwaitingReplace:
		return true
	}
	return false
}

// IsDone reports whether the order reached a final status.
func (s OrderStatus) IsDone() bool {
	switch s {
	case OrderStatusFilled, OrderStatusCanceled, OrderStatusRejected,
		OrderStatusExpired, OrderStatusRemoved:
		return true
	}
	return false
}

// ExecType is the FIX ExecType(150) value of an execution report.
type ExecType uint8

const (
	ExecTypeNew            ExecType = 48
	ExecTypeCanceled       ExecType = 52
	ExecTypeReplace        ExecType = 53
	ExecTypePendingCancel  ExecType = 54
	ExecTypeRejected       ExecType = 56
	ExecTypeExpired        ExecType = 67
	ExecTypePendingReplace ExecType = 69
	ExecTypeTrade          ExecType = 70
)

var execTypes = newTable("exec_type", map[ExecType]string{
	ExecTypeNew:            "new",
	ExecTypeCanceled:       "canceled",
	ExecTypeReplace:        "replace",
	ExecTypePendingCancel:  "pending_cancel",
	ExecTypeRejected:       "rejected",
	ExecTypeExpired:        "expired",
	ExecTypePendingReplace: "pending_replace",
	ExecTypeTrade:          "trade",
})

func (t ExecType) Code() int64       { return int64(t) }
func (t ExecType) String() string    { return execTypes.name(t) }
func (t ExecType) IsAvailable() bool { return execTypes.has(t) }

type RejResponseTo uint8

const (
	RejResponseToCancel  RejResponseTo = 49
	RejResponseToReplace RejResponseTo = 50
)

var rejResponses = newTable("rej_response_to", map[RejResponseTo]string{
	RejResponseToCancel:  "cancel",
	RejResponseToReplace: "replace",
})

func (r RejResponseTo) Code() int64       { return int64(r) }
func (r RejResponseTo) String() string    { return rejResponses.name(r) }
func (r RejResponseTo) IsAvailable() bool { return rejResponses.has(r) }

type MlegReportType uint8

const (
	MlegReportTypeSingle  MlegReportType = 49
	MlegReportTypeLeg     MlegReportType = 50
	MlegReportTypeMlegSec MlegReportType = 51
)

var mlegReportTypes = newTable("mleg_report_type", map[MlegReportType]string{
	MlegReportTypeSingle:  "single",
	MlegReportTypeLeg:     "leg",
	MlegReportTypeMlegSec: "mleg_sec",
})

func (t MlegReportType) Code() int64       { return int64(t) }
func (t MlegReportType) String() string    { return mlegReportTypes.name(t) }
func (t MlegReportType) IsAvailable() bool { return mlegReportTypes.has(t) }
