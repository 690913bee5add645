package schema

import "strconv"

// RecordKind identifies the shape of a record and its runtime type.
type RecordKind uint16

const (
	_kind_beg RecordKind = iota

	// control
	KindStart
	KindStop
	KindReconfig
	KindReset
	KindShutdown
	KindHeartbeat
	KindAlarm
	KindField
	KindNodeInfo
	KindNodeStatistic
	KindNodeStateChange

	// reference and market data
	KindExchangeInfo
	KindCurrencyInfo
	KindCurrencyRate
	KindInstr
	KindInstrGroup
	KindInstrLeg
	KindTradingStatus
	KindTradingSession
	KindBook
	KindQuote
	KindMdataTrade
	KindCommonInfo
	KindMdataSubscribe
	KindMdataUnsubscribe
	KindMdataSubscribeResult
	KindMdataResolve
	KindMdataSymbol
	KindMdataFeedState
	KindMdataSubscription
	KindMdataStatistic

	// accounts and orders
	KindAccount
	KindPosition
	KindLimit
	KindUser
	KindDesk
	KindOrder
	KindNewOrder
	KindCancel
	KindReplace
	KindMassCancel
	KindOrderStatusRequest
	KindAccepted
	KindRejected
	KindCanceled
	KindReplaced
	KindCancelRejected
	KindExpired
	KindExecReport
	KindTrade
	KindOrderRemoved
	KindAlgoOrder
	KindAlgoOrderStart
	KindAlgoOrderStop
	KindOptMm
	KindOptMmStateChange
	KindStrategy
	KindStrategyParam

	// fix and misc
	KindFixSession
	KindFixSessionStatusChange
	KindFixSessionReset
	KindFixLogon
	KindFixLogout
	KindFixMessage
	KindFixResendRequest
	KindExtRefMap
	KindLogRecord
	KindVariable
	KindSnapshotRequest
	KindSnapshotDone

	_kind_end
)

// KindCount is the number of registered record kinds.
const KindCount = int(_kind_end - _kind_beg - 1)

var kindNames = [...]string{
	KindStart:                  "start",
	KindStop:                   "stop",
	KindReconfig:               "reconfig",
	KindReset:                  "reset",
	KindShutdown:               "shutdown",
	KindHeartbeat:              "heartbeat",
	KindAlarm:                  "alarm",
	KindField:                  "field",
	KindNodeInfo:               "node_info",
	KindNodeStatistic:          "node_statistic",
	KindNodeStateChange:        "node_state_change",
	KindExchangeInfo:           "exchange_info",
	KindCurrencyInfo:           "currency_info",
	KindCurrencyRate:           "currency_rate",
	KindInstr:                  "instr",
	KindInstrGroup:             "instr_group",
	KindInstrLeg:               "instr_leg",
	KindTradingStatus:          "trading_status",
	KindTradingSession:         "trading_session",
	KindBook:                   "book",
	KindQuote:                  "quote",
	KindMdataTrade:             "mdata_trade",
	KindCommonInfo:             "common_info",
	KindMdataSubscribe:         "mdata_subscribe",
	KindMdataUnsubscribe:       "mdata_unsubscribe",
	KindMdataSubscribeResult:   "mdata_subscribe_result",
	KindMdataResolve:           "mdata_resolve",
	KindMdataSymbol:            "mdata_symbol",
	KindMdataFeedState:         "mdata_feed_state",
	KindMdataSubscription:      "mdata_subscription",
	KindMdataStatistic:         "mdata_statistic",
	KindAccount:                "account",
	KindPosition:               "position",
	KindLimit:                  "limit",
	KindUser:                   "user",
	KindDesk:                   "desk",
	KindOrder:                  "order",
	KindNewOrder:               "new_order",
	KindCancel:                 "cancel",
	KindReplace:                "replace",
	KindMassCancel:             "mass_cancel",
	KindOrderStatusRequest:     "order_status_request",
	KindAccepted:               "accepted",
	KindRejected:               "rejected",
	KindCanceled:               "canceled",
	KindReplaced:               "replaced",
	KindCancelRejected:         "cancel_rejected",
	KindExpired:                "expired",
	KindExecReport:             "exec_report",
	KindTrade:                  "trade",
	KindOrderRemoved:           "order_removed",
	KindAlgoOrder:              "algo_order",
	KindAlgoOrderStart:         "algo_order_start",
	KindAlgoOrderStop:          "algo_order_stop",
	KindOptMm:                  "opt_mm",
	KindOptMmStateChange:       "opt_mm_state_change",
	KindStrategy:               "strategy",
	KindStrategyParam:          "strategy_param",
	KindFixSession:             "fix_session",
	KindFixSessionStatusChange: "fix_session_status_change",
	KindFixSessionReset:        "fix_session_reset",
	KindFixLogon:               "fix_logon",
	KindFixLogout:              "fix_logout",
	KindFixMessage:             "fix_message",
	KindFixResendRequest:       "fix_resend_request",
	KindExtRefMap:              "ext_ref_map",
	KindLogRecord:              "log_record",
	KindVariable:               "variable",
	KindSnapshotRequest:        "snapshot_request",
	KindSnapshotDone:           "snapshot_done",
	_kind_end:                  "",
}

var kindByName = func() map[string]RecordKind {
	m := make(map[string]RecordKind, KindCount)
	for k := _kind_beg + 1; k < _kind_end; k++ {
		m[kindNames[k]] = k
	}
	return m
}()

func (k RecordKind) IsAvailable() bool {
	return k > _kind_beg && k < _kind_end
}

func (k RecordKind) String() string {
	if !k.IsAvailable() {
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

// ParseKind returns the kind registered under name.
func ParseKind(name string) (RecordKind, bool) {
	k, ok := kindByName[name]
	return k, ok
}

// AllKinds returns every record kind in declaration order.
func AllKinds() []RecordKind {
	kinds := make([]RecordKind, 0, KindCount)
	for k := _kind_beg + 1; k < _kind_end; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}
