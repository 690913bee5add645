package schema

// Fixed widths of string and binary fields.
const (
	SizeNodeName     = 16
	SizeGroupName    = 32
	SizeConfigName   = 16
	SizeSystemName   = 32
	SizeLinkName     = 64
	SizeSenderCompID = 32
	SizeSender       = 16
	SizeClordID      = 32
	SizeExtRef       = 32
	SizeAccount      = 16
	SizeClientCode   = 16
	SizeSales        = 16
	SizeExecID       = 32
	SizeText         = 128
	SizeAlarmText    = 128
	SizeFieldName    = 32
	SizeFieldValue   = 128
	SizeShortText    = 64
	SizeName         = 32
	SizeCls          = 20
	SizeAlias        = 20
	SizeCFI          = 6
	SizeLevels       = 480
	SizeUniqID       = 16
	SizeBook         = 12
	SizeDesk         = 16
	SizeISIN         = 12
	SizeBBSource     = 16
	SizeBBCode       = 32
	SizeBBFigi       = 12
	SizeUUID         = 36
	SizeMsgType      = 16
)

const (
	pc = Printable | Creatable
	pr = Printable
	cr = Creatable
	tr = Transient
)

// table is the static schema of every record kind, indexed by kind-1.
var table = []Schema{
	// control
	define(KindStart, cr, Str("reason", SizeShortText)),
	define(KindStop, cr),
	define(KindReconfig, cr, Str("config", SizeConfigName)),
	define(KindReset, cr, En("hint", "reset_hint"), U16("node")),
	define(KindShutdown, cr),
	define(KindHeartbeat, cr, U64("seq"), U64("ts")),
	define(KindAlarm, pc,
		En("level", "alarm_level"), Str("text", SizeAlarmText), Str("node", SizeNodeName), U64("ts")),
	define(KindField, pc,
		Str("name", SizeFieldName), En("type", "field_type"), Bin("value", SizeFieldValue), U16("node_id")),
	define(KindNodeInfo, pr,
		Str("name", SizeNodeName), Str("group", SizeGroupName), En("state", "node_state"), I32("pid"),
		Str("link", SizeLinkName), Str("config", SizeConfigName), Str("version", SizeShortText)),
	define(KindNodeStatistic, pr,
		Ref("node", KindNodeInfo), U32("error_cnt"), U32("warn_cnt"), U64("msg_in_cnt"), U64("msg_out_cnt"),
		U64("start_ts"), U64("curr_ts")),
	define(KindNodeStateChange, tr, Ref("node", KindNodeInfo), En("state", "node_state")),

	// reference and market data
	define(KindExchangeInfo, pr,
		En("exch", "exchange"), Str("name", SizeName), Str("timezone", SizeName), U32("open_time"), U32("close_time")),
	define(KindCurrencyInfo, pr, En("currency", "currency"), Str("name", SizeName), U8("precision")),
	define(KindCurrencyRate, pr, En("base", "currency"), En("quote", "currency"), F64("rate"), U64("ts")),
	define(KindInstr, pc,
		Str("alias", SizeAlias), Str("name", SizeName), Str("long_name", SizeShortText), Str("cls", SizeCls),
		Str("isin", SizeISIN), Str("cfi", SizeCFI),
		En("exch", "exchange"), En("currency", "currency"), I64("exch_id"), Str("uniq_id", SizeUniqID),
		I64("lot_size"), F64("tick_size"), F64("tick_value"), F64("strike"), En("callput", "callput"), U32("maturity"),
		Ref("underlying", KindInstr),
		Str("bb_source", SizeBBSource), Str("bb_code", SizeBBCode), Str("bb_figi", SizeBBFigi),
		Ref("group", KindInstrGroup), U8("precision")),
	define(KindInstrGroup, pc, Str("name", SizeName), Str("desk", SizeDesk)),
	define(KindInstrLeg, pr, Ref("instr", KindInstr), Ref("leg", KindInstr), I32("ratio"), En("side", "side")),
	define(KindTradingStatus, pr,
		Ref("instr", KindInstr), Ref("session", KindTradingSession), U8("halted"), U64("ts")),
	define(KindTradingSession, pr, En("exch", "exchange"), Str("name", SizeName), U64("start_ts"), U64("end_ts")),
	define(KindBook, pr,
		Ref("instr", KindInstr), Bin("bids", SizeLevels), Bin("asks", SizeLevels), U64("exch_ts"), U64("ts")),
	define(KindQuote, pr,
		Ref("instr", KindInstr), F64("bid_price"), I64("bid_qty"), F64("ask_price"), I64("ask_qty"),
		U64("exch_ts"), U64("ts"), U32("flag")),
	define(KindMdataTrade, pr,
		Ref("instr", KindInstr), F64("price"), I64("qty"), En("side", "side"), U64("exch_ts"), U64("ts")),
	define(KindCommonInfo, pr,
		Ref("instr", KindInstr), I32("flag"), F64("oi"), F64("min"), F64("max"), F64("open"), F64("close"),
		F64("high"), F64("low"), F64("last"), F64("volume"), U64("ts"), U64("exch_ts")),
	define(KindMdataSubscribe, cr, Ref("instr", KindInstr), I32("mask")),
	define(KindMdataUnsubscribe, cr, Ref("instr", KindInstr)),
	define(KindMdataSubscribeResult, tr, Ref("instr", KindInstr), En("result", "subs_result"), I32("mask")),
	define(KindMdataResolve, cr, Str("alias", SizeAlias)),
	define(KindMdataSymbol, tr, Ref("instr", KindInstr), Str("alias", SizeAlias)),
	define(KindMdataFeedState, tr, Ref("instr", KindInstr), I32("mask"), En("state", "mdata_subs_state")),
	define(KindMdataSubscription, pr,
		Ref("instr", KindInstr), I32("mask"), En("state", "mdata_subs_state"), Ref("node", KindNodeInfo)),
	define(KindMdataStatistic, pr,
		Ref("instr", KindInstr), U64("msg_cnt"), U32("gap_cnt"), U64("last_seq"), U64("ts")),

	// accounts and orders
	define(KindAccount, pc,
		Str("account", SizeAccount), Str("client_code", SizeClientCode), Str("name", SizeName),
		En("currency", "currency"), Str("desk", SizeDesk), Str("sales", SizeSales)),
	define(KindPosition, pr,
		Ref("account", KindAccount), Ref("instr", KindInstr), I64("qty"), F64("avg_price"),
		F64("realized_pnl"), F64("unrealized_pnl"), U64("ts")),
	define(KindLimit, pc,
		Ref("account", KindAccount), Ref("instr", KindInstr), I64("max_qty"), F64("max_notional"),
		I64("used_qty"), F64("used_notional")),
	define(KindUser, pc, Str("name", SizeName), Str("uuid", SizeUUID), Str("desk", SizeDesk), Str("sales", SizeSales)),
	define(KindDesk, pc, Str("name", SizeDesk), Str("book", SizeBook)),
	define(KindOrder, pc,
		Str("clord_id", SizeClordID), Str("orig_clord_id", SizeClordID), Str("exch_order_id", SizeClordID),
		Ref("instr", KindInstr), Ref("account", KindAccount), Str("client_code", SizeClientCode),
		En("side", "side"), En("ord_type", "ord_type"), En("tif", "tif"),
		I64("qty"), F64("price"), F64("stop_price"), I64("leaves_qty"), I64("cum_qty"), F64("avg_price"),
		En("status", "order_status"), En("fix_status", "order_fix_status"), En("rej_reason", "rej_reason"),
		Str("text", SizeText),
		Str("ext_ref", SizeExtRef), Str("sales", SizeSales), Str("book", SizeBook), Str("desk", SizeDesk),
		Ref("fix_session", KindFixSession), Ref("algo_order", KindAlgoOrder),
		U32("flags"), U64("expire_ts"), U64("create_ts"), U64("update_ts")),
	define(KindNewOrder, cr,
		Ref("order", KindOrder), Ref("instr", KindInstr), En("side", "side"), En("ord_type", "ord_type"),
		En("tif", "tif"), I64("qty"), F64("price"), Str("account", SizeAccount),
		Str("client_code", SizeClientCode), Str("ext_ref", SizeExtRef)),
	define(KindCancel, cr,
		Ref("order", KindOrder), Str("clord_id", SizeClordID), Str("orig_clord_id", SizeClordID)),
	define(KindReplace, cr, Ref("order", KindOrder), I64("qty"), F64("price"), Str("ext_ref", SizeExtRef)),
	define(KindMassCancel, cr, Ref("account", KindAccount), Ref("instr", KindInstr), En("side", "side")),
	define(KindOrderStatusRequest, cr, Ref("order", KindOrder)),
	define(KindAccepted, tr, Ref("order", KindOrder), Str("exch_order_id", SizeClordID), U64("ts")),
	define(KindRejected, tr,
		Ref("order", KindOrder), En("reason", "rej_reason"), Str("text", SizeText), U64("ts")),
	define(KindCanceled, tr, Ref("order", KindOrder), I64("leaves_qty"), U64("ts")),
	define(KindReplaced, tr, Ref("order", KindOrder), I64("qty"), F64("price"), U64("ts")),
	define(KindCancelRejected, tr,
		Ref("order", KindOrder), En("reason", "rej_reason"), En("response_to", "rej_response_to"),
		Str("text", SizeText)),
	define(KindExpired, tr, Ref("order", KindOrder), U64("ts")),
	define(KindExecReport, pr,
		Ref("order", KindOrder), Str("exec_id", SizeExecID), En("exec_type", "exec_type"),
		En("fix_status", "order_fix_status"), I64("last_qty"), F64("last_price"), I64("leaves_qty"),
		I64("cum_qty"), F64("avg_price"), Str("text", SizeText), U64("ts")),
	define(KindTrade, pr,
		Ref("order", KindOrder), Ref("instr", KindInstr), Str("exec_id", SizeExecID), En("side", "side"),
		I64("qty"), F64("price"), Str("account", SizeAccount), Str("client_code", SizeClientCode),
		Str("ext_ref", SizeExtRef), En("mleg_report_type", "mleg_report_type"), F64("commission"),
		U64("trade_ts"), U32("settl_date")),
	define(KindOrderRemoved, tr, Ref("order", KindOrder), U64("ts")),
	define(KindAlgoOrder, pc,
		Str("name", SizeName), Ref("instr", KindInstr), Ref("account", KindAccount), En("side", "side"),
		I64("qty"), F64("price"), En("status", "order_status"), Str("params", SizeShortText),
		I64("leaves_qty"), I64("cum_qty"), Str("text", SizeText)),
	define(KindAlgoOrderStart, cr, Ref("algo_order", KindAlgoOrder)),
	define(KindAlgoOrderStop, cr, Ref("algo_order", KindAlgoOrder), Str("reason", SizeShortText)),
	define(KindOptMm, pc,
		Ref("instr", KindInstr), En("state", "opt_mm_state"), En("calc_mid", "calc_mid"),
		F64("bid_shift"), F64("ask_shift"), F64("vol_shift"), I64("qty"),
		Ref("bid_order", KindOrder), Ref("ask_order", KindOrder)),
	define(KindOptMmStateChange, tr,
		Ref("opt_mm", KindOptMm), En("state", "opt_mm_state"), Str("text", SizeText)),
	define(KindStrategy, pc,
		Str("name", SizeName), Ref("node", KindNodeInfo), En("state", "node_state"), Str("params", SizeShortText)),
	define(KindStrategyParam, pc,
		Ref("strategy", KindStrategy), Str("name", SizeName), Bin("value", SizeFieldValue), En("type", "field_type")),

	// fix and misc
	define(KindFixSession, pr,
		Str("name", SizeName), Str("sender_comp_id", SizeSenderCompID), Str("target_comp_id", SizeSenderCompID),
		Str("sender", SizeSender), En("status", "fix_session_status"), Str("host", SizeLinkName), U16("port"),
		I32("heartbeat_int"), U64("in_seq_num"), U64("out_seq_num"), Ref("account", KindAccount),
		Str("text", SizeText)),
	define(KindFixSessionStatusChange, tr,
		Ref("fix_session", KindFixSession), En("status", "fix_session_status"), Str("text", SizeText)),
	define(KindFixSessionReset, cr, Ref("fix_session", KindFixSession), U64("in_seq_num"), U64("out_seq_num")),
	define(KindFixLogon, cr, Ref("fix_session", KindFixSession)),
	define(KindFixLogout, cr, Ref("fix_session", KindFixSession), Str("text", SizeText)),
	define(KindFixMessage, pr,
		Ref("fix_session", KindFixSession), Str("msg_type", SizeMsgType), Bin("raw", SizeLevels),
		U64("seq_num"), U64("ts")),
	define(KindFixResendRequest, cr, Ref("fix_session", KindFixSession), U64("begin_seq"), U64("end_seq")),
	define(KindExtRefMap, pr, Str("ext_ref", SizeExtRef), Ref("order", KindOrder)),
	define(KindLogRecord, pr,
		En("level", "alarm_level"), Str("node", SizeNodeName), Str("text", SizeText), U64("ts")),
	define(KindVariable, pc, Str("name", SizeName), Str("value", SizeText)),
	define(KindSnapshotRequest, cr, Ref("target", 0)),
	define(KindSnapshotDone, tr, U32("count"), U64("ts")),
}
