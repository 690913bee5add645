package enum

type Exchange uint8

const (
	ExchangeUnknown Exchange = iota
	ExchangeMOEX
	ExchangeXroad
	ExchangeLSE
	ExchangeCME
	ExchangeNYSE
	ExchangeNASDAQ
	ExchangeNYMEX
	ExchangeICE
	ExchangeEUREX
	ExchangeCBOE
)

var exchanges = newTable("exchange", map[Exchange]string{
	ExchangeUnknown: "unknown",
	ExchangeMOEX:    "moex",
	ExchangeXroad:   "xroad",
	ExchangeLSE:     "lse",
	ExchangeCME:     "cme",
	ExchangeNYSE:    "nyse",
	ExchangeNASDAQ:  "nasdaq",
	ExchangeNYMEX:   "nymex",
	ExchangeICE:     "ice",
	ExchangeEUREX:   "eurex",
	ExchangeCBOE:    "cboe",
})

func (e Exchange) Code() int64       { return int64(e) }
func (e Exchange) String() string    { return exchanges.name(e) }
func (e Exchange) IsAvailable() bool { return exchanges.has(e) && e != ExchangeUnknown }

type Currency uint8

const (
	CurrencyRUB Currency = iota + 1
	CurrencyUSD
	CurrencyEUR
	CurrencyGBP
	CurrencyGBX
	CurrencyCHF
	CurrencyJPY
	CurrencyCAD
	CurrencyHKD
	CurrencyNOK
	CurrencyPLN
	CurrencyUAH
	CurrencyXXX
)

var currencies = newTable("currency", map[Currency]string{
	CurrencyRUB: "rub",
	CurrencyUSD: "usd",
	CurrencyEUR: "eur",
	CurrencyGBP: "gbp",
	CurrencyGBX: "gbx",
	CurrencyCHF: "chf",
	CurrencyJPY: "jpy",
	CurrencyCAD: "cad",
	CurrencyHKD: "hkd",
	CurrencyNOK: "nok",
	CurrencyPLN: "pln",
	CurrencyUAH: "uah",
	CurrencyXXX: "xxx",
})

func (c Currency) Code() int64       { return int64(c) }
func (c Currency) String() string    { return currencies.name(c) }
func (c Currency) IsAvailable() bool { return currencies.has(c) }

type Callput uint8

const (
	CallputCall Callput = 1
	CallputPut  Callput = 2
)

var callputs = newTable("callput", map[Callput]string{
	CallputCall: "call",
	CallputPut:  "put",
})

func (c Callput) Code() int64       { return int64(c) }
func (c Callput) String() string    { return callputs.name(c) }
func (c Callput) IsAvailable() bool { return callputs.has(c) }

// CalcMid selects how the option market maker derives its mid price.
type CalcMid uint8

const (
	CalcMidByShift    CalcMid = 1
	CalcMidByShiftVol CalcMid = 2
)

var calcMids = newTable("calc_mid", map[CalcMid]string{
	CalcMidByShift:    "by_shift",
	CalcMidByShiftVol: "by_shift_vol",
})

func (c CalcMid) Code() int64       { return int64(c) }
func (c CalcMid) String() string    { return calcMids.name(c) }
func (c CalcMid) IsAvailable() bool { return calcMids.has(c) }

type OptMmState uint8

const (
	OptMmStateDisabled OptMmState = iota
	OptMmStatePending
	OptMmStateActive
	OptMmStateError
	OptMmStateFilled
)

var optMmStates = newTable("opt_mm_state", map[OptMmState]string{
	OptMmStateDisabled: "disabled",
	OptMmStatePending:  "pending",
	OptMmStateActive:   "active",
	OptMmStateError:    "error",
	OptMmStateFilled:   "filled",
})

func (s OptMmState) Code() int64       { return int64(s) }
func (s OptMmState) String() string    { return optMmStates.name(s) }
func (s OptMmState) IsAvailable() bool { return optMmStates.has(s) }

// SubsResult is the answer of a market data feed to a subscribe request.
type SubsResult uint8

const (
	SubsResultSubscribed SubsResult = iota
	SubsResultUnsubscribed
	SubsResultAlreadySubscribed
	SubsResultInstrNotFound
	SubsResultTooManySubscriptions
	SubsResultInternalError
	SubsResultExternalError
)

var subsResults = newTable("subs_result", map[SubsResult]string{
	SubsResultSubscribed:           "subscribed",
	SubsResultUnsubscribed:         "unsubscribed",
	SubsResultAlreadySubscribed:    "already_subscribed",
	SubsResultInstrNotFound:        "instr_not_found",
	SubsResultTooManySubscriptions: "too_many_subscriptions",
	SubsResultInternalError:        "internal_error",
	SubsResultExternalError:        "external_error",
})

func (r SubsResult) Code() int64       { return int64(r) }
func (r SubsResult) String() string    { return subsResults.name(r) }
func (r SubsResult) IsAvailable() bool { return subsResults.has(r) }

type MdataSubsState uint8

const (
	MdataSubsStateUnsubscribed MdataSubsState = iota + 1
	MdataSubsStateSubscribed
	MdataSubsStateAwaitingSubs
	MdataSubsStateAwaitingUnsubs
)

var mdataSubsStates = newTable("mdata_subs_state", map[MdataSubsState]string{
	MdataSubsStateUnsubscribed:   "unsubscribed",
	MdataSubsStateSubscribed:     "subscribed",
	MdataSubsStateAwaitingSubs:   "awaiting_subs",
	MdataSubsStateAwaitingUnsubs: "awaiting_unsubs",
})

func (s MdataSubsState) Code() int64       { return int64(s) }
func (s MdataSubsState) String() string    { return mdataSubsStates.name(s) }
func (s MdataSubsState) IsAvailable() bool { return mdataSubsStates.has(s) }
