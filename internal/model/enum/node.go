package enum

type AlarmLevel uint8

const (
	AlarmLevelError   AlarmLevel = 1
	AlarmLevelWarning AlarmLevel = 2
)

var alarmLevels = newTable("alarm_level", map[AlarmLevel]string{
	AlarmLevelError:   "error",
	AlarmLevelWarning: "warning",
})

func (l AlarmLevel) Code() int64       { return int64(l) }
func (l AlarmLevel) String() string    { return alarmLevels.name(l) }
func (l AlarmLevel) IsAvailable() bool { return alarmLevels.has(l) }

// FieldType tags the encoding of a UI field value blob.
type FieldType uint8

const (
	FieldTypeString  FieldType = 1
	FieldTypeInteger FieldType = 2
	FieldTypeDouble  FieldType = 3
)

var fieldTypes = newTable("field_type", map[FieldType]string{
	FieldTypeString:  "string",
	FieldTypeInteger: "integer",
	FieldTypeDouble:  "double",
})

func (t FieldType) Code() int64       { return int64(t) }
func (t FieldType) String() string    { return fieldTypes.name(t) }
func (t FieldType) IsAvailable() bool { return fieldTypes.has(t) }

// ResetHint is a bit of the reset command mask.
type ResetHint uint8

const (
	ResetHintStatistic  ResetHint = 1
	ResetHintFixSession ResetHint = 2
	ResetHintState      ResetHint = 4
)

var resetHints = newTable("reset_hint", map[ResetHint]string{
	ResetHintStatistic:  "statistic",
	ResetHintFixSession: "fix_session",
	ResetHintState:      "state",
})

func (h ResetHint) Code() int64       { return int64(h) }
func (h ResetHint) String() string    { return resetHints.name(h) }
func (h ResetHint) IsAvailable() bool { return resetHints.has(h) }

type NodeState uint8

const (
	NodeStateActive NodeState = iota + 1
	NodeStateOffline
	NodeStateDead
	NodeStateInactive
	NodeStatePendingActive
	NodeStatePendingOffline
)

var nodeStates = newTable("node_state", map[NodeState]string{
	NodeStateActive:         "active",
	NodeStateOffline:        "offline",
	NodeStateDead:           "dead",
	NodeStateInactive:       "inactive",
	NodeStatePendingActive:  "pending_active",
	NodeStatePendingOffline: "pending_offline",
})

func (s NodeState) Code() int64       { return int64(s) }
func (s NodeState) String() string    { return nodeStates.name(s) }
func (s NodeState) IsAvailable() bool { return nodeStates.has(s) }

type FixSessionStatus uint8

const (
	FixSessionStatusUp   FixSessionStatus = 'U'
	FixSessionStatusDown FixSessionStatus = 'D'
)

var fixSessionStatuses = newTable("fix_session_status", map[FixSessionStatus]string{
	FixSessionStatusUp:   "up",
	FixSessionStatusDown: "down",
})

func (s FixSessionStatus) Code() int64       { return int64(s) }
func (s FixSessionStatus) String() string    { return fixSessionStatuses.name(s) }
func (s FixSessionStatus) IsAvailable() bool { return fixSessionStatuses.has(s) }
