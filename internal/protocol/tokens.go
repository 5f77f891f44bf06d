package protocol

// Wire tokens of the outbound dialect. The companion parser matches these
// exact byte sequences; none of them are configurable.
const (
	messageStart  = "{'Service':'"
	serviceToID   = "','Id':"
	quote         = "'"
	pairSeparator = ",'"
	keyToValue    = "':"
	messageEnd    = "}"
	arrayStart    = "[{"
	arrayEnd      = "}]"
	literalTrue   = "true"
	literalFalse  = "false"
)

// AwaitingMessage is the idle keep-alive probe, written as-is between
// messages when the link has been quiet for a full request interval.
const AwaitingMessage = "{}"

// SystemTypeTag marks system control events on the wire.
const SystemTypeTag byte = '!'

// ServiceSystem is the service name carried by system control messages.
const ServiceSystem = "SYSTEM"

// FormatPlaceholder marks substitution points inside format templates.
const FormatPlaceholder byte = '~'

// Field names of inbound frames.
const (
	FieldType     = "Type"
	FieldTag      = "Tag"
	FieldPid      = "Pid"
	FieldID       = "Id"
	FieldResultID = "ResultId"
	FieldResult   = "Result"
	FieldAction   = "Action"
	FieldValue    = "Value"
)

// Keys used when emitting system control messages.
const (
	KeyAction = "Action"
	KeyType   = "TYPE"
	KeyLength = "LEN"
)

// Command words recognized or emitted by system-event handling. Dispatch
// compares Larson hashes of these words, never the strings themselves.
const (
	ResultPing    = "PING"
	ResultPong    = "PONG"
	ResultRefresh = "REFRESH"
	ResultConnect = "CONNECT"
	ResultSuspend = "SUSPEND"
	ResultResume  = "RESUME"
	ResultStart   = "START"
)
