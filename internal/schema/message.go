package schema

import "fmt"

// Direction tells which side of the link sends the message.
type Direction uint8

const (
	DirectionUnset Direction = iota
	ToHost
	ToController
)

func (d Direction) String() string {
	switch d {
	case ToHost:
		return "to_host"
	case ToController:
		return "to_controller"
	}
	return ""
}

// Intent classifies the conversational role of a message.
type Intent uint8

const (
	IntentUnset Intent = iota
	Command
	Query
	Notify
	Response
)

func (i Intent) String() string {
	switch i {
	case Command:
		return "command"
	case Query:
		return "query"
	case Notify:
		return "notify"
	case Response:
		return "response"
	}
	return ""
}

// Message is one unit of communication: a named, ordered field list with
// optional direction/intent tags. Names are required at construction;
// uniqueness across the schema is the validator's job.
type Message struct {
	Name        string
	Description string
	Fields      []Field

	Direction Direction
	Intent    Intent

	// Deprecated messages are excluded from generation output but still
	// validated so stale definitions cannot rot silently.
	Deprecated bool

	// ResponseTo links a Response message back to its Query by name.
	ResponseTo string
}

// NewMessage builds a message. The name must be non-empty; everything
// else is optional.
func NewMessage(name, description string, fields []Field) (*Message, error) {
	if name == "" {
		return nil, schemaErrorf("message name cannot be empty")
	}
	return &Message{Name: name, Description: description, Fields: fields}, nil
}

func (m *Message) IsCommand() bool  { return m.Intent == Command }
func (m *Message) IsQuery() bool    { return m.Intent == Query }
func (m *Message) IsNotify() bool   { return m.Intent == Notify }
func (m *Message) IsResponse() bool { return m.Intent == Response }

func (m *Message) String() string {
	return fmt.Sprintf("Message(%s, %d fields)", m.Name, len(m.Fields))
}

// ParseDirection maps manifest spellings to Direction values.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "":
		return DirectionUnset, nil
	case "to_host":
		return ToHost, nil
	case "to_controller":
		return ToController, nil
	}
	return DirectionUnset, schemaErrorf("unknown direction %q", s)
}

// ParseIntent maps manifest spellings to Intent values.
func ParseIntent(s string) (Intent, error) {
	switch s {
	case "":
		return IntentUnset, nil
	case "command":
		return Command, nil
	case "query":
		return Query, nil
	case "notify":
		return Notify, nil
	case "response":
		return Response, nil
	}
	return IntentUnset, schemaErrorf("unknown intent %q", s)
}
