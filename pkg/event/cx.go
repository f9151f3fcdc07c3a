package event

// Mapper rewrites a message emitted below it in the tree.
type Mapper func(msg any) any

// Cx collects what widgets emit during one dispatch pass.
type Cx struct {
	messages []any
	commands []WindowCommand
	mappers  []Mapper
	cursor   CursorIcon
	hasCur   bool
}

// NewCx returns an empty context.
func NewCx() *Cx {
	return &Cx{}
}

// Emit queues an application message. Active mappers are applied from the
// innermost outwards; a mapper returning nil drops the message.
func (cx *Cx) Emit(msg any) {
	for i := len(cx.mappers) - 1; i >= 0 && msg != nil; i-- {
		msg = cx.mappers[i](msg)
	}
	if msg != nil {
		cx.messages = append(cx.messages, msg)
	}
}

// Command queues a window command.
func (cx *Cx) Command(c WindowCommand) {
	cx.commands = append(cx.commands, c)
}

// SetCursor requests a cursor icon. The last request in a pass wins.
func (cx *Cx) SetCursor(icon CursorIcon) {
	cx.cursor = icon
	cx.hasCur = true
}

// Cursor returns the requested cursor, if any.
func (cx *Cx) Cursor() (CursorIcon, bool) {
	return cx.cursor, cx.hasCur
}

// PushMapper installs m for messages emitted until the matching PopMapper.
func (cx *Cx) PushMapper(m Mapper) {
	cx.mappers = append(cx.mappers, m)
}

// PopMapper removes the innermost mapper.
func (cx *Cx) PopMapper() {
	cx.mappers = cx.mappers[:len(cx.mappers)-1]
}

// Messages returns the queued messages without draining them.
func (cx *Cx) Messages() []any {
	return cx.messages
}

// Commands returns the queued window commands without draining them.
func (cx *Cx) Commands() []WindowCommand {
	return cx.commands
}

// DrainMessages returns and clears the queued messages.
func (cx *Cx) DrainMessages() []any {
	out := cx.messages
	cx.messages = nil
	return out
}

// DrainCommands returns and clears the queued window commands.
func (cx *Cx) DrainCommands() []WindowCommand {
	out := cx.commands
	cx.commands = nil
	return out
}

// Reset clears everything, including the cursor request.
func (cx *Cx) Reset() {
	cx.messages = nil
	cx.commands = nil
	cx.mappers = cx.mappers[:0]
	cx.hasCur = false
	cx.cursor = CursorDefault
}
