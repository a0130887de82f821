package tui

// Msg is the sealed interface for all TUI messages.
//
// go-sumtype:decl Msg
type Msg interface {
	sealed()
}

// MsgClearMessage is sent when a transient status message expires.
// Seq identifies the message it was scheduled for; a newer message
// keeps showing.
type MsgClearMessage struct {
	Seq int
}

func (MsgClearMessage) sealed() {}
