package cmd

// SessionsCmd manages sessions
type SessionsCmd struct {
	Add       SessionsAddCmd       `cmd:"add" help:"Register a new session"`
	Del       SessionsDelCmd       `cmd:"del" help:"Delete a session"`
	List      SessionsListCmd      `cmd:"list" help:"List sessions as a view would show them" default:"1"`
	Move      SessionsMoveCmd      `cmd:"move" aliases:"mv" help:"Move a session to another workspace"`
	Pin       SessionsPinCmd       `cmd:"pin" help:"Pin a session to the top of every list"`
	Resume    SessionsResumeCmd    `cmd:"resume" help:"Mark a terminated session as running again"`
	Sticky    SessionsStickyCmd    `cmd:"sticky" help:"Keep a session visible regardless of the status filter"`
	Terminate SessionsTerminateCmd `cmd:"terminate" help:"Mark a session as terminated"`
	Unpin     SessionsUnpinCmd     `cmd:"unpin" help:"Unpin a session"`
}
