package pkg

type Action string

const (
	ActionUndo    Action = "Undo"
	ActionRedo           = "Redo"
	ActionNewGame        = "New Game"
	ActionExit           = "Exit"
)
