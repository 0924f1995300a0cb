package protocol

// Action names an engine action, for logs and the console command set
type Action int

const (
	Null Action = iota
	TakeThree
	TakeTwo
	Buy
	Reserve
	Invite
	Refill
	GrantToken
	ReturnToken
)

var ActionNames = map[Action]string{
	Null:        "Null",
	TakeThree:   "TakeThree",
	TakeTwo:     "TakeTwo",
	Buy:         "Buy",
	Reserve:     "Reserve",
	Invite:      "Invite",
	Refill:      "Refill",
	GrantToken:  "GrantToken",
	ReturnToken: "ReturnToken",
}

func (a Action) String() string {
	name, ok := ActionNames[a]
	if !ok {
		return "Unknown"
	}
	return name
}
