package panel

// BuiltIn describes one of the bot's built-in commands.
type BuiltIn struct {
	Name       string
	Help       string
	Restricted bool
	Hidden     bool
}

var builtIns = []BuiltIn{
	{Name: "reset", Help: "wipe the group's stored data", Restricted: true, Hidden: true},
	{Name: "initialize", Help: "register the group with the bot"},
	{Name: "add", Help: "add a command: !add name response"},
	{Name: "edit", Help: "change a command's response or description", Restricted: true},
	{Name: "delete", Help: "remove a user command", Restricted: true},
	{Name: "mod", Help: "grant moderator status", Restricted: true},
	{Name: "unmod", Help: "revoke moderator status", Restricted: true},
	{Name: "commands", Help: "link to this command list"},
	{Name: "ignore", Help: "stop responding to a member", Restricted: true},
	{Name: "unignore", Help: "respond to an ignored member again", Restricted: true},
	{Name: "stats", Help: "recount messages and likes"},
	{Name: "slow_stats", Help: "full recount from the whole history", Hidden: true},
	{Name: "roll", Help: "roll dice, e.g. !roll 2d6"},
	{Name: "flip", Help: "flip a coin"},
	{Name: "jpeg", Help: "add more jpeg to an image"},
	{Name: "everyone", Help: "mention every member"},
	{Name: "remindme", Help: "schedule a reminder: !remindme 2h stretch"},
	{Name: "summary", Help: "summarise recent messages"},
	{Name: "randgal", Help: "post a random gallery image"},
	{Name: "someone", Help: "mention a random member"},
}

// BuiltIns returns the visible built-in commands in registration order.
func BuiltIns() []BuiltIn {
	out := make([]BuiltIn, 0, len(builtIns))
	for _, b := range builtIns {
		if b.Hidden {
			continue
		}
		out = append(out, b)
	}
	return out
}
