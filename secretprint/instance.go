package secretprint

// Instance names the variable a Printer reads and the label it prints the value with.
type Instance struct {
	Name  string
	Label string
}

var (
	// Clay is printed by the clay command.
	Clay = Instance{Name: "CLAY_SECRET", Label: "Secret"}
	// Potter is printed by the potter command.
	Potter = Instance{Name: "POTTER_SECRET", Label: "Potter Secret"}
)
