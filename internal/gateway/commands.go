package gateway

import (
	"fmt"

	"github.com/conn-castle/xig/internal/messages"
)

// Command names.
const (
	CommandList      = "list"
	CommandInstall   = "install"
	CommandUpgrade   = "upgrade"
	CommandUninstall = "uninstall"
)

// List subcommand names.
const (
	ListAvailable = "available"
	ListInstalled = "installed"
	ListUpdate    = "update"
	// ListHelp makes list return the subcommand names instead of gateways.
	ListHelp = "help"
)

// Command maps a command name to the operation that runs it.
type Command struct {
	Name string
	Run  func(e *Executor, args []string) ([]string, error)
}

// ListKind maps a list subcommand to the catalog query that answers it.
type ListKind struct {
	Name string
	List func(c *Catalog) ([]string, error)
}

var commands = []Command{
	{Name: CommandList, Run: runList},
	{Name: CommandInstall, Run: (*Executor).Install},
	{Name: CommandUpgrade, Run: (*Executor).Upgrade},
	{Name: CommandUninstall, Run: (*Executor).Uninstall},
}

var listKinds = []ListKind{
	{Name: ListAvailable, List: (*Catalog).ListAvailable},
	{Name: ListInstalled, List: (*Catalog).ListInstalled},
	{Name: ListUpdate, List: (*Catalog).ListUpdatable},
}

// Commands returns the command names in declaration order.
func Commands() []string {
	names := make([]string, 0, len(commands))
	for _, cmd := range commands {
		names = append(names, cmd.Name)
	}
	return names
}

// Lookup returns the command registered under name.
func Lookup(name string) (Command, error) {
	for _, cmd := range commands {
		if cmd.Name == name {
			return cmd, nil
		}
	}
	return Command{}, fmt.Errorf(messages.GatewayCommandNotExistFmt, ErrCommandNotExist, name)
}

// Dispatch runs the named command with args against e.
// For list, the result is the listed names; otherwise it is the names acted upon.
func Dispatch(e *Executor, name string, args []string) ([]string, error) {
	cmd, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	return cmd.Run(e, args)
}

// ListKinds returns the list subcommand names.
func ListKinds() []string {
	names := make([]string, 0, len(listKinds))
	for _, kind := range listKinds {
		names = append(names, kind.Name)
	}
	return names
}

// LookupListKind returns the list subcommand registered under name.
// Unknown or empty names fall back to available.
func LookupListKind(name string) ListKind {
	for _, kind := range listKinds {
		if kind.Name == name {
			return kind
		}
	}
	return listKinds[0]
}

func runList(e *Executor, args []string) ([]string, error) {
	sub := ""
	if len(args) > 0 {
		sub = args[0]
	}
	if sub == ListHelp {
		return ListKinds(), nil
	}
	return LookupListKind(sub).List(e.catalog)
}
