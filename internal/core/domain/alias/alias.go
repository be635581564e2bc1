/*
Package alias defines the core domain entity for an alias, the rules an alias
name must satisfy, and the error kinds raised while managing aliases.
*/
package alias

import "fmt"

/*
Alias represents a single shell alias, consisting of a short name and the
full command it expands to. This is a core domain entity.
*/
type Alias struct {
	Command string `yaml:"command"`
	Name    string `yaml:"alias"`
}

// Line renders the alias exactly as it is written to the rc file.
// The command is single-quoted and not escaped any further.
func (a Alias) Line() string {
	return fmt.Sprintf("alias %s='%s'", a.Name, a.Command)
}
