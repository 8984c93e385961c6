package cli

import (
	"fmt"
	"io"
)

// groupMember is one line of the static authorship screen.
type groupMember struct {
	Name string
	RA   string
}

var groupMembers = []groupMember{
	{Name: "Integrante 1", RA: "0000001"},
	{Name: "Integrante 2", RA: "0000002"},
	{Name: "Integrante 3", RA: "0000003"},
	{Name: "Integrante 4", RA: "0000004"},
}

// renderGroupInfo prints the static group-authorship screen.
func renderGroupInfo(w io.Writer) {
	fmt.Fprintln(w, "Informações do Grupo")
	fmt.Fprintln(w, "Este aplicativo foi desenvolvido como trabalho prático da disciplina de Desenvolvimento Mobile.")
	fmt.Fprintln(w)
	for _, m := range groupMembers {
		fmt.Fprintf(w, "  %s (RA: %s)\n", m.Name, m.RA)
	}
}
