package programs

import (
	"strings"

	"github.com/cockroachdb/errors"
)

var ErrUnknownProgram = errors.New("unknown program")

func NumPrograms() int {
	return len(programs)
}

func GetProgram(i int) Program {
	return programs[i]
}

// Lookup returns the registered program with the given name, ignoring case.
func Lookup(name string) (Program, error) {
	for _, p := range programs {
		if strings.EqualFold(p.Name, name) {
			return p, nil
		}
	}
	return Program{}, errors.Wrapf(ErrUnknownProgram, "%q", name)
}

func NewProgram(p Program) error {
	if p.Name == "" {
		return errors.New("program has no name")
	}
	if p.VertexShader == "" || p.FragmentShader == "" {
		return errors.Newf("program %q is missing a shader stage", p.Name)
	}
	if _, err := Lookup(p.Name); err == nil {
		return errors.Newf("program %q already registered", p.Name)
	}
	programs = append(programs, p)
	return nil
}

var programs []Program

// Program is the source for one linked shader pipeline. The sources are
// treated as immutable once registered.
type Program struct {
	Name           string
	VertexShader   string
	FragmentShader string

	// PositionAttrib names the vertex shader input fed from the position
	// attribute at location 0.
	PositionAttrib string
}
