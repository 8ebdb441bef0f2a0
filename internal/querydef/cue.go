package querydef

import (
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// schema closes definitions so misspelled keys are rejected, as the YAML
// decoder does with KnownFields.
const schema = `
#Query: {
	operator:        string
	search_field?:   string
	search_terms?:   [...string]
	nested_queries?: [...#Query]
}
`

// decodeCUE reads CUE or JSON; JSON is a subset of CUE.
func decodeCUE(data []byte, name string) (*Definition, error) {
	ctx := cuecontext.New()

	s := ctx.CompileString(schema)
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("compiling definition schema: %w", err)
	}

	v := ctx.CompileBytes(data, cue.Filename(name))
	if err := v.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDefinition, err)
	}

	v = s.LookupPath(cue.ParsePath("#Query")).Unify(v)
	if err := v.Validate(cue.Concrete(true)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDefinition, err)
	}

	var def Definition
	if err := v.Decode(&def); err != nil {
		return nil, fmt.Errorf("%w: decoding: %v", ErrInvalidDefinition, err)
	}
	return &def, nil
}
